package draft

import "errors"

// Container is an entity holding an ordered list of children.
type Container struct {
	Base
	children []Handle
}

// NewContainer creates a detached container.
func (d *Drawing) NewContainer() *Container {
	c := &Container{}
	c.init(d, c)
	d.register(c, Handle{})
	return c
}

// Add appends e to the children of c.
func (c *Container) Add(e Entity) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	b := e.base()
	switch {
	case b.d == nil:
		return ErrStaleHandle
	case b.d != c.d:
		return ErrForeignEntity
	case e == Entity(c.d.root) || b.Parent() != nil:
		return ErrAttached
	case c.d.isAncestor(b.handle, c.handle):
		return ErrCycle
	}
	c.attach(e)
	return nil
}

// attach links e as the last child of c without any check.
func (c *Container) attach(e Entity) {
	c.d.setParent(e.base().handle, c.handle)
	c.children = append(c.children, e.base().handle)
	globalChanged(e)
	markDirty(c)
}

// Remove detaches e from c and releases it with all its sub-entities.
// The handles of the released entities become stale.
func (c *Container) Remove(e Entity) error {
	if err := c.checkMutable(); err != nil {
		return err
	}
	b := e.base()
	if b.d == nil {
		return ErrStaleHandle
	}
	for i, h := range c.children {
		if h == b.handle {
			c.children = append(c.children[:i], c.children[i+1:]...)
			c.d.release(e)
			markDirty(c)
			return nil
		}
	}
	return ErrNotChild
}

func (c *Container) checkMutable() error {
	if c.d == nil {
		return ErrStaleHandle
	}
	if c.d.busy > 0 {
		return ErrTreeBusy
	}
	return nil
}

// Children returns the children of c in order.
func (c *Container) Children() []Entity {
	out := make([]Entity, 0, len(c.children))
	c.each(func(e Entity) { out = append(out, e) })
	return out
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

func (c *Container) each(fn func(Entity)) {
	if c.d == nil {
		return
	}
	for _, h := range c.children {
		if e, ok := c.d.Lookup(h); ok {
			fn(e)
		}
	}
}

func (c *Container) arrange() error {
	var (
		errs    []error
		extents Extents
	)
	c.each(func(e Entity) {
		if err := arrangeEntity(e); err != nil {
			errs = append(errs, err)
		}
		extents = extents.Add(e.base().extents)
	})
	c.extents = extents
	return errors.Join(errs...)
}

func (c *Container) render(s Surface) {
	c.each(func(e Entity) { e.render(s) })
}

func (c *Container) invalidate(bool) {}
