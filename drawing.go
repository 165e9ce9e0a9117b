package draft

import "math"

// slot is an arena cell. gen is bumped every time the slot is released.
type slot struct {
	e      Entity
	parent Handle
	gen    uint32
}

// Drawing owns a tree of entities.
//
// Entities are created detached by the New* methods and attached with
// Container.Add. The tree is not safe for concurrent use.
type Drawing struct {
	slots []slot
	free  []uint32

	root     *Container
	registry *Registry

	maxArcAngle float64

	// busy counts the arrange and render traversals in progress.
	busy int
}

// New creates an empty drawing.
func New(opts ...Option) *Drawing {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = NewRegistry()
	}

	d := &Drawing{
		registry:    o.registry,
		maxArcAngle: o.maxArcAngle,
	}
	d.root = d.NewContainer()
	return d
}

// Root returns the top level container.
func (d *Drawing) Root() *Container {
	return d.root
}

// Registry returns the style registry.
func (d *Drawing) Registry() *Registry {
	return d.registry
}

// MaxArcAngle returns the arc approximation limit used by trails.
func (d *Drawing) MaxArcAngle() float64 {
	if d.maxArcAngle <= 0 {
		return math.Pi / 2
	}
	return d.maxArcAngle
}

// Len returns the number of live entities, the root included.
func (d *Drawing) Len() int {
	return len(d.slots) - len(d.free)
}

// Lookup returns the entity addressed by h.
func (d *Drawing) Lookup(h Handle) (Entity, bool) {
	if h.IsZero() || int(h.index) >= len(d.slots) {
		return nil, false
	}
	s := &d.slots[h.index]
	if s.gen != h.gen || s.e == nil {
		return nil, false
	}
	return s.e, true
}

// Arrange arranges the whole tree.
func (d *Drawing) Arrange() error {
	return d.root.Arrange()
}

// Render draws the whole tree on s.
func (d *Drawing) Render(s Surface) error {
	return d.root.Render(s)
}

// Extents arranges the tree and returns its bounding box.
func (d *Drawing) Extents() (Extents, error) {
	err := d.Arrange()
	return d.root.Extents(), err
}

// Invalidate drops every cache of the tree.
func (d *Drawing) Invalidate() {
	d.root.Invalidate()
}

// register stores e in a free slot.
func (d *Drawing) register(e Entity, parent Handle) Handle {
	var index uint32
	if n := len(d.free); n > 0 {
		index = d.free[n-1]
		d.free = d.free[:n-1]
	} else {
		d.slots = append(d.slots, slot{})
		index = uint32(len(d.slots) - 1)
	}
	s := &d.slots[index]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.e = e
	s.parent = parent

	h := Handle{index: index, gen: s.gen}
	e.base().handle = h
	Logger().Debug("draft: entity registered", "index", index, "gen", s.gen)
	return h
}

// release frees the slots of e and of everything it owns.
func (d *Drawing) release(e Entity) {
	e.each(d.release)
	b := e.base()
	if !d.alive(b.handle) {
		return
	}
	s := &d.slots[b.handle.index]
	s.e = nil
	s.parent = Handle{}
	s.gen++
	d.free = append(d.free, b.handle.index)
	Logger().Debug("draft: entity released", "index", b.handle.index)
	b.d = nil
}

func (d *Drawing) alive(h Handle) bool {
	_, ok := d.Lookup(h)
	return ok
}

func (d *Drawing) parentOf(h Handle) Entity {
	if !d.alive(h) {
		return nil
	}
	p, _ := d.Lookup(d.slots[h.index].parent)
	return p
}

func (d *Drawing) setParent(h, parent Handle) {
	if d.alive(h) {
		d.slots[h.index].parent = parent
	}
}

// isAncestor reports whether a is h or one of its ancestors.
func (d *Drawing) isAncestor(a, h Handle) bool {
	for !h.IsZero() {
		if h == a {
			return true
		}
		if !d.alive(h) {
			return false
		}
		h = d.slots[h.index].parent
	}
	return false
}
