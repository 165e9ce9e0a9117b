package draft

// Handle addresses an entity inside its Drawing.
// Handles are generation checked: once the entity is removed, its handle
// no longer resolves. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Entity is a node of the drawing tree.
//
// The set of entity kinds is closed: every implementation embeds Base and
// is created by a Drawing.
type Entity interface {
	base() *Base

	// arrange recomputes the kind's geometry and sets the extents.
	// Only called on dirty entities.
	arrange() error

	// render issues the drawing commands of an arranged entity.
	render(s Surface)

	// invalidate drops the kind's caches. refetch also forces bound
	// points to query their model again.
	invalidate(refetch bool)

	// each calls fn on every owned sub-entity.
	each(fn func(Entity))
}

// Base holds the state shared by every entity: transforms, extents and
// the dirty flag. It is embedded by all entity kinds.
type Base struct {
	d      *Drawing
	handle Handle
	self   Entity

	globalMap Matrix
	localMap  Matrix
	localMix  Mix

	composed     bool
	globalMatrix Matrix
	localMatrix  Matrix

	// override replaces the composed global matrix seen by children;
	// childMap is applied between this entity and its children.
	override *Matrix
	childMap Matrix

	extents Extents
	dirty   bool
	err     error
}

func (b *Base) base() *Base { return b }

func (b *Base) init(d *Drawing, self Entity) {
	b.d = d
	b.self = self
	b.globalMap = Identity()
	b.localMap = Identity()
	b.childMap = Identity()
	b.dirty = true
}

// Handle returns the entity handle.
func (b *Base) Handle() Handle {
	return b.handle
}

// Drawing returns the drawing that owns the entity, or nil once the
// entity was removed.
func (b *Base) Drawing() *Drawing {
	return b.d
}

// Parent returns the parent entity, or nil for detached entities.
func (b *Base) Parent() Entity {
	if b.d == nil {
		return nil
	}
	return b.d.parentOf(b.handle)
}

// GlobalMap returns the entity's own global transformation.
func (b *Base) GlobalMap() Matrix {
	return b.globalMap
}

// SetGlobalMap replaces the entity's own global transformation.
func (b *Base) SetGlobalMap(m Matrix) {
	b.globalMap = m
	globalChanged(b.self)
}

// TransformGlobalMap applies m after the current global map.
func (b *Base) TransformGlobalMap(m Matrix) {
	b.SetGlobalMap(m.Multiply(b.globalMap))
}

// LocalMap returns the entity's own local transformation.
func (b *Base) LocalMap() Matrix {
	return b.localMap
}

// SetLocalMap replaces the entity's own local transformation.
func (b *Base) SetLocalMap(m Matrix) {
	b.localMap = m
	localChanged(b.self)
}

// TransformLocalMap applies m after the current local map.
func (b *Base) TransformLocalMap(m Matrix) {
	b.SetLocalMap(m.Multiply(b.localMap))
}

// LocalMix returns how the local map composes with the ancestors'.
func (b *Base) LocalMix() Mix {
	return b.localMix
}

// SetLocalMix changes how the local map composes with the ancestors'.
func (b *Base) SetLocalMix(mix Mix) {
	b.localMix = mix
	localChanged(b.self)
}

// GlobalMatrix returns the global map composed with the ancestors'.
func (b *Base) GlobalMatrix() Matrix {
	b.compose()
	return b.globalMatrix
}

// LocalMatrix returns the local map composed according to LocalMix.
func (b *Base) LocalMatrix() Matrix {
	b.compose()
	return b.localMatrix
}

func (b *Base) compose() {
	if b.composed {
		return
	}
	parentGlobal, parentLocal, parentMap := Identity(), Identity(), Identity()
	if p := b.Parent(); p != nil {
		pb := p.base()
		parentGlobal = pb.childGlobal()
		parentLocal = pb.LocalMatrix()
		parentMap = pb.localMap
	}
	b.globalMatrix = parentGlobal.Multiply(b.globalMap)
	b.localMatrix = mixLocal(b.localMix, parentLocal, parentMap, b.localMap)
	b.composed = true
}

// childGlobal returns the global matrix children compose with.
func (b *Base) childGlobal() Matrix {
	m := b.GlobalMatrix()
	if b.override != nil {
		m = *b.override
	}
	return m.Multiply(b.childMap)
}

// ctm returns the matrix content is drawn with: global after local.
func (b *Base) ctm() Matrix {
	return b.GlobalMatrix().Multiply(b.LocalMatrix())
}

// Extents returns the bounding box computed by the last arrangement, in
// drawing space. Undefined for dirty or empty entities.
func (b *Base) Extents() Extents {
	return b.extents
}

// IsDirty reports whether the entity needs to be arranged.
func (b *Base) IsDirty() bool {
	return b.dirty
}

// Arrange updates the entity and its sub-entities. A clean entity is left
// untouched and the diagnostic of its last arrangement is returned.
func (b *Base) Arrange() error {
	return arrangeEntity(b.self)
}

// Render arranges the entity if needed and draws it on s.
func (b *Base) Render(s Surface) error {
	return renderEntity(b.self, s)
}

// Invalidate drops every cache of the entity and its sub-entities.
func (b *Base) Invalidate() {
	invalidateEntity(b.self)
}

// markDirty flags e and all its ancestors for arrangement.
func markDirty(e Entity) {
	e.base().dirty = true
	for p := e.base().Parent(); p != nil; p = p.base().Parent() {
		p.base().dirty = true
	}
}

// arrangeEntity arranges a dirty entity; clean entities return their
// cached diagnostic.
func arrangeEntity(e Entity) error {
	b := e.base()
	if !b.dirty {
		return b.err
	}
	if b.d != nil {
		b.d.busy++
		defer func() { b.d.busy-- }()
	}
	b.err = e.arrange()
	b.dirty = false
	return b.err
}

// renderEntity arranges e if needed and draws it.
func renderEntity(e Entity, s Surface) error {
	err := arrangeEntity(e)
	b := e.base()
	if b.d != nil {
		b.d.busy++
		defer func() { b.d.busy-- }()
	}
	e.render(s)
	return err
}

// globalChanged propagates a global transformation change depth-first.
func globalChanged(e Entity) {
	transformChanged(e)
}

// localChanged propagates a local transformation change depth-first.
func localChanged(e Entity) {
	transformChanged(e)
}

func transformChanged(e Entity) {
	b := e.base()
	b.composed = false
	e.invalidate(false)
	markDirty(e)
	e.each(transformChanged)
}

// invalidateEntity drops all caches depth-first.
func invalidateEntity(e Entity) {
	b := e.base()
	b.composed = false
	b.extents = Extents{}
	e.invalidate(true)
	markDirty(e)
	e.each(invalidateEntity)
}
