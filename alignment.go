package draft

// Alignment is a container that displaces its children by a fraction of
// their own size: factor (0.5, 0) centers them horizontally on the
// alignment origin, (1, 0) right aligns them.
//
// The size is measured with the identity in place of the alignment's
// composed global matrix, so the displacement is not distorted by the
// ancestors' transformations. The shift is then applied in the
// alignment's own space.
type Alignment struct {
	Container
	factor Pair
	shift  Pair
	size   Pair
}

// NewAlignment creates a detached alignment.
func (d *Drawing) NewAlignment(factor Pair) *Alignment {
	a := &Alignment{factor: factor}
	a.init(d, a)
	d.register(a, Handle{})
	return a
}

// newOwnedAlignment creates an alignment owned by parent.
func (d *Drawing) newOwnedAlignment(factor Pair, parent Handle) *Alignment {
	a := &Alignment{factor: factor}
	a.init(d, a)
	d.register(a, parent)
	return a
}

// Factor returns the alignment factor.
func (a *Alignment) Factor() Pair {
	return a.factor
}

// SetFactor changes the alignment factor.
func (a *Alignment) SetFactor(factor Pair) {
	if factor == a.factor {
		return
	}
	a.factor = factor
	markDirty(a)
}

// Shift returns the displacement computed by the last arrangement, in
// the alignment's own space.
func (a *Alignment) Shift() Pair {
	return a.shift
}

// Size returns the size of the children measured by the last
// arrangement, in the alignment's own space.
func (a *Alignment) Size() Pair {
	return a.size
}

func (a *Alignment) arrange() error {
	// First pass: measure in an undistorted space.
	identity := Identity()
	a.override = &identity
	a.childMap = Identity()
	a.each(transformChanged)
	if err := a.Container.arrange(); err != nil {
		a.override = nil
		a.each(transformChanged)
		return err
	}
	a.size = a.extents.Size
	if !a.extents.Defined {
		a.size = Pair{}
	}
	a.shift = Pt(-a.size.X*a.factor.X, -a.size.Y*a.factor.Y)

	// Second pass: real transformation with the shift folded in.
	a.override = nil
	a.childMap = Translate(a.shift.X, a.shift.Y)
	a.each(transformChanged)
	return a.Container.arrange()
}
