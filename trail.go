package draft

import (
	"fmt"
	"math"
)

// TrailFunc produces the primitive path of a trail. The path may contain
// ArcTo elements.
type TrailFunc func() *Path

// Trail is a lazily built, cached path. The callback runs on demand and
// the result is kept, with arcs converted to cubic Beziers, until Clear.
//
// The converted path and its extents are cached together.
type Trail struct {
	fn       TrailFunc
	maxAngle float64

	path     *Path
	extents  Extents
	cached   bool
	building bool
}

// NewTrail creates a trail backed by fn.
func NewTrail(fn TrailFunc) *Trail {
	return &Trail{fn: fn, maxAngle: math.Pi / 2}
}

// SetMaxAngle sets the largest sweep a single Bezier may approximate.
// Non-positive values restore the quarter turn default; values above a
// half turn are capped to π.
func (t *Trail) SetMaxAngle(angle float64) {
	if angle <= 0 {
		angle = math.Pi / 2
	}
	angle = math.Min(angle, math.Pi)
	if angle != t.maxAngle {
		t.maxAngle = angle
		t.Clear()
	}
}

// MaxAngle returns the largest sweep a single Bezier approximates.
func (t *Trail) MaxAngle() float64 {
	return t.maxAngle
}

// RawPath invokes the callback and returns the primitive path.
func (t *Trail) RawPath() (*Path, error) {
	if t.building {
		Logger().Warn("draft: trail callback queried its own trail")
		return nil, ErrTrailReentrant
	}
	if t.fn == nil {
		return NewPath(), nil
	}
	t.building = true
	defer func() { t.building = false }()

	p := t.fn()
	if p == nil {
		p = NewPath()
	}
	return p, nil
}

// CachedPath returns the converted path, building it on first use.
func (t *Trail) CachedPath() (*Path, error) {
	if t.cached {
		return t.path, nil
	}
	raw, err := t.RawPath()
	if err != nil {
		return nil, err
	}
	t.path = convertArcs(raw, t.maxAngle)
	t.extents = t.path.Extents()
	t.cached = true
	return t.path, nil
}

// Extents returns the bounding box of the visible segments of the
// converted path.
func (t *Trail) Extents() (Extents, error) {
	if _, err := t.CachedPath(); err != nil {
		return Extents{}, err
	}
	return t.extents, nil
}

// Segment returns segment i of the converted path.
func (t *Trail) Segment(i int) (Segment, error) {
	p, err := t.CachedPath()
	if err != nil {
		return Segment{}, err
	}
	s, ok := p.Segment(i)
	if !ok {
		return Segment{}, fmt.Errorf("draft: trail segment %d out of range [0, %d)", i, p.Len())
	}
	return s, nil
}

// Clear drops the cached path and extents.
func (t *Trail) Clear() {
	t.path = nil
	t.extents = Extents{}
	t.cached = false
}
