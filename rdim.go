package draft

import "math"

// Trail segments of a radial dimension.
const (
	rdimRadius = iota
	rdimLeader
	rdimOutside
)

// RDimGeometry is the computed geometry of a radial dimension, in local
// space.
type RDimGeometry struct {
	// Radius is the measured radius.
	Radius float64

	// Angle is the direction of the dimension line, from the center.
	Angle float64

	// Direction is the unit vector of Angle.
	Direction Pair

	// Base is the quote anchor, level shift included.
	Base Pair
}

// RDim measures a radius: ref1 is the center and ref2 a point on the
// circumference. The dimension line runs from the center toward pos.
type RDim struct {
	Dim
	geom   RDimGeometry
	center Pair
	isOut  bool
}

// NewRDim creates a detached radial dimension. Its value template is
// "R<>".
func (d *Drawing) NewRDim() *RDim {
	r := &RDim{}
	r.initDim(d, r, "rdim", DressRadialDimension, "R<>", r.trailPath)
	return r
}

// Geometry returns the computed geometry. ok is false when the geometry
// is not up to date.
func (r *RDim) Geometry() (RDimGeometry, bool) {
	return r.geom, r.computed
}

// ComputeGeometry recomputes the geometry from the current inputs.
// It reports false, leaving the diagnostic in GeometryErr, when the
// radius is zero.
func (r *RDim) ComputeGeometry() bool {
	r.begin()
	center, point, pos, err := r.resolveRefs()
	if err != nil {
		return r.fail(err)
	}
	radius := point.Distance(center)
	if radius <= 1e-12 {
		return r.fail(degenerate("ref2", "radius is zero"))
	}

	dir := point.Sub(center).Normalize()
	if pos.Sub(center).Dot(dir) < 0 {
		dir = dir.Neg()
	}
	base := center.Add(dir.Mul(pos.Distance(center)))
	base = base.Add(dir.Mul(r.level * r.Style().BaselineSpacing))

	r.center = center
	r.geom = RDimGeometry{
		Radius:    radius,
		Angle:     dir.Angle(),
		Direction: dir,
		Base:      base,
	}
	return r.succeed()
}

func (r *RDim) arrange() error {
	if !r.computed && !r.ComputeGeometry() {
		return r.failed()
	}
	style := r.Style()
	if err := r.updateQuote(r.geom.Radius, style); err != nil {
		r.extents = Extents{}
		return err
	}
	if _, err := r.measureQuote(); err != nil {
		return err
	}
	r.isOut = r.outside == StateOn
	r.trail.Clear()

	angle := r.QuoteAngle(r.geom.Angle)
	factor := Pt(0, 0)
	if math.Abs(normalizeAngle(angle-r.geom.Angle)) >= math.Pi/2 {
		factor.X = 1
	}
	r.placeQuote(r.geom.Base, angle, factor, style)

	if r.isOut {
		r.marker2.SetSegment(r.trail, rdimOutside, 0)
	} else {
		r.marker2.SetSegment(r.trail, rdimRadius, 1)
	}
	return r.finish()
}

func (r *RDim) trailPath() *Path {
	g := r.geom
	p := NewPath()
	arc := r.center.Add(g.Direction.Mul(g.Radius))

	p.MoveTo(r.center.X, r.center.Y)
	p.LineTo(arc.X, arc.Y)

	p.MoveTo(arc.X, arc.Y)
	p.LineTo(g.Base.X, g.Base.Y)
	p.SetVisible(rdimLeader, g.Base.Distance(r.center) > g.Radius)

	out := arc.Add(g.Direction.Mul(r.Style().Beyond))
	p.MoveTo(arc.X, arc.Y)
	p.LineTo(out.X, out.Y)
	p.SetVisible(rdimOutside, r.isOut)
	return p
}
