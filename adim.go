package draft

import "math"

// Trail segments of an angular dimension.
const (
	adimArc = iota
	adimExtension1
	adimExtension2
)

// ADimGeometry is the computed geometry of an angular dimension, in local
// space.
type ADimGeometry struct {
	// Center is the intersection of the two measured lines.
	Center Pair

	// Angle1 and Angle2 bound the measured sweep, Angle2 >= Angle1.
	Angle1, Angle2 float64

	// Distance is the radius of the arc through pos, level excluded.
	Distance float64
}

// Sweep returns the measured angle in radians.
func (g ADimGeometry) Sweep() float64 {
	return g.Angle2 - g.Angle1
}

// ADim measures the angle between the line org1-ref1 and the line
// org2-ref2. The dimension arc is centered on their intersection and
// passes through pos.
//
// The outside and detached flags are ignored: markers always sit on the
// arc ends and the quote on the arc bisector.
type ADim struct {
	Dim
	org1, org2 Point
	hasExt1    bool
	hasExt2    bool

	geom   ADimGeometry
	ref    [2]Pair
	radius float64
}

// NewADim creates a detached angular dimension.
func (d *Drawing) NewADim() *ADim {
	a := &ADim{hasExt1: true, hasExt2: true}
	a.initDim(d, a, "adim", DressAngularDimension, "<>", a.trailPath)
	return a
}

// Org1 returns the origin of the first line.
func (a *ADim) Org1() Point { return a.org1 }

// Org2 returns the origin of the second line.
func (a *ADim) Org2() Point { return a.org2 }

// SetOrg1 changes the origin of the first line.
func (a *ADim) SetOrg1(p Point) {
	a.org1 = p
	a.changed()
}

// SetOrg2 changes the origin of the second line.
func (a *ADim) SetOrg2(p Point) {
	a.org2 = p
	a.changed()
}

// SetOrgs changes both line origins.
func (a *ADim) SetOrgs(org1, org2 Point) {
	a.org1, a.org2 = org1, org2
	a.changed()
}

// HasExtension1 reports whether the first extension line is drawn.
func (a *ADim) HasExtension1() bool { return a.hasExt1 }

// SetHasExtension1 shows or hides the first extension line.
func (a *ADim) SetHasExtension1(show bool) {
	a.hasExt1 = show
	a.changed()
}

// HasExtension2 reports whether the second extension line is drawn.
func (a *ADim) HasExtension2() bool { return a.hasExt2 }

// SetHasExtension2 shows or hides the second extension line.
func (a *ADim) SetHasExtension2(show bool) {
	a.hasExt2 = show
	a.changed()
}

// Geometry returns the computed geometry. ok is false when the geometry
// is not up to date.
func (a *ADim) Geometry() (ADimGeometry, bool) {
	return a.geom, a.computed
}

// QuoteAngle keeps the quote upright. Angles are compared in degrees
// rounded to the arc second, so a quote exactly on the flipping boundary
// does not toggle on floating point noise.
func (a *ADim) QuoteAngle(angle float64) float64 {
	deg := math.Round(angle*180/math.Pi*3600) / 3600
	return a.Dim.QuoteAngle(deg * math.Pi / 180)
}

func (a *ADim) invalidate(refetch bool) {
	if refetch {
		a.org1.Invalidate()
		a.org2.Invalidate()
	}
	a.Dim.invalidate(refetch)
}

// ComputeGeometry recomputes the geometry from the current inputs.
// It reports false, leaving the diagnostic in GeometryErr, when the
// references coincide, a line has zero length or the lines are parallel.
func (a *ADim) ComputeGeometry() bool {
	a.begin()
	ref1, ref2, pos, err := a.resolveRefs()
	if err != nil {
		return a.fail(err)
	}
	if ref1.Near(ref2, 1e-12) {
		return a.fail(degenerate("ref2", "reference points coincide"))
	}
	org1, err := a.resolve("org1", &a.org1)
	if err != nil {
		return a.fail(err)
	}
	org2, err := a.resolve("org2", &a.org2)
	if err != nil {
		return a.fail(err)
	}

	v1 := ref1.Sub(org1)
	v2 := ref2.Sub(org2)
	if v1.Length() <= 1e-12 {
		return a.fail(degenerate("ref1", "line has zero length"))
	}
	if v2.Length() <= 1e-12 {
		return a.fail(degenerate("ref2", "line has zero length"))
	}
	t, _, ok := intersectLines(org1, v1, org2, v2)
	if !ok {
		return a.fail(degenerate("org2", "lines must not be parallel"))
	}
	center := org1.Add(v1.Mul(t))

	angle1 := v1.Angle()
	angle2 := v2.Angle()
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	distance := pos.Distance(center)
	if distance <= 1e-12 {
		return a.fail(degenerate("pos", "position lies on the vertex"))
	}

	a.ref = [2]Pair{ref1, ref2}
	a.radius = distance + a.level*a.Style().BaselineSpacing
	a.geom = ADimGeometry{
		Center:   center,
		Angle1:   angle1,
		Angle2:   angle2,
		Distance: distance,
	}
	return a.succeed()
}

func (a *ADim) arrange() error {
	if !a.computed && !a.ComputeGeometry() {
		return a.failed()
	}
	style := a.Style()
	degrees := a.geom.Sweep() * 180 / math.Pi
	if err := a.updateQuote(degrees, style); err != nil {
		a.extents = Extents{}
		return err
	}
	if _, err := a.measureQuote(); err != nil {
		return err
	}
	a.trail.Clear()

	bisector := (a.geom.Angle1 + a.geom.Angle2) / 2
	anchor := a.geom.Center.Add(FromAngle(bisector).Mul(a.radius))
	a.placeQuote(anchor, a.QuoteAngle(bisector+math.Pi/2), Pt(0.5, 0), style)

	a.marker1.SetSegment(a.trail, adimArc, 0)
	a.marker2.SetSegment(a.trail, adimArc, 1)
	return a.finish()
}

func (a *ADim) trailPath() *Path {
	style := a.Style()
	g := a.geom
	p := NewPath()

	base1 := g.Center.Add(FromAngle(g.Angle1).Mul(a.radius))
	p.MoveTo(base1.X, base1.Y)
	p.Arc(g.Center.X, g.Center.Y, a.radius, g.Angle1, g.Angle2)

	for i, angle := range []float64{g.Angle1, g.Angle2} {
		dir := FromAngle(angle)
		base := g.Center.Add(dir.Mul(a.radius))
		// The extension starts past the reference, on the side of the arc.
		along := a.ref[i].Sub(g.Center).Dot(dir)
		sign := 1.0
		if along > a.radius {
			sign = -1
		}
		from := g.Center.Add(dir.Mul(along + sign*style.FromOffset))
		to := base.Add(dir.Mul(sign * style.ToOffset))
		p.MoveTo(from.X, from.Y)
		p.LineTo(to.X, to.Y)
	}
	p.SetVisible(adimExtension1, a.hasExt1)
	p.SetVisible(adimExtension2, a.hasExt2)
	return p
}
