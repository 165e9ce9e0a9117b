package draft

import "math"

// Directions of a linear dimension: the angle the measured distance runs
// along. DirRight measures horizontal distances, DirDown vertical ones.
const (
	DirRight = 0.0
	DirDown  = math.Pi / 2
	DirLeft  = math.Pi
	DirUp    = 3 * math.Pi / 2
)

// Trail segments of a linear dimension.
const (
	ldimBaseline = iota
	ldimOutside1
	ldimOutside2
	ldimExtension1
	ldimExtension2
	ldimLeader
	ldimUnderline
)

// LDimGeometry is the computed geometry of a linear dimension, in local
// space.
type LDimGeometry struct {
	// Base1 and Base2 are the baseline ends, level shift included.
	Base1, Base2 Pair

	// Distance is the measured distance.
	Distance float64
}

// LDim measures the distance between ref1 and ref2 along a direction.
// The baseline passes through pos, perpendicular to the extension lines.
type LDim struct {
	Dim
	direction float64
	hasExt1   bool
	hasExt2   bool

	geom     LDimGeometry
	ref      [2]Pair
	baseDir  Pair
	extDir   Pair
	shift    Pair
	anchor   Pair
	isOut    bool
	isDetach bool
	quoteDir Pair
	quoteW   float64
}

// NewLDim creates a detached linear dimension measuring along DirRight.
func (d *Drawing) NewLDim() *LDim {
	l := &LDim{direction: DirRight, hasExt1: true, hasExt2: true}
	l.initDim(d, l, "ldim", DressDimension, "<>", l.trailPath)
	return l
}

// NewHDim creates a horizontal linear dimension.
func (d *Drawing) NewHDim(ref1, ref2, pos Point) *LDim {
	l := d.NewLDim()
	l.SetRefs(ref1, ref2)
	l.SetPos(pos)
	return l
}

// NewVDim creates a vertical linear dimension.
func (d *Drawing) NewVDim(ref1, ref2, pos Point) *LDim {
	l := d.NewHDim(ref1, ref2, pos)
	l.SetDirection(DirDown)
	return l
}

// Direction returns the measuring direction, in radians.
func (l *LDim) Direction() float64 { return l.direction }

// SetDirection changes the measuring direction.
func (l *LDim) SetDirection(direction float64) {
	l.direction = direction
	l.changed()
}

// HasExtension1 reports whether the first extension line is drawn.
func (l *LDim) HasExtension1() bool { return l.hasExt1 }

// SetHasExtension1 shows or hides the first extension line.
func (l *LDim) SetHasExtension1(show bool) {
	l.hasExt1 = show
	l.changed()
}

// HasExtension2 reports whether the second extension line is drawn.
func (l *LDim) HasExtension2() bool { return l.hasExt2 }

// SetHasExtension2 shows or hides the second extension line.
func (l *LDim) SetHasExtension2(show bool) {
	l.hasExt2 = show
	l.changed()
}

// Geometry returns the computed geometry. ok is false when the geometry
// is not up to date.
func (l *LDim) Geometry() (LDimGeometry, bool) {
	return l.geom, l.computed
}

// Layout returns the outside and detached flags decided by the last
// arrangement.
func (l *LDim) Layout() (outside, detached bool) {
	return l.isOut, l.isDetach
}

// ComputeGeometry recomputes the geometry from the current inputs.
// It reports false, leaving the diagnostic in GeometryErr, when the
// points cannot be resolved or the distance is zero.
func (l *LDim) ComputeGeometry() bool {
	l.begin()
	ref1, ref2, pos, err := l.resolveRefs()
	if err != nil {
		return l.fail(err)
	}
	if ref1.Near(ref2, 1e-12) {
		return l.fail(degenerate("ref2", "reference points coincide"))
	}

	baseDir := FromAngle(l.direction)
	extDir := baseDir.Normal()
	t1, _, ok1 := intersectLines(ref1, extDir, pos, baseDir)
	t2, _, ok2 := intersectLines(ref2, extDir, pos, baseDir)
	if !ok1 || !ok2 {
		return l.fail(degenerate("pos", "baseline parallel to the extension lines"))
	}
	base1 := ref1.Add(extDir.Mul(t1))
	base2 := ref2.Add(extDir.Mul(t2))
	distance := base1.Distance(base2)
	if distance <= 1e-12 {
		return l.fail(degenerate("ref2", "zero distance along the direction"))
	}

	// Extension lines run from the references toward the baseline.
	if t1+t2 < 0 {
		extDir = extDir.Neg()
	}
	style := l.Style()
	l.shift = extDir.Mul(l.level * style.BaselineSpacing)
	l.ref = [2]Pair{ref1, ref2}
	l.extDir = extDir
	l.baseDir = base2.Sub(base1).Normalize()
	l.anchor = pos.Add(l.shift)
	l.geom = LDimGeometry{
		Base1:    base1.Add(l.shift),
		Base2:    base2.Add(l.shift),
		Distance: distance,
	}
	return l.succeed()
}

func (l *LDim) arrange() error {
	if !l.computed && !l.ComputeGeometry() {
		return l.failed()
	}
	style := l.Style()
	if err := l.updateQuote(l.geom.Distance, style); err != nil {
		l.extents = Extents{}
		return err
	}
	size, err := l.measureQuote()
	if err != nil {
		return err
	}
	l.quoteW = size.X
	l.decide(size)
	l.trail.Clear()

	g := l.geom
	if l.isDetach {
		angle := l.QuoteAngle(l.baseDir.Angle())
		l.quoteDir = l.underlineDir(style)
		factor := Pt(0, 0)
		if l.quoteDir.Dot(FromAngle(angle)) < 0 {
			factor.X = 1
		}
		l.placeQuote(l.anchor, angle, factor, style)
	} else {
		l.placeQuote(g.Base1.Mid(g.Base2), l.QuoteAngle(l.baseDir.Angle()), Pt(0.5, 0), style)
	}

	if l.isOut {
		l.marker1.SetSegment(l.trail, ldimOutside1, 0)
		l.marker2.SetSegment(l.trail, ldimOutside2, 0)
	} else {
		l.marker1.SetSegment(l.trail, ldimBaseline, 0)
		l.marker2.SetSegment(l.trail, ldimBaseline, 1)
	}
	return l.finish()
}

// decide resolves the unknown layout flags. Forced flags are kept.
//
// The quote goes on the baseline when it fits together with the markers,
// the markers go outside when they do not fit with the quote.
func (l *LDim) decide(quote Pair) {
	scale := l.GlobalMatrix().ScaleFactor()
	available := l.geom.Distance * scale
	q := quote.X * scale
	markers := 1.25 * (l.marker1.Size() + l.marker2.Size()) * scale

	outside := l.outside == StateOn
	detached := l.detached == StateOn
	switch {
	case l.outside == StateUnknown && l.detached == StateUnknown:
		switch {
		case q+markers < available:
			outside, detached = false, false
		case q < available:
			outside, detached = true, false
		default:
			detached = true
			outside = markers > available
		}
	case l.outside == StateUnknown:
		if detached {
			outside = markers > available
		} else {
			outside = q+markers > available
		}
	case l.detached == StateUnknown:
		if outside {
			detached = q > available
		} else {
			detached = q+markers > available
		}
	}
	l.isOut, l.isDetach = outside, detached
	Logger().Debug("draft: ldim layout",
		"available", available, "quote", q, "markers", markers,
		"outside", outside, "detached", detached)
}

// ends returns the outermost drawn points of the baseline.
func (l *LDim) ends(style DimStyle) (Pair, Pair) {
	g := l.geom
	if l.isOut {
		return g.Base1.Sub(l.baseDir.Mul(style.Beyond)), g.Base2.Add(l.baseDir.Mul(style.Beyond))
	}
	return g.Base1, g.Base2
}

// leaderStart returns the drawn end nearest to the quote anchor.
func (l *LDim) leaderStart(style DimStyle) Pair {
	e1, e2 := l.ends(style)
	if l.anchor.Distance(e1) <= l.anchor.Distance(e2) {
		return e1
	}
	return e2
}

// underlineDir returns the direction the detached quote runs along: away
// from the drawn baseline.
func (l *LDim) underlineDir(style DimStyle) Pair {
	if l.anchor.Sub(l.leaderStart(style)).Dot(l.baseDir) < 0 {
		return l.baseDir.Neg()
	}
	return l.baseDir
}

// hasLeader reports whether the anchor lies off the drawn baseline.
func (l *LDim) hasLeader(style DimStyle) bool {
	e1, e2 := l.ends(style)
	along := l.anchor.Sub(e1).Dot(l.baseDir)
	span := e2.Sub(e1).Dot(l.baseDir)
	if along >= 0 && along <= span {
		return false
	}
	return l.anchor.Distance(l.leaderStart(style)) > 1e-9
}

func (l *LDim) trailPath() *Path {
	style := l.Style()
	g := l.geom
	p := NewPath()

	p.MoveTo(g.Base1.X, g.Base1.Y)
	p.LineTo(g.Base2.X, g.Base2.Y)

	out1 := g.Base1.Sub(l.baseDir.Mul(style.Beyond))
	out2 := g.Base2.Add(l.baseDir.Mul(style.Beyond))
	p.MoveTo(g.Base1.X, g.Base1.Y)
	p.LineTo(out1.X, out1.Y)
	p.SetVisible(ldimOutside1, l.isOut)
	p.MoveTo(g.Base2.X, g.Base2.Y)
	p.LineTo(out2.X, out2.Y)
	p.SetVisible(ldimOutside2, l.isOut)

	for i, base := range []Pair{g.Base1, g.Base2} {
		dir := l.extDir
		if base.Sub(l.ref[i]).Dot(dir) < 0 {
			dir = dir.Neg()
		}
		from := l.ref[i].Add(dir.Mul(style.FromOffset))
		to := base.Add(dir.Mul(style.ToOffset))
		p.MoveTo(from.X, from.Y)
		p.LineTo(to.X, to.Y)
	}
	p.SetVisible(ldimExtension1, l.hasExt1)
	p.SetVisible(ldimExtension2, l.hasExt2)

	start := l.leaderStart(style)
	p.MoveTo(start.X, start.Y)
	p.LineTo(l.anchor.X, l.anchor.Y)
	p.SetVisible(ldimLeader, l.isDetach && l.hasLeader(style))

	end := l.anchor.Add(l.quoteDir.Mul(l.quoteW))
	p.MoveTo(l.anchor.X, l.anchor.Y)
	p.LineTo(end.X, end.Y)
	p.SetVisible(ldimUnderline, l.isDetach)
	return p
}
