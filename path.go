package draft

import "math"

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Pair
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Pair
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Pair
	Control2 Pair
	Point    Pair
}

func (CubicTo) isPathElement() {}

// ArcTo draws a circular arc around Center from angle Start to angle End
// (radians). A line joins the current point to the arc start, as in cairo.
// The sweep direction follows the sign of End-Start.
type ArcTo struct {
	Center Pair
	Radius float64
	Start  float64
	End    float64
}

func (ArcTo) isPathElement() {}

// StartPoint returns the first point of the arc.
func (a ArcTo) StartPoint() Pair {
	return a.Center.Add(FromAngle(a.Start).Mul(a.Radius))
}

// EndPoint returns the last point of the arc.
func (a ArcTo) EndPoint() Pair {
	return a.Center.Add(FromAngle(a.End).Mul(a.Radius))
}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Segment is a subpath: the elements following one MoveTo.
// Invisible segments keep their geometry (and their index) but are not
// emitted to the drawing surface.
type Segment struct {
	Elements []PathElement
	Visible  bool
}

// Path represents a vector path as an ordered list of segments.
type Path struct {
	segments []Segment
	start    Pair
	current  Pair
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		segments: make([]Segment, 0, 8),
	}
}

// MoveTo starts a new visible segment at the given point.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.segments = append(p.segments, Segment{
		Elements: []PathElement{MoveTo{Point: pt}},
		Visible:  true,
	})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point. Without a current point it behaves
// like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.segments) == 0 {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.append(LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.segments) == 0 {
		p.MoveTo(c1x, c1y)
	}
	pt := Pt(x, y)
	p.append(CubicTo{Control1: Pt(c1x, c1y), Control2: Pt(c2x, c2y), Point: pt})
	p.current = pt
}

// Arc appends a circular arc primitive. Without a current point the arc
// opens a new segment that starts at the arc start.
func (p *Path) Arc(cx, cy, r, angle1, angle2 float64) {
	arc := ArcTo{Center: Pt(cx, cy), Radius: r, Start: angle1, End: angle2}
	if len(p.segments) == 0 {
		p.segments = append(p.segments, Segment{Visible: true})
		p.start = arc.StartPoint()
	}
	p.append(arc)
	p.current = arc.EndPoint()
}

// Close closes the current segment by drawing a line to its start point.
func (p *Path) Close() {
	if len(p.segments) == 0 {
		return
	}
	p.append(Close{})
	p.current = p.start
}

func (p *Path) append(e PathElement) {
	last := &p.segments[len(p.segments)-1]
	last.Elements = append(last.Elements, e)
}

// Clear removes all segments from the path.
func (p *Path) Clear() {
	p.segments = p.segments[:0]
	p.start = Pair{}
	p.current = Pair{}
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// Segments returns the segments, visible or not.
func (p *Path) Segments() []Segment {
	return p.segments
}

// Segment returns the segment at index i.
func (p *Path) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(p.segments) {
		return Segment{}, false
	}
	return p.segments[i], true
}

// SetVisible toggles the visibility of segment i. Out of range indexes
// are ignored.
func (p *Path) SetVisible(i int, visible bool) {
	if i >= 0 && i < len(p.segments) {
		p.segments[i].Visible = visible
	}
}

// Elements returns the elements of the visible segments, in order.
func (p *Path) Elements() []PathElement {
	var out []PathElement
	for _, s := range p.segments {
		if s.Visible {
			out = append(out, s.Elements...)
		}
	}
	return out
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Pair {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.segments) > 0
}

// Extents returns the tight bounding box of the visible segments.
func (p *Path) Extents() Extents {
	var e Extents
	for _, s := range p.segments {
		if !s.Visible {
			continue
		}
		e = e.Add(s.Extents())
	}
	return e
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := &Path{
		segments: make([]Segment, len(p.segments)),
		start:    p.start,
		current:  p.current,
	}
	for i, s := range p.segments {
		result.segments[i] = Segment{
			Elements: append([]PathElement(nil), s.Elements...),
			Visible:  s.Visible,
		}
	}
	return result
}

// Transform returns a copy of the path with every point mapped by m.
// Arcs are converted to quarter-turn Beziers first, since an affine map
// does not keep them circular.
func (p *Path) Transform(m Matrix) *Path {
	src := convertArcs(p, math.Pi/2)
	for i := range src.segments {
		elems := src.segments[i].Elements
		for j, elem := range elems {
			switch e := elem.(type) {
			case MoveTo:
				elems[j] = MoveTo{Point: m.TransformPoint(e.Point)}
			case LineTo:
				elems[j] = LineTo{Point: m.TransformPoint(e.Point)}
			case CubicTo:
				elems[j] = CubicTo{
					Control1: m.TransformPoint(e.Control1),
					Control2: m.TransformPoint(e.Control2),
					Point:    m.TransformPoint(e.Point),
				}
			}
		}
	}
	src.start = m.TransformPoint(src.start)
	src.current = m.TransformPoint(src.current)
	return src
}

// pieces returns the drawn parts of the segment as cubic curves.
// Lines become degenerate cubics; arcs are split into quarter turns.
func (s Segment) pieces() []CubicBez {
	var (
		out            []CubicBez
		start, current Pair
		has            bool
	)
	lineTo := func(pt Pair) {
		if has {
			out = append(out, CubicBez{P0: current, P1: current, P2: pt, P3: pt})
		} else {
			start = pt
		}
		current, has = pt, true
	}
	for _, elem := range s.Elements {
		switch e := elem.(type) {
		case MoveTo:
			start, current, has = e.Point, e.Point, true
		case LineTo:
			lineTo(e.Point)
		case CubicTo:
			if !has {
				start, current, has = e.Control1, e.Control1, true
			}
			out = append(out, CubicBez{P0: current, P1: e.Control1, P2: e.Control2, P3: e.Point})
			current = e.Point
		case ArcTo:
			arcStart := e.StartPoint()
			if !has || current != arcStart {
				lineTo(arcStart)
			}
			out = append(out, arcCubics(e, math.Pi/2)...)
			current = e.EndPoint()
		case Close:
			if has && current != start {
				out = append(out, CubicBez{P0: current, P1: current, P2: start, P3: start})
			}
			current = start
		}
	}
	return out
}

// Start returns the first point of the segment.
func (s Segment) Start() Pair {
	for _, elem := range s.Elements {
		switch e := elem.(type) {
		case MoveTo:
			return e.Point
		case LineTo:
			return e.Point
		case CubicTo:
			return e.Control1
		case ArcTo:
			return e.StartPoint()
		}
	}
	return Pair{}
}

// End returns the last point reached by the segment.
func (s Segment) End() Pair {
	if pieces := s.pieces(); len(pieces) > 0 {
		return pieces[len(pieces)-1].P3
	}
	return s.Start()
}

// StartTangent returns the direction of the segment at its start.
// A segment without drawn parts has a zero tangent.
func (s Segment) StartTangent() Pair {
	for _, c := range s.pieces() {
		if t := c.StartTangent(); t != (Pair{}) {
			return t
		}
	}
	return Pair{}
}

// EndTangent returns the direction of the segment at its end.
func (s Segment) EndTangent() Pair {
	pieces := s.pieces()
	for i := len(pieces) - 1; i >= 0; i-- {
		if t := pieces[i].EndTangent(); t != (Pair{}) {
			return t
		}
	}
	return Pair{}
}

// Length returns the distance between the segment end points.
func (s Segment) Length() float64 {
	return s.Start().Distance(s.End())
}

// Extents returns the tight bounding box of the segment.
func (s Segment) Extents() Extents {
	pieces := s.pieces()
	if len(pieces) == 0 {
		if len(s.Elements) == 0 {
			return Extents{}
		}
		return ExtentsOf(s.Start())
	}
	var e Extents
	for _, c := range pieces {
		e = e.Add(c.Extents())
	}
	return e
}

// arcSegmentCount returns how many Bezier curves approximate a sweep.
func arcSegmentCount(sweep, maxAngle float64) int {
	if maxAngle <= 0 {
		maxAngle = math.Pi / 2
	}
	// A single cubic cannot follow more than a half turn.
	maxAngle = math.Min(maxAngle, math.Pi)
	// The epsilon keeps exact multiples of maxAngle from rounding up.
	return int(math.Ceil(math.Abs(sweep)/maxAngle - 1e-9))
}

// arcCubics approximates an arc with cubic Bezier curves, none of which
// spans more than maxAngle.
func arcCubics(arc ArcTo, maxAngle float64) []CubicBez {
	sweep := arc.End - arc.Start
	n := arcSegmentCount(sweep, maxAngle)
	if n == 0 {
		return nil
	}
	step := sweep / float64(n)
	out := make([]CubicBez, 0, n)
	for i := range n {
		a1 := arc.Start + float64(i)*step
		out = append(out, arcSegment(arc.Center, arc.Radius, a1, a1+step))
	}
	return out
}

// arcSegment returns the Bezier approximation of a single arc piece.
// Uses the formula from "Drawing an elliptical arc using polylines,
// quadratic or cubic Bezier curves" (L. Maisonobe).
func arcSegment(c Pair, r, a1, a2 float64) CubicBez {
	half := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*half*half) - 1) / 3

	sin1, cos1 := math.Sincos(a1)
	sin2, cos2 := math.Sincos(a2)

	p0 := Pt(c.X+r*cos1, c.Y+r*sin1)
	p3 := Pt(c.X+r*cos2, c.Y+r*sin2)
	return CubicBez{
		P0: p0,
		P1: Pt(p0.X-alpha*r*sin1, p0.Y+alpha*r*cos1),
		P2: Pt(p3.X+alpha*r*sin2, p3.Y-alpha*r*cos2),
		P3: p3,
	}
}

// convertArcs returns a copy of p where every ArcTo is replaced by cubic
// Beziers. Segment count, order and visibility are preserved.
func convertArcs(p *Path, maxAngle float64) *Path {
	out := &Path{
		segments: make([]Segment, len(p.segments)),
		start:    p.start,
		current:  p.current,
	}
	for i, s := range p.segments {
		elems := make([]PathElement, 0, len(s.Elements))
		var current Pair
		has := false
		for _, elem := range s.Elements {
			switch e := elem.(type) {
			case MoveTo:
				current, has = e.Point, true
				elems = append(elems, e)
			case LineTo:
				current, has = e.Point, true
				elems = append(elems, e)
			case CubicTo:
				current, has = e.Point, true
				elems = append(elems, e)
			case ArcTo:
				arcStart := e.StartPoint()
				if !has {
					elems = append(elems, MoveTo{Point: arcStart})
				} else if current != arcStart {
					elems = append(elems, LineTo{Point: arcStart})
				}
				for _, c := range arcCubics(e, maxAngle) {
					elems = append(elems, CubicTo{Control1: c.P1, Control2: c.P2, Point: c.P3})
				}
				current, has = e.EndPoint(), true
			default:
				elems = append(elems, elem)
			}
		}
		out.segments[i] = Segment{Elements: elems, Visible: s.Visible}
	}
	return out
}
