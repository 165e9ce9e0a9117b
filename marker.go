package draft

import "math"

// MarkerShape selects the figure drawn by a Marker.
type MarkerShape uint8

// Marker shapes.
const (
	MarkerNone MarkerShape = iota
	MarkerArrow
	MarkerTriangle
	MarkerDot
	MarkerSlash
)

var markerShapeNames = [...]string{
	MarkerNone:     "none",
	MarkerArrow:    "arrow",
	MarkerTriangle: "triangle",
	MarkerDot:      "dot",
	MarkerSlash:    "slash",
}

// String returns the name of the shape.
func (s MarkerShape) String() string {
	if int(s) < len(markerShapeNames) {
		return markerShapeNames[s]
	}
	return "unknown"
}

// filled reports whether the shape is filled rather than stroked.
func (s MarkerShape) filled() bool {
	return s == MarkerArrow || s == MarkerDot
}

// unitPath returns the shape with its tip at the origin and its body
// along +x, one unit long.
func (s MarkerShape) unitPath() *Path {
	p := NewPath()
	switch s {
	case MarkerArrow, MarkerTriangle:
		p.MoveTo(0, 0)
		p.LineTo(1, 0.2)
		p.LineTo(1, -0.2)
		p.Close()
	case MarkerDot:
		p.Arc(0, 0, 0.25, 0, 2*math.Pi)
		p.Close()
	case MarkerSlash:
		p.MoveTo(-0.5, 0.5)
		p.LineTo(0.5, -0.5)
	}
	return p
}

// Marker is a figure attached to one end of a trail segment: its tip sits
// on the segment end and its body follows the segment.
type Marker struct {
	Base
	shape MarkerShape
	size  float64
	style LineStyle

	trail   *Trail
	segment int
	pos     float64

	path *Path
}

// NewMarker creates a detached marker.
func (d *Drawing) NewMarker(shape MarkerShape, size float64) *Marker {
	m := d.newMarker(shape, size, d.registry.Line(DressLine))
	d.register(m, Handle{})
	return m
}

func (d *Drawing) newMarker(shape MarkerShape, size float64, style LineStyle) *Marker {
	m := &Marker{shape: shape, size: size, style: style}
	m.init(d, m)
	m.localMix = MixDisabled
	return m
}

// SetSegment binds the marker to segment index of trail. pos selects the
// end: 0 is the segment start, 1 the segment end.
func (m *Marker) SetSegment(trail *Trail, index int, pos float64) {
	m.trail = trail
	m.segment = index
	m.pos = pos
	m.path = nil
	markDirty(m)
}

// Segment returns the bound segment index and end.
func (m *Marker) Segment() (index int, pos float64) {
	return m.segment, m.pos
}

// Trail returns the bound trail.
func (m *Marker) Trail() *Trail {
	return m.trail
}

// Shape returns the marker shape.
func (m *Marker) Shape() MarkerShape {
	return m.shape
}

// SetShape changes the marker shape.
func (m *Marker) SetShape(shape MarkerShape) {
	m.shape = shape
	m.path = nil
	markDirty(m)
}

// Size returns the marker length.
func (m *Marker) Size() float64 {
	if m.shape == MarkerNone {
		return 0
	}
	return m.size
}

// SetSize changes the marker length.
func (m *Marker) SetSize(size float64) {
	m.size = size
	m.path = nil
	markDirty(m)
}

// SetStyle changes the line style used to stroke or fill the marker.
func (m *Marker) SetStyle(style LineStyle) {
	m.style = style
	markDirty(m)
}

// Path returns the marker outline in trail space, as computed by the
// last arrangement. Nil when the marker draws nothing.
func (m *Marker) Path() *Path {
	return m.path
}

func (m *Marker) arrange() error {
	m.path = nil
	m.extents = Extents{}
	if m.trail == nil || m.shape == MarkerNone || m.size <= 0 {
		return nil
	}
	seg, err := m.trail.Segment(m.segment)
	if err != nil {
		return err
	}

	var tip, dir Pair
	if m.pos < 0.5 {
		tip, dir = seg.Start(), seg.StartTangent()
	} else {
		tip, dir = seg.End(), seg.EndTangent().Neg()
	}
	if dir == (Pair{}) {
		dir = Pt(1, 0)
	}

	frame := Translate(tip.X, tip.Y).
		Multiply(Rotate(dir.Angle())).
		Multiply(Scale(m.size, m.size))
	m.path = convertArcs(m.shape.unitPath(), m.trail.maxAngle).Transform(frame)
	m.extents = m.path.Extents().Transform(m.GlobalMatrix())
	return nil
}

func (m *Marker) render(s Surface) {
	if m.path == nil {
		return
	}
	s.Save()
	s.SetTransform(m.GlobalMatrix())
	s.AppendPath(m.path)
	if m.shape.filled() {
		s.Fill(m.style.Color)
	} else {
		s.Stroke(m.style)
	}
	s.Restore()
}

func (m *Marker) invalidate(bool) {
	m.path = nil
}

func (m *Marker) each(func(Entity)) {}
