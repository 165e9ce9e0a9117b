package draft

import (
	"errors"
	"math"
	"strings"
)

// ThreeState is a layout flag that can be forced on or off, or left to
// the dimension to decide.
type ThreeState uint8

// ThreeState values.
const (
	StateUnknown ThreeState = iota
	StateOff
	StateOn
)

// String returns the name of the state.
func (s ThreeState) String() string {
	switch s {
	case StateOff:
		return "off"
	case StateOn:
		return "on"
	default:
		return "unknown"
	}
}

// Dim holds the state shared by every dimension: reference points, layout
// flags, the quote and the two markers.
//
// Inputs are ref1, ref2, pos and level (plus the kind specific ones).
// Everything else is cache derived from them by ComputeGeometry.
type Dim struct {
	Base

	kind  string
	dress Dress

	ref1, ref2, pos Point
	level           float64
	outside         ThreeState
	detached        ThreeState

	value, min, max string

	trail   *Trail
	quote   *Alignment
	text    *Text
	minText *Text
	maxText *Text
	marker1 *Marker
	marker2 *Marker

	computed     bool
	geometryErr  error
	computations int
}

// initDim sets up the shared state. self must embed this Dim.
func (dm *Dim) initDim(d *Drawing, self Entity, kind string, dress Dress, value string, fn TrailFunc) {
	dm.init(d, self)
	dm.kind = kind
	dm.dress = dress
	dm.value = value
	dm.trail = NewTrail(fn)
	dm.trail.SetMaxAngle(d.MaxArcAngle())
	h := d.register(self, Handle{})

	style := dm.Style()
	dm.quote = d.newOwnedAlignment(Pt(0.5, 0), h)
	dm.quote.localMix = MixDisabled
	dm.text = d.newText("", style.Value)
	dm.minText = d.newText("", style.Limits)
	dm.maxText = d.newText("", style.Limits)
	for _, t := range []*Text{dm.text, dm.minText, dm.maxText} {
		d.register(t, Handle{})
		dm.quote.attach(t)
	}

	dm.marker1 = d.newMarker(style.Marker1, style.MarkerSize, style.Line)
	d.register(dm.marker1, h)
	dm.marker2 = d.newMarker(style.Marker2, style.MarkerSize, style.Line)
	d.register(dm.marker2, h)
}

// Ref1 returns the first reference point.
func (dm *Dim) Ref1() Point { return dm.ref1 }

// Ref2 returns the second reference point.
func (dm *Dim) Ref2() Point { return dm.ref2 }

// Pos returns the position point.
func (dm *Dim) Pos() Point { return dm.pos }

// SetRef1 changes the first reference point.
func (dm *Dim) SetRef1(p Point) {
	dm.ref1 = p
	dm.changed()
}

// SetRef2 changes the second reference point.
func (dm *Dim) SetRef2(p Point) {
	dm.ref2 = p
	dm.changed()
}

// SetRefs changes both reference points.
func (dm *Dim) SetRefs(ref1, ref2 Point) {
	dm.ref1, dm.ref2 = ref1, ref2
	dm.changed()
}

// SetPos changes the position point.
func (dm *Dim) SetPos(p Point) {
	dm.pos = p
	dm.changed()
}

// Level returns the baseline level.
func (dm *Dim) Level() float64 { return dm.level }

// SetLevel changes the baseline level: the baseline is moved away from
// pos by level times the style baseline spacing.
func (dm *Dim) SetLevel(level float64) {
	dm.level = level
	dm.changed()
}

// Outside returns the outside flag as set by the caller.
func (dm *Dim) Outside() ThreeState { return dm.outside }

// SetOutside forces markers outside or inside the extension lines.
func (dm *Dim) SetOutside(s ThreeState) {
	dm.outside = s
	dm.changed()
}

// Detached returns the detached flag as set by the caller.
func (dm *Dim) Detached() ThreeState { return dm.detached }

// SetDetached forces the quote away from the baseline, or on it.
func (dm *Dim) SetDetached(s ThreeState) {
	dm.detached = s
	dm.changed()
}

// Value returns the quote template.
func (dm *Dim) Value() string { return dm.value }

// SetValue changes the quote template. The style number tag ("<>" by
// default) is replaced by the formatted measure.
func (dm *Dim) SetValue(value string) {
	dm.value = value
	dm.changed()
}

// Limits returns the min and max tolerances.
func (dm *Dim) Limits() (min, max string) { return dm.min, dm.max }

// SetLimits changes the min and max tolerances shown right of the value.
// Empty strings hide them.
func (dm *Dim) SetLimits(min, max string) {
	dm.min, dm.max = min, max
	dm.changed()
}

// Dress returns the style id.
func (dm *Dim) Dress() Dress { return dm.dress }

// SetDress changes the style id.
func (dm *Dim) SetDress(dress Dress) {
	dm.dress = dress
	style := dm.Style()
	dm.text.SetFont(style.Value)
	dm.minText.SetFont(style.Limits)
	dm.maxText.SetFont(style.Limits)
	for i, m := range []*Marker{dm.marker1, dm.marker2} {
		shape := style.Marker1
		if i == 1 {
			shape = style.Marker2
		}
		m.SetShape(shape)
		m.SetSize(style.MarkerSize)
		m.SetStyle(style.Line)
	}
	dm.changed()
}

// Style returns the resolved dimension style.
func (dm *Dim) Style() DimStyle {
	if dm.d == nil {
		return NewRegistry().Dim(dm.dress)
	}
	return dm.d.registry.Dim(dm.dress)
}

// Quote returns the alignment holding the quote texts.
func (dm *Dim) Quote() *Alignment { return dm.quote }

// QuoteText returns the text shown by the last arrangement.
func (dm *Dim) QuoteText() string { return dm.text.Text() }

// Trail returns the dimension trail.
func (dm *Dim) Trail() *Trail { return dm.trail }

// Marker1 returns the marker at the first end.
func (dm *Dim) Marker1() *Marker { return dm.marker1 }

// Marker2 returns the marker at the second end.
func (dm *Dim) Marker2() *Marker { return dm.marker2 }

// GeometryErr returns why the last geometry computation failed, or nil.
func (dm *Dim) GeometryErr() error { return dm.geometryErr }

// HasGeometry reports whether the cached geometry is up to date.
func (dm *Dim) HasGeometry() bool { return dm.computed }

// QuoteAngle keeps quote text upright: the angle is normalized to
// (-π, π] and flipped by π when it would turn the text upside down.
func (dm *Dim) QuoteAngle(angle float64) float64 {
	angle = normalizeAngle(angle)
	if angle > math.Pi/2 || angle <= -math.Pi/2 {
		angle = normalizeAngle(angle + math.Pi)
	}
	return angle
}

// changed drops the geometry after an input change.
func (dm *Dim) changed() {
	dm.computed = false
	dm.trail.Clear()
	markDirty(dm.self)
}

func (dm *Dim) each(fn func(Entity)) {
	fn(dm.quote)
	fn(dm.marker1)
	fn(dm.marker2)
}

func (dm *Dim) invalidate(refetch bool) {
	if refetch {
		dm.ref1.Invalidate()
		dm.ref2.Invalidate()
		dm.pos.Invalidate()
	}
	dm.computed = false
	dm.trail.Clear()
}

// resolve returns p in local space, wrapping failures for input.
func (dm *Dim) resolve(input string, p *Point) (Pair, error) {
	pair, err := p.Resolve()
	if err != nil {
		return Pair{}, missing(input, err)
	}
	return dm.LocalMatrix().TransformPoint(pair), nil
}

// resolveRefs resolves ref1, ref2 and pos.
func (dm *Dim) resolveRefs() (ref1, ref2, pos Pair, err error) {
	if ref1, err = dm.resolve("ref1", &dm.ref1); err != nil {
		return
	}
	if ref2, err = dm.resolve("ref2", &dm.ref2); err != nil {
		return
	}
	pos, err = dm.resolve("pos", &dm.pos)
	return
}

// begin counts a geometry computation.
func (dm *Dim) begin() {
	dm.computations++
}

// fail records a geometry failure. The cached geometry is left untouched.
func (dm *Dim) fail(err error) bool {
	dm.computed = false
	dm.geometryErr = err
	return false
}

// succeed marks the geometry as computed.
func (dm *Dim) succeed() bool {
	dm.computed = true
	dm.geometryErr = nil
	dm.trail.Clear()
	return true
}

// failed ends an arrangement whose geometry could not be computed: the
// dimension draws nothing and the diagnostic is logged.
func (dm *Dim) failed() error {
	dm.extents = Extents{}
	err := dm.geometryErr
	attrs := []any{"entity", dm.kind, "err", err}
	var ge *GeometryError
	if errors.As(err, &ge) {
		attrs = append(attrs, "input", ge.Input, "reason", ge.Reason)
	}
	Logger().Warn("draft: dimension geometry not computed", attrs...)
	return err
}

// updateQuote formats measure into the quote texts and lays out the
// limits right of the value.
func (dm *Dim) updateQuote(measure float64, style DimStyle) error {
	number, err := FormatNumber(measure, style)
	if err != nil {
		return err
	}
	tag := style.NumberTag
	if tag == "" {
		tag = "<>"
	}
	dm.text.SetText(strings.ReplaceAll(dm.value, tag, number))
	dm.minText.SetText(dm.min)
	dm.maxText.SetText(dm.max)

	dm.text.measure()
	x := dm.text.width + style.LimitsShift.X
	half := (style.Limits.Size + style.LimitsSpacing) / 2
	dm.maxText.SetGlobalMap(Translate(x, style.LimitsShift.Y-half))
	dm.minText.SetGlobalMap(Translate(x, style.LimitsShift.Y+half))
	return nil
}

// measureQuote arranges the quote and returns its size.
func (dm *Dim) measureQuote() (Pair, error) {
	err := arrangeEntity(dm.quote)
	return dm.quote.Size(), err
}

// placeQuote positions the quote at anchor, rotated by angle.
func (dm *Dim) placeQuote(anchor Pair, angle float64, factor Pair, style DimStyle) {
	dm.quote.SetFactor(factor)
	dm.quote.SetGlobalMap(Translate(anchor.X, anchor.Y).
		Multiply(Rotate(angle)).
		Multiply(Translate(style.QuoteShift.X, style.QuoteShift.Y)))
}

// finish arranges the sub-entities and aggregates the extents.
func (dm *Dim) finish() error {
	var errs []error
	extents, err := dm.trail.Extents()
	if err != nil {
		errs = append(errs, err)
	}
	dm.extents = extents.Transform(dm.GlobalMatrix())
	dm.each(func(e Entity) {
		if err := arrangeEntity(e); err != nil {
			errs = append(errs, err)
		}
		dm.extents = dm.extents.Add(e.base().extents)
	})
	return errors.Join(errs...)
}

func (dm *Dim) render(s Surface) {
	if !dm.computed {
		return
	}
	path, err := dm.trail.CachedPath()
	if err != nil {
		return
	}
	s.Save()
	s.SetTransform(dm.GlobalMatrix())
	s.AppendPath(path)
	s.Stroke(dm.Style().Line)
	s.Restore()
	dm.each(func(e Entity) { e.render(s) })
}
