package draft

import (
	"math"

	"github.com/gogpu/gg-draft/text"
	"golang.org/x/text/language"
)

// LineStyle describes how a path is stroked.
type LineStyle struct {
	Width float64
	Color Color

	// Dash holds alternating dash and gap lengths. Empty means solid.
	Dash []float64
}

// FontStyle describes how text is shown.
type FontStyle struct {
	// Source is the font. Nil selects text.Default().
	Source *text.FontSource
	Size   float64
	Color  Color
}

// Face returns a measuring face for the style.
func (f FontStyle) Face() *text.Face {
	source := f.Source
	if source == nil {
		source = text.Default()
	}
	return source.Face(f.Size)
}

// DimStyle holds the parameters of a dimension.
type DimStyle struct {
	// Line strokes baselines and extension lines.
	Line LineStyle

	// Value is the font of the measured value, Limits the font of
	// the min/max tolerances.
	Value  FontStyle
	Limits FontStyle

	// Marker1 and Marker2 are the shapes at the two baseline ends.
	Marker1    MarkerShape
	Marker2    MarkerShape
	MarkerSize float64

	// FromOffset is the gap between a reference point and the start of
	// its extension line.
	FromOffset float64

	// ToOffset is how far extension lines overshoot the baseline.
	ToOffset float64

	// BaselineSpacing is the distance between consecutive levels.
	BaselineSpacing float64

	// Beyond is the length of the baseline parts drawn outside the
	// extension lines when markers are outside.
	Beyond float64

	// LimitsSpacing is the vertical gap between the min and max limits.
	LimitsSpacing float64

	// QuoteShift displaces the quote from its anchor, in quote space.
	QuoteShift Pair

	// LimitsShift displaces the limits from the end of the value.
	LimitsShift Pair

	// NumberFormat is a printf-like format with optional parenthesised
	// groups; see FormatNumber.
	NumberFormat string

	// NumberArguments lists the argument of each verb in NumberFormat.
	NumberArguments string

	// NumberTag is replaced by the formatted value in quote templates.
	NumberTag string

	// Decimals is the number of decimals the value is rounded to.
	// Negative values disable rounding.
	Decimals int

	// Language drives locale specific number formatting.
	Language language.Tag
}

// Dress identifies a style in a Registry.
type Dress uint16

// Built-in dresses.
const (
	DressLine Dress = iota
	DressText
	DressDimension
	DressAngularDimension
	DressRadialDimension

	// DressUser is the first id free for application styles.
	DressUser Dress = 64
)

// Registry resolves dresses to concrete styles.
//
// Registry is not safe for concurrent mutation.
type Registry struct {
	lines map[Dress]LineStyle
	fonts map[Dress]FontStyle
	dims  map[Dress]DimStyle
}

// NewRegistry creates a registry filled with the built-in styles.
func NewRegistry() *Registry {
	line := LineStyle{Width: 0.5, Color: Black}
	value := FontStyle{Size: 12, Color: Black}
	limits := FontStyle{Size: 8, Color: Black}

	dim := DimStyle{
		Line:            LineStyle{Width: 0.25, Color: Black},
		Value:           value,
		Limits:          limits,
		Marker1:         MarkerArrow,
		Marker2:         MarkerArrow,
		MarkerSize:      10,
		FromOffset:      6,
		ToOffset:        6,
		BaselineSpacing: 30,
		Beyond:          20,
		LimitsSpacing:   1,
		QuoteShift:      Pt(0, -4),
		LimitsShift:     Pt(2, -2),
		NumberFormat:    "%g",
		NumberArguments: "d",
		NumberTag:       "<>",
		Decimals:        2,
		Language:        language.English,
	}

	angular := dim
	angular.NumberFormat = "%g°(%g')(%g\")"
	angular.NumberArguments = "DMs"
	angular.Decimals = 0

	radial := dim
	radial.Marker1 = MarkerNone

	return &Registry{
		lines: map[Dress]LineStyle{DressLine: line},
		fonts: map[Dress]FontStyle{DressText: value},
		dims: map[Dress]DimStyle{
			DressDimension:        dim,
			DressAngularDimension: angular,
			DressRadialDimension:  radial,
		},
	}
}

// SetLine stores a line style.
func (r *Registry) SetLine(d Dress, s LineStyle) { r.lines[d] = s }

// SetFont stores a font style.
func (r *Registry) SetFont(d Dress, s FontStyle) { r.fonts[d] = s }

// SetDim stores a dimension style.
func (r *Registry) SetDim(d Dress, s DimStyle) { r.dims[d] = s }

// Line returns the line style for d, falling back to DressLine.
func (r *Registry) Line(d Dress) LineStyle {
	if s, ok := r.lines[d]; ok {
		return s
	}
	return r.lines[DressLine]
}

// Font returns the font style for d, falling back to DressText.
func (r *Registry) Font(d Dress) FontStyle {
	if s, ok := r.fonts[d]; ok {
		return s
	}
	return r.fonts[DressText]
}

// Dim returns the dimension style for d, falling back to DressDimension.
func (r *Registry) Dim(d Dress) DimStyle {
	if s, ok := r.dims[d]; ok {
		return s
	}
	return r.dims[DressDimension]
}

// roundTo rounds v to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	if decimals < 0 {
		return v
	}
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
