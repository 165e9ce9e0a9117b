package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// shaperPool pools HarfbuzzShaper instances, which keep internal buffers
// and are not safe for concurrent use.
var shaperPool = sync.Pool{
	New: func() any { return &shaping.HarfbuzzShaper{} },
}

// oversample is the factor faces are measured at before scaling back, so
// small drawing-unit sizes (a few millimetres) keep their precision in
// 26.6 fixed point.
const oversample = 64

// Face is a font at a specific size.
// A Face is lightweight; it is not safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64

	shapingFace *gtfont.Face
}

// Source returns the font source the face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the face size.
func (f *Face) Size() float64 {
	return f.size
}

// Advance returns the horizontal advance of s after shaping.
func (f *Face) Advance(s string) float64 {
	if s == "" || f.source == nil {
		return 0
	}
	key := advanceKey{size: f.size, text: s}
	return f.source.advances.getOrCreate(key, func() float64 { return f.shape(s) })
}

// shape runs the HarfBuzz shaper over s.
func (f *Face) shape(s string) float64 {
	if f.shapingFace == nil {
		f.shapingFace = gtfont.NewFace(f.source.shaping)
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      f.shapingFace,
		Size:      floatToFixed(f.size * oversample),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	var advance fixed.Int26_6
	for _, g := range output.Glyphs {
		advance += g.Advance
	}
	return fixedToFloat(advance) / oversample
}

// Metrics returns the vertical metrics of the face.
func (f *Face) Metrics() Metrics {
	if f.source == nil || f.size <= 0 {
		return Metrics{}
	}
	var buf sfnt.Buffer
	m, err := f.source.metrics.Metrics(&buf, floatToFixed(f.size*oversample), font.HintingNone)
	if err != nil {
		return Metrics{}
	}
	scale := func(v fixed.Int26_6) float64 { return fixedToFloat(v) / oversample }
	return Metrics{
		Ascent:    scale(m.Ascent),
		Descent:   scale(m.Descent),
		LineGap:   scale(m.Height) - scale(m.Ascent) - scale(m.Descent),
		XHeight:   scale(m.XHeight),
		CapHeight: scale(m.CapHeight),
	}
}

// Measure returns the advance width and the ascent+descent height of s.
func (f *Face) Measure(s string) (width, height float64) {
	return f.Advance(s), f.Metrics().Height()
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
