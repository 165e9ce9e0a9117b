package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	addr *FontSource

	data    []byte
	metrics *opentype.Font
	shaping *gtfont.Font
	name    string

	advances *advanceCache
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	// ParseTTF returns a *Face which embeds the read-only, shareable *Font.
	face, err := gtfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		data:    dataCopy,
		metrics: f,
		shaping: face.Font,

		advances: newAdvanceCache(DefaultAdvanceCapacity),
	}
	s.addr = s
	s.name = fontName(f)
	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}
	return NewFontSource(data)
}

var (
	defaultOnce   sync.Once
	defaultSource *FontSource
)

// Default returns the shared Go Regular font source.
func Default() *FontSource {
	defaultOnce.Do(func() {
		s, err := NewFontSource(goregular.TTF)
		if err != nil {
			panic("text: embedded Go Regular font failed to parse: " + err.Error())
		}
		defaultSource = s
	})
	return defaultSource
}

// Face creates a Face at the specified size (in drawing units).
// Panics if s is nil (e.g. when the NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64) *Face {
	if s == nil {
		panic("text: FontSource is nil; did you check the error from NewFontSourceFromFile?")
	}
	s.copyCheck()
	return &Face{source: s, size: size}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Data returns the raw font data. The slice must not be modified.
// Rendering backends use it to load the same font into their own
// text engine.
func (s *FontSource) Data() []byte {
	s.copyCheck()
	return s.data
}

// copyCheck panics if FontSource was copied by value.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

func fontName(f *opentype.Font) string {
	for _, id := range []sfnt.NameID{sfnt.NameIDFamily, sfnt.NameIDFull} {
		if name, err := f.Name(nil, id); err == nil && name != "" {
			return name
		}
	}
	return "Unknown Font"
}
