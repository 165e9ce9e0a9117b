// Package raster renders recordings to pixel images using gg.Context.
//
// Paths are replayed through the context path API, so they follow the
// current transformation. Line widths are scaled by the transformation
// scale factor. gg draws text unrotated at device positions: the baseline
// start is transformed, the font size scaled, and any rotation of the
// current transformation is dropped.
//
// # Example
//
//	import _ "github.com/gogpu/gg-draft/recording/backends/raster"
//
//	backend, _ := recording.NewBackend("raster")
//	_ = rec.Playback(backend)
//	_ = backend.(recording.FileBackend).SaveToFile("part.png")
package raster

import (
	"image"
	"io"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"

	draft "github.com/gogpu/gg-draft"
	"github.com/gogpu/gg-draft/recording"
	"github.com/gogpu/gg-draft/text"
)

func init() {
	recording.Register("raster", func() recording.Backend {
		return NewBackend()
	})
}

// Backend renders recordings to an image.
type Backend struct {
	ctx        *gg.Context
	width      int
	height     int
	background draft.Color

	matrix draft.Matrix
	stack  []draft.Matrix
	fonts  map[*text.FontSource]*ggtext.FontSource
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates a raster backend with a white background.
func NewBackend() *Backend {
	return &Backend{background: draft.White}
}

// SetBackground changes the color the canvas is cleared to by Begin.
func (b *Backend) SetBackground(c draft.Color) {
	b.background = c
}

// Begin creates the canvas.
func (b *Backend) Begin(width, height int) error {
	b.width = width
	b.height = height
	b.ctx = gg.NewContext(width, height)
	b.ctx.ClearWithColor(toRGBA(b.background))
	b.matrix = draft.Identity()
	b.stack = b.stack[:0]
	if b.fonts == nil {
		b.fonts = make(map[*text.FontSource]*ggtext.FontSource)
	}
	return nil
}

// End flushes pending drawing operations. The image stays available
// until Close.
func (b *Backend) End() error {
	return b.ctx.FlushGPU()
}

// Close releases the canvas state.
func (b *Backend) Close() error {
	if b.ctx == nil {
		return nil
	}
	return b.ctx.Close()
}

// Save pushes the current transformation.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.matrix)
	b.ctx.Push()
}

// Restore pops the last saved transformation.
func (b *Backend) Restore() {
	n := len(b.stack)
	if n == 0 {
		return
	}
	b.matrix = b.stack[n-1]
	b.stack = b.stack[:n-1]
	b.ctx.Pop()
}

// SetTransform replaces the current transformation.
func (b *Backend) SetTransform(m draft.Matrix) {
	b.matrix = m
	b.ctx.SetTransform(gg.Matrix{
		A: m.A, B: m.B, C: m.C,
		D: m.D, E: m.E, F: m.F,
	})
}

// StrokePath strokes path with style.
func (b *Backend) StrokePath(path *draft.Path, style draft.LineStyle) {
	if path == nil {
		return
	}
	scale := b.matrix.ScaleFactor()
	b.ctx.SetStrokeBrush(gg.Solid(toRGBA(style.Color)))
	b.ctx.SetLineWidth(style.Width * scale)
	if len(style.Dash) > 0 {
		dash := make([]float64, len(style.Dash))
		for i, v := range style.Dash {
			dash[i] = v * scale
		}
		b.ctx.SetDash(dash...)
	} else {
		b.ctx.ClearDash()
	}
	b.setPath(path)
	_ = b.ctx.Stroke()
}

// FillPath fills path with c.
func (b *Backend) FillPath(path *draft.Path, c draft.Color) {
	if path == nil {
		return
	}
	b.ctx.SetFillBrush(gg.Solid(toRGBA(c)))
	b.setPath(path)
	_ = b.ctx.Fill()
}

// DrawText draws s at the transformed baseline start.
func (b *Backend) DrawText(s string, at draft.Pair, font draft.FontStyle) {
	source := b.fontSource(font.Source)
	if source == nil {
		return
	}
	size := font.Size * b.matrix.ScaleFactor()
	if size <= 0 {
		return
	}
	p := b.matrix.TransformPoint(at)
	c := font.Color
	b.ctx.SetRGBA(c.R, c.G, c.B, c.A)
	b.ctx.SetFont(source.Face(size))
	b.ctx.DrawString(s, p.X, p.Y)
}

// fontSource returns the gg font source sharing the data of source.
func (b *Backend) fontSource(source *text.FontSource) *ggtext.FontSource {
	if source == nil {
		source = text.Default()
	}
	if gs, ok := b.fonts[source]; ok {
		return gs
	}
	gs, err := ggtext.NewFontSource(source.Data())
	if err != nil {
		draft.Logger().Warn("raster: font not usable for drawing", "font", source.Name(), "err", err)
		gs = nil
	}
	b.fonts[source] = gs
	return gs
}

func (b *Backend) setPath(path *draft.Path) {
	b.ctx.ClearPath()
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case draft.MoveTo:
			b.ctx.MoveTo(e.Point.X, e.Point.Y)
		case draft.LineTo:
			b.ctx.LineTo(e.Point.X, e.Point.Y)
		case draft.CubicTo:
			b.ctx.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case draft.Close:
			b.ctx.ClosePath()
		}
	}
}

// Image returns the rendered image.
func (b *Backend) Image() image.Image {
	return b.ctx.Image()
}

// WriteTo writes the image as PNG to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := b.ctx.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the image as a PNG file.
func (b *Backend) SaveToFile(path string) error {
	return b.ctx.SavePNG(path)
}

// Width returns the canvas width.
func (b *Backend) Width() int {
	return b.width
}

// Height returns the canvas height.
func (b *Backend) Height() int {
	return b.height
}

func toRGBA(c draft.Color) gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
