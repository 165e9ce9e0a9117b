// Package svg renders recordings to SVG documents.
//
// Transformations are emitted as SVG matrix attributes, so line widths
// scale with the drawing and text keeps its rotation.
//
//	import _ "github.com/gogpu/gg-draft/recording/backends/svg"
//
//	backend, _ := recording.NewBackend("svg")
//	_ = rec.Playback(backend)
//	_, _ = backend.(recording.WriterBackend).WriteTo(os.Stdout)
package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	draft "github.com/gogpu/gg-draft"
	"github.com/gogpu/gg-draft/recording"
)

func init() {
	recording.Register("svg", func() recording.Backend {
		return NewBackend()
	})
}

// ErrNotFinished is returned when writing a document before End.
var ErrNotFinished = errors.New("svg: document not finished")

// Backend builds an SVG document in memory.
type Backend struct {
	buf    bytes.Buffer
	done   bool
	matrix draft.Matrix
	stack  []draft.Matrix

	// Background fills the canvas when its alpha is not zero.
	Background draft.Color
}

var (
	_ recording.Backend       = (*Backend)(nil)
	_ recording.WriterBackend = (*Backend)(nil)
	_ recording.FileBackend   = (*Backend)(nil)
)

// NewBackend creates an SVG backend with a white background.
func NewBackend() *Backend {
	return &Backend{Background: draft.White}
}

// Begin starts a new document.
func (b *Backend) Begin(width, height int) error {
	b.buf.Reset()
	b.done = false
	b.matrix = draft.Identity()
	b.stack = b.stack[:0]
	fmt.Fprintf(&b.buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		width, height, width, height)
	if b.Background.A > 0 {
		fmt.Fprintf(&b.buf, `<rect width="100%%" height="100%%" fill="%s"%s/>`+"\n",
			b.Background.Hex(), opacity("fill-opacity", b.Background.A))
	}
	return nil
}

// End closes the document.
func (b *Backend) End() error {
	b.buf.WriteString("</svg>\n")
	b.done = true
	return nil
}

// Save pushes the current transformation.
func (b *Backend) Save() {
	b.stack = append(b.stack, b.matrix)
}

// Restore pops the last saved transformation.
func (b *Backend) Restore() {
	if n := len(b.stack); n > 0 {
		b.matrix = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
}

// SetTransform replaces the current transformation.
func (b *Backend) SetTransform(m draft.Matrix) {
	b.matrix = m
}

// StrokePath emits a stroked path element.
func (b *Backend) StrokePath(path *draft.Path, style draft.LineStyle) {
	d := pathData(path)
	if d == "" {
		return
	}
	fmt.Fprintf(&b.buf, `<path d="%s"%s fill="none" stroke="%s"%s stroke-width="%s"`,
		d, b.transform(), style.Color.Hex(), opacity("stroke-opacity", style.Color.A), num(style.Width))
	if len(style.Dash) > 0 {
		parts := make([]string, len(style.Dash))
		for i, v := range style.Dash {
			parts[i] = num(v)
		}
		fmt.Fprintf(&b.buf, ` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	b.buf.WriteString("/>\n")
}

// FillPath emits a filled path element.
func (b *Backend) FillPath(path *draft.Path, c draft.Color) {
	d := pathData(path)
	if d == "" {
		return
	}
	fmt.Fprintf(&b.buf, `<path d="%s"%s fill="%s"%s/>`+"\n",
		d, b.transform(), c.Hex(), opacity("fill-opacity", c.A))
}

// DrawText emits a text element.
func (b *Backend) DrawText(s string, at draft.Pair, font draft.FontStyle) {
	family := "sans-serif"
	if font.Source != nil {
		family = font.Source.Name()
	}
	fmt.Fprintf(&b.buf, `<text x="%s" y="%s"%s font-family="%s" font-size="%s" fill="%s"%s>`,
		num(at.X), num(at.Y), b.transform(), escape(family), num(font.Size),
		font.Color.Hex(), opacity("fill-opacity", font.Color.A))
	b.buf.WriteString(escape(s))
	b.buf.WriteString("</text>\n")
}

// Bytes returns the document. Valid after End.
func (b *Backend) Bytes() []byte {
	return b.buf.Bytes()
}

// WriteTo writes the document to w.
func (b *Backend) WriteTo(w io.Writer) (int64, error) {
	if !b.done {
		return 0, ErrNotFinished
	}
	n, err := w.Write(b.buf.Bytes())
	return int64(n), err
}

// SaveToFile writes the document to the file at path.
func (b *Backend) SaveToFile(path string) error {
	if !b.done {
		return ErrNotFinished
	}
	return os.WriteFile(path, b.buf.Bytes(), 0o644)
}

func (b *Backend) transform() string {
	m := b.matrix
	if m.IsIdentity() {
		return ""
	}
	return fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
		num(m.A), num(m.D), num(m.B), num(m.E), num(m.C), num(m.F))
}

func pathData(path *draft.Path) string {
	if path == nil {
		return ""
	}
	var sb strings.Builder
	for _, elem := range path.Elements() {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		switch e := elem.(type) {
		case draft.MoveTo:
			fmt.Fprintf(&sb, "M%s %s", num(e.Point.X), num(e.Point.Y))
		case draft.LineTo:
			fmt.Fprintf(&sb, "L%s %s", num(e.Point.X), num(e.Point.Y))
		case draft.CubicTo:
			fmt.Fprintf(&sb, "C%s %s %s %s %s %s",
				num(e.Control1.X), num(e.Control1.Y),
				num(e.Control2.X), num(e.Control2.Y),
				num(e.Point.X), num(e.Point.Y))
		case draft.ArcTo:
			writeArc(&sb, e)
		case draft.Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// writeArc emits e as elliptical arc commands, split so no piece sweeps
// more than half a turn.
func writeArc(sb *strings.Builder, e draft.ArcTo) {
	cmd := "L"
	if sb.Len() == 0 {
		cmd = "M"
	}
	start := e.StartPoint()
	fmt.Fprintf(sb, "%s%s %s", cmd, num(start.X), num(start.Y))
	sweep := e.End - e.Start
	n := int(math.Ceil(math.Abs(sweep) / math.Pi))
	if n == 0 {
		return
	}
	flag := 0
	if sweep > 0 {
		flag = 1
	}
	r := num(e.Radius)
	for i := 1; i <= n; i++ {
		angle := e.Start + sweep*float64(i)/float64(n)
		p := e.Center.Add(draft.FromAngle(angle).Mul(e.Radius))
		fmt.Fprintf(sb, " A%s %s 0 0 %d %s %s", r, r, flag, num(p.X), num(p.Y))
	}
}

func opacity(attr string, alpha float64) string {
	if alpha >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, attr, num(alpha))
}

// num prints v with at most four decimals.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		v = 0 // drops the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
