package recording

import (
	"fmt"

	draft "github.com/gogpu/gg-draft"
)

// Recorder captures drawing operations as commands. It implements
// draft.Surface: paths appended with AppendPath accumulate until the next
// Stroke or Fill, which records them and starts a new path.
//
// Example:
//
//	rec := recording.NewRecorder(800, 600)
//	if err := drawing.Render(rec); err != nil {
//	    // a dimension could not compute its geometry
//	}
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	current *draft.Path
	depth   int
}

var _ draft.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		current:   draft.NewPath(),
	}
}

// Record renders d into a new recording of the given canvas size. The
// recording holds whatever could be drawn; the error joins the
// diagnostics of the dimensions that could not.
func Record(d *draft.Drawing, width, height int) (*Recording, error) {
	rec := NewRecorder(width, height)
	err := d.Render(rec)
	return rec.Finish(), err
}

// Finish returns the immutable Recording of all commands so far. Pending
// Save calls are balanced with Restore commands. The Recorder must not be
// used afterwards.
func (r *Recorder) Finish() *Recording {
	for ; r.depth > 0; r.depth-- {
		r.commands = append(r.commands, RestoreCommand{})
	}
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Save implements draft.Surface.
func (r *Recorder) Save() {
	r.depth++
	r.commands = append(r.commands, SaveCommand{})
}

// Restore implements draft.Surface. Unbalanced calls are ignored.
func (r *Recorder) Restore() {
	if r.depth == 0 {
		return
	}
	r.depth--
	r.commands = append(r.commands, RestoreCommand{})
}

// SetTransform implements draft.Surface.
func (r *Recorder) SetTransform(m draft.Matrix) {
	r.commands = append(r.commands, SetTransformCommand{Matrix: m})
}

// AppendPath implements draft.Surface. Only visible segments are kept.
func (r *Recorder) AppendPath(p *draft.Path) {
	if p == nil {
		return
	}
	appendElements(r.current, p.Elements())
}

// Stroke implements draft.Surface.
func (r *Recorder) Stroke(style draft.LineStyle) {
	if r.current.Len() == 0 {
		return
	}
	ref := r.resources.AddPath(r.current)
	r.commands = append(r.commands, StrokePathCommand{Path: ref, Style: style})
	r.current.Clear()
}

// Fill implements draft.Surface.
func (r *Recorder) Fill(c draft.Color) {
	if r.current.Len() == 0 {
		return
	}
	ref := r.resources.AddPath(r.current)
	r.commands = append(r.commands, FillPathCommand{Path: ref, Color: c})
	r.current.Clear()
}

// ShowText implements draft.Surface.
func (r *Recorder) ShowText(s string, at draft.Pair, font draft.FontStyle) {
	if s == "" {
		return
	}
	r.commands = append(r.commands, DrawTextCommand{
		Text:  s,
		At:    at,
		Font:  r.resources.AddFont(font.Source),
		Size:  font.Size,
		Color: font.Color,
	})
}

// appendElements copies elements to dst.
func appendElements(dst *draft.Path, elements []draft.PathElement) {
	for _, elem := range elements {
		switch e := elem.(type) {
		case draft.MoveTo:
			dst.MoveTo(e.Point.X, e.Point.Y)
		case draft.LineTo:
			dst.LineTo(e.Point.X, e.Point.Y)
		case draft.CubicTo:
			dst.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case draft.ArcTo:
			dst.Arc(e.Center.X, e.Center.Y, e.Radius, e.Start, e.End)
		case draft.Close:
			dst.Close()
		}
	}
}

// Recording is an immutable list of drawing commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Resources returns the resource pool of the recording.
func (r *Recording) Resources() *ResourcePool {
	return r.resources
}

// Playback replays the recording to backend, between Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	for i, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case SetTransformCommand:
			backend.SetTransform(c.Matrix)
		case StrokePathCommand:
			backend.StrokePath(r.resources.Path(c.Path), c.Style)
		case FillPathCommand:
			backend.FillPath(r.resources.Path(c.Path), c.Color)
		case DrawTextCommand:
			font := draft.FontStyle{
				Source: r.resources.Font(c.Font),
				Size:   c.Size,
				Color:  c.Color,
			}
			backend.DrawText(c.Text, c.At, font)
		default:
			return fmt.Errorf("recording: command %d: unsupported type %s", i, cmd.Type())
		}
	}
	return backend.End()
}
