package recording

import (
	"io"

	draft "github.com/gogpu/gg-draft"
)

// Backend is the interface that all output backends implement. Backends
// receive the recorded commands and translate them to their format
// (raster pixels, SVG elements).
//
// A Backend keeps its own transformation stack for Save and Restore.
// Paths and text positions are given in the space of the current
// transformation.
//
// Backends register themselves in init():
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	// Begin prepares the backend for a canvas of the given size.
	Begin(width, height int) error

	// End finalizes the output.
	End() error

	// Save pushes the current transformation.
	Save()

	// Restore pops the last saved transformation. No-op on an empty stack.
	Restore()

	// SetTransform replaces the current transformation.
	SetTransform(m draft.Matrix)

	// StrokePath strokes path with style.
	StrokePath(path *draft.Path, style draft.LineStyle)

	// FillPath fills path with a solid color.
	FillPath(path *draft.Path, c draft.Color)

	// DrawText draws s with its baseline starting at at.
	DrawText(s string, at draft.Pair, font draft.FontStyle)
}

// WriterBackend is a Backend that can stream its output after End.
type WriterBackend interface {
	Backend

	// WriteTo writes the rendered content to w.
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend is a Backend that can save its output after End.
type FileBackend interface {
	Backend

	// SaveToFile writes the rendered content to the file at path.
	SaveToFile(path string) error
}
