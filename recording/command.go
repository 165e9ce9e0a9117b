package recording

import draft "github.com/gogpu/gg-draft"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// State commands
	CmdSave         CommandType = iota // Save current state
	CmdRestore                         // Restore previous state
	CmdSetTransform                    // Set transformation matrix

	// Drawing commands
	CmdStrokePath // Stroke a path
	CmdFillPath   // Fill a path
	CmdDrawText   // Draw a line of text
)

var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdSetTransform: "SetTransform",
	CmdStrokePath:   "StrokePath",
	CmdFillPath:     "FillPath",
	CmdDrawText:     "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is a recorded drawing operation.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// FontRef is a reference to a font source in the resource pool.
type FontRef uint32

// SaveCommand saves the current transformation.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the last saved transformation.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetTransformCommand replaces the current transformation.
type SetTransformCommand struct {
	Matrix draft.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path  PathRef
	Style draft.LineStyle
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

// FillPathCommand fills a path with a solid color.
type FillPathCommand struct {
	Path  PathRef
	Color draft.Color
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

// DrawTextCommand draws a line of text. At is the baseline start in the
// current transformation.
type DrawTextCommand struct {
	Text  string
	At    draft.Pair
	Font  FontRef
	Size  float64
	Color draft.Color
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }
