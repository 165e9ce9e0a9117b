// Package recording captures the drawing operations of a draft.Drawing and
// replays them to output backends.
//
// A Recorder implements draft.Surface. Rendering a drawing into it yields an
// immutable Recording made of typed commands, whose paths and fonts live in
// a ResourcePool and are referenced by index. A Recording can be played back
// any number of times, to any Backend.
//
// Backends register themselves by name, following the database/sql driver
// pattern:
//
//	import _ "github.com/gogpu/gg-draft/recording/backends/raster"
//
//	rec, err := recording.Record(drawing, 800, 600)
//	backend, err := recording.NewBackend("raster")
//	err = rec.Playback(backend)
//
// # Commands
//
//   - State: Save, Restore, SetTransform
//   - Drawing: StrokePath, FillPath, DrawText
//
// Paths are stored with only their visible segments. Arc primitives never
// reach the recording: dimension trails and markers convert them to cubic
// Beziers beforehand.
package recording
