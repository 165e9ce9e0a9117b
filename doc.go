// Package draft provides a retained mode scene graph for technical
// drawings.
//
// # Overview
//
// A Drawing owns a tree of entities: containers, texts, alignments,
// markers and dimensions. Entities keep the geometry they derive from
// their inputs and recompute it only when an input, a transformation or
// a bound model point changes. Rendering goes through the Surface
// interface, so the same tree can be rasterized, exported to SVG or
// recorded for later playback (see the recording package).
//
// # Quick Start
//
//	import draft "github.com/gogpu/gg-draft"
//
//	d := draft.New()
//	dim := d.NewHDim(
//	    draft.ExplicitPoint(0, 0),
//	    draft.ExplicitPoint(100, 0),
//	    draft.ExplicitPoint(50, 30),
//	)
//	_ = d.Root().Add(dim)
//
//	rec, err := recording.Record(d, 200, 100)
//
// # Dimensions
//
// Three kinds of dimension are available:
//   - LDim measures a distance along a direction (NewHDim, NewVDim)
//   - ADim measures the angle between two lines
//   - RDim measures a radius
//
// Each dimension draws a trail (baseline, extension lines, leaders), two
// markers and a quote. The quote text comes from the value template,
// where "<>" is replaced by the measure formatted with the style's
// number format. Layout flags (outside markers, detached quote) can be
// forced or left to the dimension.
//
// # Transformations
//
// Every entity has a global map, applied to what it draws in device
// space, and a local map, applied to the points it measures. How the
// local maps of the ancestors combine is chosen per entity with Mix.
//
// # Model Binding
//
// Points are either explicit or bound to a named pair of a Model.
// Bound points are fetched lazily; Drawing.Invalidate forces a refetch
// after the model changed.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right, increasing toward +y
//
// # Concurrency
//
// A Drawing is not safe for concurrent use. Arrange and Render lock the
// tree against structural changes for their duration.
package draft

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
