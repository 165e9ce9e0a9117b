package draft

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrMissing is returned when a point cannot be resolved.
	ErrMissing = errors.New("draft: geometry missing")

	// ErrDegenerate is returned when dimension inputs do not define a
	// measurable geometry (coincident points, parallel lines).
	ErrDegenerate = errors.New("draft: degenerate geometry")

	// ErrTrailReentrant is returned when a trail callback queries its own trail.
	ErrTrailReentrant = errors.New("draft: trail callback is not reentrant")

	// ErrTreeBusy is returned when the tree is mutated during a traversal.
	ErrTreeBusy = errors.New("draft: tree is being traversed")

	// ErrAttached is returned when adding an entity that already has a parent.
	ErrAttached = errors.New("draft: entity already attached")

	// ErrForeignEntity is returned when adding an entity created by
	// another drawing.
	ErrForeignEntity = errors.New("draft: entity belongs to another drawing")

	// ErrCycle is returned when adding an entity to one of its descendants.
	ErrCycle = errors.New("draft: entity would become its own ancestor")

	// ErrStaleHandle is returned when using an entity that was removed.
	ErrStaleHandle = errors.New("draft: stale entity handle")

	// ErrNotChild is returned when removing an entity that is not a child
	// of the container.
	ErrNotChild = errors.New("draft: entity is not a child")
)

// MissingError reports a point that failed to resolve.
type MissingError struct {
	// Name is the named pair that was looked up. Empty for unset points.
	Name string
}

func (e *MissingError) Error() string {
	if e.Name == "" {
		return "draft: geometry missing: point not set"
	}
	return fmt.Sprintf("draft: geometry missing: named pair %q not found", e.Name)
}

// Unwrap returns ErrMissing.
func (e *MissingError) Unwrap() error {
	return ErrMissing
}

// GeometryError reports why a dimension could not compute its geometry.
type GeometryError struct {
	// Input names the offending input: "ref1", "ref2", "pos", "org1" or "org2".
	Input string

	// Reason is a short human readable explanation.
	Reason string

	// Err is the underlying error: ErrDegenerate or a *MissingError.
	Err error
}

func (e *GeometryError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("draft: %s: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("draft: %s: %s: %v", e.Input, e.Reason, e.Err)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}

// missing wraps a point resolution failure for the given input.
func missing(input string, err error) *GeometryError {
	return &GeometryError{Input: input, Err: err}
}

// degenerate returns a GeometryError for a degenerate input.
func degenerate(input, reason string) *GeometryError {
	return &GeometryError{Input: input, Reason: reason, Err: ErrDegenerate}
}
