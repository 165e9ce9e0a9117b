package draft

import "math"

// Option configures a Drawing during creation.
//
// Example:
//
//	reg := draft.NewRegistry()
//	reg.SetDim(draft.DressDimension, myStyle)
//	d := draft.New(draft.WithRegistry(reg))
type Option func(*drawingOptions)

type drawingOptions struct {
	registry    *Registry
	maxArcAngle float64
}

func defaultOptions() drawingOptions {
	return drawingOptions{
		maxArcAngle: math.Pi / 2,
	}
}

// WithRegistry sets the style registry used by the drawing's entities.
// A nil registry keeps the built-in styles.
func WithRegistry(r *Registry) Option {
	return func(o *drawingOptions) {
		o.registry = r
	}
}

// WithMaxArcAngle sets the largest arc sweep a single Bezier curve may
// approximate in dimension trails. Non-positive values are ignored and
// values above π are capped to π.
func WithMaxArcAngle(angle float64) Option {
	return func(o *drawingOptions) {
		if angle > 0 {
			o.maxArcAngle = math.Min(angle, math.Pi)
		}
	}
}
