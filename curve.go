package draft

// CubicBez represents a cubic Bezier curve with control points P0..P3.
// P0 is the start point, P3 the end point.
type CubicBez struct {
	P0, P1, P2, P3 Pair
}

// Eval evaluates the curve at parameter t (0 to 1).
func (c CubicBez) Eval(t float64) Pair {
	mt := 1.0 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	// (1-t)^3 * P0 + 3(1-t)^2*t * P1 + 3(1-t)*t^2 * P2 + t^3 * P3
	return Pair{
		X: mt3*c.P0.X + 3*mt2*t*c.P1.X + 3*mt*t2*c.P2.X + t3*c.P3.X,
		Y: mt3*c.P0.Y + 3*mt2*t*c.P1.Y + 3*mt*t2*c.P2.Y + t3*c.P3.Y,
	}
}

// Extrema returns the parameter values where the derivative of x or y
// vanishes inside [0, 1].
func (c CubicBez) Extrema() []float64 {
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)

	result := solveQuadraticInUnitInterval(d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)
	return append(result, solveQuadraticInUnitInterval(d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)...)
}

// Extents returns the tight bounding box of the curve.
func (c CubicBez) Extents() Extents {
	e := ExtentsOf(c.P0, c.P3)
	for _, t := range c.Extrema() {
		e = e.AddPair(c.Eval(t))
	}
	return e
}

// StartTangent returns the direction of the curve at P0.
// Coincident control points fall back to the next distinct one.
func (c CubicBez) StartTangent() Pair {
	for _, p := range [...]Pair{c.P1, c.P2, c.P3} {
		if d := p.Sub(c.P0); d != (Pair{}) {
			return d
		}
	}
	return Pair{}
}

// EndTangent returns the direction of the curve at P3.
func (c CubicBez) EndTangent() Pair {
	for _, p := range [...]Pair{c.P2, c.P1, c.P0} {
		if d := c.P3.Sub(p); d != (Pair{}) {
			return d
		}
	}
	return Pair{}
}
