package draft

import "math"

// Small equation solvers used by curve extents and dimension geometry.
// The quadratic solver follows kurbo's numerically robust formulation.

// solveQuadratic finds the real roots of a*x^2 + b*x + c = 0 in ascending
// order. A vanishing a degrades to the linear equation.
func solveQuadratic(a, b, c float64) []float64 {
	sc0 := c / a
	sc1 := b / a
	if !isFinite(sc0) || !isFinite(sc1) {
		root := -c / b
		if isFinite(root) {
			return []float64{root}
		}
		if c == 0 && b == 0 {
			return []float64{0}
		}
		return nil
	}

	arg := sc1*sc1 - 4*sc0
	if !isFinite(arg) {
		// Discriminant overflow: x^2 + sc1*x ~ 0.
		return sortedRoots(-sc1, sc0/-sc1)
	}
	if arg < 0 {
		return nil
	}
	if arg == 0 {
		return []float64{-0.5 * sc1}
	}

	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	return sortedRoots(root1, sc0/root1)
}

func sortedRoots(root1, root2 float64) []float64 {
	if !isFinite(root2) {
		return []float64{root1}
	}
	if root1 > root2 {
		return []float64{root2, root1}
	}
	return []float64{root1, root2}
}

// solveQuadraticInUnitInterval returns the roots of a*x^2 + b*x + c = 0
// lying in [0, 1], clamping values within rounding noise of the borders.
func solveQuadraticInUnitInterval(a, b, c float64) []float64 {
	const eps = 1e-12
	var result []float64
	for _, r := range solveQuadratic(a, b, c) {
		if r >= -eps && r <= 1+eps {
			result = append(result, math.Min(math.Max(r, 0), 1))
		}
	}
	return result
}

// intersectLines returns the parameters t and s where p + t*u meets
// q + s*v. ok is false when the directions are (nearly) parallel.
func intersectLines(p, u, q, v Pair) (t, s float64, ok bool) {
	det := u.Cross(v)
	scale := u.Length() * v.Length()
	if scale == 0 || math.Abs(det) <= 1e-12*scale {
		return 0, 0, false
	}
	w := q.Sub(p)
	return w.Cross(v) / det, w.Cross(u) / det, true
}

// isFinite returns true if x is neither infinite nor NaN.
func isFinite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}
