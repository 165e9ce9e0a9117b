package draft

import "math"

// Pair is a 2D coordinate or vector.
type Pair struct {
	X, Y float64
}

// Pt is a convenience function to create a Pair.
func Pt(x, y float64) Pair {
	return Pair{X: x, Y: y}
}

// FromAngle returns the unit vector with the given polar angle (radians).
func FromAngle(angle float64) Pair {
	sin, cos := math.Sincos(angle)
	return Pair{X: cos, Y: sin}
}

// Add returns the sum of two pairs (vector addition).
func (p Pair) Add(q Pair) Pair {
	return Pair{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two pairs (vector subtraction).
func (p Pair) Sub(q Pair) Pair {
	return Pair{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the pair scaled by a scalar.
func (p Pair) Mul(s float64) Pair {
	return Pair{X: p.X * s, Y: p.Y * s}
}

// Neg returns the opposite vector.
func (p Pair) Neg() Pair {
	return Pair{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Pair) Dot(q Pair) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
func (p Pair) Cross(q Pair) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Pair) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Pair) Distance(q Pair) float64 {
	return p.Sub(q).Length()
}

// Normalize returns a unit vector in the same direction.
// The zero vector is returned unchanged.
func (p Pair) Normalize() Pair {
	length := p.Length()
	if length == 0 {
		return Pair{}
	}
	return Pair{X: p.X / length, Y: p.Y / length}
}

// SetLength returns a vector with the direction of p and the given length.
func (p Pair) SetLength(length float64) Pair {
	return p.Normalize().Mul(length)
}

// Normal returns p rotated by 90 degrees: (x, y) -> (-y, x).
func (p Pair) Normal() Pair {
	return Pair{X: -p.Y, Y: p.X}
}

// Angle returns the polar angle of the vector in (-π, π].
func (p Pair) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// Rotate returns the vector rotated by angle radians around the origin.
func (p Pair) Rotate(angle float64) Pair {
	sin, cos := math.Sincos(angle)
	return Pair{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Lerp performs linear interpolation between two points.
func (p Pair) Lerp(q Pair, t float64) Pair {
	return Pair{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Mid returns the midpoint between p and q.
func (p Pair) Mid(q Pair) Pair {
	return p.Lerp(q, 0.5)
}

// Near reports whether p and q are within tolerance on both axes.
func (p Pair) Near(q Pair, tolerance float64) bool {
	return math.Abs(p.X-q.X) <= tolerance && math.Abs(p.Y-q.Y) <= tolerance
}

// normalizeAngle brings angle into (-π, π].
func normalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle <= -math.Pi {
		angle += 2 * math.Pi
	} else if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}
