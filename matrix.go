package draft

import "math"

// Matrix represents a 2D affine transformation matrix.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, E: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, C: x, E: 1, F: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, E: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin,
		D: sin, E: cos,
	}
}

// Multiply multiplies two matrices (m * other): other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Pair) Pair {
	return Pair{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Pair) Pair {
	return Pair{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float64 {
	return m.A*m.E - m.B*m.D
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.Determinant()
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// ScaleFactor returns the geometric mean scale of the matrix, sqrt(|det|).
// Lengths measured along any axis of a similarity transform scale by it.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// Normalized returns m with its scale factor removed: rotation, shear
// direction and translation are preserved.
// A singular matrix normalizes to its translation.
func (m Matrix) Normalized() Matrix {
	s := m.ScaleFactor()
	if s < 1e-10 {
		return Translate(m.C, m.F)
	}
	return Matrix{
		A: m.A / s, B: m.B / s, C: m.C,
		D: m.D / s, E: m.E / s, F: m.F,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.D == 0 && m.E == 1
}

// Mix selects how an entity's local map composes with its ancestors'.
type Mix uint8

const (
	// MixAncestors composes the local maps of all ancestors (default).
	MixAncestors Mix = iota

	// MixAncestorsNormalized is MixAncestors with the ancestors'
	// scale factor stripped.
	MixAncestorsNormalized

	// MixParent composes only the parent's own local map.
	MixParent

	// MixParentNormalized is MixParent with the scale factor stripped.
	MixParentNormalized

	// MixNone uses the entity's own local map only.
	MixNone

	// MixDisabled ignores local maps entirely (identity).
	MixDisabled
)

var mixNames = [...]string{
	MixAncestors:           "ancestors",
	MixAncestorsNormalized: "ancestors-normalized",
	MixParent:              "parent",
	MixParentNormalized:    "parent-normalized",
	MixNone:                "none",
	MixDisabled:            "disabled",
}

// String returns the name of the mix method.
func (m Mix) String() string {
	if int(m) < len(mixNames) {
		return mixNames[m]
	}
	return "unknown"
}

// mixLocal composes an entity's local map with its parent's matrices.
func mixLocal(mix Mix, parentMatrix, parentMap, own Matrix) Matrix {
	switch mix {
	case MixAncestorsNormalized:
		return parentMatrix.Normalized().Multiply(own)
	case MixParent:
		return parentMap.Multiply(own)
	case MixParentNormalized:
		return parentMap.Normalized().Multiply(own)
	case MixNone:
		return own
	case MixDisabled:
		return Identity()
	default:
		return parentMatrix.Multiply(own)
	}
}
