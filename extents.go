package draft

import "math"

// Extents is an optional axis-aligned bounding box.
// The zero value is undefined and acts as the identity for Add.
type Extents struct {
	Org     Pair
	Size    Pair
	Defined bool
}

// ExtentsOf returns the smallest extents containing all the given points.
// With no points the result is undefined.
func ExtentsOf(points ...Pair) Extents {
	var e Extents
	for _, p := range points {
		e = e.AddPair(p)
	}
	return e
}

// Max returns the corner opposite to Org.
func (e Extents) Max() Pair {
	return e.Org.Add(e.Size)
}

// Center returns the middle of the box.
func (e Extents) Center() Pair {
	return e.Org.Add(e.Size.Mul(0.5))
}

// Add returns the union of e and other.
// Undefined operands are ignored.
func (e Extents) Add(other Extents) Extents {
	if !other.Defined {
		return e
	}
	if !e.Defined {
		return other
	}
	lo := Pair{X: math.Min(e.Org.X, other.Org.X), Y: math.Min(e.Org.Y, other.Org.Y)}
	emax, omax := e.Max(), other.Max()
	hi := Pair{X: math.Max(emax.X, omax.X), Y: math.Max(emax.Y, omax.Y)}
	return Extents{Org: lo, Size: hi.Sub(lo), Defined: true}
}

// AddPair returns e grown to include p.
func (e Extents) AddPair(p Pair) Extents {
	return e.Add(Extents{Org: p, Defined: true})
}

// Translate returns e moved by v.
func (e Extents) Translate(v Pair) Extents {
	if !e.Defined {
		return e
	}
	e.Org = e.Org.Add(v)
	return e
}

// Transform returns the bounding box of e's corners mapped by m.
func (e Extents) Transform(m Matrix) Extents {
	if !e.Defined {
		return e
	}
	hi := e.Max()
	return ExtentsOf(
		m.TransformPoint(e.Org),
		m.TransformPoint(Pair{X: hi.X, Y: e.Org.Y}),
		m.TransformPoint(hi),
		m.TransformPoint(Pair{X: e.Org.X, Y: hi.Y}),
	)
}

// Contains reports whether p lies inside e (borders included).
func (e Extents) Contains(p Pair) bool {
	if !e.Defined {
		return false
	}
	hi := e.Max()
	return p.X >= e.Org.X && p.X <= hi.X && p.Y >= e.Org.Y && p.Y <= hi.Y
}
