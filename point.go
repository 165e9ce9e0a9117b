package draft

import "reflect"

// Model is a store of named coordinates points can bind to.
type Model interface {
	NamedPair(name string) (Pair, bool)
}

// NamedPairs is a map backed Model.
// Being a map, a NamedPairs value has reference identity: two points bound
// to the same map and name are equal.
type NamedPairs map[string]Pair

// NamedPair implements Model.
func (m NamedPairs) NamedPair(name string) (Pair, bool) {
	p, ok := m[name]
	return p, ok
}

// Set stores a named pair.
func (m NamedPairs) Set(name string, p Pair) {
	m[name] = p
}

// Get is an alias of NamedPair.
func (m NamedPairs) Get(name string) (Pair, bool) {
	return m.NamedPair(name)
}

// Delete removes a named pair.
func (m NamedPairs) Delete(name string) {
	delete(m, name)
}

// Names returns the stored names in unspecified order.
func (m NamedPairs) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	return names
}

type pointKind uint8

const (
	pointUnset pointKind = iota
	pointExplicit
	pointBound
)

// Point is a coordinate that is either unset, an explicit pair or a lazy
// reference to a named pair of a Model.
//
// A bound point caches the value found by the last successful Resolve
// until Invalidate is called.
type Point struct {
	kind     pointKind
	pair     Pair
	model    Model
	name     string
	resolved bool
}

// ExplicitPoint returns a point holding the literal coordinates.
func ExplicitPoint(x, y float64) Point {
	return Point{kind: pointExplicit, pair: Pt(x, y), resolved: true}
}

// PointAt returns an explicit point at p.
func PointAt(p Pair) Point {
	return ExplicitPoint(p.X, p.Y)
}

// BoundPoint returns a point bound to the named pair of m.
func BoundPoint(m Model, name string) Point {
	return Point{kind: pointBound, model: m, name: name}
}

// SetExplicit makes p an explicit point.
func (p *Point) SetExplicit(x, y float64) {
	*p = ExplicitPoint(x, y)
}

// Bind makes p a reference to the named pair of m.
func (p *Point) Bind(m Model, name string) {
	*p = BoundPoint(m, name)
}

// Resolve returns the coordinates of the point, fetching them from the
// model if the point is bound and not up to date.
func (p *Point) Resolve() (Pair, error) {
	switch p.kind {
	case pointExplicit:
		return p.pair, nil
	case pointBound:
		if p.resolved {
			return p.pair, nil
		}
		if p.model == nil {
			return Pair{}, &MissingError{Name: p.name}
		}
		pair, ok := p.model.NamedPair(p.name)
		if !ok {
			return Pair{}, &MissingError{Name: p.name}
		}
		p.pair, p.resolved = pair, true
		return pair, nil
	default:
		return Pair{}, &MissingError{}
	}
}

// Invalidate forces the next Resolve of a bound point to query its model.
func (p *Point) Invalidate() {
	if p.kind == pointBound {
		p.resolved = false
	}
}

// Equal reports whether p and q have the same provenance: equal explicit
// coordinates, or the same model and name.
func (p Point) Equal(q Point) bool {
	if p.kind != q.kind {
		return false
	}
	switch p.kind {
	case pointExplicit:
		return p.pair == q.pair
	case pointBound:
		return p.name == q.name && sameModel(p.model, q.model)
	default:
		return true
	}
}

// IsBound reports whether the point references a model.
func (p Point) IsBound() bool {
	return p.kind == pointBound
}

// IsSet reports whether the point is explicit or bound.
func (p Point) IsSet() bool {
	return p.kind != pointUnset
}

// Name returns the named pair a bound point refers to.
func (p Point) Name() string {
	return p.name
}

// sameModel compares model identity. Reference types (maps, pointers)
// are compared by address, other comparable models by value.
func sameModel(a, b Model) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() {
		return va.IsValid() == vb.IsValid()
	}
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.Func:
		return va.Pointer() == vb.Pointer()
	}
	return va.Comparable() && va.Equal(vb)
}
