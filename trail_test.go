package draft

import (
	"errors"
	"math"
	"testing"
)

func countCubics(p *Path) int {
	n := 0
	for _, e := range p.Elements() {
		if _, ok := e.(CubicTo); ok {
			n++
		}
	}
	return n
}

func TestTrailArcConversion(t *testing.T) {
	tests := []struct {
		name     string
		sweep    float64
		maxAngle float64
		want     int
	}{
		{"quarter", math.Pi / 2, math.Pi / 2, 1},
		{"half", math.Pi, math.Pi / 2, 2},
		{"three quarters", 3 * math.Pi / 2, math.Pi / 2, 3},
		{"full", 2 * math.Pi, math.Pi / 2, 4},
		{"small", 0.1, math.Pi / 2, 1},
		{"negative", -math.Pi, math.Pi / 2, 2},
		{"fine", math.Pi, math.Pi / 6, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const start = 0.25
			trail := NewTrail(func() *Path {
				p := NewPath()
				p.Arc(1, 2, 5, start, start+tt.sweep)
				return p
			})
			trail.SetMaxAngle(tt.maxAngle)

			p, err := trail.CachedPath()
			if err != nil {
				t.Fatal(err)
			}
			if got := countCubics(p); got != tt.want {
				t.Errorf("beziers = %d, want %d", got, tt.want)
			}

			var first, last CubicTo
			var startPoint Pair
			for i, e := range p.Elements() {
				switch e := e.(type) {
				case MoveTo:
					if i == 0 {
						startPoint = e.Point
					}
				case CubicTo:
					if first == (CubicTo{}) {
						first = e
					}
					last = e
				}
			}
			arc := ArcTo{Center: Pt(1, 2), Radius: 5, Start: start, End: start + tt.sweep}
			if !startPoint.Near(arc.StartPoint(), 1e-9) {
				t.Errorf("first point = %v, want %v", startPoint, arc.StartPoint())
			}
			if !last.Point.Near(arc.EndPoint(), 1e-9) {
				t.Errorf("last point = %v, want %v", last.Point, arc.EndPoint())
			}
		})
	}
}

func TestTrailArcAfterCurrentPointEmitsLine(t *testing.T) {
	trail := NewTrail(func() *Path {
		p := NewPath()
		p.MoveTo(0, 0)
		p.Arc(0, 0, 10, 0, math.Pi/2)
		return p
	})
	p, err := trail.CachedPath()
	if err != nil {
		t.Fatal(err)
	}
	elems := p.Elements()
	if len(elems) != 3 {
		t.Fatalf("len(elems) = %d, want 3 (move, line, cubic)", len(elems))
	}
	if l, ok := elems[1].(LineTo); !ok || !l.Point.Near(Pt(10, 0), epsilon) {
		t.Errorf("elems[1] = %#v, want LineTo(10, 0)", elems[1])
	}
}

func TestTrailCachesUntilCleared(t *testing.T) {
	calls := 0
	trail := NewTrail(func() *Path {
		calls++
		p := NewPath()
		p.MoveTo(0, 0)
		p.LineTo(float64(calls), 0)
		return p
	})

	p1, _ := trail.CachedPath()
	p2, _ := trail.CachedPath()
	if calls != 1 || p1 != p2 {
		t.Fatalf("CachedPath rebuilt: calls = %d", calls)
	}
	e, _ := trail.Extents()
	if e.Size.X != 1 {
		t.Errorf("extents width = %v, want 1", e.Size.X)
	}

	trail.Clear()
	e, _ = trail.Extents()
	if calls != 2 || e.Size.X != 2 {
		t.Errorf("after Clear: calls = %d, width = %v", calls, e.Size.X)
	}

	if _, err := trail.RawPath(); err != nil || calls != 3 {
		t.Errorf("RawPath must always call back: calls = %d, err = %v", calls, err)
	}
}

func TestTrailReentrancy(t *testing.T) {
	var trail *Trail
	var inner error
	trail = NewTrail(func() *Path {
		_, inner = trail.CachedPath()
		p := NewPath()
		p.MoveTo(0, 0)
		return p
	})
	if _, err := trail.CachedPath(); err != nil {
		t.Fatalf("outer CachedPath() = %v", err)
	}
	if !errors.Is(inner, ErrTrailReentrant) {
		t.Errorf("inner CachedPath() = %v, want ErrTrailReentrant", inner)
	}
}

func TestTrailSegment(t *testing.T) {
	trail := NewTrail(func() *Path {
		p := NewPath()
		p.MoveTo(0, 0)
		p.LineTo(1, 0)
		return p
	})
	if _, err := trail.Segment(0); err != nil {
		t.Errorf("Segment(0) = %v", err)
	}
	if _, err := trail.Segment(1); err == nil {
		t.Error("Segment(1) should fail")
	}
}

func TestTrailMaxAngleCappedToHalfTurn(t *testing.T) {
	trail := NewTrail(func() *Path {
		p := NewPath()
		p.Arc(0, 0, 10, 0, 3*math.Pi/2)
		return p
	})
	trail.SetMaxAngle(2 * math.Pi)
	if got := trail.MaxAngle(); got != math.Pi {
		t.Errorf("MaxAngle() = %v, want π", got)
	}
	path, err := trail.CachedPath()
	if err != nil {
		t.Fatal(err)
	}
	if got := countCubics(path); got != 2 {
		t.Errorf("%d cubics, want 2", got)
	}
	e, err := trail.Extents()
	if err != nil {
		t.Fatal(err)
	}
	const tol = 0.1
	hi := e.Max()
	if math.Abs(e.Org.X+10) > tol || math.Abs(e.Org.Y+10) > tol ||
		math.Abs(hi.X-10) > tol || math.Abs(hi.Y-10) > tol {
		t.Errorf("extents = %v .. %v, want (-10,-10) .. (10,10)", e.Org, hi)
	}
}

func TestArcSegmentCountCapsMaxAngle(t *testing.T) {
	if got := arcSegmentCount(3*math.Pi/2, 2*math.Pi); got != 2 {
		t.Errorf("arcSegmentCount(3π/2, 2π) = %d, want 2", got)
	}
}
