package draft

import (
	"errors"
	"math"
	"testing"
)

func newTestRDim(t *testing.T, d *Drawing, center, point, pos Pair) *RDim {
	t.Helper()
	r := d.NewRDim()
	r.SetRefs(PointAt(center), PointAt(point))
	r.SetPos(PointAt(pos))
	if err := d.Root().Add(r); err != nil {
		t.Fatal(err)
	}
	return r
}

func TestRDimSignLaw(t *testing.T) {
	tests := []struct {
		name    string
		pos     Pair
		wantDir Pair
		wantFX  float64
	}{
		{"same side", Pt(20, 0), Pt(1, 0), 0},
		{"opposite side", Pt(-20, 0), Pt(-1, 0), 1},
		{"same side off axis", Pt(15, 40), Pt(1, 0), 0},
		{"opposite side off axis", Pt(-15, -40), Pt(-1, 0), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			r := newTestRDim(t, d, Pt(0, 0), Pt(10, 0), tt.pos)
			if err := d.Arrange(); err != nil {
				t.Fatalf("Arrange: %v", err)
			}
			g, ok := r.Geometry()
			if !ok {
				t.Fatal("Geometry not computed")
			}
			if !g.Direction.Near(tt.wantDir, epsilon) {
				t.Errorf("Direction = %v, want %v", g.Direction, tt.wantDir)
			}
			if math.Abs(g.Radius-10) > epsilon {
				t.Errorf("Radius = %v, want 10", g.Radius)
			}
			wantBase := tt.wantDir.Mul(tt.pos.Length())
			if !g.Base.Near(wantBase, epsilon) {
				t.Errorf("Base = %v, want %v", g.Base, wantBase)
			}
			if f := r.Quote().Factor(); f.X != tt.wantFX {
				t.Errorf("quote factor = %v, want x %v", f, tt.wantFX)
			}
		})
	}
}

func TestRDimIdempotentArrange(t *testing.T) {
	d := New()
	r := newTestRDim(t, d, Pt(0, 0), Pt(5, 0), Pt(20, 0))
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	n := r.computations
	before := r.Extents()

	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	if err := d.Render(&fakeSurface{}); err != nil {
		t.Fatal(err)
	}
	if r.computations != n {
		t.Errorf("geometry recomputed on a clean tree: %d computations, want %d", r.computations, n)
	}
	if r.Extents() != before {
		t.Errorf("extents changed: %v, want %v", r.Extents(), before)
	}
}

func TestRDimQuote(t *testing.T) {
	d := New()
	r := newTestRDim(t, d, Pt(5, 5), Pt(5, 17.5), Pt(5, 40))
	s := &fakeSurface{}
	if err := d.Render(s); err != nil {
		t.Fatal(err)
	}
	if got := r.QuoteText(); got != "R12.5" {
		t.Errorf("QuoteText() = %q, want %q", got, "R12.5")
	}
	// Only the arc end carries a marker.
	if s.count("fill") != 1 {
		t.Errorf("filled %d markers, want 1", s.count("fill"))
	}
}

func TestRDimSegments(t *testing.T) {
	tests := []struct {
		name        string
		pos         Pair
		outside     ThreeState
		wantLeader  bool
		wantOutside bool
		wantMarker  int
	}{
		{"inside", Pt(5, 0), StateUnknown, false, false, rdimRadius},
		{"leader", Pt(30, 0), StateUnknown, true, false, rdimRadius},
		{"outside", Pt(5, 0), StateOn, false, true, rdimOutside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			r := newTestRDim(t, d, Pt(0, 0), Pt(10, 0), tt.pos)
			r.SetOutside(tt.outside)
			if err := d.Arrange(); err != nil {
				t.Fatal(err)
			}
			p, _ := r.Trail().CachedPath()
			if p.Len() != 3 {
				t.Fatalf("trail has %d segments, want 3", p.Len())
			}
			radius, _ := p.Segment(rdimRadius)
			if !radius.Start().Near(Pt(0, 0), epsilon) || !radius.End().Near(Pt(10, 0), epsilon) {
				t.Errorf("radius line = %v -> %v", radius.Start(), radius.End())
			}
			if s, _ := p.Segment(rdimLeader); s.Visible != tt.wantLeader {
				t.Errorf("leader visible = %v, want %v", s.Visible, tt.wantLeader)
			}
			if s, _ := p.Segment(rdimOutside); s.Visible != tt.wantOutside {
				t.Errorf("outside visible = %v, want %v", s.Visible, tt.wantOutside)
			}
			if idx, _ := r.Marker2().Segment(); idx != tt.wantMarker {
				t.Errorf("marker on segment %d, want %d", idx, tt.wantMarker)
			}
		})
	}
}

func TestRDimZeroRadius(t *testing.T) {
	d := New()
	r := newTestRDim(t, d, Pt(3, 3), Pt(3, 3), Pt(10, 10))
	err := d.Arrange()
	if !errors.Is(err, ErrDegenerate) {
		t.Fatalf("Arrange() = %v, want ErrDegenerate", err)
	}
	if r.Extents().Defined {
		t.Error("degenerate radius has defined extents")
	}
}
