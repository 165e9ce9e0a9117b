package draft

import (
	"errors"
	"math"
	"testing"
)

func newTestHDim(t *testing.T, d *Drawing, ref1, ref2, pos Pair) *LDim {
	t.Helper()
	l := d.NewHDim(PointAt(ref1), PointAt(ref2), PointAt(pos))
	if err := d.Root().Add(l); err != nil {
		t.Fatal(err)
	}
	return l
}

func TestLDimGeometry(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(0, 0), Pt(100, 0), Pt(50, 30))
	if err := d.Arrange(); err != nil {
		t.Fatalf("Arrange: %v", err)
	}
	g, ok := l.Geometry()
	if !ok {
		t.Fatal("Geometry not computed")
	}
	if !g.Base1.Near(Pt(0, 30), epsilon) || !g.Base2.Near(Pt(100, 30), epsilon) {
		t.Errorf("bases = %v %v, want (0,30) (100,30)", g.Base1, g.Base2)
	}
	if math.Abs(g.Distance-100) > epsilon {
		t.Errorf("Distance = %v, want 100", g.Distance)
	}
	if got := l.QuoteText(); got != "100" {
		t.Errorf("QuoteText() = %q, want %q", got, "100")
	}
	if !l.Extents().Defined {
		t.Error("extents undefined after a successful arrange")
	}
}

func TestLDimDistanceLaw(t *testing.T) {
	tests := []struct {
		name      string
		ref1      Pair
		ref2      Pair
		pos       Pair
		direction float64
	}{
		{"horizontal", Pt(0, 0), Pt(40, 10), Pt(20, 50), DirRight},
		{"vertical", Pt(0, 0), Pt(30, 80), Pt(50, 40), DirDown},
		{"left", Pt(10, 10), Pt(-30, 5), Pt(0, -20), DirLeft},
		{"up", Pt(3, 4), Pt(7, -60), Pt(-10, 0), DirUp},
		{"oblique", Pt(0, 0), Pt(50, 20), Pt(0, 40), math.Pi / 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			l := newTestHDim(t, d, tt.ref1, tt.ref2, tt.pos)
			l.SetDirection(tt.direction)
			if !l.ComputeGeometry() {
				t.Fatalf("ComputeGeometry failed: %v", l.GeometryErr())
			}
			g, _ := l.Geometry()
			want := math.Abs(tt.ref2.Sub(tt.ref1).Dot(FromAngle(tt.direction)))
			if math.Abs(g.Distance-want) > 1e-9 {
				t.Errorf("Distance = %v, want %v", g.Distance, want)
			}
			// Both bases lie on the baseline through pos.
			normal := FromAngle(tt.direction).Normal()
			for i, base := range []Pair{g.Base1, g.Base2} {
				if off := base.Sub(tt.pos).Dot(normal); math.Abs(off) > 1e-9 {
					t.Errorf("base%d off the baseline by %v", i+1, off)
				}
			}
		})
	}
}

func TestLDimDegenerate(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(10, 10), Pt(10, 10), Pt(20, 40))

	err := d.Arrange()
	if !errors.Is(err, ErrDegenerate) {
		t.Fatalf("Arrange() = %v, want ErrDegenerate", err)
	}
	var ge *GeometryError
	if !errors.As(err, &ge) || ge.Input != "ref2" {
		t.Errorf("error = %v, want GeometryError on ref2", err)
	}
	if l.HasGeometry() || l.GeometryErr() == nil {
		t.Error("degenerate geometry must not be marked computed")
	}
	if l.Extents().Defined {
		t.Error("degenerate dimension has defined extents")
	}

	s := &fakeSurface{}
	if err := d.Render(s); !errors.Is(err, ErrDegenerate) {
		t.Errorf("Render() = %v, want ErrDegenerate", err)
	}
	if len(s.ops) != 0 {
		t.Errorf("degenerate dimension drew %v", s.ops)
	}
}

func TestLDimZeroDistance(t *testing.T) {
	d := New()
	// Distinct points on the same extension line measure nothing.
	l := newTestHDim(t, d, Pt(10, 0), Pt(10, 50), Pt(20, 80))
	if l.ComputeGeometry() {
		t.Fatal("ComputeGeometry succeeded on a zero distance")
	}
	if !errors.Is(l.GeometryErr(), ErrDegenerate) {
		t.Errorf("GeometryErr() = %v, want ErrDegenerate", l.GeometryErr())
	}
}

func TestLDimMissingPoint(t *testing.T) {
	d := New()
	model := NamedPairs{"a": Pt(0, 0)}
	l := d.NewLDim()
	l.SetRef1(BoundPoint(model, "a"))
	l.SetRef2(BoundPoint(model, "b"))
	l.SetPos(ExplicitPoint(5, 5))
	if err := d.Root().Add(l); err != nil {
		t.Fatal(err)
	}

	err := d.Arrange()
	if !errors.Is(err, ErrMissing) {
		t.Fatalf("Arrange() = %v, want ErrMissing", err)
	}
	var me *MissingError
	if !errors.As(err, &me) || me.Name != "b" {
		t.Errorf("error = %v, want MissingError for %q", err, "b")
	}

	model.Set("b", Pt(80, 0))
	d.Invalidate()
	if err := d.Arrange(); err != nil {
		t.Fatalf("Arrange after fixing the model: %v", err)
	}
	if g, _ := l.Geometry(); math.Abs(g.Distance-80) > epsilon {
		t.Errorf("Distance = %v, want 80", g.Distance)
	}
}

func TestLDimIdempotentArrange(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(0, 0), Pt(100, 0), Pt(50, 30))
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	n := l.computations
	before := l.Extents()

	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	if err := d.Render(&fakeSurface{}); err != nil {
		t.Fatal(err)
	}
	if l.computations != n {
		t.Errorf("geometry recomputed on a clean tree: %d computations, want %d", l.computations, n)
	}
	if l.Extents() != before {
		t.Errorf("extents changed: %v, want %v", l.Extents(), before)
	}
}

func TestLDimInvalidation(t *testing.T) {
	d := New()
	c := d.NewContainer()
	l := d.NewHDim(ExplicitPoint(0, 0), ExplicitPoint(100, 0), ExplicitPoint(50, 30))
	if err := c.Add(l); err != nil {
		t.Fatal(err)
	}
	if err := d.Root().Add(c); err != nil {
		t.Fatal(err)
	}
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}

	t.Run("setter", func(t *testing.T) {
		n := l.computations
		l.SetPos(ExplicitPoint(50, 60))
		if !l.IsDirty() || l.HasGeometry() {
			t.Fatal("SetPos did not invalidate the geometry")
		}
		if err := d.Arrange(); err != nil {
			t.Fatal(err)
		}
		if l.computations != n+1 {
			t.Errorf("computations = %d, want %d", l.computations, n+1)
		}
		if g, _ := l.Geometry(); !g.Base1.Near(Pt(0, 60), epsilon) {
			t.Errorf("Base1 = %v, want (0,60)", g.Base1)
		}
	})

	t.Run("ancestor local map", func(t *testing.T) {
		c.SetLocalMap(Scale(2, 2))
		if !l.IsDirty() {
			t.Fatal("ancestor transform did not dirty the dimension")
		}
		if err := d.Arrange(); err != nil {
			t.Fatal(err)
		}
		if g, _ := l.Geometry(); math.Abs(g.Distance-200) > epsilon {
			t.Errorf("Distance = %v, want 200", g.Distance)
		}
		if got := l.QuoteText(); got != "200" {
			t.Errorf("QuoteText() = %q, want %q", got, "200")
		}
	})
}

func TestLDimInputsInvalidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *LDim, c *Container)
	}{
		{"pos", func(l *LDim, _ *Container) { l.SetPos(ExplicitPoint(50, 90)) }},
		{"level", func(l *LDim, _ *Container) { l.SetLevel(2) }},
		{"direction", func(l *LDim, _ *Container) { l.SetDirection(DirDown) }},
		{"outside", func(l *LDim, _ *Container) { l.SetOutside(StateOn) }},
		{"detached", func(l *LDim, _ *Container) { l.SetDetached(StateOn) }},
		{"ancestor local map", func(_ *LDim, c *Container) { c.SetLocalMap(Scale(2, 2)) }},
		{"ancestor global map", func(_ *LDim, c *Container) { c.SetGlobalMap(Translate(10, 0)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			c := d.NewContainer()
			l := d.NewHDim(ExplicitPoint(0, 0), ExplicitPoint(100, 50), ExplicitPoint(50, 80))
			if err := c.Add(l); err != nil {
				t.Fatal(err)
			}
			if err := d.Root().Add(c); err != nil {
				t.Fatal(err)
			}
			if err := d.Arrange(); err != nil {
				t.Fatal(err)
			}
			n := l.computations

			tt.mutate(l, c)
			if !l.IsDirty() || l.HasGeometry() {
				t.Fatal("geometry still cached after the change")
			}
			if err := d.Render(&fakeSurface{}); err != nil {
				t.Fatal(err)
			}
			if l.computations != n+1 {
				t.Errorf("computations = %d, want %d", l.computations, n+1)
			}
			if !l.HasGeometry() {
				t.Error("geometry not recomputed by Render")
			}
		})
	}
}

func TestLDimLevel(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(0, 0), Pt(100, 0), Pt(50, 30))
	l.SetLevel(1)
	if !l.ComputeGeometry() {
		t.Fatal(l.GeometryErr())
	}
	spacing := l.Style().BaselineSpacing
	if g, _ := l.Geometry(); math.Abs(g.Base1.Y-(30+spacing)) > epsilon {
		t.Errorf("Base1.Y = %v, want %v", g.Base1.Y, 30+spacing)
	}
}

func TestLDimSegments(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(0, 0), Pt(100, 0), Pt(50, 30))
	l.SetOutside(StateOn)
	l.SetDetached(StateOff)
	l.SetHasExtension1(false)
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	p, err := l.Trail().CachedPath()
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 7 {
		t.Fatalf("trail has %d segments, want 7", p.Len())
	}
	want := []bool{true, true, true, false, true, false, false}
	for i, visible := range want {
		s, _ := p.Segment(i)
		if s.Visible != visible {
			t.Errorf("segment %d visible = %v, want %v", i, s.Visible, visible)
		}
	}

	seg, _ := p.Segment(ldimExtension2)
	if start := seg.Start(); !start.Near(Pt(100, l.Style().FromOffset), epsilon) {
		t.Errorf("extension 2 starts at %v", start)
	}
	if idx, _ := l.Marker1().Segment(); idx != ldimOutside1 {
		t.Errorf("marker1 on segment %d, want %d", idx, ldimOutside1)
	}
}

func TestLDimDetachedSegments(t *testing.T) {
	d := New()
	// pos lies right of ref2: the quote hangs off a leader.
	l := newTestHDim(t, d, Pt(0, 0), Pt(100, 0), Pt(180, 30))
	l.SetOutside(StateOff)
	l.SetDetached(StateOn)
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	p, _ := l.Trail().CachedPath()
	for _, i := range []int{ldimLeader, ldimUnderline} {
		if s, _ := p.Segment(i); !s.Visible {
			t.Errorf("segment %d hidden on a detached dimension", i)
		}
	}
	leader, _ := p.Segment(ldimLeader)
	if !leader.Start().Near(Pt(100, 30), epsilon) || !leader.End().Near(Pt(180, 30), epsilon) {
		t.Errorf("leader = %v -> %v, want (100,30) -> (180,30)", leader.Start(), leader.End())
	}
	if f := l.Quote().Factor(); f.X != 0 {
		t.Errorf("quote factor = %v, want left aligned", f)
	}
}

// The outside/detached thresholds are a layout policy: these cases only
// pin the clear-cut outcomes.
func TestLDimLayoutPolicy(t *testing.T) {
	tests := []struct {
		name         string
		length       float64
		wantOutside  bool
		wantDetached bool
	}{
		{"plenty of room", 1000, false, false},
		{"markers do not fit", 30, true, false},
		{"nothing fits", 1, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New()
			l := newTestHDim(t, d, Pt(0, 0), Pt(tt.length, 0), Pt(tt.length/2, 30))
			if err := d.Arrange(); err != nil {
				t.Fatal(err)
			}
			outside, detached := l.Layout()
			if outside != tt.wantOutside || detached != tt.wantDetached {
				t.Errorf("Layout() = (%v, %v), want (%v, %v)", outside, detached, tt.wantOutside, tt.wantDetached)
			}
		})
	}
}

func TestLDimForcedFlagsWin(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(0, 0), Pt(1, 0), Pt(0.5, 30))
	l.SetOutside(StateOff)
	l.SetDetached(StateOff)
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	if outside, detached := l.Layout(); outside || detached {
		t.Errorf("Layout() = (%v, %v), want forced (false, false)", outside, detached)
	}
}

func TestLDimMarkers(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(0, 0), Pt(1000, 0), Pt(500, 30))
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	g, _ := l.Geometry()
	for i, tc := range []struct {
		m   *Marker
		tip Pair
	}{{l.Marker1(), g.Base1}, {l.Marker2(), g.Base2}} {
		p := tc.m.Path()
		if p == nil {
			t.Fatalf("marker%d has no path", i+1)
		}
		first := p.Segments()[0].Elements[0].(MoveTo).Point
		if !first.Near(tc.tip, 1e-6) {
			t.Errorf("marker%d tip = %v, want %v", i+1, first, tc.tip)
		}
		if !p.Extents().Transform(Identity()).Contains(tc.tip) {
			t.Errorf("marker%d extents miss the tip", i+1)
		}
	}
	// Inline arrows point outward: their bodies lie inside the baseline.
	if c := l.Marker1().Path().Extents().Center(); c.X <= g.Base1.X {
		t.Errorf("marker1 body at %v, want right of %v", c, g.Base1)
	}
}

func TestLDimRenders(t *testing.T) {
	d := New()
	newTestHDim(t, d, Pt(0, 0), Pt(500, 0), Pt(250, 30))
	s := &fakeSurface{}
	if err := d.Render(s); err != nil {
		t.Fatal(err)
	}
	if s.count("stroke") == 0 || s.count("fill") != 2 {
		t.Errorf("ops = %v, want strokes and two filled arrows", s.ops)
	}
	if len(s.texts) != 1 || s.texts[0] != "500" {
		t.Errorf("texts = %q, want [500]", s.texts)
	}
	if s.count("save") != s.count("restore") {
		t.Errorf("unbalanced save/restore in %v", s.ops)
	}
}

func TestLDimLimits(t *testing.T) {
	d := New()
	l := newTestHDim(t, d, Pt(0, 0), Pt(1000, 0), Pt(500, 30))
	l.SetLimits("-0.1", "+0.2")
	s := &fakeSurface{}
	if err := d.Render(s); err != nil {
		t.Fatal(err)
	}
	if len(s.texts) != 3 {
		t.Fatalf("texts = %q, want value and two limits", s.texts)
	}
	if l.maxText.GlobalMap().F >= l.minText.GlobalMap().F {
		t.Error("max limit must sit above min limit")
	}
}

func TestQuoteAngleUpright(t *testing.T) {
	d := New()
	l := d.NewLDim()
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 4, math.Pi / 4},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, 0},
		{-math.Pi / 2, math.Pi / 2},
		{3 * math.Pi / 4, -math.Pi / 4},
	}
	for _, tt := range tests {
		if got := l.QuoteAngle(tt.in); math.Abs(got-tt.want) > epsilon {
			t.Errorf("QuoteAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
