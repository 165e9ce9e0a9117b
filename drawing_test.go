package draft

import (
	"errors"
	"fmt"
	"testing"
)

// fakeSurface logs the calls it receives.
type fakeSurface struct {
	ops     []string
	texts   []string
	paths   []*Path
	onText  func()
	current Matrix
}

func (s *fakeSurface) Save()    { s.ops = append(s.ops, "save") }
func (s *fakeSurface) Restore() { s.ops = append(s.ops, "restore") }

func (s *fakeSurface) SetTransform(m Matrix) {
	s.current = m
	s.ops = append(s.ops, "transform")
}

func (s *fakeSurface) AppendPath(p *Path) {
	s.paths = append(s.paths, p)
	s.ops = append(s.ops, "path")
}

func (s *fakeSurface) Stroke(LineStyle) { s.ops = append(s.ops, "stroke") }
func (s *fakeSurface) Fill(Color)       { s.ops = append(s.ops, "fill") }

func (s *fakeSurface) ShowText(text string, _ Pair, _ FontStyle) {
	s.texts = append(s.texts, text)
	s.ops = append(s.ops, "text")
	if s.onText != nil {
		s.onText()
	}
}

func (s *fakeSurface) count(op string) int {
	n := 0
	for _, o := range s.ops {
		if o == op {
			n++
		}
	}
	return n
}

func TestNewDrawing(t *testing.T) {
	d := New()
	if d.Root() == nil {
		t.Fatal("Root() = nil")
	}
	if d.Len() != 1 {
		t.Errorf("Len() = %d, want 1", d.Len())
	}
	if e, ok := d.Lookup(d.Root().Handle()); !ok || e != Entity(d.Root()) {
		t.Error("Lookup(root handle) did not return the root")
	}
	if _, ok := d.Lookup(Handle{}); ok {
		t.Error("Lookup(zero handle) succeeded")
	}
}

func TestContainerAddErrors(t *testing.T) {
	d := New()
	other := New()

	inner := d.NewContainer()
	if err := d.Root().Add(inner); err != nil {
		t.Fatalf("Add: %v", err)
	}
	nested := d.NewContainer()
	if err := inner.Add(nested); err != nil {
		t.Fatalf("Add nested: %v", err)
	}

	tests := []struct {
		name string
		to   *Container
		e    Entity
		want error
	}{
		{"already attached", d.Root(), inner, ErrAttached},
		{"root", inner, d.Root(), ErrAttached},
		{"foreign", d.Root(), other.NewContainer(), ErrForeignEntity},
		{"self", d.NewContainer(), nil, ErrCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := tt.e
			if e == nil {
				e = tt.to
			}
			if err := tt.to.Add(e); !errors.Is(err, tt.want) {
				t.Errorf("Add() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestContainerCycle(t *testing.T) {
	d := New()
	a := d.NewContainer()
	b := d.NewContainer()
	if err := a.Add(b); err != nil {
		t.Fatal(err)
	}
	// b is detached from the root but owned by a: a cannot go under b.
	if err := b.Add(a); !errors.Is(err, ErrCycle) {
		t.Errorf("Add(ancestor) = %v, want ErrCycle", err)
	}
}

func TestContainerRemove(t *testing.T) {
	d := New()
	c := d.NewContainer()
	if err := d.Root().Add(c); err != nil {
		t.Fatal(err)
	}
	h := c.Handle()
	before := d.Len()

	if err := d.Root().Remove(c); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok := d.Lookup(h); ok {
		t.Error("Lookup succeeded on a removed entity")
	}
	if d.Len() != before-1 {
		t.Errorf("Len() = %d, want %d", d.Len(), before-1)
	}
	if err := d.Root().Remove(c); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("second Remove = %v, want ErrStaleHandle", err)
	}
	if err := c.Add(d.NewContainer()); !errors.Is(err, ErrStaleHandle) {
		t.Errorf("Add on removed container = %v, want ErrStaleHandle", err)
	}
	if err := d.Root().Remove(d.NewContainer()); !errors.Is(err, ErrNotChild) {
		t.Errorf("Remove(non child) = %v, want ErrNotChild", err)
	}
}

func TestRemoveReleasesOwnedEntities(t *testing.T) {
	d := New()
	before := d.Len()
	dim := d.NewLDim()
	if err := d.Root().Add(dim); err != nil {
		t.Fatal(err)
	}
	quote := dim.Quote().Handle()
	if err := d.Root().Remove(dim); err != nil {
		t.Fatal(err)
	}
	if d.Len() != before {
		t.Errorf("Len() = %d after remove, want %d", d.Len(), before)
	}
	if _, ok := d.Lookup(quote); ok {
		t.Error("quote still alive after its dimension was removed")
	}
}

func TestSlotReuseInvalidatesOldHandle(t *testing.T) {
	d := New()
	c := d.NewContainer()
	if err := d.Root().Add(c); err != nil {
		t.Fatal(err)
	}
	old := c.Handle()
	if err := d.Root().Remove(c); err != nil {
		t.Fatal(err)
	}
	reused := d.NewContainer()
	if reused.Handle() == old {
		t.Fatal("reused slot kept the old handle")
	}
	if _, ok := d.Lookup(old); ok {
		t.Error("old handle resolves after slot reuse")
	}
}

func TestTreeBusyDuringRender(t *testing.T) {
	d := New()
	txt := d.NewText("busy")
	if err := d.Root().Add(txt); err != nil {
		t.Fatal(err)
	}
	var addErr error
	s := &fakeSurface{onText: func() {
		addErr = d.Root().Add(d.NewContainer())
	}}
	if err := d.Render(s); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !errors.Is(addErr, ErrTreeBusy) {
		t.Errorf("Add during render = %v, want ErrTreeBusy", addErr)
	}
	if err := d.Root().Add(d.NewContainer()); err != nil {
		t.Errorf("Add after render = %v, want nil", err)
	}
}

func TestDirtyStateMachine(t *testing.T) {
	d := New()
	c := d.NewContainer()
	txt := d.NewText("x")
	if err := c.Add(txt); err != nil {
		t.Fatal(err)
	}
	if err := d.Root().Add(c); err != nil {
		t.Fatal(err)
	}
	if !d.Root().IsDirty() || !txt.IsDirty() {
		t.Fatal("new entities must be dirty")
	}
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}
	if d.Root().IsDirty() || c.IsDirty() || txt.IsDirty() {
		t.Fatal("Arrange left dirty entities")
	}

	c.SetGlobalMap(Translate(10, 0))
	if !c.IsDirty() || !txt.IsDirty() || !d.Root().IsDirty() {
		t.Error("SetGlobalMap must dirty the entity, its descendants and its ancestors")
	}
	if err := d.Arrange(); err != nil {
		t.Fatal(err)
	}

	txt.SetText("y")
	if !txt.IsDirty() || !c.IsDirty() || !d.Root().IsDirty() {
		t.Error("SetText must dirty the ancestors")
	}
}

func TestGlobalMatrixComposition(t *testing.T) {
	d := New()
	c := d.NewContainer()
	c.SetGlobalMap(Translate(10, 20))
	inner := d.NewContainer()
	inner.SetGlobalMap(Scale(2, 2))
	if err := c.Add(inner); err != nil {
		t.Fatal(err)
	}
	if err := d.Root().Add(c); err != nil {
		t.Fatal(err)
	}

	got := inner.GlobalMatrix().TransformPoint(Pt(1, 1))
	if !got.Near(Pt(12, 22), epsilon) {
		t.Errorf("GlobalMatrix (1,1) = %v, want (12,22)", got)
	}

	c.SetGlobalMap(Translate(0, 0))
	got = inner.GlobalMatrix().TransformPoint(Pt(1, 1))
	if !got.Near(Pt(2, 2), epsilon) {
		t.Errorf("after parent change (1,1) = %v, want (2,2)", got)
	}
}

func TestLocalMix(t *testing.T) {
	parentLocal := Translate(5, 0).Multiply(Scale(2, 2))
	own := Translate(1, 1)

	tests := []struct {
		mix  Mix
		want Pair
	}{
		{MixAncestors, Pt(9, 4)},
		{MixAncestorsNormalized, Pt(7, 2)},
		{MixParent, Pt(9, 4)},
		{MixParentNormalized, Pt(7, 2)},
		{MixNone, Pt(2, 2)},
		{MixDisabled, Pt(1, 1)},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.mix), func(t *testing.T) {
			d := New()
			c := d.NewContainer()
			c.SetLocalMap(parentLocal)
			child := d.NewContainer()
			child.SetLocalMap(own)
			child.SetLocalMix(tt.mix)
			if err := c.Add(child); err != nil {
				t.Fatal(err)
			}
			got := child.LocalMatrix().TransformPoint(Pt(1, 1))
			if !got.Near(tt.want, epsilon) {
				t.Errorf("LocalMatrix (1,1) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawingExtents(t *testing.T) {
	d := New()
	e, err := d.Extents()
	if err != nil {
		t.Fatal(err)
	}
	if e.Defined {
		t.Errorf("empty drawing extents = %v, want undefined", e)
	}
}
