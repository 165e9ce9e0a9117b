package draft

// Text is a single line of text. The origin of the entity is the start of
// the baseline.
//
// By default a Text composes its local map with the ancestors' normalized
// local matrix, so model scaling moves it without resizing the glyphs.
type Text struct {
	Base
	text string
	font FontStyle

	measured bool
	width    float64
	ascent   float64
	descent  float64
}

// NewText creates a detached text entity using the DressText font.
func (d *Drawing) NewText(s string) *Text {
	t := d.newText(s, d.registry.Font(DressText))
	d.register(t, Handle{})
	return t
}

func (d *Drawing) newText(s string, font FontStyle) *Text {
	t := &Text{text: s, font: font}
	t.init(d, t)
	t.localMix = MixAncestorsNormalized
	return t
}

// Text returns the displayed string.
func (t *Text) Text() string {
	return t.text
}

// SetText changes the displayed string.
func (t *Text) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	t.measured = false
	markDirty(t)
}

// Font returns the font style.
func (t *Text) Font() FontStyle {
	return t.font
}

// SetFont changes the font style.
func (t *Text) SetFont(font FontStyle) {
	t.font = font
	t.measured = false
	markDirty(t)
}

// Width returns the advance width measured by the last arrangement, in
// the text's own space.
func (t *Text) Width() float64 {
	return t.width
}

func (t *Text) measure() {
	if t.measured {
		return
	}
	t.width, t.ascent, t.descent = 0, 0, 0
	if t.text != "" {
		face := t.font.Face()
		m := face.Metrics()
		t.width = face.Advance(t.text)
		t.ascent, t.descent = m.Ascent, m.Descent
	}
	t.measured = true
}

func (t *Text) arrange() error {
	t.measure()
	if t.text == "" {
		t.extents = Extents{}
		return nil
	}
	box := Extents{
		Org:     Pt(0, -t.ascent),
		Size:    Pt(t.width, t.ascent+t.descent),
		Defined: true,
	}
	t.extents = box.Transform(t.ctm())
	return nil
}

func (t *Text) render(s Surface) {
	if t.text == "" {
		return
	}
	s.Save()
	s.SetTransform(t.ctm())
	s.ShowText(t.text, Pair{}, t.font)
	s.Restore()
}

func (t *Text) invalidate(refetch bool) {
	if refetch {
		t.measured = false
	}
}

func (t *Text) each(func(Entity)) {}
