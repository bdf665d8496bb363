package inspector

import (
	"image"
	"testing"

	"enginegui/internal/draw"
	"enginegui/internal/font"
	"enginegui/internal/geom"
	"enginegui/internal/gui"
)

func testContext() *gui.Context {
	glyphs := make(map[rune]font.GlyphInfo)
	for r := ' '; r <= '~'; r++ {
		glyphs[r] = font.GlyphInfo{Width: 6, Height: 10, XAdvance: 8}
	}
	return gui.NewContext(font.New(16, 16, glyphs, image.NewNRGBA(image.Rect(0, 0, 8, 8))))
}

func frame(c *gui.Context, in gui.Input, build func()) {
	c.Frame(in, 1.0/60, geom.R(0, 0, 800, 600), build)
}

func click(x, y float32) gui.Input {
	var in gui.Input
	in.Click(gui.MouseLeft, geom.V(x, y))
	return in
}

func TestFormat(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Float(1.5), "1.5"},
		{Int(-3), "-3"},
		{Bool(true), "true"},
		{String("abc"), "abc"},
		{Color(draw.RGBA(255, 0, 16, 128)), "#ff001080"},
		{Vec3(1, 2, 0.5), "(1, 2, 0.5)"},
	}
	for _, tt := range tests {
		if got := tt.v.Format(); got != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.v.Kind, tt.want, got)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#102030")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c != draw.RGBA(0x10, 0x20, 0x30, 0xff) {
		t.Errorf("Expected opaque #102030, got %08x", uint32(c))
	}
	if _, err := ParseColor("#12"); err == nil {
		t.Error("Expected an error for a short color")
	}
	if _, err := ParseColor("zzzzzz"); err == nil {
		t.Error("Expected an error for non-hex digits")
	}
}

func TestKindString(t *testing.T) {
	if KindVec3.String() != "Vec3" || Kind(42).String() != "Kind(42)" {
		t.Error("Expected kind names")
	}
	if k, ok := ParseKind("Color"); !ok || k != KindColor {
		t.Errorf("Expected KindColor, got %v %v", k, ok)
	}
	if _, ok := ParseKind("Quat"); ok {
		t.Error("Expected an unknown kind to fail")
	}
}

func TestRegistryDispatch(t *testing.T) {
	r := NewRegistry()
	calls := 0
	r.Register(KindString, func(c *gui.Context, label string, v *Value, readOnly bool) bool {
		calls++
		return false
	})
	c := testContext()
	v := String("x")
	frame(c, gui.Input{}, func() { r.Draw(c, "s", &v, false) })

	if calls != 2 {
		t.Errorf("Expected the drawer to run in both passes, got %d calls", calls)
	}
	if _, ok := r.Lookup(KindVec3); !ok {
		t.Error("Expected a built-in Vec3 drawer")
	}
}

func TestDrawFieldsEditsInt(t *testing.T) {
	r := NewRegistry()
	c := testContext()
	fields := []Field{{Name: "count", Value: Int(5)}}
	var changed []int
	build := func() {
		c.Node("panel").Size(gui.Px(400), gui.Px(300)).Do(func() {
			changed = r.DrawFields(c, fields)
		})
	}

	frame(c, click(150, 10), build)
	if c.FocusID == 0 {
		t.Fatal("Expected the int field to take focus")
	}
	frame(c, gui.Input{Chars: []rune("42")}, build)

	if fields[0].Value.Int != 42 {
		t.Errorf("Expected 42, got %d", fields[0].Value.Int)
	}
	if len(changed) != 1 || changed[0] != 0 {
		t.Errorf("Expected field 0 reported changed, got %v", changed)
	}
}

func TestFloatCommitsOnEnter(t *testing.T) {
	r := NewRegistry()
	c := testContext()
	v := Float(1)
	build := func() {
		c.Node("panel").Size(gui.Px(300), gui.Px(100)).Do(func() {
			r.Draw(c, "f", &v, false)
		})
	}

	frame(c, click(10, 10), build)
	frame(c, gui.Input{Chars: []rune("2.5")}, build)
	if v.Float != 1 {
		t.Errorf("Expected no commit before Enter, got %v", v.Float)
	}

	var enter gui.Input
	enter.Press(gui.KeyEnter)
	frame(c, enter, build)
	if v.Float != 2.5 {
		t.Errorf("Expected 2.5 after Enter, got %v", v.Float)
	}
}

func TestReadOnlyBoolIgnoresClick(t *testing.T) {
	r := NewRegistry()
	c := testContext()
	v := Bool(false)
	build := func() { r.Draw(c, "b", &v, true) }

	frame(c, gui.Input{}, build)
	frame(c, click(5, 5), build)
	if v.Bool {
		t.Error("Expected read-only bool to stay false")
	}
}
