package gui

import (
	"testing"

	"enginegui/internal/draw"
	"enginegui/internal/geom"
)

// field declares a single input field at (10,10) that is 200 pixels wide.
func field(c *Context, value *string, maxLength int, flags InputFlags, result *bool) func() {
	return func() {
		r := c.InputField("field", value, maxLength, flags, Px(10), Px(10), Px(200))
		if c.Pass() == PassRender {
			*result = r
		}
	}
}

func TestInputFieldTyping(t *testing.T) {
	c := newTestContext()
	value := ""
	var changed bool
	build := field(c, &value, 0, 0, &changed)

	run(c, clickAt(20, 20), build)
	if c.FocusID == 0 {
		t.Fatal("Expected click to focus the field")
	}
	if changed {
		t.Error("Expected no change on the focusing click")
	}

	run(c, typing("abc"), build)
	if value != "abc" {
		t.Errorf("Expected value abc, got %q", value)
	}
	if !changed {
		t.Error("Expected typing to report a change")
	}

	run(c, pressing(KeyEnter), build)
	if !changed {
		t.Error("Expected Enter to report true for a single-line field")
	}
	if c.FocusID != 0 || c.EditStateCount() != 0 {
		t.Errorf("Expected Enter to release focus, got focus %v with %d edit states", c.FocusID, c.EditStateCount())
	}
}

func TestInputFieldPolicies(t *testing.T) {
	tests := []struct {
		name      string
		flags     InputFlags
		maxLength int
		typed     string
		want      string
	}{
		{"numbers only", InputNumbersOnly, 0, "a1b2", "12"},
		{"max length", 0, 3, "abcdef", "abc"},
		{"read only", InputReadOnly, 0, "abc", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext()
			value := ""
			var changed bool
			build := field(c, &value, tt.maxLength, tt.flags, &changed)
			run(c, clickAt(20, 20), build)
			run(c, typing(tt.typed), build)
			if value != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, value)
			}
		})
	}
}

func TestInputFieldClickOutsideReleasesFocus(t *testing.T) {
	c := newTestContext()
	value := "x"
	var changed bool
	build := field(c, &value, 0, 0, &changed)

	run(c, clickAt(20, 20), build)
	run(c, clickAt(500, 500), build)
	if c.FocusID != 0 {
		t.Error("Expected click outside to release focus")
	}
}

func TestInputFieldOnlyDisplayNeverFocuses(t *testing.T) {
	c := newTestContext()
	value := "shown"
	var changed bool
	build := field(c, &value, 0, InputOnlyDisplay, &changed)

	run(c, clickAt(20, 20), build)
	if c.FocusID != 0 {
		t.Error("Expected display-only field to ignore focus")
	}
}

func TestInputFieldAutoSelectAll(t *testing.T) {
	c := newTestContext()
	value := "hello"
	var changed bool
	build := field(c, &value, 0, InputAutoSelectAll, &changed)

	run(c, clickAt(20, 20), build)
	st := c.EditState(c.FocusID)
	if st == nil {
		t.Fatal("Expected an edit state for the focused field")
	}
	if lo, hi := st.Selection(); lo != 0 || hi != 5 {
		t.Errorf("Expected selection [0,5), got [%d,%d)", lo, hi)
	}

	run(c, typing("x"), build)
	if value != "x" {
		t.Errorf("Expected typing to replace the selection, got %q", value)
	}
}

func TestInputFieldClipboard(t *testing.T) {
	c := newTestContext()
	value := "copy me"
	var changed bool
	build := field(c, &value, 0, 0, &changed)

	run(c, clickAt(20, 20), build)
	run(c, pressing(KeyLeftControl, KeyA), build)
	run(c, pressing(KeyLeftControl, KeyC), build)
	if got := c.Clipboard.Text(); got != "copy me" {
		t.Errorf("Expected clipboard %q, got %q", "copy me", got)
	}

	c.Clipboard.SetText("pasted")
	run(c, pressing(KeyLeftControl, KeyA), build)
	run(c, pressing(KeyLeftControl, KeyV), build)
	if value != "pasted" {
		t.Errorf("Expected pasted value, got %q", value)
	}

	run(c, pressing(KeyLeftControl, KeyZ), build)
	if value != "copy me" {
		t.Errorf("Expected undo to restore the value, got %q", value)
	}
}

func TestInputFieldSingleEditState(t *testing.T) {
	c := newTestContext()
	a, b := "a", "b"
	build := func() {
		c.InputField("a", &a, 0, 0, Px(0), Px(0), Px(100))
		c.InputField("b", &b, 0, 0, Px(0), Px(100), Px(100))
	}

	run(c, clickAt(10, 10), build)
	first := c.FocusID
	run(c, clickAt(10, 110), build)
	if c.FocusID == first || c.FocusID == 0 {
		t.Fatal("Expected focus to move to the second field")
	}
	if c.EditStateCount() != 1 {
		t.Errorf("Expected exactly one edit state, got %d", c.EditStateCount())
	}
	if c.FocusedFieldID() != c.FocusID {
		t.Error("Expected the focused field to own the edit state")
	}
}

func TestInputFieldFocusEvent(t *testing.T) {
	c := newTestContext()
	value := ""
	var changed bool
	var got []FocusChange
	c.OnFocusChanged.AddListener(func(fc FocusChange) { got = append(got, fc) })
	build := field(c, &value, 0, 0, &changed)

	run(c, clickAt(20, 20), build)
	run(c, pressing(KeyEscape), build)

	if len(got) != 2 {
		t.Fatalf("Expected 2 focus events, got %d", len(got))
	}
	if got[0].From != 0 || got[1].To != 0 || got[0].To != got[1].From {
		t.Errorf("Expected focus in then out of the field, got %+v", got)
	}
}

func TestInputFieldHorizontalScroll(t *testing.T) {
	for _, tt := range []struct {
		name  string
		flags InputFlags
		want  float32
	}{
		{"quarter step", 0, 85},
		{"pinned", InputNoHorizontalScroll, 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext()
			value := ""
			build := func() {
				c.InputField("f", &value, 0, tt.flags, Px(0), Px(0), Px(110))
			}
			run(c, clickAt(5, 5), build)
			run(c, typing("aaaaaaaaaaaaaaaaaaaa"), build)

			st := c.EditState(c.FocusID)
			if st == nil {
				t.Fatal("Expected an edit state")
			}
			if st.ScrollX != tt.want {
				t.Errorf("Expected scroll %v, got %v", tt.want, st.ScrollX)
			}
		})
	}
}

func TestInputFieldMultilineSnap(t *testing.T) {
	c := newTestContext()
	value := ""
	var changed bool
	build := field(c, &value, 0, InputMultiline, &changed)

	run(c, clickAt(20, 20), build)
	id := c.FocusID
	run(c, typing("\n\n\n\n\n\n\n\n\n\n"), build)

	if got := GetStorage(c, id, "VScroll", float32(0)); got != 48 {
		t.Errorf("Expected vertical scroll 48 to show the caret line, got %v", got)
	}

	run(c, pressing(KeyEnter), build)
	if c.FocusID != id {
		t.Error("Expected Enter to keep focus in a multi-line field")
	}
	if value != "\n\n\n\n\n\n\n\n\n\n\n" {
		t.Errorf("Expected Enter to insert a newline, got %q", value)
	}
}

func countColor(l *draw.List, col draw.Color) int {
	n := 0
	for _, v := range l.Vertices {
		if v.Col == col {
			n++
		}
	}
	return n
}

func TestInputFieldSelectionRects(t *testing.T) {
	c := newTestContext()
	c.Style.Selection = draw.RGBA(1, 2, 3, 255)
	value := "ab\n\ncd"
	var changed bool
	build := field(c, &value, 0, InputMultiline, &changed)

	run(c, clickAt(20, 20), build)
	run(c, pressing(KeyLeftControl, KeyA), build)

	if got := countColor(c.DrawList, c.Style.Selection) / 4; got != 3 {
		t.Errorf("Expected 3 selection rectangles, got %d", got)
	}
}

func selectionSpan(l *draw.List, col draw.Color) (minX, maxX float32) {
	minX, maxX = 1e9, -1e9
	for _, v := range l.Vertices {
		if v.Col == col {
			minX = min(minX, v.Pos.X)
			maxX = max(maxX, v.Pos.X)
		}
	}
	return minX, maxX
}

func TestInputFieldBackwardSelectionRect(t *testing.T) {
	c := newTestContext()
	c.Style.Selection = draw.RGBA(1, 2, 3, 255)
	value := "abcd"
	var changed bool
	build := field(c, &value, 0, 0, &changed)

	run(c, clickAt(20, 20), build)
	run(c, pressing(KeyLeftControl, KeyA), build)
	x0, _ := selectionSpan(c.DrawList, c.Style.Selection)

	run(c, pressing(KeyEnd), build)
	run(c, pressing(KeyLeftShift, KeyLeft), build)
	run(c, pressing(KeyLeftShift, KeyLeft), build)
	lo, hi := selectionSpan(c.DrawList, c.Style.Selection)
	if lo != x0+16 || hi != x0+32 {
		t.Errorf("Expected selection from %v to %v, got %v to %v", x0+16, x0+32, lo, hi)
	}
}

func TestInputFieldCaretBlink(t *testing.T) {
	c := newTestContext()
	c.Style.Caret = draw.RGBA(9, 9, 9, 255)
	value := "abc"
	build := func() {
		c.InputField("f", &value, 0, 0, Px(0), Px(0), Px(200))
	}
	frame := func(in Input) bool {
		c.Frame(in, 0.5, testScreen, build)
		return countColor(c.DrawList, c.Style.Caret) > 0
	}

	if !frame(clickAt(5, 5)) {
		t.Error("Expected caret visible at 0.5s")
	}
	if frame(Input{}) {
		t.Error("Expected caret hidden at 1.0s")
	}
	if !frame(Input{}) {
		t.Error("Expected caret visible again at 1.5s")
	}
	if !frame(pressing(KeyLeft)) {
		t.Error("Expected caret visible after moving the cursor")
	}
}

func TestInputFieldUnfocusedDrawsValue(t *testing.T) {
	c := newTestContext()
	value := "abc"
	var changed bool
	run(c, Input{}, field(c, &value, 0, 0, &changed))

	if got := countColor(c.DrawList, c.Style.Text) / 4; got != 3 {
		t.Errorf("Expected 3 glyph quads, got %d", got)
	}
	if c.EditStateCount() != 0 {
		t.Error("Expected no edit state without focus")
	}
}

func TestTextOffsets(t *testing.T) {
	m := testFont().WithSize(16)
	text := []rune("ab\ncde")
	offs := textOffsets(m, text, 1, 5, 3)
	want := []geom.Vec2{{X: 8, Y: 0}, {X: 16, Y: 16}, {X: 0, Y: 16}}
	for i := range want {
		if offs[i] != want[i] {
			t.Errorf("Offset %d: expected %v, got %v", i, want[i], offs[i])
		}
	}
}
