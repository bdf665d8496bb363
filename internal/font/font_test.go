package font

import (
	"image"
	"testing"

	"enginegui/internal/draw"
	"enginegui/internal/geom"
)

// testFont has an 8px advance for every printable ASCII rune.
func testFont() *Font {
	glyphs := make(map[rune]GlyphInfo)
	for r := ' '; r <= '~'; r++ {
		glyphs[r] = GlyphInfo{
			X: float32(r-' ') * 8, Y: 0,
			Width: 6, Height: 10,
			XOffset: 1, YOffset: 2,
			XAdvance: 8,
		}
	}
	return New(16, 16, glyphs, image.NewNRGBA(image.Rect(0, 0, 1024, 16)))
}

func TestCharAdvance(t *testing.T) {
	f := testFont()
	if got := f.CharAdvance('a'); got != 8 {
		t.Errorf("Expected advance 8, got %v", got)
	}
	if got := f.CharAdvance('é'); got != FallbackAdvance {
		t.Errorf("Expected fallback advance %v for missing glyph, got %v", FallbackAdvance, got)
	}

	big := New(16, 32, map[rune]GlyphInfo{'a': {XAdvance: 8}}, nil)
	if got := big.CharAdvance('a'); got != 16 {
		t.Errorf("Expected advance scaled to 16, got %v", got)
	}
}

func TestMeasurementIsAdditive(t *testing.T) {
	f := testFont()
	text := []rune("hello world, again")

	tests := []struct{ i, j, k int }{
		{0, 5, 11},
		{2, 2, 9},
		{3, 10, 18},
	}
	for _, tt := range tests {
		a, _, _ := f.InputTextCalcTextSize(text, tt.i, tt.j, false)
		b, _, _ := f.InputTextCalcTextSize(text, tt.j, tt.k, false)
		whole, _, _ := f.InputTextCalcTextSize(text, tt.i, tt.k, false)
		if a.X+b.X != whole.X {
			t.Errorf("[%d,%d)+[%d,%d): expected %v, got %v", tt.i, tt.j, tt.j, tt.k, whole.X, a.X+b.X)
		}
	}
}

func TestInputTextCalcTextSizeLines(t *testing.T) {
	f := testFont()
	text := []rune("ab\ncde")

	size, remaining, _ := f.InputTextCalcTextSize(text, 0, len(text), false)
	if size != geom.V(24, 32) {
		t.Errorf("Expected size (24,32), got %v", size)
	}
	if remaining != len(text) {
		t.Errorf("Expected scan to reach %d, got %d", len(text), remaining)
	}

	size, remaining, _ = f.InputTextCalcTextSize(text, 0, len(text), true)
	if size != geom.V(16, 16) {
		t.Errorf("Expected first line size (16,16), got %v", size)
	}
	if remaining != 3 {
		t.Errorf("Expected scan to stop after newline at 3, got %d", remaining)
	}
}

func TestInputTextCalcTextSizeTrailingNewline(t *testing.T) {
	f := testFont()
	text := []rune("ab\n")

	size, _, offset := f.InputTextCalcTextSize(text, 0, len(text), false)
	if size != geom.V(16, 16) {
		t.Errorf("Expected size (16,16), got %v", size)
	}
	if offset != geom.V(0, 32) {
		t.Errorf("Expected offset on the next line (0,32), got %v", offset)
	}
}

func TestCarriageReturnHasNoWidth(t *testing.T) {
	f := testFont()
	plain, _, _ := f.InputTextCalcTextSize([]rune("abc"), 0, 3, false)
	withCR, _, _ := f.InputTextCalcTextSize([]rune("a\rbc"), 0, 4, false)
	if plain != withCR {
		t.Errorf("Expected %v, got %v", plain, withCR)
	}
}

func TestEmptyTextHasOneLine(t *testing.T) {
	f := testFont()
	if got := f.CalcTextSize("", 0); got != geom.V(0, 16) {
		t.Errorf("Expected (0,16), got %v", got)
	}
	size, _, _ := f.InputTextCalcTextSize(nil, 0, 0, false)
	if size != geom.V(0, 16) {
		t.Errorf("Expected (0,16), got %v", size)
	}
}

func TestCalcWordWrapPosition(t *testing.T) {
	f := testFont()
	tests := []struct {
		name  string
		text  string
		width float32
		want  int
	}{
		{"breaks between words", "hello world", 60, 5},
		{"fits entirely", "hello world", 200, 11},
		{"force breaks long word", "abcdefghij", 30, 3},
		{"newline resets width", "ab\ncdefg", 30, 6},
		{"breaks after punctuation", "aa,bbbbbbbb", 40, 3},
	}
	for _, tt := range tests {
		text := []rune(tt.text)
		if got := f.CalcWordWrapPosition(1, text, 0, len(text), tt.width); got != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, got)
		}
	}
}

func TestCalcTextSizeWrapped(t *testing.T) {
	f := testFont()
	if got := f.CalcTextSize("hello world", 60); got != geom.V(40, 32) {
		t.Errorf("Expected (40,32), got %v", got)
	}
	// Too narrow for any glyph: one rune per line.
	if got := f.CalcTextSize("abc", 4); got.Y != 48 {
		t.Errorf("Expected 3 lines (48), got %v", got.Y)
	}
}

func TestCalcTextSizeAMaxWidth(t *testing.T) {
	f := testFont()
	text := []rune("abcdef")
	size, stop := f.CalcTextSizeA(16, 20, 0, text, 0, len(text))
	if stop != 2 {
		t.Errorf("Expected to stop at 2, got %d", stop)
	}
	if size != geom.V(16, 16) {
		t.Errorf("Expected (16,16), got %v", size)
	}
}

func TestRenderTextEmitsOneQuadPerVisibleGlyph(t *testing.T) {
	f := testFont()
	dl := draw.NewList(geom.R(0, 0, 800, 600))
	text := []rune("ab c")

	r := f.RenderText(dl, 16, geom.V(0, 0), draw.White, geom.R(0, 0, 800, 600), text, 0, len(text), 0, false)

	if len(dl.Vertices) != 12 {
		t.Errorf("Expected 12 vertices for 3 glyphs, got %d", len(dl.Vertices))
	}
	if len(dl.Indices) != 18 {
		t.Errorf("Expected 18 indices, got %d", len(dl.Indices))
	}
	if r.Width != 32 || r.Height != 16 {
		t.Errorf("Expected 32x16 bounds, got %v", r)
	}
}

func TestRenderTextTrivialReject(t *testing.T) {
	f := testFont()
	dl := draw.NewList(geom.R(0, 0, 800, 600))
	text := []rune("abc")

	f.RenderText(dl, 16, geom.V(0, 0), draw.White, geom.R(100, 0, 100, 100), text, 0, len(text), 0, false)
	if len(dl.Vertices) != 0 {
		t.Errorf("Expected all glyphs rejected, got %d vertices", len(dl.Vertices))
	}
}

func TestRenderTextFineClip(t *testing.T) {
	f := testFont()
	text := []rune("ab")
	clip := geom.R(0, 0, 12, 100)

	coarse := draw.NewList(geom.R(0, 0, 800, 600))
	f.RenderText(coarse, 16, geom.V(0, 0), draw.White, clip, text, 0, len(text), 0, false)
	if got := coarse.Vertices[6].Pos.X; got != 15 {
		t.Errorf("Expected unclipped right edge 15, got %v", got)
	}

	fine := draw.NewList(geom.R(0, 0, 800, 600))
	f.RenderText(fine, 16, geom.V(0, 0), draw.White, clip, text, 0, len(text), 0, true)
	if got := fine.Vertices[6].Pos.X; got != 12 {
		t.Errorf("Expected right edge clipped to 12, got %v", got)
	}
	if fine.Vertices[6].UV.X >= coarse.Vertices[6].UV.X {
		t.Errorf("Expected clipped UV %v to shrink below %v", fine.Vertices[6].UV.X, coarse.Vertices[6].UV.X)
	}
}

func TestRenderTextSkipsLinesOutsideClip(t *testing.T) {
	f := testFont()
	dl := draw.NewList(geom.R(0, 0, 800, 600))
	text := []rune("a\nb\nc\nd")

	f.RenderText(dl, 16, geom.V(0, 0), draw.White, geom.R(0, 20, 800, 20), text, 0, len(text), 0, false)

	// "a" sits above the clip, "d" starts below it.
	if len(dl.Vertices) != 8 {
		t.Errorf("Expected 2 glyphs rendered, got %d vertices", len(dl.Vertices))
	}
}

func TestSizedScalesMetrics(t *testing.T) {
	f := testFont()
	s := f.WithSize(32)

	if got := s.CharAdvance('a'); got != 16 {
		t.Errorf("Expected advance 16 at double size, got %v", got)
	}
	if got := s.LineHeight(); got != 32 {
		t.Errorf("Expected line height 32, got %v", got)
	}
	size, _, _ := s.InputTextCalcTextSize([]rune("ab\nc"), 0, 4, false)
	if size != geom.V(32, 64) {
		t.Errorf("Expected (32,64), got %v", size)
	}
}
