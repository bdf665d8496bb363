package font

import (
	"errors"
	"testing"
	"unicode"

	"golang.org/x/image/font/gofont/goregular"
)

func TestFromTTF(t *testing.T) {
	f, err := FromTTF(goregular.TTF, 16, 256, 256, BasicLatin)
	if err != nil {
		t.Fatalf("FromTTF failed: %v", err)
	}

	a, ok := f.Glyph('A')
	if !ok {
		t.Fatal("Expected glyph for 'A'")
	}
	if a.Width <= 0 || a.Height <= 0 || a.XAdvance <= 0 {
		t.Errorf("Expected non-empty glyph for 'A', got %+v", a)
	}

	space, ok := f.Glyph(' ')
	if !ok {
		t.Fatal("Expected glyph for space")
	}
	if space.Width != 0 || space.XAdvance <= 0 {
		t.Errorf("Expected empty space glyph with advance, got %+v", space)
	}

	if _, ok := f.Glyph('é'); ok {
		t.Error("Expected no glyph for a rune outside the requested ranges")
	}
}

func TestBuilderNormalizesYOffset(t *testing.T) {
	f, err := FromTTF(goregular.TTF, 24, 512, 512, BasicLatin)
	if err != nil {
		t.Fatalf("FromTTF failed: %v", err)
	}

	minY := float32(1e9)
	for r := ' '; r <= '~'; r++ {
		if g, ok := f.Glyph(r); ok {
			minY = min(minY, g.YOffset)
		}
	}
	if minY != 0 {
		t.Errorf("Expected smallest YOffset 0, got %v", minY)
	}
}

func TestBuilderWhitePixel(t *testing.T) {
	f, err := FromTTF(goregular.TTF, 16, 256, 256, BasicLatin)
	if err != nil {
		t.Fatalf("FromTTF failed: %v", err)
	}
	c := f.Atlas.NRGBAAt(0, 0)
	if c.R != 255 || c.G != 255 || c.B != 255 || c.A != 255 {
		t.Errorf("Expected opaque white at origin, got %v", c)
	}
	for r := ' '; r <= '~'; r++ {
		if g, ok := f.Glyph(r); ok && g.Width > 0 && g.X < 1 && g.Y < 1 {
			t.Errorf("Glyph %q overlaps the white pixel", r)
		}
	}
}

func TestBuilderMultipleSources(t *testing.T) {
	b := NewBuilder(512, 512)
	if err := b.Add(goregular.TTF, 16, BasicLatin); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := b.Add(goregular.TTF, 16, Cyrillic); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	f, err := b.End(16, 16)
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if _, ok := f.Glyph('Ж'); !ok {
		t.Error("Expected Cyrillic glyph after second Add")
	}
	if _, ok := f.Glyph('A'); !ok {
		t.Error("Expected Latin glyph from first Add")
	}
}

func TestBuilderErrors(t *testing.T) {
	if _, err := FromTTF(goregular.TTF, 64, 32, 32, BasicLatin); !errors.Is(err, ErrAtlasFull) {
		t.Errorf("Expected ErrAtlasFull, got %v", err)
	}
	if _, err := FromTTF(nil, 16, 256, 256, BasicLatin); !errors.Is(err, ErrNoFontData) {
		t.Errorf("Expected ErrNoFontData, got %v", err)
	}
	if _, err := FromTTF(goregular.TTF, 16, 256, 256); !errors.Is(err, ErrNoRanges) {
		t.Errorf("Expected ErrNoRanges, got %v", err)
	}
	if _, err := FromTTF([]byte("not a font"), 16, 256, 256, BasicLatin); err == nil {
		t.Error("Expected parse error for garbage data")
	}

	b := NewBuilder(64, 64)
	if _, err := b.End(16, 16); !errors.Is(err, ErrNoGlyphs) {
		t.Errorf("Expected ErrNoGlyphs, got %v", err)
	}

	var unstarted Builder
	if err := unstarted.Add(goregular.TTF, 16, BasicLatin); !errors.Is(err, ErrNotBegun) {
		t.Errorf("Expected ErrNotBegun, got %v", err)
	}
}

func TestRangeTable(t *testing.T) {
	table := RangeTable(BasicLatin, Single('€'), Cyrillic, BasicLatin)

	for _, r := range []rune{'A', ' ', '€', 'Ж'} {
		if !unicode.Is(table, r) {
			t.Errorf("Expected %q in table", r)
		}
	}
	for _, r := range []rune{'é', 'あ'} {
		if unicode.Is(table, r) {
			t.Errorf("Expected %q not in table", r)
		}
	}
}

func TestRangeByName(t *testing.T) {
	r, err := RangeByName("Basic-Latin")
	if err != nil {
		t.Fatalf("RangeByName failed: %v", err)
	}
	if r != BasicLatin {
		t.Errorf("Expected BasicLatin, got %v", r)
	}
	if _, err := RangeByName("klingon"); err == nil {
		t.Error("Expected error for unknown range")
	}
	if BasicLatin.Size() != 96 {
		t.Errorf("Expected 96 code points in BasicLatin, got %d", BasicLatin.Size())
	}
}
