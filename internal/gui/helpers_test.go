package gui

import (
	"image"

	"enginegui/internal/font"
	"enginegui/internal/geom"
)

// testFont advances 8 pixels for every printable ASCII rune at size 16.
func testFont() *font.Font {
	glyphs := make(map[rune]font.GlyphInfo)
	for r := ' '; r <= '~'; r++ {
		glyphs[r] = font.GlyphInfo{
			X: float32(r-' ') * 8, Width: 6, Height: 10,
			XOffset: 1, YOffset: 2, XAdvance: 8,
		}
	}
	return font.New(16, 16, glyphs, image.NewNRGBA(image.Rect(0, 0, 1024, 16)))
}

type memClipboard struct{ text string }

func (m *memClipboard) Text() string     { return m.text }
func (m *memClipboard) SetText(s string) { m.text = s }

var testScreen = geom.R(0, 0, 800, 600)

func newTestContext() *Context {
	c := NewContext(testFont())
	c.Clipboard = &memClipboard{}
	return c
}

func run(c *Context, in Input, build func()) {
	c.Frame(in, 1.0/60, testScreen, build)
}

func clickAt(x, y float32) Input {
	var in Input
	in.Click(MouseLeft, geom.V(x, y))
	return in
}

func typing(s string) Input {
	return Input{Chars: []rune(s)}
}

func pressing(keys ...Key) Input {
	var in Input
	for _, k := range keys {
		in.Press(k)
	}
	return in
}
