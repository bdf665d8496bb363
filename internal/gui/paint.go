package gui

import (
	"enginegui/internal/draw"
	"enginegui/internal/font"
	"enginegui/internal/geom"
)

// Drawing helpers record into the draw list during the render pass and do
// nothing during layout.

// ClipRect is the active clip rectangle.
func (c *Context) ClipRect() geom.Rect {
	if n := len(c.clipStack); n > 0 {
		return c.clipStack[n-1]
	}
	return c.screen
}

// PushClip intersects the clip rectangle with r until the matching PopClip.
func (c *Context) PushClip(r geom.Rect) {
	r = c.ClipRect().Intersect(r)
	c.clipStack = append(c.clipStack, r)
	if c.pass == PassRender {
		c.DrawList.PushClipRect(r, false)
	}
}

func (c *Context) PopClip() {
	n := len(c.clipStack)
	if n == 0 {
		Logger().Warn("gui: clip stack underflow")
		return
	}
	c.clipStack = c.clipStack[:n-1]
	if c.pass == PassRender {
		c.DrawList.PopClipRect()
	}
}

func (c *Context) shapes() bool {
	if c.pass != PassRender {
		return false
	}
	c.DrawList.SetTexture(c.textures[c.Font])
	return true
}

func (c *Context) DrawRectFilled(r geom.Rect, col draw.Color) {
	if c.shapes() {
		c.DrawList.AddRectFilled(r, col)
	}
}

// DrawRect outlines r with lines of the given thickness drawn inside it.
func (c *Context) DrawRect(r geom.Rect, col draw.Color, thickness float32) {
	if c.shapes() {
		c.DrawList.AddRect(r, col, thickness)
	}
}

func (c *Context) DrawLine(a, b geom.Vec2, col draw.Color, thickness float32) {
	if c.shapes() {
		c.DrawList.AddLine(a, b, col, thickness)
	}
}

// DrawText draws text with f at pixel size size, clipped to the active clip
// rectangle. A nil f uses the context font.
func (c *Context) DrawText(f *font.Font, size float32, text string, pos geom.Vec2, col draw.Color) {
	c.DrawRunes(f, size, []rune(text), pos, col)
}

// DrawRunes is DrawText for a rune buffer.
func (c *Context) DrawRunes(f *font.Font, size float32, text []rune, pos geom.Vec2, col draw.Color) {
	if c.pass != PassRender {
		return
	}
	f = c.fontOr(f)
	c.DrawList.SetTexture(c.textures[f])
	f.RenderText(c.DrawList, size, pos, col, c.ClipRect(), text, 0, len(text), 0, false)
}

// TextSize measures single-line text without wrapping. A nil f uses the
// context font.
func (c *Context) TextSize(f *font.Font, size float32, text string) geom.Vec2 {
	s, _, _ := c.fontOr(f).WithSize(size).InputTextCalcTextSize([]rune(text), 0, -1, false)
	return s
}

// fontOr returns f, the context font, or a glyphless font that measures
// every rune with the fallback advance.
func (c *Context) fontOr(f *font.Font) *font.Font {
	if f != nil {
		return f
	}
	if c.Font != nil {
		return c.Font
	}
	if c.blankFont == nil {
		c.blankFont = font.New(c.FontSize, c.FontSize, nil, nil)
	}
	return c.blankFont
}
