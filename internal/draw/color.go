package draw

import "image/color"

// Color is a packed 0xRRGGBBAA value.
type Color uint32

func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | uint32(a))
}

// FromColor packs any image/color value.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

func (c Color) R() uint8 { return uint8(c >> 24) }
func (c Color) G() uint8 { return uint8(c >> 16) }
func (c Color) B() uint8 { return uint8(c >> 8) }
func (c Color) A() uint8 { return uint8(c) }

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	return c&^0xFF | Color(a)
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

var (
	White       = RGBA(255, 255, 255, 255)
	Black       = RGBA(0, 0, 0, 255)
	Transparent = RGBA(0, 0, 0, 0)
)
