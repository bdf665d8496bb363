package font

import (
	"math"

	"enginegui/internal/draw"
	"enginegui/internal/geom"
)

// RenderText emits text[begin:end] into dl at pos using the given size. Lines
// fully above the clip rectangle are skipped and emission stops below it.
// Each visible glyph becomes one textured quad. With cpuFineClip, quads that
// straddle the clip edge are cut and their UVs adjusted; otherwise only
// glyphs entirely outside horizontally are rejected. The returned rectangle
// spans from pos to the pen position after the last line.
func (f *Font) RenderText(dl *draw.List, size float32, pos geom.Vec2, col draw.Color, clip geom.Rect, text []rune, begin, end int, wrapWidth float32, cpuFineClip bool) geom.Rect {
	begin, end = clampRange(len(text), begin, end)

	pos.X = float32(math.Trunc(float64(pos.X)))
	pos.Y = float32(math.Trunc(float64(pos.Y)))
	x, y := pos.X, pos.Y
	if y > clip.Bottom() {
		return geom.Rect{}
	}

	scale := size / f.FontSize
	lineHeight := f.FontSize * scale
	wrap := wrapWidth > 0
	wrapEOL := -1
	invW := 1 / float32(f.Width())
	invH := 1 / float32(f.Height())

	s := begin
	if !wrap && y+lineHeight < clip.Y {
		s = nextLine(text, s, end)
	}

	for s < end {
		if wrap {
			if wrapEOL == -1 {
				wrapEOL = f.CalcWordWrapPosition(scale, text, s, end, wrapWidth-(x-pos.X))
				if wrapEOL == s {
					wrapEOL++
				}
			}
			if s >= wrapEOL {
				x = pos.X
				y += lineHeight
				wrapEOL = -1
				s = skipBlanks(text, s, end)
				continue
			}
		}

		c := text[s]
		s++
		if c == '\n' {
			x = pos.X
			y += lineHeight
			if y > clip.Bottom() {
				break
			}
			if !wrap && y+lineHeight < clip.Y {
				s = nextLine(text, s, end)
			}
			continue
		}
		if c == '\r' {
			continue
		}

		g, ok := f.glyphs[c]
		if !ok {
			x += FallbackAdvance
			continue
		}
		advance := g.XAdvance * scale
		if c == ' ' || c == '\t' || g.Width == 0 || g.Height == 0 {
			x += advance
			continue
		}

		x1 := x + g.XOffset*scale
		x2 := x1 + g.Width*scale
		y1 := y + g.YOffset*scale
		y2 := y1 + g.Height*scale
		if x1 > clip.Right() || x2 < clip.X {
			x += advance
			continue
		}

		u1 := g.X * invW
		v1 := g.Y * invH
		u2 := (g.X + g.Width) * invW
		v2 := (g.Y + g.Height) * invH

		if cpuFineClip {
			if x1 < clip.X {
				u1 += (1 - (x2-clip.X)/(x2-x1)) * (u2 - u1)
				x1 = clip.X
			}
			if y1 < clip.Y {
				v1 += (1 - (y2-clip.Y)/(y2-y1)) * (v2 - v1)
				y1 = clip.Y
			}
			if x2 > clip.Right() {
				u2 = u1 + (clip.Right()-x1)/(x2-x1)*(u2-u1)
				x2 = clip.Right()
			}
			if y2 > clip.Bottom() {
				v2 = v1 + (clip.Bottom()-y1)/(y2-y1)*(v2-v1)
				y2 = clip.Bottom()
			}
			if y1 >= y2 {
				x += advance
				continue
			}
		}

		dl.AddQuadUV(geom.V(x1, y1), geom.V(x2, y2), geom.V(u1, v1), geom.V(u2, v2), col)
		x += advance
	}

	return geom.RectFromMinMax(pos, geom.V(x, y+lineHeight))
}

func nextLine(text []rune, s, end int) int {
	for s < end && text[s] != '\n' {
		s++
	}
	return s
}
