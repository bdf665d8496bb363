// Package font provides glyph metrics, text measurement and text emission
// over a bitmap glyph atlas, plus the builder that rasterizes TrueType fonts
// into that atlas.
package font

import (
	"image"
	"image/color"
	"maps"
	"unicode"

	"enginegui/internal/geom"
)

// FallbackAdvance is the advance of runes missing from the atlas.
const FallbackAdvance float32 = 10

// GlyphInfo locates one glyph in the atlas. Offsets and advance are in atlas
// pixels at the font's build size.
type GlyphInfo struct {
	X, Y, Width, Height float32
	XOffset, YOffset    float32
	XAdvance            float32
}

// Font is an immutable glyph map plus its atlas. Atlas pixels are white with
// the glyph coverage in alpha.
type Font struct {
	// FontSize is the pixel size the atlas was rasterized at.
	FontSize float32
	// DisplaySize is the size text is measured and drawn at by default.
	DisplaySize float32
	Atlas       *image.NRGBA

	glyphs map[rune]GlyphInfo
}

// New wraps an existing glyph map and atlas. The map is copied. A nil atlas
// is replaced by a 1x1 white texture.
func New(fontSize, displaySize float32, glyphs map[rune]GlyphInfo, atlas *image.NRGBA) *Font {
	if atlas == nil {
		atlas = image.NewNRGBA(image.Rect(0, 0, 1, 1))
		atlas.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})
	}
	return &Font{
		FontSize:    fontSize,
		DisplaySize: displaySize,
		Atlas:       atlas,
		glyphs:      maps.Clone(glyphs),
	}
}

// Glyph returns the atlas entry for r.
func (f *Font) Glyph(r rune) (GlyphInfo, bool) {
	g, ok := f.glyphs[r]
	return g, ok
}

// GlyphCount returns the number of glyphs in the atlas.
func (f *Font) GlyphCount() int { return len(f.glyphs) }

func (f *Font) Width() int  { return f.Atlas.Bounds().Dx() }
func (f *Font) Height() int { return f.Atlas.Bounds().Dy() }

// WhiteUV is the texture coordinate of the opaque texel at the atlas origin.
func (f *Font) WhiteUV() geom.Vec2 {
	return geom.V(0.5/float32(f.Width()), 0.5/float32(f.Height()))
}

// LineHeight is the height of one line at the display size.
func (f *Font) LineHeight() float32 { return f.DisplaySize }

// CharAdvance returns the horizontal advance of r at the display size.
func (f *Font) CharAdvance(r rune) float32 {
	return f.advance(r, f.DisplaySize/f.FontSize)
}

func (f *Font) advance(r rune, scale float32) float32 {
	if g, ok := f.glyphs[r]; ok {
		return g.XAdvance * scale
	}
	return FallbackAdvance
}

// InputTextCalcTextSize measures text[begin:end] at the display size. A
// newline starts a new line, or ends the scan when stopOnNewLine is set.
// Carriage returns are skipped. It also returns the index where the scan
// stopped and the offset just past the last measured rune, which accounts for
// a trailing newline.
func (f *Font) InputTextCalcTextSize(text []rune, begin, end int, stopOnNewLine bool) (size geom.Vec2, remaining int, offset geom.Vec2) {
	return f.inputTextCalcTextSize(f.DisplaySize, text, begin, end, stopOnNewLine)
}

func (f *Font) inputTextCalcTextSize(lineHeight float32, text []rune, begin, end int, stopOnNewLine bool) (size geom.Vec2, remaining int, offset geom.Vec2) {
	begin, end = clampRange(len(text), begin, end)
	scale := lineHeight / f.FontSize

	var lineWidth float32
	s := begin
	for s < end {
		c := text[s]
		s++
		if c == '\n' {
			size.X = max(size.X, lineWidth)
			size.Y += lineHeight
			lineWidth = 0
			if stopOnNewLine {
				break
			}
			continue
		}
		if c == '\r' {
			continue
		}
		lineWidth += f.advance(c, scale)
	}

	size.X = max(size.X, lineWidth)
	offset = geom.V(lineWidth, size.Y+lineHeight)
	if lineWidth > 0 || size.Y == 0 {
		size.Y += lineHeight
	}
	return size, s, offset
}

// Sized measures with a font at a fixed pixel size instead of its display
// size.
type Sized struct {
	Font *Font
	Size float32
}

// WithSize returns f measured at size.
func (f *Font) WithSize(size float32) Sized { return Sized{Font: f, Size: size} }

func (s Sized) CharAdvance(r rune) float32 { return s.Font.advance(r, s.Size/s.Font.FontSize) }

func (s Sized) LineHeight() float32 { return s.Size }

// InputTextCalcTextSize is Font.InputTextCalcTextSize at s.Size.
func (s Sized) InputTextCalcTextSize(text []rune, begin, end int, stopOnNewLine bool) (geom.Vec2, int, geom.Vec2) {
	return s.Font.inputTextCalcTextSize(s.Size, text, begin, end, stopOnNewLine)
}

// CalcTextSize measures s at the display size, wrapping at wrapWidth when it
// is positive.
func (f *Font) CalcTextSize(s string, wrapWidth float32) geom.Vec2 {
	text := []rune(s)
	if len(text) == 0 {
		return geom.V(0, f.DisplaySize)
	}
	size, _ := f.CalcTextSizeA(f.DisplaySize, maxFloat, wrapWidth, text, 0, len(text))
	return size
}

// CalcTextSizeA measures text[begin:end] at the given size. Measuring stops
// before the first rune that would make a line reach maxWidth; the returned
// index is where it stopped.
func (f *Font) CalcTextSizeA(size, maxWidth, wrapWidth float32, text []rune, begin, end int) (geom.Vec2, int) {
	begin, end = clampRange(len(text), begin, end)
	lineHeight := size
	scale := size / f.FontSize
	wrap := wrapWidth > 0
	wrapEOL := -1

	var result geom.Vec2
	var lineWidth float32
	s := begin
	for s < end {
		if wrap {
			if wrapEOL == -1 {
				wrapEOL = f.CalcWordWrapPosition(scale, text, s, end, wrapWidth-lineWidth)
				if wrapEOL == s {
					wrapEOL++
				}
			}
			if s >= wrapEOL {
				result.X = max(result.X, lineWidth)
				result.Y += lineHeight
				lineWidth = 0
				wrapEOL = -1
				s = skipBlanks(text, s, end)
				continue
			}
		}

		prev := s
		c := text[s]
		s++
		if c == '\n' {
			result.X = max(result.X, lineWidth)
			result.Y += lineHeight
			lineWidth = 0
			continue
		}
		if c == '\r' {
			continue
		}

		w := f.advance(c, scale)
		if lineWidth+w >= maxWidth {
			s = prev
			break
		}
		lineWidth += w
	}

	result.X = max(result.X, lineWidth)
	if lineWidth > 0 || result.Y == 0 {
		result.Y += lineHeight
	}
	return result, s
}

// CalcWordWrapPosition returns the index at which the line starting at begin
// must break to fit in wrapWidth. Blank runs are not counted at the end of a
// line, punctuation allows a break after it, and a word wider than the whole
// line is cut where it overflows.
func (f *Font) CalcWordWrapPosition(scale float32, text []rune, begin, end int, wrapWidth float32) int {
	begin, end = clampRange(len(text), begin, end)

	var lineWidth, wordWidth, blankWidth float32
	wordEnd := begin
	prevWordEnd := -1
	insideWord := true

	s := begin
	for s < end {
		c := text[s]
		next := s + 1

		if c == 0 {
			break
		}
		if c == '\n' {
			lineWidth, wordWidth, blankWidth = 0, 0, 0
			insideWord = true
			s = next
			continue
		}
		if c == '\r' {
			s = next
			continue
		}

		w := f.advance(c, scale)
		if isBlank(c) {
			if insideWord {
				lineWidth += blankWidth
				blankWidth = 0
			}
			blankWidth += w
			insideWord = false
		} else {
			wordWidth += w
			if insideWord {
				wordEnd = next
			} else {
				prevWordEnd = wordEnd
				lineWidth += wordWidth + blankWidth
				wordWidth, blankWidth = 0, 0
			}
			insideWord = !isBreakAfter(c)
		}

		if lineWidth+wordWidth >= wrapWidth {
			if wordWidth < wrapWidth {
				if prevWordEnd > -1 {
					s = prevWordEnd
				} else {
					s = wordEnd
				}
			}
			break
		}
		s = next
	}
	return s
}

const maxFloat = float32(3.4e38)

func isBlank(r rune) bool {
	return r == '\t' || unicode.Is(unicode.Z, r)
}

func isBreakAfter(r rune) bool {
	switch r {
	case '.', ',', ';', '!', '?', '"':
		return true
	}
	return false
}

// skipBlanks moves past the blanks that follow a wrap point, and past one
// newline.
func skipBlanks(text []rune, s, end int) int {
	for s < end {
		c := text[s]
		if isBlank(c) {
			s++
		} else if c == '\n' {
			s++
			break
		} else {
			break
		}
	}
	return s
}

func clampRange(n, begin, end int) (int, int) {
	if end < 0 || end > n {
		end = n
	}
	begin = max(0, min(begin, end))
	return begin, end
}
