package font

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	imgdraw "image/draw"
	"math"
	"unicode"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/rangetable"
)

var (
	ErrNotBegun   = errors.New("font: builder used before Begin")
	ErrNoFontData = errors.New("font: empty font data")
	ErrNoRanges   = errors.New("font: no character ranges")
	ErrAtlasFull  = errors.New("font: atlas is full")
	ErrNoGlyphs   = errors.New("font: no glyphs were added")
)

// glyphPadding is the gap between packed glyphs so bilinear sampling does not
// bleed neighbours into each other.
const glyphPadding = 1

// Builder rasterizes TrueType fonts into a single atlas. Call Begin, then Add
// for every font and range set, then End.
type Builder struct {
	atlas  *image.Alpha
	packer *shelfPacker
	glyphs map[rune]GlyphInfo
}

// NewBuilder returns a builder that has already begun an atlas of the given
// size.
func NewBuilder(width, height int) *Builder {
	b := &Builder{}
	b.Begin(width, height)
	return b
}

// Begin starts a new atlas, discarding anything added before.
func (b *Builder) Begin(width, height int) {
	b.atlas = image.NewAlpha(image.Rect(0, 0, width, height))
	b.packer = newShelfPacker(width, height, glyphPadding)
	b.packer.reserve(1, 1)
	b.glyphs = make(map[rune]GlyphInfo)
}

// Add rasterizes every code point of ranges present in the font at the given
// pixel size. Code points the font lacks are skipped.
func (b *Builder) Add(ttf []byte, size float32, ranges ...CharacterRange) error {
	if len(ranges) == 0 {
		return ErrNoRanges
	}
	return b.AddTable(ttf, size, RangeTable(ranges...))
}

// AddTable is Add for a prepared range table.
func (b *Builder) AddTable(ttf []byte, size float32, table *unicode.RangeTable) error {
	if b.atlas == nil {
		return ErrNotBegun
	}
	if len(ttf) == 0 {
		return ErrNoFontData
	}
	if table == nil || (len(table.R16) == 0 && len(table.R32) == 0) {
		return ErrNoRanges
	}

	f, err := opentype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("font: failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("font: failed to create face: %w", err)
	}
	defer face.Close()

	var buf sfnt.Buffer
	added := 0
	rangetable.Visit(table, func(r rune) {
		if err != nil {
			return
		}
		if idx, gerr := f.GlyphIndex(&buf, r); gerr != nil || idx == 0 {
			return
		}
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok {
			return
		}

		g := GlyphInfo{
			XOffset:  float32(dr.Min.X),
			YOffset:  float32(dr.Min.Y),
			XAdvance: float32(math.Round(float64(advance) / 64)),
		}
		if w, h := dr.Dx(), dr.Dy(); w > 0 && h > 0 {
			x, y, fits := b.packer.allocate(w, h)
			if !fits {
				err = fmt.Errorf("%w: no room for %q at %vpx", ErrAtlasFull, r, size)
				return
			}
			imgdraw.Draw(b.atlas, image.Rect(x, y, x+w, y+h), mask, maskp, imgdraw.Src)
			g.X, g.Y = float32(x), float32(y)
			g.Width, g.Height = float32(w), float32(h)
		}
		b.glyphs[r] = g
		added++
	})
	if err != nil {
		return err
	}
	Logger().Debug("font: added glyphs", "count", added, "size", size)
	return nil
}

// End finishes the atlas. Y offsets are shifted so the highest glyph starts at
// zero, and the texel at the origin is made opaque for untextured drawing.
func (b *Builder) End(fontSize, displaySize float32) (*Font, error) {
	if b.atlas == nil {
		return nil, ErrNotBegun
	}
	if len(b.glyphs) == 0 {
		return nil, ErrNoGlyphs
	}

	minY := float32(math.MaxFloat32)
	for _, g := range b.glyphs {
		minY = min(minY, g.YOffset)
	}
	for r, g := range b.glyphs {
		g.YOffset -= minY
		b.glyphs[r] = g
	}

	bounds := b.atlas.Bounds()
	atlas := image.NewNRGBA(bounds)
	for i, a := range b.atlas.Pix {
		atlas.Pix[i*4+0] = 255
		atlas.Pix[i*4+1] = 255
		atlas.Pix[i*4+2] = 255
		atlas.Pix[i*4+3] = a
	}
	atlas.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})

	f := &Font{
		FontSize:    fontSize,
		DisplaySize: displaySize,
		Atlas:       atlas,
		glyphs:      b.glyphs,
	}
	b.atlas, b.packer, b.glyphs = nil, nil, nil
	return f, nil
}

// FromTTF builds a font from one TrueType source in a single call.
func FromTTF(ttf []byte, size float32, width, height int, ranges ...CharacterRange) (*Font, error) {
	b := NewBuilder(width, height)
	if err := b.Add(ttf, size, ranges...); err != nil {
		return nil, err
	}
	return b.End(size, size)
}
