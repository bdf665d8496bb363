package font

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// CharacterRange is an inclusive span of code points to rasterize.
type CharacterRange struct {
	Start, End rune
}

// Single returns a range holding one code point.
func Single(r rune) CharacterRange { return CharacterRange{Start: r, End: r} }

func (c CharacterRange) Size() int {
	if c.End < c.Start {
		return 0
	}
	return int(c.End-c.Start) + 1
}

var (
	BasicLatin               = CharacterRange{0x0020, 0x007F}
	Latin1Supplement         = CharacterRange{0x00A0, 0x00FF}
	LatinExtendedA           = CharacterRange{0x0100, 0x017F}
	LatinExtendedB           = CharacterRange{0x0180, 0x024F}
	Greek                    = CharacterRange{0x0370, 0x03FF}
	Cyrillic                 = CharacterRange{0x0400, 0x04FF}
	CyrillicSupplement       = CharacterRange{0x0500, 0x052F}
	CjkSymbolsAndPunctuation = CharacterRange{0x3000, 0x303F}
	Hiragana                 = CharacterRange{0x3040, 0x309F}
	Katakana                 = CharacterRange{0x30A0, 0x30FF}
	HangulCompatibilityJamo  = CharacterRange{0x3130, 0x318F}
	CjkUnifiedIdeographs     = CharacterRange{0x4E00, 0x9FFF}
	HangulSyllables          = CharacterRange{0xAC00, 0xD7AF}
	Thai                     = CharacterRange{0x0E00, 0x0E7F}
	// LatinExtendedAdditional holds the precomposed Vietnamese letters.
	LatinExtendedAdditional = CharacterRange{0x1E00, 0x1EFF}
)

var namedRanges = map[string]CharacterRange{
	"basiclatin":               BasicLatin,
	"latin1supplement":         Latin1Supplement,
	"latinextendeda":           LatinExtendedA,
	"latinextendedb":           LatinExtendedB,
	"greek":                    Greek,
	"cyrillic":                 Cyrillic,
	"cyrillicsupplement":       CyrillicSupplement,
	"cjksymbolsandpunctuation": CjkSymbolsAndPunctuation,
	"hiragana":                 Hiragana,
	"katakana":                 Katakana,
	"hangulcompatibilityjamo":  HangulCompatibilityJamo,
	"cjkunifiedideographs":     CjkUnifiedIdeographs,
	"hangulsyllables":          HangulSyllables,
	"thai":                     Thai,
	"latinextendedadditional":  LatinExtendedAdditional,
	"vietnamese":               LatinExtendedAdditional,
}

// RangeByName looks up a preset such as "BasicLatin" or "cyrillic".
func RangeByName(name string) (CharacterRange, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	r, ok := namedRanges[key]
	if !ok {
		return CharacterRange{}, fmt.Errorf("font: unknown character range %q", name)
	}
	return r, nil
}

// RangeTable merges ranges into a single normalized table. Overlapping and
// empty ranges are allowed.
func RangeTable(ranges ...CharacterRange) *unicode.RangeTable {
	tables := make([]*unicode.RangeTable, 0, len(ranges))
	for _, r := range ranges {
		if r.End < r.Start {
			continue
		}
		tables = append(tables, spanTable(r))
	}
	return rangetable.Merge(tables...)
}

func spanTable(r CharacterRange) *unicode.RangeTable {
	t := &unicode.RangeTable{}
	if r.End <= 0xFFFF {
		t.R16 = []unicode.Range16{{Lo: uint16(r.Start), Hi: uint16(r.End), Stride: 1}}
		return t
	}
	if r.Start <= 0xFFFF {
		t.R16 = []unicode.Range16{{Lo: uint16(r.Start), Hi: 0xFFFF, Stride: 1}}
		t.R32 = []unicode.Range32{{Lo: 0x10000, Hi: uint32(r.End), Stride: 1}}
		return t
	}
	t.R32 = []unicode.Range32{{Lo: uint32(r.Start), Hi: uint32(r.End), Stride: 1}}
	return t
}
