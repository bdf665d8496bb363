package theme

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"enginegui/internal/draw"
)

// TypeColors hands out a stable accent color per type name. The same key
// always maps to the same color, across runs too.
type TypeColors struct {
	cache map[string]draw.Color
}

func NewTypeColors() *TypeColors {
	return &TypeColors{cache: make(map[string]draw.Color)}
}

// Color returns the color for key, generating it on first use.
func (t *TypeColors) Color(key string) draw.Color {
	if c, ok := t.cache[key]; ok {
		return c
	}
	c := generate(key)
	t.cache[key] = c
	return c
}

// Len is the number of memoized keys.
func (t *TypeColors) Len() int { return len(t.cache) }

var defaultTypeColors = NewTypeColors()

// TypeColor is TypeColors.Color on a shared cache.
func TypeColor(key string) draw.Color { return defaultTypeColors.Color(key) }

// keyHash is a 31-multiplier string hash with 32-bit wraparound.
func keyHash(key string) int32 {
	h := int32(17)
	for i := 0; i < len(key); i++ {
		h = h*31 + int32(key[i])
	}
	return h
}

func generate(key string) draw.Color {
	rng := rand.New(rand.NewSource(int64(keyHash(key)) + 5))
	hue := rng.Float64() * 360
	sat := 0.8 + rng.Float64()*0.2
	val := 0.8 + rng.Float64()*0.2
	r, g, b := colorful.Hsv(hue, sat, val).Clamped().RGB255()
	return draw.RGBA(r, g, b, 255)
}
