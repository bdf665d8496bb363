// Package draw records GUI primitives into an indexed triangle list that a
// backend replays. Every command carries the clip rectangle and texture that
// were current when its triangles were added.
package draw

import (
	"math"

	"enginegui/internal/geom"
)

// TextureID identifies a backend texture. Zero means the font atlas.
type TextureID uint32

type Vertex struct {
	Pos geom.Vec2
	UV  geom.Vec2
	Col Color
}

// Cmd is a run of indices sharing one clip rectangle and texture.
type Cmd struct {
	ClipRect  geom.Rect
	Texture   TextureID
	IdxOffset int
	ElemCount int
}

type List struct {
	Vertices []Vertex
	Indices  []uint32
	Cmds     []Cmd

	// WhiteUV points at an opaque texel of the atlas so untextured shapes can
	// share the atlas draw call.
	WhiteUV geom.Vec2

	screen    geom.Rect
	clipStack []geom.Rect
	texture   TextureID
}

func NewList(screen geom.Rect) *List {
	l := &List{}
	l.Reset(screen)
	return l
}

// Reset empties the list for a new frame.
func (l *List) Reset(screen geom.Rect) {
	l.Vertices = l.Vertices[:0]
	l.Indices = l.Indices[:0]
	l.Cmds = l.Cmds[:0]
	l.clipStack = l.clipStack[:0]
	l.screen = screen
	l.texture = 0
}

// ClipRect returns the active clip rectangle.
func (l *List) ClipRect() geom.Rect {
	if len(l.clipStack) == 0 {
		return l.screen
	}
	return l.clipStack[len(l.clipStack)-1]
}

// PushClipRect makes r the active clip rectangle. With intersect set, r is
// first narrowed to the current clip.
func (l *List) PushClipRect(r geom.Rect, intersect bool) {
	if intersect {
		r = r.Intersect(l.ClipRect())
	}
	l.clipStack = append(l.clipStack, r)
}

func (l *List) PopClipRect() {
	if len(l.clipStack) == 0 {
		return
	}
	l.clipStack = l.clipStack[:len(l.clipStack)-1]
}

func (l *List) SetTexture(id TextureID) {
	l.texture = id
}

// reserve makes sure the last command matches the current state and returns
// the index of the first new vertex.
func (l *List) reserve(idxCount int) uint32 {
	clip := l.ClipRect()
	n := len(l.Cmds)
	if n == 0 || l.Cmds[n-1].ClipRect != clip || l.Cmds[n-1].Texture != l.texture {
		l.Cmds = append(l.Cmds, Cmd{ClipRect: clip, Texture: l.texture, IdxOffset: len(l.Indices)})
		n++
	}
	l.Cmds[n-1].ElemCount += idxCount
	return uint32(len(l.Vertices))
}

// AddQuadUV adds a textured quad from a to c with uv coordinates uvA to uvC.
func (l *List) AddQuadUV(a, c, uvA, uvC geom.Vec2, col Color) {
	if col.A() == 0 {
		return
	}
	base := l.reserve(6)
	b := geom.Vec2{X: c.X, Y: a.Y}
	d := geom.Vec2{X: a.X, Y: c.Y}
	uvB := geom.Vec2{X: uvC.X, Y: uvA.Y}
	uvD := geom.Vec2{X: uvA.X, Y: uvC.Y}
	l.Vertices = append(l.Vertices,
		Vertex{Pos: a, UV: uvA, Col: col},
		Vertex{Pos: b, UV: uvB, Col: col},
		Vertex{Pos: c, UV: uvC, Col: col},
		Vertex{Pos: d, UV: uvD, Col: col},
	)
	l.Indices = append(l.Indices, base, base+1, base+2, base, base+2, base+3)
}

// AddRectFilled adds a solid rectangle.
func (l *List) AddRectFilled(r geom.Rect, col Color) {
	if r.Empty() {
		return
	}
	l.AddQuadUV(r.Min(), r.Max(), l.WhiteUV, l.WhiteUV, col)
}

// AddRect adds a rectangle outline of the given thickness drawn inside r.
func (l *List) AddRect(r geom.Rect, col Color, thickness float32) {
	if r.Empty() || thickness <= 0 {
		return
	}
	t := min(thickness, r.Width/2, r.Height/2)
	l.AddRectFilled(geom.R(r.X, r.Y, r.Width, t), col)
	l.AddRectFilled(geom.R(r.X, r.Bottom()-t, r.Width, t), col)
	l.AddRectFilled(geom.R(r.X, r.Y+t, t, r.Height-2*t), col)
	l.AddRectFilled(geom.R(r.Right()-t, r.Y+t, t, r.Height-2*t), col)
}

// AddLine adds a segment from a to b as a thin quad.
func (l *List) AddLine(a, b geom.Vec2, col Color, thickness float32) {
	if col.A() == 0 {
		return
	}
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		return
	}
	nx := -dy / length * thickness * 0.5
	ny := dx / length * thickness * 0.5

	base := l.reserve(6)
	uv := l.WhiteUV
	l.Vertices = append(l.Vertices,
		Vertex{Pos: geom.V(a.X+nx, a.Y+ny), UV: uv, Col: col},
		Vertex{Pos: geom.V(b.X+nx, b.Y+ny), UV: uv, Col: col},
		Vertex{Pos: geom.V(b.X-nx, b.Y-ny), UV: uv, Col: col},
		Vertex{Pos: geom.V(a.X-nx, a.Y-ny), UV: uv, Col: col},
	)
	l.Indices = append(l.Indices, base, base+1, base+2, base, base+2, base+3)
}
