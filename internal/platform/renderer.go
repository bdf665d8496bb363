package platform

import (
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"enginegui/internal/draw"
	"enginegui/internal/font"
	"enginegui/internal/gfxstate"
)

// Renderer replays GUI draw lists with rlgl.
type Renderer struct {
	State *gfxstate.Stack

	textures map[draw.TextureID]rl.Texture2D
	nextID   draw.TextureID
}

// NewRenderer must be called after the window is open.
func NewRenderer() *Renderer {
	return &Renderer{
		State:    gfxstate.NewStack(device{}),
		textures: make(map[draw.TextureID]rl.Texture2D),
		nextID:   1,
	}
}

// UploadFont creates a texture from f's atlas and returns its ID.
func (r *Renderer) UploadFont(f *font.Font) (draw.TextureID, error) {
	w, h := int32(f.Width()), int32(f.Height())
	img := rl.NewImage(f.Atlas.Pix, w, h, 1, rl.UncompressedR8g8b8a8)
	tex := rl.LoadTextureFromImage(img)
	if tex.ID == 0 {
		return 0, fmt.Errorf("upload font atlas %dx%d: texture creation failed", w, h)
	}
	rl.SetTextureFilter(tex, rl.FilterBilinear)

	id := r.nextID
	r.nextID++
	r.textures[id] = tex
	log.Printf("Renderer: uploaded font atlas %dx%d as texture %d", w, h, id)
	return id, nil
}

// Unload frees every uploaded texture.
func (r *Renderer) Unload() {
	for id, tex := range r.textures {
		rl.UnloadTexture(tex)
		delete(r.textures, id)
	}
}

// Render draws dl on top of whatever is in the frame. Depth test and face
// culling are off while it runs and restored after.
func (r *Renderer) Render(dl *draw.List) {
	r.State.Push()
	r.State.Set(gfxstate.DepthTest, false)
	r.State.Set(gfxstate.CullFace, false)
	r.State.Set(gfxstate.ColorBlend, true)

	for _, cmd := range dl.Cmds {
		if cmd.ElemCount == 0 {
			continue
		}
		clip := cmd.ClipRect
		if clip.Empty() {
			continue
		}
		rl.BeginScissorMode(int32(clip.X), int32(clip.Y), int32(clip.Width+0.5), int32(clip.Height+0.5))

		tex, ok := r.textures[cmd.Texture]
		if !ok {
			log.Printf("Renderer: unknown texture %d", cmd.Texture)
			rl.EndScissorMode()
			continue
		}
		r.triangles(dl, cmd, tex.ID)
		rl.EndScissorMode()
	}

	if err := r.State.Pop(); err != nil {
		log.Printf("Renderer: %v", err)
	}
}

func (r *Renderer) triangles(dl *draw.List, cmd draw.Cmd, texID uint32) {
	idx := dl.Indices[cmd.IdxOffset : cmd.IdxOffset+cmd.ElemCount]
	rl.SetTexture(texID)
	rl.Begin(rl.Triangles)
	for i := 0; i+2 < len(idx); i += 3 {
		rl.CheckRenderBatchLimit(3)
		for _, n := range idx[i : i+3] {
			v := dl.Vertices[n]
			rl.Color4ub(v.Col.R(), v.Col.G(), v.Col.B(), v.Col.A())
			rl.TexCoord2f(v.UV.X, v.UV.Y)
			rl.Vertex2f(v.Pos.X, v.Pos.Y)
		}
	}
	rl.End()
	rl.SetTexture(0)
}
