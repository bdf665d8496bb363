package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"enginegui/internal/gfxstate"
)

// device switches rlgl state. Pending batched geometry is flushed first so
// it is drawn with the state it was recorded under.
type device struct{}

var _ gfxstate.Device = device{}

func (device) SetDepthTest(on bool) {
	rl.DrawRenderBatchActive()
	if on {
		rl.EnableDepthTest()
	} else {
		rl.DisableDepthTest()
	}
}

func (device) SetColorBlend(on bool) {
	rl.DrawRenderBatchActive()
	if on {
		rl.EnableColorBlend()
	} else {
		rl.DisableColorBlend()
	}
}

func (device) SetCullFace(on bool) {
	rl.DrawRenderBatchActive()
	if on {
		rl.EnableBackfaceCulling()
	} else {
		rl.DisableBackfaceCulling()
	}
}
