// Package platform runs the GUI on raylib: window, input, clipboard and
// draw-list rendering.
package platform

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"enginegui/internal/clipboard"
	"enginegui/internal/config"
	"enginegui/internal/draw"
	"enginegui/internal/geom"
)

// Window is the raylib window. Only one may be open.
type Window struct {
	cfg config.WindowConfig
}

// Open creates the window and the GL context.
func Open(cfg config.WindowConfig) *Window {
	flags := uint32(rl.FlagWindowResizable)
	if cfg.HighDPI {
		flags |= rl.FlagWindowHighdpi
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	rl.SetTargetFPS(int32(cfg.TargetFPS))
	// Escape belongs to text fields.
	rl.SetExitKey(0)
	log.Printf("Window: opened %dx%d", cfg.Width, cfg.Height)
	return &Window{cfg: cfg}
}

func (w *Window) ShouldClose() bool { return rl.WindowShouldClose() }

func (w *Window) Close() { rl.CloseWindow() }

// Screen is the drawable area in screen coordinates.
func (w *Window) Screen() geom.Rect {
	return geom.R(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
}

func (w *Window) FrameTime() float32 { return rl.GetFrameTime() }

func (w *Window) Position() (x, y int) {
	p := rl.GetWindowPosition()
	return int(p.X), int(p.Y)
}

// Place moves and resizes the window. Non-positive sizes are ignored.
func (w *Window) Place(x, y, width, height int) {
	if width > 0 && height > 0 {
		rl.SetWindowSize(width, height)
	}
	rl.SetWindowPosition(x, y)
}

// BeginFrame starts drawing and clears to bg.
func (w *Window) BeginFrame(bg draw.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(Color(bg))
}

func (w *Window) EndFrame() { rl.EndDrawing() }

// Color converts a GUI color to raylib's.
func Color(c draw.Color) rl.Color {
	return rl.NewColor(c.R(), c.G(), c.B(), c.A())
}

// Clipboard is raylib's clipboard, which works wherever the window does.
func Clipboard() clipboard.Func {
	return clipboard.Func{Get: rl.GetClipboardText, Set: rl.SetClipboardText}
}
