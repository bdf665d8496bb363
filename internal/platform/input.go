package platform

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"enginegui/internal/geom"
	"enginegui/internal/gui"
)

// keyMap maps GUI keys to raylib key codes.
var keyMap = map[gui.Key]int32{
	gui.KeyLeft:         rl.KeyLeft,
	gui.KeyRight:        rl.KeyRight,
	gui.KeyUp:           rl.KeyUp,
	gui.KeyDown:         rl.KeyDown,
	gui.KeyHome:         rl.KeyHome,
	gui.KeyEnd:          rl.KeyEnd,
	gui.KeyPageUp:       rl.KeyPageUp,
	gui.KeyPageDown:     rl.KeyPageDown,
	gui.KeyBackspace:    rl.KeyBackspace,
	gui.KeyDelete:       rl.KeyDelete,
	gui.KeyInsert:       rl.KeyInsert,
	gui.KeyEnter:        rl.KeyEnter,
	gui.KeyKeypadEnter:  rl.KeyKpEnter,
	gui.KeyTab:          rl.KeyTab,
	gui.KeyEscape:       rl.KeyEscape,
	gui.KeyA:            rl.KeyA,
	gui.KeyC:            rl.KeyC,
	gui.KeyV:            rl.KeyV,
	gui.KeyX:            rl.KeyX,
	gui.KeyY:            rl.KeyY,
	gui.KeyZ:            rl.KeyZ,
	gui.KeyLeftControl:  rl.KeyLeftControl,
	gui.KeyRightControl: rl.KeyRightControl,
	gui.KeyLeftShift:    rl.KeyLeftShift,
	gui.KeyRightShift:   rl.KeyRightShift,
	gui.KeyLeftAlt:      rl.KeyLeftAlt,
	gui.KeyRightAlt:     rl.KeyRightAlt,
	gui.KeyLeftSuper:    rl.KeyLeftSuper,
	gui.KeyRightSuper:   rl.KeyRightSuper,
}

var buttonMap = [...]rl.MouseButton{
	gui.MouseLeft:   rl.MouseLeftButton,
	gui.MouseRight:  rl.MouseRightButton,
	gui.MouseMiddle: rl.MouseMiddleButton,
}

// PollInput snapshots raylib's input state for one frame. Held keys repeat
// as presses so that arrows and Backspace auto-repeat in text fields.
func PollInput() gui.Input {
	var in gui.Input

	p := rl.GetMousePosition()
	d := rl.GetMouseDelta()
	in.PointerPos = geom.V(p.X, p.Y)
	in.PointerDelta = geom.V(d.X, d.Y)
	in.Wheel = rl.GetMouseWheelMove()

	for b, code := range buttonMap {
		in.Down[b] = rl.IsMouseButtonDown(code)
		in.Clicked[b] = rl.IsMouseButtonPressed(code)
		in.Released[b] = rl.IsMouseButtonReleased(code)
	}

	for k, code := range keyMap {
		in.KeysDown[k] = rl.IsKeyDown(code)
		in.KeysPressed[k] = rl.IsKeyPressed(code) || rl.IsKeyPressedRepeat(code)
	}

	for r := rl.GetCharPressed(); r != 0; r = rl.GetCharPressed() {
		in.Chars = append(in.Chars, rune(r))
	}
	return in
}
