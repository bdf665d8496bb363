package gui

import "enginegui/internal/geom"

type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	mouseButtonCount
)

// Key is a keyboard key the GUI reacts to. Backends map their own key codes
// onto these.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEnter
	KeyKeypadEnter
	KeyTab
	KeyEscape
	KeyA
	KeyC
	KeyV
	KeyX
	KeyY
	KeyZ
	KeyLeftControl
	KeyRightControl
	KeyLeftShift
	KeyRightShift
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
	keyCount
)

// Input is the state of the pointer and keyboard for one frame.
type Input struct {
	PointerPos   geom.Vec2
	PointerDelta geom.Vec2
	Wheel        float32

	Down     [mouseButtonCount]bool
	Clicked  [mouseButtonCount]bool
	Released [mouseButtonCount]bool

	KeysDown    [keyCount]bool
	KeysPressed [keyCount]bool

	// Chars holds the text typed this frame in order.
	Chars []rune
}

func (in *Input) IsPointerDown(b MouseButton) bool     { return in.Down[b] }
func (in *Input) IsPointerClick(b MouseButton) bool    { return in.Clicked[b] }
func (in *Input) IsPointerReleased(b MouseButton) bool { return in.Released[b] }

func (in *Input) IsPointerMoving() bool {
	return in.PointerDelta.X != 0 || in.PointerDelta.Y != 0
}

func (in *Input) IsKeyDown(k Key) bool    { return k > KeyNone && k < keyCount && in.KeysDown[k] }
func (in *Input) IsKeyPressed(k Key) bool { return k > KeyNone && k < keyCount && in.KeysPressed[k] }

func (in *Input) Ctrl() bool {
	return in.IsKeyDown(KeyLeftControl) || in.IsKeyDown(KeyRightControl) ||
		in.IsKeyDown(KeyLeftSuper) || in.IsKeyDown(KeyRightSuper)
}

func (in *Input) Shift() bool { return in.IsKeyDown(KeyLeftShift) || in.IsKeyDown(KeyRightShift) }

func (in *Input) Alt() bool { return in.IsKeyDown(KeyLeftAlt) || in.IsKeyDown(KeyRightAlt) }

// Press marks k as pressed and held. It is meant for tests and synthetic
// input.
func (in *Input) Press(k Key) {
	in.KeysDown[k] = true
	in.KeysPressed[k] = true
}

// Click marks b as clicked and held at p.
func (in *Input) Click(b MouseButton, p geom.Vec2) {
	in.PointerPos = p
	in.Down[b] = true
	in.Clicked[b] = true
}
