package gui

import "enginegui/internal/draw"

// Style holds the colors and tuning values widgets read.
type Style struct {
	Text          draw.Color
	TextDisabled  draw.Color
	FieldBg       draw.Color
	FieldBorder   draw.Color
	FieldFocused  draw.Color
	Selection     draw.Color
	Caret         draw.Color
	ButtonBg      draw.Color
	ButtonHovered draw.Color
	ButtonActive  draw.Color

	ScrollThumb        draw.Color
	ScrollThumbHovered draw.Color
	ScrollThumbActive  draw.Color

	// ScrollbarWidth and ScrollbarPadding size the vertical scroll track.
	ScrollbarWidth   float32
	ScrollbarPadding float32
	// ScrollDragMultiplier scales pointer movement while dragging a thumb.
	ScrollDragMultiplier float32
	// ScrollWheelStep is the offset change per wheel notch.
	ScrollWheelStep float32

	// CaretBlinkPeriod is one full caret cycle in seconds; the caret shows for
	// the first CaretBlinkOn seconds of it.
	CaretBlinkPeriod float32
	CaretBlinkOn     float32

	FieldPadding float32
	FieldBorderW float32
}

func DefaultStyle() Style {
	return Style{
		Text:          draw.RGBA(200, 200, 208, 255),
		TextDisabled:  draw.RGBA(119, 119, 119, 255),
		FieldBg:       draw.RGBA(28, 28, 38, 255),
		FieldBorder:   draw.RGBA(50, 50, 65, 255),
		FieldFocused:  draw.RGBA(108, 99, 255, 255),
		Selection:     draw.RGBA(108, 99, 255, 90),
		Caret:         draw.RGBA(255, 255, 255, 255),
		ButtonBg:      draw.RGBA(28, 28, 38, 255),
		ButtonHovered: draw.RGBA(38, 38, 52, 255),
		ButtonActive:  draw.RGBA(108, 99, 255, 255),

		ScrollThumb:        draw.RGBA(70, 70, 90, 255),
		ScrollThumbHovered: draw.RGBA(130, 120, 255, 255),
		ScrollThumbActive:  draw.RGBA(90, 80, 220, 255),

		ScrollbarWidth:       6,
		ScrollbarPadding:     2,
		ScrollDragMultiplier: 2,
		ScrollWheelStep:      10,

		CaretBlinkPeriod: 1.2,
		CaretBlinkOn:     0.8,

		FieldPadding: 5,
		FieldBorderW: 1,
	}
}
