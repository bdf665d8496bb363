package gui

import "enginegui/internal/geom"

const vscrollKey = "VScroll"

// ClampScroll limits offset to [0, overflow] where overflow is how far the
// content extends past the visible height.
func ClampScroll(offset, contentHeight, visibleHeight float32) float32 {
	overflow := max(0, contentHeight-visibleHeight)
	return max(0, min(offset, overflow))
}

// ScrollThumb returns the thumb rectangle inside track for the given scroll
// state. The thumb is as tall as the visible fraction of the content.
func ScrollThumb(track geom.Rect, offset, contentHeight, visibleHeight float32) geom.Rect {
	if contentHeight <= 0 || contentHeight <= visibleHeight {
		return track
	}
	h := track.Height * (visibleHeight / contentHeight)
	overflow := contentHeight - visibleHeight
	y := track.Y + (track.Height-h)*(ClampScroll(offset, contentHeight, visibleHeight)/overflow)
	return geom.R(track.X, y, track.Width, h)
}

// ScrollV makes the current node scroll vertically. Call it after the node's
// children are declared. It draws a thumb when the content overflows,
// handles thumb dragging and the mouse wheel, and keeps the offset in node
// storage. Offset changes take effect on the next frame's layout.
func (c *Context) ScrollV() {
	n := c.CurrentNode()
	st := &c.Style
	pad := st.ScrollbarPadding
	w := st.ScrollbarWidth

	track := c.Node("_VScroll").
		IgnoreLayout().
		Left(PctPlus(1, -(w + pad))).
		Top(Px(pad)).
		Width(Px(w)).
		Height(PctPlus(1, -2*pad))

	if c.pass != PassRender || !n.HasLayout {
		return
	}

	contentH := n.ContentRect.Height
	visibleH := n.Rect.Height
	overflow := contentH > visibleH
	offset := n.VScroll

	if overflow {
		thumbID := deriveID(track.ID, "thumb")
		thumb := ScrollThumb(track.Rect, offset, contentH, visibleH)
		col := st.ScrollThumb
		if c.IsHovering(thumb) {
			c.HoveredID = thumbID
			col = st.ScrollThumbHovered
			if c.Input.IsPointerClick(MouseLeft) {
				c.ActiveID = thumbID
			}
		}
		if c.ActiveID == thumbID {
			col = st.ScrollThumbActive
			offset += c.Input.PointerDelta.Y * st.ScrollDragMultiplier
		}
		c.DrawRectFilled(thumb, col)
	}

	if overflow && c.IsHovering(n.Rect) && c.Input.Wheel != 0 {
		offset -= c.Input.Wheel * st.ScrollWheelStep
	}

	if overflow {
		offset = ClampScroll(offset, contentH, visibleH)
	} else {
		offset = 0
	}
	n.VScroll = offset
	SetStorage(c, n.ID, vscrollKey, offset)
}
