package gui

import "enginegui/internal/geom"

// IsHovering reports whether the pointer is over r and inside the active clip
// rectangle. It is always false outside the render pass.
func (c *Context) IsHovering(r geom.Rect) bool {
	if c.pass != PassRender {
		return false
	}
	p := c.Input.PointerPos
	return r.Contains(p) && c.ClipRect().Contains(p)
}

// Interactable is the pointer and focus behavior of one node.
type Interactable struct {
	ID   ID
	Rect geom.Rect

	c         *Context
	focusable bool
}

// Interact returns the interactable of the current node. It records hover
// and press state for this frame.
func (c *Context) Interact(focusable bool) Interactable {
	n := c.CurrentNode()
	it := Interactable{ID: n.ID, Rect: n.Rect, c: c, focusable: focusable}
	if c.pass != PassRender || !n.HasLayout {
		return it
	}
	if c.IsHovering(n.Rect) {
		c.HoveredID = n.ID
		if c.Input.IsPointerClick(MouseLeft) {
			c.ActiveID = n.ID
		}
	}
	return it
}

func (i Interactable) IsHovered() bool { return i.ID != 0 && i.c.HoveredID == i.ID }

// IsActive reports whether the pointer was pressed on the node and is still
// held.
func (i Interactable) IsActive() bool { return i.ID != 0 && i.c.ActiveID == i.ID }

func (i Interactable) IsClicked() bool {
	return i.IsHovered() && i.c.Input.IsPointerClick(MouseLeft)
}

func (i Interactable) IsFocused() bool { return i.c.IsFocused(i.ID) }

// TakeFocus focuses the node when it is clicked and releases focus when the
// pointer is clicked anywhere else. It reports whether the node has focus.
func (i Interactable) TakeFocus() bool {
	c := i.c
	if !i.focusable || c.pass != PassRender {
		return i.IsFocused()
	}
	if c.Input.IsPointerClick(MouseLeft) {
		if i.IsHovered() {
			c.SetFocus(i.ID)
		} else if c.FocusID == i.ID {
			c.SetFocus(0)
		}
	}
	return i.IsFocused()
}
