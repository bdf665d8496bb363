package gui

import (
	"enginegui/internal/draw"
	"enginegui/internal/geom"
)

// Button declares a clickable box with centered text and reports whether it
// was clicked this frame. Auto sizes fit the text.
func (c *Context) Button(label, text string, x, y, width, height Unit) bool {
	size := c.TextSize(nil, c.FontSize, text)
	pad := c.Style.FieldPadding
	if width.IsAuto() {
		width = Px(size.X + 4*pad)
	}
	if height.IsAuto() {
		height = Px(size.Y + 2*pad)
	}

	n := c.Node(label).Left(x).Top(y).Width(width).Height(height).Enter()
	defer n.Exit()
	if c.pass != PassRender || !n.HasLayout {
		return false
	}

	it := c.Interact(false)
	col := c.Style.ButtonBg
	switch {
	case it.IsActive():
		col = c.Style.ButtonActive
	case it.IsHovered():
		col = c.Style.ButtonHovered
	}
	c.DrawRectFilled(n.Rect, col)

	pos := geom.V(
		n.Rect.X+(n.Rect.Width-size.X)/2,
		n.Rect.Y+(n.Rect.Height-size.Y)/2,
	)
	c.DrawText(nil, c.FontSize, text, geom.V(float32(int(pos.X)), float32(int(pos.Y))), c.Style.Text)
	return it.IsClicked()
}

// Label declares a node sized to text and draws it in col.
func (c *Context) Label(label, text string, x, y Unit, col draw.Color) {
	size := c.TextSize(nil, c.FontSize, text)
	n := c.Node(label).Left(x).Top(y).Width(Px(size.X)).Height(Px(size.Y)).Enter()
	defer n.Exit()
	if c.pass == PassRender && n.HasLayout {
		c.DrawText(nil, c.FontSize, text, n.Rect.Min(), col)
	}
}

// Panel declares a node filled with bg and enters it. The caller must Exit
// the returned node.
func (c *Context) Panel(label string, x, y, width, height Unit, bg draw.Color) *Node {
	n := c.Node(label).Left(x).Top(y).Width(width).Height(height).Clip().Enter()
	if c.pass == PassRender && n.HasLayout {
		c.DrawRectFilled(n.Rect, bg)
	}
	return n
}
