package gui

import "enginegui/internal/geom"

type layoutResult struct {
	rect, inner, content geom.Rect
}

// layoutTree sizes and places the tree built by the layout pass and records
// the rectangles for the render pass.
func (c *Context) layoutTree(root *Node) {
	clear(c.layouts)
	root.measure(root.Rect.Width, root.Rect.Height)
	root.place(root.Rect.X, root.Rect.Y)
	c.record(root)
}

func (c *Context) record(n *Node) {
	c.layouts[n.ID] = layoutResult{rect: n.Rect, inner: n.InnerRect, content: n.ContentRect}
	for _, ch := range n.Children {
		c.record(ch)
	}
}

// measure resolves the node's size. Fixed and percentage sizes come from the
// parent; Auto sizes are computed from the children after they are measured.
// Percentages inside an Auto node resolve against zero.
func (n *Node) measure(parentW, parentH float32) {
	n.w = n.width.resolve(parentW)
	n.h = n.height.resolve(parentH)

	padW := n.padding[0] + n.padding[2]
	padH := n.padding[1] + n.padding[3]
	var innerW, innerH float32
	if !n.width.IsAuto() {
		innerW = max(0, n.w-padW)
	}
	if !n.height.IsAuto() {
		innerH = max(0, n.h-padH)
	}

	var contentW, contentH float32
	flow := 0
	for _, ch := range n.Children {
		if ch.ignoreLayout {
			ch.measure(n.w, n.h)
			continue
		}
		ch.measure(innerW, innerH)

		ox := ch.left.resolve(innerW)
		oy := ch.top.resolve(innerH)
		switch n.layout {
		case LayoutRow:
			contentW += ox + ch.w
			contentH = max(contentH, oy+ch.h)
		case LayoutColumn:
			contentW = max(contentW, ox+ch.w)
			contentH += oy + ch.h
		default:
			contentW = max(contentW, ox+ch.w)
			contentH = max(contentH, oy+ch.h)
		}
		flow++
	}
	if flow > 1 {
		gaps := n.spacing * float32(flow-1)
		switch n.layout {
		case LayoutRow:
			contentW += gaps
		case LayoutColumn:
			contentH += gaps
		}
	}

	if n.width.IsAuto() {
		n.w = contentW + padW
	}
	if n.height.IsAuto() {
		n.h = contentH + padH
	}
	n.w = max(0, n.w)
	n.h = max(0, n.h)
}

// place positions the node at (x,y) and then its children. Flow children are
// shifted up by the node's scroll offset. The content rectangle is finished
// only after every child has been placed.
func (n *Node) place(x, y float32) {
	n.Rect = geom.R(x, y, n.w, n.h)
	n.InnerRect = n.Rect.Shrink(n.padding[0], n.padding[1], n.padding[2], n.padding[3])
	n.HasLayout = true

	inner := n.InnerRect
	cursor := inner.Min()
	content := geom.R(n.Rect.X, n.Rect.Y, 0, 0)

	for _, ch := range n.Children {
		if ch.ignoreLayout {
			ch.place(n.Rect.X+ch.left.resolve(n.Rect.Width), n.Rect.Y+ch.top.resolve(n.Rect.Height))
			content = content.Union(ch.Rect)
			continue
		}

		ox := ch.left.resolve(inner.Width)
		oy := ch.top.resolve(inner.Height)
		var cx, cy float32
		switch n.layout {
		case LayoutRow:
			cx, cy = cursor.X+ox, inner.Y+oy
			cursor.X = cx + ch.w + n.spacing
		case LayoutColumn:
			cx, cy = inner.X+ox, cursor.Y+oy
			cursor.Y = cy + ch.h + n.spacing
		default:
			cx, cy = inner.X+ox, inner.Y+oy
		}
		ch.place(cx, cy-n.VScroll)

		r := ch.Rect.Offset(0, n.VScroll)
		r.Width += n.padding[2]
		r.Height += n.padding[3]
		content = content.Union(r)
	}
	n.ContentRect = content
}
