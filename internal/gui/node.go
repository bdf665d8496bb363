package gui

import "enginegui/internal/geom"

// LayoutType decides how a node places its children.
type LayoutType uint8

const (
	// LayoutNone places every child at its own offsets.
	LayoutNone LayoutType = iota
	// LayoutRow places children left to right.
	LayoutRow
	// LayoutColumn places children top to bottom.
	LayoutColumn
)

// Node is one element of the layout tree. Nodes are declared again every
// pass; only their ID carries over between frames.
type Node struct {
	ID       ID
	Label    string
	Parent   *Node
	Children []*Node

	// Rect is the outer rectangle, InnerRect the rectangle inside the
	// padding and ContentRect the union of the children, in unscrolled
	// coordinates. They are valid when HasLayout is set.
	Rect        geom.Rect
	InnerRect   geom.Rect
	ContentRect geom.Rect
	HasLayout   bool

	// VScroll is the vertical scroll offset applied to the children.
	VScroll float32

	c *Context

	left, top     Unit
	width, height Unit
	padding       [4]float32
	layout        LayoutType
	spacing       float32
	ignoreLayout  bool
	clip          bool
	clipPushed    bool

	w, h float32
}

// Node declares a child of the current node. The label must be unique among
// its siblings; an empty label falls back to the declaration order.
func (c *Context) Node(label string) *Node {
	parent := c.CurrentNode()
	index := len(parent.Children)
	id := deriveID(parent.ID, childKey(label, index))
	if _, dup := c.seen[id]; dup {
		Logger().Warn("gui: duplicate node label", "label", label, "parent", parent.Label)
		id = deriveID(id, childKey("", index))
	}
	c.seen[id] = struct{}{}

	n := &Node{
		ID:     id,
		Label:  label,
		Parent: parent,
		c:      c,
		width:  Auto,
		height: Auto,
	}
	n.VScroll = GetStorage(c, id, vscrollKey, float32(0))
	if c.pass == PassRender {
		if r, ok := c.layouts[id]; ok {
			n.Rect, n.InnerRect, n.ContentRect = r.rect, r.inner, r.content
			n.HasLayout = true
		}
	}
	parent.Children = append(parent.Children, n)
	return n
}

func (n *Node) Left(u Unit) *Node   { n.left = u; return n }
func (n *Node) Top(u Unit) *Node    { n.top = u; return n }
func (n *Node) Width(u Unit) *Node  { n.width = u; return n }
func (n *Node) Height(u Unit) *Node { n.height = u; return n }

// Size sets width and height together.
func (n *Node) Size(w, h Unit) *Node {
	n.width, n.height = w, h
	return n
}

// Padding insets the children by p on every side.
func (n *Node) Padding(p float32) *Node {
	n.padding = [4]float32{p, p, p, p}
	return n
}

// PaddingLTRB sets each side's padding.
func (n *Node) PaddingLTRB(left, top, right, bottom float32) *Node {
	n.padding = [4]float32{left, top, right, bottom}
	return n
}

func (n *Node) Layout(t LayoutType) *Node { n.layout = t; return n }

// Spacing is the gap between children in row and column layouts.
func (n *Node) Spacing(s float32) *Node { n.spacing = s; return n }

// IgnoreLayout takes the node out of its parent's flow and auto sizing. It is
// positioned from the parent's outer rectangle and does not scroll, which
// suits overlays such as scrollbars.
func (n *Node) IgnoreLayout() *Node { n.ignoreLayout = true; return n }

// Clip restricts drawing and hit testing inside the node to its rectangle.
func (n *Node) Clip() *Node { n.clip = true; return n }

// Enter makes n the current node so that following declarations become its
// children.
func (n *Node) Enter() *Node {
	c := n.c
	c.stack = append(c.stack, n)
	if n.clip && c.pass == PassRender && n.HasLayout {
		c.PushClip(n.Rect)
		n.clipPushed = true
	}
	return n
}

// Exit leaves n. It must be the current node.
func (n *Node) Exit() {
	c := n.c
	top := len(c.stack) - 1
	if top < 1 || c.stack[top] != n {
		Logger().Warn("gui: exit of a node that is not current", "label", n.Label)
		return
	}
	if n.clipPushed {
		c.PopClip()
		n.clipPushed = false
	}
	c.stack = c.stack[:top]
}

// Do runs fn with n entered.
func (n *Node) Do(fn func()) {
	n.Enter()
	defer n.Exit()
	fn()
}
