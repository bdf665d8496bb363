// Package gui is an immediate-mode GUI. Widgets are declared every frame as
// a tree of nodes; each frame is built twice, once to lay the tree out and
// once to handle input and record draw commands against the computed
// rectangles.
package gui

import (
	"enginegui/internal/draw"
	"enginegui/internal/font"
	"enginegui/internal/geom"
	"enginegui/internal/textedit"
)

// Pass is the phase of a frame being built.
type Pass uint8

const (
	// PassLayout collects the node tree. Nothing is drawn and no input is
	// handled.
	PassLayout Pass = iota
	// PassRender handles input and draws using the layout of the same frame.
	PassRender
)

func (p Pass) String() string {
	if p == PassRender {
		return "render"
	}
	return "layout"
}

const rootID ID = 1

// Context owns everything that lives across frames: node storage, focus and
// text edit states, and the draw list of the current frame.
type Context struct {
	Style     Style
	Font      *font.Font
	FontSize  float32
	Clipboard textedit.Clipboard
	DrawList  *draw.List

	Input      Input
	DeltaTime  float32
	Time       float64
	FrameCount uint64

	FocusID   ID
	ActiveID  ID
	HoveredID ID

	OnFocusChanged Event[FocusChange]

	store      map[storeKey]any
	editStates map[ID]*textedit.State
	layouts    map[ID]layoutResult
	textures   map[*font.Font]draw.TextureID
	blankFont  *font.Font

	pass      Pass
	screen    geom.Rect
	root      *Node
	stack     []*Node
	seen      map[ID]struct{}
	clipStack []geom.Rect
	charsUsed bool
}

// NewContext returns a context drawing text with f. f may be nil, in which
// case every glyph uses the fallback advance and nothing textured is drawn.
func NewContext(f *font.Font) *Context {
	c := &Context{
		Style:      DefaultStyle(),
		Font:       f,
		FontSize:   16,
		DrawList:   draw.NewList(geom.Rect{}),
		store:      make(map[storeKey]any),
		editStates: make(map[ID]*textedit.State),
		layouts:    make(map[ID]layoutResult),
		textures:   make(map[*font.Font]draw.TextureID),
		seen:       make(map[ID]struct{}),
	}
	if f != nil {
		c.FontSize = f.DisplaySize
	}
	return c
}

// Reset forgets all persistent state: storage, focus and edit states.
func (c *Context) Reset() {
	clear(c.store)
	clear(c.editStates)
	clear(c.layouts)
	c.FocusID, c.ActiveID, c.HoveredID = 0, 0, 0
}

// Pass reports the pass being built.
func (c *Context) Pass() Pass { return c.pass }

// Screen is the rectangle of the root node.
func (c *Context) Screen() geom.Rect { return c.screen }

// SetFontTexture tells the context which backend texture holds f's atlas.
func (c *Context) SetFontTexture(f *font.Font, id draw.TextureID) {
	c.textures[f] = id
}

// Frame builds one frame. build declares the widgets and is called once per
// pass; it must declare the same tree both times.
func (c *Context) Frame(in Input, dt float32, screen geom.Rect, build func()) {
	c.Input = in
	c.DeltaTime = dt
	c.Time += float64(dt)
	c.FrameCount++
	c.screen = screen

	if !in.IsPointerDown(MouseLeft) && !in.IsPointerClick(MouseLeft) {
		c.ActiveID = 0
	}

	c.runPass(PassLayout, build)
	c.layoutTree(c.root)

	c.DrawList.Reset(screen)
	if c.Font != nil {
		c.DrawList.WhiteUV = c.Font.WhiteUV()
	}
	c.HoveredID = 0
	c.runPass(PassRender, build)
}

func (c *Context) runPass(p Pass, build func()) {
	c.pass = p
	c.root = &Node{
		ID:        rootID,
		Label:     "root",
		c:         c,
		width:     Px(c.screen.Width),
		height:    Px(c.screen.Height),
		Rect:      c.screen,
		InnerRect: c.screen,
		HasLayout: true,
	}
	if r, ok := c.layouts[rootID]; ok && p == PassRender {
		c.root.ContentRect = r.content
	}
	c.stack = append(c.stack[:0], c.root)
	clear(c.seen)
	c.clipStack = c.clipStack[:0]
	c.charsUsed = false

	build()

	if len(c.stack) != 1 {
		Logger().Warn("gui: nodes left open at end of pass", "pass", p, "open", len(c.stack)-1)
		c.stack = c.stack[:1]
	}
	for len(c.clipStack) > 0 {
		c.PopClip()
	}
}

// Root is the node covering the screen.
func (c *Context) Root() *Node { return c.root }

// CurrentNode is the innermost entered node.
func (c *Context) CurrentNode() *Node { return c.stack[len(c.stack)-1] }

// SetFocus gives keyboard focus to id; zero clears it. Text edit states of
// other fields are discarded.
func (c *Context) SetFocus(id ID) {
	if c.FocusID == id {
		return
	}
	from := c.FocusID
	c.FocusID = id
	for k := range c.editStates {
		if k != id {
			delete(c.editStates, k)
		}
	}
	Logger().Debug("gui: focus changed", "from", from, "to", id)
	c.OnFocusChanged.Invoke(FocusChange{From: from, To: id})
}

// ReleaseFocus clears keyboard focus.
func (c *Context) ReleaseFocus() { c.SetFocus(0) }

func (c *Context) IsFocused(id ID) bool { return id != 0 && c.FocusID == id }

// FocusedFieldID is the text field being edited, or zero.
func (c *Context) FocusedFieldID() ID {
	if _, ok := c.editStates[c.FocusID]; ok {
		return c.FocusID
	}
	return 0
}

// EditState returns the edit state of field id, or nil when it is not being
// edited.
func (c *Context) EditState(id ID) *textedit.State { return c.editStates[id] }

// EditStateCount is the number of live edit states. It never exceeds one.
func (c *Context) EditStateCount() int { return len(c.editStates) }

// takeChars returns the characters typed this frame the first time it is
// called in a render pass and nil afterwards.
func (c *Context) takeChars() []rune {
	if c.charsUsed || c.pass != PassRender {
		return nil
	}
	c.charsUsed = true
	return c.Input.Chars
}
