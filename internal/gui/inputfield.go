package gui

import (
	"enginegui/internal/font"
	"enginegui/internal/geom"
	"enginegui/internal/textedit"
)

// InputFlags change how an input field edits and displays its value.
type InputFlags uint32

const (
	// InputNumbersOnly accepts decimal digits only.
	InputNumbersOnly InputFlags = 1 << iota
	// InputMultiline makes Enter insert a newline and the field scroll
	// vertically.
	InputMultiline
	// InputAllowTab makes Tab insert a tab character.
	InputAllowTab
	// InputNoSelection disables selecting and the clipboard commands that
	// need a selection.
	InputNoSelection
	// InputAutoSelectAll selects the whole value when the field gains focus.
	InputAutoSelectAll
	// InputEnterReturnsTrue reports true only when Enter is pressed, and
	// makes Enter release focus in multi-line fields too.
	InputEnterReturnsTrue
	// InputOnlyDisplay draws the value and never takes focus.
	InputOnlyDisplay
	// InputReadOnly allows selecting and copying but not editing.
	InputReadOnly
	// InputNoHorizontalScroll pins the view to the start of the line.
	InputNoHorizontalScroll
)

// fieldKeys is the order in which pressed keys are handled within a frame.
var fieldKeys = [...]Key{
	KeyTab, KeyA, KeyEscape, KeyInsert, KeyC, KeyX, KeyV, KeyZ, KeyY,
	KeyLeft, KeyRight, KeyUp, KeyDown, KeyBackspace, KeyDelete, KeyHome, KeyEnd,
	KeyEnter, KeyKeypadEnter,
}

// InputField edits *value with the context font. See InputFieldFont.
func (c *Context) InputField(label string, value *string, maxLength int, flags InputFlags, x, y, width Unit) bool {
	return c.InputFieldFont(label, nil, c.FontSize, value, maxLength, flags, x, y, width)
}

// InputFieldFont declares a text field editing *value, drawn with f at
// fontSize. The value is written back every frame while the field is
// focused. maxLength caps the value in runes; zero or less is unlimited.
//
// It reports whether the value changed this frame. With
// InputEnterReturnsTrue it reports only whether Enter was pressed. A
// single-line field also reports true on Enter, which releases focus.
func (c *Context) InputFieldFont(label string, f *font.Font, fontSize float32, value *string, maxLength int, flags InputFlags, x, y, width Unit) bool {
	f = c.fontOr(f)
	multiline := flags&InputMultiline != 0
	pad := c.Style.FieldPadding
	innerH := fontSize + 2.5
	if multiline {
		innerH = fontSize * 8
	}

	n := c.Node(label).Left(x).Top(y).Width(width).Height(Px(innerH + 2*pad)).Padding(pad).Enter()
	defer n.Exit()

	result := false
	if c.pass == PassRender && n.HasLayout {
		it := c.Interact(flags&InputOnlyDisplay == 0)
		focused := it.TakeFocus()

		border := c.Style.FieldBorder
		if focused {
			border = c.Style.FieldFocused
		}
		c.DrawRectFilled(n.Rect, c.Style.FieldBg)
		c.DrawRect(n.Rect, border, c.Style.FieldBorderW)

		c.PushClip(n.InnerRect)
		if focused {
			result = c.editField(n, f.WithSize(fontSize), value, maxLength, flags)
		} else {
			pos := n.InnerRect.Min()
			if multiline {
				pos.Y -= n.VScroll
			}
			c.DrawText(f, fontSize, *value, pos, c.Style.Text)
		}
		c.PopClip()
	}

	if multiline {
		text := []rune(*value)
		if st := c.editStates[n.ID]; st != nil {
			text = st.Text
		}
		size, _, offset := f.WithSize(fontSize).InputTextCalcTextSize(text, 0, len(text), false)
		contentH := max(size.Y, offset.Y) + 2*pad
		c.Node("_content").
			IgnoreLayout().
			Width(Px(size.X + 2*pad)).
			Height(Px(contentH))
		if c.pass == PassRender {
			// Text typed this frame is not in the layout yet.
			n.ContentRect.Height = max(n.ContentRect.Height, contentH)
		}
		c.ScrollV()
	}
	return result
}

// editField runs one frame of a focused field: keys, typed text, pointer,
// view scrolling and drawing.
func (c *Context) editField(n *Node, m font.Sized, value *string, maxLength int, flags InputFlags) bool {
	multiline := flags&InputMultiline != 0
	st := c.editStates[n.ID]
	skipPointer := false
	if st == nil {
		st = textedit.New(*value, !multiline)
		st.ID = uint64(n.ID)
		if flags&InputAutoSelectAll != 0 {
			st.SelectAll()
			skipPointer = true
		}
		c.editStates[n.ID] = st
	}
	st.Policy = textedit.Policy{
		MaxLength:   maxLength,
		NumbersOnly: flags&InputNumbersOnly != 0,
		ReadOnly:    flags&InputReadOnly != 0,
		AllowTab:    flags&InputAllowTab != 0,
	}

	in := &c.Input
	enter := in.IsKeyPressed(KeyEnter) || in.IsKeyPressed(KeyKeypadEnter)
	escape := c.fieldKeys(st, m, flags)
	for _, r := range c.takeChars() {
		st.InputChar(r)
	}
	if !skipPointer {
		c.fieldPointer(n, st, m, flags)
	}
	st.Tick(c.DeltaTime)

	c.drawField(n, st, m, flags)

	old := *value
	*value = st.String()

	commit := enter && (!multiline || flags&InputEnterReturnsTrue != 0)
	// Escape also gives up focus so editor shortcuts apply again. The value
	// is already live, so nothing is reverted.
	if commit || escape {
		c.SetFocus(0)
	}
	if flags&InputEnterReturnsTrue != 0 {
		return commit
	}
	return old != *value || commit
}

// fieldKeys applies this frame's key presses. It reports whether Escape was
// pressed.
func (c *Context) fieldKeys(st *textedit.State, m font.Sized, flags InputFlags) bool {
	in := &c.Input
	ctrl, shift := in.Ctrl(), in.Shift()
	canSelect := flags&InputNoSelection == 0
	editable := flags&InputReadOnly == 0
	multiline := flags&InputMultiline != 0

	move := func(k textedit.Key) {
		if shift && canSelect {
			k |= textedit.KeyShift
		}
		st.Key(m, k)
	}

	escape := false
	for _, k := range fieldKeys {
		if !in.IsKeyPressed(k) {
			continue
		}
		switch k {
		case KeyTab:
			if flags&InputAllowTab != 0 {
				st.InputChar('\t')
			}
		case KeyA:
			if ctrl && canSelect {
				st.SelectAll()
			}
		case KeyEscape:
			st.ClearSelection()
			escape = true
		case KeyInsert:
			if editable {
				st.Key(m, textedit.KeyInsertMode)
			}
		case KeyC:
			if ctrl && canSelect {
				st.Copy(c.Clipboard)
			}
		case KeyX:
			if ctrl && canSelect {
				if editable {
					st.Cut(c.Clipboard)
				} else {
					st.Copy(c.Clipboard)
				}
			}
		case KeyV:
			if ctrl && editable {
				st.Paste(c.Clipboard)
			}
		case KeyZ:
			if ctrl {
				if shift {
					st.Key(m, textedit.KeyRedo)
				} else {
					st.Key(m, textedit.KeyUndo)
				}
			}
		case KeyY:
			if ctrl {
				st.Key(m, textedit.KeyRedo)
			}
		case KeyLeft:
			if ctrl {
				move(textedit.KeyWordLeft)
			} else {
				move(textedit.KeyLeft)
			}
		case KeyRight:
			if ctrl {
				move(textedit.KeyWordRight)
			} else {
				move(textedit.KeyRight)
			}
		case KeyUp:
			if multiline {
				move(textedit.KeyUp)
			}
		case KeyDown:
			if multiline {
				move(textedit.KeyDown)
			}
		case KeyBackspace:
			if editable {
				st.Key(m, textedit.KeyBackspace)
			}
		case KeyDelete:
			if editable {
				st.Key(m, textedit.KeyDelete)
			}
		case KeyHome:
			if ctrl {
				move(textedit.KeyTextStart)
			} else {
				move(textedit.KeyLineStart)
			}
		case KeyEnd:
			if ctrl {
				move(textedit.KeyTextEnd)
			} else {
				move(textedit.KeyLineEnd)
			}
		case KeyEnter, KeyKeypadEnter:
			if multiline && editable && flags&InputEnterReturnsTrue == 0 {
				st.InputChar('\n')
			}
		}
	}
	return escape
}

// fieldPointer places the cursor on click and extends the selection while
// the pointer is dragged from inside the field.
func (c *Context) fieldPointer(n *Node, st *textedit.State, m font.Sized, flags InputFlags) {
	in := &c.Input
	p := in.PointerPos.Sub(n.InnerRect.Min())
	p.X += st.ScrollX
	if flags&InputMultiline != 0 {
		p.Y += n.VScroll
	}
	canSelect := flags&InputNoSelection == 0

	switch {
	case in.IsPointerClick(MouseLeft) && c.IsHovering(n.Rect):
		if in.Shift() && canSelect {
			st.Drag(m, p.X, p.Y)
		} else {
			st.Click(m, p.X, p.Y)
		}
	case canSelect && in.IsPointerDown(MouseLeft) && in.IsPointerMoving() && c.ActiveID == n.ID:
		st.Drag(m, p.X, p.Y)
	}
}

// textOffsets converts buffer indices to pixel offsets from the text origin
// in one scan: the row is the number of newlines before the index and x is
// the width from the start of that row. y is the top of the row.
func textOffsets(m font.Sized, text []rune, idx ...int) []geom.Vec2 {
	rows := make([]int, len(idx))
	starts := make([]int, len(idx))
	for s, r := range text {
		if r != '\n' {
			continue
		}
		for k, i := range idx {
			if s < i {
				rows[k]++
				starts[k] = s + 1
			}
		}
	}
	out := make([]geom.Vec2, len(idx))
	for k, i := range idx {
		size, _, _ := m.InputTextCalcTextSize(text, starts[k], i, false)
		w := size.X
		if starts[k] >= i {
			w = 0
		}
		out[k] = geom.V(w, float32(rows[k])*m.Size)
	}
	return out
}

// drawField scrolls the view to the cursor when it moved, then draws the
// selection, the text and the caret.
func (c *Context) drawField(n *Node, st *textedit.State, m font.Sized, flags InputFlags) {
	multiline := flags&InputMultiline != 0
	inner := n.InnerRect
	lo, _ := st.Selection()
	offs := textOffsets(m, st.Text, st.Cursor, lo)
	cursor := offs[0]

	if st.CursorFollow {
		if flags&InputNoHorizontalScroll == 0 {
			step := inner.Width * 0.25
			if cursor.X < st.ScrollX {
				st.ScrollX = float32(int(max(0, cursor.X-step)))
			} else if cursor.X-inner.Width >= st.ScrollX {
				st.ScrollX = float32(int(cursor.X - inner.Width + step))
			}
		} else {
			st.ScrollX = 0
		}

		if multiline {
			scrollY := n.VScroll
			if cursor.Y < scrollY {
				scrollY = max(0, cursor.Y)
			} else if cursor.Y+m.Size-inner.Height >= scrollY {
				scrollY = cursor.Y + m.Size - inner.Height
			}
			scrollY = max(0, scrollY)
			n.VScroll = scrollY
			SetStorage(c, n.ID, vscrollKey, scrollY)
		}
	}
	st.CursorFollow = false

	scroll := geom.V(st.ScrollX, 0)
	if multiline {
		scroll.Y = n.VScroll
	}
	origin := inner.Min().Sub(scroll)

	if st.HasSelection() && flags&InputNoSelection == 0 {
		c.drawSelection(st, m, origin, offs[1])
	}

	c.DrawRunes(m.Font, m.Size, st.Text, origin, c.Style.Text)

	if flags&InputReadOnly == 0 && (st.CursorAnim <= 0 || st.CaretVisible(c.Style.CaretBlinkPeriod, c.Style.CaretBlinkOn)) {
		top := origin.Add(cursor)
		c.DrawLine(top, geom.V(top.X, top.Y+m.Size), c.Style.Caret, 1)
	}
}

// drawSelection fills one rectangle per selected line, starting at row0, the
// offset of the selection start. Lines above the clip
// rectangle are skipped and drawing stops below it. An empty line still
// shows half a space so the selected newline is visible.
func (c *Context) drawSelection(st *textedit.State, m font.Sized, origin, row0 geom.Vec2) {
	lo, hi := st.Selection()
	clip := c.ClipRect()
	minWidth := float32(int(m.CharAdvance(' ') * 0.5))

	y := origin.Y + row0.Y
	x := origin.X + row0.X
	p := lo
	for p < hi {
		if y > clip.Bottom()+m.Size {
			break
		}
		size, next, _ := m.InputTextCalcTextSize(st.Text, p, hi, true)
		w := size.X
		if w <= 0 {
			w = minWidth
		}
		if y+m.Size >= clip.Y {
			r := geom.R(x, y, w, m.Size).Intersect(clip)
			if !r.Empty() {
				c.DrawRectFilled(r, c.Style.Selection)
			}
		}
		if next <= p {
			break
		}
		p = next
		x = origin.X
		y += m.Size
	}
}
