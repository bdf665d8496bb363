package textedit

// Key is an editing command. KeyShift may be OR'ed into movement commands to
// extend the selection instead of collapsing it.
type Key int

const (
	KeyLeft Key = iota + 1
	KeyRight
	KeyUp
	KeyDown
	KeyWordLeft
	KeyWordRight
	KeyLineStart
	KeyLineEnd
	KeyTextStart
	KeyTextEnd
	KeyBackspace
	KeyDelete
	KeyUndo
	KeyRedo
	KeyInsertMode

	KeyShift Key = 1 << 16
)

func (k Key) base() Key { return k &^ KeyShift }

func (k Key) shifted() bool { return k&KeyShift != 0 }

// Key applies a command and reports whether the buffer changed.
func (s *State) Key(m Metrics, k Key) bool {
	shift := k.shifted()

	switch k.base() {
	case KeyLeft:
		if s.HasSelection() && !shift {
			lo, _ := s.Selection()
			s.moveTo(lo, false)
			return false
		}
		s.moveTo(s.Cursor-1, shift)
	case KeyRight:
		if s.HasSelection() && !shift {
			_, hi := s.Selection()
			s.moveTo(hi, false)
			return false
		}
		s.moveTo(s.Cursor+1, shift)
	case KeyWordLeft:
		s.moveTo(s.wordLeft(s.Cursor), shift)
	case KeyWordRight:
		s.moveTo(s.wordRight(s.Cursor), shift)
	case KeyLineStart:
		start, _ := s.rowBounds(s.Cursor)
		s.moveTo(start, shift)
	case KeyLineEnd:
		_, end := s.rowBounds(s.Cursor)
		s.moveTo(end, shift)
	case KeyTextStart:
		s.moveTo(0, shift)
	case KeyTextEnd:
		s.moveTo(len(s.Text), shift)
	case KeyUp:
		s.moveVertical(m, -1, shift)
	case KeyDown:
		s.moveVertical(m, 1, shift)
	case KeyBackspace:
		return s.backspace()
	case KeyDelete:
		return s.deleteForward()
	case KeyUndo:
		return s.Undo()
	case KeyRedo:
		return s.Redo()
	case KeyInsertMode:
		s.ReplaceMode = !s.ReplaceMode
	}
	return false
}

// moveTo places the cursor at i. With extend set the selection grows from its
// anchor, otherwise it collapses onto the cursor.
func (s *State) moveTo(i int, extend bool) {
	i = max(0, min(i, len(s.Text)))
	if extend {
		if !s.HasSelection() {
			s.SelectStart = s.Cursor
		}
		s.SelectEnd = i
	} else {
		s.SelectStart, s.SelectEnd = i, i
	}
	s.Cursor = i
	s.hasPreferredX = false
	s.touch()
}

func (s *State) moveVertical(m Metrics, dir int, extend bool) {
	if s.SingleLine {
		return
	}
	if s.HasSelection() && !extend {
		lo, hi := s.Selection()
		if dir < 0 {
			s.Cursor = lo
		} else {
			s.Cursor = hi
		}
	}

	x := s.preferredX
	if !s.hasPreferredX {
		x = s.PositionOf(m, s.Cursor).X
	}

	row := s.rowOf(s.Cursor) + dir
	target := s.Cursor
	if row >= 0 {
		if start := s.rowStart(row); start >= 0 {
			_, end := s.rowBounds(start)
			target = s.columnAt(m, start, end, x)
		}
	}

	s.moveTo(target, extend)
	s.preferredX = x
	s.hasPreferredX = true
}
