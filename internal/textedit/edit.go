package textedit

import (
	"slices"
	"unicode"
)

const maxUndoStack = 100

// snapshot is a restorable copy of the buffer and cursor.
type snapshot struct {
	text        []rune
	cursor      int
	selectStart int
	selectEnd   int
}

func (s *State) snapshot() snapshot {
	return snapshot{
		text:        slices.Clone(s.Text),
		cursor:      s.Cursor,
		selectStart: s.SelectStart,
		selectEnd:   s.SelectEnd,
	}
}

func (s *State) restore(snap snapshot) {
	s.Text = snap.text
	s.Cursor = snap.cursor
	s.SelectStart = snap.selectStart
	s.SelectEnd = snap.selectEnd
	s.clamp()
	s.hasPreferredX = false
	s.touch()
}

// pushUndo records the current state before an edit. Any redo history is
// discarded because it no longer follows from the buffer.
func (s *State) pushUndo() {
	if len(s.undo) >= maxUndoStack {
		s.undo = s.undo[1:]
	}
	s.undo = append(s.undo, s.snapshot())
	s.redo = s.redo[:0]
}

func (s *State) CanUndo() bool { return len(s.undo) > 0 && !s.ReadOnly }
func (s *State) CanRedo() bool { return len(s.redo) > 0 && !s.ReadOnly }

// Undo restores the state before the last edit.
func (s *State) Undo() bool {
	if !s.CanUndo() {
		return false
	}
	snap := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, s.snapshot())
	s.restore(snap)
	return true
}

// Redo reapplies the last undone edit.
func (s *State) Redo() bool {
	if !s.CanRedo() {
		return false
	}
	snap := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, s.snapshot())
	s.restore(snap)
	return true
}

// deleteRange removes [lo,hi) and leaves the cursor at lo. Callers record
// history first.
func (s *State) deleteRange(lo, hi int) {
	s.Text = slices.Delete(s.Text, lo, hi)
	s.Cursor = lo
	s.SelectStart, s.SelectEnd = lo, lo
	s.hasPreferredX = false
	s.touch()
}

func (s *State) insert(at int, runes []rune) {
	s.Text = slices.Insert(s.Text, at, runes...)
	s.Cursor = at + len(runes)
	s.SelectStart, s.SelectEnd = s.Cursor, s.Cursor
	s.hasPreferredX = false
	s.touch()
}

// DeleteSelection removes the selected text. It is a no-op without a
// selection.
func (s *State) DeleteSelection() bool {
	if !s.HasSelection() || s.ReadOnly {
		return false
	}
	s.pushUndo()
	lo, hi := s.Selection()
	s.deleteRange(lo, hi)
	return true
}

func (s *State) backspace() bool {
	if s.ReadOnly {
		return false
	}
	if s.HasSelection() {
		return s.DeleteSelection()
	}
	if s.Cursor <= 0 {
		return false
	}
	s.pushUndo()
	s.deleteRange(s.Cursor-1, s.Cursor)
	return true
}

func (s *State) deleteForward() bool {
	if s.ReadOnly {
		return false
	}
	if s.HasSelection() {
		return s.DeleteSelection()
	}
	if s.Cursor >= len(s.Text) {
		return false
	}
	s.pushUndo()
	s.deleteRange(s.Cursor, s.Cursor+1)
	return true
}

// accepts reports whether r passes the input policy.
func (s *State) accepts(r rune) bool {
	switch {
	case r == '\r':
		return false
	case r == '\n':
		return !s.SingleLine && !s.NumbersOnly
	case r == '\t':
		return s.AllowTab && !s.SingleLine && !s.NumbersOnly
	case s.NumbersOnly:
		return unicode.IsDigit(r)
	}
	return unicode.IsPrint(r)
}

// InputChar types r at the cursor. An active selection is deleted first,
// even when r itself is then rejected by the input policy or the capacity.
// It reports whether the text changed.
func (s *State) InputChar(r rune) bool {
	if s.ReadOnly {
		return false
	}
	deleted := s.DeleteSelection()
	if !s.accepts(r) {
		return deleted
	}

	lo, hi := s.Cursor, s.Cursor
	if !deleted && s.ReplaceMode && s.Cursor < len(s.Text) && s.Text[s.Cursor] != '\n' {
		hi = s.Cursor + 1
	}
	if s.room(hi-lo) <= 0 {
		return deleted
	}

	s.pushUndo()
	if hi > lo {
		s.Text = slices.Delete(s.Text, lo, hi)
	}
	s.insert(lo, []rune{r})
	return true
}

// InputText inserts str at the cursor as one edit, as for a paste. Runes the
// policy rejects are dropped and the rest is cut to the remaining capacity.
func (s *State) InputText(str string) bool {
	if s.ReadOnly {
		return false
	}
	runes := make([]rune, 0, len(str))
	for _, r := range str {
		if s.accepts(r) {
			runes = append(runes, r)
		}
	}

	lo, hi := s.Cursor, s.Cursor
	if s.HasSelection() {
		lo, hi = s.Selection()
	}
	if room := s.room(hi - lo); len(runes) > room {
		runes = runes[:room]
	}
	if len(runes) == 0 && hi == lo {
		return false
	}

	s.pushUndo()
	if hi > lo {
		s.Text = slices.Delete(s.Text, lo, hi)
	}
	s.insert(lo, runes)
	return true
}

// Copy puts the selection on the clipboard.
func (s *State) Copy(cb Clipboard) bool {
	if !s.HasSelection() || cb == nil {
		return false
	}
	cb.SetText(s.SelectedText())
	return true
}

// Cut copies the selection and then deletes it.
func (s *State) Cut(cb Clipboard) bool {
	if s.ReadOnly || !s.Copy(cb) {
		return false
	}
	return s.DeleteSelection()
}

// Paste inserts the clipboard text at the cursor.
func (s *State) Paste(cb Clipboard) bool {
	if cb == nil {
		return false
	}
	text := cb.Text()
	if text == "" {
		return false
	}
	return s.InputText(text)
}
