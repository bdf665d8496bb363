// Package textedit is the editing engine behind GUI text fields: cursor and
// selection tracking, keyboard commands, undo and redo, and clipboard
// transfer over a rune buffer.
//
// Positions are rune indices in [0, len(Text)]. Pixel coordinates passed to
// Click and Drag are relative to the top-left of the text, with the view
// scroll already removed.
package textedit

import (
	"math"
	"unicode"
)

// Metrics measures runes for converting between pixels and indices.
type Metrics interface {
	CharAdvance(r rune) float32
	LineHeight() float32
}

// Clipboard is the system clipboard as seen by Cut, Copy and Paste.
type Clipboard interface {
	Text() string
	SetText(s string)
}

// Policy restricts what input is accepted.
type Policy struct {
	// MaxLength caps the buffer length in runes. Zero or less is unlimited.
	MaxLength   int
	NumbersOnly bool
	ReadOnly    bool
	AllowTab    bool
}

// State is the editing state of one text field.
type State struct {
	ID   uint64
	Text []rune

	Cursor      int
	SelectStart int
	SelectEnd   int

	SingleLine  bool
	ReplaceMode bool

	// ScrollX is the horizontal view offset in pixels, owned by the renderer.
	ScrollX float32
	// CursorAnim is the caret blink timer. It restarts whenever the cursor moves.
	CursorAnim float32
	// CursorFollow asks the renderer to scroll the cursor into view.
	CursorFollow bool

	Policy

	preferredX    float32
	hasPreferredX bool

	undo []snapshot
	redo []snapshot
}

// New returns a state for text with the cursor at the end.
func New(text string, singleLine bool) *State {
	s := &State{Text: []rune(text), SingleLine: singleLine}
	s.Cursor = len(s.Text)
	s.SelectStart, s.SelectEnd = s.Cursor, s.Cursor
	return s
}

func (s *State) String() string { return string(s.Text) }

// SetText replaces the buffer without recording history, as when the value
// is changed from outside the field.
func (s *State) SetText(text string) {
	s.Text = []rune(text)
	s.clamp()
}

func (s *State) Len() int { return len(s.Text) }

func (s *State) HasSelection() bool { return s.SelectStart != s.SelectEnd }

// Selection returns the selected range ordered low to high.
func (s *State) Selection() (lo, hi int) {
	return min(s.SelectStart, s.SelectEnd), max(s.SelectStart, s.SelectEnd)
}

func (s *State) SelectedText() string {
	lo, hi := s.Selection()
	return string(s.Text[lo:hi])
}

func (s *State) SelectAll() {
	s.SelectStart = 0
	s.SelectEnd = len(s.Text)
	s.Cursor = len(s.Text)
	s.touch()
}

// Select sets the selection to [start,end) and puts the cursor at end.
func (s *State) Select(start, end int) {
	s.SelectStart = start
	s.SelectEnd = end
	s.Cursor = end
	s.clamp()
	s.touch()
}

func (s *State) ClearSelection() {
	s.SelectStart = s.Cursor
	s.SelectEnd = s.Cursor
}

// Remaining is how many more runes the policy accepts.
func (s *State) Remaining() int {
	return s.room(0)
}

// room is the capacity left once freed runes have been removed.
func (s *State) room(freed int) int {
	if s.MaxLength <= 0 {
		return math.MaxInt
	}
	return max(0, s.MaxLength-len(s.Text)+freed)
}

// Tick advances the caret blink timer.
func (s *State) Tick(dt float32) {
	s.CursorAnim += dt
}

// CaretVisible reports whether the caret is in the visible part of a blink
// cycle of the given period.
func (s *State) CaretVisible(period, visible float32) bool {
	if period <= 0 {
		return true
	}
	return float32(math.Mod(float64(s.CursorAnim), float64(period))) <= visible
}

// touch marks a cursor movement: the caret restarts its blink and the view
// follows it.
func (s *State) touch() {
	s.CursorAnim = 0
	s.CursorFollow = true
}

func (s *State) clamp() {
	n := len(s.Text)
	s.Cursor = max(0, min(s.Cursor, n))
	s.SelectStart = max(0, min(s.SelectStart, n))
	s.SelectEnd = max(0, min(s.SelectEnd, n))
}

func isSeparator(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case ',', ';', '(', ')', '{', '}', '[', ']', '|', '.', '!', '?', ':', '"', '\'':
		return true
	}
	return false
}

// isWordBoundary reports whether a word starts at i.
func (s *State) isWordBoundary(i int) bool {
	if i <= 0 || i >= len(s.Text) {
		return true
	}
	return isSeparator(s.Text[i-1]) && !isSeparator(s.Text[i])
}

func (s *State) wordLeft(i int) int {
	i--
	for i > 0 && !s.isWordBoundary(i) {
		i--
	}
	return max(0, i)
}

func (s *State) wordRight(i int) int {
	i++
	for i < len(s.Text) && !s.isWordBoundary(i) {
		i++
	}
	return min(i, len(s.Text))
}
