package textedit

import (
	"math"

	"enginegui/internal/geom"
)

// rowBounds returns the start and end (exclusive of the newline) of the row
// holding index i.
func (s *State) rowBounds(i int) (start, end int) {
	if s.SingleLine {
		return 0, len(s.Text)
	}
	start = i
	for start > 0 && s.Text[start-1] != '\n' {
		start--
	}
	end = i
	for end < len(s.Text) && s.Text[end] != '\n' {
		end++
	}
	return start, end
}

// rowOf returns the zero-based row of index i.
func (s *State) rowOf(i int) int {
	if s.SingleLine {
		return 0
	}
	row := 0
	for _, r := range s.Text[:min(i, len(s.Text))] {
		if r == '\n' {
			row++
		}
	}
	return row
}

// rowStart returns the index where the given row begins, or -1 if the text
// has fewer rows.
func (s *State) rowStart(row int) int {
	if row == 0 {
		return 0
	}
	if s.SingleLine {
		return -1
	}
	for i, r := range s.Text {
		if r == '\n' {
			row--
			if row == 0 {
				return i + 1
			}
		}
	}
	return -1
}

func (s *State) widthBetween(m Metrics, from, to int) float32 {
	var w float32
	for _, r := range s.Text[from:to] {
		if r == '\r' {
			continue
		}
		w += m.CharAdvance(r)
	}
	return w
}

// columnAt finds the index in [start,end] closest to x within one row.
func (s *State) columnAt(m Metrics, start, end int, x float32) int {
	if x <= 0 {
		return start
	}
	var prev float32
	for i := start; i < end; i++ {
		w := m.CharAdvance(s.Text[i])
		if s.Text[i] == '\r' {
			w = 0
		}
		if x < prev+w/2 {
			return i
		}
		prev += w
	}
	return end
}

// IndexAt converts a pixel position to a buffer index by finding the row
// from y and then the nearest glyph edge from x.
func (s *State) IndexAt(m Metrics, x, y float32) int {
	row := 0
	if !s.SingleLine && y > 0 {
		if lh := m.LineHeight(); lh > 0 {
			row = int(math.Floor(float64(y / lh)))
		}
	}
	start := s.rowStart(row)
	if start < 0 {
		return len(s.Text)
	}
	_, end := s.rowBounds(start)
	return s.columnAt(m, start, end, x)
}

// PositionOf converts a buffer index to the pixel position of its left edge
// on the row's top line.
func (s *State) PositionOf(m Metrics, i int) geom.Vec2 {
	i = max(0, min(i, len(s.Text)))
	start, _ := s.rowBounds(i)
	return geom.V(s.widthBetween(m, start, i), float32(s.rowOf(i))*m.LineHeight())
}

// Click moves the cursor to the index under (x,y) and clears the selection.
func (s *State) Click(m Metrics, x, y float32) {
	s.Cursor = s.IndexAt(m, x, y)
	s.ClearSelection()
	s.hasPreferredX = false
	s.touch()
}

// Drag extends the selection to the index under (x,y). The anchor stays where
// the selection started, or at the cursor if there was none.
func (s *State) Drag(m Metrics, x, y float32) {
	i := s.IndexAt(m, x, y)
	if !s.HasSelection() {
		s.SelectStart = s.Cursor
	}
	s.SelectEnd = i
	s.Cursor = i
	s.hasPreferredX = false
	s.touch()
}
