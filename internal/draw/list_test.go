package draw

import (
	"testing"

	"enginegui/internal/geom"
)

func TestAddRectFilled(t *testing.T) {
	l := NewList(geom.R(0, 0, 800, 600))
	l.AddRectFilled(geom.R(10, 10, 20, 20), White)

	if len(l.Vertices) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(l.Vertices))
	}
	if len(l.Indices) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(l.Indices))
	}
	if len(l.Cmds) != 1 || l.Cmds[0].ElemCount != 6 {
		t.Fatalf("Expected one command with 6 elements, got %+v", l.Cmds)
	}
	if l.Vertices[2].Pos != geom.V(30, 30) {
		t.Errorf("Expected third vertex at (30,30), got %v", l.Vertices[2].Pos)
	}
}

func TestEmptyAndTransparentShapesAreSkipped(t *testing.T) {
	l := NewList(geom.R(0, 0, 800, 600))
	l.AddRectFilled(geom.R(10, 10, 0, 20), White)
	l.AddRectFilled(geom.R(10, 10, 20, 20), Transparent)
	l.AddLine(geom.V(5, 5), geom.V(5, 5), White, 1)

	if len(l.Vertices) != 0 {
		t.Errorf("Expected no vertices, got %d", len(l.Vertices))
	}
}

func TestClipRectSplitsCommands(t *testing.T) {
	l := NewList(geom.R(0, 0, 800, 600))
	l.AddRectFilled(geom.R(0, 0, 10, 10), White)

	l.PushClipRect(geom.R(100, 100, 50, 50), true)
	l.AddRectFilled(geom.R(0, 0, 10, 10), White)
	l.AddRect(geom.R(0, 0, 10, 10), White, 1)
	l.PopClipRect()

	l.AddRectFilled(geom.R(0, 0, 10, 10), White)

	if len(l.Cmds) != 3 {
		t.Fatalf("Expected 3 commands, got %d", len(l.Cmds))
	}
	if l.Cmds[1].ClipRect != geom.R(100, 100, 50, 50) {
		t.Errorf("Expected pushed clip rect on second command, got %v", l.Cmds[1].ClipRect)
	}
	if l.Cmds[1].ElemCount != 6+4*6 {
		t.Errorf("Expected 30 elements in clipped command, got %d", l.Cmds[1].ElemCount)
	}
	if l.Cmds[2].IdxOffset != 36 {
		t.Errorf("Expected third command to start at index 36, got %d", l.Cmds[2].IdxOffset)
	}
}

func TestPushClipRectIntersects(t *testing.T) {
	l := NewList(geom.R(0, 0, 100, 100))
	l.PushClipRect(geom.R(50, 50, 100, 100), true)
	if got := l.ClipRect(); got != geom.R(50, 50, 50, 50) {
		t.Errorf("Expected {50 50 50 50}, got %v", got)
	}
	l.PopClipRect()
	l.PopClipRect()
	if got := l.ClipRect(); got != geom.R(0, 0, 100, 100) {
		t.Errorf("Expected screen rect after pops, got %v", got)
	}
}

func TestColorPacking(t *testing.T) {
	c := RGBA(1, 2, 3, 4)
	if c.R() != 1 || c.G() != 2 || c.B() != 3 || c.A() != 4 {
		t.Errorf("Expected 1,2,3,4, got %d,%d,%d,%d", c.R(), c.G(), c.B(), c.A())
	}
	if got := c.WithAlpha(200).A(); got != 200 {
		t.Errorf("Expected alpha 200, got %d", got)
	}
}
