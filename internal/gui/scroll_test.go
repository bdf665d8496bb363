package gui

import (
	"testing"

	"enginegui/internal/geom"
)

func TestClampScroll(t *testing.T) {
	tests := []struct {
		offset, content, visible, want float32
	}{
		{500, 500, 100, 400},
		{450, 500, 100, 400},
		{-5, 500, 100, 0},
		{120, 500, 100, 120},
		{50, 80, 100, 0},
	}
	for _, tt := range tests {
		got := ClampScroll(tt.offset, tt.content, tt.visible)
		if got != tt.want {
			t.Errorf("ClampScroll(%v, %v, %v): expected %v, got %v", tt.offset, tt.content, tt.visible, tt.want, got)
		}
		if again := ClampScroll(got, tt.content, tt.visible); again != got {
			t.Errorf("Expected clamping to be idempotent, got %v then %v", got, again)
		}
	}
}

func TestScrollThumb(t *testing.T) {
	track := geom.R(0, 0, 6, 100)

	top := ScrollThumb(track, 0, 500, 100)
	if top.Y != 0 || top.Height != 20 {
		t.Errorf("Expected thumb at y 0 height 20, got %v", top)
	}
	bottom := ScrollThumb(track, 400, 500, 100)
	if bottom.Y != 80 {
		t.Errorf("Expected thumb at y 80 when fully scrolled, got %v", bottom.Y)
	}
	if full := ScrollThumb(track, 0, 50, 100); full != track {
		t.Errorf("Expected thumb to fill the track without overflow, got %v", full)
	}
}

func scrollList(c *Context, list **Node, first **Node) func() {
	return func() {
		*list = c.Node("list").Size(Px(100), Px(100)).Layout(LayoutColumn).Clip()
		(*list).Do(func() {
			for i := 0; i < 10; i++ {
				n := c.Node("").Size(Pct(1), Px(50))
				if i == 0 {
					*first = n
				}
			}
			c.ScrollV()
		})
	}
}

func TestScrollWheel(t *testing.T) {
	c := newTestContext()
	var list, first *Node
	build := scrollList(c, &list, &first)

	run(c, Input{PointerPos: geom.V(50, 50), Wheel: -3}, build)
	if got := GetStorage(c, list.ID, "VScroll", float32(0)); got != 30 {
		t.Fatalf("Expected offset 30 after wheel, got %v", got)
	}

	run(c, Input{PointerPos: geom.V(50, 50)}, build)
	if first.Rect.Y != -30 {
		t.Errorf("Expected first child shifted to -30 on the next frame, got %v", first.Rect.Y)
	}

	run(c, Input{PointerPos: geom.V(50, 50), Wheel: -100}, build)
	if got := list.VScroll; got != 400 {
		t.Errorf("Expected offset clamped to 400, got %v", got)
	}

	run(c, Input{PointerPos: geom.V(500, 500), Wheel: 5}, build)
	if got := list.VScroll; got != 400 {
		t.Errorf("Expected wheel outside the node to be ignored, got %v", got)
	}
}

func TestScrollThumbDrag(t *testing.T) {
	c := newTestContext()
	var list, first *Node
	build := scrollList(c, &list, &first)

	run(c, Input{}, build)
	run(c, clickAt(95, 10), build)
	if c.ActiveID == 0 {
		t.Fatal("Expected the thumb to become active on click")
	}

	var drag Input
	drag.Down[MouseLeft] = true
	drag.PointerPos = geom.V(95, 20)
	drag.PointerDelta = geom.V(0, 10)
	run(c, drag, build)
	if got := list.VScroll; got != 20 {
		t.Errorf("Expected drag of 10 to scroll 20, got %v", got)
	}

	run(c, Input{PointerPos: geom.V(95, 20)}, build)
	if c.ActiveID != 0 {
		t.Error("Expected active id to clear once the button is released")
	}
}

func TestScrollSnapsToZeroWithoutOverflow(t *testing.T) {
	c := newTestContext()
	var list *Node
	build := func() {
		list = c.Node("list").Size(Px(100), Px(100)).Layout(LayoutColumn)
		list.Do(func() {
			c.Node("").Size(Pct(1), Px(50))
			c.ScrollV()
		})
	}
	run(c, Input{}, build)
	SetStorage(c, list.ID, "VScroll", float32(70))
	run(c, Input{}, build)

	if list.VScroll != 0 {
		t.Errorf("Expected offset 0 without overflow, got %v", list.VScroll)
	}
}
