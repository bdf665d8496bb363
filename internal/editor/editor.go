package editor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"enginegui/internal/config"
	"enginegui/internal/draw"
	"enginegui/internal/geom"
	"enginegui/internal/gui"
	"enginegui/internal/inspector"
	"enginegui/internal/theme"
)

const (
	TopBarHeight    = 36
	StatusBarHeight = 24

	minHierarchyWidth = 150
	maxHierarchyWidth = 400
	minInspectorWidth = 250
	maxInspectorWidth = 500

	panelPadding = 8
	panelSpacing = 6
	itemHeight   = 22

	msgDuration = 2.0
)

// Editor is the editor UI state. Build declares one frame of it and is meant
// to be passed to gui.Context.Frame.
type Editor struct {
	Ctx      *gui.Context
	Scene    *Scene
	Selected *Entity
	Notes    string

	cfg       config.EditorConfig
	registry  *inspector.Registry
	undoStack []UndoState

	search         string
	hierarchyWidth int
	inspectorWidth int

	// Panel resize state: 0 = none, 1 = hierarchy, 2 = inspector
	resizingPanel int
	resizeStartX  float32
	resizeStartW  int

	msg     string
	msgTime float64
}

func New(cfg config.EditorConfig, ctx *gui.Context) *Editor {
	e := &Editor{
		Ctx:      ctx,
		Scene:    NewScene(),
		cfg:      cfg,
		registry: inspector.NewRegistry(),
	}
	e.ResetLayout()
	return e
}

// Registry is the inspector registry; register drawers on it to customize
// how field kinds are edited.
func (e *Editor) Registry() *inspector.Registry { return e.registry }

// ResetLayout restores the configured panel widths.
func (e *Editor) ResetLayout() {
	e.hierarchyWidth = clampWidth(e.cfg.HierarchyWidth, minHierarchyWidth, maxHierarchyWidth)
	e.inspectorWidth = clampWidth(e.cfg.InspectorWidth, minInspectorWidth, maxInspectorWidth)
}

// PanelWidths returns the hierarchy and inspector widths.
func (e *Editor) PanelWidths() (hierarchy, inspector int) {
	return e.hierarchyWidth, e.inspectorWidth
}

func clampWidth(w, lo, hi int) int {
	return max(lo, min(w, hi))
}

// Search is the hierarchy filter pattern.
func (e *Editor) Search() string { return e.search }

func (e *Editor) SetSearch(pattern string) { e.search = pattern }

func (e *Editor) setMsg(format string, args ...any) {
	e.msg = fmt.Sprintf(format, args...)
	e.msgTime = e.Ctx.Time
}

// SetMessage shows msg in the status bar for a short while.
func (e *Editor) SetMessage(msg string) { e.setMsg("%s", msg) }

// Status is the status bar text: the latest message while it is fresh,
// otherwise a scene summary.
func (e *Editor) Status() string {
	if e.msg != "" && e.Ctx.Time-e.msgTime < msgDuration {
		return e.msg
	}
	sel := "none"
	if e.Selected != nil {
		sel = e.Selected.Name
	}
	return fmt.Sprintf("%d entities  |  Selected: %s", len(e.Scene.Entities), sel)
}

// selectEntity changes the selection. Focus is released so the inspector's
// edit state never carries over to another entity.
func (e *Editor) selectEntity(ent *Entity) {
	if e.Selected == ent {
		return
	}
	e.Selected = ent
	e.Ctx.ReleaseFocus()
}

// Select selects the entity with uid, or clears the selection.
func (e *Editor) Select(uid uint64) {
	e.selectEntity(e.Scene.Find(uid))
}

// NewEntity adds an entity and selects it.
func (e *Editor) NewEntity() *Entity {
	ent := e.Scene.Add("")
	e.addUndoState(UndoState{Type: UndoCreate, Entity: ent})
	e.selectEntity(ent)
	e.setMsg("Created %s", ent.Name)
	return ent
}

// DeleteSelected removes the selected entity.
func (e *Editor) DeleteSelected() {
	ent := e.Selected
	if ent == nil {
		return
	}
	idx := e.Scene.Remove(ent.UID)
	if idx < 0 {
		return
	}
	e.addUndoState(UndoState{Type: UndoDelete, Entity: ent, Index: idx})
	e.selectEntity(nil)
	e.setMsg("Deleted %s", ent.Name)
}

// Build declares the editor UI. It runs once per pass.
func (e *Editor) Build() {
	if e.Ctx.Pass() == gui.PassLayout {
		e.handleShortcuts()
		e.handlePanelResize()
	}
	e.drawTopBar()
	e.drawHierarchy()
	e.drawNotes()
	e.drawInspector()
}

// handleShortcuts runs the editor key bindings. They are ignored while a
// text field is being edited.
func (e *Editor) handleShortcuts() {
	c := e.Ctx
	if c.FocusedFieldID() != 0 {
		return
	}
	in := &c.Input
	if in.Ctrl() && in.IsKeyPressed(gui.KeyZ) {
		e.Undo()
	}
	if in.IsKeyPressed(gui.KeyDelete) {
		e.DeleteSelected()
	}
}

// panelEdgeAt reports which panel edge is under p: 1 for the hierarchy, 2
// for the inspector, 0 for none.
func (e *Editor) panelEdgeAt(p geom.Vec2) int {
	screen := e.Ctx.Screen()
	if p.Y <= TopBarHeight || p.Y >= screen.Height-StatusBarHeight {
		return 0
	}
	hierEdge := float32(e.hierarchyWidth)
	if p.X >= hierEdge-2 && p.X <= hierEdge+2 {
		return 1
	}
	inspEdge := screen.Width - float32(e.inspectorWidth)
	if p.X >= inspEdge-2 && p.X <= inspEdge+2 {
		return 2
	}
	return 0
}

// IsOverPanelEdge reports whether the pointer can start a panel resize or
// one is in progress.
func (e *Editor) IsOverPanelEdge() bool {
	return e.resizingPanel > 0 || e.panelEdgeAt(e.Ctx.Input.PointerPos) > 0
}

// handlePanelResize drags the inner panel edges.
func (e *Editor) handlePanelResize() {
	in := &e.Ctx.Input
	p := in.PointerPos

	if in.IsPointerClick(gui.MouseLeft) && e.resizingPanel == 0 {
		switch e.panelEdgeAt(p) {
		case 1:
			e.resizingPanel = 1
			e.resizeStartW = e.hierarchyWidth
		case 2:
			e.resizingPanel = 2
			e.resizeStartW = e.inspectorWidth
		}
		e.resizeStartX = p.X
	}

	if e.resizingPanel > 0 && in.IsPointerDown(gui.MouseLeft) {
		delta := int(p.X - e.resizeStartX)
		switch e.resizingPanel {
		case 1:
			e.hierarchyWidth = clampWidth(e.resizeStartW+delta, minHierarchyWidth, maxHierarchyWidth)
		case 2:
			// Inspector edge is on its left
			e.inspectorWidth = clampWidth(e.resizeStartW-delta, minInspectorWidth, maxInspectorWidth)
		}
	}

	if !in.IsPointerDown(gui.MouseLeft) {
		e.resizingPanel = 0
	}
}

// rowHeight is the height of a single-line input field.
func (e *Editor) rowHeight() float32 {
	return e.Ctx.FontSize + 2.5 + 2*e.Ctx.Style.FieldPadding
}

func panelHeight() gui.Unit {
	return gui.PctPlus(1, -(TopBarHeight + StatusBarHeight))
}

func (e *Editor) drawTopBar() {
	c := e.Ctx
	bar := c.Panel("topbar", gui.Px(0), gui.Px(0), gui.Pct(1), gui.Px(TopBarHeight), theme.BgDark)
	defer bar.Exit()
	if c.Pass() == gui.PassRender && bar.HasLayout {
		r := bar.Rect
		c.DrawRectFilled(geom.R(r.X, r.Bottom()-1, r.Width, 1), theme.Border)
	}
	top := gui.Px(float32(int((TopBarHeight - c.FontSize) / 2)))
	c.Label("mode", "EDITOR", gui.Px(12), top, theme.Accent)
	c.Label("help", "Ctrl+Z: Undo  |  Del: Delete", gui.Px(100), top, theme.TextMuted)
}

func (e *Editor) drawHierarchy() {
	c := e.Ctx
	rowH := e.rowHeight()
	panel := c.Panel("hierarchy", gui.Px(0), gui.Px(TopBarHeight), gui.Px(float32(e.hierarchyWidth)), panelHeight(), theme.BgPanel).
		Layout(gui.LayoutColumn).
		Padding(panelPadding).
		Spacing(panelSpacing)
	defer panel.Exit()
	e.drawPanelEdge(panel, true)

	c.Node("header").Size(gui.Pct(1), gui.Px(rowH)).Do(func() {
		c.Label("title", "Hierarchy", gui.Px(4), gui.Px(float32(int((rowH-c.FontSize)/2))), theme.TextSecondary)
		if c.Button("new", "+ New", gui.PctPlus(1, -64), gui.Px(0), gui.Px(64), gui.Px(rowH)) {
			e.NewEntity()
		}
	})

	c.InputField("search", &e.search, 64, 0, gui.Px(0), gui.Px(0), gui.Pct(1))

	list := c.Node("list").
		Width(gui.Pct(1)).
		Height(gui.PctPlus(1, -2*(rowH+panelSpacing))).
		Layout(gui.LayoutColumn).
		Spacing(2).
		Clip().
		Enter()
	for _, ent := range e.Scene.Filter(e.search) {
		e.drawItem(ent)
	}
	c.ScrollV()
	list.Exit()
}

// drawItem is one selectable hierarchy row. Rows are keyed by UID so their
// IDs survive filtering.
func (e *Editor) drawItem(ent *Entity) {
	c := e.Ctx
	gutter := c.Style.ScrollbarWidth + 2*c.Style.ScrollbarPadding
	n := c.Node(strconv.FormatUint(ent.UID, 10)).
		Width(gui.PctPlus(1, -gutter)).
		Height(gui.Px(itemHeight)).
		Enter()
	defer n.Exit()
	if c.Pass() != gui.PassRender || !n.HasLayout {
		return
	}

	it := c.Interact(false)
	r := n.Rect
	var bg draw.Color
	textCol := theme.TextSecondary
	switch {
	case ent == e.Selected:
		bg = theme.Accent.WithAlpha(90)
		textCol = theme.TextPrimary
	case it.IsHovered():
		bg = theme.BgHover
	}
	if bg != 0 {
		c.DrawRectFilled(r, bg)
	}
	c.DrawRectFilled(geom.R(r.X, r.Y+4, 3, r.Height-8), theme.TypeColor(entityType(ent)))

	y := float32(int(r.Y + (r.Height-c.FontSize)/2))
	c.DrawText(nil, c.FontSize, ent.Name, geom.V(r.X+10, y), textCol)

	if it.IsClicked() {
		e.selectEntity(ent)
	}
}

// entityType is the key of the entity's accent color: its first tag, or
// "Entity".
func entityType(ent *Entity) string {
	tags := strings.FieldsFunc(ent.Tags, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(tags) == 0 {
		return "Entity"
	}
	return tags[0]
}

func (e *Editor) drawNotes() {
	c := e.Ctx
	left := float32(e.hierarchyWidth)
	width := gui.PctPlus(1, -float32(e.hierarchyWidth+e.inspectorWidth))
	panel := c.Panel("notes", gui.Px(left), gui.Px(TopBarHeight), width, panelHeight(), theme.BgDark).
		Layout(gui.LayoutColumn).
		Padding(panelPadding).
		Spacing(panelSpacing)
	defer panel.Exit()

	c.Label("title", "Notes", gui.Px(4), gui.Px(0), theme.TextSecondary)
	c.InputField("text", &e.Notes, e.cfg.NotesMaxLength, gui.InputMultiline|gui.InputAllowTab, gui.Px(0), gui.Px(0), gui.Pct(1))
}

func (e *Editor) drawInspector() {
	c := e.Ctx
	iw := float32(e.inspectorWidth)
	panel := c.Panel("inspector", gui.PctPlus(1, -iw), gui.Px(TopBarHeight), gui.Px(iw), panelHeight(), theme.BgPanel).
		Layout(gui.LayoutColumn).
		Padding(panelPadding).
		Spacing(panelSpacing)
	defer panel.Exit()
	e.drawPanelEdge(panel, false)

	c.Label("title", "Inspector", gui.Px(4), gui.Px(0), theme.TextSecondary)

	ent := e.Selected
	if ent == nil {
		c.Label("empty", "Nothing selected", gui.Px(4), gui.Px(0), theme.TextMuted)
		return
	}

	body := c.Node("body").
		Width(gui.Pct(1)).
		Height(gui.PctPlus(1, -(c.FontSize + panelSpacing))).
		Layout(gui.LayoutColumn).
		Spacing(panelSpacing).
		Clip().
		Enter()
	defer body.Exit()

	gutter := c.Style.ScrollbarWidth + 2*c.Style.ScrollbarPadding
	c.Node("content").Width(gui.PctPlus(1, -gutter)).Layout(gui.LayoutColumn).Spacing(panelSpacing).Do(func() {
		e.textRow(ent, "Name", &ent.Name)
		e.textRow(ent, "Tags", &ent.Tags)

		var snapshot []inspector.Field
		if c.Pass() == gui.PassRender {
			snapshot = append([]inspector.Field(nil), ent.Fields...)
		}
		if changed := e.registry.DrawFields(c, ent.Fields); len(changed) > 0 {
			e.addUndoState(UndoState{
				Type:   UndoEdit,
				Entity: ent,
				Name:   ent.Name,
				Tags:   ent.Tags,
				Fields: snapshot,
			})
			e.setMsg("Edited %s.%s", ent.Name, ent.Fields[changed[0]].Name)
		}

		if c.Button("delete", "Delete", gui.Px(0), gui.Px(0), gui.Auto, gui.Auto) {
			e.DeleteSelected()
		}
	})
	c.ScrollV()
}

// textRow edits one of ent's text properties. The change is committed on
// Enter so the undo history gets one entry per edit.
func (e *Editor) textRow(ent *Entity, name string, value *string) {
	c := e.Ctx
	const nameW = 50
	rowH := e.rowHeight()
	c.Node(name).Width(gui.Pct(1)).Layout(gui.LayoutRow).Spacing(panelSpacing).Do(func() {
		c.Label("name", name, gui.Px(0), gui.Px(float32(int((rowH-c.FontSize)/2))), c.Style.Text)
		buf := *value
		flags := gui.InputEnterReturnsTrue | gui.InputAutoSelectAll
		w := c.TextSize(nil, c.FontSize, name).X
		if c.InputField("edit", &buf, 64, flags, gui.Px(max(0, nameW-w)), gui.Px(0), gui.PctPlus(1, -(nameW+panelSpacing))) && buf != *value {
			e.pushEdit(ent)
			*value = buf
		}
	})
}

// drawPanelEdge draws the resize handle on the inner edge of a side panel.
func (e *Editor) drawPanelEdge(panel *gui.Node, right bool) {
	c := e.Ctx
	if c.Pass() != gui.PassRender || !panel.HasLayout {
		return
	}
	r := panel.Rect
	x := r.X
	if right {
		x = r.Right() - 2
	}
	col := theme.Border
	if e.resizingPanel > 0 {
		col = theme.Accent
	}
	c.DrawRectFilled(geom.R(x, r.Y, 2, r.Height), col)
}
