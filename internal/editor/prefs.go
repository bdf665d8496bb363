package editor

import (
	"encoding/json"
	"log"
	"os"
)

// Prefs holds editor preferences saved between sessions.
type Prefs struct {
	WindowWidth    int    `json:"windowWidth"`
	WindowHeight   int    `json:"windowHeight"`
	WindowX        int    `json:"windowX"`
	WindowY        int    `json:"windowY"`
	HierarchyWidth int    `json:"hierarchyWidth"`
	InspectorWidth int    `json:"inspectorWidth"`
	SelectedUID    uint64 `json:"selectedUID,omitempty"`
	Search         string `json:"search,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// Geometry is the window rectangle stored in the prefs.
type Geometry struct {
	X, Y, Width, Height int
}

// LoadPrefs reads the prefs at path. It returns nil when the file is missing
// or unreadable.
func LoadPrefs(path string) *Prefs {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	var prefs Prefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		log.Printf("Editor: failed to parse prefs %s: %v", path, err)
		return nil
	}
	return &prefs
}

// Prefs captures the current editor state with the window geometry win.
func (e *Editor) Prefs(win Geometry) Prefs {
	p := Prefs{
		WindowWidth:    win.Width,
		WindowHeight:   win.Height,
		WindowX:        win.X,
		WindowY:        win.Y,
		HierarchyWidth: e.hierarchyWidth,
		InspectorWidth: e.inspectorWidth,
		Search:         e.search,
		Notes:          e.Notes,
	}
	if e.Selected != nil {
		p.SelectedUID = e.Selected.UID
	}
	return p
}

// SavePrefs writes the current editor state to path.
func (e *Editor) SavePrefs(path string, win Geometry) error {
	data, err := json.MarshalIndent(e.Prefs(win), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyPrefs applies loaded preferences. The window geometry is left to the
// caller.
func (e *Editor) ApplyPrefs(prefs *Prefs) {
	if prefs == nil {
		return
	}
	if prefs.HierarchyWidth > 0 {
		e.hierarchyWidth = clampWidth(prefs.HierarchyWidth, minHierarchyWidth, maxHierarchyWidth)
	}
	if prefs.InspectorWidth > 0 {
		e.inspectorWidth = clampWidth(prefs.InspectorWidth, minInspectorWidth, maxInspectorWidth)
	}
	e.search = prefs.Search
	e.Notes = prefs.Notes
	if prefs.SelectedUID > 0 {
		e.selectEntity(e.Scene.Find(prefs.SelectedUID))
	}
}
