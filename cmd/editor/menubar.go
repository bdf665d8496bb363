package main

import (
	"log"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"enginegui/internal/config"
	"enginegui/internal/editor"
	"enginegui/internal/platform"
	"enginegui/internal/theme"
)

// menuBar is the raygui overlay: menu buttons in the top bar and the status
// bar. It is drawn after the GUI so it sits on top.
type menuBar struct {
	cfg  config.EditorConfig
	quit bool
}

func newMenuBar(cfg config.EditorConfig, textSize float32) *menuBar {
	initRayguiStyle(textSize)
	return &menuBar{cfg: cfg}
}

// initRayguiStyle matches raygui to the editor palette.
func initRayguiStyle(textSize float32) {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(platform.Color(theme.BgDark)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(platform.Color(theme.BgElement)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(platform.Color(theme.BgHover)))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(platform.Color(theme.Accent)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(platform.Color(theme.TextSecondary)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(platform.Color(theme.TextPrimary)))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(platform.Color(theme.TextPrimary)))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(platform.Color(theme.Border)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(platform.Color(theme.Accent)))
	gui.SetStyle(gui.DEFAULT, gui.LINE_COLOR, gui.NewColorPropertyValue(platform.Color(theme.Separator)))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, int64(textSize))
}

var menuItems = [...]string{"New", "Undo", "Save", "Reset Layout", "Quit"}

func (m *menuBar) draw(ed *editor.Editor, win *platform.Window) {
	screen := win.Screen()

	const btnW, btnH, gap = 96, 24, 6
	x := screen.Width - float32(len(menuItems))*(btnW+gap)
	y := float32(editor.TopBarHeight-btnH) / 2
	for _, item := range menuItems {
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: btnW, Height: btnH}, item) {
			m.run(item, ed, win)
		}
		x += btnW + gap
	}

	gui.StatusBar(rl.Rectangle{
		X:      0,
		Y:      screen.Height - editor.StatusBarHeight,
		Width:  screen.Width,
		Height: editor.StatusBarHeight,
	}, ed.Status())

	if ed.IsOverPanelEdge() {
		rl.SetMouseCursor(rl.MouseCursorResizeEW)
	} else {
		rl.SetMouseCursor(rl.MouseCursorDefault)
	}
}

func (m *menuBar) run(item string, ed *editor.Editor, win *platform.Window) {
	switch item {
	case "New":
		ed.NewEntity()
	case "Undo":
		ed.Undo()
	case "Save":
		err := ed.Scene.SaveScene(m.cfg.ScenePath)
		if err == nil {
			err = ed.SavePrefs(m.cfg.PrefsPath, geometry(win))
		}
		if err != nil {
			log.Printf("Editor: save failed: %v", err)
			ed.SetMessage("Save failed!")
		} else {
			ed.SetMessage("Scene saved!")
		}
	case "Reset Layout":
		ed.ResetLayout()
		ed.SetMessage("Layout reset")
	case "Quit":
		m.quit = true
	}
}
