package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"enginegui/internal/clipboard"
	"enginegui/internal/config"
	"enginegui/internal/editor"
	"enginegui/internal/font"
	"enginegui/internal/gui"
	"enginegui/internal/platform"
	"enginegui/internal/textedit"
	"enginegui/internal/theme"
)

func main() {
	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	configPath := flag.String("config", config.DefaultPath, "editor configuration file")
	writeConfig := flag.Bool("write-config", false, "write the configuration back to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("Config: %v, using defaults", err)
	}
	if *writeConfig {
		if err := config.Save(*configPath, cfg); err != nil {
			log.Fatalf("Config: %v", err)
		}
		log.Printf("Config: wrote %s", *configPath)
		return
	}

	run(cfg)
}

func run(cfg config.Config) {
	win := platform.Open(cfg.Window)
	defer win.Close()

	prefs := editor.LoadPrefs(cfg.Editor.PrefsPath)
	if prefs != nil {
		win.Place(prefs.WindowX, prefs.WindowY, prefs.WindowWidth, prefs.WindowHeight)
	}

	f, err := loadFont(cfg.Font)
	if err != nil {
		log.Fatalf("Font: %v", err)
	}

	renderer := platform.NewRenderer()
	defer renderer.Unload()
	texID, err := renderer.UploadFont(f)
	if err != nil {
		log.Fatalf("Font: %v", err)
	}

	ctx := gui.NewContext(f)
	ctx.SetFontTexture(f, texID)
	ctx.Style = theme.Style()
	cfg.ApplyStyle(&ctx.Style)
	ctx.FontSize = cfg.Font.TextSize()
	ctx.Clipboard = systemClipboard()

	ed := editor.New(cfg.Editor, ctx)
	if err := ed.Scene.LoadScene(cfg.Editor.ScenePath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Editor: %v", err)
		}
		seedScene(ed.Scene)
	}
	ed.ApplyPrefs(prefs)

	menu := newMenuBar(cfg.Editor, cfg.Font.TextSize())
	for !win.ShouldClose() && !menu.quit {
		ctx.Frame(platform.PollInput(), win.FrameTime(), win.Screen(), ed.Build)

		win.BeginFrame(theme.BgDark)
		renderer.Render(ctx.DrawList)
		menu.draw(ed, win)
		win.EndFrame()
	}

	if err := ed.SavePrefs(cfg.Editor.PrefsPath, geometry(win)); err != nil {
		log.Printf("Editor: failed to save prefs: %v", err)
	}
}

// loadFont builds the UI font from the configured TTF, or Go Regular.
func loadFont(cfg config.FontConfig) (*font.Font, error) {
	ttf := goregular.TTF
	if cfg.Path != "" {
		data, err := os.ReadFile(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", cfg.Path, err)
		}
		ttf = data
	}
	ranges, err := cfg.CharacterRanges()
	if err != nil {
		return nil, err
	}

	b := font.NewBuilder(cfg.AtlasWidth, cfg.AtlasHeight)
	if err := b.Add(ttf, cfg.Size, ranges...); err != nil {
		return nil, err
	}
	return b.End(cfg.Size, cfg.TextSize())
}

// systemClipboard prefers the OS clipboard tools and falls back to the one
// raylib gets from the window system.
func systemClipboard() textedit.Clipboard {
	sys := &clipboard.System{}
	if sys.Available() {
		return sys
	}
	log.Printf("Clipboard: no system clipboard tool, using the window clipboard")
	return platform.Clipboard()
}

func geometry(win *platform.Window) editor.Geometry {
	x, y := win.Position()
	s := win.Screen()
	return editor.Geometry{X: x, Y: y, Width: int(s.Width), Height: int(s.Height)}
}

// seedScene fills an empty scene so a fresh editor has something to show.
func seedScene(s *editor.Scene) {
	for _, e := range []struct{ name, tags string }{
		{"Main Camera", "Camera"},
		{"Directional Light", "Light"},
		{"Player", "Character, player"},
		{"Ground", "Static"},
	} {
		ent := s.Add(e.name)
		ent.Tags = e.tags
	}
}
