// Package config loads the editor configuration from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"

	"enginegui/internal/font"
	"enginegui/internal/gui"
)

// DefaultPath is where the editor looks for its configuration.
const DefaultPath = "editor.toml"

// Config is the editor.toml file.
type Config struct {
	Window WindowConfig `toml:"window"`
	Font   FontConfig   `toml:"font"`
	Scroll ScrollConfig `toml:"scroll"`
	Caret  CaretConfig  `toml:"caret"`
	Editor EditorConfig `toml:"editor"`
}

type WindowConfig struct {
	Width     int    `toml:"width"`
	Height    int    `toml:"height"`
	Title     string `toml:"title"`
	TargetFPS int    `toml:"target_fps"`
	HighDPI   bool   `toml:"high_dpi"`
}

type FontConfig struct {
	// Path to a TrueType file. Empty uses the built-in Go Regular face.
	Path string `toml:"path"`
	// Size is the rasterization size in pixels.
	Size float32 `toml:"size"`
	// DisplaySize is the default text size; zero means Size.
	DisplaySize float32  `toml:"display_size"`
	AtlasWidth  int      `toml:"atlas_width"`
	AtlasHeight int      `toml:"atlas_height"`
	Ranges      []string `toml:"ranges"`
}

type ScrollConfig struct {
	DragMultiplier float32 `toml:"drag_multiplier"`
	WheelStep      float32 `toml:"wheel_step"`
	BarWidth       float32 `toml:"bar_width"`
}

type CaretConfig struct {
	BlinkPeriod float32 `toml:"blink_period"`
	BlinkOn     float32 `toml:"blink_on"`
}

type EditorConfig struct {
	PrefsPath      string `toml:"prefs_path"`
	ScenePath      string `toml:"scene_path"`
	HierarchyWidth int    `toml:"hierarchy_width"`
	InspectorWidth int    `toml:"inspector_width"`
	NotesMaxLength int    `toml:"notes_max_length"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Editor",
			TargetFPS: 120,
			HighDPI:   true,
		},
		Font: FontConfig{
			Size:        32,
			DisplaySize: 16,
			AtlasWidth:  1024,
			AtlasHeight: 1024,
			Ranges:      []string{"BasicLatin", "Latin1Supplement"},
		},
		Scroll: ScrollConfig{
			DragMultiplier: 2,
			WheelStep:      10,
			BarWidth:       6,
		},
		Caret: CaretConfig{
			BlinkPeriod: 1.2,
			BlinkOn:     0.8,
		},
		Editor: EditorConfig{
			PrefsPath:      ".editor_prefs.json",
			ScenePath:      "scene.json",
			HierarchyWidth: 260,
			InspectorWidth: 320,
			NotesMaxLength: 4096,
		},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	case c.Font.Size <= 0:
		return fmt.Errorf("font size %v must be positive", c.Font.Size)
	case c.Font.DisplaySize < 0:
		return fmt.Errorf("font display size %v must not be negative", c.Font.DisplaySize)
	case c.Font.AtlasWidth <= 0 || c.Font.AtlasHeight <= 0:
		return fmt.Errorf("atlas size %dx%d must be positive", c.Font.AtlasWidth, c.Font.AtlasHeight)
	case c.Scroll.DragMultiplier <= 0:
		return fmt.Errorf("scroll drag multiplier %v must be positive", c.Scroll.DragMultiplier)
	case c.Scroll.WheelStep <= 0:
		return fmt.Errorf("scroll wheel step %v must be positive", c.Scroll.WheelStep)
	case c.Caret.BlinkOn < 0 || c.Caret.BlinkOn > c.Caret.BlinkPeriod:
		return fmt.Errorf("caret on time %v must be within the blink period %v", c.Caret.BlinkOn, c.Caret.BlinkPeriod)
	}
	if _, err := c.Font.CharacterRanges(); err != nil {
		return err
	}
	return nil
}

// CharacterRanges resolves the configured range names. An empty list means
// Basic Latin.
func (f FontConfig) CharacterRanges() ([]font.CharacterRange, error) {
	if len(f.Ranges) == 0 {
		return []font.CharacterRange{font.BasicLatin}, nil
	}
	out := make([]font.CharacterRange, 0, len(f.Ranges))
	for _, name := range f.Ranges {
		r, err := font.RangeByName(name)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// TextSize is the size text is drawn at.
func (f FontConfig) TextSize() float32 {
	if f.DisplaySize > 0 {
		return f.DisplaySize
	}
	return f.Size
}

// ApplyStyle copies the tuning values into st.
func (c Config) ApplyStyle(st *gui.Style) {
	st.ScrollDragMultiplier = c.Scroll.DragMultiplier
	st.ScrollWheelStep = c.Scroll.WheelStep
	if c.Scroll.BarWidth > 0 {
		st.ScrollbarWidth = c.Scroll.BarWidth
	}
	st.CaretBlinkPeriod = c.Caret.BlinkPeriod
	st.CaretBlinkOn = c.Caret.BlinkOn
}
