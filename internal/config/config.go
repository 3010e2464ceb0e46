package config

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/example/stickersketch/internal/theme"
	"github.com/example/stickersketch/internal/tool"
)

// Notify holds notification settings.
type Notify struct {
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	Theme   string
	SaveDir string
	// Font is a TrueType/OpenType file used for sticker glyphs.
	Font string
	// CanvasSize is the square canvas edge in canvas units; 0 for default.
	CanvasSize int
	// ExportScale multiplies the canvas size for PNG export; 0 for default.
	ExportScale float64
	BrushWidths []float64
	Stickers    []string
	Notify      Notify
	Themes      map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Theme:  "", // Default to empty to allow fallback to Env/Default
		Themes: make(map[string]*theme.Theme),
	}
}

// Canvas returns the configured canvas size, or def when unset.
func (c *Config) Canvas(def int) image.Point {
	n := c.CanvasSize
	if n <= 0 {
		n = def
	}
	return image.Pt(n, n)
}

// Presets returns the tool presets described by the configuration.
func (c *Config) Presets() *tool.Presets {
	return tool.NewPresets(c.BrushWidths, c.Stickers)
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	// Root section
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.Font != "" {
		fmt.Fprintf(&sb, "font = %s\n", c.Font)
	}
	if c.CanvasSize > 0 {
		fmt.Fprintf(&sb, "canvas_size = %d\n", c.CanvasSize)
	}
	if c.ExportScale > 0 {
		fmt.Fprintf(&sb, "export_scale = %s\n", strconv.FormatFloat(c.ExportScale, 'g', -1, 64))
	}
	if len(c.BrushWidths) > 0 {
		fmt.Fprintf(&sb, "brush_widths = %s\n", tool.FormatWidths(c.BrushWidths))
	}
	if len(c.Stickers) > 0 {
		fmt.Fprintf(&sb, "stickers = %s\n", strings.Join(c.Stickers, " "))
	}
	sb.WriteString("\n")

	// Notify section
	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort keys for deterministic output
	var themeNames []string
	for name := range c.Themes {
		themeNames = append(themeNames, name)
	}
	sort.Strings(themeNames)

	for _, name := range themeNames {
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		for _, line := range c.Themes[name].Fields() {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// Save writes the configuration to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.String()), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}
