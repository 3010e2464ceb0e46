package theme

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned when no source has a theme of the requested name.
var ErrNotFound = errors.New("theme not found")

// Loader finds themes by name or path.
type Loader struct {
	ConfigDir string
	SystemDir string
	// Inline holds themes defined in the configuration file, by name.
	Inline map[string]*Theme
}

// NewLoader creates a new Loader with standard paths.
func NewLoader() *Loader {
	home, _ := os.UserHomeDir()
	return &Loader{
		ConfigDir: filepath.Join(home, ".config", "stickersketch", "themes"),
		SystemDir: "/usr/share/stickersketch/themes",
	}
}

// Load attempts to load a theme by name or path.
// Order:
// 1. Themes defined inline in the configuration.
// 2. An existing file path.
// 3. Embedded themes.
// 4. ConfigDir, then SystemDir.
// An empty name returns Default.
func (l *Loader) Load(name string) (*Theme, error) {
	if name == "" {
		return Default(), nil
	}
	if t, ok := l.Inline[name]; ok {
		return t, nil
	}
	if st, err := os.Stat(name); err == nil && !st.IsDir() {
		return loadFile(name)
	}

	filename := strings.ToLower(name)
	if !strings.HasSuffix(filename, ".theme") {
		filename += ".theme"
	}
	if f, err := EmbeddedThemes.Open("defaults/" + filename); err == nil {
		defer f.Close()
		return parseNamed(f, "embedded "+filename)
	}
	for _, dir := range []string{l.ConfigDir, l.SystemDir} {
		if dir == "" {
			continue
		}
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return loadFile(path)
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
}

func loadFile(path string) (*Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()
	return parseNamed(f, path)
}

func parseNamed(r io.Reader, source string) (*Theme, error) {
	t, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return t, nil
}
