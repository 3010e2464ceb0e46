package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/stickersketch/internal/config"
	"github.com/example/stickersketch/internal/export"
	"github.com/example/stickersketch/internal/notify"
	"github.com/example/stickersketch/internal/render"
	"github.com/example/stickersketch/internal/theme"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs          *flag.FlagSet
	program     string
	notifier    *notify.Notifier
	config      *config.Config
	configPath  string
	saveAlerts  bool
	copyAlerts  bool
	themeName   string
	activeTheme *theme.Theme
	stdout      io.Writer
	stderr      io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

// subcommand returns a copy of r for the named command. A nil r yields a
// root with defaults, as used by tests.
func (r *root) subcommand(name string) *root {
	if r == nil {
		return &root{
			program: "stickersketch " + name,
			config:  config.New(),
			stdout:  os.Stdout,
			stderr:  os.Stderr,
		}
	}
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:     program,
		notifier:    r.notifier,
		config:      r.config,
		configPath:  r.configPath,
		saveAlerts:  r.saveAlerts,
		copyAlerts:  r.copyAlerts,
		themeName:   r.themeName,
		activeTheme: r.activeTheme,
		stdout:      r.stdout,
		stderr:      r.stderr,
	}
}

func newRoot() *root {
	r := &root{
		fs:       flag.NewFlagSet("stickersketch", flag.ExitOnError),
		program:  "stickersketch",
		notifier: notify.New(notify.LoadPreferences()),
		config:   config.New(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "configuration file to load instead of the default search path")
	r.fs.BoolVar(&r.saveAlerts, "notify-save", false, "show a desktop notification after saving a drawing (default from config)")
	r.fs.BoolVar(&r.copyAlerts, "notify-copy", false, "show a desktop notification after copying to the clipboard (default from config)")

	// Precedence: CLI > Env > Config > Default
	r.fs.StringVar(&r.themeName, "theme", "", "color theme to use (light, dark, chalkboard or a file)")
	r.fs.Usage = usageFunc(r)
	return r
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}

	loader := config.NewLoader(version, r.configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(r.stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	r.config = cfg

	set := map[string]bool{}
	r.fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["notify-save"] {
		r.saveAlerts = cfg.Notify.Save
	}
	if !set["notify-copy"] {
		r.copyAlerts = cfg.Notify.Copy
	}
	if r.notifier != nil {
		r.notifier.Enable(notify.EventSave, r.saveAlerts)
		r.notifier.Enable(notify.EventCopy, r.copyAlerts)
	}
	r.activeTheme = r.resolveTheme()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var cmd runnable
	switch cmdName {
	case "draw":
		cmd, err = parseDrawCmd(subArgs, r)
	case "script":
		cmd, err = parseScriptCmd(subArgs, r)
	case "stickers":
		cmd, err = parseStickersCmd(subArgs, r)
	case "widths":
		cmd, err = parseWidthsCmd(subArgs, r)
	case "themes":
		cmd, err = parseThemesCmd(subArgs, r)
	case "config":
		cmd, err = parseConfigCmd(subArgs, r)
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

// resolveTheme picks the theme named on the command line, in the
// environment or in the config, in that order.
func (r *root) resolveTheme() *theme.Theme {
	name := r.themeName
	if name == "" {
		name = os.Getenv("STICKERSKETCH_THEME")
	}
	if name == "" && r.config != nil {
		name = r.config.Theme
	}
	loader := theme.NewLoader()
	if r.config != nil {
		loader.Inline = r.config.Themes
	}
	t, err := loader.Load(name)
	if err != nil {
		fmt.Fprintf(r.stderr, "warning: failed to load theme '%s': %v. using default.\n", name, err)
		return theme.Default()
	}
	return t
}

func (r *root) theme() *theme.Theme {
	if r == nil || r.activeTheme == nil {
		return theme.Default()
	}
	return r.activeTheme
}

// fonts loads the sticker font from path, falling back to the configured
// font and then the built-in one.
func (r *root) fonts(path string) (*render.Fonts, error) {
	if path == "" && r != nil && r.config != nil {
		path = r.config.Font
	}
	if strings.TrimSpace(path) == "" {
		return render.DefaultFonts()
	}
	return render.LoadFonts(path)
}

// exportScale returns the configured PNG scale or the default.
func (r *root) exportScale() float64 {
	if r != nil && r.config != nil && r.config.ExportScale > 0 {
		return r.config.ExportScale
	}
	return export.DefaultScale
}

func (r *root) canvasSize() int {
	if r != nil && r.config != nil && r.config.CanvasSize > 0 {
		return r.config.CanvasSize
	}
	return export.DefaultCanvasSize
}

func (r *root) saveDir() string {
	if r != nil && r.config != nil {
		return r.config.SaveDir
	}
	return ""
}

func (r *root) notifySave(path string) {
	if r == nil || r.notifier == nil {
		return
	}
	r.notifier.Save(path)
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
