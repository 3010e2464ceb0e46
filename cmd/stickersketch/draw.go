package main

import (
	"bufio"
	"flag"
	"fmt"
	"image"
	"io"
	"log"
	"os"
	"strings"

	"github.com/example/stickersketch/internal/appstate"
	"github.com/example/stickersketch/internal/theme"
	"github.com/example/stickersketch/internal/tool"
)

// drawCmd opens the drawing window.
type drawCmd struct {
	*root
	fs *flag.FlagSet

	size      int
	scale     float64
	fontPath  string
	inkSpec   string
	width     float64
	sticker   string
	rotation  float64
	outputDir string
	readStdin bool
	verbose   bool
}

func parseDrawCmd(args []string, r *root) (*drawCmd, error) {
	fs := flag.NewFlagSet("draw", flag.ExitOnError)
	d := &drawCmd{root: r.subcommand("draw"), fs: fs}
	fs.Usage = usageFunc(d)
	fs.IntVar(&d.size, "size", d.root.canvasSize(), "canvas edge length in canvas units")
	fs.Float64Var(&d.scale, "scale", d.root.exportScale(), "PNG export scale factor")
	fs.StringVar(&d.fontPath, "font", "", "TrueType/OpenType font for stickers (default from config)")
	fs.StringVar(&d.inkSpec, "ink", "", "ink color name or hex value (default from theme)")
	fs.Float64Var(&d.width, "width", tool.ThinWidth, "initial brush width")
	fs.StringVar(&d.sticker, "sticker", "", "sticker to arm on start")
	fs.Float64Var(&d.rotation, "rotation", 0, "initial sticker rotation in degrees")
	fs.StringVar(&d.outputDir, "output-dir", d.root.saveDir(), "directory exports are saved to")
	fs.BoolVar(&d.readStdin, "stdin", false, "apply script commands read from stdin to the open window")
	fs.BoolVar(&d.verbose, "v", false, "log commits and history changes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: d, msg: "unexpected arguments: " + strings.Join(fs.Args(), " ")}
	}
	if d.size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", d.size)
	}
	if d.width < tool.MinWidth {
		return nil, fmt.Errorf("width %g below minimum %d", d.width, tool.MinWidth)
	}
	if d.sticker != "" {
		glyph, err := tool.CleanSticker(d.sticker)
		if err != nil {
			return nil, err
		}
		d.sticker = glyph
	}
	return d, nil
}

func (d *drawCmd) FlagSet() *flag.FlagSet {
	return d.fs
}

// toolState is the tool configuration the window starts with.
func (d *drawCmd) toolState() tool.State {
	st := tool.Default()
	st.SetBrushWidth(d.width)
	st.SetRotation(d.rotation)
	st.SelectSticker(d.sticker)
	return st
}

func (d *drawCmd) Run() error {
	th := *d.theme()
	if d.inkSpec != "" {
		c, err := theme.ParseColor(d.inkSpec)
		if err != nil {
			return fmt.Errorf("ink: %w", err)
		}
		th.Ink = c
	}
	fonts, err := d.fonts(d.fontPath)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}

	opts := []appstate.Option{
		appstate.WithCanvasSize(image.Pt(d.size, d.size)),
		appstate.WithTheme(&th),
		appstate.WithFonts(fonts),
		appstate.WithPresets(d.config.Presets()),
		appstate.WithTool(d.toolState()),
		appstate.WithSaveDir(d.outputDir),
		appstate.WithExportScale(d.scale),
		appstate.WithNotifier(d.notifier),
	}
	if d.verbose {
		opts = append(opts, appstate.WithSessionLogger(log.New(d.stderr, "session: ", 0)))
	}
	state := appstate.New(opts...)
	if d.readStdin {
		// The forwarder parses with its own presets; the window's belong to
		// the event loop.
		go d.forward(state, os.Stdin, d.config.Presets())
	}
	state.Run()
	return nil
}

// forward applies script commands from in to the window until in ends or a
// quit command closes it.
func (d *drawCmd) forward(state *appstate.AppState, in io.Reader, presets *tool.Presets) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		op, ok, err := parseScriptLine(scanner.Text(), presets)
		if err != nil {
			fmt.Fprintln(d.stderr, err)
			continue
		}
		if !ok {
			continue
		}
		switch {
		case op.name == "quit":
			state.Close()
			return
		case op.event == nil:
			fmt.Fprintf(d.stderr, "%s is not available while drawing; use the toolbar\n", op.name)
		case !state.Apply(op.event):
			fmt.Fprintln(d.stderr, "window not ready")
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("stdin: %v", err)
	}
}
