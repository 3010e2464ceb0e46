package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/example/stickersketch/internal/export"
	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/render"
	"github.com/example/stickersketch/internal/session"
	"github.com/example/stickersketch/internal/theme"
	"github.com/example/stickersketch/internal/tool"
)

// ErrUnknownCommand is returned for script lines naming no known command.
var ErrUnknownCommand = errors.New("unknown command")

type commandList []string

func (c *commandList) String() string {
	return strings.Join(*c, ";")
}

func (c *commandList) Set(value string) error {
	*c = append(*c, value)
	return nil
}

// scriptOp is one parsed script line. Lines that map onto session input
// carry an event; the rest are handled by the driver by name.
type scriptOp struct {
	name  string
	event session.Event
	arg   string
}

// parseScriptLine parses one script line. Blank lines and # comments
// report ok == false.
func parseScriptLine(line string, presets *tool.Presets) (op scriptOp, ok bool, err error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return scriptOp{}, false, nil
	}
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]
	op.name = name

	want := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%s: expected %d arguments, got %d", name, n, len(args))
		}
		return nil
	}
	number := func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%s: invalid number %q", name, s)
		}
		return v, nil
	}
	point := func() (float64, float64, error) {
		if err := want(2); err != nil {
			return 0, 0, err
		}
		x, err := number(args[0])
		if err != nil {
			return 0, 0, err
		}
		y, err := number(args[1])
		return x, y, err
	}

	switch name {
	case "down":
		x, y, err := point()
		if err != nil {
			return op, true, err
		}
		op.event = session.PointerDown{X: x, Y: y}
	case "move":
		x, y, err := point()
		if err != nil {
			return op, true, err
		}
		op.event = session.PointerMove{X: x, Y: y}
	case "up", "exit", "thin", "thick", "nosticker", "undo", "redo", "clear", "status", "quit":
		if err := want(0); err != nil {
			return op, true, err
		}
		switch name {
		case "up":
			op.event = session.PointerUp{}
		case "exit":
			op.event = session.PointerExit{}
		case "thin":
			op.event = session.SetWidth(presets.Thin())
		case "thick":
			op.event = session.SetWidth(presets.Thick())
		case "nosticker":
			op.event = session.SelectSticker("")
		case "undo":
			op.event = session.HistoryChanged{Op: session.Undo}
		case "redo":
			op.event = session.HistoryChanged{Op: session.Redo}
		case "clear":
			op.event = session.HistoryChanged{Op: session.Clear}
		}
	case "width":
		if err := want(1); err != nil {
			return op, true, err
		}
		w, err := number(args[0])
		if err != nil {
			return op, true, err
		}
		if w < tool.MinWidth {
			return op, true, fmt.Errorf("width: %g below minimum %d", w, tool.MinWidth)
		}
		op.event = session.SetWidth(w)
	case "rotate":
		if err := want(1); err != nil {
			return op, true, err
		}
		deg, err := number(args[0])
		if err != nil {
			return op, true, err
		}
		op.event = session.SetRotation(deg)
	case "sticker":
		glyph, err := tool.CleanSticker(strings.Join(args, " "))
		if err != nil {
			return op, true, fmt.Errorf("sticker: %w", err)
		}
		presets.EnsureSticker(glyph)
		op.event = session.SelectSticker(glyph)
	case "export", "pdf", "view":
		if len(args) > 1 {
			return op, true, fmt.Errorf("%s: expected at most 1 argument, got %d", name, len(args))
		}
		if len(args) == 1 {
			op.arg = args[0]
		}
		if name == "view" && op.arg == "" {
			return op, true, fmt.Errorf("view: output file is required")
		}
	default:
		return op, true, fmt.Errorf("%q: %w", name, ErrUnknownCommand)
	}
	return op, true, nil
}

// scriptCmd drives a session from text commands with no window, rendering
// to an offscreen canvas.
type scriptCmd struct {
	*root
	fs *flag.FlagSet

	execs       commandList
	file        string
	size        int
	scale       float64
	fontPath    string
	inkSpec     string
	output      string
	transparent bool
	verbose     bool

	presets *tool.Presets
	canvas  *render.Canvas
	sess    *session.Session
	opts    export.Options
}

func parseScriptCmd(args []string, r *root) (*scriptCmd, error) {
	fs := flag.NewFlagSet("script", flag.ExitOnError)
	s := &scriptCmd{root: r.subcommand("script"), fs: fs}
	fs.Usage = usageFunc(s)
	fs.Var(&s.execs, "e", "execute a script command (may be specified multiple times)")
	fs.StringVar(&s.file, "f", "", "read commands from this file instead of stdin")
	fs.IntVar(&s.size, "size", s.root.canvasSize(), "canvas edge length in canvas units")
	fs.Float64Var(&s.scale, "scale", s.root.exportScale(), "PNG export scale factor")
	fs.StringVar(&s.fontPath, "font", "", "TrueType/OpenType font for stickers")
	fs.StringVar(&s.inkSpec, "ink", "", "ink color name or hex value (default from theme)")
	fs.StringVar(&s.output, "o", "", "export the drawing to this .png or .pdf file when the script ends")
	fs.BoolVar(&s.transparent, "transparent", false, "export PNG files without a background")
	fs.BoolVar(&s.verbose, "v", false, "log commits and history changes")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: s, msg: "unexpected arguments: " + strings.Join(fs.Args(), " ")}
	}
	if len(s.execs) > 0 && s.file != "" {
		return nil, fmt.Errorf("-e and -f cannot be used together")
	}
	if s.size <= 0 {
		return nil, fmt.Errorf("invalid canvas size %d", s.size)
	}
	return s, nil
}

func (s *scriptCmd) FlagSet() *flag.FlagSet {
	return s.fs
}

func (s *scriptCmd) setup() error {
	th := s.theme()
	ink := th.Ink
	if s.inkSpec != "" {
		c, err := theme.ParseColor(s.inkSpec)
		if err != nil {
			return fmt.Errorf("ink: %w", err)
		}
		ink = c
	}
	fonts, err := s.fonts(s.fontPath)
	if err != nil {
		return fmt.Errorf("failed to load font: %w", err)
	}
	size := image.Pt(s.size, s.size)
	s.opts = export.Options{Size: size, Scale: s.scale, Background: th.Canvas, Fonts: fonts}
	if s.transparent {
		s.opts.Background = color.RGBA{}
	}
	s.presets = s.config.Presets()
	s.canvas = render.NewCanvas(size, render.WithBackground(th.Canvas), render.WithFonts(fonts))
	opts := []session.Option{session.WithInk(ink), session.WithPreviewAlpha(th.PreviewAlpha)}
	if s.verbose {
		opts = append(opts, session.WithLogger(log.New(s.stderr, "session: ", 0)))
	}
	s.sess = session.New(s.canvas, opts...)
	return nil
}

func (s *scriptCmd) Run() error {
	if err := s.setup(); err != nil {
		return err
	}
	if len(s.execs) > 0 {
		for i, line := range s.execs {
			done, err := s.executeLine(line)
			if err != nil {
				return fmt.Errorf("command %d: %w", i+1, err)
			}
			if done {
				break
			}
		}
	} else {
		in := io.Reader(os.Stdin)
		if s.file != "" {
			f, err := os.Open(s.file)
			if err != nil {
				return fmt.Errorf("open script: %w", err)
			}
			defer f.Close()
			in = f
		}
		if err := s.runLines(in); err != nil {
			return err
		}
	}
	if s.output != "" {
		return s.save(s.output, "")
	}
	return nil
}

func (s *scriptCmd) runLines(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	n := 0
	for scanner.Scan() {
		n++
		done, err := s.executeLine(scanner.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		if done {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

// executeLine runs one command. done reports a quit.
func (s *scriptCmd) executeLine(line string) (done bool, err error) {
	op, ok, err := parseScriptLine(line, s.presets)
	if err != nil || !ok {
		return false, err
	}
	if op.event != nil {
		s.sess.Dispatch(op.event)
		return false, nil
	}
	switch op.name {
	case "quit":
		return true, nil
	case "status":
		s.printStatus()
	case "export":
		return false, s.save(op.arg, "png")
	case "pdf":
		path := op.arg
		if path != "" && !strings.EqualFold(filepath.Ext(path), ".pdf") {
			path += ".pdf"
		}
		return false, s.save(path, "pdf")
	case "view":
		return false, s.writeView(op.arg)
	}
	return false, nil
}

// save exports the committed marks. An empty path picks a timestamped name
// with extension ext in the save directory.
func (s *scriptCmd) save(path, ext string) error {
	if path == "" {
		path = export.Filename(s.saveDir(), ext, time.Now())
	}
	abs, err := export.Save(path, s.sess.Committed(), s.opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.stdout, "saved %s\n", abs)
	s.notifySave(abs)
	return nil
}

// writeView writes the live canvas, preview included, as PNG.
func (s *scriptCmd) writeView(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output %q: %w", path, err)
	}
	if err := png.Encode(f, s.canvas.Snapshot()); err != nil {
		f.Close()
		return fmt.Errorf("encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	fmt.Fprintf(s.stdout, "wrote %s\n", path)
	return nil
}

func (s *scriptCmd) printStatus() {
	committed, undone := s.sess.Committed(), s.sess.Undone()
	fmt.Fprintf(s.stdout, "tool: %v\n", s.sess.Tool())
	fmt.Fprintf(s.stdout, "marks: %d committed, %d undone\n", len(committed), len(undone))
	for i, m := range committed {
		fmt.Fprintf(s.stdout, "  %d: %s\n", i+1, mark.Describe(m))
	}
	p, inside := s.sess.Pointer()
	fmt.Fprintf(s.stdout, "pointer: %v inside=%t active=%t preview=%s\n", p, inside, s.sess.Active(), mark.Describe(s.sess.Preview()))
	fmt.Fprintf(s.stdout, "undo=%t redo=%t redraws=%d\n", s.sess.CanUndo(), s.sess.CanRedo(), s.sess.Redraws())
}
