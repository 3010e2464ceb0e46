// Package appstate runs the drawing window: a toolbar, the canvas and a
// status bar on top of a session.
package appstate

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/stickersketch/internal/clipboard"
	"github.com/example/stickersketch/internal/export"
	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/notify"
	"github.com/example/stickersketch/internal/render"
	"github.com/example/stickersketch/internal/session"
	"github.com/example/stickersketch/internal/theme"
	"github.com/example/stickersketch/internal/tool"
)

const initialZoom = 2

// AppState holds application configuration for the UI.
type AppState struct {
	Size        image.Point
	Theme       *theme.Theme
	Fonts       *render.Fonts
	Presets     *tool.Presets
	Tool        tool.State
	SaveDir     string
	ExportScale float64
	Notifier    *notify.Notifier
	Logger      *log.Logger

	updateCh    chan struct{}
	sendControl func(controlEvent)
	settingsMu  sync.Mutex

	onClose   func()
	closeOnce sync.Once
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithCanvasSize sets the canvas size in canvas units.
func WithCanvasSize(sz image.Point) Option { return func(a *AppState) { a.Size = sz } }

// WithTheme sets the window colors and the ink of new marks.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithFonts sets the font used for stickers.
func WithFonts(f *render.Fonts) Option { return func(a *AppState) { a.Fonts = f } }

// WithPresets sets the width and sticker buttons.
func WithPresets(p *tool.Presets) Option { return func(a *AppState) { a.Presets = p } }

// WithTool sets the initial tool state.
func WithTool(st tool.State) Option { return func(a *AppState) { a.Tool = st } }

// WithSaveDir sets where exports are written.
func WithSaveDir(dir string) Option { return func(a *AppState) { a.SaveDir = dir } }

// WithExportScale sets the PNG export scale factor.
func WithExportScale(s float64) Option { return func(a *AppState) { a.ExportScale = s } }

// WithNotifier sets the desktop notifier used after saves and copies.
func WithNotifier(n *notify.Notifier) Option { return func(a *AppState) { a.Notifier = n } }

// WithSessionLogger logs commits and history operations to l.
func WithSessionLogger(l *log.Logger) Option { return func(a *AppState) { a.Logger = l } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Size:        image.Pt(export.DefaultCanvasSize, export.DefaultCanvasSize),
		Tool:        tool.Default(),
		ExportScale: export.DefaultScale,
		updateCh:    make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(a)
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Presets == nil {
		a.Presets = tool.NewPresets(nil, nil)
	}
	a.Presets.EnsureWidth(a.Tool.BrushWidth)
	if a.Tool.Sticker != "" {
		a.Presets.EnsureSticker(a.Tool.Sticker)
	}
	return a
}

// controlEvent carries work from other goroutines into the event loop.
type controlEvent struct {
	Event session.Event
	Quit  bool
}

// statusEvent shows a message produced off the event loop.
type statusEvent struct {
	Message string
}

// requestPaint asks the event loop for a repaint. Requests coalesce.
func (a *AppState) requestPaint() {
	if a.updateCh == nil {
		return
	}
	select {
	case a.updateCh <- struct{}{}:
	default:
	}
}

// Apply forwards ev to the window's session. It reports false when no
// window is open.
func (a *AppState) Apply(ev session.Event) bool {
	return a.send(controlEvent{Event: ev})
}

// Close asks an open window to quit.
func (a *AppState) Close() bool {
	return a.send(controlEvent{Quit: true})
}

func (a *AppState) send(ev controlEvent) bool {
	a.settingsMu.Lock()
	sender := a.sendControl
	a.settingsMu.Unlock()
	if sender == nil {
		return false
	}
	sender(ev)
	return true
}

func (a *AppState) setControlSender(fn func(controlEvent)) {
	a.settingsMu.Lock()
	a.sendControl = fn
	a.settingsMu.Unlock()
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		a.setControlSender(nil)
		if a.onClose != nil {
			a.onClose()
		}
	})
}

func (a *AppState) exportOptions() export.Options {
	return export.Options{
		Size:       a.Size,
		Scale:      a.ExportScale,
		Background: a.Theme.Canvas,
		Fonts:      a.Fonts,
	}
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() { driver.Main(a.Main) }

func (a *AppState) Main(s screen.Screen) {
	fonts := a.Fonts
	if fonts == nil {
		var err error
		if fonts, err = render.DefaultFonts(); err != nil {
			log.Fatalf("load font: %v", err)
		}
		a.Fonts = fonts
	}

	winSize := windowSize(a.Size, initialZoom)
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: winSize.X, Height: winSize.Y, Title: "StickerSketch"})
	if err != nil {
		log.Fatalf("new window: %v", err)
	}
	defer w.Release()

	defer a.notifyClose()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-a.updateCh:
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	fx := &windowEffects{a: a, w: w}
	var sopts []session.Option
	if a.Logger != nil {
		sopts = append(sopts, session.WithLogger(a.Logger))
	}
	c := newController(winSize, a.Size, a.Theme, fonts, a.Presets, a.Tool, fx, sopts...)
	c.onMessage = func() { time.AfterFunc(messageDuration, a.requestPaint) }

	a.setControlSender(func(ev controlEvent) { w.Send(ev) })

	for {
		e := w.NextEvent()
		switch e := e.(type) {
		case controlEvent:
			if e.Quit {
				return
			}
			if e.Event != nil {
				c.sess.Dispatch(e.Event)
				w.Send(paint.Event{})
			}
		case statusEvent:
			c.setMessage(e.Message)
			w.Send(paint.Event{})
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return
			}
			if e.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff && c.focusLost() {
				w.Send(paint.Event{})
			}
		case size.Event:
			winSize = image.Pt(e.WidthPx, e.HeightPx)
			c.resize(winSize)
			w.Send(paint.Event{})
		case paint.Event:
			drawFrame(s, w, c, winSize)
		case mouse.Event:
			if c.mouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if c.key(e) {
				w.Send(paint.Event{})
			}
		case error:
			log.Print(e)
		}
	}
}

func drawFrame(s screen.Screen, w screen.Window, c *controller, sz image.Point) {
	if sz.X <= 0 || sz.Y <= 0 {
		return
	}
	b, err := s.NewBuffer(sz)
	if err != nil {
		log.Printf("new buffer: %v", err)
		return
	}
	defer b.Release()
	c.paint(b.RGBA())
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// windowEffects runs exports and clipboard copies off the event loop and
// reports back with a statusEvent.
type windowEffects struct {
	a *AppState
	w screen.Window
}

func (fx *windowEffects) Export(format string, committed []mark.Mark) {
	opts := fx.a.exportOptions()
	path := export.Filename(fx.a.SaveDir, format, time.Now())
	go func() {
		abs, err := export.Save(path, committed, opts)
		if err != nil {
			fx.w.Send(statusEvent{Message: fmt.Sprintf("save: %v", err)})
			return
		}
		fx.a.Notifier.Save(abs)
		fx.w.Send(statusEvent{Message: "saved " + abs})
	}()
}

func (fx *windowEffects) Copy(committed []mark.Mark) {
	opts := fx.a.exportOptions()
	go func() {
		img := export.Raster(committed, opts)
		if err := clipboard.WriteImage(img); err != nil {
			fx.w.Send(statusEvent{Message: fmt.Sprintf("copy: %v", err)})
			return
		}
		b := img.Bounds()
		fx.a.Notifier.Copy(fmt.Sprintf("%dx%d drawing", b.Dx(), b.Dy()), img)
		fx.w.Send(statusEvent{Message: "image copied to clipboard"})
	}()
}

func (fx *windowEffects) PasteText() (string, error) { return clipboard.ReadText() }

func (fx *windowEffects) Quit() { fx.w.Send(controlEvent{Quit: true}) }
