package appstate

import (
	"fmt"
	"image"
	"log"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/render"
	"github.com/example/stickersketch/internal/session"
	"github.com/example/stickersketch/internal/theme"
	"github.com/example/stickersketch/internal/tool"
)

const (
	rotationStep      = 15
	messageDuration   = 2 * time.Second
	stickerButtonSize = 22
)

// effects are the toolbar actions that reach outside the window.
type effects interface {
	Export(format string, committed []mark.Mark)
	Copy(committed []mark.Mark)
	PasteText() (string, error)
	Quit()
}

var _ session.Controls = (*controller)(nil)

// controller translates window input into session events and owns
// everything the frame shows. It runs on the event loop goroutine only.
type controller struct {
	sess    *session.Session
	surface *liveSurface
	presets *tool.Presets
	theme   *theme.Theme
	fonts   *render.Fonts
	size    image.Point
	layout  layout
	fx      effects

	buttons []*CacheButton
	hover   int

	keyboardAction map[KeyShortcut]string
	actions        map[string]func()

	undoEnabled bool
	redoEnabled bool

	// inside tracks whether the last pointer position was over the canvas.
	inside  bool
	pointer image.Point

	typing       bool
	typed        string
	confirmClear bool

	message      string
	messageUntil time.Time
	now          func() time.Time
	// onMessage is called after a message is set, to schedule its expiry.
	onMessage func()
}

func newController(window, size image.Point, th *theme.Theme, fonts *render.Fonts, presets *tool.Presets, st tool.State, fx effects, opts ...session.Option) *controller {
	c := &controller{
		presets: presets,
		theme:   th,
		fonts:   fonts,
		size:    size,
		fx:      fx,
		hover:   -1,
		now:     time.Now,
	}
	c.layout = newLayout(window, size)
	c.surface = &liveSurface{Canvas: c.newCanvas(c.layout.zoom)}
	base := []session.Option{
		session.WithTool(st),
		session.WithInk(th.Ink),
		session.WithPreviewAlpha(th.PreviewAlpha),
	}
	opts = append(base, opts...)
	opts = append(opts, session.WithControls(c))
	c.sess = session.New(c.surface, opts...)
	c.registerActions()
	c.buildToolbar()
	c.sess.Redraw()
	return c
}

func (c *controller) newCanvas(zoom int) *render.Canvas {
	return render.NewCanvas(c.size,
		render.WithScale(float64(zoom)),
		render.WithBackground(c.theme.Canvas),
		render.WithFonts(c.fonts))
}

func (c *controller) SetUndoEnabled(v bool) { c.undoEnabled = v }
func (c *controller) SetRedoEnabled(v bool) { c.redoEnabled = v }

// resize lays the window out again, re-rendering the canvas if the zoom
// changed.
func (c *controller) resize(window image.Point) {
	l := newLayout(window, c.size)
	zoomChanged := l.zoom != c.layout.zoom
	c.layout = l
	if zoomChanged {
		c.surface.Canvas = c.newCanvas(l.zoom)
		c.sess.Redraw()
	}
	c.buildToolbar()
}

func (c *controller) setMessage(msg string) {
	c.message = msg
	c.messageUntil = c.now().Add(messageDuration)
	log.Print(msg)
	if c.onMessage != nil {
		c.onMessage()
	}
}

// status is the text shown in the status bar.
func (c *controller) status() string {
	if c.message != "" && c.now().Before(c.messageUntil) {
		return c.message
	}
	if c.typing {
		return "sticker: " + c.typed + "_"
	}
	if c.surface.cursorHidden {
		return "drawing"
	}
	return c.sess.Tool().String()
}

func (c *controller) registerActions() {
	c.actions = map[string]func(){}
	c.keyboardAction = map[KeyShortcut]string{}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		c.actions[name] = fn
		if keys != nil {
			for _, sc := range keys.KeyboardShortcuts() {
				c.keyboardAction[sc] = name
			}
		}
	}

	register("undo", shortcutList{{Code: key.CodeZ, Modifiers: key.ModControl}}, c.sess.Undo)
	register("redo", shortcutList{
		{Code: key.CodeY, Modifiers: key.ModControl},
		{Code: key.CodeZ, Modifiers: key.ModControl | key.ModShift},
	}, c.sess.Redo)
	register("clear", shortcutList{{Code: key.CodeDeleteForward}}, func() {
		if !c.undoEnabled && !c.redoEnabled {
			return
		}
		if !c.confirmClear {
			c.confirmClear = true
			c.setMessage("press Delete again to clear")
			return
		}
		c.confirmClear = false
		c.sess.Clear()
	})
	register("thin", shortcutList{{Rune: 't'}}, func() {
		c.sess.Dispatch(session.SetWidth(c.presets.Thin()))
	})
	register("thick", shortcutList{{Rune: 'k'}}, func() {
		c.sess.Dispatch(session.SetWidth(c.presets.Thick()))
	})
	register("nosticker", shortcutList{{Rune: 'n'}, {Code: key.CodeEscape}}, func() {
		c.sess.Dispatch(session.SelectSticker(""))
	})
	register("type", shortcutList{{Rune: 's'}}, func() {
		c.typing = true
		c.typed = ""
	})
	register("rotateleft", shortcutList{{Rune: '['}}, func() { c.rotate(-rotationStep) })
	register("rotateright", shortcutList{{Rune: ']'}}, func() { c.rotate(rotationStep) })
	register("png", shortcutList{{Code: key.CodeS, Modifiers: key.ModControl}}, func() {
		c.fx.Export("png", c.snapshot())
	})
	register("pdf", shortcutList{{Code: key.CodeP, Modifiers: key.ModControl}}, func() {
		c.fx.Export("pdf", c.snapshot())
	})
	register("copy", shortcutList{{Code: key.CodeC, Modifiers: key.ModControl}}, func() {
		c.fx.Copy(c.snapshot())
	})
	register("paste", shortcutList{{Code: key.CodeV, Modifiers: key.ModControl}}, func() {
		text, err := c.fx.PasteText()
		if err != nil {
			c.setMessage(fmt.Sprintf("paste: %v", err))
			return
		}
		c.addSticker(text)
	})
	register("quit", shortcutList{{Rune: 'q'}, {Code: key.CodeQ, Modifiers: key.ModControl}}, c.fx.Quit)

	for i := 0; i < 9; i++ {
		idx := i
		register(fmt.Sprintf("sticker%d", idx+1), shortcutList{{Rune: rune('1' + idx)}}, func() {
			stickers := c.presets.Stickers()
			if idx < len(stickers) {
				c.sess.Dispatch(session.SelectSticker(stickers[idx]))
			}
		})
	}
}

// snapshot returns the committed marks for a background encoder. A stroke
// still being drawn is finished first so its points no longer change.
func (c *controller) snapshot() []mark.Mark {
	if c.sess.Active() {
		c.sess.Dispatch(session.PointerUp{})
	}
	return c.sess.Committed()
}

func (c *controller) rotate(delta float64) {
	c.sess.Dispatch(session.SetRotation(c.sess.Tool().Rotation + delta))
}

// addSticker adds text to the sticker presets and arms it.
func (c *controller) addSticker(text string) {
	glyph, err := tool.CleanSticker(text)
	if err != nil {
		c.setMessage(err.Error())
		return
	}
	c.presets.EnsureSticker(glyph)
	c.buildToolbar()
	c.sess.Dispatch(session.SelectSticker(glyph))
	c.setMessage("sticker " + glyph)
}

func (c *controller) button(name, label string) *ToolButton {
	return &ToolButton{name: name, label: label, theme: c.theme, onSelect: c.actions[name]}
}

// buildToolbar recreates the toolbar buttons for the current presets.
func (c *controller) buildToolbar() {
	var rows [][]*ToolButton
	var heights []int
	add := func(h int, row ...*ToolButton) {
		rows = append(rows, row)
		heights = append(heights, h)
	}
	gap := func() {
		rows = append(rows, nil)
		heights = append(heights, sectionGap)
	}

	var widthRow []*ToolButton
	for _, w := range c.presets.Widths() {
		w := w
		b := &ToolButton{
			name:     fmt.Sprintf("width %g", w),
			label:    fmt.Sprintf("%gpx", w),
			theme:    c.theme,
			selected: func() bool { return c.sess.Tool().BrushWidth == w },
			onSelect: func() { c.sess.Dispatch(session.SetWidth(w)) },
		}
		widthRow = append(widthRow, b)
		if len(widthRow) == 2 {
			add(rowHeight, widthRow...)
			widthRow = nil
		}
	}
	if len(widthRow) > 0 {
		add(rowHeight, widthRow...)
	}
	gap()

	face, err := c.fonts.Face(stickerButtonSize)
	if err != nil {
		log.Printf("sticker buttons: %v", err)
	}
	var stickerRow []*ToolButton
	for i, g := range c.presets.Stickers() {
		g := g
		b := &ToolButton{
			name:     "sticker " + g,
			label:    fmt.Sprint(i + 1),
			theme:    c.theme,
			selected: func() bool { return c.sess.Tool().Sticker == g },
			onSelect: func() { c.sess.Dispatch(session.SelectSticker(g)) },
		}
		if face != nil {
			b.glyph = render.GlyphTile(face, g, c.theme.Ink)
		}
		stickerRow = append(stickerRow, b)
		if len(stickerRow) == stickersRow {
			add(stickerCell, stickerRow...)
			stickerRow = nil
		}
	}
	if len(stickerRow) > 0 {
		add(stickerCell, stickerRow...)
	}
	typeBtn := c.button("type", "Type")
	typeBtn.selected = func() bool { return c.typing }
	noneBtn := c.button("nosticker", "None")
	noneBtn.enabled = func() bool { return c.sess.Tool().Sticker != "" }
	add(rowHeight, typeBtn, noneBtn)
	add(rowHeight, c.button("rotateleft", "-15"), c.button("rotateright", "+15"))
	gap()

	undo := c.button("undo", "Undo")
	undo.enabled = func() bool { return c.undoEnabled }
	redo := c.button("redo", "Redo")
	redo.enabled = func() bool { return c.redoEnabled }
	add(rowHeight, undo, redo)
	clearBtn := c.button("clear", "Clear")
	clearBtn.enabled = func() bool { return c.undoEnabled || c.redoEnabled }
	clearBtn.selected = func() bool { return c.confirmClear }
	add(rowHeight, clearBtn)
	gap()

	add(rowHeight, c.button("png", "PNG"), c.button("pdf", "PDF"))
	add(rowHeight, c.button("copy", "Copy"))

	c.buttons = c.buttons[:0]
	y := margin
	for i, row := range rows {
		for j, r := range splitRow(y, len(row), heights[i]) {
			b := row[j]
			b.SetRect(r)
			c.buttons = append(c.buttons, &CacheButton{Button: b})
		}
		y += heights[i] + rowGap
	}
	c.hover = -1
}

func (c *controller) buttonAt(p image.Point) int {
	if !p.In(c.layout.toolbar) {
		return -1
	}
	for i, b := range c.buttons {
		if p.In(b.Rect()) {
			return i
		}
	}
	return -1
}

// toolButton returns the ToolButton wrapped by the i-th cached button.
func (c *controller) toolButton(i int) *ToolButton {
	return c.buttons[i].Button.(*ToolButton)
}

// mouse handles a pointer event and reports whether a repaint is needed.
func (c *controller) mouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	inCanvas := p.In(c.layout.canvas)
	cp := c.layout.toCanvas(e.X, e.Y)
	switch e.Direction {
	case mouse.DirPress:
		if e.Button != mouse.ButtonLeft {
			return false
		}
		if inCanvas {
			c.confirmClear = false
			c.inside = true
			c.sess.Dispatch(session.PointerDown{X: cp.X, Y: cp.Y})
			return true
		}
		if i := c.buttonAt(p); i >= 0 {
			if c.toolButton(i).name != "clear" {
				c.confirmClear = false
			}
			c.buttons[i].Activate()
			return true
		}
		return false
	case mouse.DirRelease:
		if e.Button != mouse.ButtonLeft || !c.sess.Active() {
			return false
		}
		c.sess.Dispatch(session.PointerUp{})
		return true
	case mouse.DirStep:
		if !inCanvas {
			return false
		}
		switch e.Button {
		case mouse.ButtonWheelUp:
			c.rotate(rotationStep)
		case mouse.ButtonWheelDown:
			c.rotate(-rotationStep)
		default:
			return false
		}
		return true
	case mouse.DirNone:
		hover := c.buttonAt(p)
		changed := hover != c.hover
		c.hover = hover
		c.pointer = p
		if inCanvas || c.sess.Active() {
			c.sess.Dispatch(session.PointerMove{X: cp.X, Y: cp.Y})
			changed = true
		}
		if !inCanvas && c.inside {
			c.sess.Dispatch(session.PointerExit{})
			changed = true
		}
		c.inside = inCanvas
		return changed
	}
	return false
}

// focusLost ends a gesture whose release the window will never see.
func (c *controller) focusLost() bool {
	changed := false
	if c.sess.Active() {
		c.sess.Dispatch(session.PointerUp{})
		changed = true
	}
	if c.inside {
		c.sess.Dispatch(session.PointerExit{})
		c.inside = false
		changed = true
	}
	return changed
}

// key handles a key event and reports whether a repaint is needed.
func (c *controller) key(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	if c.typing {
		return c.typeKey(e)
	}
	name, ok := c.shortcut(e)
	if !ok {
		return false
	}
	if name != "clear" {
		c.confirmClear = false
	}
	c.actions[name]()
	return true
}

// shortcut looks e up by its character first and then by its key code.
func (c *controller) shortcut(e key.Event) (string, bool) {
	if e.Rune > 0 {
		ks := KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers &^ key.ModShift}
		if name, ok := c.keyboardAction[ks]; ok {
			return name, true
		}
	}
	name, ok := c.keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
	return name, ok
}

func (c *controller) typeKey(e key.Event) bool {
	switch e.Code {
	case key.CodeReturnEnter:
		c.typing = false
		c.addSticker(c.typed)
		c.typed = ""
		return true
	case key.CodeEscape:
		c.typing = false
		c.typed = ""
		return true
	case key.CodeDeleteBackspace:
		if c.typed != "" {
			_, n := utf8.DecodeLastRuneInString(c.typed)
			c.typed = c.typed[:len(c.typed)-n]
		}
		return true
	}
	if e.Modifiers&key.ModControl != 0 {
		if name, ok := c.shortcut(e); ok && name == "paste" {
			c.typing = false
			c.typed = ""
			c.actions[name]()
			return true
		}
		return false
	}
	if e.Rune > 0 && unicode.IsPrint(e.Rune) && utf8.RuneCountInString(c.typed) < tool.MaxStickerRunes {
		c.typed += string(e.Rune)
		return true
	}
	return false
}
