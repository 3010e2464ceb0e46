// Package session wires input events, tool state and history together and
// redraws a surface whenever the visible state changes.
package session

import (
	"fmt"
	"image/color"
	"log"

	"github.com/example/stickersketch/internal/history"
	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/preview"
	"github.com/example/stickersketch/internal/tool"
)

// Controls receives the undo/redo enablement after every redraw.
type Controls interface {
	SetUndoEnabled(bool)
	SetRedoEnabled(bool)
}

// CursorHider is implemented by surfaces that show a pointer cursor which
// should disappear while a gesture is active.
type CursorHider interface {
	SetCursorHidden(bool)
}

// Replay clears s, renders the committed marks in order and then the
// preview, if any.
func Replay(s mark.Surface, committed []mark.Mark, pv mark.Mark) {
	s.Clear()
	for _, m := range committed {
		m.Render(s)
	}
	if pv != nil {
		pv.Render(s)
	}
}

// Session is one drawing: history, tool state and the in-progress gesture.
// It is not safe for concurrent use; the frontend calls Dispatch from its
// event loop.
type Session struct {
	surface  mark.Surface
	controls Controls
	logger   *log.Logger

	tool    tool.State
	history *history.Store
	opts    preview.Options

	// pen is non-nil while a stroke gesture is active.
	pen *mark.Pen
	// active is true from pointer-down to pointer-up, for strokes and stickers.
	active  bool
	pointer mark.Point
	inside  bool
	preview mark.Mark

	redraws int
}

// Option configures a Session.
type Option func(*Session)

// WithControls sets the sink for undo/redo enablement.
func WithControls(c Controls) Option { return func(s *Session) { s.controls = c } }

// WithTool sets the initial tool state.
func WithTool(st tool.State) Option { return func(s *Session) { s.tool = st } }

// WithInk sets the color of new marks.
func WithInk(c color.RGBA) Option { return func(s *Session) { s.opts.Ink = c } }

// WithPreviewAlpha sets the opacity of the pointer preview.
func WithPreviewAlpha(a uint8) Option { return func(s *Session) { s.opts.Alpha = a } }

// WithStickerSize sets the glyph size of new stickers.
func WithStickerSize(size float64) Option {
	return func(s *Session) {
		if size > 0 {
			s.opts.StickerSize = size
		}
	}
}

// WithLogger logs commits and history operations to l.
func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// New returns an empty session drawing onto surface.
func New(surface mark.Surface, opts ...Option) *Session {
	s := &Session{
		surface: surface,
		tool:    tool.Default(),
		history: history.New(),
		opts:    preview.DefaultOptions(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// SetLogger enables or, with nil, disables debug logging.
func (s *Session) SetLogger(l *log.Logger) { s.logger = l }

// SetControls replaces the enablement sink and pushes the current state to it.
func (s *Session) SetControls(c Controls) {
	s.controls = c
	s.pushControls()
}

// Dispatch applies ev and redraws once if it changed anything visible.
func (s *Session) Dispatch(ev Event) {
	var changed bool
	switch e := ev.(type) {
	case PointerDown:
		changed = s.pointerDown(mark.Pt(e.X, e.Y))
	case PointerMove:
		changed = s.pointerMove(mark.Pt(e.X, e.Y))
	case PointerUp:
		changed = s.pointerUp()
	case PointerExit:
		changed = s.pointerExit()
	case ToolChanged:
		changed = s.toolChanged(e)
	case HistoryChanged:
		changed = s.historyChanged(e.Op)
	default:
		panic(fmt.Sprintf("session: unknown event %T", ev))
	}
	if changed {
		s.Redraw()
	}
}

// Redraw replays the visible state onto the surface and pushes the control
// enablement.
func (s *Session) Redraw() {
	var pv mark.Mark
	if !s.active {
		pv = s.preview
	}
	Replay(s.surface, s.history.Committed(), pv)
	s.redraws++
	s.pushControls()
}

func (s *Session) Undo()  { s.Dispatch(HistoryChanged{Op: Undo}) }
func (s *Session) Redo()  { s.Dispatch(HistoryChanged{Op: Redo}) }
func (s *Session) Clear() { s.Dispatch(HistoryChanged{Op: Clear}) }

// Tool returns the current tool state.
func (s *Session) Tool() tool.State { return s.tool }

// Committed returns a copy of the visible marks in order. The marks are
// shared: while Active reports true the last stroke is still growing, so end
// the gesture before handing the result to another goroutine.
func (s *Session) Committed() []mark.Mark { return s.history.Committed() }

// Undone returns a snapshot of the redo stack.
func (s *Session) Undone() []mark.Mark { return s.history.Undone() }

func (s *Session) CanUndo() bool { return s.history.CanUndo() }
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Active reports whether a gesture is in progress.
func (s *Session) Active() bool { return s.active }

// Preview returns the current preview mark, nil when none is shown.
func (s *Session) Preview() mark.Mark {
	if s.active {
		return nil
	}
	return s.preview
}

// Pointer returns the last known pointer position and whether it is over
// the canvas.
func (s *Session) Pointer() (mark.Point, bool) { return s.pointer, s.inside }

// Redraws returns how many times the surface was replayed.
func (s *Session) Redraws() int { return s.redraws }

func (s *Session) pointerDown(p mark.Point) bool {
	if s.active {
		// A second press without a release; the earlier gesture ends here.
		s.endGesture()
	}
	s.pointer = p
	s.inside = true
	s.preview = nil
	s.active = true
	s.hideCursor(true)

	if s.tool.Mode() == tool.ModeSticker {
		st := mark.NewSticker(p, s.tool.Sticker, s.tool.Rotation, s.opts.StickerSize, s.opts.Ink)
		s.commit(st)
		s.tool.Placed()
		return true
	}
	st, pen := mark.NewStroke(p, s.tool.BrushWidth, s.opts.Ink)
	s.pen = pen
	s.commit(st)
	return true
}

func (s *Session) pointerMove(p mark.Point) bool {
	s.pointer = p
	if s.pen != nil {
		s.pen.Append(p)
		return true
	}
	if s.active {
		// Placing a sticker: nothing follows the pointer until release.
		return false
	}
	s.inside = true
	s.refreshPreview()
	return true
}

func (s *Session) pointerUp() bool {
	if !s.active {
		return false
	}
	s.endGesture()
	if s.inside {
		s.refreshPreview()
	}
	return true
}

func (s *Session) pointerExit() bool {
	s.inside = false
	if s.preview == nil {
		return false
	}
	s.preview = nil
	return !s.active
}

func (s *Session) toolChanged(e ToolChanged) bool {
	if e.Width != nil {
		s.tool.SetBrushWidth(*e.Width)
	}
	if e.Rotation != nil {
		s.tool.SetRotation(*e.Rotation)
	}
	if e.Sticker != nil {
		s.tool.SelectSticker(*e.Sticker)
	}
	s.logf("tool: %v", s.tool)
	if s.active || !s.inside {
		return false
	}
	s.refreshPreview()
	return true
}

func (s *Session) historyChanged(op HistoryOp) bool {
	// The open stroke must not keep growing once it may sit on the redo stack.
	if s.active {
		s.endGesture()
		if s.inside {
			s.refreshPreview()
		}
	}
	var changed bool
	switch op {
	case Undo:
		changed = s.history.Undo()
	case Redo:
		changed = s.history.Redo()
	case Clear:
		changed = s.history.CanUndo() || s.history.CanRedo()
		s.history.Clear()
	default:
		panic(fmt.Sprintf("session: unknown history op %d", int(op)))
	}
	if changed {
		c, u := s.history.Len()
		s.logf("%v: %d committed, %d undone", op, c, u)
	}
	return changed
}

func (s *Session) commit(m mark.Mark) {
	s.history.Commit(m)
	s.logf("commit %s", mark.Describe(m))
}

func (s *Session) endGesture() {
	if s.pen != nil {
		s.pen.Close()
		s.pen = nil
	}
	s.active = false
	s.hideCursor(false)
}

func (s *Session) refreshPreview() {
	s.preview = preview.Synthesize(s.pointer, s.tool, s.active, s.opts)
}

func (s *Session) hideCursor(hidden bool) {
	if h, ok := s.surface.(CursorHider); ok {
		h.SetCursorHidden(hidden)
	}
}

func (s *Session) pushControls() {
	if s.controls == nil {
		return
	}
	s.controls.SetUndoEnabled(s.history.CanUndo())
	s.controls.SetRedoEnabled(s.history.CanRedo())
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}
