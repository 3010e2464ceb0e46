package appstate

import (
	"github.com/example/stickersketch/internal/render"
	"github.com/example/stickersketch/internal/session"
)

var _ session.CursorHider = (*liveSurface)(nil)

// liveSurface is the window's drawing target. The canvas is swapped when
// the zoom changes. Shiny cannot hide the platform pointer, so a hidden
// cursor is reported in the status bar instead.
type liveSurface struct {
	*render.Canvas
	cursorHidden bool
}

func (s *liveSurface) SetCursorHidden(hidden bool) { s.cursorHidden = hidden }
