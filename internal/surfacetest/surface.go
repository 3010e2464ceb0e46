// Package surfacetest contains a recording mark.Surface and control sink
// that make redraw behaviour observable in tests.
package surfacetest

import (
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/example/stickersketch/internal/mark"
)

var _ = mark.Surface((*Recorder)(nil))

// Recorder implements mark.Surface by recording every draw op as a string.
// Clear empties the recording so Ops always describes the current frame.
type Recorder struct {
	mu     sync.Mutex
	ops    []string
	clears int
	hidden bool
}

// New returns an empty recorder.
func New() *Recorder { return &Recorder{} }

func (r *Recorder) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = nil
	r.clears++
}

func (r *Recorder) DrawPolyline(pts []mark.Point, width float64, col color.Color) {
	ps := make([]string, len(pts))
	for i, p := range pts {
		ps[i] = p.String()
	}
	r.record("polyline [%s] width=%g color=%s", strings.Join(ps, " "), width, hex(col))
}

func (r *Recorder) DrawGlyphRotated(glyph string, at mark.Point, angle, size float64, col color.Color) {
	r.record("glyph %q at %v angle=%g size=%g color=%s", glyph, at, angle, size, hex(col))
}

func (r *Recorder) FillDisc(center mark.Point, radius float64, col color.Color) {
	r.record("disc %v r=%g color=%s", center, radius, hex(col))
}

// SetCursorHidden implements session.CursorHider.
func (r *Recorder) SetCursorHidden(hidden bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hidden = hidden
}

// Ops returns the draw ops issued since the last Clear.
func (r *Recorder) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.ops...)
}

// Clears returns how many times the surface was cleared.
func (r *Recorder) Clears() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears
}

// CursorHidden reports the last value passed to SetCursorHidden.
func (r *Recorder) CursorHidden() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hidden
}

func (r *Recorder) record(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x%02x", rgba.R, rgba.G, rgba.B, rgba.A)
}

// Controls records the enablement pushed by a session.
type Controls struct {
	Undo, Redo bool
	// Updates counts SetUndoEnabled calls.
	Updates int
}

func (c *Controls) SetUndoEnabled(on bool) {
	c.Undo = on
	c.Updates++
}

func (c *Controls) SetRedoEnabled(on bool) { c.Redo = on }
