// Package tool holds the user's current drawing settings.
package tool

import (
	"fmt"
	"math"
)

// Mode is derived from the selected sticker.
type Mode int

const (
	ModeFreehand Mode = iota
	ModeSticker
)

func (m Mode) String() string {
	switch m {
	case ModeFreehand:
		return "freehand"
	case ModeSticker:
		return "sticker"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const (
	ThinWidth  = 2
	ThickWidth = 6
	// MinWidth is the smallest width SetBrushWidth accepts.
	MinWidth = 1
)

// State is the tool configuration applied to the next gesture. The zero value
// is not valid; use Default.
type State struct {
	BrushWidth float64
	// Rotation is in degrees, normalised to [0, 360).
	Rotation float64
	// Sticker is the glyph placed by the next pointer-down, "" for none.
	Sticker string
}

// Default returns a thin brush with no sticker selected and no rotation.
func Default() State {
	return State{BrushWidth: ThinWidth}
}

// Mode reports whether the next gesture places a sticker or draws a stroke.
func (s State) Mode() Mode {
	if s.Sticker != "" {
		return ModeSticker
	}
	return ModeFreehand
}

// SetBrushWidth sets the width used by new strokes and the cursor preview.
// Non-finite values are ignored and widths below MinWidth are raised to it.
func (s *State) SetBrushWidth(w float64) {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return
	}
	if w < MinWidth {
		w = MinWidth
	}
	s.BrushWidth = w
}

// SetRotation sets the angle for stickers placed from now on.
func (s *State) SetRotation(deg float64) {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return
	}
	s.Rotation = NormalizeRotation(deg)
}

// SelectSticker arms sticker placement for glyph. An empty glyph returns to
// freehand drawing.
func (s *State) SelectSticker(glyph string) { s.Sticker = glyph }

// Placed reverts to freehand after a sticker placement was committed.
func (s *State) Placed() { s.Sticker = "" }

func (s State) String() string {
	if s.Mode() == ModeSticker {
		return fmt.Sprintf("sticker %s rot %g width %g", s.Sticker, s.Rotation, s.BrushWidth)
	}
	return fmt.Sprintf("freehand width %g rot %g", s.BrushWidth, s.Rotation)
}

// NormalizeRotation maps deg into [0, 360).
func NormalizeRotation(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
