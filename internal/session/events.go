package session

import "fmt"

// Event is one input to Dispatch. The set of events is closed.
type Event interface {
	event()
}

// PointerDown starts a gesture at canvas coordinates X, Y.
type PointerDown struct{ X, Y float64 }

// PointerMove reports the pointer at X, Y, inside the canvas or, while a
// gesture is active, anywhere the window still delivers motion.
type PointerMove struct{ X, Y float64 }

// PointerUp ends the active gesture wherever the button was released.
type PointerUp struct{}

// PointerExit reports the pointer leaving the canvas.
type PointerExit struct{}

// ToolChanged updates tool settings. Nil fields are left unchanged; a
// non-nil Sticker pointing at "" deselects the sticker.
type ToolChanged struct {
	Width    *float64
	Sticker  *string
	Rotation *float64
}

// HistoryOp selects the history operation of a HistoryChanged event.
type HistoryOp int

const (
	Undo HistoryOp = iota
	Redo
	Clear
)

func (op HistoryOp) String() string {
	switch op {
	case Undo:
		return "undo"
	case Redo:
		return "redo"
	case Clear:
		return "clear"
	default:
		return fmt.Sprintf("HistoryOp(%d)", int(op))
	}
}

// HistoryChanged applies an undo, redo or clear.
type HistoryChanged struct{ Op HistoryOp }

func (PointerDown) event()    {}
func (PointerMove) event()    {}
func (PointerUp) event()      {}
func (PointerExit) event()    {}
func (ToolChanged) event()    {}
func (HistoryChanged) event() {}

// SetWidth is shorthand for a ToolChanged that only changes the width.
func SetWidth(w float64) ToolChanged { return ToolChanged{Width: &w} }

// SelectSticker is shorthand for a ToolChanged that only changes the sticker.
func SelectSticker(glyph string) ToolChanged { return ToolChanged{Sticker: &glyph} }

// SetRotation is shorthand for a ToolChanged that only changes the rotation.
func SetRotation(deg float64) ToolChanged { return ToolChanged{Rotation: &deg} }
