// Package preview computes the transient mark shown under the pointer.
package preview

import (
	"image/color"

	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/tool"
)

// Options control the look of preview marks.
type Options struct {
	// Ink is the color committed marks are drawn with.
	Ink color.RGBA
	// Alpha is the opacity of the preview, 0-255.
	Alpha uint8
	// StickerSize is the glyph size in canvas units.
	StickerSize float64
}

const (
	DefaultAlpha       = 0x60
	DefaultStickerSize = 32
)

// DefaultOptions returns black ink at the default ghost opacity.
func DefaultOptions() Options {
	return Options{
		Ink:         color.RGBA{A: 0xff},
		Alpha:       DefaultAlpha,
		StickerSize: DefaultStickerSize,
	}
}

// Synthesize returns the preview for pointer position p, or nil while a
// gesture is active. A selected sticker previews as a translucent copy of
// itself; otherwise a disc the size of the brush is shown.
func Synthesize(p mark.Point, st tool.State, active bool, opts Options) mark.Mark {
	if active {
		return nil
	}
	ghost := Ghost(opts.Ink, opts.Alpha)
	if st.Mode() == tool.ModeSticker {
		return mark.NewSticker(p, st.Sticker, st.Rotation, opts.StickerSize, ghost)
	}
	return mark.NewCursor(p, st.BrushWidth, ghost)
}

// Ghost returns c with its opacity scaled by alpha/255, premultiplied.
func Ghost(c color.RGBA, alpha uint8) color.RGBA {
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(alpha) / 0xff) }
	return color.RGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: scale(c.A)}
}
