package mark

import "image/color"

// Sticker is a glyph placed at an anchor and rotated about it.
type Sticker struct {
	id       string
	at       Point
	glyph    string
	rotation float64
	size     float64
	color    color.RGBA
}

// NewSticker returns a sticker with its rendering parameters frozen.
func NewSticker(at Point, glyph string, rotation, size float64, col color.RGBA) *Sticker {
	return &Sticker{
		id:       newID(),
		at:       at,
		glyph:    glyph,
		rotation: rotation,
		size:     size,
		color:    col,
	}
}

func (s *Sticker) mark() {}

// ID returns the sticker identifier.
func (s *Sticker) ID() string { return s.id }

// At returns the anchor the glyph is centred on.
func (s *Sticker) At() Point { return s.at }

// Glyph returns the sticker text.
func (s *Sticker) Glyph() string { return s.glyph }

// Rotation returns the angle in degrees captured at creation.
func (s *Sticker) Rotation() float64 { return s.rotation }

// Size returns the font size captured at creation.
func (s *Sticker) Size() float64 { return s.size }

// Color returns the glyph color captured at creation.
func (s *Sticker) Color() color.RGBA { return s.color }

// Render draws the glyph centred on its anchor.
func (s *Sticker) Render(surf Surface) {
	if s.glyph == "" {
		return
	}
	surf.DrawGlyphRotated(s.glyph, s.at, s.rotation, s.size, s.color)
}
