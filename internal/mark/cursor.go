package mark

import "image/color"

// Cursor is the brush footprint shown under the pointer. It is only ever used
// as a preview and is never committed.
type Cursor struct {
	center Point
	radius float64
	color  color.RGBA
}

// NewCursor returns a disc preview.
func NewCursor(center Point, radius float64, col color.RGBA) *Cursor {
	return &Cursor{center: center, radius: radius, color: col}
}

func (c *Cursor) mark() {}

// ID is always empty; cursors are never committed.
func (c *Cursor) ID() string { return "" }

// Center returns the disc center.
func (c *Cursor) Center() Point { return c.center }

// Radius returns the disc radius.
func (c *Cursor) Radius() float64 { return c.radius }

// Color returns the fill color.
func (c *Cursor) Color() color.RGBA { return c.color }

// Render fills the disc. A non-positive radius draws nothing.
func (c *Cursor) Render(surf Surface) {
	if c.radius <= 0 {
		return
	}
	surf.FillDisc(c.center, c.radius, c.color)
}
