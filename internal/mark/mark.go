// Package mark defines the renderable drawing actions that make up a
// composition. A Mark is a sealed sum type: a freehand Stroke, a placed
// Sticker, or the preview-only Cursor disc.
package mark

import (
	"fmt"
	"image/color"

	"github.com/google/uuid"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }

// Surface is the rendering backend marks draw onto. Implementations must not
// retain or modify slices passed to them.
type Surface interface {
	Clear()
	DrawPolyline(pts []Point, width float64, col color.Color)
	DrawGlyphRotated(glyph string, at Point, angle, size float64, col color.Color)
	FillDisc(center Point, radius float64, col color.Color)
}

// Mark is a renderable drawing action. Rendering uses only the parameters
// frozen when the mark was created and is idempotent.
type Mark interface {
	Render(s Surface)
	// ID identifies committed marks in logs. Cursors have no ID.
	ID() string
	mark()
}

func newID() string { return uuid.NewString() }

// Describe returns a short human readable summary of m.
func Describe(m Mark) string {
	switch m := m.(type) {
	case *Stroke:
		return fmt.Sprintf("stroke %s (%d points, width %g)", shortID(m.id), len(m.points), m.width)
	case *Sticker:
		return fmt.Sprintf("sticker %s %q at %v rot %g", shortID(m.id), m.glyph, m.at, m.rotation)
	case *Cursor:
		return fmt.Sprintf("cursor at %v r %g", m.center, m.radius)
	case nil:
		return "none"
	default:
		panic(fmt.Sprintf("mark: unknown variant %T", m))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
