package mark

import "image/color"

// Stroke is a freehand polyline. Its points can only be extended through the
// Pen handed out by NewStroke, and only until that Pen is closed.
type Stroke struct {
	id     string
	points []Point
	width  float64
	color  color.RGBA
}

// Pen is the append capability of a Stroke for the duration of one gesture.
type Pen struct {
	stroke *Stroke
	closed bool
}

// NewStroke starts a stroke at start with a frozen width and color. The
// returned Pen extends the stroke until Close is called.
func NewStroke(start Point, width float64, col color.RGBA) (*Stroke, *Pen) {
	s := &Stroke{
		id:     newID(),
		points: []Point{start},
		width:  width,
		color:  col,
	}
	return s, &Pen{stroke: s}
}

// Append adds a sample to the stroke. Appending after Close is a programming
// error and panics.
func (p *Pen) Append(pt Point) {
	if p.closed {
		panic("mark: append to a finished stroke")
	}
	p.stroke.points = append(p.stroke.points, pt)
}

// Close ends the gesture. The stroke is immutable afterwards.
func (p *Pen) Close() { p.closed = true }

// Closed reports whether the gesture has ended.
func (p *Pen) Closed() bool { return p.closed }

// Stroke returns the stroke this pen extends.
func (p *Pen) Stroke() *Stroke { return p.stroke }

func (s *Stroke) mark() {}

// ID returns the stroke identifier.
func (s *Stroke) ID() string { return s.id }

// Points returns a copy of the recorded samples in insertion order.
func (s *Stroke) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of recorded samples.
func (s *Stroke) Len() int { return len(s.points) }

// Width returns the line width captured at creation.
func (s *Stroke) Width() float64 { return s.width }

// Color returns the line color captured at creation.
func (s *Stroke) Color() color.RGBA { return s.color }

// Render draws the polyline. Fewer than two points draw nothing.
func (s *Stroke) Render(surf Surface) {
	if len(s.points) < 2 {
		return
	}
	surf.DrawPolyline(s.points[:len(s.points):len(s.points)], s.width, s.color)
}
