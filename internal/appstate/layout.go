package appstate

import (
	"image"

	"github.com/example/stickersketch/internal/mark"
)

const (
	toolbarWidth = 112
	statusHeight = 24
	margin       = 8
	rowHeight    = 22
	stickerCell  = 34
	rowGap       = 2
	sectionGap   = 8
	stickersRow  = 3
)

// layout places the toolbar, canvas and status bar inside a window.
// The canvas is magnified by the largest whole zoom that fits.
type layout struct {
	window  image.Point
	toolbar image.Rectangle
	canvas  image.Rectangle
	status  image.Rectangle
	zoom    int
}

func newLayout(window, canvas image.Point) layout {
	availW := window.X - toolbarWidth - 2*margin
	availH := window.Y - statusHeight - 2*margin
	zoom := 1
	if canvas.X > 0 && canvas.Y > 0 {
		zoom = min(availW/canvas.X, availH/canvas.Y)
	}
	if zoom < 1 {
		zoom = 1
	}
	origin := image.Pt(toolbarWidth+margin, margin)
	return layout{
		window:  window,
		toolbar: image.Rect(0, 0, toolbarWidth, window.Y-statusHeight),
		canvas:  image.Rectangle{Min: origin, Max: origin.Add(canvas.Mul(zoom))},
		status:  image.Rect(0, window.Y-statusHeight, window.X, window.Y),
		zoom:    zoom,
	}
}

// windowSize is the window that shows canvas at zoom with nothing clipped.
func windowSize(canvas image.Point, zoom int) image.Point {
	return image.Pt(toolbarWidth+2*margin+canvas.X*zoom, statusHeight+2*margin+canvas.Y*zoom)
}

// toCanvas maps window pixel coordinates to canvas units.
func (l layout) toCanvas(x, y float32) mark.Point {
	z := float64(l.zoom)
	return mark.Pt((float64(x)-float64(l.canvas.Min.X))/z, (float64(y)-float64(l.canvas.Min.Y))/z)
}

// splitRow divides a toolbar row starting at y into n equal cells.
func splitRow(y, n, h int) []image.Rectangle {
	if n <= 0 {
		return nil
	}
	left, right := rowGap+2, toolbarWidth-rowGap-2
	w := (right - left - (n-1)*rowGap) / n
	rects := make([]image.Rectangle, n)
	x := left
	for i := range rects {
		rects[i] = image.Rect(x, y, x+w, y+h)
		x += w + rowGap
	}
	return rects
}
