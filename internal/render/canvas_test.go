package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/session"
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

func inked(img *image.RGBA, x, y int) bool {
	return img.RGBAAt(x, y) != white
}

func countInk(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if inked(img, x, y) {
				n++
			}
		}
	}
	return n
}

func TestClearFillsBackground(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 0xff}
	c := NewCanvas(image.Pt(8, 8), WithBackground(bg))
	if got := c.Image().RGBAAt(3, 3); got != bg {
		t.Fatalf("pixel = %v, want %v", got, bg)
	}
}

func TestDrawPolyline(t *testing.T) {
	c := NewCanvas(image.Pt(32, 32))
	c.DrawPolyline([]mark.Point{mark.Pt(4, 16), mark.Pt(28, 16)}, 4, black)
	img := c.Image()
	if !inked(img, 16, 16) {
		t.Fatal("line centre not inked")
	}
	if inked(img, 16, 4) || inked(img, 16, 28) {
		t.Fatal("ink far from the line")
	}
}

func TestDrawPolylineDegenerate(t *testing.T) {
	c := NewCanvas(image.Pt(16, 16))
	c.DrawPolyline([]mark.Point{mark.Pt(8, 8)}, 4, black)
	c.DrawPolyline([]mark.Point{mark.Pt(8, 8), mark.Pt(8, 8)}, 4, black)
	if n := countInk(c.Image(), c.Image().Bounds()); n != 0 {
		t.Fatalf("degenerate polylines inked %d pixels", n)
	}
}

func TestScale(t *testing.T) {
	c := NewCanvas(image.Pt(16, 16), WithScale(4))
	if got := c.Image().Bounds(); got != image.Rect(0, 0, 64, 64) {
		t.Fatalf("bounds = %v", got)
	}
	c.DrawPolyline([]mark.Point{mark.Pt(2, 8), mark.Pt(14, 8)}, 1, black)
	if !inked(c.Image(), 32, 32) {
		t.Fatal("scaled line not at scaled position")
	}
	if inked(c.Image(), 8, 8) {
		t.Fatal("ink at unscaled position")
	}
}

func TestFillDisc(t *testing.T) {
	c := NewCanvas(image.Pt(32, 32))
	c.FillDisc(mark.Pt(16, 16), 6, black)
	img := c.Image()
	if !inked(img, 16, 16) || !inked(img, 19, 16) {
		t.Fatal("disc interior not inked")
	}
	if inked(img, 16, 24) || inked(img, 2, 2) {
		t.Fatal("ink outside the disc")
	}
}

func TestDrawGlyphRotated(t *testing.T) {
	upright := NewCanvas(image.Pt(64, 64))
	upright.DrawGlyphRotated("L", mark.Pt(32, 32), 0, 32, black)
	if countInk(upright.Image(), upright.Image().Bounds()) == 0 {
		t.Fatal("glyph drew nothing")
	}
	// The glyph is centred on its anchor.
	if countInk(upright.Image(), image.Rect(0, 0, 16, 64)) != 0 {
		t.Fatal("glyph ink far left of the anchor")
	}

	rotated := NewCanvas(image.Pt(64, 64))
	rotated.DrawGlyphRotated("L", mark.Pt(32, 32), 90, 32, black)
	if countInk(rotated.Image(), rotated.Image().Bounds()) == 0 {
		t.Fatal("rotated glyph drew nothing")
	}
	same := true
	for i := range upright.Image().Pix {
		if upright.Image().Pix[i] != rotated.Image().Pix[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("rotation had no effect")
	}
}

func TestReplayDrawsOnlyVisibleMarks(t *testing.T) {
	c := NewCanvas(image.Pt(32, 32))
	s, pen := mark.NewStroke(mark.Pt(2, 2), 2, black)
	pen.Append(mark.Pt(30, 2))
	pen.Close()
	session.Replay(c, []mark.Mark{s}, nil)
	if !inked(c.Image(), 16, 2) {
		t.Fatal("stroke missing after replay")
	}
	session.Replay(c, nil, nil)
	if n := countInk(c.Image(), c.Image().Bounds()); n != 0 {
		t.Fatalf("replay of nothing left %d inked pixels", n)
	}
}

func TestFontsFaceCache(t *testing.T) {
	f, err := DefaultFonts()
	if err != nil {
		t.Fatalf("DefaultFonts: %v", err)
	}
	a, err := f.Face(20)
	if err != nil {
		t.Fatalf("Face: %v", err)
	}
	b, _ := f.Face(20.01)
	if a != b {
		t.Fatal("nearby sizes did not share a face")
	}
	if _, err := f.Face(0); err == nil {
		t.Fatal("expected error for zero size")
	}
	if _, err := LoadFonts(t.TempDir() + "/missing.ttf"); err == nil {
		t.Fatal("expected error for missing font")
	}
}
