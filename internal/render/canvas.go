// Package render draws marks onto raster images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"log"
	"math"

	"github.com/srwiley/rasterx"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"github.com/example/stickersketch/internal/mark"
)

var _ = mark.Surface((*Canvas)(nil))

// Canvas is a mark.Surface backed by an RGBA image. Mark coordinates are in
// canvas units and are multiplied by the scale factor when drawn, so one
// drawing can be replayed at several resolutions.
type Canvas struct {
	img        *image.RGBA
	size       image.Point
	scale      float64
	background color.RGBA
	fonts      *Fonts
	dasher     *rasterx.Dasher
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithScale sets the pixels per canvas unit. Values <= 0 are ignored.
func WithScale(s float64) Option {
	return func(c *Canvas) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithBackground sets the color Clear fills with.
func WithBackground(bg color.RGBA) Option { return func(c *Canvas) { c.background = bg } }

// WithFonts sets the font used for sticker glyphs.
func WithFonts(f *Fonts) Option { return func(c *Canvas) { c.fonts = f } }

// NewCanvas returns a canvas of size canvas units, cleared to the background.
func NewCanvas(size image.Point, opts ...Option) *Canvas {
	c := &Canvas{
		size:       size,
		scale:      1,
		background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
	for _, o := range opts {
		o(c)
	}
	w := int(math.Ceil(float64(size.X) * c.scale))
	h := int(math.Ceil(float64(size.Y) * c.scale))
	c.img = image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, c.img, c.img.Bounds())
	c.dasher = rasterx.NewDasher(w, h, scanner)
	c.Clear()
	return c
}

// Image returns the backing image. It changes on every draw call.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Snapshot returns a copy of the backing image.
func (c *Canvas) Snapshot() *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	copy(out.Pix, c.img.Pix)
	return out
}

// Size returns the canvas size in canvas units.
func (c *Canvas) Size() image.Point { return c.size }

// Scale returns the pixels per canvas unit.
func (c *Canvas) Scale() float64 { return c.scale }

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.background), image.Point{}, draw.Src)
}

// DrawPolyline strokes pts with round caps and joins. Repeated samples are
// skipped; a polyline that never leaves its first point draws nothing.
func (c *Canvas) DrawPolyline(pts []mark.Point, width float64, col color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	d := c.dasher
	d.Clear()
	d.SetStroke(fixed.Int26_6(width*c.scale*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	d.SetColor(col)
	prev := c.toFixed(pts[0])
	d.Start(prev)
	moved := false
	for _, p := range pts[1:] {
		fp := c.toFixed(p)
		if fp == prev {
			continue
		}
		d.Line(fp)
		prev = fp
		moved = true
	}
	if !moved {
		d.Clear()
		return
	}
	d.Stop(false)
	d.Draw()
	d.Clear()
}

// FillDisc fills a circle of radius canvas units around center.
func (c *Canvas) FillDisc(center mark.Point, radius float64, col color.Color) {
	if radius <= 0 {
		return
	}
	f := &c.dasher.Filler
	f.Clear()
	f.SetColor(col)
	rasterx.AddCircle(center.X*c.scale, center.Y*c.scale, radius*c.scale, f)
	f.Draw()
	f.Clear()
}

// DrawGlyphRotated draws glyph centred on at, rotated clockwise by angle
// degrees about that point.
func (c *Canvas) DrawGlyphRotated(glyph string, at mark.Point, angle, size float64, col color.Color) {
	if glyph == "" || size <= 0 {
		return
	}
	fonts := c.fonts
	if fonts == nil {
		var err error
		if fonts, err = DefaultFonts(); err != nil {
			log.Printf("sticker font: %v", err)
			return
		}
	}
	face, err := fonts.Face(size * c.scale)
	if err != nil {
		log.Printf("sticker %q: %v", glyph, err)
		return
	}
	tile := GlyphTile(face, glyph, col)
	if tile == nil {
		return
	}
	cx := float64(tile.Bounds().Dx()) / 2
	cy := float64(tile.Bounds().Dy()) / 2
	ax, ay := at.X*c.scale, at.Y*c.scale
	sin, cos := math.Sincos(angle * math.Pi / 180)
	m := f64.Aff3{
		cos, -sin, ax - cos*cx + sin*cy,
		sin, cos, ay - sin*cx - cos*cy,
	}
	xdraw.BiLinear.Transform(c.img, m, tile, tile.Bounds(), xdraw.Over, nil)
}

// GlyphTile renders s into a transparent image cropped to its ink bounds.
// It returns nil when s has no visible ink.
func GlyphTile(face font.Face, s string, col color.Color) *image.RGBA {
	b, _ := font.BoundString(face, s)
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if r.Empty() {
		return nil
	}
	tile := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	d := &font.Drawer{
		Dst:  tile,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(-r.Min.X, -r.Min.Y),
	}
	d.DrawString(s)
	return tile
}

func (c *Canvas) toFixed(p mark.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X*c.scale, p.Y*c.scale)
}
