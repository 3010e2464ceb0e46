package appstate

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// paint draws the whole window into dst.
func (c *controller) paint(dst *image.RGBA) {
	th := c.theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)
	draw.Draw(dst, c.layout.toolbar, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	for i, b := range c.buttons {
		b.Draw(dst, c.toolButton(i).state(i == c.hover))
	}

	img := c.surface.Image()
	draw.Draw(dst, c.layout.canvas, img, img.Bounds().Min, draw.Src)
	drawRect(dst, c.layout.canvas.Inset(-1), th.CanvasBorder, 1)

	draw.Draw(dst, c.layout.status, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(th.Foreground),
		Face: face,
		Dot:  fixed.P(c.layout.status.Min.X+margin, c.layout.status.Min.Y+(statusHeight+face.Ascent-face.Descent)/2),
	}
	d.DrawString(c.status())
}
