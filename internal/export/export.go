// Package export replays committed marks into image and document files.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/render"
	"github.com/example/stickersketch/internal/session"
)

const (
	DefaultCanvasSize = 256
	DefaultScale      = 4
)

// ErrUnknownFormat is returned by Save for unsupported file extensions.
var ErrUnknownFormat = errors.New("unknown export format")

// Options control the exported document.
type Options struct {
	// Size is the canvas size in canvas units.
	Size image.Point
	// Scale is the pixels per canvas unit of raster exports.
	Scale float64
	// Background fills the page; the zero value leaves it transparent.
	Background color.RGBA
	// Fonts renders sticker glyphs. Nil uses the built-in font.
	Fonts *render.Fonts
}

// DefaultOptions returns a white 256x256 canvas exported at 4x.
func DefaultOptions() Options {
	return Options{
		Size:       image.Pt(DefaultCanvasSize, DefaultCanvasSize),
		Scale:      DefaultScale,
		Background: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

func (o Options) normalized() Options {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		o.Size = image.Pt(DefaultCanvasSize, DefaultCanvasSize)
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	return o
}

// Raster replays committed onto a new image of Size*Scale pixels. No preview
// is drawn.
func Raster(committed []mark.Mark, opts Options) *image.RGBA {
	opts = opts.normalized()
	ro := []render.Option{render.WithScale(opts.Scale), render.WithBackground(opts.Background)}
	if opts.Fonts != nil {
		ro = append(ro, render.WithFonts(opts.Fonts))
	}
	c := render.NewCanvas(opts.Size, ro...)
	session.Replay(c, committed, nil)
	return c.Image()
}

// PNG writes committed as a PNG image.
func PNG(w io.Writer, committed []mark.Mark, opts Options) error {
	if err := png.Encode(w, Raster(committed, opts)); err != nil {
		return fmt.Errorf("encode PNG: %w", err)
	}
	return nil
}

// PNGBytes returns the PNG encoding of committed, as placed on the clipboard.
func PNGBytes(committed []mark.Mark, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	if err := PNG(&buf, committed, opts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save writes committed to path, choosing PNG or PDF from the extension. It
// returns the absolute path written.
func Save(path string, committed []mark.Mark, opts Options) (string, error) {
	var write func(io.Writer, []mark.Mark, Options) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		write = PNG
	case ".pdf":
		write = PDF
	default:
		return "", fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create output %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Printf("close %s: %v", path, cerr)
		}
	}()
	if err := write(f, committed, opts); err != nil {
		return "", fmt.Errorf("write %q: %w", path, err)
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return path, nil
}

// Filename returns a timestamped file name inside dir with extension ext.
func Filename(dir, ext string, now time.Time) string {
	name := "sketch-" + now.Format("20060102-150405") + "." + strings.TrimPrefix(ext, ".")
	if dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}
