package render

import (
	"fmt"
	"math"
	"os"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Fonts caches faces of one font by size.
type Fonts struct {
	data  []byte
	font  *opentype.Font
	faces sync.Map // map[float64]font.Face
}

var (
	defaultOnce  sync.Once
	defaultFonts *Fonts
	defaultErr   error
)

// DefaultFonts returns the built-in Go Regular font. Go Regular has no emoji,
// so emoji stickers need a font configured with LoadFonts.
func DefaultFonts() (*Fonts, error) {
	defaultOnce.Do(func() {
		defaultFonts, defaultErr = ParseFonts(goregular.TTF)
	})
	return defaultFonts, defaultErr
}

// ParseFonts parses TrueType or OpenType data.
func ParseFonts(data []byte) (*Fonts, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return &Fonts{data: data, font: f}, nil
}

// Data returns the raw font file, for embedding in documents.
func (f *Fonts) Data() []byte { return f.data }

// LoadFonts reads a font file from path.
func LoadFonts(path string) (*Fonts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	f, err := ParseFonts(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Face returns a face at size pixels. Sizes are rounded to a quarter pixel
// so scaled canvases share faces.
func (f *Fonts) Face(size float64) (font.Face, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid font size %g", size)
	}
	size = math.Round(size*4) / 4
	if face, ok := f.faces.Load(size); ok {
		return face.(font.Face), nil
	}
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	actual, _ := f.faces.LoadOrStore(size, face)
	return actual.(font.Face), nil
}
