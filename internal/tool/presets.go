package tool

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DefaultStickers are the glyphs offered on an empty configuration.
var DefaultStickers = []string{"🐀", "🦇", "🐈"}

// DefaultWidths are the preset brush widths, thin first.
var DefaultWidths = []float64{ThinWidth, ThickWidth}

// MaxStickerRunes bounds custom sticker text.
const MaxStickerRunes = 8

// Presets are the widths and stickers offered as buttons. Custom entries are
// added with EnsureWidth and EnsureSticker.
type Presets struct {
	widths   []float64
	stickers []string
}

// NewPresets returns presets seeded with widths and stickers, falling back
// to the defaults for empty lists. Invalid entries are skipped.
func NewPresets(widths []float64, stickers []string) *Presets {
	p := &Presets{}
	if len(widths) == 0 {
		widths = DefaultWidths
	}
	if len(stickers) == 0 {
		stickers = DefaultStickers
	}
	for _, w := range widths {
		if w >= MinWidth {
			p.EnsureWidth(w)
		}
	}
	for _, g := range stickers {
		p.EnsureSticker(g)
	}
	return p
}

// Widths returns a copy of the width presets in ascending order.
func (p *Presets) Widths() []float64 {
	out := make([]float64, len(p.widths))
	copy(out, p.widths)
	return out
}

// Stickers returns a copy of the sticker presets in insertion order.
func (p *Presets) Stickers() []string {
	out := make([]string, len(p.stickers))
	copy(out, p.stickers)
	return out
}

// Thin returns the smallest width preset.
func (p *Presets) Thin() float64 {
	if len(p.widths) == 0 {
		return ThinWidth
	}
	return p.widths[0]
}

// Thick returns the largest width preset.
func (p *Presets) Thick() float64 {
	if len(p.widths) == 0 {
		return ThickWidth
	}
	return p.widths[len(p.widths)-1]
}

// EnsureWidth makes sure width is included in the presets and returns its index.
func (p *Presets) EnsureWidth(width float64) int {
	if width < MinWidth {
		width = MinWidth
	}
	for idx, existing := range p.widths {
		if existing == width {
			return idx
		}
	}
	p.widths = append(p.widths, width)
	sort.Float64s(p.widths)
	return sort.SearchFloat64s(p.widths, width)
}

// EnsureSticker adds glyph to the presets and returns its index, or -1 when
// glyph is not a usable sticker.
func (p *Presets) EnsureSticker(glyph string) int {
	glyph, err := CleanSticker(glyph)
	if err != nil {
		return -1
	}
	for idx, existing := range p.stickers {
		if existing == glyph {
			return idx
		}
	}
	p.stickers = append(p.stickers, glyph)
	return len(p.stickers) - 1
}

// CleanSticker trims s and checks it is short, printable sticker text.
func CleanSticker(s string) (string, error) {
	s = strings.TrimSpace(s)
	switch n := utf8.RuneCountInString(s); {
	case n == 0:
		return "", fmt.Errorf("empty sticker")
	case n > MaxStickerRunes:
		return "", fmt.Errorf("sticker %q longer than %d characters", s, MaxStickerRunes)
	case strings.ContainsAny(s, "\n\r\t"):
		return "", fmt.Errorf("sticker %q contains control characters", s)
	}
	return s, nil
}

// ParseWidths parses a comma or space separated width list.
func ParseWidths(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		w, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid width %q: %w", f, err)
		}
		if w < MinWidth {
			return nil, fmt.Errorf("width %g below minimum %d", w, MinWidth)
		}
		out = append(out, w)
	}
	return out, nil
}

// FormatWidths is the inverse of ParseWidths.
func FormatWidths(ws []float64) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.FormatFloat(w, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
