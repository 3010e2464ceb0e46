package preview

import (
	"image/color"
	"testing"

	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/tool"
)

func TestSynthesizeActiveIsNil(t *testing.T) {
	st := tool.Default()
	if m := Synthesize(mark.Pt(1, 2), st, true, DefaultOptions()); m != nil {
		t.Fatalf("preview during gesture = %v", mark.Describe(m))
	}
	st.SelectSticker("🐀")
	if m := Synthesize(mark.Pt(1, 2), st, true, DefaultOptions()); m != nil {
		t.Fatalf("sticker preview during gesture = %v", mark.Describe(m))
	}
}

func TestSynthesizeCursorRadiusIsBrushWidth(t *testing.T) {
	for _, w := range []float64{2, 6, 11} {
		st := tool.Default()
		st.SetBrushWidth(w)
		m := Synthesize(mark.Pt(10, 20), st, false, DefaultOptions())
		c, ok := m.(*mark.Cursor)
		if !ok {
			t.Fatalf("width %v: preview is %T, want *mark.Cursor", w, m)
		}
		if c.Radius() != w || c.Center() != mark.Pt(10, 20) {
			t.Errorf("width %v: cursor %v", w, mark.Describe(c))
		}
		if c.Color().A != DefaultAlpha {
			t.Errorf("width %v: cursor alpha = %d", w, c.Color().A)
		}
	}
}

func TestSynthesizeSticker(t *testing.T) {
	st := tool.Default()
	st.SelectSticker("🦇")
	st.SetRotation(45)
	m := Synthesize(mark.Pt(50, 50), st, false, DefaultOptions())
	s, ok := m.(*mark.Sticker)
	if !ok {
		t.Fatalf("preview is %T, want *mark.Sticker", m)
	}
	if s.Glyph() != "🦇" || s.Rotation() != 45 || s.At() != mark.Pt(50, 50) || s.Size() != DefaultStickerSize {
		t.Fatalf("sticker preview %v", mark.Describe(s))
	}
	if s.Color().A == 0xff {
		t.Fatal("sticker preview is opaque")
	}
}

func TestGhost(t *testing.T) {
	got := Ghost(color.RGBA{R: 0xff, A: 0xff}, 0x80)
	want := color.RGBA{R: 0x80, A: 0x80}
	if got != want {
		t.Fatalf("Ghost = %v, want %v", got, want)
	}
}
