package tool

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	s := Default()
	if s.BrushWidth != ThinWidth || s.Rotation != 0 || s.Sticker != "" {
		t.Fatalf("Default() = %+v", s)
	}
	if s.Mode() != ModeFreehand {
		t.Fatalf("Default mode = %v", s.Mode())
	}
}

func TestSetBrushWidth(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{6, 6},
		{2.5, 2.5},
		{0, MinWidth},
		{-3, MinWidth},
		{math.NaN(), ThinWidth},
		{math.Inf(1), ThinWidth},
	}
	for _, tc := range tests {
		s := Default()
		s.SetBrushWidth(tc.in)
		if s.BrushWidth != tc.want {
			t.Errorf("SetBrushWidth(%v) -> %v, want %v", tc.in, s.BrushWidth, tc.want)
		}
	}
}

func TestSetRotation(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{45, 45},
		{359.5, 359.5},
		{360, 0},
		{370, 10},
		{-90, 270},
	}
	for _, tc := range tests {
		s := Default()
		s.SetRotation(tc.in)
		if s.Rotation != tc.want {
			t.Errorf("SetRotation(%v) -> %v, want %v", tc.in, s.Rotation, tc.want)
		}
	}
}

func TestStickerSelectionAndPlacement(t *testing.T) {
	s := Default()
	s.SetBrushWidth(6)
	s.SetRotation(30)
	s.SelectSticker("🦇")
	if s.Mode() != ModeSticker {
		t.Fatalf("mode after select = %v", s.Mode())
	}
	s.Placed()
	if s.Mode() != ModeFreehand {
		t.Fatalf("mode after placement = %v", s.Mode())
	}
	if s.BrushWidth != 6 || s.Rotation != 30 {
		t.Fatalf("placement reset width/rotation: %+v", s)
	}
}

func TestPresets(t *testing.T) {
	p := NewPresets(nil, nil)
	if diff := cmp.Diff(DefaultWidths, p.Widths()); diff != "" {
		t.Errorf("widths (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultStickers, p.Stickers()); diff != "" {
		t.Errorf("stickers (-want +got):\n%s", diff)
	}
	if idx := p.EnsureWidth(4); idx != 1 {
		t.Errorf("EnsureWidth(4) = %d, want 1", idx)
	}
	if idx := p.EnsureWidth(4); idx != 1 {
		t.Errorf("EnsureWidth(4) again = %d, want 1", idx)
	}
	if p.Thin() != 2 || p.Thick() != 6 {
		t.Errorf("thin/thick = %v/%v", p.Thin(), p.Thick())
	}
	if idx := p.EnsureSticker(" ★ "); idx != 3 {
		t.Errorf("EnsureSticker(★) = %d, want 3", idx)
	}
	if idx := p.EnsureSticker("🐀"); idx != 0 {
		t.Errorf("EnsureSticker(🐀) = %d, want 0", idx)
	}
	if idx := p.EnsureSticker("   "); idx != -1 {
		t.Errorf("EnsureSticker(blank) = %d, want -1", idx)
	}
}

func TestCleanSticker(t *testing.T) {
	for _, bad := range []string{"", " ", "abcdefghij", "a\tb"} {
		if _, err := CleanSticker(bad); err == nil {
			t.Errorf("CleanSticker(%q) accepted", bad)
		}
	}
	if got, err := CleanSticker(" hi "); err != nil || got != "hi" {
		t.Errorf("CleanSticker(\" hi \") = %q, %v", got, err)
	}
}

func TestParseWidths(t *testing.T) {
	got, err := ParseWidths("2, 4,6.5")
	if err != nil {
		t.Fatalf("ParseWidths: %v", err)
	}
	if diff := cmp.Diff([]float64{2, 4, 6.5}, got); diff != "" {
		t.Fatalf("widths (-want +got):\n%s", diff)
	}
	if s := FormatWidths(got); s != "2,4,6.5" {
		t.Fatalf("FormatWidths = %q", s)
	}
	if _, err := ParseWidths("2,x"); err == nil {
		t.Fatal("expected error for invalid width")
	}
	if _, err := ParseWidths("0.5"); err == nil {
		t.Fatal("expected error for width below minimum")
	}
}
