package mark_test

import (
	"image/color"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/example/stickersketch/internal/mark"
	"github.com/example/stickersketch/internal/surfacetest"
)

var ink = color.RGBA{A: 0xff}

func TestStrokeRendersNothingBelowTwoPoints(t *testing.T) {
	s, _ := mark.NewStroke(mark.Pt(5, 5), 2, ink)
	rec := surfacetest.New()
	s.Render(rec)
	if got := rec.Ops(); len(got) != 0 {
		t.Fatalf("single point stroke drew %v", got)
	}
}

func TestStrokeRendersPolylineInOrder(t *testing.T) {
	s, pen := mark.NewStroke(mark.Pt(0, 0), 3, ink)
	pen.Append(mark.Pt(10, 0))
	pen.Append(mark.Pt(10, 10))
	pen.Close()

	rec := surfacetest.New()
	s.Render(rec)
	want := []string{"polyline [(0,0) (10,0) (10,10)] width=3 color=#000000ff"}
	if diff := cmp.Diff(want, rec.Ops()); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}

	// Idempotent.
	rec.Clear()
	s.Render(rec)
	if diff := cmp.Diff(want, rec.Ops()); diff != "" {
		t.Fatalf("second render mismatch (-want +got):\n%s", diff)
	}
}

func TestPointsReturnsCopy(t *testing.T) {
	s, pen := mark.NewStroke(mark.Pt(0, 0), 1, ink)
	pen.Append(mark.Pt(1, 1))
	pts := s.Points()
	pts[0] = mark.Pt(99, 99)
	if got := s.Points()[0]; got != mark.Pt(0, 0) {
		t.Fatalf("stroke mutated through Points copy: %v", got)
	}
}

func TestPenAppendAfterClosePanics(t *testing.T) {
	_, pen := mark.NewStroke(mark.Pt(0, 0), 1, ink)
	pen.Close()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic appending to closed pen")
		}
	}()
	pen.Append(mark.Pt(1, 1))
}

func TestStickerRender(t *testing.T) {
	st := mark.NewSticker(mark.Pt(50, 60), "🐈", 45, 32, ink)
	rec := surfacetest.New()
	st.Render(rec)
	want := []string{`glyph "🐈" at (50,60) angle=45 size=32 color=#000000ff`}
	if diff := cmp.Diff(want, rec.Ops()); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestEmptyStickerRendersNothing(t *testing.T) {
	rec := surfacetest.New()
	mark.NewSticker(mark.Pt(1, 1), "", 0, 32, ink).Render(rec)
	if len(rec.Ops()) != 0 {
		t.Fatalf("empty glyph drew %v", rec.Ops())
	}
}

func TestCursorRender(t *testing.T) {
	rec := surfacetest.New()
	mark.NewCursor(mark.Pt(3, 4), 6, color.RGBA{A: 0x40}).Render(rec)
	want := []string{"disc (3,4) r=6 color=#00000040"}
	if diff := cmp.Diff(want, rec.Ops()); diff != "" {
		t.Fatalf("render mismatch (-want +got):\n%s", diff)
	}
}

func TestFrozenParameters(t *testing.T) {
	type params struct {
		At       mark.Point
		Glyph    string
		Rotation float64
		Size     float64
		Color    color.RGBA
	}
	st := mark.NewSticker(mark.Pt(5, 6), "🦇", 90, 24, ink)
	want := params{At: mark.Pt(5, 6), Glyph: "🦇", Rotation: 90, Size: 24, Color: ink}
	got := params{At: st.At(), Glyph: st.Glyph(), Rotation: st.Rotation(), Size: st.Size(), Color: st.Color()}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("sticker mismatch (-want +got):\n%s", diff)
	}

	c := mark.NewCursor(mark.Pt(1, 2), 3, ink)
	if c.Center() != mark.Pt(1, 2) || c.Radius() != 3 || c.Color() != ink {
		t.Errorf("cursor = %v r=%g %v", c.Center(), c.Radius(), c.Color())
	}
}

func TestIDs(t *testing.T) {
	a, _ := mark.NewStroke(mark.Pt(0, 0), 1, ink)
	b := mark.NewSticker(mark.Pt(0, 0), "x", 0, 10, ink)
	if a.ID() == "" || b.ID() == "" || a.ID() == b.ID() {
		t.Fatalf("bad ids %q %q", a.ID(), b.ID())
	}
	if id := mark.NewCursor(mark.Pt(0, 0), 1, ink).ID(); id != "" {
		t.Fatalf("cursor id = %q", id)
	}
}

func TestDescribe(t *testing.T) {
	s, _ := mark.NewStroke(mark.Pt(0, 0), 2, ink)
	if got := mark.Describe(s); !strings.HasPrefix(got, "stroke ") || !strings.Contains(got, "1 points") {
		t.Errorf("Describe(stroke) = %q", got)
	}
	if got := mark.Describe(nil); got != "none" {
		t.Errorf("Describe(nil) = %q", got)
	}
}
