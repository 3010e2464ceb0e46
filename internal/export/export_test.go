package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/example/stickersketch/internal/mark"
)

var black = color.RGBA{A: 0xff}

func sample() []mark.Mark {
	s, pen := mark.NewStroke(mark.Pt(10, 128), 6, black)
	pen.Append(mark.Pt(246, 128))
	pen.Close()
	return []mark.Mark{s, mark.NewSticker(mark.Pt(128, 60), "A", 30, 32, black)}
}

func TestPNGScaledSize(t *testing.T) {
	var buf bytes.Buffer
	if err := PNG(&buf, sample(), DefaultOptions()); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 1024, 1024) {
		t.Fatalf("bounds = %v, want 1024x1024", got)
	}
	r, g, b, _ := img.At(512, 512).RGBA()
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("stroke pixel = %v,%v,%v, want black", r, g, b)
	}
	r, _, _, _ = img.At(512, 1000).RGBA()
	if r != 0xffff {
		t.Fatal("background pixel not white")
	}
}

func TestRasterTransparentBackground(t *testing.T) {
	img := Raster(nil, Options{Size: image.Pt(4, 4), Scale: 1})
	if got := img.RGBAAt(1, 1); got != (color.RGBA{}) {
		t.Fatalf("pixel = %v, want transparent", got)
	}
}

func TestRasterDoesNotAliasInput(t *testing.T) {
	marks := sample()
	Raster(marks, DefaultOptions())
	if len(marks) != 2 {
		t.Fatal("Raster changed its input")
	}
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(&buf, sample(), DefaultOptions()); err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:min(16, buf.Len())])
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "sub/out.pdf"} {
		path, err := Save(filepath.Join(dir, name), sample(), DefaultOptions())
		if err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
		if st, err := os.Stat(path); err != nil || st.Size() == 0 {
			t.Fatalf("Save(%s) wrote nothing: %v", name, err)
		}
	}
	if _, err := Save(filepath.Join(dir, "out.gif"), sample(), DefaultOptions()); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("Save(gif) err = %v, want ErrUnknownFormat", err)
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)
	got := Filename("/tmp/sketches", "png", now)
	if got != "/tmp/sketches/sketch-20240305-140709.png" {
		t.Fatalf("Filename = %q", got)
	}
	if got := Filename("", ".pdf", now); !strings.HasSuffix(got, ".pdf") || strings.Contains(got, "/") {
		t.Fatalf("Filename without dir = %q", got)
	}
}
