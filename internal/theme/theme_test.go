package theme

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	in := `
# comment
Name: Custom
Canvas: #102030
Ink: red
PreviewAlpha: 200
Unknown: #000000
`
	th, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if th.Name != "Custom" {
		t.Errorf("Name = %q", th.Name)
	}
	if th.Canvas != (color.RGBA{0x10, 0x20, 0x30, 0xff}) {
		t.Errorf("Canvas = %v", th.Canvas)
	}
	if th.Ink != (color.RGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("Ink = %v", th.Ink)
	}
	if th.PreviewAlpha != 200 {
		t.Errorf("PreviewAlpha = %d", th.PreviewAlpha)
	}
	if th.Background != Default().Background {
		t.Errorf("unset field changed: %v", th.Background)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"Ink: 123456", "Ink: #12345", "PreviewAlpha: 300"} {
		if _, err := Parse(strings.NewReader(in)); err == nil {
			t.Errorf("Parse(%q) accepted", in)
		}
	}
}

func TestFieldsRoundTrip(t *testing.T) {
	th := Default()
	th.Ink = color.RGBA{1, 2, 3, 4}
	th2, err := Parse(strings.NewReader(strings.Join(th.Fields(), "\n")))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(th, th2); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestEmbeddedThemesParse(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no embedded themes")
	}
	l := &Loader{}
	for _, name := range names {
		th, err := l.Load(name)
		if err != nil {
			t.Errorf("Load(%s): %v", name, err)
			continue
		}
		if th.Name == "" || th.PreviewAlpha == 0 {
			t.Errorf("theme %s incomplete: %+v", name, th)
		}
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "mine.theme"), []byte("Name: Mine\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := &Loader{ConfigDir: dir, Inline: map[string]*Theme{"inline": {Name: "Inline"}}}

	for name, want := range map[string]string{
		"":                               "Default",
		"inline":                         "Inline",
		"mine":                           "Mine",
		"Dark":                           "Dark",
		filepath.Join(dir, "mine.theme"): "Mine",
	} {
		th, err := l.Load(name)
		if err != nil {
			t.Errorf("Load(%q): %v", name, err)
			continue
		}
		if th.Name != want {
			t.Errorf("Load(%q).Name = %q, want %q", name, th.Name, want)
		}
	}
	if _, err := l.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load(nope) err = %v, want ErrNotFound", err)
	}
}
