package notify

import (
	"errors"
	"image"
	"os"
	"testing"

	"github.com/example/stickersketch/internal/platform"
)

type sent struct {
	title, body string
	opts        platform.Options
	iconExisted bool
}

func recorder(n *Notifier, out *[]sent, err error) {
	n.send = func(title, body string, opts platform.Options) error {
		s := sent{title: title, body: body, opts: opts}
		if opts.IconPath != "" {
			_, statErr := os.Stat(opts.IconPath)
			s.iconExisted = statErr == nil
		}
		*out = append(*out, s)
		return err
	}
}

func TestDisabledEventsAreSilent(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences())
	recorder(n, &got, nil)
	n.Save("/tmp/a.png")
	n.Copy("drawing", nil)
	if len(got) != 0 {
		t.Fatalf("sent %d notifications while disabled", len(got))
	}
	var nilNotifier *Notifier
	nilNotifier.Save("x")
	nilNotifier.Enable(EventSave, true)
}

func TestSaveAndCopy(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences())
	recorder(n, &got, nil)
	n.Enable(EventSave, true)
	n.Enable(EventCopy, true)

	n.Save("/tmp/sketch.png")
	n.Save("/tmp/sketch.pdf")
	n.Copy("", image.NewRGBA(image.Rect(0, 0, 2, 2)))

	if len(got) != 3 {
		t.Fatalf("sent %d notifications, want 3", len(got))
	}
	if got[0].body != "Saved /tmp/sketch.png" || got[0].opts.IconPath != "/tmp/sketch.png" {
		t.Errorf("png save = %+v", got[0])
	}
	if got[1].opts.IconPath != "" {
		t.Errorf("pdf save used icon %q", got[1].opts.IconPath)
	}
	if got[2].body != "Copied drawing to clipboard" || !got[2].iconExisted {
		t.Errorf("copy = %+v", got[2])
	}
	if _, err := os.Stat(got[2].opts.IconPath); !os.IsNotExist(err) {
		t.Errorf("icon %s not removed", got[2].opts.IconPath)
	}
	if got[0].title != "StickerSketch" {
		t.Errorf("title = %q", got[0].title)
	}
}

func TestSendErrorIsLogged(t *testing.T) {
	var got []sent
	n := New(DefaultPreferences())
	recorder(n, &got, errors.New("no bus"))
	n.Enable(EventSave, true)
	n.Save("/tmp/x.png")
	if len(got) != 1 {
		t.Fatalf("sent %d", len(got))
	}
}

func TestLoadPreferences(t *testing.T) {
	t.Setenv("STICKERSKETCH_NOTIFY_TITLE", "Sketch")
	t.Setenv("STICKERSKETCH_NOTIFY_SAVE_TEXT", "Wrote %s")
	p := LoadPreferences()
	if p.Title != "Sketch" || p.Templates[EventSave] != "Wrote %s" || p.Templates[EventCopy] == "" {
		t.Fatalf("prefs = %+v", p)
	}
}
