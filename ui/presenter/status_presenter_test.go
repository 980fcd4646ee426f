package presenter

import (
	"image"
	"testing"
	"time"

	"github.com/soocke/rti-acquire/domain/preview"
	"github.com/soocke/rti-acquire/ui/model"
)

type mockStats struct{ st preview.Stats }

func (m *mockStats) Stats() preview.Stats { return m.st }

type mockSelection struct {
	r  image.Rectangle
	ok bool
}

func (m *mockSelection) Selection() (image.Rectangle, bool) { return m.r, m.ok }

type mockStatusView struct{ texts []string }

func (v *mockStatusView) SetStatus(text string) { v.texts = append(v.texts, text) }

func TestFormatStatus(t *testing.T) {
	got := FormatStatus(true, preview.Stats{FPS: 19.84, Skipped: 3},
		model.SessionValues{Session: 75 * time.Second, Frames: 12345},
		image.Rect(160, 106, 480, 319), true)
	want := "Live | 19.8 fps | 12,345 frames (3 skipped) | session 01:15 | 320x213+160+106"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	got = FormatStatus(false, preview.Stats{}, model.SessionValues{}, image.Rectangle{}, false)
	want = "Paused | 0.0 fps | 0 frames (0 skipped) | session 00:00 | no selection"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestStatusPresenter_PushesOnlyChanges(t *testing.T) {
	live := &mockModel{live: true}
	stats := &mockStats{st: preview.Stats{Frames: 10}}
	sel := &mockSelection{r: image.Rect(0, 0, 10, 10), ok: true}
	view := &mockStatusView{}
	p := NewStatusPresenter(model.NewSessionModel(), live, stats, sel, view)

	base := time.Unix(0, 0)
	p.Tick(base)
	p.Tick(base.Add(100 * time.Millisecond))
	if len(view.texts) != 1 {
		t.Fatalf("unchanged status should be pushed once, got %v", view.texts)
	}
	stats.st.Frames = 30
	p.Tick(base.Add(200 * time.Millisecond))
	if len(view.texts) != 2 {
		t.Fatalf("frame change should push status, got %v", view.texts)
	}
	want := "Live | 0.0 fps | 20 frames (0 skipped) | session 00:00 | 10x10+0+0"
	if view.texts[1] != want {
		t.Fatalf("expected %q, got %q", want, view.texts[1])
	}
}
