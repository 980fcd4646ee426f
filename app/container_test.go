package app

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/rti-acquire/config"
	"github.com/soocke/rti-acquire/domain/preview"
	"github.com/soocke/rti-acquire/domain/selection"
)

func TestFrameSource_FollowsConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if _, ok := frameSource(cfg).(preview.ScreenSource); !ok {
		t.Fatalf("default config should use the screen source")
	}
	cfg.Source = config.SourceJPEG
	cfg.JPEGPath = "/tmp/live.jpg"
	src, ok := frameSource(cfg).(preview.JPEGSource)
	if !ok || src.Path != "/tmp/live.jpg" {
		t.Fatalf("expected jpeg source for %q, got %#v", cfg.JPEGPath, frameSource(cfg))
	}
	cfg.Source = config.SourceGDI
	if _, ok := frameSource(cfg).(preview.GDISource); !ok {
		t.Fatalf("expected gdi source")
	}
}

func TestBorderColor_FallsBackToTheme(t *testing.T) {
	want := color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
	if got := borderColor("not-a-colour", nil); got != want {
		t.Fatalf("expected fallback %v, got %v", want, got)
	}
	if got := borderColor("#00ff00", nil); got != (color.RGBA{G: 0xff, A: 0xff}) {
		t.Fatalf("unexpected colour %v", got)
	}
}

func TestBuildContainer_WiresOverlayFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	c := BuildContainer(cfg, nil, "")
	if c.Overlay.Area() != selection.NewRect(160, 106, 320, 213) {
		t.Fatalf("overlay should start at the configured selection, got %v", c.Overlay.Area())
	}
	if c.Overlay.BorderWidth() != cfg.BorderWidth || c.Overlay.CornerTolerance() != cfg.CornerTolerance {
		t.Fatalf("overlay options not taken from config")
	}
	if c.Blank.Bounds() != image.Rect(0, 0, 640, 426) {
		t.Fatalf("unexpected blank frame %v", c.Blank.Bounds())
	}
	r, ok := c.SelectionPresenter.Selection()
	if !ok || r != image.Rect(160, 106, 480, 319) {
		t.Fatalf("unexpected selection %v ok=%v", r, ok)
	}
	if c.PreviewSvc.Live() || c.Preview.Live() {
		t.Fatalf("preview should start paused")
	}
}
