package preview

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/vova616/screenshot"
)

// ErrNoFrame is returned by a source that has nothing to show yet.
var ErrNoFrame = errors.New("preview: no frame available")

// ScreenSource grabs the screen, or a region of it, as preview frames. It
// stands in for the camera's live view when no camera is attached.
type ScreenSource struct {
	Region image.Rectangle // empty means the whole screen
}

func (s ScreenSource) Name() string { return "screen" }

func (s ScreenSource) Grab() (*image.RGBA, error) {
	if !s.Region.Empty() {
		img, err := screenshot.CaptureRect(s.Region)
		if err != nil {
			return nil, fmt.Errorf("capture region %v: %w", s.Region, err)
		}
		return img, nil
	}
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return img, nil
}

// JPEGSource decodes a JPEG file on every grab. Cameras that dump their live
// view to disk rewrite the same file, so each grab sees the newest frame.
type JPEGSource struct {
	Path string
}

func (s JPEGSource) Name() string { return "jpeg" }

func (s JPEGSource) Grab() (*image.RGBA, error) {
	if s.Path == "" {
		return nil, ErrNoFrame
	}
	img, err := imaging.Open(s.Path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path, err)
	}
	return toRGBA(img), nil
}

// Blank returns a black frame, shown before the first real frame arrives.
func Blank(w, h int) *image.RGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Black, image.Point{}, draw.Src)
	return img
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
