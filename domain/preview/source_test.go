package preview

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestJPEGSource_DecodesFile(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			src.Set(x, y, color.RGBA{200, 40, 40, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "live.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := jpeg.Encode(f, src, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	img, err := JPEGSource{Path: path}.Grab()
	if err != nil {
		t.Fatalf("grab: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 8 {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	r, _, _, _ := img.At(8, 4).RGBA()
	if r>>8 < 150 {
		t.Fatalf("expected a red pixel, got r=%d", r>>8)
	}
}

func TestJPEGSource_MissingFile(t *testing.T) {
	_, err := JPEGSource{Path: filepath.Join(t.TempDir(), "nope.jpg")}.Grab()
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestJPEGSource_EmptyPath(t *testing.T) {
	if _, err := (JPEGSource{}).Grab(); !errors.Is(err, ErrNoFrame) {
		t.Fatalf("expected ErrNoFrame, got %v", err)
	}
}

func TestBlank_Size(t *testing.T) {
	img := Blank(640, 426)
	if img.Bounds() != image.Rect(0, 0, 640, 426) {
		t.Fatalf("unexpected bounds %v", img.Bounds())
	}
	if c := img.RGBAAt(10, 10); c != (color.RGBA{0, 0, 0, 255}) {
		t.Fatalf("expected opaque black, got %v", c)
	}
	if Blank(0, -3).Bounds().Dx() != 1 {
		t.Fatalf("expected 1x1 minimum")
	}
}
