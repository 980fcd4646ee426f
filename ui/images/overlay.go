package images

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/soocke/rti-acquire/domain/selection"
)

// DrawSelection paints the selection border onto dst, clipped to its bounds.
// The border lies in the margin band outside area and never covers the
// interior. A hidden selection draws nothing.
func DrawSelection(dst draw.Image, area selection.Rect, visible bool, width int, c color.Color) {
	if dst == nil {
		return
	}
	src := image.NewUniform(c)
	b := dst.Bounds()
	for _, strip := range selection.BorderRects(area, visible, width) {
		r := strip.ImageRect().Intersect(b)
		if r.Empty() {
			continue
		}
		draw.Draw(dst, r, src, image.Point{}, draw.Src)
	}
}

// Compose copies frame into a pooled buffer and draws the selection on top.
// The caller must RecycleFrame the result after use.
func Compose(frame image.Image, area selection.Rect, visible bool, width int, c color.Color) *image.RGBA {
	if frame == nil {
		return nil
	}
	b := frame.Bounds()
	out := AcquireFrame(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), frame, b.Min, draw.Src)
	DrawSelection(out, area, visible, width, c)
	return out
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("invalid colour %q", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return c, nil
}
