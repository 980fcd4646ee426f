package images

import (
	"image"
	"sync"
)

// Reusable RGBA buffers for composed preview frames. Every repaint copies the
// latest camera frame so the border can be drawn without touching the shared
// snapshot; pooling keeps those copies from piling up at 20 fps.
//
// Usage: AcquireFrame(rect) returns a *image.RGBA whose Pix length is exactly
// rect area * 4. Call RecycleFrame once the PNG has been encoded.

var framePool sync.Pool // stores *image.RGBA

// AcquireFrame returns a reusable RGBA image sized to rect. Pixel contents are
// undefined; callers overwrite them.
func AcquireFrame(rect image.Rectangle) *image.RGBA {
	w, h := rect.Dx(), rect.Dy()
	if w <= 0 || h <= 0 {
		return &image.RGBA{Rect: rect}
	}
	needed := w * h * 4
	var img *image.RGBA
	if v := framePool.Get(); v != nil {
		img = v.(*image.RGBA)
	}
	if img == nil || cap(img.Pix) < needed {
		img = &image.RGBA{Pix: make([]byte, needed), Stride: w * 4, Rect: rect}
	} else {
		img.Stride = w * 4
		img.Rect = rect
		img.Pix = img.Pix[:needed]
	}
	return img
}

// RecycleFrame returns the frame to the pool for potential reuse. The frame
// must no longer be accessed by the caller after invoking RecycleFrame.
func RecycleFrame(img *image.RGBA) {
	if img == nil || img.Pix == nil {
		return
	}
	framePool.Put(img)
}
