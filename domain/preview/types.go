package preview

import (
	"image"
	"time"
)

// FrameSnapshot carries the latest preview frame and metadata.
type FrameSnapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
	Sequence   uint64
}

// Stats summarises preview loop behaviour for the status bar and debug logs.
type Stats struct {
	Frames         uint64
	Skipped        uint64
	FPS            float64
	AvgGrab        time.Duration
	LastFrame      time.Time
	LatestFrameAge time.Duration
	Sequence       uint64
}

// FrameSource produces preview frames. Implementations are called from the
// preview goroutine only.
type FrameSource interface {
	Grab() (*image.RGBA, error)
	Name() string
}

// FrameSourceFunc adapts a function to FrameSource.
type FrameSourceFunc func() (*image.RGBA, error)

func (f FrameSourceFunc) Grab() (*image.RGBA, error) { return f() }
func (f FrameSourceFunc) Name() string               { return "func" }

// Service runs the live preview loop and exposes the latest frame.
type Service interface {
	Start() error
	Stop()
	Live() bool
	LatestFrame() FrameSnapshot
	Stats() Stats
}
