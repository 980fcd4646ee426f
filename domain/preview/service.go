package preview

import (
	"errors"
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

const (
	// DefaultFrameInterval gives around 20 fps without overloading the machine.
	DefaultFrameInterval = 50 * time.Millisecond
	DefaultFPSInterval   = time.Second
)

type service struct {
	source      FrameSource
	logger      *slog.Logger
	interval    time.Duration
	fpsInterval time.Duration

	mu      sync.Mutex // guards done across Start/Stop
	done    chan struct{}
	running atomic.Bool

	latest    atomic.Pointer[FrameSnapshot]
	frames    atomic.Uint64
	skipped   atomic.Uint64
	grabNanos atomic.Uint64
	sequence  atomic.Uint64
	fpsBits   atomic.Uint64 // last fps sample as float64 bits
	window    atomic.Uint64 // frames since the last fps sample
}

// Options configures a preview service.
type Options struct {
	Source        FrameSource
	Logger        *slog.Logger
	FrameInterval time.Duration
	FPSInterval   time.Duration
}

func newService(opts Options) *service {
	s := &service{source: opts.Source, logger: opts.Logger, interval: opts.FrameInterval, fpsInterval: opts.FPSInterval}
	if s.interval <= 0 {
		s.interval = DefaultFrameInterval
	}
	if s.fpsInterval <= 0 {
		s.fpsInterval = DefaultFPSInterval
	}
	return s
}

// NewService constructs a preview service. It is idle until Start.
func NewService(opts Options) Service {
	return newService(opts)
}

func (s *service) Live() bool { return s.running.Load() }

func (s *service) LatestFrame() FrameSnapshot {
	snap := s.latest.Load()
	if snap == nil {
		return FrameSnapshot{}
	}
	return *snap
}

func (s *service) Stats() Stats {
	frames := s.frames.Load()
	total := s.grabNanos.Load()
	var avg time.Duration
	if frames > 0 && total > 0 {
		avg = time.Duration(total / frames)
	}
	fps := 0.0
	if s.running.Load() {
		fps = math.Float64frombits(s.fpsBits.Load())
	}
	snapshot := s.LatestFrame()
	age := time.Duration(0)
	if !snapshot.CapturedAt.IsZero() {
		age = time.Since(snapshot.CapturedAt)
	}
	return Stats{
		Frames:         frames,
		Skipped:        s.skipped.Load(),
		FPS:            fps,
		AvgGrab:        avg,
		LastFrame:      snapshot.CapturedAt,
		LatestFrameAge: age,
		Sequence:       snapshot.Sequence,
	}
}

// Start grabs one frame synchronously, so a broken source fails here rather
// than in the background, then starts the preview loop. Idempotent.
func (s *service) Start() error {
	if s.source == nil {
		return errors.New("preview: no frame source")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return nil
	}
	if err := s.grab(); err != nil {
		return err
	}
	s.window.Store(0)
	s.fpsBits.Store(0)
	s.done = make(chan struct{})
	s.running.Store(true)
	go s.loop(s.done)
	if s.logger != nil {
		s.logger.Info("preview started", "source", s.source.Name(), "interval", s.interval)
	}
	return nil
}

// Stop ends the preview loop. Idempotent.
func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return
	}
	close(s.done)
	s.running.Store(false)
	if s.logger != nil {
		s.logger.Info("preview stopped")
	}
}

func (s *service) loop(done <-chan struct{}) {
	frameTicker := time.NewTicker(s.interval)
	defer frameTicker.Stop()
	fpsTicker := time.NewTicker(s.fpsInterval)
	defer fpsTicker.Stop()
	lastSample := time.Now()
	for {
		select {
		case <-done:
			return
		case <-frameTicker.C:
			if err := s.grab(); err != nil && s.logger != nil {
				s.logger.Error("preview grab", "source", s.source.Name(), "error", err)
			}
		case now := <-fpsTicker.C:
			s.sampleFPS(now.Sub(lastSample))
			lastSample = now
		}
	}
}

func (s *service) grab() error {
	start := time.Now()
	img, err := s.source.Grab()
	if err != nil || img == nil {
		s.skipped.Add(1)
		if err == nil {
			err = ErrNoFrame
		}
		return err
	}
	s.grabNanos.Add(uint64(time.Since(start).Nanoseconds()))
	s.frames.Add(1)
	s.window.Add(1)
	seq := s.sequence.Add(1)
	s.latest.Store(&FrameSnapshot{Image: img, CapturedAt: time.Now(), Sequence: seq})
	return nil
}

func (s *service) sampleFPS(elapsed time.Duration) {
	n := s.window.Swap(0)
	fps := 0.0
	if elapsed > 0 {
		fps = float64(n) / elapsed.Seconds()
	}
	s.fpsBits.Store(math.Float64bits(fps))
	if s.logger != nil {
		s.logger.Debug("preview.fps", "fps", fps, "frames", n, "skipped", s.skipped.Load())
	}
}
