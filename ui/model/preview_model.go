package model

import "sync/atomic"

// PreviewModel tracks whether the live preview is running. The zero value is paused and usable.
// Concurrency-safe via atomic Bool because UI callbacks and presenter ticks may race.
type PreviewModel struct{ live atomic.Bool }

// Live reports whether the preview is live.
func (m *PreviewModel) Live() bool {
	if m == nil {
		return false
	}
	return m.live.Load()
}

// SetLive stores the live flag.
func (m *PreviewModel) SetLive(b bool) {
	if m == nil {
		return
	}
	m.live.Store(b)
}
