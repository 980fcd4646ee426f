package model

import (
	"time"
)

// SessionModel tracks how long the preview has been live in the current
// session, the accumulated live time, and the frames received this session.
// It is decoupled from the UI; presenters poll Values() and update views.
// The zero value is ready to use.
type SessionModel struct {
	active       bool
	start        time.Time
	startFrames  uint64
	session      time.Duration
	sessionFrame uint64
	accumulated  time.Duration
}

// SessionValues is a snapshot of the session counters.
type SessionValues struct {
	Session time.Duration
	Total   time.Duration
	Frames  uint64
}

// NewSessionModel returns a pointer to a ready-to-use SessionModel.
func NewSessionModel() *SessionModel { return &SessionModel{} }

// OnTick advances the model from the live flag, the service's running frame
// counter, and the current time. Call it from the presenter loop.
func (m *SessionModel) OnTick(live bool, frames uint64, now time.Time) {
	if m == nil {
		return
	}
	if live {
		if !m.active { // paused -> live
			m.active = true
			m.start = now
			m.startFrames = frames
			m.session = 0
		}
		m.session = now.Sub(m.start)
		if frames >= m.startFrames {
			m.sessionFrame = frames - m.startFrames
		}
	} else if m.active { // live -> paused
		m.session = now.Sub(m.start)
		m.accumulated += m.session
		m.active = false
	}
}

// Values returns the current counters. Total includes the ongoing session.
func (m *SessionModel) Values() SessionValues {
	if m == nil {
		return SessionValues{}
	}
	v := SessionValues{Session: m.session, Total: m.accumulated, Frames: m.sessionFrame}
	if m.active {
		v.Total += m.session
	}
	return v
}
