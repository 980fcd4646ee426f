package selection

import "log/slog"

// Default configuration values in widget pixels.
const (
	DefaultBorderWidth     = 3
	DefaultCornerTolerance = 15
)

// State enumerates the interaction modes of the overlay.
type State int

const (
	StateWait State = iota
	StateDrag
	StateResize
)

func (s State) String() string {
	switch s {
	case StateWait:
		return "wait"
	case StateDrag:
		return "drag"
	case StateResize:
		return "resize"
	default:
		return "unknown"
	}
}

// EventKind identifies a pointer event.
type EventKind int

const (
	EventPress EventKind = iota + 1
	EventMotion
	EventRelease
)

func (k EventKind) String() string {
	switch k {
	case EventPress:
		return "press"
	case EventMotion:
		return "motion"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event is a pointer event in widget-local pixel coordinates.
type Event struct {
	Kind EventKind
	X, Y int
}

func Press(x, y int) Event   { return Event{Kind: EventPress, X: x, Y: y} }
func Motion(x, y int) Event  { return Event{Kind: EventMotion, X: x, Y: y} }
func Release(x, y int) Event { return Event{Kind: EventRelease, X: x, Y: y} }

// Result tells the host what to do after an event.
type Result struct {
	Redraw bool
	Cursor CursorKind
}

// Options configures an Overlay. Zero BorderWidth and CornerTolerance fall
// back to the defaults.
type Options struct {
	BorderWidth     int
	CornerTolerance int
	Initial         Rect
	Logger          *slog.Logger
}

// RedrawListener is called with the current area and visibility whenever
// either changes.
type RedrawListener func(area Rect, visible bool)

// CursorListener is called when the cursor directive changes.
type CursorListener func(CursorKind)

// AreaSource is the read-only view of the overlay used by downstream
// consumers such as a crop step.
type AreaSource interface {
	Area() Rect
	Visible() bool
}

// EventHandler is the single entry point a host event loop drives.
type EventHandler interface {
	HandleEvent(Event) Result
}

// Contract aggregates the overlay operations used by presenters.
type Contract interface {
	AreaSource
	EventHandler
	State() State
	ActiveEdge() Edge
	Clear()
	SetArea(Rect)
	OnRedraw(RedrawListener)
	OnCursor(CursorListener)
}
