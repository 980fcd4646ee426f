package selection

import (
	"image"
	"log/slog"
)

// Overlay is the pointer-driven selection state machine. It is not safe for
// concurrent use; the owning UI thread feeds it every event.
type Overlay struct {
	area       Rect
	visible    bool
	state      State
	activeEdge Edge
	dragOffset image.Point
	cursor     CursorKind

	borderWidth     int
	cornerTolerance int
	logger          *slog.Logger

	redrawListeners []RedrawListener
	cursorListeners []CursorListener
}

// NewOverlay returns an overlay in StateWait showing opts.Initial.
func NewOverlay(opts Options) *Overlay {
	bw := opts.BorderWidth
	if bw <= 0 {
		bw = DefaultBorderWidth
	}
	tol := opts.CornerTolerance
	if tol <= 0 {
		tol = DefaultCornerTolerance
	}
	return &Overlay{
		area:            opts.Initial.Normalise(),
		visible:         true,
		state:           StateWait,
		borderWidth:     bw,
		cornerTolerance: tol,
		logger:          opts.Logger,
	}
}

func (o *Overlay) Area() Rect              { return o.area }
func (o *Overlay) Visible() bool           { return o.visible }
func (o *Overlay) State() State            { return o.state }
func (o *Overlay) ActiveEdge() Edge        { return o.activeEdge }
func (o *Overlay) BorderWidth() int        { return o.borderWidth }
func (o *Overlay) CornerTolerance() int    { return o.cornerTolerance }
func (o *Overlay) DragOffset() image.Point { return o.dragOffset }

// OnRedraw registers a listener fired synchronously when area or visibility change.
func (o *Overlay) OnRedraw(l RedrawListener) {
	if l != nil {
		o.redrawListeners = append(o.redrawListeners, l)
	}
}

// OnCursor registers a listener fired synchronously when the cursor directive changes.
func (o *Overlay) OnCursor(l CursorListener) {
	if l != nil {
		o.cursorListeners = append(o.cursorListeners, l)
	}
}

// HandleEvent applies one pointer event and reports whether a repaint is
// needed and which cursor to show. Events with no matching rule are no-ops.
func (o *Overlay) HandleEvent(ev Event) Result {
	var redraw bool
	switch ev.Kind {
	case EventPress:
		redraw = o.press(ev.X, ev.Y)
	case EventMotion:
		redraw = o.motion(ev.X, ev.Y)
	case EventRelease:
		o.release()
	default:
		return Result{Cursor: o.cursor}
	}
	cursor := o.cursorAt(ev.X, ev.Y)
	if redraw {
		o.emitRedraw()
	}
	o.setCursor(cursor)
	return Result{Redraw: redraw, Cursor: cursor}
}

// Clear hides the selection and returns to StateWait.
func (o *Overlay) Clear() {
	o.transition(StateWait)
	if !o.visible {
		return
	}
	o.visible = false
	o.emitRedraw()
}

// SetArea replaces the selection with r, normalised, and shows it.
func (o *Overlay) SetArea(r Rect) {
	r = r.Normalise()
	if r == o.area && o.visible {
		return
	}
	o.area = r
	o.visible = true
	o.emitRedraw()
}

// band is the area grown by twice the border width: the zone in which a
// press outside the area starts a resize.
func (o *Overlay) band() Rect { return o.area.MarginAdjust(2 * o.borderWidth) }

func (o *Overlay) press(x, y int) bool {
	if o.state != StateWait {
		return false
	}
	switch {
	case o.visible && o.area.IncludesPoint(x, y):
		o.dragOffset = offset(x, y, image.Pt(o.area.Left, o.area.Top))
		o.transition(StateDrag)
		return false
	case o.visible && o.band().IncludesPoint(x, y):
		o.activeEdge = o.area.WhichCorner(o.cornerTolerance, x, y)
		cx, cy := o.area.Corner(o.activeEdge).Centre()
		o.dragOffset = offset(x, y, image.Pt(cx, cy))
		o.transition(StateResize)
		return false
	case o.visible:
		o.visible = false
		if o.logger != nil {
			o.logger.Debug("selection hidden", "x", x, "y", y)
		}
		return true
	default:
		o.area = Rect{Left: x, Top: y, Width: 1, Height: 1}
		o.visible = true
		o.activeEdge = EdgeSE
		o.dragOffset = image.Pt(1, 1)
		o.transition(StateResize)
		return true
	}
}

func (o *Overlay) motion(x, y int) bool {
	switch o.state {
	case StateDrag:
		o.area.Left = x - o.dragOffset.X
		o.area.Top = y - o.dragOffset.Y
		return true
	case StateResize:
		o.resize(x, y)
		return true
	default:
		return false
	}
}

func (o *Overlay) resize(x, y int) {
	px, py := x-o.dragOffset.X, y-o.dragOffset.Y
	e := o.activeEdge
	if e.MovesRight() {
		o.area.Width = px - o.area.Left
	}
	if e.MovesLeft() {
		right := o.area.Right()
		o.area.Left = px
		o.area.Width = right - px
	}
	if e.MovesBottom() {
		o.area.Height = py - o.area.Top
	}
	if e.MovesTop() {
		bottom := o.area.Bottom()
		o.area.Top = py
		o.area.Height = bottom - py
	}
	o.area = o.area.Normalise()
}

func (o *Overlay) release() {
	if o.state == StateWait {
		return
	}
	o.transition(StateWait)
	if o.logger != nil {
		o.logger.Debug("selection settled", "area", o.area.String())
	}
}

// cursorAt is the directive for the current state with the pointer at (x, y).
func (o *Overlay) cursorAt(x, y int) CursorKind {
	switch o.state {
	case StateDrag:
		return CursorMove
	case StateResize:
		return CursorFor(o.activeEdge)
	default:
		if !o.visible {
			return CursorDefault
		}
		if o.area.IncludesPoint(x, y) {
			return CursorMove
		}
		if o.band().IncludesPoint(x, y) {
			return CursorFor(o.area.WhichCorner(o.cornerTolerance, x, y))
		}
		return CursorDefault
	}
}

func (o *Overlay) transition(next State) {
	prev := o.state
	if prev == next {
		return
	}
	o.state = next
	if o.logger != nil {
		o.logger.Debug("selection state transition", "from", prev.String(), "to", next.String(), "edge", o.activeEdge.String())
	}
}

func (o *Overlay) emitRedraw() {
	for _, l := range o.redrawListeners {
		l(o.area, o.visible)
	}
}

func (o *Overlay) setCursor(c CursorKind) {
	if c == o.cursor {
		return
	}
	o.cursor = c
	for _, l := range o.cursorListeners {
		l(c)
	}
}

func offset(x, y int, from image.Point) image.Point {
	return image.Pt(x-from.X, y-from.Y)
}

// Ensure contract satisfaction
var _ Contract = (*Overlay)(nil)
