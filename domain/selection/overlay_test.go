package selection

import (
	"log/slog"
	"testing"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTestOverlay(initial Rect) *Overlay {
	return NewOverlay(Options{BorderWidth: 3, CornerTolerance: 15, Initial: initial, Logger: discardLogger})
}

func TestOverlay_InitialState(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, -5, 20))
	if o.State() != StateWait || !o.Visible() {
		t.Fatalf("expected visible wait state, got %v visible=%v", o.State(), o.Visible())
	}
	if o.Area() != NewRect(5, 10, 5, 20) {
		t.Fatalf("initial area should be normalised, got %v", o.Area())
	}
}

func TestOverlay_DefaultsForZeroOptions(t *testing.T) {
	o := NewOverlay(Options{})
	if o.BorderWidth() != DefaultBorderWidth || o.CornerTolerance() != DefaultCornerTolerance {
		t.Fatalf("expected defaults, got border=%d tolerance=%d", o.BorderWidth(), o.CornerTolerance())
	}
}

func TestOverlay_NewSelectionBootstrap(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	o.Clear()
	res := o.HandleEvent(Press(50, 50))
	if o.Area() != NewRect(50, 50, 1, 1) {
		t.Fatalf("expected 1x1 rect at (50,50), got %v", o.Area())
	}
	if o.State() != StateResize || o.ActiveEdge() != EdgeSE || !o.Visible() {
		t.Fatalf("expected visible resize on se, got state=%v edge=%v visible=%v", o.State(), o.ActiveEdge(), o.Visible())
	}
	if !res.Redraw || res.Cursor != CursorBottomRight {
		t.Fatalf("unexpected result %+v", res)
	}
	if off := o.DragOffset(); off.X != 1 || off.Y != 1 {
		t.Fatalf("expected drag offset (1,1), got %v", off)
	}
}

func TestOverlay_ClickOutsideHides(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	res := o.HandleEvent(Press(200, 200))
	if o.Visible() || o.State() != StateWait {
		t.Fatalf("expected hidden wait state, got visible=%v state=%v", o.Visible(), o.State())
	}
	if o.Area() != NewRect(10, 10, 100, 100) {
		t.Fatalf("area changed on hide: %v", o.Area())
	}
	if !res.Redraw {
		t.Fatalf("hiding should request a redraw")
	}
}

func TestOverlay_DragPreservesSize(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	res := o.HandleEvent(Press(50, 50))
	if o.State() != StateDrag || res.Redraw || res.Cursor != CursorMove {
		t.Fatalf("expected drag without redraw, got state=%v res=%+v", o.State(), res)
	}
	moves := [][2]int{{60, 70}, {5, 5}, {300, -20}, {51, 49}}
	for _, m := range moves {
		res = o.HandleEvent(Motion(m[0], m[1]))
		a := o.Area()
		if a.Width != 100 || a.Height != 100 {
			t.Fatalf("drag changed size: %v", a)
		}
		if a.Left != m[0]-40 || a.Top != m[1]-40 {
			t.Fatalf("pointer offset not kept at (%d,%d): %v", m[0], m[1], a)
		}
		if !res.Redraw {
			t.Fatalf("drag motion should request a redraw")
		}
	}
	o.HandleEvent(Release(51, 49))
	if o.State() != StateWait || o.Area() != NewRect(11, 9, 100, 100) {
		t.Fatalf("release should settle in wait, got %v %v", o.State(), o.Area())
	}
}

func TestOverlay_ResizeCrossingNormalises(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	o.Clear()
	o.HandleEvent(Press(50, 50))
	o.HandleEvent(Motion(40, 40))
	a := o.Area()
	if a.Width < 0 || a.Height < 0 {
		t.Fatalf("negative extent after resize: %v", a)
	}
	// anchor (50,50) and dragged corner (39,39) are both inside the box
	if a != NewRect(39, 39, 11, 11) {
		t.Fatalf("expected (39,39,11,11), got %v", a)
	}
}

func TestOverlay_ResizeFromSECorner(t *testing.T) {
	o := newTestOverlay(NewRect(100, 100, 100, 100))
	res := o.HandleEvent(Press(203, 203))
	if o.State() != StateResize || o.ActiveEdge() != EdgeSE {
		t.Fatalf("expected resize on se, got %v %v", o.State(), o.ActiveEdge())
	}
	if res.Redraw {
		t.Fatalf("grabbing a handle should not redraw")
	}
	o.HandleEvent(Motion(253, 233))
	if o.Area() != NewRect(100, 100, 150, 130) {
		t.Fatalf("unexpected area %v", o.Area())
	}
}

func TestOverlay_ResizeWestKeepsRightEdge(t *testing.T) {
	o := newTestOverlay(NewRect(100, 100, 100, 100))
	o.HandleEvent(Press(97, 150))
	if o.ActiveEdge() != EdgeW {
		t.Fatalf("expected w edge, got %v", o.ActiveEdge())
	}
	o.HandleEvent(Motion(57, 170))
	if o.Area() != NewRect(60, 100, 140, 100) {
		t.Fatalf("unexpected area %v", o.Area())
	}
}

func TestOverlay_ResizeNorthKeepsBottomEdge(t *testing.T) {
	o := newTestOverlay(NewRect(100, 100, 100, 100))
	o.HandleEvent(Press(150, 96))
	if o.ActiveEdge() != EdgeN {
		t.Fatalf("expected n edge, got %v", o.ActiveEdge())
	}
	o.HandleEvent(Motion(150, 54))
	if o.Area() != NewRect(100, 58, 100, 142) {
		t.Fatalf("unexpected area %v", o.Area())
	}
}

func TestOverlay_ResizeNoHandleLeavesArea(t *testing.T) {
	o := NewOverlay(Options{BorderWidth: 10, CornerTolerance: 1, Initial: NewRect(100, 100, 100, 100)})
	o.HandleEvent(Press(150, 85))
	if o.State() != StateResize || o.ActiveEdge() != EdgeNone {
		t.Fatalf("expected resize with no edge, got %v %v", o.State(), o.ActiveEdge())
	}
	o.HandleEvent(Motion(10, 10))
	if o.Area() != NewRect(100, 100, 100, 100) {
		t.Fatalf("area moved without a handle: %v", o.Area())
	}
}

func TestOverlay_ReleaseInWaitIsNoop(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	res := o.HandleEvent(Release(50, 50))
	if res.Redraw || o.State() != StateWait || o.Area() != NewRect(10, 10, 100, 100) {
		t.Fatalf("release in wait changed something: %+v %v", res, o.Area())
	}
}

func TestOverlay_HoverCursor(t *testing.T) {
	o := newTestOverlay(NewRect(100, 100, 100, 100))
	var seen []CursorKind
	o.OnCursor(func(c CursorKind) { seen = append(seen, c) })
	if res := o.HandleEvent(Motion(150, 150)); res.Cursor != CursorMove || res.Redraw {
		t.Fatalf("inside: unexpected %+v", res)
	}
	o.HandleEvent(Motion(151, 150))
	if res := o.HandleEvent(Motion(96, 96)); res.Cursor != CursorTopLeft {
		t.Fatalf("band corner: unexpected %+v", res)
	}
	if res := o.HandleEvent(Motion(150, 204)); res.Cursor != CursorBottom {
		t.Fatalf("band side: unexpected %+v", res)
	}
	if res := o.HandleEvent(Motion(400, 400)); res.Cursor != CursorDefault {
		t.Fatalf("outside: unexpected %+v", res)
	}
	want := []CursorKind{CursorMove, CursorTopLeft, CursorBottom, CursorDefault}
	if len(seen) != len(want) {
		t.Fatalf("expected cursor changes %v, got %v", want, seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("expected cursor changes %v, got %v", want, seen)
		}
	}
	if o.Area() != NewRect(100, 100, 100, 100) {
		t.Fatalf("hover mutated area: %v", o.Area())
	}
}

func TestOverlay_HiddenHoverIsDefault(t *testing.T) {
	o := newTestOverlay(NewRect(100, 100, 100, 100))
	o.Clear()
	if res := o.HandleEvent(Motion(150, 150)); res.Cursor != CursorDefault {
		t.Fatalf("hidden selection should not offer move cursor: %+v", res)
	}
}

func TestOverlay_RedrawListener(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	var calls int
	var last Rect
	var lastVisible bool
	o.OnRedraw(func(a Rect, v bool) { calls++; last = a; lastVisible = v })
	o.HandleEvent(Press(50, 50))
	if calls != 0 {
		t.Fatalf("entering drag should not redraw")
	}
	o.HandleEvent(Motion(60, 60))
	if calls != 1 || last != NewRect(20, 20, 100, 100) || !lastVisible {
		t.Fatalf("unexpected redraw: calls=%d last=%v visible=%v", calls, last, lastVisible)
	}
	o.HandleEvent(Release(60, 60))
	o.HandleEvent(Press(500, 500))
	if calls != 2 || lastVisible {
		t.Fatalf("hide should redraw with visible=false: calls=%d visible=%v", calls, lastVisible)
	}
}

func TestOverlay_SetAreaShowsNormalised(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	o.Clear()
	o.SetArea(NewRect(50, 50, -10, -20))
	if !o.Visible() || o.Area() != NewRect(40, 30, 10, 20) {
		t.Fatalf("unexpected area after SetArea: %v visible=%v", o.Area(), o.Visible())
	}
}

func TestOverlay_PressWhileDraggingIsNoop(t *testing.T) {
	o := newTestOverlay(NewRect(10, 10, 100, 100))
	o.HandleEvent(Press(50, 50))
	res := o.HandleEvent(Press(500, 500))
	if res.Redraw || !o.Visible() || o.State() != StateDrag {
		t.Fatalf("second press should be ignored, got %+v visible=%v state=%v", res, o.Visible(), o.State())
	}
}

func TestOverlay_PressOnPaintedBorderResizes(t *testing.T) {
	o := newTestOverlay(NewRect(100, 100, 100, 100))
	var onBorder bool
	for _, s := range BorderRects(o.Area(), true, o.BorderWidth()) {
		if s.Left <= 150 && 150 < s.Right() && s.Top <= 201 && 201 < s.Bottom() {
			onBorder = true
		}
	}
	if !onBorder {
		t.Fatalf("(150,201) should be on the painted bottom border")
	}
	o.HandleEvent(Press(150, 201))
	if o.State() != StateResize || o.ActiveEdge() != EdgeS {
		t.Fatalf("press on the bottom border should resize s, got %v %v", o.State(), o.ActiveEdge())
	}
}
