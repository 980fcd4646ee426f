package selection

import (
	"fmt"
	"image"
)

// Rect is an axis-aligned rectangle with integer coordinates.
// Width and Height may be negative while a resize is in progress; call
// Normalise before treating the rectangle as settled.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// NewRect returns a rectangle with the given origin and extent.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// FromImageRect converts an image.Rectangle into a Rect.
func FromImageRect(r image.Rectangle) Rect {
	return Rect{Left: r.Min.X, Top: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// ImageRect returns the rectangle as an image.Rectangle. The result is
// canonicalised by image.Rect, so negative extents come back normalised.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right(), r.Bottom())
}

func (r Rect) String() string {
	return fmt.Sprintf("<Rect: left = %d, top = %d, width = %d, height = %d>", r.Left, r.Top, r.Width, r.Height)
}

func (r Rect) Right() int  { return r.Left + r.Width }
func (r Rect) Bottom() int { return r.Top + r.Height }

// Clone returns an independent copy.
func (r Rect) Clone() Rect { return r }

// MarginAdjust grows the rectangle by n on every side. Negative n shrinks it.
// There is no clamping: a large negative n produces negative extents.
func (r Rect) MarginAdjust(n int) Rect {
	r.Left -= n
	r.Top -= n
	r.Width += 2 * n
	r.Height += 2 * n
	return r
}

// Normalise flips negative extents so that Width and Height are >= 0 while the
// covered point set stays the same.
func (r Rect) Normalise() Rect {
	if r.Width < 0 {
		r.Left += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Top += r.Height
		r.Height = -r.Height
	}
	return r
}

func (r Rect) Empty() bool { return r.Width == 0 || r.Height == 0 }

// Centre returns the integer midpoint. Division truncates toward zero, so odd
// extents round toward the origin and negative extents round toward zero.
func (r Rect) Centre() (int, int) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// IncludesPoint reports whether (x, y) lies inside r, edges inclusive.
func (r Rect) IncludesPoint(x, y int) bool {
	return r.Left <= x && r.Top <= y && r.Right() >= x && r.Bottom() >= y
}

// IncludesRect reports whether o lies entirely inside r, edges inclusive.
func (r Rect) IncludesRect(o Rect) bool {
	return r.Left <= o.Left && r.Top <= o.Top && r.Right() >= o.Right() && r.Bottom() >= o.Bottom()
}

// Union returns the bounding box of a and b. An empty operand stands for
// "nothing yet" and the other operand is returned unchanged.
func Union(a, b Rect) Rect {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	left := min(a.Left, b.Left)
	top := min(a.Top, b.Top)
	right := max(a.Right(), b.Right())
	bottom := max(a.Bottom(), b.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Intersection returns the overlap of a and b. Disjoint inputs produce
// negative extents; callers check the sign before using the result.
func Intersection(a, b Rect) Rect {
	left := max(a.Left, b.Left)
	top := max(a.Top, b.Top)
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())
	return Rect{Left: left, Top: top, Width: right - left, Height: bottom - top}
}

// Corner returns the degenerate rectangle locating the handle for edge.
// Corners are zero-size points, N/S are zero-height full-width lines and
// E/W are zero-width full-height lines. EdgeNone yields the zero Rect.
func (r Rect) Corner(edge Edge) Rect {
	switch edge {
	case EdgeNW:
		return Rect{Left: r.Left, Top: r.Top}
	case EdgeNE:
		return Rect{Left: r.Right(), Top: r.Top}
	case EdgeSW:
		return Rect{Left: r.Left, Top: r.Bottom()}
	case EdgeSE:
		return Rect{Left: r.Right(), Top: r.Bottom()}
	case EdgeN:
		return Rect{Left: r.Left, Top: r.Top, Width: r.Width}
	case EdgeS:
		return Rect{Left: r.Left, Top: r.Bottom(), Width: r.Width}
	case EdgeW:
		return Rect{Left: r.Left, Top: r.Top, Height: r.Height}
	case EdgeE:
		return Rect{Left: r.Right(), Top: r.Top, Height: r.Height}
	default:
		return Rect{}
	}
}

// WhichCorner returns the first handle, in HandleOrder, whose zone grown by
// tolerance contains (x, y). Corners are tested before sides so a corner wins
// where the zones overlap.
func (r Rect) WhichCorner(tolerance, x, y int) Edge {
	for _, edge := range HandleOrder {
		if r.Corner(edge).MarginAdjust(tolerance).IncludesPoint(x, y) {
			return edge
		}
	}
	return EdgeNone
}
