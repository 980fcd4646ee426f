package selection

// BorderRects returns the strips a renderer paints for the selection: a frame
// of thickness width lying entirely in the margin band just outside area.
// The area covers its Right() column and Bottom() row (as IncludesPoint
// does), so the frame starts one pixel past them. Strips are half-open pixel
// runs. Top and bottom strips span the full outer width; left and right
// strips fill the gap between them. Nothing is returned when the selection is
// hidden.
func BorderRects(area Rect, visible bool, width int) []Rect {
	if !visible || width <= 0 {
		return nil
	}
	a := area.Normalise()
	outerW := a.Width + 1 + 2*width
	return []Rect{
		{Left: a.Left - width, Top: a.Top - width, Width: outerW, Height: width},
		{Left: a.Left - width, Top: a.Bottom() + 1, Width: outerW, Height: width},
		{Left: a.Left - width, Top: a.Top, Width: width, Height: a.Height + 1},
		{Left: a.Right() + 1, Top: a.Top, Width: width, Height: a.Height + 1},
	}
}
