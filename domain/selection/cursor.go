package selection

// CursorKind is the pointer shape the host should show.
type CursorKind int

const (
	CursorDefault CursorKind = iota
	CursorMove
	CursorTop
	CursorBottom
	CursorLeft
	CursorRight
	CursorTopLeft
	CursorTopRight
	CursorBottomLeft
	CursorBottomRight
)

// CursorFor returns the resize cursor for a handle.
func CursorFor(e Edge) CursorKind {
	switch e {
	case EdgeN:
		return CursorTop
	case EdgeS:
		return CursorBottom
	case EdgeE:
		return CursorRight
	case EdgeW:
		return CursorLeft
	case EdgeNW:
		return CursorTopLeft
	case EdgeNE:
		return CursorTopRight
	case EdgeSW:
		return CursorBottomLeft
	case EdgeSE:
		return CursorBottomRight
	default:
		return CursorDefault
	}
}

func (c CursorKind) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorMove:
		return "move"
	case CursorTop:
		return "top"
	case CursorBottom:
		return "bottom"
	case CursorLeft:
		return "left"
	case CursorRight:
		return "right"
	case CursorTopLeft:
		return "top-left"
	case CursorTopRight:
		return "top-right"
	case CursorBottomLeft:
		return "bottom-left"
	case CursorBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// TkName returns the X11 cursor name Tk understands for c.
func (c CursorKind) TkName() string {
	switch c {
	case CursorMove:
		return "fleur"
	case CursorTop:
		return "top_side"
	case CursorBottom:
		return "bottom_side"
	case CursorLeft:
		return "left_side"
	case CursorRight:
		return "right_side"
	case CursorTopLeft:
		return "top_left_corner"
	case CursorTopRight:
		return "top_right_corner"
	case CursorBottomLeft:
		return "bottom_left_corner"
	case CursorBottomRight:
		return "bottom_right_corner"
	default:
		return "left_ptr"
	}
}
