package selection

// Edge names one side or corner of a rectangle. EdgeNone means no match.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeN
	EdgeS
	EdgeE
	EdgeW
	EdgeNW
	EdgeNE
	EdgeSW
	EdgeSE
)

// HandleOrder is the hit-test priority used by WhichCorner: corners first.
var HandleOrder = [...]Edge{EdgeNW, EdgeNE, EdgeSW, EdgeSE, EdgeN, EdgeS, EdgeE, EdgeW}

func (e Edge) String() string {
	switch e {
	case EdgeNone:
		return "none"
	case EdgeN:
		return "n"
	case EdgeS:
		return "s"
	case EdgeE:
		return "e"
	case EdgeW:
		return "w"
	case EdgeNW:
		return "nw"
	case EdgeNE:
		return "ne"
	case EdgeSW:
		return "sw"
	case EdgeSE:
		return "se"
	default:
		return "unknown"
	}
}

// IsCorner reports whether e is one of the four corners.
func (e Edge) IsCorner() bool {
	switch e {
	case EdgeNW, EdgeNE, EdgeSW, EdgeSE:
		return true
	default:
		return false
	}
}

// MovesRight reports whether dragging e moves the right edge.
func (e Edge) MovesRight() bool { return e == EdgeE || e == EdgeNE || e == EdgeSE }

// MovesLeft reports whether dragging e moves the left edge.
func (e Edge) MovesLeft() bool { return e == EdgeW || e == EdgeNW || e == EdgeSW }

// MovesTop reports whether dragging e moves the top edge.
func (e Edge) MovesTop() bool { return e == EdgeN || e == EdgeNW || e == EdgeNE }

// MovesBottom reports whether dragging e moves the bottom edge.
func (e Edge) MovesBottom() bool { return e == EdgeS || e == EdgeSW || e == EdgeSE }
