// internal/humanoid/types.go
package humanoid

// Quadrant identifies one of the four equal screen rectangles.
//
//	+---------------+
//	|   3   |   4   |
//	|---------------|
//	|   1   |   2   |
//	+---------------+
type Quadrant int

const (
	BottomLeft Quadrant = iota + 1
	BottomRight
	TopLeft
	TopRight
)

func (q Quadrant) String() string {
	switch q {
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	default:
		return "unknown"
	}
}

// Strategy names the rule that decides which axis sweeps linearly and which
// one carries the Brownian offset.
type Strategy int

const (
	BottomToTop Strategy = iota + 1
	TopToBottom
	LeftToRight
	RightToLeft
)

func (s Strategy) String() string {
	switch s {
	case BottomToTop:
		return "bottom-to-top"
	case TopToBottom:
		return "top-to-bottom"
	case LeftToRight:
		return "left-to-right"
	case RightToLeft:
		return "right-to-left"
	default:
		return "unknown"
	}
}

// OffsetSequence is the cumulative output of the Brownian generator.
type OffsetSequence []float64

// Path is the ordered list of positions to replay.
type Path []Point

// Plan is everything decided for a single drift before replay starts.
type Plan struct {
	Start    Point
	Screen   ScreenSize
	Quadrant Quadrant
	Strategy Strategy
	Offsets  OffsetSequence
	Path     Path
}
