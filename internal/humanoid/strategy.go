// internal/humanoid/strategy.go
package humanoid

import "math"

// Apply computes the position of step i when the Brownian offset is v.
// One axis advances by the step index, the other is floored from start+v.
func (s Strategy) Apply(start Point, v float64, i int) Point {
	step := float64(i)
	switch s {
	case BottomToTop:
		return Point{X: math.Floor(start.X + v), Y: start.Y + step}
	case TopToBottom:
		return Point{X: math.Floor(start.X + v), Y: start.Y - step}
	case LeftToRight:
		return Point{X: start.X + step, Y: math.Floor(start.Y + v)}
	case RightToLeft:
		return Point{X: start.X - step, Y: math.Floor(start.Y + v)}
	default:
		return start
	}
}

// Chooser settles the coin flip between two candidate strategies.
// Returning true picks the first candidate.
type Chooser func() bool

// RandomChooser flips a fair coin using src.
func RandomChooser(src Source) Chooser {
	return func() bool {
		return src.Float64() > 0.5
	}
}

// candidatePairs lists the two plausible strategies per quadrant.
// BottomRight intentionally mirrors BottomLeft.
var candidatePairs = map[Quadrant][2]Strategy{
	BottomLeft:  {BottomToTop, LeftToRight},
	BottomRight: {BottomToTop, LeftToRight},
	TopLeft:     {LeftToRight, TopToBottom},
	TopRight:    {RightToLeft, TopToBottom},
}

// Candidates returns the strategy pair considered for q. Unknown quadrants
// are treated as TopRight.
func Candidates(q Quadrant) (Strategy, Strategy) {
	pair, ok := candidatePairs[q]
	if !ok {
		pair = candidatePairs[TopRight]
	}
	return pair[0], pair[1]
}

// StrategySelector picks a strategy for a quadrant.
type StrategySelector struct {
	choose Chooser
}

// NewStrategySelector creates a selector using choose for the tie-break.
func NewStrategySelector(choose Chooser) *StrategySelector {
	return &StrategySelector{choose: choose}
}

// Select returns one of the two candidates for q.
func (s *StrategySelector) Select(q Quadrant) Strategy {
	a, b := Candidates(q)
	if s.choose() {
		return a
	}
	return b
}
