// internal/humanoid/quadrant.go
package humanoid

// Classify maps a position to its screen quadrant. Points exactly on a
// midpoint belong to the right half horizontally and the top half vertically.
func Classify(x, y float64, screen ScreenSize) Quadrant {
	c := screen.Center()

	left := x < c.X
	bottom := y < c.Y

	switch {
	case left && bottom:
		return BottomLeft
	case bottom:
		return BottomRight
	case left:
		return TopLeft
	default:
		return TopRight
	}
}
