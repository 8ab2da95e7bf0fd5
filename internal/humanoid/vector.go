// internal/humanoid/vector.go
package humanoid

import "math"

// Point represents a screen coordinate. Both fields stay real-valued while a
// path is being built and are only rounded when handed to the executor.
type Point struct {
	X, Y float64
}

// Pixel rounds the point to the discrete pixel grid the platform expects.
func (p Point) Pixel() (int, int) {
	return int(math.Round(p.X)), int(math.Round(p.Y))
}

// Dist calculates the Euclidean distance between p and other.
func (p Point) Dist(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// ScreenSize is the size of the primary display, read once per run.
type ScreenSize struct {
	Width, Height float64
}

// Center returns the midpoint that splits the screen into quadrants.
func (s ScreenSize) Center() Point {
	return Point{X: s.Width / 2, Y: s.Height / 2}
}
