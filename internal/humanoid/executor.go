// Filename: internal/humanoid/executor.go
package humanoid

import "context"

// Executor defines the contract for the platform input layer, allowing the
// drift logic to run against a real desktop, a dry run, or a test double.
type Executor interface {
	// CursorPosition returns the current pointer location.
	CursorPosition(ctx context.Context) (Point, error)

	// ScreenSize returns the dimensions of the primary display.
	ScreenSize(ctx context.Context) (ScreenSize, error)

	// MoveTo places the pointer at the absolute pixel (x, y). It blocks until
	// the move has been issued.
	MoveTo(ctx context.Context, x, y int) error
}
