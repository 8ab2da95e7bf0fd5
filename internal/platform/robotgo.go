// Package platform adapts desktop input libraries to the humanoid.Executor contract.
package platform

import (
	"context"
	"fmt"

	"github.com/go-vgo/robotgo"
	"github.com/xkilldash9x/cursordrift/internal/humanoid"
)

// RobotgoExecutor implements humanoid.Executor by injecting real input events
// through robotgo.
type RobotgoExecutor struct{}

// NewRobotgoExecutor creates the production executor.
func NewRobotgoExecutor() *RobotgoExecutor {
	return &RobotgoExecutor{}
}

var _ humanoid.Executor = (*RobotgoExecutor)(nil)

func (e *RobotgoExecutor) CursorPosition(ctx context.Context) (humanoid.Point, error) {
	if err := ctx.Err(); err != nil {
		return humanoid.Point{}, err
	}
	x, y := robotgo.Location()
	return humanoid.Point{X: float64(x), Y: float64(y)}, nil
}

func (e *RobotgoExecutor) ScreenSize(ctx context.Context) (humanoid.ScreenSize, error) {
	if err := ctx.Err(); err != nil {
		return humanoid.ScreenSize{}, err
	}
	w, h := robotgo.GetScreenSize()
	if w <= 0 || h <= 0 {
		return humanoid.ScreenSize{}, fmt.Errorf("platform: display reported an empty screen (%dx%d)", w, h)
	}
	return humanoid.ScreenSize{Width: float64(w), Height: float64(h)}, nil
}

// MoveTo does not check ctx; cancellation between moves is the replay loop's job.
func (e *RobotgoExecutor) MoveTo(ctx context.Context, x, y int) error {
	robotgo.Move(x, y)
	return nil
}
