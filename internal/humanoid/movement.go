package humanoid

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Drift reads the pointer position and screen size from the executor, plans a
// path and replays it. It returns the plan even when replay stops early so the
// caller can report how far it got.
func (h *Humanoid) Drift(ctx context.Context) (Plan, error) {
	start, err := h.executor.CursorPosition(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("humanoid: failed to read cursor position: %w", err)
	}

	screen, err := h.executor.ScreenSize(ctx)
	if err != nil {
		return Plan{}, fmt.Errorf("humanoid: failed to read screen size: %w", err)
	}

	plan := h.Plan(start, screen)
	h.logger.Info("Humanoid: starting drift",
		zap.Float64("start_x", start.X),
		zap.Float64("start_y", start.Y),
		zap.Stringer("quadrant", plan.Quadrant),
		zap.Stringer("strategy", plan.Strategy),
		zap.Int("steps", len(plan.Path)),
	)

	if err := h.Replay(ctx, plan.Path); err != nil {
		return plan, err
	}

	if n := len(plan.Path); n > 0 {
		h.logger.Info("Humanoid: drift complete",
			zap.Float64("displacement", start.Dist(plan.Path[n-1])))
	}
	return plan, nil
}

// Replay issues one move per point, strictly in path order. Cancellation is
// checked before every move; points after the cancellation are never sent.
func (h *Humanoid) Replay(ctx context.Context, path Path) error {
	for i, p := range path {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		x, y := p.Pixel()
		h.logger.Debug("Humanoid: move", zap.Int("index", i), zap.Int("x", x), zap.Int("y", y))

		if err := h.executor.MoveTo(ctx, x, y); err != nil {
			if ctx.Err() == nil {
				h.logger.Warn("Humanoid: failed to dispatch move", zap.Int("index", i), zap.Error(err))
			}
			return fmt.Errorf("humanoid: move %d to (%d, %d) failed: %w", i, x, y, err)
		}
	}
	return nil
}
