package humanoid

import "go.uber.org/zap"

// Plan runs the full generation pipeline for a drift starting at start:
// classify the quadrant, pick a strategy, sample the offsets and compose the path.
// The returned path is fully materialized; nothing is dispatched.
func (h *Humanoid) Plan(start Point, screen ScreenSize) Plan {
	quadrant := Classify(start.X, start.Y, screen)

	h.mu.Lock()
	strategy := h.selector.Select(quadrant)
	offsets := h.brownian.Generate(h.config.Steps, h.config.Base)
	h.mu.Unlock()

	path := Compose(start, offsets, strategy)

	h.logger.Debug("Humanoid: drift planned",
		zap.Stringer("quadrant", quadrant),
		zap.Stringer("strategy", strategy),
		zap.Int("steps", len(path)),
	)

	return Plan{
		Start:    start,
		Screen:   screen,
		Quadrant: quadrant,
		Strategy: strategy,
		Offsets:  offsets,
		Path:     path,
	}
}
