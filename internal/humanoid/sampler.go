// internal/humanoid/sampler.go
package humanoid

import (
	"math"

	"go.uber.org/zap"
)

// minUniform replaces a zero uniform draw so the logarithm stays finite.
const minUniform = math.SmallestNonzeroFloat64

// Source is the uniform randomness every component draws from. A
// *rand.Rand satisfies it; tests substitute scripted sequences.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// NormalSampler draws from a Normal distribution using the Box-Muller
// transform. Only the cosine branch is used; the sine sample is discarded.
type NormalSampler struct {
	src    Source
	logger *zap.Logger
}

// NewNormalSampler creates a sampler over src. A nil logger is replaced by a no-op logger.
func NewNormalSampler(src Source, logger *zap.Logger) *NormalSampler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NormalSampler{src: src, logger: logger}
}

// Sample returns one draw from Normal(mean, stddev).
func (s *NormalSampler) Sample(mean, stddev float64) float64 {
	u1 := s.src.Float64()
	if u1 <= 0 {
		// The source broke its (0, 1) contract for the log term.
		s.logger.Warn("Humanoid: uniform source returned a non-positive draw, clamping",
			zap.Float64("draw", u1))
		u1 = minUniform
	}
	u2 := s.src.Float64()

	z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return z*stddev + mean
}
