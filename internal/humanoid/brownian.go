// internal/humanoid/brownian.go
package humanoid

import "math"

const (
	// DefaultSteps is the number of points in a drift.
	DefaultSteps = 100
	// DefaultScale is the standard deviation of a single raw increment, in pixels.
	DefaultScale = 200.0
)

// BrownianGenerator builds a discrete Wiener process: independent Normal
// increments scaled by 1/sqrt(n) and summed left to right.
type BrownianGenerator struct {
	sampler *NormalSampler
	scale   float64
}

// NewBrownianGenerator returns a generator drawing increments with the given
// standard deviation. A non-positive scale falls back to DefaultScale.
func NewBrownianGenerator(sampler *NormalSampler, scale float64) *BrownianGenerator {
	if scale <= 0 {
		scale = DefaultScale
	}
	return &BrownianGenerator{sampler: sampler, scale: scale}
}

// Generate returns n cumulative offsets. The process starts at base, which is
// added to the first increment rather than emitted as an element of its own.
func (g *BrownianGenerator) Generate(n int, base float64) OffsetSequence {
	if n <= 0 {
		return OffsetSequence{}
	}

	sqrtN := math.Sqrt(float64(n))
	offsets := make(OffsetSequence, n)

	prev := base
	for i := range offsets {
		prev += g.sampler.Sample(0, g.scale) / sqrtN
		offsets[i] = prev
	}
	return offsets
}
