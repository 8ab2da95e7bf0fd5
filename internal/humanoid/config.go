// internal/humanoid/config.go
package humanoid

import "math/rand"

// Config holds the tunable parameters of a drift.
type Config struct {
	// Steps is the number of points in the path.
	Steps int
	// Scale is the standard deviation of a raw Brownian increment.
	Scale float64
	// Base seeds the first increment of the offset process.
	Base float64

	// Rng is the randomness source. When nil, one seeded from the clock is created.
	Rng *rand.Rand
	// Chooser overrides the strategy coin flip. When nil, Rng is used.
	Chooser Chooser
}

// DefaultConfig returns the parameters of the reference behaviour.
func DefaultConfig() Config {
	return Config{
		Steps: DefaultSteps,
		Scale: DefaultScale,
	}
}
