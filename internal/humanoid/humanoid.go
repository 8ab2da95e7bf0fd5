// -- internal/humanoid/humanoid.go --
package humanoid

import (
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Humanoid plans and replays human-looking cursor drifts.
type Humanoid struct {
	config   Config
	logger   *zap.Logger
	executor Executor

	// mu guards the random state shared by the sampler and selector.
	mu       sync.Mutex
	brownian *BrownianGenerator
	selector *StrategySelector
}

// New creates a Humanoid driving the given executor.
func New(config Config, logger *zap.Logger, executor Executor) *Humanoid {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.Steps <= 0 {
		config.Steps = DefaultSteps
	}
	if config.Scale <= 0 {
		config.Scale = DefaultScale
	}

	rng := config.Rng
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	chooser := config.Chooser
	if chooser == nil {
		chooser = RandomChooser(rng)
	}

	sampler := NewNormalSampler(rng, logger)
	return &Humanoid{
		config:   config,
		logger:   logger,
		executor: executor,
		brownian: NewBrownianGenerator(sampler, config.Scale),
		selector: NewStrategySelector(chooser),
	}
}
