// File: internal/config/humanoid_config.go
// This file defines the TrajectoryConfig struct, which contains the tunable
// parameters of the cursor drift: how many points a path has, how far the
// Brownian offset wanders, and the seed used to reproduce a run.
//
// The configuration is loaded through Viper like everything else, so a drift
// can be reshaped from config.yaml or CURSORDRIFT_TRAJECTORY_* variables
// without changing the core code.
package config

import (
	"fmt"
	"math/rand"

	"github.com/spf13/viper"
	"github.com/xkilldash9x/cursordrift/internal/humanoid"
)

// TrajectoryConfig holds the parameters handed to the humanoid planner.
type TrajectoryConfig struct {
	Steps int     `mapstructure:"steps" yaml:"steps"`
	Scale float64 `mapstructure:"scale" yaml:"scale"`
	Base  float64 `mapstructure:"base" yaml:"base"`
	// Seed makes runs reproducible. Zero seeds from the clock.
	Seed int64 `mapstructure:"seed" yaml:"seed"`
}

func setTrajectoryDefaults(v *viper.Viper) {
	v.SetDefault("trajectory.steps", humanoid.DefaultSteps)
	v.SetDefault("trajectory.scale", humanoid.DefaultScale)
	v.SetDefault("trajectory.base", 0.0)
	v.SetDefault("trajectory.seed", 0)
}

// Validate checks the trajectory parameters.
func (t TrajectoryConfig) Validate() error {
	if t.Steps <= 0 {
		return fmt.Errorf("trajectory.steps must be a positive integer")
	}
	if t.Scale <= 0 {
		return fmt.Errorf("trajectory.scale must be a positive number")
	}
	return nil
}

// Humanoid converts the trajectory settings into the planner's configuration.
// A non-zero seed installs a deterministic random source.
func (t TrajectoryConfig) Humanoid() humanoid.Config {
	cfg := humanoid.Config{
		Steps: t.Steps,
		Scale: t.Scale,
		Base:  t.Base,
	}
	if t.Seed != 0 {
		cfg.Rng = rand.New(rand.NewSource(t.Seed))
	}
	return cfg
}
