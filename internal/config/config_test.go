// File: internal/config/config_test.go
package config

import (
	"bytes"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -- Constructor and Defaults Tests --

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "console", cfg.Logger().Format)
	assert.Equal(t, "cursordrift", cfg.Logger().ServiceName)
	assert.Empty(t, cfg.Logger().LogFile)
	assert.Equal(t, "green", cfg.Logger().Colors.Info)

	assert.Equal(t, 100, cfg.Trajectory().Steps)
	assert.Equal(t, 200.0, cfg.Trajectory().Scale)
	assert.Zero(t, cfg.Trajectory().Base)
	assert.Zero(t, cfg.Trajectory().Seed)

	assert.Equal(t, BackendRobotgo, cfg.Platform().Backend)
	assert.Equal(t, []string{"q", "ctrl", "shift"}, cfg.Platform().AbortHotkey)

	assert.NoError(t, cfg.Validate(), "defaults must always validate")
}

// -- Validation Logic Tests --

func TestConfigValidation(t *testing.T) {
	t.Run("Trajectory Validation", func(t *testing.T) {
		cfg := NewDefaultConfig()

		zeroSteps := *cfg
		zeroSteps.TrajectoryCfg.Steps = 0
		err := zeroSteps.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trajectory.steps must be a positive integer")

		negativeScale := *cfg
		negativeScale.TrajectoryCfg.Scale = -1
		err = negativeScale.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "trajectory.scale must be a positive number")
	})

	t.Run("Platform Validation", func(t *testing.T) {
		cfg := NewDefaultConfig()

		cfg.SetPlatformBackend(BackendDryRun)
		assert.NoError(t, cfg.Validate())

		cfg.SetPlatformBackend("xdotool")
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "platform.backend must be one of")
		assert.Contains(t, err.Error(), "xdotool")
	})
}

// -- Factory Function Tests --

func TestNewConfigFromViper(t *testing.T) {
	t.Run("Successful Load from YAML", func(t *testing.T) {
		yamlBytes := []byte(`
logger:
  level: debug
trajectory:
  steps: 250
  scale: 80.5
  seed: 7
platform:
  backend: dry-run
  abort_hotkey: ["esc"]
`)
		v := viper.New()
		SetDefaults(v)
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(bytes.NewBuffer(yamlBytes)))

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.Logger().Level)
		assert.Equal(t, 250, cfg.Trajectory().Steps)
		assert.Equal(t, 80.5, cfg.Trajectory().Scale)
		assert.Equal(t, int64(7), cfg.Trajectory().Seed)
		assert.Equal(t, BackendDryRun, cfg.Platform().Backend)
		assert.Equal(t, []string{"esc"}, cfg.Platform().AbortHotkey)
		// Untouched keys keep their defaults.
		assert.Equal(t, "console", cfg.Logger().Format)
	})

	t.Run("Validation Failure", func(t *testing.T) {
		v := viper.New()
		SetDefaults(v)
		v.Set("trajectory.steps", 0)

		cfg, err := NewConfigFromViper(v)
		assert.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "invalid configuration")
		assert.Contains(t, err.Error(), "trajectory.steps must be a positive integer")
	})

	t.Run("Environment Variable Binding", func(t *testing.T) {
		t.Setenv("CURSORDRIFT_TRAJECTORY_STEPS", "42")
		t.Setenv("CURSORDRIFT_PLATFORM_BACKEND", "dry-run")

		v := viper.New()
		SetDefaults(v)
		BindEnv(v)

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, 42, cfg.Trajectory().Steps)
		assert.Equal(t, BackendDryRun, cfg.Platform().Backend)
	})
}

func TestTrajectoryConfig_Humanoid(t *testing.T) {
	unseeded := TrajectoryConfig{Steps: 10, Scale: 5, Base: 1}.Humanoid()
	assert.Equal(t, 10, unseeded.Steps)
	assert.Equal(t, 5.0, unseeded.Scale)
	assert.Equal(t, 1.0, unseeded.Base)
	assert.Nil(t, unseeded.Rng, "a zero seed leaves the clock-seeded default in place")

	a := TrajectoryConfig{Steps: 10, Scale: 5, Seed: 99}.Humanoid()
	b := TrajectoryConfig{Steps: 10, Scale: 5, Seed: 99}.Humanoid()
	require.NotNil(t, a.Rng)
	assert.Equal(t, a.Rng.Float64(), b.Rng.Float64(), "equal seeds must produce equal streams")
}
