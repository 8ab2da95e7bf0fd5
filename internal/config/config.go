// File: internal/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// BackendRobotgo injects real input events through robotgo.
	BackendRobotgo = "robotgo"
	// BackendDryRun reads the real cursor but prints moves instead of performing them.
	BackendDryRun = "dry-run"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Trajectory() TrajectoryConfig
	Platform() PlatformConfig

	// Trajectory Setters
	SetTrajectorySeed(seed int64)

	// Platform Setters
	SetPlatformBackend(backend string)
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg     LoggerConfig     `mapstructure:"logger" yaml:"logger"`
	TrajectoryCfg TrajectoryConfig `mapstructure:"trajectory" yaml:"trajectory"`
	PlatformCfg   PlatformConfig   `mapstructure:"platform" yaml:"platform"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig         { return c.LoggerCfg }
func (c *Config) Trajectory() TrajectoryConfig { return c.TrajectoryCfg }
func (c *Config) Platform() PlatformConfig     { return c.PlatformCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetTrajectorySeed(seed int64)      { c.TrajectoryCfg.Seed = seed }
func (c *Config) SetPlatformBackend(backend string) { c.PlatformCfg.Backend = backend }

var _ Interface = (*Config)(nil)

// LoggerConfig holds all the configuration for the logger.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// PlatformConfig selects the input backend.
type PlatformConfig struct {
	Backend string `mapstructure:"backend" yaml:"backend"`
	// AbortHotkey is the key combination that stops a running replay. Empty disables it.
	AbortHotkey []string `mapstructure:"abort_hotkey" yaml:"abort_hotkey"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// This should not happen with defaults.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "cursordrift")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", true)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.dpanic", "magenta")
	v.SetDefault("logger.colors.panic", "magenta")
	v.SetDefault("logger.colors.fatal", "magenta")

	// -- Trajectory --
	setTrajectoryDefaults(v)

	// -- Platform --
	v.SetDefault("platform.backend", BackendRobotgo)
	v.SetDefault("platform.abort_hotkey", []string{"q", "ctrl", "shift"})
}

// EnvPrefix namespaces the environment overrides, e.g. CURSORDRIFT_TRAJECTORY_STEPS.
const EnvPrefix = "CURSORDRIFT"

// BindEnv lets environment variables override any key that has a default.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for sane values.
func (c *Config) Validate() error {
	if err := c.TrajectoryCfg.Validate(); err != nil {
		return err
	}
	switch c.PlatformCfg.Backend {
	case BackendRobotgo, BackendDryRun:
	default:
		return fmt.Errorf("platform.backend must be one of %q or %q, got %q", BackendRobotgo, BackendDryRun, c.PlatformCfg.Backend)
	}
	return nil
}
