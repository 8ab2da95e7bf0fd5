// -- cmd/root.go --
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xkilldash9x/cursordrift/internal/config"
	"github.com/xkilldash9x/cursordrift/internal/humanoid"
	"github.com/xkilldash9x/cursordrift/internal/observability"
	"github.com/xkilldash9x/cursordrift/internal/platform"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Function variables for dependency injection in tests.
var (
	newExecutor = defaultExecutor
	watchAbort  = platform.WatchAbort
)

type rootOptions struct {
	cfgFile string
	dryRun  bool
	seed    int64
}

// NewRootCommand builds a fresh root command. Each call returns an
// independent instance so flags never leak between executions.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}
	var cfg *config.Config

	cmd := &cobra.Command{
		Use:   "cursordrift",
		Short: "Drift the mouse cursor along a randomized, human-looking path.",
		Long: `cursordrift reads the current pointer position, picks a direction based on
the screen quadrant it sits in, and replays a Brownian-motion path from there.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(cmd, opts)
			if err != nil {
				// Fall back to a console logger so the failure is still reported.
				observability.InitializeLogger(config.LoggerConfig{Level: "info", Format: "console", ServiceName: "cursordrift"})
				return err
			}
			cfg = loaded

			observability.InitializeLogger(cfg.Logger())
			observability.GetLogger().Debug("Starting cursordrift", zap.String("version", Version))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDrift(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file (default is ./config.yaml or ~/.config/cursordrift/config.yaml)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the path as JSON lines instead of moving the cursor")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed for a reproducible path (0 seeds from the clock)")
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	return cmd
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	defer observability.Sync()

	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		observability.GetLogger().Error("Command execution failed", zap.Error(err))
	}
	return err
}

// loadConfig reads the config file, environment and flags, in increasing precedence.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	v := viper.New()
	config.SetDefaults(v)
	config.BindEnv(v)

	if err := initializeConfig(v, opts.cfgFile); err != nil {
		return nil, err
	}

	cfg, err := config.NewConfigFromViper(v)
	if err != nil {
		return nil, err
	}

	if opts.dryRun {
		cfg.SetPlatformBackend(config.BackendDryRun)
	}
	if cmd.Flags().Changed("seed") {
		cfg.SetTrajectorySeed(opts.seed)
	}
	return cfg, nil
}

// initializeConfig points viper at the config file. A missing default file is
// fine; a missing explicit one is not.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		path, err := homedir.Expand(cfgFile)
		if err != nil {
			return fmt.Errorf("error resolving config path: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		if home, err := homedir.Dir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "cursordrift"))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}
	return nil
}

// runDrift performs one drift. The abort hotkey watcher runs alongside the
// replay and both stop as soon as either finishes.
func runDrift(ctx context.Context, cfg config.Interface, out io.Writer) error {
	logger, runID := observability.ForRun(observability.GetLogger())

	exec, err := newExecutor(cfg.Platform(), out)
	if err != nil {
		return err
	}
	h := humanoid.New(cfg.Trajectory().Humanoid(), logger, exec)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(ctx)

	hotkey := cfg.Platform().AbortHotkey
	if cfg.Platform().Backend == config.BackendDryRun {
		// Nothing moves, so there is nothing to abort.
		hotkey = nil
	}
	g.Go(func() error {
		return watchAbort(gctx, hotkey, cancel, logger)
	})

	g.Go(func() error {
		defer cancel()
		plan, err := h.Drift(gctx)
		if err != nil {
			return err
		}
		logger.Info("Drift finished",
			zap.String("run_id", runID),
			zap.Stringer("quadrant", plan.Quadrant),
			zap.Stringer("strategy", plan.Strategy),
			zap.Int("moves", len(plan.Path)),
		)
		return nil
	})

	return g.Wait()
}

func defaultExecutor(cfg config.PlatformConfig, out io.Writer) (humanoid.Executor, error) {
	switch cfg.Backend {
	case config.BackendRobotgo:
		return platform.NewRobotgoExecutor(), nil
	case config.BackendDryRun:
		return platform.NewDryRunExecutor(platform.NewRobotgoExecutor(), out), nil
	default:
		return nil, fmt.Errorf("unsupported platform backend %q", cfg.Backend)
	}
}
