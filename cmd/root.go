package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/flexrate/app"
	"github.com/kilianp07/flexrate/config"
	"github.com/kilianp07/flexrate/infra/logger"
)

var (
	cfgPath string
	workDir string
)

var rootCmd = &cobra.Command{
	Use:           "flexrate",
	Short:         "Attach flex rates to pricing exports",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "flexrate.yaml", "configuration file, skipped when absent")
	rootCmd.PersistentFlags().StringVarP(&workDir, "dir", "d", "", "directory holding the grid and exports (default: current directory)")
}

// batchError marks failures of the batch itself, as opposed to usage errors.
type batchError struct {
	err    error
	strict bool
}

func (e *batchError) Error() string { return e.err.Error() }
func (e *batchError) Unwrap() error { return e.err }

// Execute runs the CLI and returns the process exit code. Failures of the
// batch command, configuration included, are logged and still exit 0 unless
// strict_exit is configured. Usage errors exit 1.
func Execute() int {
	return exitCode(rootCmd.Execute())
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	logger.New("main").Errorf("%v", err)
	var be *batchError
	if errors.As(err, &be) && !be.strict {
		return 0
	}
	return 1
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadOptional(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format, nil); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolveDir() (string, error) {
	if workDir != "" {
		return workDir, nil
	}
	return os.Getwd()
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		// strict_exit is unknown without a configuration.
		return &batchError{err: err}
	}
	dir, err := resolveDir()
	if err != nil {
		return &batchError{err: fmt.Errorf("working directory: %w", err), strict: cfg.StrictExit}
	}
	svc, err := app.New(cfg, dir)
	if err != nil {
		return &batchError{err: err, strict: cfg.StrictExit}
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	if err := svc.Run(ctx); err != nil {
		return &batchError{err: err, strict: cfg.StrictExit}
	}
	return nil
}
