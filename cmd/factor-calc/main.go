package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/math-tools/factor-calc/internal/config"
	"github.com/math-tools/factor-calc/internal/logging"
)

type rootOptions struct {
	configPath string
	logLevel   string

	config *config.Config
	logger *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "factor-calc",
		Short:         "GCD / LCM calculator using prime factorization",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "config.yml", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")

	cmd.AddCommand(
		newGUICommand(opts),
		newComputeCommand(opts),
		newREPLCommand(opts),
	)

	return cmd
}

func (o *rootOptions) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config from '%s': %w", o.configPath, err)
	}
	if o.logLevel != "" {
		cfg.Application.LogLevel = o.logLevel
	}

	logger, err := logging.New(cfg.Application.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	o.config = cfg
	o.logger = logger
	return nil
}

func newGUICommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the calculator window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runGUI(opts)
		},
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
