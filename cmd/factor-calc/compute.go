package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/math-tools/factor-calc/internal/report"
)

// negativeFlagError matches pflag's error for a token such as "-4".
var negativeFlagError = regexp.MustCompile(`unknown shorthand flag: '[0-9]'`)

func newComputeCommand(opts *rootOptions) *cobra.Command {
	mode := ""
	exportOnly := false

	cmd := &cobra.Command{
		Use:   "compute A B",
		Short: "Print the factorization report for two integers",
		Long: "Print the factorization report for two integers.\n\n" +
			"Arguments starting with '-' are read as flags; put them after --, e.g. compute -- -4 6.",
		Example: "  factor-calc compute 12 18 --mode lcm\n  factor-calc compute --export 12 18",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if mode == "" {
				mode = opts.config.Calculator.DefaultMode
			}

			r, err := report.Compute(args[0], args[1], mode)
			if err != nil {
				opts.logger.Debug("Rejected input", zap.Strings("args", args), zap.Error(err))
				return fmt.Errorf("%s (%w)", report.Message(err), err)
			}

			if exportOnly {
				fmt.Fprintln(cmd.OutOrStdout(), r.Export())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), r.String())
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		if negativeFlagError.MatchString(err.Error()) {
			return fmt.Errorf("%s (negative numbers must follow --: %w)", report.InvalidInputMessage, err)
		}
		return err
	})

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "GCD or LCM (defaults to calculator.default_mode)")
	cmd.Flags().BoolVar(&exportOnly, "export", false, "Print only the submission format")

	return cmd
}
