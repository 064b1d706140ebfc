package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/math-tools/factor-calc/internal/report"
)

func newREPLCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read \"A B [GCD|LCM]\" lines from standard input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			calc := report.NewCalculator(opts.logger)
			return runREPL(cmd.InOrStdin(), cmd.OutOrStdout(), calc, opts.config.Calculator.DefaultMode)
		},
	}
}

func runREPL(in io.Reader, out io.Writer, calc *report.Calculator, defaultMode string) error {
	scanner := bufio.NewScanner(in)

	fmt.Fprintf(out, "Enter two integers and an optional mode (GCD or LCM), or 'quit' to exit.\n")
	for {
		fmt.Fprintf(out, "> ")
		if !scanner.Scan() {
			break
		}

		fields := strings.Fields(scanner.Text())
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1 && (fields[0] == "quit" || fields[0] == "exit"):
			fmt.Fprintf(out, "Exiting...\n")
			return nil
		case len(fields) == 2:
			fmt.Fprintln(out, calc.Run(fields[0], fields[1], defaultMode))
		case len(fields) == 3:
			fmt.Fprintln(out, calc.Run(fields[0], fields[1], fields[2]))
		default:
			fmt.Fprintln(out, report.InvalidInputMessage)
		}
	}
	fmt.Fprintln(out)

	return scanner.Err()
}
