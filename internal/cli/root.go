// SPDX-License-Identifier: MIT

// Package cli wires the matrix package to a cobra command tree.
//
// Every command builds its operands from flags, runs exactly one matrix
// operation and writes the result with (*matrix.Matrix).Print. Diagnostics
// go through an hclog logger on the error stream.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

const (
	appName         = "fmatrix"
	defaultLogLevel = "warn"
)

// app carries the output streams and the logger shared by all commands.
type app struct {
	out      io.Writer
	errOut   io.Writer
	logLevel string
	log      hclog.Logger
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:    out,
		errOut: errOut,
		log: hclog.New(&hclog.LoggerOptions{
			Name:   appName,
			Level:  hclog.LevelFromString(defaultLogLevel),
			Output: errOut,
		}),
	}
}

// NewRootCommand returns the fmatrix command tree writing to out and errOut.
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	return newApp(out, errOut).rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dense float32 matrix calculator",
		Long: `fmatrix builds small dense float32 matrices from flags, applies one
operation (identity, transpose, scale, multiply, get) and prints the result
in a fixed-width format.

Values are given row-major, e.g. --rows 2 --cols 2 --data 1,2,3,4.
Without --data a square matrix starts as the identity, any other shape as zeros.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := hclog.LevelFromString(a.logLevel)
			if level == hclog.NoLevel {
				return fmt.Errorf("unknown log level %q", a.logLevel)
			}
			a.log.SetLevel(level)
			a.log.Debug("command start", "command", cmd.Name(), "args", strings.Join(args, " "))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", defaultLogLevel,
		"Log level: trace, debug, info, warn, error")

	root.AddCommand(
		a.identityCommand(),
		a.transposeCommand(),
		a.scaleCommand(),
		a.multiplyCommand(),
		a.getCommand(),
	)

	return root
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(args []string, out, errOut io.Writer) int {
	a := newApp(out, errOut)
	root := a.rootCommand()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		a.log.Error("command failed", "error", err)
		return 1
	}

	return 0
}
