// SPDX-License-Identifier: MIT

// Package cli implements the utmatrix command line.
package cli

import (
	"io"
	"log"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/config"
)

// Version is reported by the version command; overridden at link time.
var Version = "dev"

// RootOptions holds global flags and state resolved before any subcommand runs.
type RootOptions struct {
	Verbose    bool
	LimitsPath string

	Limits config.Limits
	Logger *log.Logger
}

// NewRootCommand creates the root command for the utmatrix CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "utmatrix",
		Short:         "Upper-triangular matrix and vector arithmetic",
		Long:          "Build, add and subtract upper-triangular matrices and compute vector products from whitespace-separated text.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log operands and limits to stderr")
	cmd.PersistentFlags().StringVar(&opts.LimitsPath, "limits", "", "YAML file with max_vector_size, max_matrix_size and layout")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewSubCommand(opts))
	cmd.AddCommand(NewDotCommand(opts))
	cmd.AddCommand(NewScaleCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// resolve loads limits and builds the logger.
func (o *RootOptions) resolve(cmd *cobra.Command) error {
	out := io.Discard
	if o.Verbose {
		out = cmd.ErrOrStderr()
	}
	o.Logger = log.New(out, "utmatrix: ", 0)

	o.Limits = config.Default()
	if o.LimitsPath != "" {
		l, err := config.LoadFile(o.LimitsPath)
		if err != nil {
			return errors.Wrap(err, "load limits")
		}
		o.Limits = l
	}
	o.Logger.Printf("limits: vector=%d matrix=%d layout=%s", o.Limits.MaxVectorSize, o.Limits.MaxMatrixSize, o.Limits.Layout)

	return nil
}

// NewVersionCommand prints Version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := io.WriteString(cmd.OutOrStdout(), Version+"\n")
			return err
		},
	}
}
