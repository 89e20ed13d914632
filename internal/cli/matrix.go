// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/tmatrix"
)

// matrixOp combines two decoded operands into a result.
type matrixOp func(lhs, rhs *tmatrix.Matrix[float64]) (*tmatrix.Matrix[float64], error)

// NewAddCommand creates the add command: read two matrices, print their sum.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return newMatrixCommand(rootOpts, "add", "Read two matrices and print lhs + rhs",
		func(lhs, rhs *tmatrix.Matrix[float64]) (*tmatrix.Matrix[float64], error) {
			return lhs.Add(rhs)
		})
}

// NewSubCommand creates the sub command: read two matrices, print lhs - rhs.
func NewSubCommand(rootOpts *RootOptions) *cobra.Command {
	return newMatrixCommand(rootOpts, "sub", "Read two matrices and print lhs - rhs",
		func(lhs, rhs *tmatrix.Matrix[float64]) (*tmatrix.Matrix[float64], error) {
			return lhs.SubtractInPlace(rhs)
		})
}

func newMatrixCommand(rootOpts *RootOptions, use, short string, op matrixOp) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Long: short + `.

Both operands are read from file (or stdin) as whitespace-separated numbers,
row after row; each row holds as many values as its length under the
configured layout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatrixOp(rootOpts, cmd, args, size, op)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 3, "matrix size")

	return cmd
}

func runMatrixOp(opts *RootOptions, cmd *cobra.Command, args []string, size int, op matrixOp) error {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeIn(); cerr != nil {
			opts.Logger.Printf("close input: %v", cerr)
		}
	}()

	operands := make([]*tmatrix.Matrix[float64], 2)
	for k := range operands {
		m, err := tmatrix.New[float64](size, opts.Limits.MatrixOptions()...)
		if err != nil {
			return errors.Wrap(err, "allocate operand")
		}
		if err = m.Decode(in); err != nil {
			return errors.Wrapf(err, "read operand %d", k+1)
		}
		opts.Logger.Printf("operand %d: %s", k+1, spew.Sdump(m))
		operands[k] = m
	}

	res, err := op(operands[0], operands[1])
	if err != nil {
		return errors.Wrap(err, cmd.Name())
	}

	return res.Encode(cmd.OutOrStdout())
}
