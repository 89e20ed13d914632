// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/sequence"
)

// NewDotCommand creates the dot command: read two vectors, print their dot product.
func NewDotCommand(rootOpts *RootOptions) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "dot [file]",
		Short: "Read two vectors and print their dot product",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := readVectors(rootOpts, cmd, args, size, 2)
			if err != nil {
				return err
			}
			d, err := vs[0].Dot(vs[1])
			if err != nil {
				return errors.Wrap(err, "dot")
			}
			return writeLine(cmd.OutOrStdout(), fmt.Sprint(d))
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 3, "vector size")

	return cmd
}

// NewScaleCommand creates the scale command: read a vector, print it multiplied by --by.
func NewScaleCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		size int
		by   float64
	)

	cmd := &cobra.Command{
		Use:   "scale [file]",
		Short: "Read a vector and print it multiplied by a scalar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := readVectors(rootOpts, cmd, args, size, 1)
			if err != nil {
				return err
			}
			return writeLine(cmd.OutOrStdout(), vs[0].MulScalarInPlace(by).String())
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 3, "vector size")
	cmd.Flags().Float64Var(&by, "by", 1, "scalar factor")

	return cmd
}

// readVectors decodes count vectors of the given size from one input stream.
func readVectors(opts *RootOptions, cmd *cobra.Command, args []string, size, count int) ([]*sequence.Sequence[float64], error) {
	in, closeIn, err := openInput(cmd, args)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := closeIn(); cerr != nil {
			opts.Logger.Printf("close input: %v", cerr)
		}
	}()

	out := make([]*sequence.Sequence[float64], count)
	for k := range out {
		v, err := sequence.New[float64](size, 0, opts.Limits.SequenceOptions()...)
		if err != nil {
			return nil, errors.Wrap(err, "allocate vector")
		}
		if err = v.Decode(in); err != nil {
			return nil, errors.Wrapf(err, "read vector %d", k+1)
		}
		opts.Logger.Printf("vector %d: %s", k+1, spew.Sdump(v.Elements()))
		out[k] = v
	}

	return out, nil
}
