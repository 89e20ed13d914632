// SPDX-License-Identifier: MIT

package cli

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/tmatrix"
)

// NewDemoCommand creates the demo command: build a and b with
// a[i][j] = 10i+j and b[i][j] = 100i+j for j ≥ i, then print a, b and a+b.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print two sample upper-triangular matrices and their sum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(rootOpts, cmd, size)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 5, "matrix size")

	return cmd
}

func runDemo(opts *RootOptions, cmd *cobra.Command, size int) error {
	a, err := tmatrix.New[int](size, opts.Limits.MatrixOptions()...)
	if err != nil {
		return errors.Wrap(err, "build a")
	}
	b, err := tmatrix.New[int](size, opts.Limits.MatrixOptions()...)
	if err != nil {
		return errors.Wrap(err, "build b")
	}
	for i := 0; i < size; i++ {
		for j := i; j < size; j++ {
			if err = a.Set(i, j, 10*i+j); err != nil {
				return errors.Wrap(err, "fill a")
			}
			if err = b.Set(i, j, 100*i+j); err != nil {
				return errors.Wrap(err, "fill b")
			}
		}
	}
	opts.Logger.Println("a", spew.Sdump(a))

	c, err := a.Add(b)
	if err != nil {
		return errors.Wrap(err, "a + b")
	}

	w := cmd.OutOrStdout()
	for _, part := range []struct {
		title string
		m     *tmatrix.Matrix[int]
	}{{"Matrix a =", a}, {"Matrix b =", b}, {"Matrix c = a + b", c}} {
		if err = writeLine(w, part.title); err != nil {
			return err
		}
		if err = part.m.Encode(w); err != nil {
			return err
		}
	}

	return nil
}
