// SPDX-License-Identifier: MIT

// Command utmatrix builds and combines upper-triangular matrices and vectors
// read as whitespace-separated text.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/utmatrix/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "utmatrix:", err)
		os.Exit(1)
	}
}
