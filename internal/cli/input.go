// SPDX-License-Identifier: MIT

package cli

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// openInput returns a buffered reader over the file named by args[0], or
// stdin when no argument (or "-") is given. The reader is shared by every
// operand decoded from the stream.
func openInput(cmd *cobra.Command, args []string) (*bufio.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return bufio.NewReader(cmd.InOrStdin()), func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open input %s", args[0])
	}

	return bufio.NewReader(f), f.Close, nil
}

// writeLine writes s followed by a newline.
func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
