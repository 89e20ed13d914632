// SPDX-License-Identifier: MIT

// Package tmatrix - text I/O.
//
// Output: one row per line; each element right-justified in CellWidth
// columns, cells separated by one space. Rows with a non-zero start index
// are indented by StartIndex*(CellWidth+1) spaces so columns line up.
// Input: rows are read in order, each consuming its own Size() tokens.
package tmatrix

import (
	"bufio"
	"io"
	"strings"

	"github.com/katalvlaran/utmatrix/sequence"
)

const _fmtRowClose = "\n"

// Encode writes m to w.
// Complexity: O(total elements).
func (m *Matrix[T]) Encode(w io.Writer) error {
	for _, row := range m.rows {
		if pad := row.StartIndex() * (CellWidth + 1); pad > 0 {
			if _, err := io.WriteString(w, strings.Repeat(" ", pad)); err != nil {
				return matrixErrorf(ctxEncode, err)
			}
		}
		if err := row.EncodeAligned(w, CellWidth); err != nil {
			return matrixErrorf(ctxEncode, err)
		}
		if _, err := io.WriteString(w, _fmtRowClose); err != nil {
			return matrixErrorf(ctxEncode, err)
		}
	}

	return nil
}

// Decode reads Size() rows from r. All rows share one buffered reader.
// On failure m is left unchanged and the error wraps ErrMalformedInput.
func (m *Matrix[T]) Decode(r io.Reader) error {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	staged := make([]*sequence.Sequence[T], len(m.rows))
	for i, row := range m.rows {
		staged[i] = row.Clone()
		if err := staged[i].Decode(br); err != nil {
			return matrixErrorf(ctxDecode, err)
		}
	}
	for i, row := range m.rows {
		_ = row.Assign(staged[i]) // staged rows are never nil
	}

	return nil
}

// String implements fmt.Stringer using the Encode format.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	_ = m.Encode(&b) // strings.Builder never fails

	return b.String()
}
