// SPDX-License-Identifier: MIT

// Package sequence - whitespace-separated text I/O.
//
// Encode writes the Size() elements in index order separated by single
// spaces, with no surrounding delimiters. Decode reads exactly Size() tokens.
package sequence

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtSep = " "
)

// scanReader is what fmt.Fscan needs to stop exactly after a token.
type scanReader interface {
	io.Reader
	io.RuneScanner
}

// Encode writes the elements of s to w separated by single spaces.
// Complexity: O(n).
func (s *Sequence[T]) Encode(w io.Writer) error {
	for i := 0; i < s.size; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, _fmtSep); err != nil {
				return sequenceErrorf(ctxEncode, err)
			}
		}
		if _, err := fmt.Fprint(w, s.data[i]); err != nil {
			return sequenceErrorf(ctxEncode, err)
		}
	}

	return nil
}

// EncodeAligned writes every element right-justified in a field of width
// characters, fields separated by single spaces. Values wider than the field
// are written in full and stay separated, so Decode can read them back.
func (s *Sequence[T]) EncodeAligned(w io.Writer, width int) error {
	for i := 0; i < s.size; i++ {
		if i > 0 {
			if _, err := io.WriteString(w, _fmtSep); err != nil {
				return sequenceErrorf(ctxEncode, err)
			}
		}
		if _, err := fmt.Fprintf(w, "%*v", width, s.data[i]); err != nil {
			return sequenceErrorf(ctxEncode, err)
		}
	}

	return nil
}

// Decode reads exactly Size() whitespace-separated elements from r into s.
// On failure s is left unchanged and the error wraps ErrMalformedInput.
//
// When r is not an io.RuneScanner it is wrapped in a bufio.Reader, which may
// consume input past the last token. Callers decoding several values from one
// stream should pass a shared *bufio.Reader.
func (s *Sequence[T]) Decode(r io.Reader) error {
	rs, ok := r.(scanReader)
	if !ok {
		rs = bufio.NewReader(r)
	}
	buf := make([]T, s.size)
	for i := range buf {
		if _, err := fmt.Fscan(rs, &buf[i]); err != nil {
			return sequenceErrorf(ctxDecode, fmt.Errorf("%w: element %d: %w", ErrMalformedInput, i, err))
		}
	}
	copy(s.data, buf)

	return nil
}

// String implements fmt.Stringer using the Encode format.
func (s *Sequence[T]) String() string {
	var b strings.Builder
	_ = s.Encode(&b) // strings.Builder never fails

	return b.String()
}
