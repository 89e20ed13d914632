// SPDX-License-Identifier: MIT
// Package sequence: sentinel error set.
// Every message is prefixed with "sequence: ..." for grep-ability. Call sites
// wrap sentinels with sequenceErrorf so callers can still use errors.Is.

package sequence

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSize is returned when a requested size is negative or exceeds
	// the configured maximum (DefaultMaxSize unless overridden by WithMaxSize).
	ErrInvalidSize = errors.New("sequence: invalid size")

	// ErrInvalidStartIndex is returned when a requested start index is negative.
	ErrInvalidStartIndex = errors.New("sequence: invalid start index")

	// ErrNegativeIndex indicates that a negative position was used for element access.
	ErrNegativeIndex = errors.New("sequence: negative index")

	// ErrIndexOutOfRange indicates that a position is beyond the accessible range.
	ErrIndexOutOfRange = errors.New("sequence: index out of range")

	// ErrSizeMismatch indicates operands of pairwise operations have different sizes.
	ErrSizeMismatch = errors.New("sequence: size mismatch")

	// ErrNilSequence indicates that a nil *Sequence was passed as an operand.
	ErrNilSequence = errors.New("sequence: nil sequence")

	// ErrMalformedInput indicates that Decode could not read the expected number
	// of elements from the input.
	ErrMalformedInput = errors.New("sequence: malformed input")
)

// sequenceErrorf wraps err with the Sequence method that detected it.
func sequenceErrorf(method string, err error) error {
	return fmt.Errorf("Sequence.%s: %w", method, err)
}
