// SPDX-License-Identifier: MIT
// Package tmatrix: sentinel error set.
// Row-level failures are reported with the sequence sentinels; the aliases
// below let callers match them without importing package sequence.

package tmatrix

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/utmatrix/sequence"
)

var (
	// ErrTooLarge is returned when the requested size exceeds MaxSize.
	ErrTooLarge = errors.New("tmatrix: matrix too large")

	// ErrNilMatrix indicates that a nil *Matrix was passed as an operand.
	ErrNilMatrix = errors.New("tmatrix: nil matrix")
)

// Aliases of the row-container sentinels (same values, errors.Is-compatible).
var (
	ErrInvalidSize     = sequence.ErrInvalidSize
	ErrSizeMismatch    = sequence.ErrSizeMismatch
	ErrNegativeIndex   = sequence.ErrNegativeIndex
	ErrIndexOutOfRange = sequence.ErrIndexOutOfRange
	ErrNilSequence     = sequence.ErrNilSequence
	ErrMalformedInput  = sequence.ErrMalformedInput
)

// matrixErrorf wraps err with the Matrix method that detected it.
func matrixErrorf(method string, err error) error {
	return fmt.Errorf("Matrix.%s: %w", method, err)
}
