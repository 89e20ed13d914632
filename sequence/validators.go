// SPDX-License-Identifier: MIT
// Package: sequence
//
// Purpose:
//  - Single source of truth for size, start-index and position checks.
//  - Return plain sentinels (no wrapping) so call sites can tag them uniformly.
//
// All checks are pure and allocate nothing.

package sequence

// ValidateSize ensures 0 ≤ size ≤ limit.
// Returns ErrInvalidSize otherwise.
func ValidateSize(size, limit int) error {
	if size < 0 || size > limit {
		return ErrInvalidSize
	}

	return nil
}

// ValidateStartIndex ensures startIndex ≥ 0.
func ValidateStartIndex(startIndex int) error {
	if startIndex < 0 {
		return ErrInvalidStartIndex
	}

	return nil
}

// ValidateIndex checks pos against a container of the given size.
// The accepted range is 0 ≤ pos ≤ size: position size is the guard slot.
func ValidateIndex(pos, size int) error {
	if pos < 0 {
		return ErrNegativeIndex
	}
	if pos > size {
		return ErrIndexOutOfRange
	}

	return nil
}

// ValidateSameSize ensures two operand sizes agree.
func ValidateSameSize(a, b int) error {
	if a != b {
		return ErrSizeMismatch
	}

	return nil
}

// validateOperand rejects a nil operand before a size comparison.
func validateOperand[T Number](s, o *Sequence[T]) error {
	if o == nil {
		return ErrNilSequence
	}

	return ValidateSameSize(s.size, o.size)
}
