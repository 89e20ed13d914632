// SPDX-License-Identifier: MIT

// Package tmatrix - row-wise addition and subtraction.
//
// Every operation validates all row pairs before touching any data, so a
// failed call leaves both operands unchanged.
package tmatrix

import "github.com/katalvlaran/utmatrix/sequence"

// validateOperand checks o for nil, equal row counts and equal row lengths.
func (m *Matrix[T]) validateOperand(o *Matrix[T]) error {
	if o == nil {
		return ErrNilMatrix
	}
	if len(m.rows) != len(o.rows) {
		return ErrSizeMismatch
	}
	for i := range m.rows {
		if err := sequence.ValidateSameSize(m.rows[i].Size(), o.rows[i].Size()); err != nil {
			return err
		}
	}

	return nil
}

// Add returns a new matrix whose row i is m.Row(i) + o.Row(i).
// Neither operand is modified.
// Errors: ErrNilMatrix, ErrSizeMismatch.
// Complexity: O(total elements) time and memory.
func (m *Matrix[T]) Add(o *Matrix[T]) (*Matrix[T], error) {
	if err := m.validateOperand(o); err != nil {
		return nil, matrixErrorf(ctxAdd, err)
	}
	r := &Matrix[T]{rows: make([]*sequence.Sequence[T], len(m.rows))}
	for i := range m.rows {
		row, err := m.rows[i].Add(o.rows[i])
		if err != nil {
			return nil, matrixErrorf(ctxAdd, err)
		}
		r.rows[i] = row
	}

	return r, nil
}

// AddInPlace adds o into m row by row and returns m.
func (m *Matrix[T]) AddInPlace(o *Matrix[T]) (*Matrix[T], error) {
	if err := m.validateOperand(o); err != nil {
		return nil, matrixErrorf(ctxAdd, err)
	}
	for i := range m.rows {
		if _, err := m.rows[i].AddInPlace(o.rows[i]); err != nil {
			return nil, matrixErrorf(ctxAdd, err)
		}
	}

	return m, nil
}

// SubtractInPlace subtracts o from m row by row and returns m.
// Errors: ErrNilMatrix, ErrSizeMismatch; m is untouched on error.
func (m *Matrix[T]) SubtractInPlace(o *Matrix[T]) (*Matrix[T], error) {
	if err := m.validateOperand(o); err != nil {
		return nil, matrixErrorf(ctxSubtract, err)
	}
	for i := range m.rows {
		if _, err := m.rows[i].SubtractInPlace(o.rows[i]); err != nil {
			return nil, matrixErrorf(ctxSubtract, err)
		}
	}

	return m, nil
}

// Subtract returns a new matrix m - o; neither operand is modified.
func (m *Matrix[T]) Subtract(o *Matrix[T]) (*Matrix[T], error) {
	return m.Clone().SubtractInPlace(o)
}
