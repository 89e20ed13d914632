// SPDX-License-Identifier: MIT

// Package tmatrix - construction, row/cell access, comparison, assignment.
//
// Complexity quicksheet:
//   - New: O(n²) zero-init (FullRows) or O(n²/2) (TriangularRows).
//   - Row/At/Set: O(1); Clone/Assign/Equal: O(total elements).
package tmatrix

import "github.com/katalvlaran/utmatrix/sequence"

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFromRows = "FromRows"
	ctxRow      = "Row"
	ctxSetRow   = "SetRow"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAssign   = "Assign"
	ctxAdd      = "Add"
	ctxSubtract = "Subtract"
	ctxEncode   = "Encode"
	ctxDecode   = "Decode"
)

// Matrix is an upper-triangular square matrix of row Sequences.
// len(rows) is the matrix size; every row is exclusively owned.
type Matrix[T sequence.Number] struct {
	rows []*sequence.Sequence[T]
}

// New creates a zero matrix with size rows.
// A size above MaxVectorSize reports ErrInvalidSize even when it also
// exceeds MaxSize: the row-container check runs before ErrTooLarge.
// Implementation:
//   - Stage 1: validate size as a row container (ErrInvalidSize for size<0
//     or size>MaxVectorSize).
//   - Stage 2: validate the matrix limit (ErrTooLarge for size>MaxSize).
//   - Stage 3: allocate rows according to the layout.
//
// Complexity: O(n²) time and memory.
func New[T sequence.Number](size int, opts ...Option) (*Matrix[T], error) {
	o := GatherOptions(opts...)
	if err := sequence.ValidateSize(size, o.maxVectorSize); err != nil {
		return nil, matrixErrorf(ctxNew, err)
	}
	if size > o.maxSize {
		return nil, matrixErrorf(ctxNew, ErrTooLarge)
	}

	m := &Matrix[T]{rows: make([]*sequence.Sequence[T], size)}
	for i := 0; i < size; i++ {
		n, start := size, 0
		if o.layout == TriangularRows {
			n, start = size-i, i
		}
		row, err := sequence.New[T](n, start, sequence.WithMaxSize(o.maxVectorSize))
		if err != nil {
			return nil, matrixErrorf(ctxNew, err)
		}
		m.rows[i] = row
	}

	return m, nil
}

// NewDefault creates a DefaultSize matrix with default options.
func NewDefault[T sequence.Number]() *Matrix[T] {
	m, _ := New[T](DefaultSize) // DefaultSize is within every default limit

	return m
}

// FromRows builds a matrix from deep copies of rows. The rows are taken as
// given: no triangular-shape or length check is performed.
// Errors: ErrNilSequence when any row is nil.
func FromRows[T sequence.Number](rows ...*sequence.Sequence[T]) (*Matrix[T], error) {
	m := &Matrix[T]{rows: make([]*sequence.Sequence[T], len(rows))}
	for i, r := range rows {
		if r == nil {
			return nil, matrixErrorf(ctxFromRows, ErrNilSequence)
		}
		m.rows[i] = r.Clone()
	}

	return m, nil
}

// Clone returns a deep copy; rows of the copy share nothing with m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	c := &Matrix[T]{rows: make([]*sequence.Sequence[T], len(m.rows))}
	for i, r := range m.rows {
		c.rows[i] = r.Clone()
	}

	return c
}

// Size returns the number of rows.
func (m *Matrix[T]) Size() int { return len(m.rows) }

// validateRow checks 0 ≤ i < Size().
func (m *Matrix[T]) validateRow(i int) error {
	if i < 0 {
		return ErrNegativeIndex
	}
	if i >= len(m.rows) {
		return ErrIndexOutOfRange
	}

	return nil
}

// Row returns row i. The returned Sequence is the matrix's own row: writes
// through it mutate the matrix.
// Errors: ErrNegativeIndex, ErrIndexOutOfRange (i ≥ Size()).
func (m *Matrix[T]) Row(i int) (*sequence.Sequence[T], error) {
	if err := m.validateRow(i); err != nil {
		return nil, matrixErrorf(ctxRow, err)
	}

	return m.rows[i], nil
}

// SetRow overwrites row i with a deep copy of row.
func (m *Matrix[T]) SetRow(i int, row *sequence.Sequence[T]) error {
	if err := m.validateRow(i); err != nil {
		return matrixErrorf(ctxSetRow, err)
	}
	if err := m.rows[i].Assign(row); err != nil {
		return matrixErrorf(ctxSetRow, err)
	}

	return nil
}

// cellPos maps logical column j of row i to a position inside the row.
// below reports a column left of the row's start index.
func (m *Matrix[T]) cellPos(i, j int) (row *sequence.Sequence[T], pos int, below bool, err error) {
	if err = m.validateRow(i); err != nil {
		return nil, 0, false, err
	}
	if j < 0 {
		return nil, 0, false, ErrNegativeIndex
	}
	row = m.rows[i]
	pos = j - row.StartIndex()
	if pos < 0 {
		return row, pos, true, nil
	}
	if pos >= row.Size() {
		return nil, 0, false, ErrIndexOutOfRange
	}

	return row, pos, false, nil
}

// At returns the value at row i, column j. Columns left of a row's start
// index read as zero.
func (m *Matrix[T]) At(i, j int) (T, error) {
	var zero T
	row, pos, below, err := m.cellPos(i, j)
	if err != nil {
		return zero, matrixErrorf(ctxAt, err)
	}
	if below {
		return zero, nil
	}
	v, err := row.At(pos)
	if err != nil {
		return zero, matrixErrorf(ctxAt, err)
	}

	return v, nil
}

// Set stores v at row i, column j. Columns left of a row's start index are
// not stored and fail with ErrIndexOutOfRange.
func (m *Matrix[T]) Set(i, j int, v T) error {
	row, pos, below, err := m.cellPos(i, j)
	if err != nil {
		return matrixErrorf(ctxSet, err)
	}
	if below {
		return matrixErrorf(ctxSet, ErrIndexOutOfRange)
	}
	if err = row.Set(pos, v); err != nil {
		return matrixErrorf(ctxSet, err)
	}

	return nil
}

// Equal compares row counts, then rows pairwise with row equality.
// A matrix is always equal to itself.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == o {
		return true
	}
	if m == nil || o == nil {
		return false
	}
	if len(m.rows) != len(o.rows) {
		return false
	}
	for i := range m.rows {
		if !m.rows[i].Equal(o.rows[i]) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m *Matrix[T]) NotEqual(o *Matrix[T]) bool {
	return !m.Equal(o)
}

// Assign makes m a deep copy of o. Existing rows are overwritten through row
// assignment; the row slice grows or shrinks to o.Size(). Row references
// obtained earlier from m stay valid for the rows that survive.
func (m *Matrix[T]) Assign(o *Matrix[T]) error {
	if o == nil {
		return matrixErrorf(ctxAssign, ErrNilMatrix)
	}
	if m == o {
		return nil
	}

	n := len(o.rows)
	rows := make([]*sequence.Sequence[T], n)
	for i := 0; i < n; i++ {
		if i < len(m.rows) {
			if err := m.rows[i].Assign(o.rows[i]); err != nil {
				return matrixErrorf(ctxAssign, err)
			}
			rows[i] = m.rows[i]
			continue
		}
		rows[i] = o.rows[i].Clone()
	}
	m.rows = rows

	return nil
}
