// SPDX-License-Identifier: MIT

// Package tmatrix provides Matrix, an upper-triangular square matrix built
// from row Sequences.
//
// A Matrix of size n holds n rows; row i is a *sequence.Sequence. The matrix
// owns its rows: Clone, FromRows, SetRow and Assign deep-copy, so no two
// matrices ever share a row.
//
// Row layout (see Options):
//
//   - FullRows (default): every row has n elements and start index 0.
//     The upper-triangular shape is a convention: callers write cells with
//     column j ≥ row i and leave the rest at zero.
//   - TriangularRows: row i has n-i elements and start index i, so column j
//     of row i lives at position j-i.
//
// Operations:
//
//   - Access: Row (mutable row), SetRow (copy in), At/Set (logical column).
//   - Comparison: Equal, NotEqual (row count, then rows pairwise).
//   - Arithmetic: Add returns a new matrix; SubtractInPlace mutates and
//     returns the receiver; AddInPlace and Subtract are their twins.
//   - Text I/O: Encode writes one row per line with every element
//     right-justified in CellWidth columns; Decode reads rows in order.
//
// Errors:
//
//	ErrInvalidSize    - size < 0 (or above the row-container limit)
//	ErrTooLarge       - size > MaxSize
//	ErrSizeMismatch   - operands with different row counts or row lengths
//	ErrNegativeIndex / ErrIndexOutOfRange - row or cell access
//
// Usage:
//
//	a, _ := tmatrix.New[int](5)
//	for i := 0; i < 5; i++ {
//	  row, _ := a.Row(i)
//	  for j := i; j < 5; j++ {
//	    _ = row.Set(j, 10*i+j)
//	  }
//	}
//	c, err := a.Add(a)
package tmatrix
