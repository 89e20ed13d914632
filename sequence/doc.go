// SPDX-License-Identifier: MIT

// Package sequence provides Sequence, a generic, bounds-checked, exclusively
// owned array container for numeric element types.
//
// A Sequence carries:
//   - Size: the number of observable elements (0 ≤ Size ≤ MaxSize).
//   - StartIndex: a non-negative offset recorded with the sequence. It takes
//     part in equality and is used by containers built on top of Sequence
//     (see tmatrix) to map logical columns onto positions.
//   - Storage: a private slice, zero-initialized, never shared with another
//     Sequence. Clone and Assign always deep-copy.
//
// Operations:
//
//   - Element access: Ref (mutable pointer), At, Set.
//   - Comparison: Equal, NotEqual.
//   - Scalar arithmetic: AddScalarInPlace, SubScalarInPlace, MulScalarInPlace
//     mutate and return the receiver; AddScalar, SubScalar, MulScalar return
//     fresh copies.
//   - Pairwise arithmetic: Add returns a new sequence, SubtractInPlace mutates
//     and returns the receiver; AddInPlace and Subtract are their twins.
//   - Dot product: Dot.
//   - Text I/O: Encode, EncodeAligned, Decode, String.
//
// Index bound:
//
//	Ref(pos) accepts 0 ≤ pos ≤ Size. Position Size addresses a guard slot
//	that is never compared, encoded or used in arithmetic. Any other
//	position fails with ErrNegativeIndex or ErrIndexOutOfRange.
//
// Errors are package sentinels, wrapped with the method name; match them with
// errors.Is.
//
// Usage:
//
//	v, err := sequence.New[int](3, 0)
//	if err != nil {
//	  // handle ErrInvalidSize / ErrInvalidStartIndex
//	}
//	_ = v.Set(0, 1)
//	w := v.Clone().MulScalarInPlace(2)
//	dot, _ := v.Dot(w)
package sequence
