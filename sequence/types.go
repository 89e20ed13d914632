// SPDX-License-Identifier: MIT

// Package sequence: element constraint and the Sequence type.
package sequence

import "fmt"

// Number is the set of element types a Sequence can hold: every type that
// supports +, -, * and ==, and that fmt can print and scan.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128
}

// Sequence is a resizable, bounds-checked ordered container.
//   - size is the number of observable elements.
//   - startIndex is an offset recorded with the sequence (≥ 0).
//   - data holds size elements followed by one guard slot (len == size+1).
type Sequence[T Number] struct {
	size       int // observable element count
	startIndex int // recorded offset, part of equality
	data       []T // exclusively owned; data[size] is the guard slot
}

var _ fmt.Stringer = (*Sequence[int])(nil)
