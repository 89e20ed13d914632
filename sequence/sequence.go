// SPDX-License-Identifier: MIT

// Package sequence - construction, accessors, comparison and assignment.
//
// Complexity quicksheet:
//   - New: O(n) zero-init; Ref/At/Set: O(1); Clone/Assign/Equal: O(n).
package sequence

// ---------- error context tags ----------

const (
	ctxNew      = "New"
	ctxFrom     = "FromSlice"
	ctxRef      = "Ref"
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxAssign   = "Assign"
	ctxAdd      = "Add"
	ctxSubtract = "Subtract"
	ctxDot      = "Dot"
	ctxDecode   = "Decode"
	ctxEncode   = "Encode"
)

// New creates a zero-initialized Sequence of the given size and start index.
// Implementation:
//   - Stage 1: validate size against the limit (ErrInvalidSize).
//   - Stage 2: validate startIndex (ErrInvalidStartIndex).
//   - Stage 3: allocate size elements plus the guard slot.
//
// Complexity: O(size) time and memory.
func New[T Number](size, startIndex int, opts ...Option) (*Sequence[T], error) {
	o := GatherOptions(opts...)
	if err := ValidateSize(size, o.maxSize); err != nil {
		return nil, sequenceErrorf(ctxNew, err)
	}
	if err := ValidateStartIndex(startIndex); err != nil {
		return nil, sequenceErrorf(ctxNew, err)
	}

	return &Sequence[T]{
		size:       size,
		startIndex: startIndex,
		data:       make([]T, size+1), // make() zero-fills
	}, nil
}

// NewDefault creates a Sequence with DefaultSize elements and DefaultStartIndex.
func NewDefault[T Number]() *Sequence[T] {
	return newUnchecked[T](DefaultSize, DefaultStartIndex)
}

// FromSlice creates a Sequence holding a copy of values.
// The source slice is not retained.
func FromSlice[T Number](values []T, startIndex int, opts ...Option) (*Sequence[T], error) {
	o := GatherOptions(opts...)
	if err := ValidateSize(len(values), o.maxSize); err != nil {
		return nil, sequenceErrorf(ctxFrom, err)
	}
	if err := ValidateStartIndex(startIndex); err != nil {
		return nil, sequenceErrorf(ctxFrom, err)
	}
	s := newUnchecked[T](len(values), startIndex)
	copy(s.data, values)

	return s, nil
}

// newUnchecked allocates without validation; callers guarantee the invariants.
func newUnchecked[T Number](size, startIndex int) *Sequence[T] {
	return &Sequence[T]{size: size, startIndex: startIndex, data: make([]T, size+1)}
}

// Clone returns a deep copy. The source invariants are trusted, so no
// validation is re-run. The guard slot of the copy starts zeroed.
// Complexity: O(n).
func (s *Sequence[T]) Clone() *Sequence[T] {
	c := newUnchecked[T](s.size, s.startIndex)
	copy(c.data, s.data[:s.size])

	return c
}

// Size returns the number of observable elements.
func (s *Sequence[T]) Size() int { return s.size }

// StartIndex returns the recorded start index.
func (s *Sequence[T]) StartIndex() int { return s.startIndex }

// Elements returns a copy of the observable elements.
func (s *Sequence[T]) Elements() []T {
	out := make([]T, s.size)
	copy(out, s.data[:s.size])

	return out
}

// Ref returns a pointer to the element at pos. Writes through the pointer
// mutate the sequence. pos == Size() yields the guard slot.
// Errors: ErrNegativeIndex, ErrIndexOutOfRange.
// Complexity: O(1).
func (s *Sequence[T]) Ref(pos int) (*T, error) {
	if err := ValidateIndex(pos, s.size); err != nil {
		return nil, sequenceErrorf(ctxRef, err)
	}

	return &s.data[pos], nil
}

// At returns the element at pos.
func (s *Sequence[T]) At(pos int) (T, error) {
	if err := ValidateIndex(pos, s.size); err != nil {
		var zero T
		return zero, sequenceErrorf(ctxAt, err)
	}

	return s.data[pos], nil
}

// Set stores v at pos.
func (s *Sequence[T]) Set(pos int, v T) error {
	if err := ValidateIndex(pos, s.size); err != nil {
		return sequenceErrorf(ctxSet, err)
	}
	s.data[pos] = v

	return nil
}

// Equal reports structural equality: same size, same start index and
// pairwise equal elements. A sequence is always equal to itself.
// Complexity: O(n).
func (s *Sequence[T]) Equal(o *Sequence[T]) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil {
		return false
	}
	if s.size != o.size || s.startIndex != o.startIndex {
		return false
	}
	for i := 0; i < s.size; i++ {
		if s.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (s *Sequence[T]) NotEqual(o *Sequence[T]) bool {
	return !s.Equal(o)
}

// Assign overwrites s with a deep copy of o. Storage is reallocated to the
// source size, so assigning a longer sequence over a shorter one is safe.
// Self-assignment is a no-op.
// Errors: ErrNilSequence.
func (s *Sequence[T]) Assign(o *Sequence[T]) error {
	if o == nil {
		return sequenceErrorf(ctxAssign, ErrNilSequence)
	}
	if s == o {
		return nil
	}
	if cap(s.data) < o.size+1 {
		s.data = make([]T, o.size+1)
	} else {
		s.data = s.data[:o.size+1]
		var zero T
		s.data[o.size] = zero
	}
	copy(s.data, o.data[:o.size])
	s.size = o.size
	s.startIndex = o.startIndex

	return nil
}
