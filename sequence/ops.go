// SPDX-License-Identifier: MIT

// Package sequence - scalar and pairwise arithmetic.
//
// Two families:
//   - *InPlace operations mutate the receiver and return it, so calls chain
//     and callers can assert on operand identity.
//   - pure operations allocate and return a new Sequence; operands are untouched.
//
// Pairwise operations require equal sizes (ErrSizeMismatch). Results of pure
// operations carry the receiver's start index.
package sequence

// ---------- scalar, in place ----------

// AddScalarInPlace adds v to every element of s and returns s.
// Complexity: O(n).
func (s *Sequence[T]) AddScalarInPlace(v T) *Sequence[T] {
	for i := 0; i < s.size; i++ {
		s.data[i] += v
	}

	return s
}

// SubScalarInPlace subtracts v from every element of s and returns s.
func (s *Sequence[T]) SubScalarInPlace(v T) *Sequence[T] {
	for i := 0; i < s.size; i++ {
		s.data[i] -= v
	}

	return s
}

// MulScalarInPlace multiplies every element of s by v and returns s.
func (s *Sequence[T]) MulScalarInPlace(v T) *Sequence[T] {
	for i := 0; i < s.size; i++ {
		s.data[i] *= v
	}

	return s
}

// ---------- scalar, pure ----------

// AddScalar returns a new sequence with v added to every element.
func (s *Sequence[T]) AddScalar(v T) *Sequence[T] { return s.Clone().AddScalarInPlace(v) }

// SubScalar returns a new sequence with v subtracted from every element.
func (s *Sequence[T]) SubScalar(v T) *Sequence[T] { return s.Clone().SubScalarInPlace(v) }

// MulScalar returns a new sequence with every element multiplied by v.
func (s *Sequence[T]) MulScalar(v T) *Sequence[T] { return s.Clone().MulScalarInPlace(v) }

// ---------- pairwise ----------

// Add returns a new sequence r with r[i] = s[i] + o[i].
// Neither operand is modified.
// Errors: ErrNilSequence, ErrSizeMismatch.
// Complexity: O(n) time and memory.
func (s *Sequence[T]) Add(o *Sequence[T]) (*Sequence[T], error) {
	if err := validateOperand(s, o); err != nil {
		return nil, sequenceErrorf(ctxAdd, err)
	}
	r := newUnchecked[T](s.size, s.startIndex)
	for i := 0; i < s.size; i++ {
		r.data[i] = s.data[i] + o.data[i]
	}

	return r, nil
}

// AddInPlace sets s[i] += o[i] and returns s.
func (s *Sequence[T]) AddInPlace(o *Sequence[T]) (*Sequence[T], error) {
	if err := validateOperand(s, o); err != nil {
		return nil, sequenceErrorf(ctxAdd, err)
	}
	for i := 0; i < s.size; i++ {
		s.data[i] += o.data[i]
	}

	return s, nil
}

// SubtractInPlace sets s[i] -= o[i] and returns s.
// Errors: ErrNilSequence, ErrSizeMismatch; s is untouched on error.
// Complexity: O(n), no allocation.
func (s *Sequence[T]) SubtractInPlace(o *Sequence[T]) (*Sequence[T], error) {
	if err := validateOperand(s, o); err != nil {
		return nil, sequenceErrorf(ctxSubtract, err)
	}
	for i := 0; i < s.size; i++ {
		s.data[i] -= o.data[i]
	}

	return s, nil
}

// Subtract returns a new sequence r with r[i] = s[i] - o[i].
func (s *Sequence[T]) Subtract(o *Sequence[T]) (*Sequence[T], error) {
	if err := validateOperand(s, o); err != nil {
		return nil, sequenceErrorf(ctxSubtract, err)
	}
	r := newUnchecked[T](s.size, s.startIndex)
	for i := 0; i < s.size; i++ {
		r.data[i] = s.data[i] - o.data[i]
	}

	return r, nil
}

// Dot returns Σ s[i]*o[i], accumulated from the zero value of T.
// Errors: ErrNilSequence, ErrSizeMismatch.
func (s *Sequence[T]) Dot(o *Sequence[T]) (T, error) {
	var acc T
	if err := validateOperand(s, o); err != nil {
		return acc, sequenceErrorf(ctxDot, err)
	}
	for i := 0; i < s.size; i++ {
		acc += s.data[i] * o.data[i]
	}

	return acc, nil
}
