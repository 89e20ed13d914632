// SPDX-License-Identifier: MIT

// Package sequence_test contains unit tests for construction, access,
// comparison and assignment of Sequence.
package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/sequence"
)

// mustSeq builds a Sequence from values with start index 0.
func mustSeq(t testing.TB, values ...int) *sequence.Sequence[int] {
	t.Helper()
	s, err := sequence.FromSlice(values, 0)
	require.NoError(t, err)

	return s
}

// TestNew_ValidSizes checks every boundary of the accepted size range.
func TestNew_ValidSizes(t *testing.T) {
	const limit = 16
	for size := 0; size <= limit; size++ {
		s, err := sequence.New[int](size, 0, sequence.WithMaxSize(limit))
		require.NoError(t, err, "size=%d", size)
		require.Equal(t, size, s.Size())
		require.Equal(t, 0, s.StartIndex())
	}

	s, err := sequence.New[float64](3, 7)
	require.NoError(t, err)
	require.Equal(t, 7, s.StartIndex())
	require.Equal(t, []float64{0, 0, 0}, s.Elements()) // zero-initialized
}

// TestNew_Invalid covers negative size, negative start index and too large size.
func TestNew_Invalid(t *testing.T) {
	_, err := sequence.New[int](-5, 0)
	require.ErrorIs(t, err, sequence.ErrInvalidSize)

	_, err = sequence.New[int](5, -2)
	require.ErrorIs(t, err, sequence.ErrInvalidStartIndex)

	_, err = sequence.New[int](sequence.DefaultMaxSize+1, 0)
	require.ErrorIs(t, err, sequence.ErrInvalidSize)

	_, err = sequence.New[int](4, 0, sequence.WithMaxSize(3))
	require.ErrorIs(t, err, sequence.ErrInvalidSize)
}

func TestNewDefault(t *testing.T) {
	s := sequence.NewDefault[int]()
	require.Equal(t, sequence.DefaultSize, s.Size())
	require.Equal(t, sequence.DefaultStartIndex, s.StartIndex())
}

// TestClone_Independent verifies that a copy is equal and owns its storage.
func TestClone_Independent(t *testing.T) {
	src := mustSeq(t, 1, 2, 3)
	cp := src.Clone()
	require.True(t, cp.Equal(src))

	require.NoError(t, cp.Set(0, 100))
	require.Equal(t, []int{1, 2, 3}, src.Elements())
	require.NoError(t, src.Set(2, -1))
	require.Equal(t, []int{100, 2, 3}, cp.Elements())
}

func TestFromSlice_DoesNotRetainSource(t *testing.T) {
	values := []int{4, 5}
	s, err := sequence.FromSlice(values, 1)
	require.NoError(t, err)
	values[0] = 0
	require.Equal(t, []int{4, 5}, s.Elements())
	require.Equal(t, 1, s.StartIndex())

	_, err = sequence.FromSlice([]int{1}, -1)
	require.ErrorIs(t, err, sequence.ErrInvalidStartIndex)
}

// TestRef_Bounds pins the accepted position range 0..Size().
func TestRef_Bounds(t *testing.T) {
	s := mustSeq(t, 1, 2, 3)

	_, err := s.Ref(-1)
	require.ErrorIs(t, err, sequence.ErrNegativeIndex)

	p, err := s.Ref(3) // guard slot
	require.NoError(t, err)
	*p = 42
	require.Equal(t, []int{1, 2, 3}, s.Elements(), "guard slot is not observable")
	require.True(t, s.Equal(mustSeq(t, 1, 2, 3)))

	_, err = s.Ref(4)
	require.ErrorIs(t, err, sequence.ErrIndexOutOfRange)

	_, err = s.At(-3)
	require.ErrorIs(t, err, sequence.ErrNegativeIndex)
	require.ErrorIs(t, s.Set(10, 1), sequence.ErrIndexOutOfRange)
}

func TestRef_WritesThrough(t *testing.T) {
	s := mustSeq(t, 0, 0)
	p, err := s.Ref(1)
	require.NoError(t, err)
	*p = 9

	v, err := s.At(1)
	require.NoError(t, err)
	require.Equal(t, 9, v)
}

func TestEqual(t *testing.T) {
	a := mustSeq(t, 1, 2, 3)
	require.True(t, a.Equal(a))
	require.False(t, a.NotEqual(a))

	require.False(t, a.Equal(mustSeq(t, 1, 2)), "different size")
	require.True(t, a.NotEqual(mustSeq(t, 1, 2, 4)), "different element")

	shifted, err := sequence.FromSlice([]int{1, 2, 3}, 1)
	require.NoError(t, err)
	require.False(t, a.Equal(shifted), "different start index")

	require.False(t, a.Equal(nil))
}

// TestAssign covers growth, shrink and self-assignment.
func TestAssign(t *testing.T) {
	dst := mustSeq(t, 1, 2)
	src, err := sequence.FromSlice([]int{7, 8, 9, 10}, 2)
	require.NoError(t, err)

	require.NoError(t, dst.Assign(src))
	require.True(t, dst.Equal(src))
	require.Equal(t, 4, dst.Size())
	require.Equal(t, 2, dst.StartIndex())

	require.NoError(t, src.Set(0, 0))
	require.Equal(t, []int{7, 8, 9, 10}, dst.Elements(), "assign deep-copies")

	small := mustSeq(t, 5)
	require.NoError(t, dst.Assign(small))
	require.True(t, dst.Equal(small))

	require.NoError(t, dst.Assign(dst))
	require.True(t, dst.Equal(small))

	require.ErrorIs(t, dst.Assign(nil), sequence.ErrNilSequence)
}
