// SPDX-License-Identifier: MIT

package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/sequence"
)

// TestScalarInPlace_MutatesReceiver asserts both identity and value.
func TestScalarInPlace_MutatesReceiver(t *testing.T) {
	s := mustSeq(t, 1, 2, 3)

	require.Same(t, s, s.AddScalarInPlace(1))
	require.Equal(t, []int{2, 3, 4}, s.Elements())

	require.Same(t, s, s.SubScalarInPlace(2))
	require.Equal(t, []int{0, 1, 2}, s.Elements())

	require.Same(t, s, s.MulScalarInPlace(3))
	require.Equal(t, []int{0, 3, 6}, s.Elements())
}

func TestScalarPure_LeavesReceiver(t *testing.T) {
	s := mustSeq(t, 1, 2, 3)

	sum := s.AddScalar(10)
	diff := s.SubScalar(1)
	prod := s.MulScalar(2)

	require.Equal(t, []int{11, 12, 13}, sum.Elements())
	require.Equal(t, []int{0, 1, 2}, diff.Elements())
	require.Equal(t, []int{2, 4, 6}, prod.Elements())
	require.Equal(t, []int{1, 2, 3}, s.Elements())
	require.NotSame(t, s, sum)
}

// TestAdd_NewResult checks that addition does not mutate either operand.
func TestAdd_NewResult(t *testing.T) {
	a := mustSeq(t, 1, 2, 3)
	b := mustSeq(t, 10, 20, 30)

	r, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []int{11, 22, 33}, r.Elements())
	require.Equal(t, []int{1, 2, 3}, a.Elements())
	require.Equal(t, []int{10, 20, 30}, b.Elements())

	r2, err := a.AddInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, r2)
	require.True(t, a.Equal(r))
}

// TestSubtractInPlace_MutatesLeft checks the in-place subtraction contract.
func TestSubtractInPlace_MutatesLeft(t *testing.T) {
	a := mustSeq(t, 5, 7, 9)
	b := mustSeq(t, 1, 2, 3)

	r, err := a.SubtractInPlace(b)
	require.NoError(t, err)
	require.Same(t, a, r)
	require.Equal(t, []int{4, 5, 6}, a.Elements())
	require.Equal(t, []int{1, 2, 3}, b.Elements())

	d, err := b.Subtract(b)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0, 0}, d.Elements())
	require.Equal(t, []int{1, 2, 3}, b.Elements())
}

func TestPairwise_SizeMismatch(t *testing.T) {
	a := mustSeq(t, 1, 2, 3)
	b := mustSeq(t, 1, 2)

	_, err := a.Add(b)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)
	_, err = a.AddInPlace(b)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)
	_, err = a.Subtract(b)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)
	_, err = a.SubtractInPlace(b)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)
	require.Equal(t, []int{1, 2, 3}, a.Elements(), "failed op leaves operand untouched")
	_, err = a.Dot(b)
	require.ErrorIs(t, err, sequence.ErrSizeMismatch)

	_, err = a.Add(nil)
	require.ErrorIs(t, err, sequence.ErrNilSequence)
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a, b []int
		want int
	}{
		{"empty", nil, nil, 0},
		{"single", []int{3}, []int{4}, 12},
		{"mixed signs", []int{1, -2, 3}, []int{4, 5, -6}, 4 - 10 - 18},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mustSeq(t, tc.a...).Dot(mustSeq(t, tc.b...))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	fa, err := sequence.FromSlice([]float64{0.5, 1.5}, 0)
	require.NoError(t, err)
	got, err := fa.Dot(fa)
	require.NoError(t, err)
	require.InDelta(t, 2.5, got, 1e-12)
}

// TestResultKeepsStartIndex pins the start index of pure results.
func TestResultKeepsStartIndex(t *testing.T) {
	a, err := sequence.FromSlice([]int{1, 2}, 3)
	require.NoError(t, err)

	r, err := a.Add(a)
	require.NoError(t, err)
	require.Equal(t, 3, r.StartIndex())
	require.Equal(t, 3, a.MulScalar(2).StartIndex())
}
