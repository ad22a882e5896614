// SPDX-License-Identifier: MIT

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scratchml/linalg"
)

func TestAddSubtract(t *testing.T) {
	t.Parallel()

	sum, err := linalg.Add(linalg.Vector{1, 2, 3}, linalg.Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, linalg.Vector{5, 7, 9}, sum)

	diff, err := linalg.Subtract(linalg.Vector{5, 7, 9}, linalg.Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, linalg.Vector{1, 2, 3}, diff)
}

// TestMismatchedLengths checks every binary operation rejects operands of
// different length, for a spread of length pairs.
func TestMismatchedLengths(t *testing.T) {
	t.Parallel()

	cases := []struct{ n, m int }{{0, 1}, {1, 0}, {2, 3}, {5, 4}, {1, 10}}
	for _, c := range cases {
		v, w := linalg.Zeros(c.n), linalg.Zeros(c.m)

		_, err := linalg.Add(v, w)
		assert.ErrorIs(t, err, linalg.ErrLengthMismatch, "Add %d/%d", c.n, c.m)
		_, err = linalg.Subtract(v, w)
		assert.ErrorIs(t, err, linalg.ErrLengthMismatch, "Subtract %d/%d", c.n, c.m)
		_, err = linalg.Dot(v, w)
		assert.ErrorIs(t, err, linalg.ErrLengthMismatch, "Dot %d/%d", c.n, c.m)
		_, err = linalg.Distance(v, w)
		assert.ErrorIs(t, err, linalg.ErrLengthMismatch, "Distance %d/%d", c.n, c.m)
		_, err = linalg.SquaredDistance(v, w)
		assert.ErrorIs(t, err, linalg.ErrLengthMismatch, "SquaredDistance %d/%d", c.n, c.m)
	}
}

func TestVectorSumAndMean(t *testing.T) {
	t.Parallel()

	sum, err := linalg.VectorSum([]linalg.Vector{{1, 2}, {3, 4}, {5, 6}, {7, 8}})
	require.NoError(t, err)
	assert.Equal(t, linalg.Vector{16, 20}, sum)

	mean, err := linalg.VectorMean([]linalg.Vector{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{3, 4}, []float64(mean), 1e-12)

	_, err = linalg.VectorSum(nil)
	assert.ErrorIs(t, err, linalg.ErrEmptyInput)
	_, err = linalg.VectorMean([]linalg.Vector{})
	assert.ErrorIs(t, err, linalg.ErrEmptyInput)
	_, err = linalg.VectorSum([]linalg.Vector{{1, 2}, {3}})
	assert.ErrorIs(t, err, linalg.ErrLengthMismatch)
}

func TestVectorSum_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	first := linalg.Vector{1, 1}
	_, err := linalg.VectorSum([]linalg.Vector{first, {2, 2}})
	require.NoError(t, err)
	assert.Equal(t, linalg.Vector{1, 1}, first)
}

func TestDotNorms(t *testing.T) {
	t.Parallel()

	d, err := linalg.Dot(linalg.Vector{1, 2, 3}, linalg.Vector{4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 32.0, d)

	assert.Equal(t, 14.0, linalg.SumOfSquares(linalg.Vector{1, 2, 3}))
	assert.Equal(t, 5.0, linalg.Magnitude(linalg.Vector{3, 4}))
	assert.Equal(t, linalg.Vector{2, 4, 6}, linalg.ScalarMultiply(2, linalg.Vector{1, 2, 3}))

	sq, err := linalg.SquaredDistance(linalg.Vector{0, 0}, linalg.Vector{3, 4})
	require.NoError(t, err)
	assert.Equal(t, 25.0, sq)
}

// TestDistance_Symmetry covers distance(v,w)==distance(w,v) and
// distance(v,v)==0 over random vectors.
func TestDistance_Symmetry(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 200; trial++ {
		n := 1 + r.Intn(8)
		v, w := make(linalg.Vector, n), make(linalg.Vector, n)
		for i := 0; i < n; i++ {
			v[i] = r.NormFloat64() * 100
			w[i] = r.NormFloat64() * 100
		}
		dvw, err := linalg.Distance(v, w)
		require.NoError(t, err)
		dwv, err := linalg.Distance(w, v)
		require.NoError(t, err)
		assert.Equal(t, dvw, dwv)

		dvv, err := linalg.Distance(v, v)
		require.NoError(t, err)
		assert.Equal(t, 0.0, dvv)
	}
}
