// SPDX-License-Identifier: MIT

package evaluation_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scratchml/evaluation"
	"github.com/katalvlaran/scratchml/internal/rng"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSplitData_SizesAndUnion(t *testing.T) {
	t.Parallel()

	data := ints(1000)
	train, test, err := evaluation.SplitData(data, 0.75, rng.New(0))
	require.NoError(t, err)
	assert.Len(t, train, 750)
	assert.Len(t, test, 250)

	all := append(append([]int(nil), train...), test...)
	sort.Ints(all)
	assert.Equal(t, data, all)

	// input untouched
	assert.Equal(t, ints(1000), data)
}

func TestSplitData_Deterministic(t *testing.T) {
	t.Parallel()

	a1, _, err := evaluation.SplitData(ints(100), 0.5, rng.New(11))
	require.NoError(t, err)
	a2, _, err := evaluation.SplitData(ints(100), 0.5, rng.New(11))
	require.NoError(t, err)
	assert.Equal(t, a1, a2)
}

func TestSplitData_Edges(t *testing.T) {
	t.Parallel()

	first, second, err := evaluation.SplitData(ints(10), 0, nil)
	require.NoError(t, err)
	assert.Empty(t, first)
	assert.Len(t, second, 10)

	first, second, err = evaluation.SplitData(ints(10), 1, nil)
	require.NoError(t, err)
	assert.Len(t, first, 10)
	assert.Empty(t, second)

	_, _, err = evaluation.SplitData(ints(10), 1.5, nil)
	assert.ErrorIs(t, err, evaluation.ErrFractionRange)
	_, _, err = evaluation.SplitData(ints(10), -0.1, nil)
	assert.ErrorIs(t, err, evaluation.ErrFractionRange)
}

func TestTrainTestSplit_KeepsPairsAligned(t *testing.T) {
	t.Parallel()

	xs := ints(1000)
	ys := make([]int, len(xs))
	for i, x := range xs {
		ys[i] = 2 * x
	}
	xTrain, xTest, yTrain, yTest, err := evaluation.TrainTestSplit(xs, ys, 0.25, rng.New(3))
	require.NoError(t, err)
	assert.Len(t, xTrain, 750)
	assert.Len(t, xTest, 250)
	require.Len(t, yTrain, 750)
	require.Len(t, yTest, 250)
	for i := range xTrain {
		assert.Equal(t, 2*xTrain[i], yTrain[i])
	}
	for i := range xTest {
		assert.Equal(t, 2*xTest[i], yTest[i])
	}
}

func TestTrainTestSplit_Errors(t *testing.T) {
	t.Parallel()

	_, _, _, _, err := evaluation.TrainTestSplit([]int{1, 2}, []int{1}, 0.5, nil)
	assert.ErrorIs(t, err, evaluation.ErrLengthMismatch)
	_, _, _, _, err = evaluation.TrainTestSplit([]int{1}, []int{1}, 2, nil)
	assert.ErrorIs(t, err, evaluation.ErrFractionRange)
}
