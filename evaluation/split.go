// SPDX-License-Identifier: MIT

package evaluation

import (
	"math/rand"

	"github.com/katalvlaran/scratchml/internal/rng"
)

const (
	opSplitData      = "SplitData"
	opTrainTestSplit = "TrainTestSplit"
)

// SplitData shuffles a copy of data and cuts it so the first part holds
// floor(len(data)·prob) elements. data is not modified.
//
// Errors:
//   - ErrFractionRange if prob is not in [0, 1].
func SplitData[T any](data []T, prob float64, r *rand.Rand) (first, second []T, err error) {
	if !(prob >= 0 && prob <= 1) {
		return nil, nil, evaluationErrorf(opSplitData, ErrFractionRange)
	}
	perm := rng.Perm(len(data), r)
	shuffled := make([]T, len(data))
	for i, j := range perm {
		shuffled[i] = data[j]
	}
	cut := int(float64(len(data)) * prob)
	return shuffled[:cut:cut], shuffled[cut:], nil
}

// TrainTestSplit splits paired xs/ys the same way, holding out a testPct
// fraction for testing. Pairs stay aligned.
//
// Errors:
//   - ErrLengthMismatch if len(xs) != len(ys).
//   - ErrFractionRange if testPct is not in [0, 1].
func TrainTestSplit[X, Y any](xs []X, ys []Y, testPct float64, r *rand.Rand) (xTrain, xTest []X, yTrain, yTest []Y, err error) {
	if len(xs) != len(ys) {
		return nil, nil, nil, nil, evaluationErrorf(opTrainTestSplit, ErrLengthMismatch)
	}
	idxs := make([]int, len(xs))
	for i := range idxs {
		idxs[i] = i
	}
	trainIdx, testIdx, err := SplitData(idxs, 1-testPct, r)
	if err != nil {
		return nil, nil, nil, nil, evaluationErrorf(opTrainTestSplit, err)
	}
	xTrain, yTrain = pick(xs, trainIdx), pick(ys, trainIdx)
	xTest, yTest = pick(xs, testIdx), pick(ys, testIdx)
	return xTrain, xTest, yTrain, yTest, nil
}

func pick[T any](src []T, idx []int) []T {
	out := make([]T, len(idx))
	for i, j := range idx {
		out[i] = src[j]
	}
	return out
}
