// SPDX-License-Identifier: MIT

package dataset

import (
	"slices"

	"github.com/katalvlaran/scratchml/linalg"
	"github.com/katalvlaran/scratchml/regression"
)

const opWithoutOutlier = "WithoutOutlier"

// OutlierFriends is the friend count of the one user excluded from the
// "good" series.
const OutlierFriends = 100

// NumFriends returns the friend count of every user.
func NumFriends() []float64 { return slices.Clone(numFriends) }

// DailyMinutes returns the minutes each user spends on the site per day,
// index-aligned with NumFriends.
func DailyMinutes() []float64 { return slices.Clone(dailyMinutes) }

// DailyHours returns DailyMinutes / 60.
func DailyHours() []float64 {
	out := make([]float64, len(dailyMinutes))
	for i, m := range dailyMinutes {
		out[i] = m / 60
	}
	return out
}

// WithoutOutlier removes the first user whose friend count is
// OutlierFriends from both series.
//
// Errors:
//   - ErrLengthMismatch if the series differ in length.
//   - ErrNoOutlier if no such user exists.
func WithoutOutlier(friends, minutes []float64) (goodFriends, goodMinutes []float64, err error) {
	if len(friends) != len(minutes) {
		return nil, nil, datasetErrorf(opWithoutOutlier, ErrLengthMismatch)
	}
	idx := slices.Index(friends, OutlierFriends)
	if idx < 0 {
		return nil, nil, datasetErrorf(opWithoutOutlier, ErrNoOutlier)
	}
	goodFriends = slices.Delete(slices.Clone(friends), idx, idx+1)
	goodMinutes = slices.Delete(slices.Clone(minutes), idx, idx+1)
	return goodFriends, goodMinutes, nil
}

// GoodSeries returns NumFriends and DailyMinutes with the outlier removed.
func GoodSeries() (friends, minutes []float64) {
	friends, minutes, _ = WithoutOutlier(numFriends, dailyMinutes)
	return friends, minutes
}

// RegressionExamples pairs each non-outlier user's
// [1, friends, work hours, has PhD] row with their daily minutes.
func RegressionExamples() []regression.Example {
	_, minutes := GoodSeries()
	out := make([]regression.Example, len(regressionInputs))
	for i, row := range regressionInputs {
		out[i] = regression.Example{X: linalg.Vector(slices.Clone(row)), Y: minutes[i]}
	}
	return out
}
