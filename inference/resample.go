// SPDX-License-Identifier: MIT
// Package: inference
//
// Purpose:
//   - Bootstrap resampling with replacement.
//   - Coin-flip simulation for checking the significance level of a test.

package inference

import (
	"math/rand"

	"github.com/katalvlaran/scratchml/internal/rng"
)

const (
	opBootstrapSample    = "BootstrapSample"
	opBootstrapStatistic = "BootstrapStatistic"
	opCountRejections    = "CountRejections"
	opExtremeValueCount  = "ExtremeValueCount"
)

// BootstrapSample returns len(data) elements drawn from data uniformly with
// replacement.
//
// Errors:
//   - ErrEmptyData if data is empty.
func BootstrapSample[T any](data []T, r *rand.Rand) ([]T, error) {
	if len(data) == 0 {
		return nil, inferenceErrorf(opBootstrapSample, ErrEmptyData)
	}
	r = rng.OrDefault(r)
	out := make([]T, len(data))
	for i := range out {
		out[i] = data[r.Intn(len(data))]
	}
	return out, nil
}

// BootstrapStatistic evaluates statFn on numSamples bootstrap samples of
// data. The first statFn error aborts the run.
//
// Errors:
//   - ErrEmptyData if data is empty.
//   - ErrBadSamples if numSamples <= 0.
func BootstrapStatistic[T, S any](data []T, statFn func([]T) (S, error), numSamples int, r *rand.Rand) ([]S, error) {
	if len(data) == 0 {
		return nil, inferenceErrorf(opBootstrapStatistic, ErrEmptyData)
	}
	if numSamples <= 0 {
		return nil, inferenceErrorf(opBootstrapStatistic, ErrBadSamples)
	}
	r = rng.OrDefault(r)
	out := make([]S, numSamples)
	for i := range out {
		sample, err := BootstrapSample(data, r)
		if err != nil {
			return nil, inferenceErrorf(opBootstrapStatistic, err)
		}
		if out[i], err = statFn(sample); err != nil {
			return nil, inferenceErrorf(opBootstrapStatistic, err)
		}
	}
	return out, nil
}

// flipHeads returns the number of heads in flips fair coin tosses.
func flipHeads(flips int, r *rand.Rand) int {
	heads := 0
	for i := 0; i < flips; i++ {
		if r.Float64() < 0.5 {
			heads++
		}
	}
	return heads
}

// CountRejections runs experiments of flips fair tosses each and counts
// those the fairness test rejects: heads < lo or heads > hi.
// With (1000, 1000, 469, 531) about 5% of experiments are rejected.
//
// Errors:
//   - ErrNoTrials if experiments or flips is not positive.
func CountRejections(experiments, flips, lo, hi int, r *rand.Rand) (int, error) {
	if experiments <= 0 || flips <= 0 {
		return 0, inferenceErrorf(opCountRejections, ErrNoTrials)
	}
	r = rng.OrDefault(r)
	n := 0
	for i := 0; i < experiments; i++ {
		if h := flipHeads(flips, r); h < lo || h > hi {
			n++
		}
	}
	return n, nil
}

// ExtremeValueCount counts experiments whose head count is at least as far
// from flips/2 as extreme is (heads >= extreme or heads <= flips-extreme).
// The ratio to experiments estimates the two-sided p-value of observing
// extreme heads.
//
// Errors:
//   - ErrNoTrials if experiments or flips is not positive.
func ExtremeValueCount(experiments, flips, extreme int, r *rand.Rand) (int, error) {
	if experiments <= 0 || flips <= 0 {
		return 0, inferenceErrorf(opExtremeValueCount, ErrNoTrials)
	}
	r = rng.OrDefault(r)
	n := 0
	for i := 0; i < experiments; i++ {
		if h := flipHeads(flips, r); h >= extreme || h <= flips-extreme {
			n++
		}
	}
	return n, nil
}
