// SPDX-License-Identifier: MIT

package gradient

import (
	"math"
	"math/rand"
)

// Options configures Fit and FitFrom.
//
// Fields:
//   - Epochs: number of full passes over the data (> 0).
//   - LearningRate: step size; each batch moves theta by -LearningRate·mean
//     gradient. Must be finite and > 0.
//   - BatchSize: examples per minibatch (> 0). 1 is per-example SGD;
//     len(data) or more is full-batch descent.
//   - Shuffle: permute minibatch start offsets on every epoch.
//   - Seed: RNG seed for the initial guess and shuffling (0 means
//     rng.DefaultSeed). Ignored when Rand is set.
//   - Rand: explicit generator; takes precedence over Seed.
//   - InitLow/High: the initial theta is drawn uniformly from
//     [InitLow, InitHigh). FitFrom ignores both.
//   - Tolerance: when > 0, stop after the first epoch whose net change of
//     theta has magnitude below Tolerance. 0 disables the check.
//   - Workers: when > 1, per-batch gradient sums are computed by up to
//     Workers goroutines. Summation order then differs from the sequential
//     pass, so results may differ in the last bits.
type Options struct {
	Epochs       int
	LearningRate float64
	BatchSize    int
	Shuffle      bool
	Seed         int64
	Rand         *rand.Rand
	InitLow      float64
	InitHigh     float64
	Tolerance    float64
	Workers      int
}

// DefaultOptions returns the configuration the regression fits start from:
//   - Epochs:       1000
//   - LearningRate: 0.001
//   - BatchSize:    1
//   - Shuffle:      false
//   - Seed:         0 (rng.DefaultSeed)
//   - Init range:   [0, 1)
//   - Tolerance:    0 (fixed epoch count)
//   - Workers:      1
func DefaultOptions() Options {
	return Options{
		Epochs:       1000,
		LearningRate: 0.001,
		BatchSize:    1,
		Shuffle:      false,
		InitLow:      0,
		InitHigh:     1,
		Workers:      1,
	}
}

// validate reports ErrBadBatchSize or ErrBadOptions for meaningless fields.
func (o Options) validate() error {
	if o.BatchSize <= 0 {
		return ErrBadBatchSize
	}
	switch {
	case o.Epochs <= 0,
		math.IsNaN(o.LearningRate), math.IsInf(o.LearningRate, 0), o.LearningRate <= 0,
		math.IsNaN(o.InitLow), math.IsNaN(o.InitHigh), o.InitHigh < o.InitLow,
		math.IsNaN(o.Tolerance), o.Tolerance < 0,
		o.Workers < 0:
		return ErrBadOptions
	}
	return nil
}
