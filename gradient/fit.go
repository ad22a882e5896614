// SPDX-License-Identifier: MIT

package gradient

import (
	"sync"

	"github.com/katalvlaran/scratchml/internal/rng"
	"github.com/katalvlaran/scratchml/linalg"
)

const (
	opFit     = "Fit"
	opFitFrom = "FitFrom"
)

// ExampleGradient returns the gradient of the loss on one example at theta.
// The result must have len(theta) entries.
type ExampleGradient[T any] func(example T, theta linalg.Vector) (linalg.Vector, error)

// Fit minimises a per-example loss by minibatch gradient descent starting
// from a random theta of length dim (see Options.InitLow/InitHigh).
//
// Errors:
//   - ErrEmptyDataset, ErrBadBatchSize, ErrBadOptions, ErrNilGradient for
//     invalid input (also dim <= 0).
//   - ErrLengthMismatch if grad returns a vector of the wrong length.
//   - any error returned by grad, wrapped.
//
// No partial result is returned on error.
func Fit[T any](data []T, dim int, grad ExampleGradient[T], opts Options) (linalg.Vector, error) {
	if dim <= 0 {
		return nil, gradientErrorf(opFit, ErrBadOptions)
	}
	if err := opts.validate(); err != nil {
		return nil, gradientErrorf(opFit, err)
	}
	r := opts.Rand
	if r == nil {
		r = rng.New(opts.Seed)
		opts.Rand = r
	}
	theta0 := linalg.Vector(rng.Uniform(dim, opts.InitLow, opts.InitHigh, r))
	theta, err := FitFrom(data, theta0, grad, opts)
	if err != nil {
		return nil, gradientErrorf(opFit, err)
	}
	return theta, nil
}

// FitFrom is Fit with an explicit starting point. theta0 is not modified.
//
// Each epoch visits Minibatches(data, opts.BatchSize) once; for every batch
// theta ← theta - LearningRate·mean(grad(example, theta)).
func FitFrom[T any](data []T, theta0 linalg.Vector, grad ExampleGradient[T], opts Options) (linalg.Vector, error) {
	if grad == nil {
		return nil, gradientErrorf(opFitFrom, ErrNilGradient)
	}
	if len(theta0) == 0 {
		return nil, gradientErrorf(opFitFrom, ErrBadOptions)
	}
	if err := opts.validate(); err != nil {
		return nil, gradientErrorf(opFitFrom, err)
	}
	r := opts.Rand
	if r == nil {
		r = rng.New(opts.Seed)
	}
	batches, err := Minibatches(data, opts.BatchSize, WithShuffle(opts.Shuffle), WithRand(r))
	if err != nil {
		return nil, gradientErrorf(opFitFrom, err)
	}

	theta := theta0.Clone()
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		start := theta
		for batch := range batches {
			sum, err := sumGradients(batch, theta, grad, opts.Workers)
			if err != nil {
				return nil, gradientErrorf(opFitFrom, err)
			}
			theta, err = Step(theta, sum, -opts.LearningRate/float64(len(batch)))
			if err != nil {
				return nil, gradientErrorf(opFitFrom, err)
			}
		}
		if opts.Tolerance > 0 {
			moved, err := linalg.Distance(theta, start)
			if err != nil {
				return nil, gradientErrorf(opFitFrom, err)
			}
			if moved < opts.Tolerance {
				break
			}
		}
	}
	return theta, nil
}

// sumGradients returns Σ grad(example, theta) over batch.
// With workers > 1 the batch is split into contiguous chunks summed
// concurrently; the first error reported wins.
func sumGradients[T any](batch []T, theta linalg.Vector, grad ExampleGradient[T], workers int) (linalg.Vector, error) {
	if workers <= 1 || len(batch) < 2 {
		return sumRange(batch, theta, grad)
	}
	workers = min(workers, len(batch))
	chunk := (len(batch) + workers - 1) / workers

	partials := make([]linalg.Vector, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(batch) {
			break
		}
		hi := min(lo+chunk, len(batch))
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			partials[w], errs[w] = sumRange(batch[lo:hi], theta, grad)
		}(w, lo, hi)
	}
	wg.Wait()

	total := linalg.Zeros(len(theta))
	for w := range partials {
		if errs[w] != nil {
			return nil, errs[w]
		}
		if partials[w] == nil {
			continue
		}
		for i, g := range partials[w] {
			total[i] += g
		}
	}
	return total, nil
}

// sumRange is the sequential reduction used by sumGradients.
func sumRange[T any](batch []T, theta linalg.Vector, grad ExampleGradient[T]) (linalg.Vector, error) {
	total := linalg.Zeros(len(theta))
	for _, ex := range batch {
		g, err := grad(ex, theta)
		if err != nil {
			return nil, err
		}
		if len(g) != len(theta) {
			return nil, ErrLengthMismatch
		}
		for i := range g {
			total[i] += g[i]
		}
	}
	return total, nil
}
