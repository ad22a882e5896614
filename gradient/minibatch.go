// SPDX-License-Identifier: MIT

package gradient

import (
	"iter"
	"math/rand"

	"github.com/katalvlaran/scratchml/internal/rng"
)

const opMinibatches = "Minibatches"

// batchConfig holds Minibatches settings.
type batchConfig struct {
	shuffle bool
	seed    int64
	rnd     *rand.Rand
}

// BatchOption configures Minibatches.
type BatchOption func(*batchConfig)

// WithShuffle toggles permutation of chunk start offsets (default true).
func WithShuffle(on bool) BatchOption {
	return func(c *batchConfig) { c.shuffle = on }
}

// WithSeed fixes the seed of the shuffling stream (0 means rng.DefaultSeed).
func WithSeed(seed int64) BatchOption {
	return func(c *batchConfig) { c.seed = seed }
}

// WithRand supplies the shuffling stream directly. It takes precedence over
// WithSeed. The generator must not be used concurrently while ranging.
func WithRand(r *rand.Rand) BatchOption {
	if r == nil {
		panic("gradient: WithRand(nil)")
	}
	return func(c *batchConfig) { c.rnd = r }
}

// Minibatches returns a restartable sequence of contiguous chunks of
// dataset, each of at most batchSize elements. The last chunk may be short.
//
// Every pass over the sequence visits each element exactly once. With
// shuffling on, each pass draws a fresh permutation of chunk start offsets
// from the configured stream; the elements within a chunk always keep their
// dataset order. Yielded chunks alias dataset and must not be modified.
//
// Errors:
//   - ErrBadBatchSize if batchSize <= 0.
//   - ErrEmptyDataset if dataset is empty.
func Minibatches[T any](dataset []T, batchSize int, opts ...BatchOption) (iter.Seq[[]T], error) {
	if batchSize <= 0 {
		return nil, gradientErrorf(opMinibatches, ErrBadBatchSize)
	}
	if len(dataset) == 0 {
		return nil, gradientErrorf(opMinibatches, ErrEmptyDataset)
	}
	cfg := batchConfig{shuffle: true}
	for _, o := range opts {
		o(&cfg)
	}
	r := cfg.rnd
	if r == nil {
		r = rng.New(cfg.seed)
	}

	starts := make([]int, 0, (len(dataset)+batchSize-1)/batchSize)
	for s := 0; s < len(dataset); s += batchSize {
		starts = append(starts, s)
	}

	return func(yield func([]T) bool) {
		order := starts
		if cfg.shuffle && len(starts) > 1 {
			order = append([]int(nil), starts...)
			rng.ShuffleInts(order, r)
		}
		for _, s := range order {
			end := min(s+batchSize, len(dataset))
			if !yield(dataset[s:end:end]) {
				return
			}
		}
	}, nil
}
