// SPDX-License-Identifier: MIT

package probability

import (
	"math/rand"

	"github.com/katalvlaran/scratchml/internal/rng"
)

const (
	opBinomial        = "Binomial"
	opConditionalKids = "ConditionalKids"
)

// BernoulliTrial returns 1 with probability p and 0 otherwise.
func BernoulliTrial(p float64, r *rand.Rand) int {
	if rng.OrDefault(r).Float64() < p {
		return 1
	}
	return 0
}

// Binomial returns the number of successes in n independent
// BernoulliTrial(p) draws.
//
// Errors:
//   - ErrNegativeTrials if n < 0.
//   - ErrProbabilityRange if p is not in [0, 1].
func Binomial(n int, p float64, r *rand.Rand) (int, error) {
	if n < 0 {
		return 0, probabilityErrorf(opBinomial, ErrNegativeTrials)
	}
	if !(p >= 0 && p <= 1) {
		return 0, probabilityErrorf(opBinomial, ErrProbabilityRange)
	}
	r = rng.OrDefault(r)
	k := 0
	for i := 0; i < n; i++ {
		k += BernoulliTrial(p, r)
	}
	return k, nil
}

// KidsResult holds the two conditional frequencies from ConditionalKids.
type KidsResult struct {
	BothGivenOlder  float64 // P(both girls | older is a girl), ≈ 1/2
	BothGivenEither float64 // P(both girls | at least one girl), ≈ 1/3
}

// ConditionalKids simulates families with two children of independently
// uniform sex and reports the two classic conditional probabilities.
//
// Errors:
//   - ErrNegativeTrials if families < 0.
func ConditionalKids(families int, r *rand.Rand) (KidsResult, error) {
	if families < 0 {
		return KidsResult{}, probabilityErrorf(opConditionalKids, ErrNegativeTrials)
	}
	r = rng.OrDefault(r)
	var both, older, either int
	for i := 0; i < families; i++ {
		olderGirl := r.Intn(2) == 1
		youngerGirl := r.Intn(2) == 1
		if olderGirl {
			older++
		}
		if olderGirl && youngerGirl {
			both++
		}
		if olderGirl || youngerGirl {
			either++
		}
	}
	var res KidsResult
	if older > 0 {
		res.BothGivenOlder = float64(both) / float64(older)
	}
	if either > 0 {
		res.BothGivenEither = float64(both) / float64(either)
	}
	return res, nil
}
