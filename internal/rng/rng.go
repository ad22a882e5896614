// SPDX-License-Identifier: MIT

// Package rng centralizes deterministic random generation for every
// package that samples: minibatch shuffling, gradient-descent start points,
// data splits, bootstrap resampling and coin-flip simulations.
//
// Policy:
//   - seed == 0 selects DefaultSeed, so "zero value" callers stay reproducible.
//   - A nil *rand.Rand is replaced by a fresh stream from DefaultSeed.
//   - No time-based sources are created anywhere.
//
// Concurrency:
//   - *rand.Rand is NOT goroutine-safe. Use Derive to hand independent
//     streams to workers.
package rng

import "math/rand"

// DefaultSeed is used whenever callers pass seed == 0 or a nil generator.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand for seed (0 means DefaultSeed).
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// OrDefault returns r, or a DefaultSeed stream when r is nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r == nil {
		return New(0)
	}
	return r
}

// mixSeed applies a SplitMix64 finalizer to (parent, stream).
func mixSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive creates an independent stream from base and a stream id.
// base.Int63() is consumed once, so deriving twice with the same id still
// yields different children.
func Derive(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// ShuffleInts performs an in-place Fisher–Yates shuffle of a.
func ShuffleInts(a []int, r *rand.Rand) {
	if len(a) <= 1 {
		return
	}
	r = OrDefault(r)
	for i := len(a) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// Perm returns a shuffled permutation of 0..n-1 (empty for n <= 0).
func Perm(n int, r *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	ShuffleInts(p, r)
	return p
}

// Uniform returns n draws from [lo, hi).
func Uniform(n int, lo, hi float64, r *rand.Rand) []float64 {
	r = OrDefault(r)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + (hi-lo)*r.Float64()
	}
	return out
}
