// SPDX-License-Identifier: MIT
// Package rng - deterministic random sources shared by the generator and the heuristic.
//
// Determinism: the same seed yields the same stream on every platform
// (math/rand with an explicit source; nothing here reads the clock).
//
// Concurrency: *rand.Rand is not goroutine-safe. Give each worker or case its
// own source seeded with DeriveSeed instead of sharing one.
package rng

import "math/rand"

// DefaultSeed replaces a zero seed so "unset" still means reproducible.
const DefaultSeed int64 = 1

// New returns a deterministic *rand.Rand; seed == 0 ⇒ DefaultSeed.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes parent and a stream id into an independent seed
// (SplitMix64 finalizer). The result is never 0.
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	if x == 0 {
		return DefaultSeed
	}

	return int64(x)
}

// Uniform returns a value in [lo, hi).
func Uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// IntBetween returns an int in [lo, hi] (both inclusive); hi < lo yields lo.
func IntBetween(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}

	return lo + r.Intn(hi-lo+1)
}
