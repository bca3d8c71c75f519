// Package tsp - RNG utilities shared by the randomized solvers.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across runs.
//   - Encapsulation: no package-level random state; every caller passes a *rand.Rand.
//   - Performance: O(1) helpers, O(n) shuffles.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveRand to create independent streams for parallel callers.
package tsp

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0
// or a nil generator.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// rngOrDefault substitutes the default deterministic stream for nil.
func rngOrDefault(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return NewRand(0)
	}

	return rng
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64-style finalizer, so neighbouring stream ids decorrelate.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// DeriveRand creates an independent deterministic stream from a base seed and
// a stream identifier. Unlike drawing from a shared generator, the result
// depends only on (seed, stream): skipping one consumer does not shift the
// numbers seen by another.
//
// Complexity: O(1).
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(deriveSeed(seed, stream)))
}

// shuffleIntsInPlace performs an in-place Fisher–Yates shuffle of a using rng.
//
// Complexity: O(n) time, O(1) extra space.
func shuffleIntsInPlace(a []int, rng *rand.Rand) {
	n := len(a)
	if n <= 1 {
		return
	}

	var i, j int
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}

// RandomPath returns a uniformly random permutation of 0..n-1 drawn from rng.
// If rng==nil, the default deterministic stream is used. n ≤ 0 yields an
// empty, non-nil path.
//
// Complexity: O(n) time, O(n) space.
func RandomPath(n int, rng *rand.Rand) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	shuffleIntsInPlace(p, rngOrDefault(rng))

	return p
}
