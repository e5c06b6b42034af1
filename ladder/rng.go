// Package ladder - RNG utilities.
//
// Goals:
//   - Determinism: same seed ⇒ identical ladders across platforms.
//   - No time-based sources hidden anywhere; callers decide.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Use DeriveRand to hand out
//     independent streams instead of sharing one.
package ladder

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed is used verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed
// using the SplitMix64 finalizer. Small input changes give unrelated outputs.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRand returns an independent deterministic RNG for (seed, stream).
// A session seeded once can regenerate its board any number of times and
// still replay generation k exactly by calling DeriveRand(seed, k).
// seed==0 follows the rngFromSeed policy.
func DeriveRand(seed int64, stream uint64) *rand.Rand {
	parent := seed
	if parent == 0 {
		parent = defaultRNGSeed
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
