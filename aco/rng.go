// Package aco - deterministic RNG plumbing.
//
// All randomness in the package flows from Options.Seed through the two
// helpers below; nothing reads process-wide random state.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The colony derives one
//     independent substream per ant before fanning out, so no *rand.Rand is
//     ever shared across goroutines.
package aco

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed via a SplitMix64-style finalizer (Vigna 2014 constants). Small input
// changes produce large, well-distributed output changes, which keeps
// per-ant substreams uncorrelated.
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

// deriveRNG creates an independent deterministic substream from a base RNG
// and a stream identifier. base.Int63() is consumed once so that reusing a
// stream id across iterations still yields distinct children.
//
// Call during iteration setup on the loop goroutine, never inside the
// parallel section.
//
// Complexity: O(1).
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = defaultRNGSeed
	} else {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}
