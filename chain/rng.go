// SPDX-License-Identifier: MIT
// Package chain - RNG utilities shared by all samplers.
//
// Goals:
//   - Determinism: same seed ⇒ identical chains across runs.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Independent chains need independent
//     streams; use DeriveRand to split one seed into many.

package chain

import (
	"errors"
	"math/rand"
)

// ErrBadChoose is returned by Choose when k ∉ [0, n].
var ErrBadChoose = errors.New("chain: Choose requires 0 <= k <= n")

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// golden is the SplitMix64 increment (2^64 / φ).
const golden uint64 = 0x9e3779b97f4a7c15

// mix64 is the SplitMix64 output finalizer.
// Complexity: O(1).
func mix64(z uint64) uint64 {
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb

	return z ^ (z >> 31)
}

// deriveSeed maps (parent, stream) to a child seed: the stream id is offset
// by one SplitMix step, folded into the parent and finalized.
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	return int64(mix64((uint64(parent) ^ (stream + golden)) + golden))
}

// DeriveRand creates an independent deterministic stream for parallel chains.
// If base is nil, DefaultSeed is the parent; otherwise base.Int63() is consumed
// once so repeated derivations with the same stream id still differ.
// Complexity: O(1).
func DeriveRand(base *rand.Rand, stream uint64) *rand.Rand {
	parent := DefaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(deriveSeed(parent, stream)))
}

// Choose returns k distinct values drawn uniformly from [0, n), in draw order,
// using a partial Fisher–Yates shuffle.
// Complexity: O(n) time and space.
func Choose(rng *rand.Rand, n, k int) ([]int, error) {
	if k < 0 || n < 0 || k > n {
		return nil, ErrBadChoose
	}
	p := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k], nil
}
