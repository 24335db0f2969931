// SPDX-License-Identifier: MIT

// Package subset provides Sample, the ordered set of ground-set indices that
// every MCMC chain in this module uses as its state.
//
// A Sample keeps insertion order (so a chain's output is reproducible
// position by position) and a dense position table over the ground set, so
// that membership tests and positional access are O(1). Removal by position
// preserves the order of the remaining elements.
//
// Invariants:
//   - every element lies in [0, Universe());
//   - elements are pairwise distinct.
//
// Sample is not safe for concurrent mutation; each chain owns its own.
package subset
