// SPDX-License-Identifier: MIT

package chain

import "time"

// Chain is the output of a sampler: one state per iteration, entry zero
// being the initial state, with the previous state repeated on rejection.
type Chain struct {
	// States holds the visited index sets in visiting order.
	States [][]int

	// Proposed counts proposals that reached an accept/reject test
	// (stay steps and automatically rejected degenerate tiles are excluded).
	Proposed int

	// Accepted counts accepted proposals.
	Accepted int

	// Degenerate counts proposals rejected without a test (zonotope tiles of the wrong size).
	Degenerate int

	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Record appends a copy of state.
func (c *Chain) Record(state []int) {
	cp := make([]int, len(state))
	copy(cp, state)
	c.States = append(c.States, cp)
}

// Len returns the number of recorded states.
func (c Chain) Len() int { return len(c.States) }

// Last returns the terminal state, or nil for an empty chain.
func (c Chain) Last() []int {
	if len(c.States) == 0 {
		return nil
	}

	return c.States[len(c.States)-1]
}

// AcceptanceRate returns Accepted/Proposed, or 0 when nothing was proposed.
func (c Chain) AcceptanceRate() float64 {
	if c.Proposed == 0 {
		return 0
	}

	return float64(c.Accepted) / float64(c.Proposed)
}

// Burn returns the states after discarding the first k (burn-in).
// k is clamped to [0, Len()]. The returned slice shares storage with c.
func (c Chain) Burn(k int) [][]int {
	if k < 0 {
		k = 0
	}
	if k > len(c.States) {
		k = len(c.States)
	}

	return c.States[k:]
}
