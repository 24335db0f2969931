// SPDX-License-Identifier: MIT

package chain

import "math/rand"

// Accept draws U ~ U[0,1) from rng and reports U < ratio, i.e. acceptance
// with probability min(1, ratio).
//
// Boundary behavior:
//   - ratio ≥ 1 is always accepted (U < 1 holds for every draw).
//   - ratio ≤ 0 is never accepted, so a zero candidate determinant can never win.
//   - NaN (0/0 from a degenerate current state) is never accepted.
//
// Exactly one draw is consumed regardless of ratio, keeping streams aligned.
func Accept(rng *rand.Rand, ratio float64) bool {
	return rng.Float64() < ratio
}
