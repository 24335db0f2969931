// SPDX-License-Identifier: MIT

// Package zonotope implements the continuous-state MCMC sampler for
// projection DPPs whose kernel is K = Vᵀ(VVᵀ)⁻¹V for a full-row-rank
// feature matrix V (r×n, r ≤ n).
//
// The zonotope Z(V) = {V·u : u ∈ [0,1]^n} is tiled by parallelotopes, one
// per basis B (r linearly independent columns of V), each of volume
// |det V[:,B]|. A fixed random objective c selects which tile owns a point:
// the fractional coordinates of the optimal vertex of
//
//	minimize cᵀy  s.t.  V·y = x,  0 ≤ y ≤ 1
//
// are the tile's basis (ExtractBasis). A uniform point walk inside Z(V),
// reweighted by |det V[:,B]|, therefore visits bases with probability
// ∝ det² V[:,B], which is the projection DPP.
//
// One step:
//  1. Draw a direction d ~ N(0, I_r).
//  2. Solve two LPs for the chord {x0 + α·d} ∩ Z(V): α ∈ [α_m, α_M].
//  3. Draw α uniformly on the chord; x1 = x0 + α·d.
//  4. Extract B1 from the tile LP at x1. If |B1| ≠ r the proposal is
//     degenerate and the chain stays.
//  5. Accept with probability min(1, |det V[:,B1]| / |det V[:,B0]|).
//
// Every LP goes through lp.Solver; a solver failure aborts the chain with
// ErrSolverFailure (no retry).
//
// Complexity: three simplex solves per iteration on problems with
// O(n) variables and O(n) rows, plus one r×r determinant.
package zonotope
