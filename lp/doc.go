// SPDX-License-Identifier: MIT

// Package lp is the linear-program collaborator of the zonotope sampler.
//
// Problems are stated in general (canonical) form
//
//	minimize    cᵀx
//	subject to  G x ≤ h
//	            A x = b
//
// with x free, and solved by converting to standard form with
// gonum.org/v1/gonum/optimize/convex/lp.Convert and running lp.Simplex.
// The solver prints nothing; its only diagnostics are Debug records on the
// *slog.Logger given in Config.
//
// Solver failures are returned as ErrInfeasible, ErrUnbounded or ErrSolve,
// each also wrapping the underlying gonum error.
package lp
