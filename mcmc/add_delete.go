// SPDX-License-Identifier: MIT

package mcmc

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/chain"
)

// AddDelete runs the add/delete Metropolis–Hastings chain on kernel k.
//
// Algorithm:
//  1. With probability 1/2 stay.
//  2. Otherwise draw s uniform in [0, N); S1 = S0 − s if s ∈ S0, else S0 + s.
//  3. Accept S1 with probability min(1, det K_S1 / det K_S0).
//
// The sample size is free; without WithInitialSample a random-size start is
// synthesized (or a WithSampleSize-sized one).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrEmptyMatrix,
// chain.ErrNoBudget/ErrBadBudget,
// subset sentinels for a bad initial sample, ErrInitialization, ctx errors.
func AddDelete(ctx context.Context, k mat.Matrix, opts ...Option) (chain.Chain, error) {
	return run(ctx, opAddDelete, k, variableSize, stepAddDelete, opts...)
}

func stepAddDelete(e *engine) error {
	if SelectBinary(e.rng.Float64(), Flip) == Stay {
		return nil
	}

	s := e.rng.Intn(e.n)
	cand := e.cur.Clone()
	if !cand.Remove(s) {
		if err := cand.Add(s); err != nil {
			return err
		}
	}

	return e.propose(cand, AcceptanceFactor(Flip, e.cur.Len(), e.n))
}
