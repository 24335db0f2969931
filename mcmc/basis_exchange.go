// SPDX-License-Identifier: MIT

package mcmc

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/chain"
)

// BasisExchange runs the fixed-size exchange chain on kernel k. The size k
// is |initial sample| (WithInitialSample) or WithSampleSize; one of them is required.
//
// Algorithm:
//  1. With probability 1/2 stay.
//  2. Otherwise pick a uniform position i of S0 and a uniform t ∉ S0;
//     S1 = S0 with S0[i] replaced by t.
//  3. Accept with probability min(1, det K_S1 / det K_S0).
//
// When S0 already covers the ground set no exchange exists and every step stays.
//
// Errors: as AddDelete, plus ErrEmptySample.
func BasisExchange(ctx context.Context, k mat.Matrix, opts ...Option) (chain.Chain, error) {
	return run(ctx, opBasisExchange, k, fixedSize, stepBasisExchange, opts...)
}

func stepBasisExchange(e *engine) error {
	if SelectBinary(e.rng.Float64(), Swap) == Stay {
		return nil
	}
	size := e.cur.Len()
	if size == e.n {
		return nil
	}

	i := e.rng.Intn(size)
	t, err := e.outside()
	if err != nil {
		return err
	}
	cand := e.cur.Clone()
	if err = cand.ReplaceAt(i, t); err != nil {
		return err
	}

	return e.propose(cand, AcceptanceFactor(Swap, size, e.n))
}
