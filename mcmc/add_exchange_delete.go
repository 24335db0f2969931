// SPDX-License-Identifier: MIT

package mcmc

import (
	"context"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/chain"
)

// AddExchangeDelete runs the add/exchange/delete mixture chain on kernel k,
// a birth–death–exchange walk over all cardinalities.
//
// Per step, draw U ~ U[0,1), p = |S0|/N and dispatch through SelectAED:
//   - Add:      t ∉ S0 uniform, S1 = S0 + t,     ratio · (|S0|+1)/(N−|S0|)
//   - Exchange: s ∈ S0, t ∉ S0,  S1 = S0 − s + t, ratio
//   - Delete:   s ∈ S0 uniform, S1 = S0 − s,     ratio · |S0|/(N−|S0|+1)
//   - Stay:     record S0 again
//
// where ratio = det K_S1 / det K_S0 and acceptance is min(1, ·).
//
// Errors: as AddDelete.
func AddExchangeDelete(ctx context.Context, k mat.Matrix, opts ...Option) (chain.Chain, error) {
	return run(ctx, opAddExchangeDelete, k, variableSize, stepAddExchangeDelete, opts...)
}

func stepAddExchangeDelete(e *engine) error {
	size := e.cur.Len()
	move := SelectAED(e.rng.Float64(), size, e.n)

	var (
		cand = e.cur
		t    int
		err  error
	)
	switch move {
	case Stay:
		return nil

	case Add:
		if t, err = e.outside(); err != nil {
			return err
		}
		cand = e.cur.Clone()
		if err = cand.Add(t); err != nil {
			return err
		}

	case Exchange:
		s := e.rng.Intn(size)
		if t, err = e.outside(); err != nil {
			return err
		}
		cand = e.cur.Clone()
		if _, err = cand.RemoveAt(s); err != nil {
			return err
		}
		if err = cand.Add(t); err != nil {
			return err
		}

	case Delete:
		s := e.rng.Intn(size)
		cand = e.cur.Clone()
		if _, err = cand.RemoveAt(s); err != nil {
			return err
		}
	}

	return e.propose(cand, AcceptanceFactor(move, size, e.n))
}
