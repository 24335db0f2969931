// SPDX-License-Identifier: MIT

package mcmc

import (
	"context"
	"log/slog"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/chain"
	"github.com/katalvlaran/dppmcmc/matrix"
	"github.com/katalvlaran/dppmcmc/subset"
)

// stepFunc advances the chain by one iteration (possibly a stay step).
type stepFunc func(e *engine) error

// engine is the per-call chain state. It is never shared.
type engine struct {
	k   mat.Matrix
	n   int
	rng *rand.Rand
	log *slog.Logger

	cur *subset.Sample
	det float64 // det K[cur, cur]

	out chain.Chain
}

// sizePolicy tells initialize how to synthesize a start when none is given.
type sizePolicy int

const (
	variableSize sizePolicy = iota // random size when WithSampleSize is 0
	fixedSize                      // WithSampleSize required
)

// run validates inputs, initializes the state and drives step under the budget.
func run(ctx context.Context, op string, k mat.Matrix, policy sizePolicy, step stepFunc, opts ...Option) (chain.Chain, error) {
	// Stage 1: validation.
	if err := matrix.ValidateSquare(k); err != nil {
		return chain.Chain{}, mcmcErrorf(op, err)
	}
	if err := matrix.ValidateNonEmpty(k); err != nil {
		return chain.Chain{}, mcmcErrorf(op, err)
	}
	o := gatherOptions(opts...)
	if err := o.budget.Validate(); err != nil {
		return chain.Chain{}, mcmcErrorf(op, err)
	}
	n, _ := k.Dims()
	e := &engine{k: k, n: n, rng: o.rng, log: o.logger}

	// Stage 2: initial state.
	st := chain.NewStopper(o.budget)
	if err := e.initialize(o, policy); err != nil {
		return chain.Chain{}, mcmcErrorf(op, err)
	}
	e.log.Debug("mcmc: chain started", "sampler", op, "n", n, "size", e.cur.Len(), "det", e.det)
	e.out.Record(e.cur.View())

	// Stage 3: iterate.
	for st.Next() {
		if err := ctx.Err(); err != nil {
			return chain.Chain{}, mcmcErrorf(op, err)
		}
		if err := step(e); err != nil {
			return chain.Chain{}, mcmcErrorf(op, err)
		}
		e.out.Record(e.cur.View())
	}

	// Stage 4: finalize.
	e.out.Elapsed = st.Elapsed()
	e.log.Debug("mcmc: chain finished",
		"sampler", op,
		"states", e.out.Len(),
		"proposed", e.out.Proposed,
		"accepted", e.out.Accepted,
		"elapsed", e.out.Elapsed,
	)

	return e.out, nil
}

// initialize sets cur/det from an explicit sample or by rejection sampling.
func (e *engine) initialize(o Options, policy sizePolicy) error {
	if o.hasInitial {
		s, err := subset.New(e.n, o.initial)
		if err != nil {
			return err
		}
		if policy == fixedSize && s.Len() == 0 {
			return ErrEmptySample
		}
		det, err := matrix.PrincipalDet(e.k, s.View())
		if err != nil {
			return err
		}
		e.cur, e.det = s, det

		return nil
	}

	k := o.sampleSize
	if policy == fixedSize && k == 0 {
		return ErrEmptySample
	}
	if k > e.n {
		return ErrSampleTooLarge
	}

	var (
		attempt int
		idx     []int
		det     float64
		err     error
	)
	for attempt = 0; attempt < o.initAttempts; attempt++ {
		if k > 0 {
			idx, err = chain.Choose(e.rng, e.n, k)
		} else {
			idx, err = randomSubset(e.rng, e.n)
		}
		if err != nil {
			return err
		}
		det, err = matrix.PrincipalDet(e.k, idx)
		if err != nil {
			return err
		}
		if det > o.initThreshold {
			e.cur, err = subset.New(e.n, idx)
			if err != nil {
				return err
			}
			e.det = det

			return nil
		}
	}
	e.log.Debug("mcmc: initialization failed", "attempts", o.initAttempts, "threshold", o.initThreshold)

	return ErrInitialization
}

// randomSubset draws n distinct values from [0, 2n) and keeps those below n,
// ascending. The size is hypergeometric around n/2, and the empty set is possible.
func randomSubset(rng *rand.Rand, n int) ([]int, error) {
	draw, err := chain.Choose(rng, 2*n, n)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, n)
	var v int
	for _, v = range draw {
		if v < n {
			out = append(out, v)
		}
	}
	slices.Sort(out)

	return out, nil
}

// outside returns a uniform element of the complement of cur.
// Callers guarantee the complement is non-empty.
func (e *engine) outside() (int, error) {
	return e.cur.OutsideAt(e.rng.Intn(e.n - e.cur.Len()))
}

// propose runs the Metropolis–Hastings test for cand, reweighted by factor.
// On acceptance cand becomes the current state.
func (e *engine) propose(cand *subset.Sample, factor float64) error {
	det, err := matrix.PrincipalDet(e.k, cand.View())
	if err != nil {
		return err
	}
	e.out.Proposed++
	if chain.Accept(e.rng, det/e.det*factor) {
		e.cur, e.det = cand, det
		e.out.Accepted++
	}

	return nil
}
