// SPDX-License-Identifier: MIT

package zonotope

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/chain"
	"github.com/katalvlaran/dppmcmc/lp"
	"github.com/katalvlaran/dppmcmc/matrix"
)

// walker is the per-call state of the zonotope chain.
type walker struct {
	v      mat.Matrix
	r, n   int
	rng    *rand.Rand
	log    *slog.Logger
	solver *lp.Solver
	tol    float64

	tile lp.Problem // min cᵀy s.t. V y = x, 0 ≤ y ≤ 1; B patched per point

	seg    lp.Problem // variables [α, λ]; A column 0 patched to −d
	segA   *mat.Dense
	segMin []float64 // +e0
	segMax []float64 // −e0

	x     []float64 // current point, len r
	basis []int
	det   float64 // |det V[:, basis]|

	out chain.Chain
}

// Sample runs the zonotope chain on the feature matrix v (r×n, full row rank).
// Each recorded state is a basis of r column indices, ascending.
//
// Stages:
//  1. Validate v, options and budget.
//  2. Draw the objective (unless WithObjective) and build the LP blocks once.
//  3. Initialize from random interior points V·u until a tile of size r is found.
//  4. Iterate under the budget, polling ctx once per iteration.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrEmptyMatrix, matrix.ErrDimensionMismatch (r > n),
// ErrObjectiveLength, chain.ErrNoBudget / chain.ErrBadBudget,
// ErrInitialization, ErrSolverFailure, ctx.Err().
func Sample(ctx context.Context, v mat.Matrix, opts ...Option) (chain.Chain, error) {
	// Stage 1: validation.
	if err := matrix.ValidateNonEmpty(v); err != nil {
		return chain.Chain{}, zonotopeErrorf(opSample, err)
	}
	r, n := v.Dims()
	if r > n {
		return chain.Chain{}, zonotopeErrorf(opSample,
			fmt.Errorf("V is %dx%d, need rows <= cols: %w", r, n, matrix.ErrDimensionMismatch))
	}
	o := gatherOptions(opts...)
	if err := o.budget.Validate(); err != nil {
		return chain.Chain{}, zonotopeErrorf(opSample, err)
	}
	if o.objective != nil && len(o.objective) != n {
		return chain.Chain{}, zonotopeErrorf(opSample, ErrObjectiveLength)
	}

	// Stage 2: LP blocks.
	w := newWalker(v, r, n, o)

	// Stage 3: initial tile.
	st := chain.NewStopper(o.budget)
	if err := w.initialize(o.initAttempts); err != nil {
		return chain.Chain{}, zonotopeErrorf(opSample, err)
	}
	w.log.Debug("zonotope: chain started", "r", r, "n", n, "basis", w.basis, "det", w.det)
	w.out.Record(w.basis)

	// Stage 4: iterate.
	for st.Next() {
		if err := ctx.Err(); err != nil {
			return chain.Chain{}, zonotopeErrorf(opSample, err)
		}
		if err := w.step(); err != nil {
			return chain.Chain{}, zonotopeErrorf(opSample, err)
		}
		w.out.Record(w.basis)
	}

	w.out.Elapsed = st.Elapsed()
	w.log.Debug("zonotope: chain finished",
		"states", w.out.Len(),
		"proposed", w.out.Proposed,
		"accepted", w.out.Accepted,
		"degenerate", w.out.Degenerate,
		"elapsed", w.out.Elapsed,
	)

	return w.out, nil
}

// newWalker draws the objective and assembles the constant LP blocks.
func newWalker(v mat.Matrix, r, n int, o Options) *walker {
	w := &walker{
		v:      v,
		r:      r,
		n:      n,
		rng:    o.rng,
		log:    o.logger,
		solver: lp.NewSolver(o.lpConfig()),
		tol:    o.basisTol,
		x:      make([]float64, r),
	}

	c := o.objective
	if c == nil {
		c = make([]float64, n)
		for i := range c {
			c[i] = w.rng.NormFloat64()
		}
	}

	// Box 0 ≤ y ≤ 1 as [I; −I] y ≤ [1; 0].
	g := mat.NewDense(2*n, n, nil)
	h := make([]float64, 2*n)
	var i int
	for i = 0; i < n; i++ {
		g.Set(i, i, 1)
		g.Set(n+i, i, -1)
		h[i] = 1
	}
	w.tile = lp.Problem{C: c, G: g, H: h, A: v, B: w.x}

	// Chord LPs over [α, λ]: the box acts on λ only, α is free.
	segG := mat.NewDense(2*n, n+1, nil)
	segG.Slice(0, 2*n, 1, n+1).(*mat.Dense).Copy(g)
	w.segA = mat.NewDense(r, n+1, nil)
	w.segA.Slice(0, r, 1, n+1).(*mat.Dense).Copy(v)
	w.segMin = make([]float64, n+1)
	w.segMin[0] = 1
	w.segMax = make([]float64, n+1)
	copy(w.segMax, w.segMin)
	floats.Scale(-1, w.segMax)
	w.seg = lp.Problem{G: segG, H: h, A: w.segA}

	return w
}

// initialize searches a random interior point whose tile has exactly r
// fractional coordinates and non-zero volume.
func (w *walker) initialize(attempts int) error {
	u := make([]float64, w.n)
	var (
		attempt int
		x       []float64
		b       []int
		det     float64
		err     error
	)
	for attempt = 0; attempt < attempts; attempt++ {
		for i := range u {
			u[i] = w.rng.Float64()
		}
		if x, err = matrix.MulVec(w.v, u); err != nil {
			return err
		}
		if b, err = w.tileAt(x); err != nil {
			return err
		}
		if len(b) != w.r {
			w.log.Debug("zonotope: degenerate initial tile", "attempt", attempt, "size", len(b), "r", w.r)
			continue
		}
		if det, err = w.volume(b); err != nil {
			return err
		}
		if det == 0 {
			continue
		}
		copy(w.x, x)
		w.basis, w.det = b, det

		return nil
	}
	w.log.Debug("zonotope: initialization failed", "attempts", attempts)

	return ErrInitialization
}

// step performs one hit-and-run proposal and the Metropolis–Hastings test.
func (w *walker) step() error {
	// Direction and chord.
	d := make([]float64, w.r)
	for i := range d {
		d[i] = w.rng.NormFloat64()
	}
	lo, hi, err := w.chord(d)
	if err != nil {
		return err
	}
	alpha := lo + (hi-lo)*w.rng.Float64()
	x1 := floats.AddScaledTo(make([]float64, w.r), w.x, alpha, d)

	// Tile of the proposed point.
	b1, err := w.tileAt(x1)
	if err != nil {
		return err
	}
	if len(b1) != w.r {
		w.out.Degenerate++
		w.log.Debug("zonotope: degenerate tile rejected", "size", len(b1), "r", w.r)
		return nil
	}
	det1, err := w.volume(b1)
	if err != nil {
		return err
	}

	w.out.Proposed++
	if chain.Accept(w.rng, det1/w.det) {
		copy(w.x, x1)
		w.basis, w.det = b1, det1
		w.out.Accepted++
	}

	return nil
}

// tileAt solves the tile LP at x and returns its fractional coordinates.
func (w *walker) tileAt(x []float64) ([]int, error) {
	w.tile.B = x
	y, err := w.solver.Solve(w.tile)
	if err != nil {
		return nil, solverErrorf("tile", err)
	}

	return ExtractBasis(y, w.tol), nil
}

// chord returns [α_m, α_M] such that x + α·d stays in Z(V).
// Both LPs read: optimize α s.t. −d·α + V·λ = x, 0 ≤ λ ≤ 1.
func (w *walker) chord(d []float64) (float64, float64, error) {
	for i, di := range d {
		w.segA.Set(i, 0, -di)
	}
	w.seg.B = w.x

	w.seg.C = w.segMin
	lo, err := w.solver.Solve(w.seg)
	if err != nil {
		return 0, 0, solverErrorf("chord min", err)
	}
	w.seg.C = w.segMax
	hi, err := w.solver.Solve(w.seg)
	if err != nil {
		return 0, 0, solverErrorf("chord max", err)
	}

	return lo[0], hi[0], nil
}

// volume returns |det V[:, b]|.
func (w *walker) volume(b []int) (float64, error) {
	det, err := matrix.ColumnDet(w.v, b)
	if err != nil {
		return 0, err
	}

	return math.Abs(det), nil
}
