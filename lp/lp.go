// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"
	glp "gonum.org/v1/gonum/optimize/convex/lp"
)

var (
	// ErrInfeasible is returned when the constraints admit no solution.
	ErrInfeasible = errors.New("lp: problem is infeasible")

	// ErrUnbounded is returned when the objective is unbounded below.
	ErrUnbounded = errors.New("lp: problem is unbounded")

	// ErrSolve covers every other simplex failure (singular basis, cycling, ...).
	ErrSolve = errors.New("lp: solver failure")

	// ErrBadProblem is returned for inconsistent problem shapes.
	ErrBadProblem = errors.New("lp: malformed problem")
)

// DefaultTol is the simplex tolerance used when Config.Tol is zero.
const DefaultTol = 1e-10

// Config configures a Solver. It replaces any process-wide solver state.
type Config struct {
	// Tol is the simplex tolerance; 0 ⇒ DefaultTol.
	Tol float64

	// Logger receives Debug records about failed solves. nil ⇒ slog.Default().
	Logger *slog.Logger
}

// Problem is a general-form LP: minimize CᵀX s.t. G X ≤ H, A X = B.
// G/H or A/B may be nil/empty when the corresponding block is absent.
type Problem struct {
	C []float64
	G mat.Matrix
	H []float64
	A mat.Matrix
	B []float64
}

// Solver solves general-form LPs. The zero value is not usable; call NewSolver.
type Solver struct {
	tol    float64
	logger *slog.Logger
}

// NewSolver returns a Solver for cfg.
func NewSolver(cfg Config) *Solver {
	s := &Solver{tol: cfg.Tol, logger: cfg.Logger}
	if s.tol <= 0 {
		s.tol = DefaultTol
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Solve returns an optimal primal vector x (len(p.C)).
//
// Implementation:
//   - Stage 1: validate block shapes (gonum panics on mismatch).
//   - Stage 2: Convert to standard form over [x⁺, x⁻, slack] ≥ 0.
//   - Stage 3: Simplex; recover x = x⁺ − x⁻.
func (s *Solver) Solve(p Problem) ([]float64, error) {
	// Stage 1: validation.
	if err := p.validate(); err != nil {
		return nil, err
	}

	// Stage 2: standard form.
	n := len(p.C)
	c, a, b := glp.Convert(p.C, p.G, p.H, p.A, p.B)

	// Stage 3: simplex.
	_, xs, err := glp.Simplex(c, a, b, s.tol, nil)
	if err != nil {
		s.logger.Debug("lp: simplex failed", "vars", n, "rows", len(b), "err", err)
		return nil, classify(err)
	}

	x := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		x[i] = xs[i] - xs[n+i]
	}

	return x, nil
}

// classify maps gonum sentinels onto this package's sentinels, keeping both in the chain.
func classify(err error) error {
	switch {
	case errors.Is(err, glp.ErrInfeasible):
		return fmt.Errorf("%w: %w", ErrInfeasible, err)
	case errors.Is(err, glp.ErrUnbounded):
		return fmt.Errorf("%w: %w", ErrUnbounded, err)
	default:
		return fmt.Errorf("%w: %w", ErrSolve, err)
	}
}

// validate checks that the blocks agree with len(C) and with their bounds.
func (p Problem) validate() error {
	n := len(p.C)
	if n == 0 {
		return fmt.Errorf("empty objective: %w", ErrBadProblem)
	}
	if err := checkBlock("G", p.G, p.H, n); err != nil {
		return err
	}
	if err := checkBlock("A", p.A, p.B, n); err != nil {
		return err
	}
	if p.G == nil && p.A == nil {
		return fmt.Errorf("no constraints: %w", ErrBadProblem)
	}

	return nil
}

func checkBlock(name string, m mat.Matrix, rhs []float64, n int) error {
	if m == nil {
		if len(rhs) != 0 {
			return fmt.Errorf("%s is nil but has %d bounds: %w", name, len(rhs), ErrBadProblem)
		}
		return nil
	}
	r, c := m.Dims()
	if c != n || r != len(rhs) {
		return fmt.Errorf("%s is %dx%d, want %dx%d: %w", name, r, c, len(rhs), n, ErrBadProblem)
	}

	return nil
}
