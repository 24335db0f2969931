// SPDX-License-Identifier: MIT

package zonotope

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/dppmcmc/chain"
	"github.com/katalvlaran/dppmcmc/lp"
)

// DefaultInitAttempts bounds the number of random interior points tried at start.
const DefaultInitAttempts = 100

// Internal panic messages.
const (
	panicMaxIter      = "zonotope: WithMaxIter: n must be >= 0"
	panicTimeLimit    = "zonotope: WithTimeLimit: d must be >= 0"
	panicBasisTol     = "zonotope: WithBasisTol: eps must be in (0, 0.5)"
	panicInitAttempts = "zonotope: WithInitAttempts: n must be > 0"
	panicObjective    = "zonotope: WithObjective: c must be non-empty and finite"
	panicLPTol        = "zonotope: WithLPTol: tol must be finite and >= 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of one zonotope run.
type Options struct {
	budget    chain.Budget
	budgetSet bool

	seed int64
	rng  *rand.Rand

	objective    []float64 // nil ⇒ N(0,1)^n drawn from rng
	basisTol     float64
	initAttempts int
	lpTol        float64

	logger *slog.Logger
}

// WithMaxIter sets the number of recorded tiles (initial tile included).
func WithMaxIter(n int) Option {
	if n < 0 {
		panic(panicMaxIter)
	}

	return func(o *Options) {
		o.budget.MaxIter = n
		o.budgetSet = true
	}
}

// WithTimeLimit sets the wall-clock budget, used when MaxIter is zero.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic(panicTimeLimit)
	}

	return func(o *Options) {
		o.budget.TimeLimit = d
		o.budgetSet = true
	}
}

// WithBudget sets both budget fields at once.
func WithBudget(b chain.Budget) Option {
	return func(o *Options) {
		o.budget = b
		o.budgetSet = true
	}
}

// WithSeed selects a deterministic stream (0 ⇒ chain.DefaultSeed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithRand supplies the random stream directly; it overrides WithSeed.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithObjective fixes the tile-selecting objective c (copied).
// Its length must equal the number of columns of V.
func WithObjective(c []float64) Option {
	if len(c) == 0 {
		panic(panicObjective)
	}
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			panic(panicObjective)
		}
	}
	cp := make([]float64, len(c))
	copy(cp, c)

	return func(o *Options) { o.objective = cp }
}

// WithBasisTol sets the integrality tolerance of ExtractBasis.
func WithBasisTol(eps float64) Option {
	if !(eps > 0 && eps < 0.5) {
		panic(panicBasisTol)
	}

	return func(o *Options) { o.basisTol = eps }
}

// WithInitAttempts bounds the number of random starting points.
func WithInitAttempts(n int) Option {
	if n <= 0 {
		panic(panicInitAttempts)
	}

	return func(o *Options) { o.initAttempts = n }
}

// WithLPTol sets the simplex tolerance (0 ⇒ lp.DefaultTol).
func WithLPTol(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicLPTol)
	}

	return func(o *Options) { o.lpTol = tol }
}

// WithLogger sets the logger for Debug records. nil ⇒ slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.logger = l }
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return gatherOptions()
}

// Budget returns the effective stopping budget.
func (o Options) Budget() chain.Budget { return o.budget }

// BasisTol returns the effective integrality tolerance.
func (o Options) BasisTol() float64 { return o.basisTol }

// lpConfig returns the solver configuration for this run.
func (o Options) lpConfig() lp.Config {
	return lp.Config{Tol: o.lpTol, Logger: o.logger}
}

func gatherOptions(user ...Option) Options {
	o := Options{
		basisTol:     DefaultBasisTol,
		initAttempts: DefaultInitAttempts,
	}
	for _, set := range user {
		set(&o)
	}

	if !o.budgetSet {
		o.budget = chain.DefaultBudget()
	}
	if o.rng == nil {
		o.rng = chain.NewRand(o.seed)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}
