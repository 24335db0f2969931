// SPDX-License-Identifier: MIT

package mcmc

import (
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/dppmcmc/chain"
)

// Defaults (single source of truth).
const (
	// DefaultInitAttempts bounds the rejection-sampling initialization.
	DefaultInitAttempts = 100

	// DefaultInitThreshold is the smallest accepted det K_S for a synthesized start.
	DefaultInitThreshold = 1e-8
)

// Internal panic messages.
const (
	panicMaxIter       = "mcmc: WithMaxIter: n must be >= 0"
	panicTimeLimit     = "mcmc: WithTimeLimit: d must be >= 0"
	panicSampleSize    = "mcmc: WithSampleSize: k must be >= 0"
	panicInitAttempts  = "mcmc: WithInitAttempts: n must be > 0"
	panicInitThreshold = "mcmc: WithInitThreshold: t must be finite and >= 0"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the resolved configuration of one chain run.
type Options struct {
	budget    chain.Budget
	budgetSet bool // true once WithMaxIter/WithTimeLimit/WithBudget was applied

	seed int64
	rng  *rand.Rand

	initial       []int
	hasInitial    bool
	sampleSize    int
	initAttempts  int
	initThreshold float64

	logger *slog.Logger
}

// WithMaxIter sets the number of recorded states (initial state included).
// A non-zero count takes precedence over any time limit.
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
// Setting only a time limit switches the chain to time mode.
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
// The chain consumes rng; do not share it with concurrent chains.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.rng = rng }
}

// WithInitialSample starts the chain from idx (copied). The sample is
// validated for range and distinctness only; its determinant is not thresholded.
func WithInitialSample(idx []int) Option {
	cp := make([]int, len(idx))
	copy(cp, idx)

	return func(o *Options) {
		o.initial = cp
		o.hasInitial = true
	}
}

// WithSampleSize fixes the size of a synthesized initial sample.
// 0 ⇒ random size (variable-cardinality chains only).
func WithSampleSize(k int) Option {
	if k < 0 {
		panic(panicSampleSize)
	}

	return func(o *Options) { o.sampleSize = k }
}

// WithInitAttempts bounds the number of random starts tried.
func WithInitAttempts(n int) Option {
	if n <= 0 {
		panic(panicInitAttempts)
	}

	return func(o *Options) { o.initAttempts = n }
}

// WithInitThreshold sets the minimal det K_S accepted for a synthesized start.
func WithInitThreshold(t float64) Option {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		panic(panicInitThreshold)
	}

	return func(o *Options) { o.initThreshold = t }
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

// gatherOptions applies setters over the defaults and finalizes derived fields.
func gatherOptions(user ...Option) Options {
	o := Options{
		initAttempts:  DefaultInitAttempts,
		initThreshold: DefaultInitThreshold,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
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
