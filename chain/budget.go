// SPDX-License-Identifier: MIT

package chain

import (
	"errors"
	"time"
)

var (
	// ErrNoBudget is returned when neither MaxIter nor TimeLimit is positive.
	ErrNoBudget = errors.New("chain: no stopping budget (MaxIter and TimeLimit are both zero)")

	// ErrBadBudget is returned for negative MaxIter or TimeLimit.
	ErrBadBudget = errors.New("chain: negative stopping budget")
)

// Defaults mirror the reference samplers: 10 iterations or 10 seconds.
const (
	DefaultMaxIter   = 10
	DefaultTimeLimit = 10 * time.Second
)

// Budget is the stopping rule of a chain.
//   - MaxIter  : number of recorded states (initial state included); 0 disables.
//   - TimeLimit: wall-clock budget polled once per iteration; used only when MaxIter == 0.
type Budget struct {
	MaxIter   int
	TimeLimit time.Duration
}

// DefaultBudget returns the documented defaults.
func DefaultBudget() Budget {
	return Budget{MaxIter: DefaultMaxIter, TimeLimit: DefaultTimeLimit}
}

// Validate checks the budget can stop a chain.
func (b Budget) Validate() error {
	if b.MaxIter < 0 || b.TimeLimit < 0 {
		return ErrBadBudget
	}
	if b.MaxIter == 0 && b.TimeLimit == 0 {
		return ErrNoBudget
	}

	return nil
}

// Stopper drives the outer loop of a chain.
//
// Usage:
//
//	st := chain.NewStopper(budget)
//	record(initial)
//	for st.Next() {
//		step()
//		record(current)
//	}
type Stopper struct {
	budget Budget
	now    func() time.Time
	start  time.Time
	steps  int // completed Next()==true calls
}

// NewStopper starts the clock at construction time.
func NewStopper(b Budget) *Stopper {
	return NewStopperWithClock(b, time.Now)
}

// NewStopperWithClock is NewStopper with an injected clock (tests, simulations).
func NewStopperWithClock(b Budget, now func() time.Time) *Stopper {
	return &Stopper{budget: b, now: now, start: now()}
}

// Next reports whether one more iteration should run.
// Iteration mode: true exactly MaxIter-1 times (the initial state is entry zero).
// Time mode: the first iteration always runs; afterwards true while elapsed < TimeLimit.
func (s *Stopper) Next() bool {
	if s.budget.MaxIter > 0 {
		if s.steps+1 >= s.budget.MaxIter {
			return false
		}
		s.steps++

		return true
	}
	if s.steps > 0 && s.Elapsed() >= s.budget.TimeLimit {
		return false
	}
	s.steps++

	return true
}

// Steps returns the number of iterations granted so far.
func (s *Stopper) Steps() int { return s.steps }

// Elapsed returns the wall-clock time since the stopper was created.
func (s *Stopper) Elapsed() time.Duration { return s.now().Sub(s.start) }
