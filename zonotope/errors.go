// SPDX-License-Identifier: MIT

package zonotope

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization is returned when no random interior point fell into
	// a tile with exactly r fractional coordinates and a non-zero volume.
	ErrInitialization = errors.New("zonotope: no valid initial tile found")

	// ErrSolverFailure wraps an lp sentinel (infeasible, unbounded or failed solve).
	ErrSolverFailure = errors.New("zonotope: linear program failed")

	// ErrObjectiveLength is returned when WithObjective does not match the column count of V.
	ErrObjectiveLength = errors.New("zonotope: objective length differs from number of columns")
)

// opSample tags errors and log records of Sample.
const opSample = "Sample"

// zonotopeErrorf wraps err with an operation tag. Call only with a non-nil err.
func zonotopeErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// solverErrorf marks err as a solver failure while keeping the lp sentinel reachable.
func solverErrorf(stage string, err error) error {
	return fmt.Errorf("%w (%s): %w", ErrSolverFailure, stage, err)
}
