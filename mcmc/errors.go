// SPDX-License-Identifier: MIT

package mcmc

import (
	"errors"
	"fmt"
)

var (
	// ErrInitialization is returned when no starting subset with a
	// sufficiently non-singular principal minor was found.
	ErrInitialization = errors.New("mcmc: no valid initial sample found")

	// ErrEmptySample is returned when a fixed-size chain is asked to run on
	// an empty initial sample.
	ErrEmptySample = errors.New("mcmc: fixed-size chain needs a non-empty sample")

	// ErrSampleTooLarge is returned when the requested sample size exceeds N.
	ErrSampleTooLarge = errors.New("mcmc: sample size exceeds ground set")
)

// Operation tags for error wrapping and log records.
const (
	opAddDelete         = "AddDelete"
	opAddExchangeDelete = "AddExchangeDelete"
	opBasisExchange     = "BasisExchange"
)

// mcmcErrorf wraps err with an operation tag. Call only with a non-nil err.
func mcmcErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
