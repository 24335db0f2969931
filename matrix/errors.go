// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All helpers return these sentinels, optionally wrapped with an operation
// tag via matrixErrorf; callers match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil mat.Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a row selection and a column selection of different lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmptyMatrix indicates a matrix with no rows or no columns
	// (e.g. a zero-value mat.Dense) where a ground set was required.
	ErrEmptyMatrix = errors.New("matrix: empty matrix")

	// ErrEmptySelection indicates that a row or column selection was empty
	// where a materialized sub-matrix was requested (gonum has no 0×0 Dense).
	ErrEmptySelection = errors.New("matrix: empty index selection")
)

// Operation tags used by matrixErrorf.
const (
	opSubmatrix    = "Submatrix"
	opSubDet       = "SubDet"
	opPrincipalDet = "PrincipalDet"
	opColumnDet    = "ColumnDet"
	opMulVec       = "MulVec"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
