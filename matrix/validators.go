// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape/index checks used by
//    the determinant and product helpers.
//  - Return wrapped sentinels so call sites can match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure and allocate nothing.

package matrix

import "gonum.org/v1/gonum/mat"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return matrixErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty checks that m is non-nil with at least one row and one column.
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(1).
func ValidateNonEmpty(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if r, c := m.Dims(); r == 0 || c == 0 {
		return matrixErrorf("ValidateNonEmpty", ErrEmptyMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Dims()
	if r != c {
		return matrixErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateIndices checks that every index in idx lies in [0, n).
// Duplicates are allowed here; set semantics are enforced by package subset.
// Complexity: O(len(idx)).
func ValidateIndices(idx []int, n int) error {
	var v int
	for _, v = range idx {
		if v < 0 || v >= n {
			return matrixErrorf("ValidateIndices", ErrOutOfRange)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return matrixErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}
