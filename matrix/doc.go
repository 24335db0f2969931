// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra provider used by the samplers.
//
// It is a thin, validated layer over gonum.org/v1/gonum/mat:
//
//   - Submatrix extracts K[rows, cols] into a fresh *mat.Dense.
//   - PrincipalDet computes det K[S, S] for an index set S (det of the empty set is 1).
//   - ColumnDet computes det V[:, B] for a square column selection B.
//   - MulVec computes y = M·x for plain slices.
//
// All entry points validate their inputs and return the sentinels from
// errors.go instead of panicking the way gonum does on shape misuse.
// Numerical safeguards are intentionally absent: a singular sub-matrix
// yields a zero (or tiny) determinant, never an error.
package matrix
