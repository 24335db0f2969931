// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// emptyDet is the determinant of the 0×0 matrix (empty product).
const emptyDet = 1.0

// Submatrix returns a fresh *mat.Dense holding m[rows, cols].
// Implementation:
//   - Stage 1: validate m, non-empty selections, index ranges.
//   - Stage 2: copy entries in fixed i→j order.
//
// Errors: ErrNilMatrix, ErrEmptySelection, ErrOutOfRange.
// Complexity: O(len(rows)·len(cols)).
func Submatrix(m mat.Matrix, rows, cols []int) (*mat.Dense, error) {
	// Stage 1: validation.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if len(rows) == 0 || len(cols) == 0 {
		return nil, matrixErrorf(opSubmatrix, ErrEmptySelection)
	}
	r, c := m.Dims()
	if err := ValidateIndices(rows, r); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateIndices(cols, c); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	// Stage 2: copy.
	var (
		out  = mat.NewDense(len(rows), len(cols), nil)
		i, j int
	)
	for i = range rows {
		for j = range cols {
			out.Set(i, j, m.At(rows[i], cols[j]))
		}
	}

	return out, nil
}

// SubDet returns det m[rows, cols] for equal-length selections.
// An empty selection yields 1.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(rows) != len(cols)), ErrOutOfRange.
// Complexity: O(k³) for k = len(rows) (LU inside mat.Det).
func SubDet(m mat.Matrix, rows, cols []int) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opSubDet, err)
	}
	if len(rows) != len(cols) {
		return 0, matrixErrorf(opSubDet, ErrDimensionMismatch)
	}
	if len(rows) == 0 {
		return emptyDet, nil
	}
	sub, err := Submatrix(m, rows, cols)
	if err != nil {
		return 0, matrixErrorf(opSubDet, err)
	}

	return mat.Det(sub), nil
}

// PrincipalDet returns det K[S, S]. K must be square.
// The determinant of the empty selection is 1, matching the convention
// that the empty set always has unit (unnormalized) DPP weight.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrOutOfRange.
// Complexity: O(|S|³).
func PrincipalDet(k mat.Matrix, s []int) (float64, error) {
	if err := ValidateSquare(k); err != nil {
		return 0, matrixErrorf(opPrincipalDet, err)
	}
	det, err := SubDet(k, s, s)
	if err != nil {
		return 0, matrixErrorf(opPrincipalDet, err)
	}

	return det, nil
}

// ColumnDet returns det V[:, cols]. Requires len(cols) == rows(V).
// The sign is preserved; callers comparing tile volumes take |det|.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrOutOfRange.
// Complexity: O(r³).
func ColumnDet(v mat.Matrix, cols []int) (float64, error) {
	if err := ValidateNotNil(v); err != nil {
		return 0, matrixErrorf(opColumnDet, err)
	}
	r, _ := v.Dims()
	if len(cols) != r {
		return 0, matrixErrorf(opColumnDet, ErrDimensionMismatch)
	}
	var (
		rows = make([]int, r)
		i    int
	)
	for i = range rows {
		rows[i] = i
	}
	det, err := SubDet(v, rows, cols)
	if err != nil {
		return 0, matrixErrorf(opColumnDet, err)
	}

	return det, nil
}

// MulVec computes y = m·x and returns y as a new slice.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != cols(m)).
// Complexity: O(r·c).
func MulVec(m mat.Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	r, c := m.Dims()
	if err := ValidateVecLen(x, c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	var y mat.VecDense
	y.MulVec(m, mat.NewVecDense(c, x))

	out := make([]float64, r)
	var i int
	for i = 0; i < r; i++ {
		out[i] = y.AtVec(i)
	}

	return out, nil
}
