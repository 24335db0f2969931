package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/matrix"
)

const detTol = 1e-12

func TestPrincipalDet_Identity(t *testing.T) {
	k := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})

	det, err := matrix.PrincipalDet(k, []int{0, 2})
	require.NoError(t, err)
	require.InDelta(t, 1.0, det, detTol)
}

func TestPrincipalDet_EmptySelectionIsOne(t *testing.T) {
	k := mat.NewDense(2, 2, []float64{2, 1, 1, 2})

	det, err := matrix.PrincipalDet(k, nil)
	require.NoError(t, err)
	require.Equal(t, 1.0, det)
}

func TestPrincipalDet_OrderInvariant(t *testing.T) {
	// det K[S,S] must not depend on the order of S (P K Pᵀ has the same det).
	k := mat.NewDense(3, 3, []float64{
		2.0, 0.5, 0.1,
		0.5, 1.5, 0.3,
		0.1, 0.3, 1.0,
	})

	a, err := matrix.PrincipalDet(k, []int{0, 1, 2})
	require.NoError(t, err)
	b, err := matrix.PrincipalDet(k, []int{2, 0, 1})
	require.NoError(t, err)
	require.InDelta(t, a, b, 1e-10)
}

func TestPrincipalDet_SingularIsZeroNotError(t *testing.T) {
	k := mat.NewDense(2, 2, []float64{1, 1, 1, 1})

	det, err := matrix.PrincipalDet(k, []int{0, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.0, det, detTol)
}

func TestPrincipalDet_Errors(t *testing.T) {
	_, err := matrix.PrincipalDet(nil, []int{0})
	require.True(t, errors.Is(err, matrix.ErrNilMatrix))

	_, err = matrix.PrincipalDet(mat.NewDense(2, 3, nil), []int{0})
	require.True(t, errors.Is(err, matrix.ErrNonSquare))

	_, err = matrix.PrincipalDet(mat.NewDense(2, 2, nil), []int{0, 2})
	require.True(t, errors.Is(err, matrix.ErrOutOfRange))
}

func TestColumnDet(t *testing.T) {
	v := mat.NewDense(2, 3, []float64{
		1, 0, 2,
		0, 1, 3,
	})

	det, err := matrix.ColumnDet(v, []int{0, 1})
	require.NoError(t, err)
	require.InDelta(t, 1.0, det, detTol)

	// Swapping columns flips the sign.
	det, err = matrix.ColumnDet(v, []int{1, 0})
	require.NoError(t, err)
	require.InDelta(t, -1.0, det, detTol)

	det, err = matrix.ColumnDet(v, []int{0, 2})
	require.NoError(t, err)
	require.InDelta(t, 3.0, det, detTol)

	_, err = matrix.ColumnDet(v, []int{0})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestSubmatrix(t *testing.T) {
	m := mat.NewDense(3, 3, []float64{
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	})

	sub, err := matrix.Submatrix(m, []int{2, 0}, []int{1})
	require.NoError(t, err)
	r, c := sub.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 1, c)
	require.Equal(t, 8.0, sub.At(0, 0))
	require.Equal(t, 2.0, sub.At(1, 0))

	_, err = matrix.Submatrix(m, nil, []int{1})
	require.True(t, errors.Is(err, matrix.ErrEmptySelection))

	_, err = matrix.SubDet(m, []int{0, 1}, []int{0})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}

func TestMulVec(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 1})

	y, err := matrix.MulVec(m, []float64{0.25, 0.5})
	require.NoError(t, err)
	require.Equal(t, []float64{0.75}, y)

	_, err = matrix.MulVec(m, []float64{1})
	require.True(t, errors.Is(err, matrix.ErrDimensionMismatch))
}
