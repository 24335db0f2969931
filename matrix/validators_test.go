package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/matrix"
)

func TestValidateNonEmpty(t *testing.T) {
	require.NoError(t, matrix.ValidateNonEmpty(mat.NewDense(1, 2, nil)))

	err := matrix.ValidateNonEmpty(nil)
	require.True(t, errors.Is(err, matrix.ErrNilMatrix))

	// The zero value of mat.Dense reports 0×0.
	err = matrix.ValidateNonEmpty(&mat.Dense{})
	require.True(t, errors.Is(err, matrix.ErrEmptyMatrix))
}

func TestValidateSquare(t *testing.T) {
	require.NoError(t, matrix.ValidateSquare(mat.NewDense(2, 2, nil)))
	require.True(t, errors.Is(matrix.ValidateSquare(mat.NewDense(2, 3, nil)), matrix.ErrNonSquare))
	require.True(t, errors.Is(matrix.ValidateSquare(nil), matrix.ErrNilMatrix))
}
