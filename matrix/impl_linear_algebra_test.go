// Package matrix_test contains unit tests for universal Matrix (linear algebra) operations.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cramer/matrix"
)

func TestTranspose(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	want := [][]float64{{1, 4}, {2, 5}, {3, 6}}

	got, err := matrix.Transpose(m)
	require.NoError(t, err)
	CompareExact(t, want, got)

	// Fallback path must agree with the flat fast path.
	fb, err := matrix.Transpose(hide{m})
	require.NoError(t, err)
	CompareExact(t, want, fb)

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose_ZeroSized(t *testing.T) {
	got, err := matrix.Transpose(MustRows(t, [][]float64{{}, {}, {}}))
	require.NoError(t, err)
	require.Equal(t, 0, got.Rows())
	require.Equal(t, 3, got.Cols())
}

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := MustRows(t, [][]float64{{2, 2, 1}, {5, 1, 3}, {-7, 1, 1}})
	x := []float64{1, -1, 2}
	want := []float64{2, 10, -6}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Equal(t, want, y)

	y, err = matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	require.Equal(t, want, y)

	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNewIdentityAndDense(t *testing.T) {
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	Z, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0, 0}, {0, 0, 0}}, Z)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestAsDense(t *testing.T) {
	m := MustRows(t, scenario)

	same, err := matrix.AsDense(m)
	require.NoError(t, err)
	require.Same(t, m, same)

	copied, err := matrix.AsDense(hide{m})
	require.NoError(t, err)
	require.NotSame(t, m, copied)
	CompareExact(t, scenario, copied)

	var nilDense *matrix.Dense
	_, err = matrix.AsDense(nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	cl := m.Clone()
	CompareExact(t, scenario, cl)
}
