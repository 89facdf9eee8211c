// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cramer/matrix"
)

// scenario is the 3-equation augmented system used across packages.
var scenario = [][]float64{
	{2, 2, 1, 1},
	{5, 1, 3, 1},
	{-7, 1, 1, 5},
}

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (At-based) paths; results
// must match the *Dense fast paths exactly.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// MustRows BUILDS a *Dense from nested rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt READS m(i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES m(i,j)=v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustDet EVALUATES det(m) or fails the test.
func MustDet(t testing.TB, m matrix.Matrix) float64 {
	t.Helper()
	d, err := matrix.Determinant(m)
	require.NoError(t, err)

	return d
}

// MustRank EVALUATES rank(m) or fails the test.
func MustRank(t testing.TB, m matrix.Matrix, opts ...matrix.Option) int {
	t.Helper()
	r, err := matrix.Rank(m, opts...)
	require.NoError(t, err)

	return r
}

// CompareExact asserts that m has exactly the rows of want (shape and bits).
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "Cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// RandomDense returns an r×c matrix with small integer entries in [-4, 4],
// deterministic for a given seed. Integer entries keep determinants exact.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, float64(rng.Intn(9)-4))
		}
	}

	return m
}

// SwapRows returns a copy of m with rows a and b exchanged.
func SwapRows(t testing.TB, m *matrix.Dense, a, b int) *matrix.Dense {
	t.Helper()
	rows := m.RawRows()
	rows[a], rows[b] = rows[b], rows[a]

	return MustRows(t, rows)
}
