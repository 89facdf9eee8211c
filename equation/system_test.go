// SPDX-License-Identifier: MIT
package equation_test

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/cramer/equation"
	"github.com/katalvlaran/cramer/matrix"
)

const resubTol = 1e-9

var scenario = [][]float64{
	{2, 2, 1, 1},
	{5, 1, 3, 1},
	{-7, 1, 1, 5},
}

// SystemSuite exercises construction and resolution of Cramer systems.
type SystemSuite struct {
	suite.Suite
}

func TestSystemSuite(t *testing.T) {
	suite.Run(t, new(SystemSuite))
}

// requireResubstitutes checks Σ_j a[i][j]·x[j] == b[i] within resubTol for every row.
func (s *SystemSuite) requireResubstitutes(rows [][]float64, x matrix.Vector) {
	n := len(rows)
	s.Require().Len(x, n)
	for i := 0; i < n; i++ {
		lhs := 0.0
		for j := 0; j < n; j++ {
			lhs += rows[i][j] * x[j]
		}
		s.Require().InDelta(rows[i][n], lhs, resubTol, "row %d", i)
	}
}

// TestScenario solves the 3×3 reference system.
func (s *SystemSuite) TestScenario() {
	sys, err := equation.NewFromRows(scenario)
	s.Require().NoError(err)
	s.Require().Equal(3, sys.Variables())
	s.Require().Equal(-44.0, sys.MainDeterminant())

	x := sys.Resolved()
	s.Require().Len(x, 3)
	s.requireResubstitutes(scenario, x)

	// x = det(M_i)/D with det(M_0)=22, det(M_1)=-22, det(M_2)=-44.
	s.Require().Equal(matrix.Vector{-0.5, 0.5, 1}, x)
}

func (s *SystemSuite) TestResidualsNearZero() {
	sys, err := equation.NewFromRows(scenario)
	s.Require().NoError(err)
	res, err := sys.Residuals()
	s.Require().NoError(err)
	for i, r := range res {
		s.Require().InDelta(0, r, resubTol, "residual %d", i)
	}
}

func (s *SystemSuite) TestSmallSystems() {
	cases := map[string][][]float64{
		"1x2":      {{4, -2}},
		"2x3":      {{1, 1, 3}, {1, -1, 1}},
		"diagonal": {{2, 0, 0, 4}, {0, -1, 0, 3}, {0, 0, 0.5, 1}},
		"4x5": {
			{1, 2, 0, 1, 5},
			{0, 1, 3, 2, -1},
			{4, 0, 1, 1, 2},
			{1, 1, 1, 0, 0},
		},
	}
	for name, rows := range cases {
		sys, err := equation.NewFromRows(rows)
		s.Require().NoError(err, name)
		s.requireResubstitutes(rows, sys.Resolved())
	}
}

func (s *SystemSuite) TestNegativeZeroCleaned() {
	// x[0] = 0 / -1 would be -0 without cleanup.
	sys, err := equation.NewFromRows([][]float64{{-1, 0, 0}, {0, 1, 2}})
	s.Require().NoError(err)
	x := sys.Resolved()
	s.Require().Equal(0.0, x[0])
	s.Require().False(math.Signbit(x[0]))
	s.Require().Equal(2.0, x[1])
}

func (s *SystemSuite) TestSingularRejected() {
	cases := map[string][][]float64{
		"dependent rows": {{1, 2, 3}, {2, 4, 6}},
		"inconsistent":   {{1, 1, 1}, {1, 1, 2}},
		"zero matrix":    {{0, 0, 0}, {0, 0, 0}},
		"1x2 zero":       {{0, 7}},
	}
	for name, rows := range cases {
		sys, err := equation.NewFromRows(rows)
		s.Require().Nil(sys, name)
		s.Require().ErrorIs(err, equation.ErrNoUniqueSolution, name)
		s.Require().ErrorIs(err, equation.ErrLinearEquationSystem, name)
	}
}

// TestOverflowRejected: dependent rows whose expansion overflows give
// Inf − Inf = NaN rather than 0; such systems must still be refused.
func (s *SystemSuite) TestOverflowRejected() {
	cases := map[string][][]float64{
		"dependent rows, NaN": {{1e200, 1e200, 1}, {1e200, 1e200, 2}},
		"infinite D":          {{1e200, 0, 1}, {0, 1e200, 2}},
	}
	for name, rows := range cases {
		sys, err := equation.NewFromRows(rows)
		s.Require().Nil(sys, name)
		s.Require().ErrorIs(err, equation.ErrNonFiniteDeterminant, name)
		s.Require().ErrorIs(err, equation.ErrLinearEquationSystem, name)
	}
}

func (s *SystemSuite) TestShapeRejected() {
	cases := map[string][][]float64{
		"square":        {{1, 2}, {3, 4}},
		"too wide":      {{1, 2, 3, 4}, {5, 6, 7, 8}},
		"empty":         {},
		"single column": {{1}},
	}
	for name, rows := range cases {
		sys, err := equation.NewFromRows(rows)
		s.Require().Nil(sys, name)
		s.Require().ErrorIs(err, equation.ErrAugmentedShape, name)
		s.Require().ErrorIs(err, equation.ErrLinearEquationSystem, name)
	}
}

func (s *SystemSuite) TestRaggedRejected() {
	sys, err := equation.NewFromRows([][]float64{{1, 2, 3}, {4, 5}})
	s.Require().Nil(sys)
	s.Require().ErrorIs(err, equation.ErrAugmentedShape)
	s.Require().ErrorIs(err, matrix.ErrRagged)
	s.Require().True(matrix.IsShapeError(err))
}

func (s *SystemSuite) TestNewFromMatrix() {
	m, err := matrix.NewDenseFromRows(scenario)
	s.Require().NoError(err)
	sys, err := equation.New(m)
	s.Require().NoError(err)

	// The System keeps a private copy.
	s.Require().NoError(m.Set(0, 3, 1000))
	aug := sys.Augmented()
	v, err := aug.At(0, 3)
	s.Require().NoError(err)
	s.Require().Equal(1.0, v)
	s.requireResubstitutes(scenario, sys.Resolved())

	_, err = equation.New(nil)
	s.Require().ErrorIs(err, equation.ErrAugmentedShape)
	s.Require().ErrorIs(err, matrix.ErrNilMatrix)

	sq, err := matrix.NewIdentity(3)
	s.Require().NoError(err)
	_, err = equation.New(sq)
	s.Require().ErrorIs(err, equation.ErrAugmentedShape)
}

func (s *SystemSuite) TestAccessorsReturnCopies() {
	sys, err := equation.NewFromRows(scenario)
	s.Require().NoError(err)

	coeffs := sys.Coefficients()
	s.Require().Equal([][]float64{{2, 2, 1}, {5, 1, 3}, {-7, 1, 1}}, coeffs.RawRows())
	s.Require().NoError(coeffs.Set(0, 0, 99))
	s.Require().Equal(2.0, mustAt(s, sys.Coefficients(), 0, 0))

	b := sys.Constants()
	s.Require().Equal(matrix.Vector{1, 1, 5}, b)
	b[0] = 42
	s.Require().Equal(matrix.Vector{1, 1, 5}, sys.Constants())

	x := sys.Resolved()
	x[0] = 1e6
	s.Require().NotEqual(1e6, sys.Resolved()[0])
}

func (s *SystemSuite) TestResolvedComputedOnce() {
	core, logs := observer.New(zapcore.DebugLevel)
	sys, err := equation.NewFromRows(scenario, equation.WithLogger(zap.New(core)))
	s.Require().NoError(err)
	s.Require().Equal(1, logs.FilterMessage("system constructed").Len())
	s.Require().Equal(0, logs.FilterMessage("system resolved").Len())

	var wg sync.WaitGroup
	results := make([]matrix.Vector, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = sys.Resolved()
		}(i)
	}
	wg.Wait()

	for _, r := range results[1:] {
		s.Require().Equal(results[0], r)
	}
	s.Require().Equal(1, logs.FilterMessage("system resolved").Len())
}

func (s *SystemSuite) TestString() {
	sys, err := equation.NewFromRows([][]float64{{2, 0, 4}, {0, 4, 2}})
	s.Require().NoError(err)
	s.Require().Equal("2\t0\t4\n0\t4\t2\nx[0] = 2\nx[1] = 0.5\n", sys.String())
}

func mustAt(s *SystemSuite, m matrix.Matrix, i, j int) float64 {
	v, err := m.At(i, j)
	s.Require().NoError(err)
	return v
}

// TestErrorTaxonomy is a plain test: both kinds unwrap to the umbrella sentinel.
func TestErrorTaxonomy(t *testing.T) {
	require.True(t, errors.Is(equation.ErrAugmentedShape, equation.ErrLinearEquationSystem))
	require.True(t, errors.Is(equation.ErrNoUniqueSolution, equation.ErrLinearEquationSystem))
	require.True(t, errors.Is(equation.ErrNonFiniteDeterminant, equation.ErrLinearEquationSystem))
	require.False(t, errors.Is(equation.ErrAugmentedShape, equation.ErrNoUniqueSolution))
}
