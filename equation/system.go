// SPDX-License-Identifier: MIT

package equation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/cramer/matrix"
	"github.com/katalvlaran/cramer/rounding"
)

// System is a linear equation system with a unique solution.
//
// It owns a private copy of the augmented matrix and is immutable after
// construction, except for the resolved vector which is computed on the
// first call to Resolved and cached for the lifetime of the instance.
// A System is safe for concurrent use.
type System struct {
	augmented *matrix.Dense // n×(n+1), private copy
	coeffs    *matrix.Dense // n×n coefficient block
	constants matrix.Vector // last column
	mainDet   float64       // det(coeffs), finite and non-zero
	logger    *zap.Logger

	once     sync.Once
	resolved matrix.Vector
}

// New builds a System from an augmented matrix.
// Implementation:
//   - Stage 1: shape check, n >= 1 and cols == n+1 (ErrAugmentedShape).
//   - Stage 2: take a private, finite-checked copy of the input.
//   - Stage 3: split into coefficient block and constants; compute the main
//     determinant and reject zero (ErrNoUniqueSolution).
//
// Behavior highlights:
//   - Validation is eager: a failed call returns no System and retains nothing.
//   - The caller's matrix is never mutated or aliased.
//
// Errors:
//   - ErrAugmentedShape, ErrNoUniqueSolution, ErrNonFiniteDeterminant (all match
//     ErrLinearEquationSystem);
//     matrix.ErrNaNInf for non-finite input.
//
// Complexity:
//   - Time O(n!) for the main determinant, Space O(n²).
func New(m matrix.Matrix, opts ...Option) (*System, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, systemErrorf(opNew, fmt.Errorf("%w: %w", ErrAugmentedShape, err))
	}
	n, cols := m.Rows(), m.Cols()
	if n == 0 || cols != n+1 {
		return nil, systemErrorf(opNew, fmt.Errorf("got %dx%d: %w", n, cols, ErrAugmentedShape))
	}
	d, err := matrix.AsDense(m)
	if err != nil {
		return nil, systemErrorf(opNew, err)
	}
	// Re-ingest through NewDenseFromRows: private copy plus the finite-value policy.
	aug, err := matrix.NewDenseFromRows(d.RawRows())
	if err != nil {
		return nil, systemErrorf(opNew, err)
	}

	return build(aug, opts...)
}

// NewFromRows builds a System from nested rows, e.g.
// [][]float64{{2, 2, 1, 1}, {5, 1, 3, 1}, {-7, 1, 1, 5}}.
// Ragged rows fail with both ErrAugmentedShape and matrix.ErrRagged.
func NewFromRows(rows [][]float64, opts ...Option) (*System, error) {
	aug, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		if errors.Is(err, matrix.ErrRagged) {
			return nil, systemErrorf(opNewFromRows, fmt.Errorf("%w: %w", ErrAugmentedShape, err))
		}

		return nil, systemErrorf(opNewFromRows, err)
	}
	n, cols := aug.Shape()
	if n == 0 || cols != n+1 {
		return nil, systemErrorf(opNewFromRows, fmt.Errorf("got %dx%d: %w", n, cols, ErrAugmentedShape))
	}

	return build(aug, opts...)
}

// build finishes construction from an owned, shape-checked augmented matrix.
func build(aug *matrix.Dense, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)
	n := aug.Rows()

	coeffs, err := matrix.ExcludeColumn(aug, n)
	if err != nil {
		return nil, systemErrorf(opNew, err)
	}
	constants := make(matrix.Vector, n)
	for i := 0; i < n; i++ {
		if constants[i], err = aug.At(i, n); err != nil {
			return nil, systemErrorf(opNew, err)
		}
	}
	det, err := matrix.Determinant(coeffs)
	if err != nil {
		return nil, systemErrorf(opNew, err)
	}
	if det == 0 {
		o.logger.Debug("rejecting singular system", zap.Int("variables", n))

		return nil, systemErrorf(opNew, ErrNoUniqueSolution)
	}
	if math.IsNaN(det) || math.IsInf(det, 0) {
		o.logger.Debug("rejecting overflowed system", zap.Int("variables", n), zap.Float64("main_determinant", det))

		return nil, systemErrorf(opNew, fmt.Errorf("got %g: %w", det, ErrNonFiniteDeterminant))
	}
	o.logger.Debug("system constructed", zap.Int("variables", n), zap.Float64("main_determinant", det))

	return &System{
		augmented: aug,
		coeffs:    coeffs,
		constants: constants,
		mainDet:   det,
		logger:    o.logger,
	}, nil
}

// Variables returns n, the number of unknowns (and equations).
func (s *System) Variables() int { return s.coeffs.Rows() }

// MainDeterminant returns det of the coefficient block. Never zero.
func (s *System) MainDeterminant() float64 { return s.mainDet }

// Augmented returns a copy of the n×(n+1) augmented matrix.
func (s *System) Augmented() *matrix.Dense { return s.augmented.Clone().(*matrix.Dense) }

// Coefficients returns a copy of the n×n coefficient block.
func (s *System) Coefficients() *matrix.Dense { return s.coeffs.Clone().(*matrix.Dense) }

// Constants returns a copy of the right-hand-side column.
func (s *System) Constants() matrix.Vector { return s.constants.Clone() }

// Resolved returns the solution x with x[i] = det(M_i) / det(A), where M_i is
// the coefficient block with column i replaced by the constants.
// The vector is computed on the first call and cached; each call returns a copy.
// Negative zeros in the result are normalized to +0.
func (s *System) Resolved() matrix.Vector {
	s.once.Do(s.resolve)

	return s.resolved.Clone()
}

// resolve applies Cramer's rule. Every step is infallible for a System that
// passed construction; a failure here is a broken invariant.
func (s *System) resolve() {
	n := s.Variables()
	rows := s.coeffs.RawRows()
	out := make(matrix.Vector, n)

	var i, r int
	for i = 0; i < n; i++ {
		mi := make([][]float64, n)
		for r = 0; r < n; r++ {
			row := make([]float64, n)
			copy(row, rows[r])
			row[i] = s.constants[r]
			mi[r] = row
		}
		md, err := matrix.NewDenseFromRows(mi)
		if err != nil {
			panic(fmt.Sprintf("equation: replacing column %d: %v", i, err))
		}
		det, err := matrix.Determinant(md)
		if err != nil {
			panic(fmt.Sprintf("equation: determinant of M_%d: %v", i, err))
		}
		out[i] = det / s.mainDet
	}
	rounding.CleanNegativeZeros(out)

	s.logger.Debug("system resolved", zap.Int("variables", n), zap.Float64s("resolved", out))
	s.resolved = out
}

// Residuals returns A·x − b for the resolved x. Every component is close to
// zero for a correctly resolved system; useful for re-substitution checks.
func (s *System) Residuals() (matrix.Vector, error) {
	ax, err := matrix.MatVec(s.coeffs, s.Resolved())
	if err != nil {
		return nil, systemErrorf(opResiduals, err)
	}
	for i := range ax {
		ax[i] -= s.constants[i]
	}

	return ax, nil
}

// String renders the augmented matrix followed by one "x[i] = value" line per variable.
func (s *System) String() string {
	var b strings.Builder
	text, _ := matrix.Format(s.augmented) // non-nil *Dense: cannot fail
	b.WriteString(text)
	for i, v := range s.Resolved() {
		fmt.Fprintf(&b, "x[%d] = %g\n", i, v)
	}

	return b.String()
}
