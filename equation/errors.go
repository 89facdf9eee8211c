// SPDX-License-Identifier: MIT

package equation

import (
	"errors"
	"fmt"
)

// ErrLinearEquationSystem is the umbrella for every failure to build a System.
// Both ErrAugmentedShape and ErrNoUniqueSolution match it via errors.Is.
var ErrLinearEquationSystem = errors.New("equation: linear equation system")

var (
	// ErrAugmentedShape is returned when the input is not an n×(n+1)
	// augmented matrix with n >= 1 (including ragged rows and nil input).
	ErrAugmentedShape = fmt.Errorf("%w: augmented matrix must be n×(n+1), n >= 1", ErrLinearEquationSystem)

	// ErrNoUniqueSolution is returned when the main determinant is zero:
	// the system is either inconsistent or has infinitely many solutions.
	ErrNoUniqueSolution = fmt.Errorf("%w: main determinant is zero, no unique solution", ErrLinearEquationSystem)

	// ErrNonFiniteDeterminant is returned when the main determinant overflows
	// to ±Inf or NaN, so no quotient det(M_i)/D is meaningful.
	ErrNonFiniteDeterminant = fmt.Errorf("%w: main determinant is not finite", ErrLinearEquationSystem)
)

// Operation tags for error wrapping.
const (
	opNew         = "New"
	opNewFromRows = "NewFromRows"
	opResiduals   = "Residuals"
)

// systemErrorf wraps err with an operation tag, preserving it via %w.
func systemErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
