// Package equation solves square linear equation systems by Cramer's rule.
//
// A System is built from an augmented matrix with n rows and n+1 columns:
// the first n columns are the coefficients, the last column holds the
// right-hand-side constants. Construction validates the shape and the main
// determinant (the determinant of the coefficient block) eagerly, so an
// observable *System always has a unique solution:
//
//	sys, err := equation.NewFromRows([][]float64{
//		{2, 2, 1, 1},
//		{5, 1, 3, 1},
//		{-7, 1, 1, 5},
//	})
//	if errors.Is(err, equation.ErrLinearEquationSystem) {
//		// wrong shape or no unique solution
//	}
//	x := sys.Resolved() // x[i] = det(M_i) / det(A), computed once
//
// Every determinant is evaluated by matrix.Determinant (cofactor expansion),
// so the solver is meant for small systems.
package equation
