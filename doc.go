// Package cramer is a small dense linear-algebra toolkit built around exact
// cofactor expansion: determinants, rank by minor enumeration, and a
// Cramer's-rule solver for square systems with a unique solution.
//
// Packages:
//
//	matrix        Dense matrices, row/column exclusion, minors, cofactors,
//	              Determinant, Rank (optionally parallel), formatting
//	equation      System: an n×(n+1) augmented matrix solved by Cramer's rule
//	rounding      negative-zero cleanup for stable output and comparisons
//	cmd/linsolve  command-line front end reading YAML or JSON matrices
//
// Quick example:
//
//	sys, err := equation.NewFromRows([][]float64{
//		{2, 2, 1, 1},
//		{5, 1, 3, 1},
//		{-7, 1, 1, 5},
//	})
//	if err != nil {
//		// errors.Is(err, equation.ErrNoUniqueSolution) for singular systems
//	}
//	x := sys.Resolved() // (-0.5, 0.5, 1)
//
// Determinants are computed by first-row cofactor expansion, which costs
// O(n!) time. The toolkit targets small, exactly specified systems; it does
// not factorize.
//
//	go get github.com/katalvlaran/cramer
package cramer
