// SPDX-License-Identifier: MIT

// Package matrix - determinant by recursive cofactor expansion.
//
// Purpose:
//   - Exact reproduction of the textbook first-row Laplace expansion:
//     det(A) = Σ_j a[0][j] · (-1)^j · det(minor(0, j)), terminating at 1×1.
//
// Cost:
//   - O(n!) time. The kernel is intended for small dense matrices; it is kept
//     as is (no LU shortcut, no zero skipping) so that results match the
//     expansion term by term, including the sign of zero.

package matrix

// cofactorSign returns (-1)^k.
func cofactorSign(k int) float64 {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// Determinant returns det(m) for a square, non-empty m.
// Implementation:
//   - Stage 1: ValidateSquare (nil, non-square) and reject 0×0.
//   - Stage 2: materialize a flat row-major buffer (no copy for *Dense).
//   - Stage 3: recursive first-row cofactor expansion.
//
// Behavior highlights:
//   - 1×1 returns the sole element unchanged (including -0).
//   - The input is never mutated.
//
// Errors:
//   - ErrNilMatrix; ShapeError{ErrNonSquare}; ShapeError{ErrInvalidDimensions} for 0×0.
//
// Complexity:
//   - Time O(n!), Space O(n²) per recursion level.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if m.Rows() == 0 {
		return 0, matrixErrorf(opDeterminant, newShapeError(opDeterminant, m, ErrInvalidDimensions))
	}
	d, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return cofactorExpansion(d.data, d.r), nil
}

// cofactorExpansion evaluates the determinant of the n×n row-major buffer a.
// a is read only; each level allocates one (n-1)×(n-1) scratch minor that is
// refilled for every column j.
func cofactorExpansion(a []float64, n int) float64 {
	if n == 1 {
		return a[0]
	}

	m := n - 1
	minor := make([]float64, m*m)
	det := ZeroSum
	var i, c, j, k int
	for j = 0; j < n; j++ {
		// minor(0, j): rows 1..n-1, every column except j.
		k = 0
		for i = 1; i < n; i++ {
			for c = 0; c < n; c++ {
				if c == j {
					continue
				}
				minor[k] = a[i*n+c]
				k++
			}
		}
		det += a[j] * cofactorSign(j) * cofactorExpansion(minor, m)
	}

	return det
}
