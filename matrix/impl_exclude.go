// SPDX-License-Identifier: MIT

// Package matrix - structural transforms: row/column exclusion and minors.
//
// Every transform validates its index before touching data and returns a
// freshly allocated *Dense; the input is never mutated. Excluding the only
// row (or column) is legal and yields a 0×c (or r×0) matrix.

package matrix

// keepAllBut returns [0, n) without skip, in ascending order.
func keepAllBut(n, skip int) []int {
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if i != skip {
			out = append(out, i)
		}
	}

	return out
}

// seq returns [0, n).
func seq(n int) []int { return keepAllBut(n, -1) }

// ExcludeRow returns a copy of m with row rowIndex removed.
// Implementation:
//   - Stage 1: validate m non-nil and 0 ≤ rowIndex < Rows.
//   - Stage 2: Induced(all rows but rowIndex, all cols).
//
// Errors:
//   - ErrNilMatrix; ShapeError{ErrOutOfRange} on a bad index.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func ExcludeRow(m Matrix, rowIndex int) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opExcludeRow, err)
	}
	if err = ValidateIndex(d, "row", rowIndex, d.r); err != nil {
		return nil, matrixErrorf(opExcludeRow, err)
	}
	res, err := d.Induced(keepAllBut(d.r, rowIndex), seq(d.c))
	if err != nil {
		return nil, matrixErrorf(opExcludeRow, err)
	}

	return res, nil
}

// ExcludeColumn returns a copy of m with column colIndex removed.
// Symmetric to ExcludeRow.
//
// Errors:
//   - ErrNilMatrix; ShapeError{ErrOutOfRange} on a bad index.
func ExcludeColumn(m Matrix, colIndex int) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opExcludeColumn, err)
	}
	if err = ValidateIndex(d, "column", colIndex, d.c); err != nil {
		return nil, matrixErrorf(opExcludeColumn, err)
	}
	res, err := d.Induced(seq(d.r), keepAllBut(d.c, colIndex))
	if err != nil {
		return nil, matrixErrorf(opExcludeColumn, err)
	}

	return res, nil
}

// Minor returns m with row i and column j excluded (the (i,j) minor matrix).
// m need not be square.
//
// Errors:
//   - ErrNilMatrix; ShapeError{ErrOutOfRange} when i or j is out of range.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Minor(m Matrix, i, j int) (*Dense, error) {
	d, err := AsDense(m)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err = ValidateIndex(d, "row", i, d.r); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err = ValidateIndex(d, "column", j, d.c); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	res, err := d.Induced(keepAllBut(d.r, i), keepAllBut(d.c, j))
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	return res, nil
}

// Cofactor returns (-1)^(i+j) · det(Minor(m, i, j)) for a square m.
// The cofactor of a 1×1 matrix is 1 (the determinant of the empty minor).
//
// Errors:
//   - ErrNilMatrix; ShapeError{ErrNonSquare}; ShapeError{ErrOutOfRange}.
func Cofactor(m Matrix, i, j int) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	minor, err := Minor(m, i, j)
	if err != nil {
		return 0, matrixErrorf(opCofactor, err)
	}
	sign := cofactorSign(i + j)
	if minor.r == 0 {
		return sign, nil
	}

	return sign * cofactorExpansion(minor.data, minor.r), nil
}
