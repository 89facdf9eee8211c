// SPDX-License-Identifier: MIT

package matrix

import (
	"io"
	"strconv"
	"strings"
)

// ColumnSeparator delimits values on a rendered row; every row ends with RowTerminator.
const (
	ColumnSeparator = "\t"
	RowTerminator   = "\n"
)

// Format renders m one row per line, values in shortest %g form separated by
// ColumnSeparator, each row terminated by RowTerminator. A matrix with no rows
// renders as the empty string; an r×0 matrix renders r empty lines.
//
// Errors:
//   - ErrNilMatrix; At errors from non-Dense implementations.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Format(m Matrix) (string, error) {
	d, err := AsDense(m)
	if err != nil {
		return "", matrixErrorf(opFormat, err)
	}

	var b strings.Builder
	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			if j > 0 {
				b.WriteString(ColumnSeparator)
			}
			b.WriteString(strconv.FormatFloat(d.data[i*d.c+j], 'g', -1, 64))
		}
		b.WriteString(RowTerminator)
	}

	return b.String(), nil
}

// Fprint writes Format(m) to w. Redirection is the caller's concern.
func Fprint(w io.Writer, m Matrix) error {
	s, err := Format(m)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)

	return err
}
