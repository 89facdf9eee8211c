// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"
)

// Vector is an ordered sequence of float64 values: spatial coordinates or a
// resolved solution tuple. It carries no algebra; it is a transport type.
type Vector []float64

// Len returns the number of components.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy (nil stays nil).
func (v Vector) Clone() Vector {
	if v == nil {
		return nil
	}
	out := make(Vector, len(v))
	copy(out, v)

	return out
}

// String renders the components as "(x0, x1, ...)" in shortest %g form.
func (v Vector) String() string {
	var b strings.Builder
	b.WriteString("(")
	for i, x := range v {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	b.WriteString(")")

	return b.String()
}
