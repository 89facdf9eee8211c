// SPDX-License-Identifier: MIT

// Package rounding normalizes floating-point artifacts for stable equality
// comparisons and display.
//
// Only the sign of zero is touched: -0 becomes +0. Precision is never
// rounded, and every other value (non-zero numbers, ±Inf, NaN) is preserved
// bit for bit.
package rounding

import (
	"math"

	"github.com/katalvlaran/cramer/matrix"
)

// Clean returns +0 when v is a negative zero, v otherwise.
func Clean(v float64) float64 {
	if v == 0 && math.Signbit(v) {
		return 0
	}

	return v
}

// CleanNegativeZeros replaces every negative zero in values with +0, in place.
// No-op on nil or empty input.
func CleanNegativeZeros(values []float64) {
	for i, v := range values {
		if v == 0 && math.Signbit(v) {
			values[i] = 0
		}
	}
}

// CleanMatrix applies Clean to every cell of m in place.
func CleanMatrix(m *matrix.Dense) error {
	return m.Apply(func(_, _ int, v float64) float64 { return Clean(v) })
}
