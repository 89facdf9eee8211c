// Package matrix_test provides benchmarks for the exponential kernels,
// using deterministic integer fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/cramer/matrix"
)

// benchSizes stay small: cofactor expansion is O(n!).
var benchSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkF float64
	sinkI int
)

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := RandomDense(b, n, n, 1337)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Determinant(m)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkRank(b *testing.B) {
	b.ReportAllocs()
	for _, workers := range []int{1, 4} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			m := RandomDense(b, 5, 6, 4242)
			// rank-deficient: forces the search through every 5×5 minor.
			for j := 0; j < 6; j++ {
				v, _ := m.At(0, j)
				_ = m.Set(4, j, 3*v)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := matrix.Rank(m, matrix.WithParallelism(workers))
				if err != nil {
					b.Fatal(err)
				}
				sinkI = r
			}
		})
	}
}
