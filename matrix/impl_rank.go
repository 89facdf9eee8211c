// SPDX-License-Identifier: MIT

// Package matrix - rank by exhaustive minor search.
//
// Purpose:
//   - rank(A) = the largest k for which some k×k minor (any k rows, any k
//     columns) has a non-zero determinant.
//
// Implementation outline:
//   - k runs from min(rows, cols) down to 1; the first size with a non-singular
//     minor is the answer. 0 when no 1×1 minor is non-zero (or the matrix is empty).
//   - Candidates at size k are C(rows,k)·C(cols,k) pairs of index subsets
//     produced by the configured Combiner and validated against Binomial.
//   - With WithParallelism(n > 1) the candidates of one size are evaluated by a
//     bounded errgroup; the first hit cancels the rest. The accepted size does
//     not depend on which candidate is found first, so results match the
//     sequential scan exactly.

package matrix

import (
	"context"
	"errors"
	"math"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// errMinorFound stops an errgroup once a non-singular minor is seen.
var errMinorFound = errors.New("matrix: non-singular minor found")

// Rank returns the rank of m via minor enumeration.
// Implementation:
//   - Stage 1: validate non-nil, resolve options, materialize *Dense.
//   - Stage 2: for k = min(r,c) … 1 enumerate row/column subsets and test
//     det(Induced(rows, cols)) against the tolerance.
//   - Stage 3: return the first k with a hit, else 0.
//
// Behavior highlights:
//   - Result is in [0, min(rows, cols)].
//   - Deterministic for any parallelism.
//
// Errors:
//   - ErrNilMatrix; ErrCombinerMismatch / ErrOutOfRange from a misbehaving Combiner.
//
// Complexity:
//   - Σ_k C(r,k)·C(c,k) determinant evaluations of cost O(k!) in the worst case.
func Rank(m Matrix, opts ...Option) (int, error) {
	d, err := AsDense(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	o := gatherOptions(opts...)

	maxK := min(d.r, d.c)
	var rowSets, colSets [][]int
	var found bool
	for k := maxK; k >= 1; k-- {
		if rowSets, err = checkedCombinations(o.combiner, d.r, k); err != nil {
			return 0, matrixErrorf(opRank, err)
		}
		if colSets, err = checkedCombinations(o.combiner, d.c, k); err != nil {
			return 0, matrixErrorf(opRank, err)
		}

		if o.workers > 1 {
			found, err = searchMinorsParallel(d, rowSets, colSets, o)
		} else {
			found, err = searchMinors(d, rowSets, colSets, o.tol)
		}
		if err != nil {
			return 0, matrixErrorf(opRank, err)
		}
		if found {
			o.logger.Debug("rank resolved", zap.Int("rank", k), zap.Int("rows", d.r), zap.Int("cols", d.c))

			return k, nil
		}
		o.logger.Debug("no non-singular minor",
			zap.Int("k", k),
			zap.Int("candidates", len(rowSets)*len(colSets)))
	}

	return 0, nil
}

// nonSingular reports |det| > tol. NaN is never non-singular.
func nonSingular(det, tol float64) bool {
	return math.Abs(det) > tol
}

// minorDeterminant builds the k×k minor at (rs, cs) and evaluates it.
func minorDeterminant(d *Dense, rs, cs []int) (float64, error) {
	sub, err := d.Induced(rs, cs)
	if err != nil {
		return 0, err
	}

	return cofactorExpansion(sub.data, sub.r), nil
}

// searchMinors scans candidates in lexicographic (row set, column set) order
// and stops at the first non-singular minor.
func searchMinors(d *Dense, rowSets, colSets [][]int, tol float64) (bool, error) {
	var det float64
	var err error
	for _, rs := range rowSets {
		for _, cs := range colSets {
			if det, err = minorDeterminant(d, rs, cs); err != nil {
				return false, err
			}
			if nonSingular(det, tol) {
				return true, nil
			}
		}
	}

	return false, nil
}

// searchMinorsParallel evaluates candidates with at most o.workers goroutines.
// Submission stops once a hit is recorded or the group context is cancelled.
func searchMinorsParallel(d *Dense, rowSets, colSets [][]int, o Options) (bool, error) {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.workers)

	var hit atomic.Bool
submit:
	for _, rs := range rowSets {
		for _, cs := range colSets {
			if hit.Load() || ctx.Err() != nil {
				break submit
			}
			rs, cs := rs, cs // per-iteration copies (pre-Go 1.22 loop semantics)
			g.Go(func() error {
				if hit.Load() {
					return nil
				}
				det, err := minorDeterminant(d, rs, cs)
				if err != nil {
					return err
				}
				if nonSingular(det, o.tol) {
					hit.Store(true)

					return errMinorFound
				}

				return nil
			})
		}
	}

	err := g.Wait()
	if errors.Is(err, errMinorFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}

	return hit.Load(), nil
}
