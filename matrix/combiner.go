// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"
)

// Combiner enumerates index subsets for minor selection.
//
// Combinations(n, k) returns every k-subset of [0, n), each subset sorted
// ascending; Binomial(n, k) returns the expected number of subsets and is
// used to validate the enumeration. Rank only calls them with 1 <= k <= n.
type Combiner interface {
	Combinations(n, k int) [][]int
	Binomial(n, k int) int
}

// GonumCombiner is the default Combiner, backed by gonum's stat/combin.
// Subsets are produced in lexicographic order.
type GonumCombiner struct{}

var _ Combiner = GonumCombiner{}

// Combinations delegates to combin.Combinations.
func (GonumCombiner) Combinations(n, k int) [][]int { return combin.Combinations(n, k) }

// Binomial delegates to combin.Binomial.
func (GonumCombiner) Binomial(n, k int) int { return combin.Binomial(n, k) }

// checkedCombinations asks c for the k-subsets of [0, n) and verifies the
// enumeration contract: Binomial(n, k) subsets, each of length k with
// indices inside [0, n).
func checkedCombinations(c Combiner, n, k int) ([][]int, error) {
	sets := c.Combinations(n, k)
	if want := c.Binomial(n, k); len(sets) != want {
		return nil, fmt.Errorf("combinations(%d,%d): got %d subsets, want %d: %w",
			n, k, len(sets), want, ErrCombinerMismatch)
	}
	for _, s := range sets {
		if len(s) != k {
			return nil, fmt.Errorf("combinations(%d,%d): subset %v has size %d: %w",
				n, k, s, len(s), ErrCombinerMismatch)
		}
		for _, idx := range s {
			if idx < 0 || idx >= n {
				return nil, fmt.Errorf("combinations(%d,%d): index %d: %w", n, k, idx, ErrOutOfRange)
			}
		}
	}

	return sets, nil
}
