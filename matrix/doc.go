// Package matrix is a small dense linear-algebra kernel over float64.
//
// The matrix package provides:
//
//   - Dense, a row-major Matrix with safe accessors, constructed from nested
//     rows (ragged input is an error, never truncated).
//   - Structural transforms: ExcludeRow, ExcludeColumn, Minor, Induced, Transpose.
//   - Determinant by recursive first-row cofactor expansion and Cofactor.
//   - Rank by minor enumeration through a pluggable Combiner
//     (GonumCombiner by default), optionally evaluated in parallel.
//   - Format/Fprint for tab-separated, line-per-row text rendering.
//
// All exposed operations are pure: they validate shape first, never mutate
// their inputs, and return freshly allocated results. Errors are package
// sentinels (ErrNonSquare, ErrOutOfRange, ErrRagged, ...) matched with
// errors.Is; IsShapeError groups the shape kinds.
//
// Determinant and Rank are exponential in the matrix dimension and are meant
// for small matrices.
package matrix
