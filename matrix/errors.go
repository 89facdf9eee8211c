// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines the package-level sentinel errors used across the matrix
// package plus the ShapeError carrier. All algorithms MUST return these
// sentinels (optionally inside a ShapeError) and tests MUST check them via
// errors.Is. No algorithm panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf(op, ErrX) at the nearest
// detection site; callers still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (ragged/dimensions/square/index) -> NaN/Inf -> enumerator contract.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive,
	// or that an operation needs at least one row and column (e.g., a 0×0 determinant).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged signals that nested row input does not have identical row lengths.
	// Rows are never truncated or padded.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and exclusion transforms MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., MatVec with len(x) != Cols.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, Apply).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrCombinerMismatch indicates that a Combiner produced a number of index
	// subsets different from Binomial(n, k), or a subset of the wrong size.
	ErrCombinerMismatch = errors.New("matrix: combiner output does not match binomial coefficient")
)

// shapeKinds lists the sentinels that describe a violated shape precondition.
var shapeKinds = []error{
	ErrInvalidDimensions,
	ErrRagged,
	ErrOutOfRange,
	ErrDimensionMismatch,
	ErrNonSquare,
}

// ShapeError reports a shape precondition violation together with the
// operation and the offending shape. It unwraps to one of the shape sentinels.
type ShapeError struct {
	Op         string // operation tag (opDeterminant, opExcludeRow, ...)
	Rows, Cols int    // shape of the operand that failed the check
	Err        error  // underlying sentinel
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s(%dx%d): %v", e.Op, e.Rows, e.Cols, e.Err)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ShapeError) Unwrap() error { return e.Err }

// newShapeError builds a ShapeError for m (which must be non-nil).
func newShapeError(op string, m Matrix, err error) error {
	return &ShapeError{Op: op, Rows: m.Rows(), Cols: m.Cols(), Err: err}
}

// IsShapeError reports whether err describes a violated shape precondition:
// ragged input, non-square input, bad dimensions, or an index out of range.
func IsShapeError(err error) bool {
	if err == nil {
		return false
	}
	var se *ShapeError
	if errors.As(err, &se) {
		return true
	}
	for _, kind := range shapeKinds {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
