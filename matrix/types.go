// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the kernels.
// This file contains ONLY domain-facing types (the Matrix interface and
// operation tags). Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opFromRows      = "NewDenseFromRows"
	opTranspose     = "Transpose"
	opMatVec        = "MatVec"
	opExcludeRow    = "ExcludeRow"
	opExcludeColumn = "ExcludeColumn"
	opMinor         = "Minor"
	opCofactor      = "Cofactor"
	opDeterminant   = "Determinant"
	opRank          = "Rank"
	opFormat        = "Format"
)

// Matrix represents a two-dimensional array of float64 values.
//
// Kernels in this package only read through At and allocate fresh results;
// Set exists for builders and callers that own their storage.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
