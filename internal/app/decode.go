// SPDX-License-Identifier: MIT

package app

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrEmptyInput is returned when the input document holds no value.
var ErrEmptyInput = errors.New("app: empty input")

// ErrInputFormat is returned when the document is neither a list of rows
// nor a mapping with a "matrix" key.
var ErrInputFormat = errors.New("app: input must be a list of rows or {matrix: [...]}")

// document is the mapping form of the input.
type document struct {
	Matrix [][]float64 `yaml:"matrix" json:"matrix"`
}

// Decode parses a YAML or JSON document into rows. Accepted shapes:
//
//	matrix:
//	  - [2, 2, 1, 1]
//	  - [5, 1, 3, 1]
//
//	[[2, 2, 1, 1], [5, 1, 3, 1]]
//
// Row lengths are not checked here; matrix.NewDenseFromRows rejects ragged rows.
func Decode(data []byte) ([][]float64, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	var top any
	if err := yaml.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("failed to parse input: %w", err)
	}

	switch top.(type) {
	case nil:
		return nil, ErrEmptyInput
	case []any:
		var rows [][]float64
		if err := yaml.Unmarshal(data, &rows); err != nil {
			return nil, fmt.Errorf("failed to decode rows: %w", err)
		}

		return rows, nil
	case map[string]any:
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode matrix: %w", err)
		}
		if doc.Matrix == nil {
			return nil, fmt.Errorf("%w: missing matrix key", ErrInputFormat)
		}

		return doc.Matrix, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInputFormat, top)
	}
}
