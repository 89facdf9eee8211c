// SPDX-License-Identifier: MIT

// Package app is the linsolve run loop: decode a matrix, report its rank and
// determinant, and solve it with Cramer's rule when it is an augmented system.
package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/cramer/equation"
	"github.com/katalvlaran/cramer/internal/config"
	"github.com/katalvlaran/cramer/matrix"
	"github.com/katalvlaran/cramer/rounding"
)

// App wires configuration and logging around the matrix and equation packages.
type App struct {
	cfg    *config.Config
	logger *zap.Logger
}

// New creates an App. A nil cfg selects config.Default, a nil logger the no-op logger.
func New(cfg *config.Config, logger *zap.Logger) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &App{cfg: cfg, logger: logger}
}

// Run reads one document from in and writes the report to out.
//
// Report layout:
//
//	<matrix, tab separated>
//	rank: <k>
//	determinant: <d>          square, non-empty input only
//	x[i] = <value>            n×(n+1) input only, one line per variable
//
// A singular augmented system is reported (rank and matrix are still written)
// and then returned as an error matching equation.ErrNoUniqueSolution.
func (a *App) Run(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	rows, err := Decode(data)
	if err != nil {
		return err
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return err
	}
	r, c := m.Shape()
	a.logger.Info("matrix loaded", zap.Int("rows", r), zap.Int("cols", c))

	// Render a cleaned copy; the computations below see the input as given.
	shown := m.Clone().(*matrix.Dense)
	if err = rounding.CleanMatrix(shown); err != nil {
		return err
	}
	if err = matrix.Fprint(out, shown); err != nil {
		return err
	}

	opts := append(a.cfg.MatrixOptions(), matrix.WithLogger(a.logger))
	rank, err := matrix.Rank(m, opts...)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(out, "rank: %d\n", rank); err != nil {
		return err
	}

	if r > 0 && m.IsSquare() {
		det, err := matrix.Determinant(m)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(out, "determinant: %g\n", rounding.Clean(det)); err != nil {
			return err
		}
	}

	if r == 0 || c != r+1 {
		a.logger.Debug("not an augmented system", zap.Int("rows", r), zap.Int("cols", c))

		return nil
	}

	sys, err := equation.New(m, equation.WithLogger(a.logger))
	if err != nil {
		return err
	}
	for i, v := range sys.Resolved() {
		if _, err = fmt.Fprintf(out, "x[%d] = %g\n", i, v); err != nil {
			return err
		}
	}
	a.logger.Info("system solved", zap.Int("variables", sys.Variables()), zap.Float64("main_determinant", sys.MainDeterminant()))

	return nil
}
