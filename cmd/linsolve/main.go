// SPDX-License-Identifier: MIT

// Command linsolve reads a matrix as YAML or JSON from a file or stdin, prints
// its rank and determinant, and solves it with Cramer's rule when the matrix
// is an n×(n+1) augmented system.
//
// Usage:
//
//	linsolve [-workers N] [-tolerance EPS] [-log-level LEVEL] [-dev] [FILE]
//
// Every flag defaults to its LINSOLVE_* environment variable; flags win.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/cramer/internal/app"
	"github.com/katalvlaran/cramer/internal/config"
	"github.com/katalvlaran/cramer/internal/logging"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Process()
	if err != nil {
		fmt.Fprintf(stderr, "linsolve: %v\n", err)
		return 1
	}

	fs := flag.NewFlagSet("linsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "rank search workers")
	fs.Float64Var(&cfg.Tolerance, "tolerance", cfg.Tolerance, "|det| at or below this counts as zero")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&cfg.LogDev, "dev", cfg.LogDev, "human-readable console logs")
	if err = fs.Parse(args); err != nil {
		return 2
	}
	if err = cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "linsolve: %v\n", err)
		return 1
	}

	logger, err := logging.New(cfg.Logging())
	if err != nil {
		fmt.Fprintf(stderr, "linsolve: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			logger.Error("open input", zap.String("path", fs.Arg(0)), zap.Error(err))
			return 1
		}
		defer f.Close()
		in = f
	}

	if err = app.New(cfg, logger).Run(in, stdout); err != nil {
		logger.Error("linsolve failed", zap.Error(err))
		fmt.Fprintf(stderr, "linsolve: %v\n", err)
		return 1
	}

	return 0
}
