// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Tolerance defaults to 0: a minor counts as non-zero iff its determinant
//     is not exactly zero. A positive tolerance is an explicit caller choice.
//   - Parallelism never changes results: Rank returns the same value for any
//     worker count.
package matrix

import (
	"go.uber.org/zap"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the |det| threshold at or below which a minor is
	// treated as singular by Rank. Zero means an exact non-zero test.
	DefaultTolerance = 0.0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true

	// DefaultParallelism is the number of workers evaluating candidate minors
	// of one size. 1 ⇒ sequential scan in lexicographic order.
	DefaultParallelism = 1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid   = "matrix: WithTolerance: tol must be finite, non-negative"
	panicParallelismInvalid = "matrix: WithParallelism: workers must be > 0"
	panicCombinerNil        = "matrix: WithCombiner: combiner must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept `...Option` and resolve them via
// gatherOptions.
type Options struct {
	tol      float64     // >= 0; DefaultTolerance
	workers  int         // > 0; DefaultParallelism
	combiner Combiner    // GonumCombiner by default
	logger   *zap.Logger // zap.NewNop() by default
}

// WithTolerance sets the singularity threshold used by Rank.
// Implementation:
//   - Stage 1: validate tol is finite and ≥ 0.
//   - Stage 2: return a setter that writes tol into Options.
//
// Behavior highlights:
//   - |det| <= tol counts as zero. tol == 0 keeps the exact test.
//
// Errors:
//   - Panics with a stable message when tol is invalid.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithParallelism bounds the number of goroutines evaluating candidate minors.
// workers == 1 is the sequential scan. Panics when workers <= 0.
func WithParallelism(workers int) Option {
	if workers <= 0 {
		panic(panicParallelismInvalid)
	}

	return func(o *Options) { o.workers = workers }
}

// WithCombiner replaces the index-subset enumerator used by Rank.
// Panics when c is nil.
func WithCombiner(c Combiner) Option {
	if c == nil {
		panic(panicCombinerNil)
	}

	return func(o *Options) { o.combiner = c }
}

// WithLogger attaches a logger for debug traces. A nil logger selects the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// defaultOptions returns Options populated with the Default* constants.
func defaultOptions() Options {
	return Options{
		tol:      DefaultTolerance,
		workers:  DefaultParallelism,
		combiner: GonumCombiner{},
		logger:   zap.NewNop(),
	}
}

// gatherOptions applies user-provided Option setters on top of defaults.
// This is the canonical internal entry for kernels taking ...Option.
// Nil setters are skipped; last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, set := range user {
		if set == nil {
			continue
		}
		set(&o)
	}

	return o
}

// Tolerance reports the effective singularity threshold.
func (o Options) Tolerance() float64 { return o.tol }

// Parallelism reports the effective worker count.
func (o Options) Parallelism() int { return o.workers }

// NewOptions resolves opts on top of the defaults. Useful for callers that
// want to inspect the effective configuration (e.g., CLI diagnostics).
func NewOptions(opts ...Option) Options { return gatherOptions(opts...) }
