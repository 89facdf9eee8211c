// SPDX-License-Identifier: MIT

// Package config loads linsolve settings from LINSOLVE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/cramer/internal/logging"
	"github.com/katalvlaran/cramer/matrix"
)

// Prefix is prepended to every environment key, e.g. LINSOLVE_WORKERS.
const Prefix = "LINSOLVE"

// ErrInvalid is returned when a loaded value is out of range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all linsolve configuration.
type Config struct {
	LogLevel  string  `envconfig:"LOG_LEVEL" default:"info"`
	LogDev    bool    `envconfig:"LOG_DEV" default:"false"`
	Workers   int     `envconfig:"WORKERS" default:"1"`
	Tolerance float64 `envconfig:"TOLERANCE" default:"0"`
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg, err := Process()
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Process reads the environment without range checks, for callers that
// apply overrides (command-line flags) before calling Validate.
func Process() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no variable is set.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		Workers:   matrix.DefaultParallelism,
		Tolerance: matrix.DefaultTolerance,
	}
}

// Validate reports the first out-of-range field.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d, want >= 1", ErrInvalid, c.Workers)
	}
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %g, want finite >= 0", ErrInvalid, c.Tolerance)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Logging returns the logger configuration derived from c.
func (c *Config) Logging() logging.Config {
	lc := logging.DefaultConfig()
	lc.Level = c.LogLevel
	lc.Development = c.LogDev

	return lc
}

// MatrixOptions returns the rank options derived from c.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithParallelism(c.Workers),
		matrix.WithTolerance(c.Tolerance),
	}
}
