// SPDX-License-Identifier: MIT

// Package config decodes a YAML run configuration and turns it into
// sampler options for packages mcmc and zonotope.
//
//	max_iter: 1000        # 0 ⇒ use time_limit
//	time_limit: 10s       # Go duration string
//	seed: 42              # 0 ⇒ default deterministic seed
//	init_attempts: 100
//	init_threshold: 1e-8
//	sample_size: 0        # 0 ⇒ random-size initial subset
//	basis_tol: 1e-5
//	lp_tol: 1e-10
//
// Omitted keys keep their defaults; unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dppmcmc/chain"
	"github.com/katalvlaran/dppmcmc/lp"
	"github.com/katalvlaran/dppmcmc/mcmc"
	"github.com/katalvlaran/dppmcmc/zonotope"
)

// ErrInvalid is returned by Validate (and Load) for out-of-range values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the file-level run configuration shared by all samplers.
type Config struct {
	MaxIter       int           `yaml:"max_iter"`
	TimeLimit     time.Duration `yaml:"time_limit"`
	Seed          int64         `yaml:"seed"`
	InitAttempts  int           `yaml:"init_attempts"`
	InitThreshold float64       `yaml:"init_threshold"`
	SampleSize    int           `yaml:"sample_size"`
	BasisTol      float64       `yaml:"basis_tol"`
	LPTol         float64       `yaml:"lp_tol"`
}

// Default returns the configuration matching the samplers' own defaults.
func Default() Config {
	return Config{
		MaxIter:       chain.DefaultMaxIter,
		TimeLimit:     chain.DefaultTimeLimit,
		InitAttempts:  mcmc.DefaultInitAttempts,
		InitThreshold: mcmc.DefaultInitThreshold,
		BasisTol:      zonotope.DefaultBasisTol,
		LPTol:         lp.DefaultTol,
	}
}

// Load decodes one YAML document from r over Default() and validates it.
// An empty stream yields Default().
func Load(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadFile is Load on the named file.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.MaxIter < 0:
		return fmt.Errorf("%w: max_iter %d < 0", ErrInvalid, c.MaxIter)
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: time_limit %s < 0", ErrInvalid, c.TimeLimit)
	case c.MaxIter == 0 && c.TimeLimit == 0:
		return fmt.Errorf("%w: %w", ErrInvalid, chain.ErrNoBudget)
	case c.InitAttempts <= 0:
		return fmt.Errorf("%w: init_attempts %d <= 0", ErrInvalid, c.InitAttempts)
	case !finite(c.InitThreshold) || c.InitThreshold < 0:
		return fmt.Errorf("%w: init_threshold %g", ErrInvalid, c.InitThreshold)
	case c.SampleSize < 0:
		return fmt.Errorf("%w: sample_size %d < 0", ErrInvalid, c.SampleSize)
	case !(c.BasisTol > 0 && c.BasisTol < 0.5):
		return fmt.Errorf("%w: basis_tol %g not in (0, 0.5)", ErrInvalid, c.BasisTol)
	case !finite(c.LPTol) || c.LPTol < 0:
		return fmt.Errorf("%w: lp_tol %g", ErrInvalid, c.LPTol)
	}

	return nil
}

// Budget returns the stopping budget described by c.
func (c Config) Budget() chain.Budget {
	return chain.Budget{MaxIter: c.MaxIter, TimeLimit: c.TimeLimit}
}

// DiscreteOptions returns options for mcmc.AddDelete, mcmc.AddExchangeDelete
// and mcmc.BasisExchange. c must be valid; extra options are appended last
// and therefore win.
func (c Config) DiscreteOptions(logger *slog.Logger, extra ...mcmc.Option) []mcmc.Option {
	opts := []mcmc.Option{
		mcmc.WithBudget(c.Budget()),
		mcmc.WithSeed(c.Seed),
		mcmc.WithInitAttempts(c.InitAttempts),
		mcmc.WithInitThreshold(c.InitThreshold),
		mcmc.WithSampleSize(c.SampleSize),
		mcmc.WithLogger(logger),
	}

	return append(opts, extra...)
}

// ZonotopeOptions returns options for zonotope.Sample. c must be valid.
func (c Config) ZonotopeOptions(logger *slog.Logger, extra ...zonotope.Option) []zonotope.Option {
	opts := []zonotope.Option{
		zonotope.WithBudget(c.Budget()),
		zonotope.WithSeed(c.Seed),
		zonotope.WithInitAttempts(c.InitAttempts),
		zonotope.WithBasisTol(c.BasisTol),
		zonotope.WithLPTol(c.LPTol),
		zonotope.WithLogger(logger),
	}

	return append(opts, extra...)
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
