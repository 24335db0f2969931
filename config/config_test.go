package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/dppmcmc/chain"
	"github.com/katalvlaran/dppmcmc/config"
	"github.com/katalvlaran/dppmcmc/mcmc"
	"github.com/katalvlaran/dppmcmc/zonotope"
)

const sample = `
max_iter: 25
time_limit: 3s
seed: 42
init_attempts: 50
init_threshold: 1e-6
sample_size: 2
basis_tol: 1e-4
lp_tol: 1e-9
`

func TestLoad_AllFields(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, config.Config{
		MaxIter:       25,
		TimeLimit:     3 * time.Second,
		Seed:          42,
		InitAttempts:  50,
		InitThreshold: 1e-6,
		SampleSize:    2,
		BasisTol:      1e-4,
		LPTol:         1e-9,
	}, cfg)
	require.Equal(t, chain.Budget{MaxIter: 25, TimeLimit: 3 * time.Second}, cfg.Budget())
}

func TestLoad_DefaultsAndPartial(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(strings.NewReader("max_iter: 0\ntime_limit: 250ms\n"))
	require.NoError(t, err)
	require.Zero(t, cfg.MaxIter)
	require.Equal(t, 250*time.Millisecond, cfg.TimeLimit)
	require.Equal(t, zonotope.DefaultBasisTol, cfg.BasisTol)
}

func TestLoad_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "max_iters: 3\n",
		"bad duration": "time_limit: soon\n",
		"no budget":    "max_iter: 0\ntime_limit: 0s\n",
		"negative":     "sample_size: -1\n",
		"basis tol":    "basis_tol: 0.7\n",
		"attempts":     "init_attempts: 0\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(doc))
			require.Error(t, err)
		})
	}

	_, err := config.Load(strings.NewReader("max_iter: 0\ntime_limit: 0s\n"))
	require.True(t, errors.Is(err, config.ErrInvalid))
	require.True(t, errors.Is(err, chain.ErrNoBudget))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	cfg, err := config.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 25, cfg.MaxIter)

	_, err = config.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOptionsDriveSamplers(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(sample))
	require.NoError(t, err)
	ctx := context.Background()

	k := mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	c, err := mcmc.BasisExchange(ctx, k, cfg.DiscreteOptions(nil)...)
	require.NoError(t, err)
	require.Equal(t, 25, c.Len())
	for _, st := range c.States {
		require.Len(t, st, 2)
	}

	// Extra options override the file.
	c, err = mcmc.AddDelete(ctx, k, cfg.DiscreteOptions(nil, mcmc.WithMaxIter(4))...)
	require.NoError(t, err)
	require.Equal(t, 4, c.Len())

	v := mat.NewDense(1, 2, []float64{1, 1})
	z, err := zonotope.Sample(ctx, v, cfg.ZonotopeOptions(nil)...)
	require.NoError(t, err)
	require.Equal(t, 25, z.Len())
}
