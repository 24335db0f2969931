package mcmc_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dppmcmc/mcmc"
)

func TestSelectBinary(t *testing.T) {
	require.Equal(t, mcmc.Flip, mcmc.SelectBinary(0.0, mcmc.Flip))
	require.Equal(t, mcmc.Swap, mcmc.SelectBinary(0.4999, mcmc.Swap))
	require.Equal(t, mcmc.Stay, mcmc.SelectBinary(0.5, mcmc.Swap))
	require.Equal(t, mcmc.Stay, mcmc.SelectBinary(0.99, mcmc.Flip))
}

func TestSelectAED_Partition(t *testing.T) {
	// size 2 of 4 ⇒ p = 1/2: add [0, .125), exchange [.125, .25), delete [.25, .375).
	cases := []struct {
		u    float64
		want mcmc.Move
	}{
		{0.0, mcmc.Add},
		{0.1249, mcmc.Add},
		{0.125, mcmc.Exchange},
		{0.2499, mcmc.Exchange},
		{0.25, mcmc.Delete},
		{0.3749, mcmc.Delete},
		{0.375, mcmc.Stay},
		{0.9999, mcmc.Stay},
	}
	for _, c := range cases {
		require.Equal(t, c.want, mcmc.SelectAED(c.u, 2, 4), "u=%v", c.u)
	}
}

func TestSelectAED_EmptyAndFull(t *testing.T) {
	var u float64
	for u = 0; u < 1; u += 0.01 {
		// Empty sample: nothing to exchange or delete.
		m := mcmc.SelectAED(u, 0, 5)
		require.Contains(t, []mcmc.Move{mcmc.Add, mcmc.Stay}, m, "u=%v", u)

		// Full sample: nothing to add or exchange.
		m = mcmc.SelectAED(u, 5, 5)
		require.Contains(t, []mcmc.Move{mcmc.Delete, mcmc.Stay}, m, "u=%v", u)
	}
	require.Equal(t, mcmc.Add, mcmc.SelectAED(0.49, 0, 5))
	require.Equal(t, mcmc.Delete, mcmc.SelectAED(0.49, 5, 5))
}

func TestAcceptanceFactor(t *testing.T) {
	require.InDelta(t, 3.0/2.0, mcmc.AcceptanceFactor(mcmc.Add, 2, 4), 1e-15)
	require.InDelta(t, 2.0/3.0, mcmc.AcceptanceFactor(mcmc.Delete, 2, 4), 1e-15)
	require.Equal(t, 1.0, mcmc.AcceptanceFactor(mcmc.Exchange, 2, 4))
	require.Equal(t, 1.0, mcmc.AcceptanceFactor(mcmc.Swap, 2, 4))
	require.Equal(t, 1.0, mcmc.AcceptanceFactor(mcmc.Flip, 2, 4))
}

func TestMove_String(t *testing.T) {
	require.Equal(t, "exchange", mcmc.Exchange.String())
	require.Equal(t, "stay", mcmc.Stay.String())
	require.Equal(t, "unknown", mcmc.Move(42).String())
}
