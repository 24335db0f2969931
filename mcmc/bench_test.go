package mcmc_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dppmcmc/mcmc"
)

func benchSampler(b *testing.B, sm sampler, n, size int) {
	k := gramKernel(n, n)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sm.run(ctx, k, mcmc.WithMaxIter(500), mcmc.WithSampleSize(size), mcmc.WithSeed(int64(i+1))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAddDelete_N50(b *testing.B)         { benchSampler(b, samplers[0], 50, 10) }
func BenchmarkAddExchangeDelete_N50(b *testing.B) { benchSampler(b, samplers[1], 50, 10) }
func BenchmarkBasisExchange_N50(b *testing.B)     { benchSampler(b, samplers[2], 50, 10) }
