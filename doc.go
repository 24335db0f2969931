// Package dppmcmc is a toolbox of Markov-chain Monte Carlo samplers for
// determinantal point processes (DPPs).
//
// A DPP over the ground set {0, …, N−1} favors diverse subsets: the weight
// of S is det K_S, the principal minor of a positive semi-definite kernel K.
// Exact samplers need an eigendecomposition; the chains here only ever
// compute small determinants (or solve small linear programs), trading
// exactness for cheap iterations.
//
// What is inside?
//
//	matrix/  : gonum-backed determinant and sub-matrix helpers with sentinel errors
//	subset/  : ordered, duplicate-free index sets with O(1) membership
//	chain/   : stopping budgets, the Metropolis–Hastings coin, deterministic RNG, chain output
//	lp/      : general-form linear programs over gonum's simplex
//	mcmc/    : AddDelete, AddExchangeDelete and BasisExchange chains on a kernel K
//	zonotope/: the continuous zonotope walk for projection DPPs given by features V
//	config/  : YAML run configuration turned into sampler options
//
// Every sampler:
//   - takes a context.Context and functional options (budget, seed, start, logger);
//   - returns the complete chain, entry zero being the initial state;
//   - is deterministic for a fixed seed and owns all of its state.
//
// Quick start:
//
//	c, err := mcmc.BasisExchange(ctx, k, mcmc.WithSampleSize(3), mcmc.WithMaxIter(1000))
//	if err != nil { … }
//	fmt.Println(c.Last(), c.AcceptanceRate())
package dppmcmc
