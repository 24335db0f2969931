// SPDX-License-Identifier: MIT

// Package chain holds the pieces shared by every sampler in this module:
//
//   - Budget / Stopper: the dual stopping contract. A non-zero MaxIter wins
//     and yields exactly MaxIter recorded states (the initial one included);
//     otherwise the chain runs until the first per-iteration poll that finds
//     TimeLimit exceeded, so a run may overshoot by one iteration.
//   - Accept: the Metropolis–Hastings coin, min(1, ratio) without branches.
//   - Chain: the returned sequence of visited states plus run statistics.
//   - NewRand / DeriveRand / Choose: deterministic randomness. The same seed
//     always reproduces the same chain bit for bit.
package chain
