// SPDX-License-Identifier: MIT

// Package mcmc implements discrete Markov-chain samplers for determinantal
// point processes driven by a kernel matrix K (N×N, typically a projection).
//
// Three transition kernels share one chain-driving loop:
//
//   - AddDelete        : flip membership of one uniform element with
//     probability 1/2; accept with min(1, det K_S1 / det K_S0).
//   - AddExchangeDelete: birth/exchange/death mixture whose move
//     probabilities depend on the occupancy p = |S|/N, with cardinality
//     reweighting on add and delete.
//   - BasisExchange    : fixed-size swap moves (matroid basis exchange).
//
// Every call returns the complete chain (chain.Chain): entry zero is the
// initial state and a rejected or stay step repeats the previous state.
// Determinants are recomputed from scratch on each proposal; singular
// candidates are legal and simply never win.
//
// Initialization: an explicit start (WithInitialSample) is used verbatim;
// otherwise random subsets are drawn until det K_S exceeds the threshold
// (default 1e-8) or the attempt budget (default 100) runs out, which yields
// ErrInitialization.
//
// Complexity: O(iter · |S|³) for the determinants plus O(iter · N) for
// drawing elements outside the current sample.
package mcmc
