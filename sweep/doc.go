// Package sweep implements the multi-k meta-algorithm: for every k in
// [k_min, k_max], run the K-Means fitter, score the outcome by the
// size-weighted mean cluster sigma, and retain the minimum-scoring
// outcome, ties broken toward the smaller k.
//
// Each k runs as an independent errgroup branch with its own RNG
// sub-stream, derived deterministically from the base seed via
// seeding.DeriveRNG, so the winning outcome never depends on the order in
// which branches finish.
package sweep
