// Package seeding provides deterministic RNG derivation and the K-Means++
// initial-centroid selection used by the fitter and the multi-k sweep.
//
// Goals:
//   - Determinism: same seed => identical centroids across platforms.
//   - Encapsulation: one RNG factory; no time-based sources anywhere.
//   - Isolation: independent sub-streams for parallel sweep branches via
//     a SplitMix64-style avalanche mix, so scheduling order never affects
//     the result.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derive one stream per goroutine
//     with DeriveRNG; never share a *rand.Rand across goroutines.
package seeding
