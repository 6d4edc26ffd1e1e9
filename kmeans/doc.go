// Package kmeans implements the K-Means fitter as an explicit state
// machine: Seeded -> Assigning -> Updating -> Converged/Exhausted.
//
// Assignment is embarrassingly parallel over a deterministic, id-sorted
// member ordering, fanned out with golang.org/x/sync/errgroup bounded to
// GOMAXPROCS workers; every worker writes into a pre-sized slice indexed
// by the member's position in the caller-supplied pool, so results never
// depend on scheduling order. Centroid updates, convergence testing, and
// empty-cluster re-seeding remain strictly sequential.
package kmeans
