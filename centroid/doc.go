// Package centroid computes cluster prototypes under two policies:
// per-dimension Euclidean arithmetic mean, and DTW Barycenter Averaging
// (DBA), a path-weighted iterative refinement that itself invokes the dtw
// package for each member alignment.
//
// Every reduction accumulates into a pre-sized, index-ordered buffer
// before being summed with gonum's floats.Sum, so results are
// bit-reproducible regardless of goroutine scheduling.
package centroid
