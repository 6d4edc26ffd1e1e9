// Package dtw computes Dynamic Time Warping (DTW) distances between
// numeric time series, with optional alignment path recovery and a choice
// of memory footprint.
//
// DTW finds the best monotone match between two sequences by warping the
// time axis to minimize cumulative squared distance. It underlies the
// pairwise metric and centroid routines of the clustering engine.
//
// Key properties:
//   - full-matrix mode: exact O(n·m) time & memory, required for traceback
//   - rolling mode: O(min(n,m)) memory, distance only
//   - Sakoe-Chiba band, widened automatically for unequal-length inputs
//   - slope penalty to discourage excessive stretching
//   - deterministic tie-break on the traceback: diagonal, then left, then up
//
// Usage:
//
//	res, err := dtw.Align(a, b, dtw.Options{
//	  Window:       3,
//	  ReturnPath:   true,
//	  MemoryMode:   dtw.FullMatrix,
//	})
package dtw
