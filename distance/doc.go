// Package distance dispatches a distance tag to a pairwise metric over
// tsdata.Sequence values, unifying Euclidean, full DTW, and banded DTW
// behind a single call surface.
package distance
