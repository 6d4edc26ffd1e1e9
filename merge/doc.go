// Package merge implements the duplicate-cluster merger (C7): a pairwise
// centroid-distance scan over surviving clusters that unions any pair
// whose centroids lie within a configured threshold, repeated until a
// full pass yields no merges.
package merge
