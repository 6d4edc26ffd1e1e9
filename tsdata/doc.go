// Package tsdata defines the sequence, item, and dataset types shared by
// every stage of the clustering engine.
//
// A Sequence is either dense (a fixed-length []float64) or sparse (a
// map[int]float64 with absent indices treated as zero); both normalise to
// the same dense view on demand. A Dataset is an ordered collection of
// (id, Sequence) pairs sharing one nominal dimensionality, validated once
// at construction time.
package tsdata
