// Package cluster is the public entry point of the time-series clustering
// engine. Cluster partitions a Dataset into Good and Outline clusters plus
// an outlier pool, applying the multi-k sweep (sweep), quality
// classification (quality), duplicate merging (merge), and 3-sigma
// outlier stripping (outlier) at each recursion level, and recursing on
// Reclusterize groups up to a configured depth cap.
//
// Diagnostics (chosen k per level, per-cluster sigma, merge/strip counts)
// are surfaced only through Config.Logger, a logrus.FieldLogger; they
// never affect the returned Result.
package cluster
