// Package dtwcluster clusters batches of numeric time series by temporal
// shape, using Dynamic Time Warping as the pairwise distance and a
// quality-driven recursive K-Means as the outer algorithm.
//
// What is dtwcluster?
//
//	A pure-Go engine that partitions equal-length (or sparsely indexed)
//	sequences into groups of similar shape, then recursively splits any
//	group whose spread exceeds a configurable threshold:
//	  - Dynamic Time Warping (dtw), full or Sakoe-Chiba banded
//	  - Euclidean or DTW Barycenter Averaging centroids (centroid)
//	  - Seeded K-Means++ initialisation (seeding)
//	  - Parallel-assignment K-Means fitter (kmeans)
//	  - Quality classification, duplicate merging, 3-sigma stripping
//	    (quality, merge, outlier)
//	  - Multi-k sweep and recursive refinement (sweep, cluster)
//
// Under the hood, everything is organized under these subpackages:
//
//	tsdata/     — sequence, item, and dataset types
//	dtw/        — Dynamic Time Warping kernel
//	distance/   — Euclidean/DTW distance dispatcher
//	centroid/   — Euclidean mean and DBA centroid routines
//	seeding/    — deterministic RNG and K-Means++ initialisation
//	kmeans/     — the K-Means fitter state machine
//	quality/    — per-cluster sigma and classification
//	merge/      — duplicate-cluster merging
//	outlier/    — 3-sigma outlier stripping
//	sweep/      — the multi-k meta-sweep
//	cluster/    — the public entry point and recursive refinement driver
//	clustererr/ — the shared error taxonomy
//
// Quick usage:
//
//	res, err := cluster.Cluster(ctx, dataset, cluster.Config{
//	  Distance:     distance.Metric{Tag: distance.DTWBanded, Window: 3},
//	  KMin: 2, KMax: 5, MaxIter: 25,
//	  SigmaGood: 0.2, SigmaOutline: 0.5,
//	  DuplicateThreshold: 0.1, MinCluster: 5, MaxRecursion: 2, Seed: 0,
//	})
//
//	go get github.com/mikhailzhukov/dtwcluster
package dtwcluster
