package cluster

import (
	"github.com/sirupsen/logrus"

	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/quality"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// OutlierCluster is the sentinel cluster index recorded in Result.Assignments
// for ids stripped from any accepted cluster or abandoned from a failed
// refinement branch.
const OutlierCluster = -1

// Config enumerates every tunable of a Cluster invocation.
type Config struct {
	// Distance selects the pairwise metric: Euclidean, DTWFull, or
	// DTWBanded(Window).
	Distance distance.Metric

	// KMin, KMax bound the multi-k sweep. 1 <= KMin <= KMax.
	KMin, KMax int

	// MaxIter caps the K-Means outer loop. Zero selects the default of 25.
	MaxIter int

	// BarycenterIter, when non-nil and Distance is a DTW family, enables
	// DTW Barycenter Averaging with this many refinement passes. When
	// nil, the Euclidean arithmetic mean is used regardless of Distance.
	BarycenterIter *int

	// SigmaGood, SigmaOutline are the classification thresholds:
	// 0 < SigmaGood <= SigmaOutline.
	SigmaGood, SigmaOutline float64

	// DuplicateThreshold is the centroid distance below which two
	// clusters are merged.
	DuplicateThreshold float64

	// MinCluster is the minimum member count for a cluster to survive
	// refinement.
	MinCluster int

	// MaxRecursion caps the depth of the recursive refinement driver.
	// 0 disables recursion.
	MaxRecursion int

	// Seed deterministically seeds every PRNG stream used by the engine.
	Seed int64

	// Logger receives non-result diagnostics. A nil Logger discards them.
	Logger logrus.FieldLogger
}

// ClusterStats summarises one emitted cluster.
type ClusterStats struct {
	Size  int
	Sigma float64
	Class quality.Classification
}

// Result is the outcome of a completed Cluster call.
type Result struct {
	// Assignments maps every input id to its final cluster index, or to
	// OutlierCluster.
	Assignments map[string]int

	// Centroids is indexed identically to Stats: Centroids[i] is the
	// prototype of the cluster described by Stats[i].
	Centroids []tsdata.Sequence

	// Stats holds one entry per emitted cluster, in the same order as
	// Centroids.
	Stats []ClusterStats
}
