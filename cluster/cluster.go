package cluster

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/mikhailzhukov/dtwcluster/centroid"
	"github.com/mikhailzhukov/dtwcluster/clustererr"
	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/merge"
	"github.com/mikhailzhukov/dtwcluster/partition"
	"github.com/mikhailzhukov/dtwcluster/seeding"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// frameConfig carries the resolved, per-invocation parameters threaded
// through every recursion level; it never changes shape across levels,
// only KMax is tightened per recursion level.
type frameConfig struct {
	metric       distance.Func
	strategy     centroid.Strategy
	dim          int
	kMin, kMax   int
	maxIter      int
	sigmaGood    float64
	sigmaOutline float64
	dupThreshold float64
	minCluster   int
	maxRecursion int
	logger       logrus.FieldLogger
}

// Cluster partitions data into Good and Outline clusters plus an outlier
// pool, per cfg. ctx is checked once per recursion frame and once per
// swept k; a cancelled or expired ctx stops further work and returns
// ctx.Err(). On any error the engine returns no partial partition.
func Cluster(ctx context.Context, data tsdata.Dataset, cfg Config) (Result, error) {
	if cfg.MaxIter == 0 {
		cfg.MaxIter = 25
	}
	if err := validate(cfg); err != nil {
		return Result{}, err
	}

	metric, err := distance.New(cfg.Distance)
	if err != nil {
		return Result{}, clustererr.Wrap("cluster: building metric", clustererr.ErrInvalidConfig, err)
	}

	strategy := centroid.Strategy{}
	if cfg.BarycenterIter != nil && cfg.Distance.Tag != distance.Euclidean {
		strategy = centroid.Strategy{
			UseDBA:       true,
			Iterations:   *cfg.BarycenterIter,
			Window:       cfg.Distance.Window,
			SlopePenalty: 0,
		}
	}

	pool := make(partition.Pool, data.Len())
	for _, it := range data.Items() {
		pool[it.ID] = it.Seq
	}

	frame := frameConfig{
		metric:       metric,
		strategy:     strategy,
		dim:          data.Dim(),
		kMin:         cfg.KMin,
		kMax:         cfg.KMax,
		maxIter:      cfg.MaxIter,
		sigmaGood:    cfg.SigmaGood,
		sigmaOutline: cfg.SigmaOutline,
		dupThreshold: cfg.DuplicateThreshold,
		minCluster:   cfg.MinCluster,
		maxRecursion: cfg.MaxRecursion,
		logger:       resolveLogger(cfg.Logger),
	}

	rng := seeding.RNGFromSeed(cfg.Seed)

	accepted, outlierIDs, err := recurse(ctx, data.Items(), pool, frame, rng, 0)
	if err != nil {
		return Result{}, err
	}

	// Supplemented from the original engine: one final duplicate-merge
	// pass across every accepted cluster, after all recursion branches
	// have folded back in.
	accepted, err = merge.Merge(accepted, pool, metric, frame.dim, strategy, frame.dupThreshold, frame.sigmaGood, frame.sigmaOutline)
	if err != nil {
		return Result{}, clustererr.Wrap("cluster: final merge pass", clustererr.ErrInternalInvariant, err)
	}

	assignments := make(map[string]int, data.Len())
	centroids := make([]tsdata.Sequence, len(accepted))
	stats := make([]ClusterStats, len(accepted))
	for idx, g := range accepted {
		centroids[idx] = g.Centroid
		stats[idx] = ClusterStats{Size: len(g.MemberIDs), Sigma: g.Sigma, Class: g.Class}
		for _, id := range g.MemberIDs {
			assignments[id] = idx
		}
	}
	for _, id := range outlierIDs {
		assignments[id] = OutlierCluster
	}

	frame.logger.WithField("clusters", len(accepted)).WithField("outliers", len(outlierIDs)).Debug("clustering complete")

	return Result{Assignments: assignments, Centroids: centroids, Stats: stats}, nil
}
