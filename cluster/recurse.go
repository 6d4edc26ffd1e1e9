package cluster

import (
	"context"
	"errors"
	"math/rand"

	"github.com/mikhailzhukov/dtwcluster/clustererr"
	"github.com/mikhailzhukov/dtwcluster/kmeans"
	"github.com/mikhailzhukov/dtwcluster/merge"
	"github.com/mikhailzhukov/dtwcluster/outlier"
	"github.com/mikhailzhukov/dtwcluster/partition"
	"github.com/mikhailzhukov/dtwcluster/quality"
	"github.com/mikhailzhukov/dtwcluster/seeding"
	"github.com/mikhailzhukov/dtwcluster/sweep"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// recurse runs the multi-k sweep, classifies the resulting clusters,
// merges near-duplicates, strips 3-sigma outliers, then recurses on the
// too-loose groups up to frame.maxRecursion.
func recurse(ctx context.Context, items []tsdata.Item, pool partition.Pool, frame frameConfig, rng *rand.Rand, depth int) ([]partition.Group, []string, error) {
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	kMax := frame.kMax
	if capped := len(items) / frame.minCluster; capped < kMax {
		kMax = capped
	}
	if kMax < frame.kMin {
		if depth == 0 {
			return nil, nil, clustererr.Wrap("cluster: no viable k for input size", clustererr.ErrDegenerateInput, kmeans.ErrDegenerateInput)
		}
		return nil, idsOf(items), nil
	}

	base := kmeans.Config{MaxIter: frame.maxIter, Metric: frame.metric, Strategy: frame.strategy, RNG: rng}
	outcome, err := sweep.Sweep(ctx, items, frame.kMin, kMax, base, frame.sigmaGood, frame.sigmaOutline)
	if err != nil {
		if errors.Is(err, sweep.ErrNoViableK) {
			// At the top level, no k in range produced a non-degenerate
			// fit: surface this to the caller rather than reporting an
			// all-outlier "success". Nested recursion frames still fold
			// an unworkable subgroup into the outlier pool.
			if depth == 0 {
				return nil, nil, clustererr.Wrap("cluster: no viable k for input", clustererr.ErrDegenerateInput, kmeans.ErrDegenerateInput)
			}
			return nil, idsOf(items), nil
		}
		return nil, nil, clustererr.Wrap("cluster: sweep", clustererr.ErrInternalInvariant, err)
	}

	frame.logger.WithField("depth", depth).WithField("k", outcome.K).WithField("score", outcome.Score).Debug("sweep selected k")

	groups := make([]partition.Group, 0, outcome.K)
	var localOutliers []string
	for c, memberIdx := range outcome.Result.Members {
		if len(memberIdx) == 0 {
			continue
		}
		if len(memberIdx) < frame.minCluster {
			for _, idx := range memberIdx {
				localOutliers = append(localOutliers, items[idx].ID)
			}
			continue
		}
		ids := make([]string, len(memberIdx))
		seqs := make([]tsdata.Sequence, len(memberIdx))
		for i, idx := range memberIdx {
			ids[i] = items[idx].ID
			seqs[i] = items[idx].Seq
		}
		stats, err := quality.Evaluate(seqs, outcome.Result.Centroids[c], frame.metric, frame.sigmaGood, frame.sigmaOutline)
		if err != nil {
			return nil, nil, clustererr.Wrap("cluster: classify", clustererr.ErrInternalInvariant, err)
		}
		groups = append(groups, partition.Group{
			Centroid:  outcome.Result.Centroids[c],
			MemberIDs: ids,
			Sigma:     stats.Sigma,
			Class:     stats.Class,
		})
	}

	for _, g := range groups {
		frame.logger.WithField("depth", depth).WithField("sigma", g.Sigma).WithField("class", g.Class.String()).Debug("cluster classified")
	}

	beforeMerge := len(groups)
	groups, err = merge.Merge(groups, pool, frame.metric, frame.dim, frame.strategy, frame.dupThreshold, frame.sigmaGood, frame.sigmaOutline)
	if err != nil {
		return nil, nil, clustererr.Wrap("cluster: merge", clustererr.ErrInternalInvariant, err)
	}
	frame.logger.WithField("depth", depth).WithField("merged", beforeMerge-len(groups)).Debug("duplicate merge")

	stripRes, err := outlier.Strip(groups, pool, frame.metric, frame.sigmaGood, frame.sigmaOutline)
	if err != nil {
		return nil, nil, clustererr.Wrap("cluster: strip", clustererr.ErrInternalInvariant, err)
	}
	groups = stripRes.Groups
	localOutliers = append(localOutliers, stripRes.Removed...)

	frame.logger.WithField("depth", depth).WithField("stripped", len(stripRes.Removed)).Debug("outlier strip")

	var accepted []partition.Group
	var toRefine []partition.Group
	for _, g := range groups {
		if g.Class == quality.Reclusterize {
			toRefine = append(toRefine, g)
		} else {
			accepted = append(accepted, g)
		}
	}

	if len(toRefine) == 0 || depth >= frame.maxRecursion {
		for _, g := range toRefine {
			localOutliers = append(localOutliers, g.MemberIDs...)
		}
		return accepted, localOutliers, nil
	}

	for i, g := range toRefine {
		subItems := make([]tsdata.Item, len(g.MemberIDs))
		for j, id := range g.MemberIDs {
			subItems[j] = tsdata.Item{ID: id, Seq: pool[id]}
		}

		subFrame := frame
		if capped := len(subItems) / frame.minCluster; capped < subFrame.kMax {
			subFrame.kMax = capped
		}
		subRNG := seeding.DeriveRNG(rng, uint64(depth)*4096+uint64(i)+1)

		subAccepted, subOutliers, err := recurse(ctx, subItems, pool, subFrame, subRNG, depth+1)
		if err != nil {
			return nil, nil, err
		}
		accepted = append(accepted, subAccepted...)
		localOutliers = append(localOutliers, subOutliers...)
	}

	return accepted, localOutliers, nil
}

func idsOf(items []tsdata.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
