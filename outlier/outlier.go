package outlier

import (
	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/partition"
	"github.com/mikhailzhukov/dtwcluster/quality"
)

// Result is the outcome of a Strip pass.
type Result struct {
	Groups  []partition.Group
	Removed []string // ids appended to the outlier pool
}

// Strip removes, from every Good or Outline group, members whose deviation
// exceeds three times the group's sigma, and re-evaluates that group's
// sigma and classification exactly once against the survivors.
// Reclusterize groups are passed through untouched, since they are about
// to be dissolved by the recursion driver.
func Strip(groups []partition.Group, pool partition.Pool, metric distance.Func, sigmaGood, sigmaOutline float64) (Result, error) {
	out := make([]partition.Group, 0, len(groups))
	var removedAll []string

	for _, g := range groups {
		if g.Class == quality.Reclusterize {
			out = append(out, g)
			continue
		}

		members := g.Sequences(pool)
		stats, err := quality.Evaluate(members, g.Centroid, metric, sigmaGood, sigmaOutline)
		if err != nil {
			return Result{}, err
		}

		bound := 3 * stats.Sigma
		keptIDs := make([]string, 0, len(g.MemberIDs))
		var removed []string
		for i, id := range g.MemberIDs {
			if stats.Deviations[i] > bound {
				removed = append(removed, id)
			} else {
				keptIDs = append(keptIDs, id)
			}
		}

		if len(removed) == 0 {
			out = append(out, g)
			continue
		}
		removedAll = append(removedAll, removed...)

		kept := partition.Group{Centroid: g.Centroid, MemberIDs: keptIDs}
		keptSeqs := kept.Sequences(pool)
		restats, err := quality.Evaluate(keptSeqs, g.Centroid, metric, sigmaGood, sigmaOutline)
		if err != nil {
			return Result{}, err
		}
		kept.Sigma = restats.Sigma
		kept.Class = restats.Class
		out = append(out, kept)
	}

	return Result{Groups: out, Removed: removedAll}, nil
}
