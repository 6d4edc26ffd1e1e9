package merge

import (
	"github.com/mikhailzhukov/dtwcluster/centroid"
	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/partition"
	"github.com/mikhailzhukov/dtwcluster/quality"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// Merge scans groups in their given order (ascending cluster index),
// unioning any pair a < b whose centroid distance falls below threshold.
// Reclusterize-tagged groups are left untouched, since they are about to
// be dissolved by the recursion driver. The scan repeats until a full
// pass produces no merge.
func Merge(groups []partition.Group, pool partition.Pool, metric distance.Func, dim int, strategy centroid.Strategy, threshold, sigmaGood, sigmaOutline float64) ([]partition.Group, error) {
	current := append([]partition.Group(nil), groups...)

	for {
		mergedAny := false
		for a := 0; a < len(current); a++ {
			if current[a].Class == quality.Reclusterize {
				continue
			}
			for b := a + 1; b < len(current); b++ {
				if current[b].Class == quality.Reclusterize {
					continue
				}
				d, err := metric(current[a].Centroid, current[b].Centroid)
				if err != nil {
					return nil, err
				}
				if d >= threshold {
					continue
				}

				unionIDs := make([]string, 0, len(current[a].MemberIDs)+len(current[b].MemberIDs))
				unionIDs = append(unionIDs, current[a].MemberIDs...)
				unionIDs = append(unionIDs, current[b].MemberIDs...)

				members := sequencesFor(unionIDs, pool)
				newCentroid, err := centroid.Compute(strategy, current[a].Centroid, members, dim)
				if err != nil {
					return nil, err
				}
				stats, err := quality.Evaluate(members, newCentroid, metric, sigmaGood, sigmaOutline)
				if err != nil {
					return nil, err
				}

				current[a] = partition.Group{
					Centroid:  newCentroid,
					MemberIDs: unionIDs,
					Sigma:     stats.Sigma,
					Class:     stats.Class,
				}
				current = append(current[:b], current[b+1:]...)
				mergedAny = true
				break
			}
			if mergedAny {
				break
			}
		}
		if !mergedAny {
			break
		}
	}

	return current, nil
}

func sequencesFor(ids []string, pool partition.Pool) []tsdata.Sequence {
	out := make([]tsdata.Sequence, len(ids))
	for i, id := range ids {
		out[i] = pool[id]
	}
	return out
}
