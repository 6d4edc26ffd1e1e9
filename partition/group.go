package partition

import (
	"github.com/mikhailzhukov/dtwcluster/quality"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// Group is a cluster in progress: a centroid, its member ids, and its
// last-computed quality statistics. Groups flow through duplicate
// merging, outlier stripping, and the recursion driver without ever
// holding a back-reference to a containing structure.
type Group struct {
	Centroid  tsdata.Sequence
	MemberIDs []string
	Sigma     float64
	Class     quality.Classification
}

// Pool is a lookup from item id to sequence, used by every stage that
// needs to re-fetch member sequences for a Group's MemberIDs.
type Pool map[string]tsdata.Sequence

// Sequences resolves a Group's MemberIDs against pool, in order.
func (g Group) Sequences(pool Pool) []tsdata.Sequence {
	out := make([]tsdata.Sequence, len(g.MemberIDs))
	for i, id := range g.MemberIDs {
		out[i] = pool[id]
	}
	return out
}
