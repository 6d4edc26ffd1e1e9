package merge_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikhailzhukov/dtwcluster/centroid"
	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/merge"
	"github.com/mikhailzhukov/dtwcluster/partition"
	"github.com/mikhailzhukov/dtwcluster/quality"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

func TestMerge_UnionsNearDuplicates(t *testing.T) {
	metric, err := distance.New(distance.Metric{Tag: distance.Euclidean})
	require.NoError(t, err)

	pool := partition.Pool{
		"a1": tsdata.NewDense([]float64{0, 0}),
		"a2": tsdata.NewDense([]float64{0, 0}),
		"b1": tsdata.NewDense([]float64{10, 10}),
	}

	groups := []partition.Group{
		{Centroid: tsdata.NewDense([]float64{0, 0}), MemberIDs: []string{"a1"}, Class: quality.Good},
		{Centroid: tsdata.NewDense([]float64{0.05, 0}), MemberIDs: []string{"a2"}, Class: quality.Good},
		{Centroid: tsdata.NewDense([]float64{10, 10}), MemberIDs: []string{"b1"}, Class: quality.Good},
	}

	out, err := merge.Merge(groups, pool, metric, 2, centroid.Strategy{}, 0.2, 0.5, 1.0)
	require.NoError(t, err)
	require.Len(t, out, 2)

	sizes := []int{len(out[0].MemberIDs), len(out[1].MemberIDs)}
	require.Contains(t, sizes, 2)
	require.Contains(t, sizes, 1)
}

func TestMerge_SkipsReclusterize(t *testing.T) {
	metric, err := distance.New(distance.Metric{Tag: distance.Euclidean})
	require.NoError(t, err)

	pool := partition.Pool{
		"a1": tsdata.NewDense([]float64{0, 0}),
		"a2": tsdata.NewDense([]float64{0, 0}),
	}
	groups := []partition.Group{
		{Centroid: tsdata.NewDense([]float64{0, 0}), MemberIDs: []string{"a1"}, Class: quality.Reclusterize},
		{Centroid: tsdata.NewDense([]float64{0, 0}), MemberIDs: []string{"a2"}, Class: quality.Reclusterize},
	}
	out, err := merge.Merge(groups, pool, metric, 2, centroid.Strategy{}, 1.0, 0.5, 1.0)
	require.NoError(t, err)
	require.Len(t, out, 2)
}
