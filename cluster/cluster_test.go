package cluster_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikhailzhukov/dtwcluster/cluster"
	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

func threeLevelDataset(t *testing.T) tsdata.Dataset {
	t.Helper()
	items := make([]tsdata.Item, 0, 90)
	levels := []float64{0, 1, 2}
	for lvl, base := range levels {
		for i := 0; i < 30; i++ {
			id := string(rune('a'+lvl)) + itoa(i)
			noise := 0.001 * float64(i%5)
			seq := make([]float64, 10)
			for d := range seq {
				seq[d] = base + noise
			}
			items = append(items, tsdata.Item{ID: id, Seq: tsdata.NewDense(seq)})
		}
	}
	ds, err := tsdata.NewDataset(items)
	require.NoError(t, err)
	return ds
}

func itoa(i int) string {
	if i < 10 {
		return string(rune('0' + i))
	}
	return string(rune('0'+i/10)) + string(rune('0'+i%10))
}

func TestCluster_ThreeFlatLevels(t *testing.T) {
	ds := threeLevelDataset(t)
	cfg := cluster.Config{
		Distance:           distance.Metric{Tag: distance.Euclidean},
		KMin:               2,
		KMax:               5,
		MaxIter:            25,
		SigmaGood:          0.1,
		SigmaOutline:       0.5,
		DuplicateThreshold: 0.05,
		MinCluster:         1,
		MaxRecursion:       2,
		Seed:               7,
	}

	res, err := cluster.Cluster(context.Background(), ds, cfg)
	require.NoError(t, err)
	require.Len(t, res.Centroids, 3)

	counts := map[int]int{}
	for _, c := range res.Assignments {
		counts[c]++
	}
	for _, size := range counts {
		require.InDelta(t, 30, size, 1)
	}
}

func TestCluster_InvalidConfig(t *testing.T) {
	ds := threeLevelDataset(t)
	cfg := cluster.Config{
		Distance:  distance.Metric{Tag: distance.Euclidean},
		KMin:      0,
		KMax:      2,
		MaxIter:   10,
		SigmaGood: 0.1, SigmaOutline: 0.5, MinCluster: 1,
	}
	_, err := cluster.Cluster(context.Background(), ds, cfg)
	require.Error(t, err)
}

func TestCluster_Deterministic(t *testing.T) {
	ds := threeLevelDataset(t)
	cfg := cluster.Config{
		Distance:           distance.Metric{Tag: distance.Euclidean},
		KMin:               2,
		KMax:               5,
		MaxIter:            25,
		SigmaGood:          0.1,
		SigmaOutline:       0.5,
		DuplicateThreshold: 0.05,
		MinCluster:         1,
		MaxRecursion:       2,
		Seed:               11,
	}

	first, err := cluster.Cluster(context.Background(), ds, cfg)
	require.NoError(t, err)
	second, err := cluster.Cluster(context.Background(), ds, cfg)
	require.NoError(t, err)

	require.Equal(t, first.Assignments, second.Assignments)
	require.Equal(t, len(first.Centroids), len(second.Centroids))
	for i := range first.Centroids {
		require.True(t, math.Abs(first.Centroids[i].Dense()[0]-second.Centroids[i].Dense()[0]) < 1e-12)
	}
}
