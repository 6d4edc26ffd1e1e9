package outlier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/outlier"
	"github.com/mikhailzhukov/dtwcluster/partition"
	"github.com/mikhailzhukov/dtwcluster/quality"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

func TestStrip_RemovesFarMembers(t *testing.T) {
	metric, err := distance.New(distance.Metric{Tag: distance.Euclidean})
	require.NoError(t, err)

	pool := partition.Pool{}
	ids := make([]string, 0, 103)
	for i := 0; i < 100; i++ {
		id := "tight" + string(rune('A'+i%26)) + string(rune('0'+i/26))
		pool[id] = tsdata.NewDense([]float64{0.001 * float64(i%3), 0})
		ids = append(ids, id)
	}
	pool["far1"] = tsdata.NewDense([]float64{100, 0})
	ids = append(ids, "far1")

	g := partition.Group{Centroid: tsdata.NewDense([]float64{0, 0}), MemberIDs: ids, Class: quality.Good}

	res, err := outlier.Strip([]partition.Group{g}, pool, metric, 0.5, 1.0)
	require.NoError(t, err)
	require.Contains(t, res.Removed, "far1")
	require.Len(t, res.Groups, 1)
	require.NotContains(t, res.Groups[0].MemberIDs, "far1")
}

func TestStrip_SkipsReclusterize(t *testing.T) {
	metric, err := distance.New(distance.Metric{Tag: distance.Euclidean})
	require.NoError(t, err)

	pool := partition.Pool{"a": tsdata.NewDense([]float64{0, 0})}
	g := partition.Group{Centroid: tsdata.NewDense([]float64{0, 0}), MemberIDs: []string{"a"}, Class: quality.Reclusterize}

	res, err := outlier.Strip([]partition.Group{g}, pool, metric, 0.5, 1.0)
	require.NoError(t, err)
	require.Empty(t, res.Removed)
	require.Equal(t, g, res.Groups[0])
}
