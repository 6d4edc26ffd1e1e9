package tsdata_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

func TestNewDataset_Empty(t *testing.T) {
	_, err := tsdata.NewDataset(nil)
	require.ErrorIs(t, err, tsdata.ErrEmptyDataset)
}

func TestNewDataset_DimensionMismatch(t *testing.T) {
	items := []tsdata.Item{
		{ID: "a", Seq: tsdata.NewDense([]float64{1, 2, 3})},
		{ID: "b", Seq: tsdata.NewDense([]float64{1, 2})},
	}
	_, err := tsdata.NewDataset(items)
	require.ErrorIs(t, err, tsdata.ErrDimensionMismatch)
}

func TestNewDataset_DuplicateID(t *testing.T) {
	items := []tsdata.Item{
		{ID: "a", Seq: tsdata.NewDense([]float64{1, 2})},
		{ID: "a", Seq: tsdata.NewDense([]float64{3, 4})},
	}
	_, err := tsdata.NewDataset(items)
	require.ErrorIs(t, err, tsdata.ErrDuplicateID)
}

func TestNewDataset_NonFinite(t *testing.T) {
	items := []tsdata.Item{
		{ID: "a", Seq: tsdata.NewDense([]float64{1, math.NaN()})},
	}
	_, err := tsdata.NewDataset(items)
	require.ErrorIs(t, err, tsdata.ErrNonFiniteValue)
}

func TestNewDataset_OK(t *testing.T) {
	items := []tsdata.Item{
		{ID: "a", Seq: tsdata.NewDense([]float64{1, 2, 3})},
		{ID: "b", Seq: tsdata.NewSparse(3, map[int]float64{1: 5})},
	}
	ds, err := tsdata.NewDataset(items)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Dim())
	require.Equal(t, 2, ds.Len())
	require.Equal(t, []float64{0, 5, 0}, ds.Items()[1].Seq.Dense())
}

func TestSequence_SparseAt(t *testing.T) {
	s := tsdata.NewSparse(4, map[int]float64{2: 7.5})
	require.Equal(t, 0.0, s.At(0))
	require.Equal(t, 7.5, s.At(2))
	require.True(t, s.IsSparse())
}
