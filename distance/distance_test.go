package distance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

func TestEuclidean(t *testing.T) {
	f, err := distance.New(distance.Metric{Tag: distance.Euclidean})
	require.NoError(t, err)

	a := tsdata.NewDense([]float64{0, 0, 0})
	b := tsdata.NewDense([]float64{3, 4, 0})
	d, err := f(a, b)
	require.NoError(t, err)
	require.InDelta(t, 5.0, d, 1e-9)
}

func TestDTWBanded_InvalidWindow(t *testing.T) {
	_, err := distance.New(distance.Metric{Tag: distance.DTWBanded, Window: 0})
	require.ErrorIs(t, err, distance.ErrInvalidWindow)
}

func TestDTWFull_Identity(t *testing.T) {
	f, err := distance.New(distance.Metric{Tag: distance.DTWFull})
	require.NoError(t, err)

	a := tsdata.NewDense([]float64{1, 2, 3, 2, 1})
	d, err := f(a, a)
	require.NoError(t, err)
	require.InDelta(t, 0.0, d, 1e-9)
}
