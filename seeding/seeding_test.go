package seeding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/seeding"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

func TestInit_DegenerateInput(t *testing.T) {
	metric, err := distance.New(distance.Metric{Tag: distance.Euclidean})
	require.NoError(t, err)

	pool := []tsdata.Item{{ID: "a", Seq: tsdata.NewDense([]float64{0, 0})}}
	_, err = seeding.Init(pool, 2, metric, seeding.RNGFromSeed(1))
	require.ErrorIs(t, err, seeding.ErrDegenerateInput)
}

func TestInit_Deterministic(t *testing.T) {
	metric, err := distance.New(distance.Metric{Tag: distance.Euclidean})
	require.NoError(t, err)

	pool := []tsdata.Item{
		{ID: "a", Seq: tsdata.NewDense([]float64{0, 0})},
		{ID: "b", Seq: tsdata.NewDense([]float64{10, 10})},
		{ID: "c", Seq: tsdata.NewDense([]float64{0, 10})},
		{ID: "d", Seq: tsdata.NewDense([]float64{10, 0})},
	}

	first, err := seeding.Init(pool, 2, metric, seeding.RNGFromSeed(42))
	require.NoError(t, err)
	second, err := seeding.Init(pool, 2, metric, seeding.RNGFromSeed(42))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestDeriveRNG_Independence(t *testing.T) {
	base := seeding.RNGFromSeed(7)
	r1 := seeding.DeriveRNG(base, 1)
	r2 := seeding.DeriveRNG(base, 2)
	require.NotEqual(t, r1.Int63(), r2.Int63())
}
