package dtw_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mikhailzhukov/dtwcluster/dtw"
)

func TestAlign_EmptySequence(t *testing.T) {
	_, err := dtw.Align(nil, []float64{1, 2}, dtw.Options{})
	require.ErrorIs(t, err, dtw.ErrInvalidShape)

	_, err = dtw.Align([]float64{1, 2}, []float64{}, dtw.Options{})
	require.ErrorIs(t, err, dtw.ErrInvalidShape)
}

func TestAlign_PathNeedsFullMatrix(t *testing.T) {
	_, err := dtw.Align([]float64{1}, []float64{1}, dtw.Options{ReturnPath: true, MemoryMode: dtw.Rolling})
	require.ErrorIs(t, err, dtw.ErrPathNeedsFullMatrix)
}

func TestAlign_Identity(t *testing.T) {
	a := []float64{0.1, 1.5, -2.3, 4.0, 0.0}
	res, err := dtw.Align(a, a, dtw.Options{})
	require.NoError(t, err)
	require.InDelta(t, 0.0, res.Distance, 1e-9)
}

func TestAlign_Symmetry(t *testing.T) {
	a := []float64{0, 1, 2, 3, 2, 1}
	b := []float64{0, 0, 1, 2, 2, 3, 1}

	ab, err := dtw.Align(a, b, dtw.Options{})
	require.NoError(t, err)
	ba, err := dtw.Align(b, a, dtw.Options{})
	require.NoError(t, err)
	require.InDelta(t, ab.Distance, ba.Distance, 1e-9)
}

func TestAlign_BandedGreaterOrEqualFull(t *testing.T) {
	a := []float64{0, 1, 2, 3, 4, 5, 6}
	b := []float64{6, 5, 4, 3, 2, 1, 0}

	full, err := dtw.Align(a, b, dtw.Options{})
	require.NoError(t, err)

	banded, err := dtw.Align(a, b, dtw.Options{Window: 1})
	require.NoError(t, err)

	require.GreaterOrEqual(t, banded.Distance, full.Distance-1e-9)
}

func TestAlign_TracebackTieBreak(t *testing.T) {
	a := []float64{0, 1, 2}
	b := []float64{0, 0, 1, 2, 2}

	res, err := dtw.Align(a, b, dtw.Options{ReturnPath: true, MemoryMode: dtw.FullMatrix})
	require.NoError(t, err)
	require.NotEmpty(t, res.Path)
	require.Equal(t, [2]int{0, 0}, res.Path[0])
	require.Equal(t, [2]int{2, 4}, res.Path[len(res.Path)-1])
	require.Equal(t, [][2]int{{0, 0}, {0, 1}, {1, 2}, {2, 3}, {2, 4}}, res.Path)

	for k := 1; k < len(res.Path); k++ {
		di := res.Path[k][0] - res.Path[k-1][0]
		dj := res.Path[k][1] - res.Path[k-1][1]
		require.True(t, di >= 0 && di <= 1 && dj >= 0 && dj <= 1 && (di+dj) > 0)
	}
}

func TestAlign_RollingMatchesFullDistance(t *testing.T) {
	a := []float64{0.2, 1.1, 2.4, 1.0, -0.5}
	b := []float64{0.0, 1.0, 2.0, 2.5, 1.0, -0.6}

	full, err := dtw.Align(a, b, dtw.Options{MemoryMode: dtw.FullMatrix})
	require.NoError(t, err)
	rolling, err := dtw.Align(a, b, dtw.Options{MemoryMode: dtw.Rolling})
	require.NoError(t, err)

	require.InDelta(t, full.Distance, rolling.Distance, 1e-9)
}

func TestAlign_WindowWidenedForUnequalLength(t *testing.T) {
	a := make([]float64, 3)
	b := make([]float64, 9)
	for i := range b {
		b[i] = float64(i)
	}
	res, err := dtw.Align(a, b, dtw.Options{Window: 1})
	require.NoError(t, err)
	require.False(t, math.IsInf(res.Distance, 1))
}
