package distance

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mikhailzhukov/dtwcluster/dtw"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// Tag selects a distance family.
type Tag int

const (
	// Euclidean is the root-sum-of-squares distance over aligned indices.
	Euclidean Tag = iota

	// DTWFull runs unconstrained Dynamic Time Warping.
	DTWFull

	// DTWBanded runs Sakoe-Chiba banded Dynamic Time Warping.
	DTWBanded
)

// ErrInvalidWindow indicates DTWBanded was requested with Window < 1.
var ErrInvalidWindow = errors.New("distance: DTWBanded requires window >= 1")

// Metric names a distance family plus the parameters it needs.
type Metric struct {
	Tag    Tag
	Window int // only consulted when Tag == DTWBanded
}

// Func computes a scalar distance between two sequences of equal nominal
// length.
type Func func(a, b tsdata.Sequence) (float64, error)

// New builds a Func for the given Metric.
func New(m Metric) (Func, error) {
	switch m.Tag {
	case Euclidean:
		return euclidean, nil
	case DTWFull:
		return dtwMetric(dtw.Options{MemoryMode: dtw.Rolling}), nil
	case DTWBanded:
		if m.Window < 1 {
			return nil, ErrInvalidWindow
		}
		return dtwMetric(dtw.Options{Window: m.Window, MemoryMode: dtw.Rolling}), nil
	default:
		return nil, errors.New("distance: unknown tag")
	}
}

func euclidean(a, b tsdata.Sequence) (float64, error) {
	da, db := a.Dense(), b.Dense()
	sq := make([]float64, len(da))
	for i := range da {
		diff := da[i] - db[i]
		sq[i] = diff * diff
	}
	return math.Sqrt(floats.Sum(sq)), nil
}

func dtwMetric(opts dtw.Options) Func {
	return func(a, b tsdata.Sequence) (float64, error) {
		res, err := dtw.Align(a.Dense(), b.Dense(), opts)
		if err != nil {
			return 0, err
		}
		return res.Distance, nil
	}
}
