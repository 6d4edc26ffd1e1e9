package quality

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// Classification tags a cluster's fitness under the configured thresholds.
type Classification int

const (
	// Good clusters have sigma < sigma_good.
	Good Classification = iota

	// Outline clusters have sigma_good <= sigma < sigma_outline.
	Outline

	// Reclusterize clusters have sigma >= sigma_outline and should be
	// split further by the recursive driver.
	Reclusterize
)

// String renders the classification for logging and test failure output.
func (c Classification) String() string {
	switch c {
	case Good:
		return "Good"
	case Outline:
		return "Outline"
	case Reclusterize:
		return "Reclusterize"
	default:
		return "Unknown"
	}
}

// Stats holds a cluster's spread, classification, and per-member
// deviations (aligned index-for-index with the members slice passed to
// Evaluate).
type Stats struct {
	Sigma      float64
	Class      Classification
	Deviations []float64
}

// Evaluate computes sigma = sqrt(sum(deviation^2) / |members|) and
// classifies the cluster against sigmaGood and sigmaOutline.
func Evaluate(members []tsdata.Sequence, centroid tsdata.Sequence, metric distance.Func, sigmaGood, sigmaOutline float64) (Stats, error) {
	n := len(members)
	deviations := make([]float64, n)
	squared := make([]float64, n)
	for i, m := range members {
		d, err := metric(m, centroid)
		if err != nil {
			return Stats{}, err
		}
		deviations[i] = d
		squared[i] = d * d
	}

	sigma := 0.0
	if n > 0 {
		sigma = math.Sqrt(floats.Sum(squared) / float64(n))
	}

	var class Classification
	switch {
	case sigma < sigmaGood:
		class = Good
	case sigma < sigmaOutline:
		class = Outline
	default:
		class = Reclusterize
	}

	return Stats{Sigma: sigma, Class: class, Deviations: deviations}, nil
}
