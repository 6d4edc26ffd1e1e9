package centroid

import (
	"gonum.org/v1/gonum/floats"

	"github.com/mikhailzhukov/dtwcluster/dtw"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// Strategy selects and parameterises a centroid policy.
type Strategy struct {
	// UseDBA selects DTW Barycenter Averaging; otherwise the Euclidean
	// arithmetic mean is used.
	UseDBA bool

	// Iterations is the number of DBA refinement passes. Ignored unless
	// UseDBA is set.
	Iterations int

	// Window is the Sakoe-Chiba window used for the DBA alignment. 0
	// means unconstrained.
	Window int

	// SlopePenalty is passed through to the DBA alignment.
	SlopePenalty float64
}

// Compute rebuilds a centroid from members according to strategy. seed is
// the previous centroid (or an initial reference for the first DBA pass);
// it is ignored by the Euclidean-mean policy.
func Compute(strategy Strategy, seed tsdata.Sequence, members []tsdata.Sequence, dim int) (tsdata.Sequence, error) {
	if strategy.UseDBA {
		return DBA(seed, members, strategy.Iterations, strategy.Window, strategy.SlopePenalty)
	}
	return EuclideanMean(members, dim), nil
}

// EuclideanMean returns the per-dimension arithmetic mean of members. Every
// member is densified first, so sparse members contribute zero at absent
// indices and those zeros are counted in the denominator.
func EuclideanMean(members []tsdata.Sequence, dim int) tsdata.Sequence {
	n := len(members)
	dense := make([][]float64, n)
	for i, m := range members {
		dense[i] = m.Dense()
	}

	out := make([]float64, dim)
	col := make([]float64, n)
	for d := 0; d < dim; d++ {
		for i := 0; i < n; i++ {
			col[i] = dense[i][d]
		}
		out[d] = floats.Sum(col) / float64(n)
	}
	return tsdata.NewDense(out)
}

// DBA runs DTW Barycenter Averaging for `iterations` passes, starting from
// seed as the initial reference. On each pass, every member is aligned to
// the current centroid via a full-matrix traceback; centroid index d is
// then set to the mean of every member value that aligned to d. Indices
// with no aligned values retain their previous value.
func DBA(seed tsdata.Sequence, members []tsdata.Sequence, iterations, window int, slopePenalty float64) (tsdata.Sequence, error) {
	dim := seed.Len()
	current := append([]float64(nil), seed.Dense()...)

	opts := dtw.Options{
		Window:       window,
		SlopePenalty: slopePenalty,
		ReturnPath:   true,
		MemoryMode:   dtw.FullMatrix,
	}

	for iter := 0; iter < iterations; iter++ {
		buckets := make([][]float64, dim)

		for _, member := range members {
			md := member.Dense()
			res, err := dtw.Align(current, md, opts)
			if err != nil {
				return tsdata.Sequence{}, err
			}
			for _, p := range res.Path {
				d, k := p[0], p[1]
				buckets[d] = append(buckets[d], md[k])
			}
		}

		next := make([]float64, dim)
		for d := 0; d < dim; d++ {
			if len(buckets[d]) == 0 {
				next[d] = current[d]
				continue
			}
			next[d] = floats.Sum(buckets[d]) / float64(len(buckets[d]))
		}
		current = next
	}

	return tsdata.NewDense(current), nil
}
