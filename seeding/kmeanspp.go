package seeding

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// ErrDegenerateInput indicates fewer members are available than the
// requested number of centroids.
var ErrDegenerateInput = errors.New("seeding: fewer members than k")

// Init runs K-Means++ seeding: the first centroid is chosen uniformly at
// random, then each subsequent centroid is sampled with probability
// proportional to its squared distance to the nearest already-chosen
// centroid, under the supplied metric.
func Init(pool []tsdata.Item, k int, metric distance.Func, rng *rand.Rand) ([]tsdata.Sequence, error) {
	n := len(pool)
	if n < k {
		return nil, ErrDegenerateInput
	}

	centroids := make([]tsdata.Sequence, 0, k)
	first := rng.Intn(n)
	centroids = append(centroids, pool[first].Seq)

	minDistSq := make([]float64, n)
	for i := range minDistSq {
		minDistSq[i] = -1 // unset
	}

	for len(centroids) < k {
		last := centroids[len(centroids)-1]
		for i, item := range pool {
			d, err := metric(item.Seq, last)
			if err != nil {
				return nil, err
			}
			sq := d * d
			if minDistSq[i] < 0 || sq < minDistSq[i] {
				minDistSq[i] = sq
			}
		}

		total := floats.Sum(minDistSq)
		if total == 0 {
			idx := firstUnused(pool, centroids)
			centroids = append(centroids, pool[idx].Seq)
			continue
		}

		target := rng.Float64() * total
		cum := 0.0
		chosen := n - 1
		for i, w := range minDistSq {
			cum += w
			if cum >= target {
				chosen = i
				break
			}
		}
		centroids = append(centroids, pool[chosen].Seq)
	}

	return centroids, nil
}

func firstUnused(pool []tsdata.Item, chosen []tsdata.Sequence) int {
	used := make(map[string]struct{}, len(chosen))
	for _, c := range chosen {
		used[key(c)] = struct{}{}
	}
	for i, item := range pool {
		if _, ok := used[key(item.Seq)]; !ok {
			return i
		}
	}
	return 0
}

func key(s tsdata.Sequence) string {
	d := s.Dense()
	b := make([]byte, 0, len(d)*8)
	for _, v := range d {
		bits := math.Float64bits(v)
		for shift := 0; shift < 64; shift += 8 {
			b = append(b, byte(bits>>shift))
		}
	}
	return string(b)
}
