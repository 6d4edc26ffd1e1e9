package kmeans

import (
	"context"
	"math"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mikhailzhukov/dtwcluster/centroid"
	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/seeding"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// Fit runs the K-Means state machine to convergence or exhaustion over
// pool, per cfg. ctx is checked once per iteration; a cancelled or
// expired ctx stops further work and returns ctx.Err().
func Fit(ctx context.Context, pool []tsdata.Item, cfg Config) (Result, error) {
	n := len(pool)
	if distinctCount(pool) < cfg.K {
		return Result{}, ErrDegenerateInput
	}

	dim := pool[0].Seq.Len()

	centroids := cfg.InitialCentroids
	if len(centroids) == 0 {
		seeded, err := seeding.Init(pool, cfg.K, cfg.Metric, cfg.RNG)
		if err != nil {
			return Result{}, err
		}
		centroids = seeded
	}

	prevAssignments := make([]int, n)
	for i := range prevAssignments {
		prevAssignments[i] = -1
	}

	reseededPrev := make(map[int]bool, cfg.K)

	iter := 0
	for {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}

		assignments, err := assignAll(ctx, pool, centroids, cfg.Metric)
		if err != nil {
			return Result{}, err
		}

		members := groupMembers(assignments, cfg.K)
		newCentroids, reseededNow, err := updateCentroids(pool, centroids, members, cfg.Strategy, dim, reseededPrev)
		if err != nil {
			return Result{}, err
		}
		reseededPrev = reseededNow

		iter++
		stable := sameAssignments(prevAssignments, assignments)
		displacement, err := maxDisplacementSq(centroids, newCentroids, cfg.Metric)
		if err != nil {
			return Result{}, err
		}

		centroids = newCentroids
		prevAssignments = assignments

		switch {
		case stable || displacement < convergenceEpsilon:
			return Result{Centroids: centroids, Assignments: assignments, Members: members, State: Converged, Iterations: iter}, nil
		case iter >= cfg.MaxIter:
			return Result{Centroids: centroids, Assignments: assignments, Members: members, State: Exhausted, Iterations: iter}, nil
		}
	}
}

func distinctCount(pool []tsdata.Item) int {
	seen := make(map[string]struct{}, len(pool))
	for _, item := range pool {
		seen[seqKey(item.Seq)] = struct{}{}
	}
	return len(seen)
}

func seqKey(s tsdata.Sequence) string {
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

// assignAll attributes each pool member to its nearest centroid. Work is
// partitioned over a deterministic id-sorted ordering into GOMAXPROCS
// contiguous chunks; each worker writes into a pre-sized slice keyed by
// the member's original pool index, so results never depend on which
// worker ran first.
func assignAll(ctx context.Context, pool []tsdata.Item, centroids []tsdata.Sequence, metric distance.Func) ([]int, error) {
	n := len(pool)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return pool[order[i]].ID < pool[order[j]].ID })

	assignments := make([]int, n)
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	chunkSize := (n + workers - 1) / workers
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		chunk := order[start:end]
		g.Go(func() error {
			for _, idx := range chunk {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				best := -1
				bestDist := math.Inf(1)
				for c, cen := range centroids {
					d, err := metric(pool[idx].Seq, cen)
					if err != nil {
						return err
					}
					if d < bestDist {
						bestDist = d
						best = c
					}
				}
				assignments[idx] = best
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assignments, nil
}

func groupMembers(assignments []int, k int) [][]int {
	members := make([][]int, k)
	for idx, c := range assignments {
		members[c] = append(members[c], idx)
	}
	return members
}

// updateCentroids recomputes each cluster's centroid, re-seeding any
// cluster left empty by the latest assignment to the pool member farthest
// from every existing centroid. prevReseeded records which clusters were
// re-seeded on the previous call; a cluster that is still empty after
// having been re-seeded last iteration means re-seeding could not rescue
// it, which is the persistent-emptiness invariant violation. The returned
// map becomes the next call's prevReseeded.
func updateCentroids(pool []tsdata.Item, prev []tsdata.Sequence, members [][]int, strategy centroid.Strategy, dim int, prevReseeded map[int]bool) ([]tsdata.Sequence, map[int]bool, error) {
	k := len(members)
	out := make([]tsdata.Sequence, k)
	reseeded := make(map[int]bool, k)

	for c := 0; c < k; c++ {
		if len(members[c]) > 0 {
			continue
		}
		if prevReseeded[c] {
			return nil, nil, ErrInternalInvariant
		}
		far := farthestFromAny(pool, prev)
		out[c] = pool[far].Seq
		reseeded[c] = true
	}

	for c := 0; c < k; c++ {
		if reseeded[c] {
			continue
		}
		seqs := make([]tsdata.Sequence, len(members[c]))
		for i, idx := range members[c] {
			seqs[i] = pool[idx].Seq
		}
		nc, err := centroid.Compute(strategy, prev[c], seqs, dim)
		if err != nil {
			return nil, nil, err
		}
		out[c] = nc
	}
	return out, reseeded, nil
}

func farthestFromAny(pool []tsdata.Item, centroids []tsdata.Sequence) int {
	farIdx := 0
	farDist := -1.0
	for i, item := range pool {
		nearest := math.Inf(1)
		for _, c := range centroids {
			d := euclideanFallback(item.Seq.Dense(), c.Dense())
			if d < nearest {
				nearest = d
			}
		}
		if nearest > farDist {
			farDist = nearest
			farIdx = i
		}
	}
	return farIdx
}

// euclideanFallback is used only to rank candidates for empty-cluster
// re-seeding; it need not match the configured metric exactly, only
// provide a stable "farthest" ordering.
func euclideanFallback(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}
	return sum
}

func sameAssignments(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func maxDisplacementSq(oldC, newC []tsdata.Sequence, metric distance.Func) (float64, error) {
	max := 0.0
	for i := range oldC {
		d, err := metric(oldC[i], newC[i])
		if err != nil {
			return 0, err
		}
		sq := d * d
		if sq > max {
			max = sq
		}
	}
	return max, nil
}
