package sweep

import (
	"context"
	"errors"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"gonum.org/v1/gonum/floats"

	"github.com/mikhailzhukov/dtwcluster/distance"
	"github.com/mikhailzhukov/dtwcluster/kmeans"
	"github.com/mikhailzhukov/dtwcluster/quality"
	"github.com/mikhailzhukov/dtwcluster/seeding"
	"github.com/mikhailzhukov/dtwcluster/tsdata"
)

// ErrNoViableK indicates every k in the swept range produced a degenerate
// or otherwise failed fit.
var ErrNoViableK = errors.New("sweep: no viable k in range")

// Outcome is the winning candidate of a Sweep.
type Outcome struct {
	K      int
	Result kmeans.Result
	Score  float64
}

// Sweep tries every k in [kMin, kMax], scores each fit, and returns the
// minimum-scoring outcome (ties broken by the smaller k).
func Sweep(ctx context.Context, pool []tsdata.Item, kMin, kMax int, base kmeans.Config, sigmaGood, sigmaOutline float64) (Outcome, error) {
	n := kMax - kMin + 1
	type candidate struct {
		k     int
		res   kmeans.Result
		score float64
		ok    bool
	}
	results := make([]candidate, n)

	// Every substream is derived sequentially, before the parallel region
	// starts, so no goroutine ever calls Int63 on the shared base RNG and
	// parallel branches never sample from it directly.
	rngs := make([]*rand.Rand, n)
	for idx := 0; idx < n; idx++ {
		rngs[idx] = seeding.DeriveRNG(base.RNG, uint64(kMin+idx))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for idx := 0; idx < n; idx++ {
		idx := idx
		k := kMin + idx
		g.Go(func() error {
			cfg := base
			cfg.K = k
			cfg.InitialCentroids = nil
			cfg.RNG = rngs[idx]

			res, err := kmeans.Fit(gctx, pool, cfg)
			if err != nil {
				if errors.Is(err, kmeans.ErrDegenerateInput) {
					return nil
				}
				return err
			}

			score, err := score(pool, res, base.Metric, sigmaGood, sigmaOutline)
			if err != nil {
				return err
			}
			results[idx] = candidate{k: k, res: res, score: score, ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	var best *candidate
	for i := range results {
		c := &results[i]
		if !c.ok {
			continue
		}
		if best == nil || c.score < best.score {
			best = c
		}
	}
	if best == nil {
		return Outcome{}, ErrNoViableK
	}
	return Outcome{K: best.k, Result: best.res, Score: best.score}, nil
}

func score(pool []tsdata.Item, res kmeans.Result, metric distance.Func, sigmaGood, sigmaOutline float64) (float64, error) {
	sizes := make([]float64, 0, len(res.Members))
	weighted := make([]float64, 0, len(res.Members))

	for c, memberIdx := range res.Members {
		if len(memberIdx) == 0 {
			continue
		}
		seqs := make([]tsdata.Sequence, len(memberIdx))
		for i, idx := range memberIdx {
			seqs[i] = pool[idx].Seq
		}
		stats, err := quality.Evaluate(seqs, res.Centroids[c], metric, sigmaGood, sigmaOutline)
		if err != nil {
			return 0, err
		}
		size := float64(len(memberIdx))
		sizes = append(sizes, size)
		weighted = append(weighted, stats.Sigma*size)
	}
	if len(sizes) == 0 {
		return 0, nil
	}
	return floats.Sum(weighted) / floats.Sum(sizes), nil
}
