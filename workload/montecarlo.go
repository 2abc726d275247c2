package workload

import (
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultTrials is the number of samples drawn by the Monte Carlo pi
// benchmark.
const DefaultTrials int64 = 10_000_000

// PiConfig controls Monte Carlo pi estimation.
type PiConfig struct {
	// Trials is the number of (x, y) samples to draw.
	// Zero or negative means DefaultTrials.
	Trials int64

	// Seed seeds the random source (0 = use current time).
	Seed int64

	// Shards splits the trials across that many goroutines when > 1.
	// Each shard draws from its own source seeded Seed+shard, so a
	// sharded estimate differs from a sequential one for the same
	// seed; only the convergence property is shared.
	Shards int
}

// EstimatePi estimates pi by sampling points in the unit square and
// counting those inside the unit quarter circle. The estimate is
// 4*inside/trials.
func EstimatePi(cfg PiConfig) float64 {
	trials := cfg.Trials
	if trials <= 0 {
		trials = DefaultTrials
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if cfg.Shards > 1 {
		return estimateSharded(trials, seed, cfg.Shards)
	}

	inside := countInside(trials, seed)

	return 4 * float64(inside) / float64(trials)
}

// countInside draws trials (x, y) pairs from a source seeded with seed
// and counts those with x*x + y*y <= 1. x is drawn before y on each
// trial.
func countInside(trials, seed int64) int64 {
	rng := rand.New(rand.NewSource(seed))

	var inside int64

	for t := int64(0); t < trials; t++ {
		x := rng.Float64()
		y := rng.Float64()

		if x*x+y*y <= 1.0 {
			inside++
		}
	}

	return inside
}

// estimateSharded fans the trials out over shards goroutines. Each
// shard owns a private counter and a private random source; the only
// shared step is the final reduction after Wait.
func estimateSharded(trials, seed int64, shards int) float64 {
	split := splitTrials(trials, shards)
	counts := make([]int64, shards)

	var g errgroup.Group

	for s := range shards {
		g.Go(func() error {
			counts[s] = countInside(split[s], seed+int64(s))

			return nil
		})
	}

	// Shard bodies are pure arithmetic and never return an error.
	_ = g.Wait()

	var inside int64
	for _, c := range counts {
		inside += c
	}

	return 4 * float64(inside) / float64(trials)
}

// splitTrials divides trials across shards, spreading any remainder
// over the leading shards.
func splitTrials(trials int64, shards int) []int64 {
	split := make([]int64, shards)
	base := trials / int64(shards)
	rem := trials % int64(shards)

	for i := range split {
		split[i] = base
		if int64(i) < rem {
			split[i]++
		}
	}

	return split
}
