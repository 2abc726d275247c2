package bench

import (
	"fmt"
	"strconv"

	"github.com/weiihann/speedtoor/workload"
)

// FunctionCall returns the quadratic-residue benchmark: count the
// residues mod 5000, one QuadRes call per candidate value.
func FunctionCall() Benchmark {
	return Benchmark{
		Name:     "funcall",
		Metric:   "Number of QR",
		Announce: "Starting function call test",
		Complete: "Function call test complete. Number of QR: %s",
		TimeLine: "Time taken: %d ms",
		Body: func() (string, error) {
			count := workload.CountQuadRes(workload.DefaultModulus)

			return strconv.FormatInt(count, 10), nil
		},
	}
}

// LoopTest returns the nested-loop accumulator benchmark: 999x999
// iterations with a per-step modulo reduction.
func LoopTest() Benchmark {
	return Benchmark{
		Name:     "looptest",
		Metric:   "Final sum",
		Announce: "Starting loop test",
		Complete: "Loop test complete. Final sum: %s",
		TimeLine: "Time taken for loops: %d ms",
		Body: func() (string, error) {
			sum := workload.LoopSum(
				workload.DefaultOuter,
				workload.DefaultInner,
				workload.DefaultSumModulus,
			)

			return strconv.FormatInt(sum, 10), nil
		},
	}
}

// MonteCarloPi returns the Monte Carlo pi benchmark over ten million
// trials. Seed 0 means time-seeded; shards > 1 splits the trials
// across goroutines.
func MonteCarloPi(seed int64, shards int) Benchmark {
	return Benchmark{
		Name:     "montecarlo",
		Metric:   "pi",
		Announce: "Starting Monte Carlo Pi test",
		Complete: "Monte Carlo Pi test complete. pi = %s",
		TimeLine: "Time taken: %d ms",
		Body: func() (string, error) {
			pi := workload.EstimatePi(workload.PiConfig{
				Trials: workload.DefaultTrials,
				Seed:   seed,
				Shards: shards,
			})

			return strconv.FormatFloat(pi, 'g', -1, 64), nil
		},
	}
}

// Known returns the benchmark names in suite order.
func Known() []string {
	return []string{"funcall", "looptest", "montecarlo"}
}

// Lookup returns the named benchmark.
func Lookup(name string, seed int64, shards int) (Benchmark, error) {
	switch name {
	case "funcall":
		return FunctionCall(), nil
	case "looptest":
		return LoopTest(), nil
	case "montecarlo":
		return MonteCarloPi(seed, shards), nil
	default:
		return Benchmark{}, fmt.Errorf("unknown benchmark %q", name)
	}
}

// Select resolves names into benchmarks, preserving order. An empty
// list selects the whole suite.
func Select(names []string, seed int64, shards int) ([]Benchmark, error) {
	if len(names) == 0 {
		names = Known()
	}

	benchmarks := make([]Benchmark, 0, len(names))

	for _, name := range names {
		b, err := Lookup(name, seed, shards)
		if err != nil {
			return nil, err
		}

		benchmarks = append(benchmarks, b)
	}

	return benchmarks, nil
}
