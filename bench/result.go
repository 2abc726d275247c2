// Package bench defines the benchmark suite and the in-process timing
// harness that runs it.
package bench

// Result holds the outcome of a single benchmark run.
type Result struct {
	Benchmark string `json:"benchmark"`
	Metric    string `json:"metric"`
	Value     string `json:"value"`
	ElapsedMs int64  `json:"elapsed_ms"`
}
