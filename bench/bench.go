package bench

import (
	"fmt"
	"io"
	"time"
)

// Benchmark describes one measurable workload: the text it announces,
// the body that computes a scalar result, and the formats of its
// completion and timing lines.
type Benchmark struct {
	// Name identifies the benchmark and its standalone binary.
	Name string

	// Metric names the scalar the body produces, e.g. "Number of QR".
	Metric string

	// Announce is printed before the timer starts.
	Announce string

	// Complete is the fmt format of the completion line; it receives
	// the body's result string.
	Complete string

	// TimeLine is the fmt format of the timing line; it receives the
	// elapsed milliseconds.
	TimeLine string

	// Body computes the workload and renders its scalar result.
	Body func() (string, error)
}

// Run executes b exactly once, writing its announce, completion, and
// timing lines to w. The timer starts immediately before the body call
// and stops immediately after it returns; time.Since reads the
// monotonic clock, so elapsed time cannot go negative under wall clock
// adjustments. A body error is propagated without the completion or
// timing lines, since a partial run's duration means nothing.
func Run(w io.Writer, b Benchmark) (Result, error) {
	fmt.Fprintln(w, b.Announce)

	start := time.Now()

	value, err := b.Body()
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", b.Name, err)
	}

	elapsedMs := time.Since(start).Milliseconds()

	fmt.Fprintf(w, b.Complete+"\n", value)
	fmt.Fprintf(w, b.TimeLine+"\n", elapsedMs)

	return Result{
		Benchmark: b.Name,
		Metric:    b.Metric,
		Value:     value,
		ElapsedMs: elapsedMs,
	}, nil
}
