// Package report formats benchmark results for console, markdown, and
// JSON consumers.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/weiihann/speedtoor/bench"
)

// Render writes a console table for the given results. No speedup
// column: the benchmarks are different computations, so ratios between
// them are meaningless.
func Render(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	table := tablewriter.NewWriter(w)
	table.Header("Benchmark", "Metric", "Result", "Elapsed")

	for _, r := range results {
		_ = table.Append(r.Benchmark, r.Metric, r.Value, formatMs(r.ElapsedMs))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	return nil
}

// Generate writes a markdown table for the given results, followed by
// a total-elapsed footer.
func Generate(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		return fmt.Errorf("no results to report")
	}

	fmt.Fprintln(w, "## Benchmark Results")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Benchmark | Metric | Result | Elapsed |")
	fmt.Fprintln(w, "|-----------|--------|--------|---------|")

	var totalMs int64

	for _, r := range results {
		fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			r.Benchmark,
			r.Metric,
			r.Value,
			formatMs(r.ElapsedMs),
		)

		totalMs += r.ElapsedMs
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total elapsed: %s\n", formatMs(totalMs))

	return nil
}

// GenerateJSON writes results as JSON to w.
func GenerateJSON(w io.Writer, results []bench.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(results)
}

func formatMs(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}

	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}
