// Package harness builds and executes the standalone benchmark
// binaries, parsing their console output into results.
package harness

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/weiihann/speedtoor/bench"
)

// RunConfig holds parameters for a single benchmark execution.
type RunConfig struct {
	// Timeout bounds the child's execution (0 = no limit).
	Timeout time.Duration

	// Echo receives a copy of the child's stdout when non-nil.
	Echo io.Writer
}

// Runner launches and manages a single benchmark binary.
type Runner struct {
	Name       string
	BinaryPath string
	Logger     *slog.Logger
}

// NewRunner creates a Runner for the named benchmark. The binaries
// take no arguments and read no environment, so the path is all that
// is needed.
func NewRunner(name, binaryPath string, logger *slog.Logger) *Runner {
	return &Runner{
		Name:       name,
		BinaryPath: binaryPath,
		Logger:     logger.With(slog.String("benchmark", name)),
	}
}

// Run executes the benchmark binary and returns its parsed result.
// The child runs alone so the measurement does not contend with other
// benchmarks.
func (r *Runner) Run(ctx context.Context, cfg RunConfig) (*bench.Result, error) {
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.BinaryPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if cfg.Echo != nil {
		cmd.Stdout = io.MultiWriter(&stdout, cfg.Echo)
	}

	r.Logger.Info("starting benchmark",
		slog.String("binary", r.BinaryPath),
	)

	wallStart := time.Now()

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf(
			"benchmark %s failed: %w\nstderr: %s",
			r.Name, err, stderr.String(),
		)
	}

	wallElapsed := time.Since(wallStart)

	r.Logger.Info("benchmark finished",
		slog.Duration("wall_time", wallElapsed),
	)

	result, err := parseResult(r.Name, &stdout)
	if err != nil {
		return nil, fmt.Errorf(
			"parse %s output: %w\nstdout: %s",
			r.Name, err, stdout.String(),
		)
	}

	return result, nil
}

// parseResult reads the child's three output lines: an announcement,
// a completion line carrying the scalar result, and a timing line.
// The reported elapsed time is the child's own measurement, not the
// parent's wall time around the process.
func parseResult(name string, r io.Reader) (*bench.Result, error) {
	scanner := bufio.NewScanner(r)

	var lines []string

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}

	if len(lines) < 3 {
		return nil, fmt.Errorf("expected 3 output lines, got %d", len(lines))
	}

	metric, value, err := parseCompletion(lines[1])
	if err != nil {
		return nil, err
	}

	elapsedMs, err := parseElapsed(lines[2])
	if err != nil {
		return nil, err
	}

	return &bench.Result{
		Benchmark: name,
		Metric:    metric,
		Value:     value,
		ElapsedMs: elapsedMs,
	}, nil
}

// parseCompletion splits a completion line into its metric name and
// scalar value. Two value forms exist: "Metric: value" and
// "metric = value".
func parseCompletion(line string) (string, string, error) {
	_, rest, found := strings.Cut(line, "complete.")
	if !found {
		return "", "", fmt.Errorf("no completion marker in %q", line)
	}

	rest = strings.TrimSpace(rest)

	if metric, value, ok := strings.Cut(rest, ": "); ok {
		return metric, value, nil
	}
	if metric, value, ok := strings.Cut(rest, " = "); ok {
		return metric, value, nil
	}

	return "", "", fmt.Errorf("no value separator in %q", line)
}

// parseElapsed extracts the millisecond count from a timing line such
// as "Time taken: 812 ms" or "Time taken for loops: 3 ms".
func parseElapsed(line string) (int64, error) {
	rest, found := strings.CutSuffix(line, " ms")
	if !found {
		return 0, fmt.Errorf("no ms suffix in %q", line)
	}

	i := strings.LastIndex(rest, " ")
	if i < 0 {
		return 0, fmt.Errorf("no elapsed value in %q", line)
	}

	ms, err := strconv.ParseInt(rest[i+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse elapsed %q: %w", rest[i+1:], err)
	}

	return ms, nil
}
