// Package main provides the CLI entry point for speedtoor, a compute
// micro-benchmark suite.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/weiihann/speedtoor/bench"
	"github.com/weiihann/speedtoor/harness"
	"github.com/weiihann/speedtoor/report"
)

var (
	bold   = color.New(color.Bold)
	blue   = color.New(color.FgBlue)
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "speedtoor",
		Short: "Compute micro-benchmark suite",
		Long: `Speedtoor times a fixed set of compute workloads: nested-loop
arithmetic, function call overhead via a quadratic-residue count, and a
Monte Carlo estimation of pi. Each benchmark reports its scalar result
and elapsed wall-clock milliseconds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd(logger))

	return root
}

func newRunCmd(logger *slog.Logger) *cobra.Command {
	var (
		benchmarks     []string
		seed           int64
		parallel       int
		outputJSON     bool
		outputMarkdown bool
		isolate        bool
		binDir         string
		skipBuild      bool
		timeout        time.Duration
		verbose        bool
		ci             bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark suite",
		Long: `Run the selected benchmarks in-process, or as standalone binaries
with --isolate, and report results as a table, markdown, or JSON.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSuite(cmd.Context(), logger, runConfig{
				benchmarks:     benchmarks,
				seed:           seed,
				parallel:       parallel,
				outputJSON:     outputJSON,
				outputMarkdown: outputMarkdown,
				isolate:        isolate,
				binDir:         binDir,
				skipBuild:      skipBuild,
				timeout:        timeout,
				verbose:        verbose,
				ci:             ci,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringSliceVar(&benchmarks, "benchmarks", nil,
		"Benchmarks to run (funcall,looptest,montecarlo; default all)")
	flags.Int64Var(&seed, "seed", 0,
		"Random seed for the Monte Carlo benchmark (0 = use current time)")
	flags.IntVar(&parallel, "parallel", 0,
		"Monte Carlo shard count (0 or 1 = sequential)")
	flags.BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of a table")
	flags.BoolVar(&outputMarkdown, "markdown", false,
		"Output results as a markdown table")
	flags.BoolVar(&isolate, "isolate", false,
		"Run each benchmark as a standalone binary in its own process")
	flags.StringVar(&binDir, "bin-dir", "",
		"Directory for benchmark binaries (default: ./bin)")
	flags.BoolVar(&skipBuild, "skip-build", false,
		"Skip building benchmark binaries")
	flags.DurationVar(&timeout, "timeout", 10*time.Minute,
		"Per-benchmark timeout for isolated runs")
	flags.BoolVar(&verbose, "verbose", false,
		"Stream each benchmark's raw output")
	flags.BoolVar(&ci, "ci", false,
		"CI mode: plain status lines instead of a progress bar")

	return cmd
}

type runConfig struct {
	benchmarks     []string
	seed           int64
	parallel       int
	outputJSON     bool
	outputMarkdown bool
	isolate        bool
	binDir         string
	skipBuild      bool
	timeout        time.Duration
	verbose        bool
	ci             bool
}

func runSuite(ctx context.Context, logger *slog.Logger, cfg runConfig) error {
	if cfg.outputJSON && cfg.outputMarkdown {
		return fmt.Errorf("--json and --markdown are mutually exclusive")
	}

	seed := cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	benchmarks, err := bench.Select(cfg.benchmarks, seed, cfg.parallel)
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting suite",
		slog.Any("benchmarks", names(benchmarks)),
		slog.Int64("seed", seed),
		slog.Int("parallel", cfg.parallel),
		slog.Bool("isolate", cfg.isolate),
	)

	var results []bench.Result
	if cfg.isolate {
		results, err = runIsolated(ctx, logger, cfg, benchmarks)
	} else {
		results, err = runInProcess(cfg, benchmarks)
	}

	if err != nil {
		return err
	}

	switch {
	case cfg.outputJSON:
		if err := report.GenerateJSON(os.Stdout, results); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}
	case cfg.outputMarkdown:
		if err := report.Generate(os.Stdout, results); err != nil {
			return fmt.Errorf("generate report: %w", err)
		}
	default:
		if err := report.Render(os.Stdout, results); err != nil {
			return fmt.Errorf("render report: %w", err)
		}
	}

	logger.InfoContext(ctx, "suite complete")

	return nil
}

// runInProcess runs each benchmark inside this process via bench.Run.
// Raw workload output is discarded unless --verbose; the default view
// is a progress bar plus the final table.
func runInProcess(
	cfg runConfig,
	benchmarks []bench.Benchmark,
) ([]bench.Result, error) {
	quiet := cfg.outputJSON || cfg.outputMarkdown
	ciMode := cfg.ci || isCIEnv()

	var sink io.Writer = io.Discard
	if cfg.verbose && !quiet {
		sink = os.Stdout
	}

	statusLines := !quiet && (ciMode || cfg.verbose)

	var bar *progressbar.ProgressBar
	if !quiet && !ciMode && !cfg.verbose {
		bar = progressbar.NewOptions(len(benchmarks),
			progressbar.OptionSetDescription("Running benchmarks"),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: "░",
				BarStart:      "│",
				BarEnd:        "│",
			}),
			progressbar.OptionEnableColorCodes(true),
		)
	}

	if !quiet {
		bold.Println("Running benchmark suite")
		fmt.Println()
	}

	results := make([]bench.Result, 0, len(benchmarks))

	for i, b := range benchmarks {
		if bar != nil {
			bar.Describe(fmt.Sprintf("Running: %s", b.Name))
		}

		if statusLines {
			blue.Printf("[%d/%d] ", i+1, len(benchmarks))
			yellow.Printf("Running: %s\n", b.Name)
		}

		result, err := bench.Run(sink, b)
		if err != nil {
			if !quiet {
				red.Printf("  ✗ %s failed: %v\n", b.Name, err)
			}

			return nil, fmt.Errorf("run %s: %w", b.Name, err)
		}

		results = append(results, result)

		if bar != nil {
			// The bar ticks between benchmarks only, never inside a
			// measurement.
			bar.Add(1)
		}

		if statusLines {
			green.Printf("  ✓ %s completed in %d ms\n",
				b.Name, result.ElapsedMs)
		}
	}

	if bar != nil {
		fmt.Println()
		fmt.Println()
	}

	return results, nil
}

// runIsolated builds the standalone binaries and execs them one at a
// time, parsing each child's output. Seed and shard settings cannot
// reach the children, which take no arguments.
func runIsolated(
	ctx context.Context,
	logger *slog.Logger,
	cfg runConfig,
	benchmarks []bench.Benchmark,
) ([]bench.Result, error) {
	if cfg.seed != 0 || cfg.parallel > 1 {
		logger.WarnContext(ctx,
			"seed and parallel settings do not apply to isolated runs")
	}

	binDir := cfg.binDir
	if binDir == "" {
		binDir = "bin"
	}

	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return nil, fmt.Errorf("create bin dir: %w", err)
	}

	// Build everything first (unless --skip-build) so compile time
	// never lands next to a measurement.
	binaries := make(map[string]string, len(benchmarks))

	for _, b := range benchmarks {
		binPath := harness.ResolveBinary(binDir, b.Name)

		if !cfg.skipBuild {
			var err error

			binPath, err = harness.Build(ctx, logger, binDir, b.Name)
			if err != nil {
				return nil, fmt.Errorf("build %s: %w", b.Name, err)
			}
		}

		binaries[b.Name] = binPath
	}

	quiet := cfg.outputJSON || cfg.outputMarkdown

	var echo io.Writer
	if cfg.verbose && !quiet {
		echo = os.Stdout
	}

	// Run the children sequentially so measurements do not contend.
	results := make([]bench.Result, 0, len(benchmarks))

	for i, b := range benchmarks {
		if !quiet {
			blue.Printf("[%d/%d] ", i+1, len(benchmarks))
			yellow.Printf("Running: %s\n", b.Name)
		}

		runner := harness.NewRunner(b.Name, binaries[b.Name], logger)

		result, err := runner.Run(ctx, harness.RunConfig{
			Timeout: cfg.timeout,
			Echo:    echo,
		})
		if err != nil {
			if !quiet {
				red.Printf("  ✗ %s failed\n", b.Name)
			}

			return nil, fmt.Errorf("run %s: %w", b.Name, err)
		}

		results = append(results, *result)

		if !quiet {
			green.Printf("  ✓ %s completed in %d ms\n",
				b.Name, result.ElapsedMs)
		}
	}

	return results, nil
}

func names(benchmarks []bench.Benchmark) []string {
	out := make([]string, len(benchmarks))
	for i, b := range benchmarks {
		out[i] = b.Name
	}

	return out
}

// isCIEnv reports whether a CI environment variable is set, in which
// case animated progress output is unusable.
func isCIEnv() bool {
	ciEnvVars := []string{
		"CI", "GITHUB_ACTIONS", "GITLAB_CI", "CIRCLECI", "JENKINS_HOME",
	}

	for _, env := range ciEnvVars {
		value := os.Getenv(env)
		if value == "true" || value == "1" {
			return true
		}
	}

	return false
}
