package bench

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/weiihann/speedtoor/workload"
)

func runLines(t *testing.T, b Benchmark) ([]string, Result) {
	t.Helper()

	var buf bytes.Buffer

	res, err := Run(&buf, b)
	if err != nil {
		t.Fatalf("Run(%s) failed: %v", b.Name, err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	return lines, res
}

func TestFunctionCallLines(t *testing.T) {
	lines, res := runLines(t, FunctionCall())

	if lines[0] != "Starting function call test" {
		t.Errorf("announce line = %q", lines[0])
	}

	wantComplete := fmt.Sprintf(
		"Function call test complete. Number of QR: %d",
		workload.CountQuadRes(workload.DefaultModulus),
	)
	if lines[1] != wantComplete {
		t.Errorf("completion line = %q, want %q", lines[1], wantComplete)
	}

	wantTiming := fmt.Sprintf("Time taken: %d ms", res.ElapsedMs)
	if lines[2] != wantTiming {
		t.Errorf("timing line = %q, want %q", lines[2], wantTiming)
	}
}

func TestLoopTestLines(t *testing.T) {
	lines, res := runLines(t, LoopTest())

	if lines[0] != "Starting loop test" {
		t.Errorf("announce line = %q", lines[0])
	}
	if lines[1] != "Loop test complete. Final sum: 1000" {
		t.Errorf("completion line = %q, want final sum 1000", lines[1])
	}

	wantTiming := fmt.Sprintf("Time taken for loops: %d ms", res.ElapsedMs)
	if lines[2] != wantTiming {
		t.Errorf("timing line = %q, want %q", lines[2], wantTiming)
	}
}

func TestMonteCarloPiLines(t *testing.T) {
	lines, res := runLines(t, MonteCarloPi(1, 0))

	if lines[0] != "Starting Monte Carlo Pi test" {
		t.Errorf("announce line = %q", lines[0])
	}

	const prefix = "Monte Carlo Pi test complete. pi = "
	if !strings.HasPrefix(lines[1], prefix) {
		t.Fatalf("completion line = %q, want prefix %q", lines[1], prefix)
	}

	pi, err := strconv.ParseFloat(strings.TrimPrefix(lines[1], prefix), 64)
	if err != nil {
		t.Fatalf("pi value does not parse: %v", err)
	}
	if math.Abs(pi-math.Pi) > 0.01 {
		t.Errorf("pi = %v, want within 0.01 of pi", pi)
	}

	wantTiming := fmt.Sprintf("Time taken: %d ms", res.ElapsedMs)
	if lines[2] != wantTiming {
		t.Errorf("timing line = %q, want %q", lines[2], wantTiming)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Known() {
		b, err := Lookup(name, 1, 0)
		if err != nil {
			t.Errorf("Lookup(%q) failed: %v", name, err)

			continue
		}
		if b.Name != name {
			t.Errorf("Lookup(%q).Name = %q", name, b.Name)
		}
	}

	if _, err := Lookup("fibonacci", 1, 0); err == nil {
		t.Error("expected error for unknown benchmark")
	}
}

func TestSelectDefaultsToKnown(t *testing.T) {
	benchmarks, err := Select(nil, 1, 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	known := Known()
	if len(benchmarks) != len(known) {
		t.Fatalf("got %d benchmarks, want %d", len(benchmarks), len(known))
	}

	for i, b := range benchmarks {
		if b.Name != known[i] {
			t.Errorf("benchmarks[%d] = %q, want %q", i, b.Name, known[i])
		}
	}
}

func TestSelectPreservesOrder(t *testing.T) {
	benchmarks, err := Select([]string{"montecarlo", "funcall"}, 1, 0)
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if len(benchmarks) != 2 {
		t.Fatalf("got %d benchmarks, want 2", len(benchmarks))
	}
	if benchmarks[0].Name != "montecarlo" || benchmarks[1].Name != "funcall" {
		t.Errorf("order = [%s, %s], want [montecarlo, funcall]",
			benchmarks[0].Name, benchmarks[1].Name)
	}
}

func TestSelectUnknownName(t *testing.T) {
	if _, err := Select([]string{"funcall", "nope"}, 1, 0); err == nil {
		t.Error("expected error for unknown benchmark name")
	}
}
