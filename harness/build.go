package harness

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
)

// ResolveBinary returns the expected binary path for a benchmark given
// the binaries directory.
func ResolveBinary(binDir, name string) string {
	return filepath.Join(binDir, name)
}

// Build compiles the named benchmark binary from ./cmd/<name> into
// binDir. Build output goes to stderr so stdout stays clean for
// reports.
func Build(
	ctx context.Context,
	logger *slog.Logger,
	binDir string,
	name string,
) (string, error) {
	binPath := ResolveBinary(binDir, name)

	logger.InfoContext(ctx, "building benchmark",
		slog.String("benchmark", name),
		slog.String("binary", binPath),
	)

	cmd := exec.CommandContext(
		ctx, "go", "build", "-o", binPath, "./cmd/"+name,
	)
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("build %s: %w", name, err)
	}

	if _, err := os.Stat(binPath); err != nil {
		return "", fmt.Errorf(
			"build %s: binary not found at %s", name, binPath,
		)
	}

	logger.InfoContext(ctx, "benchmark built",
		slog.String("benchmark", name),
		slog.String("binary", binPath),
	)

	return binPath, nil
}
