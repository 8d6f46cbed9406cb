package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/palette-themify/themify-dist/internal/platform"
)

// ErrOutputMissing is returned when the toolchain reported success but left
// no binary at its output path.
var ErrOutputMissing = errors.New("built binary not found")

// Orchestrator builds every matrix entry in order.
type Orchestrator struct {
	Matrix    []Entry
	OutputDir string
	BaseName  string
	Toolchain Toolchain

	// Stdout and Stderr default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run builds all entries sequentially and returns the summary. A failing
// entry never stops the run; the error return is reserved for setup
// failures such as an uncreatable output directory.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	stdout, stderr := o.writers()

	outDir, err := filepath.Abs(o.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	fmt.Fprintf(stdout, "Building %s for all platforms...\n\n", o.BaseName)

	summary := &Summary{Total: len(o.Matrix), OutputDir: outDir}
	for _, e := range o.Matrix {
		err := o.buildTarget(ctx, e, outDir, stdout)
		if err != nil {
			if errors.Is(err, ErrOutputMissing) {
				fmt.Fprintf(stderr, "  Error: %v\n", err)
			} else {
				fmt.Fprintf(stderr, "  Error building for %s: %v\n", e.Label(), err)
			}
		}
		summary.record(e.Label(), err == nil)
		fmt.Fprintln(stdout)
	}

	summary.Print(stdout)
	return summary, nil
}

// buildTarget runs the toolchain for one entry and copies its output into
// outDir under the artifact name.
func (o *Orchestrator) buildTarget(ctx context.Context, e Entry, outDir string, stdout io.Writer) error {
	name := platform.ArtifactName(o.BaseName, e.Target)
	built := o.Toolchain.OutputPath(e)

	fmt.Fprintf(stdout, "Building for %s...\n", e.Label())

	// A binary left over from the previous entry must not pass the check below.
	if err := os.Remove(built); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing stale build output %s: %w", built, err)
	}

	if err := o.Toolchain.Build(ctx, e); err != nil {
		return err
	}

	if _, err := os.Stat(built); err != nil {
		return fmt.Errorf("%w at %s", ErrOutputMissing, built)
	}

	if err := copyFile(built, filepath.Join(outDir, name)); err != nil {
		return fmt.Errorf("copying %s: %w", name, err)
	}
	fmt.Fprintf(stdout, "  -> %s\n", name)
	return nil
}

func (o *Orchestrator) writers() (io.Writer, io.Writer) {
	stdout := o.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := o.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}
