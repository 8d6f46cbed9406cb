package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/palette-themify/themify-dist/internal/platform"
)

// Toolchain builds one matrix entry. OutputPath is where a successful build
// is expected to leave the binary; the orchestrator checks it rather than
// trusting Build's error alone.
type Toolchain interface {
	Build(ctx context.Context, e Entry) error
	OutputPath(e Entry) string
}

// ZigToolchain invokes `zig build -Doptimize=<mode> -Dtarget=<triple>` in the
// project root. The build output lands in zig-out/bin.
type ZigToolchain struct {
	Bin         string // toolchain executable, e.g. "zig"
	ProjectRoot string
	Optimize    string // e.g. "ReleaseFast"
	BaseName    string // name of the built executable without suffix

	// Stdout and Stderr receive the toolchain's output; they default to the
	// process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Args returns the toolchain arguments for e.
func (z *ZigToolchain) Args(e Entry) []string {
	return []string{"build", "-Doptimize=" + z.Optimize, "-Dtarget=" + e.Triple}
}

// Build runs the toolchain for e with its output passed through.
func (z *ZigToolchain) Build(ctx context.Context, e Entry) error {
	cmd := exec.CommandContext(ctx, z.Bin, z.Args(e)...)
	cmd.Dir = z.ProjectRoot
	cmd.Stdout = z.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = z.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", z.Bin, strings.Join(z.Args(e), " "), err)
	}
	return nil
}

// OutputPath returns zig-out/bin/<base>[.exe] under the project root.
func (z *ZigToolchain) OutputPath(e Entry) string {
	return filepath.Join(z.ProjectRoot, "zig-out", "bin", z.BaseName+platform.ExeSuffix(e.Target))
}

// Version runs `<bin> version` and returns its trimmed output.
func (z *ZigToolchain) Version(ctx context.Context) (string, error) {
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, z.Bin, "version")
	cmd.Dir = z.ProjectRoot
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running %s version: %w", z.Bin, err)
	}
	return strings.TrimSpace(out.String()), nil
}

// CheckToolchainVersion fails when version is older than minimum. Development
// builds such as "0.14.0-dev.1+abc" compare by their semver precedence.
func CheckToolchainVersion(version, minimum string) error {
	have, err := parseSemver(version)
	if err != nil {
		return fmt.Errorf("parsing toolchain version %q: %w", version, err)
	}
	want, err := parseSemver(minimum)
	if err != nil {
		return fmt.Errorf("parsing minimum toolchain version %q: %w", minimum, err)
	}
	if have.Compare(want) < 0 {
		return fmt.Errorf("toolchain version %s is older than the required %s", have, want)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(version), "v"))
}
