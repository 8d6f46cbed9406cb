package install

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/palette-themify/themify-dist/internal/binaries"
	"github.com/palette-themify/themify-dist/internal/branding"
	"github.com/palette-themify/themify-dist/internal/platform"
)

// Outcome classifies what the hook did.
type Outcome int

const (
	// Unsupported means the OS/arch pair has no target mapping.
	Unsupported Outcome = iota
	// Missing means no artifact ships for this platform.
	Missing
	// NotNeeded means the platform has no permission bits to set.
	NotNeeded
	// MadeExecutable means the artifact's mode is now 0755.
	MadeExecutable
	// PermissionFailed means chmod failed; Result.Err holds the reason.
	PermissionFailed
)

func (o Outcome) String() string {
	switch o {
	case Unsupported:
		return "unsupported"
	case Missing:
		return "missing"
	case NotNeeded:
		return "not-needed"
	case MadeExecutable:
		return "made-executable"
	case PermissionFailed:
		return "permission-failed"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Result is returned for logging and tests only; it never drives an exit code.
type Result struct {
	Outcome Outcome
	Name    string // artifact name, empty when unsupported
	Path    string // absolute artifact path, empty unless located
	Err     error  // set for PermissionFailed
}

// Hook runs the post-install permission fix.
type Hook struct {
	// Root is the binaries directory.
	Root string
	// OS and Arch default to runtime.GOOS and runtime.GOARCH.
	OS   string
	Arch string
	// Stdout and Stderr default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer

	chmod func(platform.Target, string, os.FileMode) error
}

// Run locates the artifact and, off Windows, sets its mode to 0755.
func (h *Hook) Run() Result {
	stdout, stderr := h.writers()

	rawOS, rawArch := h.OS, h.Arch
	if rawOS == "" {
		rawOS = runtime.GOOS
	}
	if rawArch == "" {
		rawArch = runtime.GOARCH
	}

	target, ok := platform.Identify(rawOS, rawArch)
	if !ok {
		fmt.Fprintln(stdout, "Unsupported platform, skipping postinstall")
		return Result{Outcome: Unsupported}
	}

	name := platform.ArtifactName(branding.BaseName(), target)
	path, found := binaries.Lookup(h.Root, name)
	if !found {
		return Result{Outcome: Missing, Name: name}
	}

	if target.IsWindows() {
		return Result{Outcome: NotNeeded, Name: name, Path: path}
	}

	chmod := h.chmod
	if chmod == nil {
		chmod = platform.Chmod
	}
	if err := chmod(target, path, platform.ExecutableMode); err != nil {
		fmt.Fprintf(stderr, "Warning: Could not make binary executable: %v\n", err)
		return Result{Outcome: PermissionFailed, Name: name, Path: path, Err: err}
	}

	fmt.Fprintf(stdout, "Made %s executable\n", name)
	return Result{Outcome: MadeExecutable, Name: name, Path: path}
}

func (h *Hook) writers() (io.Writer, io.Writer) {
	stdout := h.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := h.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	return stdout, stderr
}
