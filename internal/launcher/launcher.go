package launcher

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"

	"github.com/palette-themify/themify-dist/internal/binaries"
	"github.com/palette-themify/themify-dist/internal/branding"
	"github.com/palette-themify/themify-dist/internal/platform"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ExitFailure is the exit code for resolution and spawn failures.
const ExitFailure = 1

// Launcher resolves and runs the platform artifact.
type Launcher struct {
	// Root is the binaries directory.
	Root string
	// OS and Arch default to runtime.GOOS and runtime.GOARCH.
	OS   string
	Arch string

	// Stdin, Stdout and Stderr default to the process streams. When they are
	// *os.File values the child inherits the handles directly.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Host optionally describes the host for the not-found diagnostic.
	Host func() string
}

func (l *Launcher) raw() (string, string) {
	rawOS, rawArch := l.OS, l.Arch
	if rawOS == "" {
		rawOS = runtime.GOOS
	}
	if rawArch == "" {
		rawArch = runtime.GOARCH
	}
	return rawOS, rawArch
}

// Resolve returns the absolute path of the artifact for this platform. It
// fails with *UnsupportedPlatformError or *binaries.NotFoundError.
func (l *Launcher) Resolve() (string, error) {
	rawOS, rawArch := l.raw()
	name, ok := platform.ResolveArtifactName(branding.BaseName(), rawOS, rawArch)
	if !ok {
		return "", &UnsupportedPlatformError{OS: rawOS, Arch: rawArch}
	}
	return binaries.Locate(l.Root, name)
}

// Delegate runs the artifact at path with args and waits for it. It returns
// the child's exit code, or ExitFailure with a *SpawnError when the child
// could not be started. A child killed by a signal has no exit code and is
// reported as 0.
func (l *Launcher) Delegate(path string, args []string) (int, error) {
	cmd := exec.Command(path, args...)
	cmd.Stdin = l.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = l.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = l.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Start(); err != nil {
		return ExitFailure, &SpawnError{Path: path, Err: err}
	}

	err := cmd.Wait()
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			return code, nil
		}
		return 0, nil
	}
	// The child ran, but copying one of the non-file streams failed.
	return cmd.ProcessState.ExitCode(), nil
}

// Run resolves the artifact and delegates to it, printing a diagnostic on
// stderr for every fatal condition. The return value is the exit code this
// process should terminate with.
func (l *Launcher) Run(args []string) int {
	stderr := l.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	path, err := l.Resolve()
	if err != nil {
		l.printResolveError(stderr, err)
		return ExitFailure
	}

	code, err := l.Delegate(path, args)
	if err != nil {
		var spawnErr *SpawnError
		if errors.As(err, &spawnErr) {
			err = spawnErr.Err
		}
		fmt.Fprintf(stderr, "Failed to start %s: %v\n", branding.BaseName(), err)
	}
	return code
}

func (l *Launcher) printResolveError(w io.Writer, err error) {
	var unsupported *UnsupportedPlatformError
	if errors.As(err, &unsupported) {
		fmt.Fprintf(w, "Unsupported platform: %s-%s\n", unsupported.OS, unsupported.Arch)
		return
	}

	var notFound *binaries.NotFoundError
	if !errors.As(err, &notFound) {
		fmt.Fprintf(w, "Error: %v\n", err)
		return
	}

	rawOS, rawArch := l.raw()
	fmt.Fprintf(w, "Binary not found: %s\n", notFound.Path)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "This could mean:")
	fmt.Fprintf(w, "  1. Your platform (%s-%s) is not supported\n", rawOS, rawArch)
	fmt.Fprintln(w, "  2. The package was not installed correctly")
	if l.Host != nil {
		if host := l.Host(); host != "" {
			fmt.Fprintf(w, "\nDetected host: %s\n", host)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "You can build from source if you have %s installed:\n", toolchainDisplayName())
	fmt.Fprintf(w, "  git clone %s\n", branding.SourceRepo())
	fmt.Fprintf(w, "  cd %s\n", branding.SourceDir())
	fmt.Fprintf(w, "  %s build -Doptimize=ReleaseFast\n", branding.Toolchain())
}

func toolchainDisplayName() string {
	return cases.Title(language.English).String(branding.Toolchain())
}
