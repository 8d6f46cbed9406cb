package binaries

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/palette-themify/themify-dist/internal/config"
)

// ErrNotFound is matched by errors.Is for a missing artifact.
var ErrNotFound = errors.New("binary not found")

// NotFoundError reports the absolute path that was checked.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("binary not found: %s", e.Path)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Path returns the absolute path of name inside root.
func Path(root, name string) (string, error) {
	p, err := filepath.Abs(filepath.Join(root, name))
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", name, err)
	}
	return p, nil
}

// Locate returns the absolute path of name inside root if any filesystem entry
// exists there, and a *NotFoundError otherwise.
func Locate(root, name string) (string, error) {
	p, err := Path(root, name)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(p); err != nil {
		return "", &NotFoundError{Path: p}
	}
	return p, nil
}

// Lookup is the install-time variant of Locate: a missing artifact is
// reported through the boolean, never as an error.
func Lookup(root, name string) (string, bool) {
	p, err := Locate(root, name)
	if err != nil {
		return "", false
	}
	return p, true
}

// DefaultRoot returns the binaries directory for an installed package. It
// honors THEMIFY_BINARIES_DIR, and otherwise resolves to ../binaries relative
// to the running executable (the package ships bin/ next to binaries/).
func DefaultRoot() (string, error) {
	if dir := config.BinariesDirOverride(); dir != "" {
		return filepath.Abs(dir)
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolving executable path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", config.BinariesDirName), nil
}
