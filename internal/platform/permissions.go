package platform

import (
	"os"
)

// ExecutableMode is the permission set given to installed artifacts.
const ExecutableMode os.FileMode = 0755

// Chmod sets file permissions for an artifact of the given target. On windows
// targets this is a no-op because Windows does not use Unix permission bits.
func Chmod(t Target, path string, mode os.FileMode) error {
	if t.IsWindows() {
		return nil
	}
	return os.Chmod(path, mode)
}
