package launcher

import "fmt"

// UnsupportedPlatformError is returned when the OS/arch pair has no target.
type UnsupportedPlatformError struct {
	OS   string
	Arch string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("unsupported platform: %s-%s", e.OS, e.Arch)
}

// SpawnError is returned when the artifact could not be started at all.
type SpawnError struct {
	Path string
	Err  error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("starting %s: %v", e.Path, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
