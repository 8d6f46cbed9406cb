package platform

import "runtime"

// Platform tags.
const (
	MacOS   = "macos"
	Linux   = "linux"
	Windows = "windows"
)

// Architecture tags.
const (
	X86_64  = "x86_64"
	AArch64 = "aarch64"
)

// osTags maps raw operating-system identifiers to platform tags. The Node-style
// names (darwin, linux, win32) are the canonical keys; "windows" is the name
// runtime.GOOS reports and resolves to the same tag.
var osTags = map[string]string{
	"darwin":  MacOS,
	"linux":   Linux,
	"win32":   Windows,
	"windows": Windows,
}

// archTags maps raw CPU identifiers to architecture tags. "amd64" is the
// runtime.GOARCH spelling of x64.
var archTags = map[string]string{
	"x64":   X86_64,
	"amd64": X86_64,
	"arm64": AArch64,
}

// Target identifies one build/runtime environment.
type Target struct {
	Platform string
	Arch     string
}

// Identify resolves raw OS and CPU identifiers to a Target. The boolean is
// false when either value has no entry in the lookup tables.
func Identify(rawOS, rawArch string) (Target, bool) {
	p, ok := osTags[rawOS]
	if !ok {
		return Target{}, false
	}
	a, ok := archTags[rawArch]
	if !ok {
		return Target{}, false
	}
	return Target{Platform: p, Arch: a}, true
}

// Current identifies the platform this process is running on.
func Current() (Target, bool) {
	return Identify(runtime.GOOS, runtime.GOARCH)
}

// String returns the target label, e.g. "linux-x86_64".
func (t Target) String() string {
	return t.Platform + "-" + t.Arch
}

// IsWindows reports whether the target's platform tag is windows.
func (t Target) IsWindows() bool {
	return t.Platform == Windows
}
