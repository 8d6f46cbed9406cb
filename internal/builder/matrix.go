package builder

import "github.com/palette-themify/themify-dist/internal/platform"

// Entry is one target of the build matrix. Triple is only passed to the
// toolchain; naming always goes through the Target.
type Entry struct {
	Target platform.Target
	Triple string
}

// Label returns the human-readable target label, e.g. "macos-aarch64".
func (e Entry) Label() string {
	return e.Target.String()
}

// DefaultMatrix returns the six release targets in build order.
func DefaultMatrix() []Entry {
	return []Entry{
		{Target: platform.Target{Platform: platform.Linux, Arch: platform.X86_64}, Triple: "x86_64-linux"},
		{Target: platform.Target{Platform: platform.Linux, Arch: platform.AArch64}, Triple: "aarch64-linux"},
		{Target: platform.Target{Platform: platform.MacOS, Arch: platform.X86_64}, Triple: "x86_64-macos"},
		{Target: platform.Target{Platform: platform.MacOS, Arch: platform.AArch64}, Triple: "aarch64-macos"},
		{Target: platform.Target{Platform: platform.Windows, Arch: platform.X86_64}, Triple: "x86_64-windows"},
		{Target: platform.Target{Platform: platform.Windows, Arch: platform.AArch64}, Triple: "aarch64-windows"},
	}
}
