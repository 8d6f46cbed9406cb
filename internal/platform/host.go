package platform

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

// HostInfo carries the operating system details used in diagnostics.
type HostInfo struct {
	Platform        string // distro or OS name, e.g. "ubuntu", "darwin"
	PlatformVersion string // e.g. "22.04"
	KernelArch      string // e.g. "x86_64"
}

// DetectHost queries the host for distribution and kernel details. Callers
// treat failures as "no extra detail" and keep going.
func DetectHost(ctx context.Context) (*HostInfo, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("host detection cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("host detection failed: %w", err)
	}
	return &HostInfo{
		Platform:        strings.TrimSpace(info.Platform),
		PlatformVersion: strings.TrimSpace(info.PlatformVersion),
		KernelArch:      strings.TrimSpace(info.KernelArch),
	}, nil
}

// String renders the info as "ubuntu 22.04 (kernel x86_64)", skipping empty parts.
func (h *HostInfo) String() string {
	if h == nil {
		return ""
	}
	var parts []string
	if h.Platform != "" {
		parts = append(parts, h.Platform)
	}
	if h.PlatformVersion != "" {
		parts = append(parts, h.PlatformVersion)
	}
	s := strings.Join(parts, " ")
	if h.KernelArch != "" {
		if s != "" {
			s += " "
		}
		s += "(kernel " + h.KernelArch + ")"
	}
	return s
}
