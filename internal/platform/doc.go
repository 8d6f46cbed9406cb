// Package platform maps the running operating system and CPU architecture to
// the canonical target tags used in artifact names, builds those names, and
// wraps the platform-sensitive filesystem operations (permission bits) the
// install hook needs. Host details for diagnostics come from gopsutil.
package platform
