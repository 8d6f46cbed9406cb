// Package branding provides compile-time identity values for the themify
// distribution shim.
//
// The values live in branding.yaml next to this file and are baked into every
// binary with //go:embed, so the launcher, the install hook and the build
// orchestrator agree on the artifact base name.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	BaseName    string `yaml:"base_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	EnvPrefix   string `yaml:"env_prefix"`
	SourceRepo  string `yaml:"source_repo"`
	SourceDir   string `yaml:"source_dir"`
	Toolchain   string `yaml:"toolchain"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is empty.
		defaults = brand{
			BaseName:    "themify",
			DisplayName: "Themify",
			Description: "Terminal palette and theme generator",
			EnvPrefix:   "THEMIFY",
			SourceRepo:  "https://github.com/BeratHundurel/palette-themify-tui",
			SourceDir:   "palette-themify",
			Toolchain:   "zig",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// BaseName returns the fixed product identifier used in artifact names (e.g., "themify").
func BaseName() string { load(); return defaults.BaseName }

// DisplayName returns the human-readable product name (e.g., "Themify").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// EnvPrefix returns the environment variable prefix (e.g., "THEMIFY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// SourceRepo returns the git URL printed in build-from-source instructions.
func SourceRepo() string { load(); return defaults.SourceRepo }

// SourceDir returns the directory a fresh clone of SourceRepo lands in.
func SourceDir() string { load(); return defaults.SourceDir }

// Toolchain returns the default cross-compilation toolchain executable.
func Toolchain() string { load(); return defaults.Toolchain }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("binaries_dir") → "THEMIFY_BINARIES_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
