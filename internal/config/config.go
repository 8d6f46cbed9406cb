package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/palette-themify/themify-dist/internal/branding"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	fileName = "themify"
	fileType = "yaml"
)

// Config keys. Flags use the same names with dashes instead of underscores.
const (
	KeyBinariesDir         = "binaries_dir"
	KeyProjectRoot         = "project_root"
	KeyToolchain           = "toolchain"
	KeyOptimize            = "optimize"
	KeyMatrixFile          = "matrix_file"
	KeyMinToolchainVersion = "min_toolchain_version"
)

// DefaultOptimize is the release build mode passed to the toolchain.
const DefaultOptimize = "ReleaseFast"

// BinariesDirName is the directory that holds the per-target artifacts.
const BinariesDirName = "binaries"

// Config holds the resolved build settings. Paths are absolute.
type Config struct {
	ProjectRoot         string
	BinariesDir         string
	Toolchain           string
	Optimize            string
	MatrixFile          string // empty means the built-in matrix
	MinToolchainVersion string // empty disables the preflight check
}

// FlagName returns the command-line flag name for a config key.
func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeyToolchain, branding.Toolchain())
	v.SetDefault(KeyOptimize, DefaultOptimize)
	v.SetDefault(KeyBinariesDir, "")
	v.SetDefault(KeyProjectRoot, "")
	v.SetDefault(KeyMatrixFile, "")
	v.SetDefault(KeyMinToolchainVersion, "")
	return v
}

// Load resolves the build configuration. flags may be nil; any flag in it
// named after a config key takes precedence over environment and file values.
// The project root defaults to the working directory, and themify.yaml is read
// from it when present.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if flags != nil {
		for _, key := range []string{KeyBinariesDir, KeyProjectRoot, KeyToolchain, KeyOptimize, KeyMatrixFile, KeyMinToolchainVersion} {
			f := flags.Lookup(FlagName(key))
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag --%s: %w", f.Name, err)
			}
		}
	}

	root := v.GetString(KeyProjectRoot)
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		root = wd
	}
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving project root %s: %w", root, err)
	}

	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(root)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading %s.%s: %w", fileName, fileType, err)
		}
	}

	cfg := &Config{
		ProjectRoot:         root,
		BinariesDir:         resolvePath(root, v.GetString(KeyBinariesDir)),
		Toolchain:           v.GetString(KeyToolchain),
		Optimize:            v.GetString(KeyOptimize),
		MatrixFile:          resolvePath(root, v.GetString(KeyMatrixFile)),
		MinToolchainVersion: v.GetString(KeyMinToolchainVersion),
	}
	if cfg.BinariesDir == "" {
		cfg.BinariesDir = filepath.Join(root, BinariesDirName)
	}
	if cfg.Toolchain == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyToolchain)
	}
	return cfg, nil
}

// BinariesDirOverride returns the binaries directory set through
// THEMIFY_BINARIES_DIR, or "" when unset. The launcher and install hook
// consult only the environment, never a config file in the caller's cwd.
func BinariesDirOverride() string {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvPrefix())
	_ = v.BindEnv(KeyBinariesDir)
	return v.GetString(KeyBinariesDir)
}

// resolvePath makes p absolute relative to root. Empty stays empty.
func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
