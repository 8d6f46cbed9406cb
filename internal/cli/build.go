package cli

import (
	"fmt"

	"github.com/palette-themify/themify-dist/internal/branding"
	"github.com/palette-themify/themify-dist/internal/builder"
	"github.com/palette-themify/themify-dist/internal/config"
	"github.com/spf13/cobra"
)

// NewBuildCommand returns the build orchestrator command. Per-target failures
// only show up in the summary; RunE fails for setup problems alone.
func NewBuildCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   branding.BaseName() + "-build",
		Short: "Cross-build " + branding.DisplayName() + " for every release target",
		Long: `Build the ` + branding.DisplayName() + ` executable once per target of the build matrix with
the ` + branding.Toolchain() + ` toolchain and collect the results in the binaries directory.

Targets are built one at a time. A failing target is reported in the final
summary and does not stop the remaining builds.`,
		Version:       info.String(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runBuild,
	}

	flags := cmd.Flags()
	flags.String(config.FlagName(config.KeyProjectRoot), "", "project root containing the build recipe (default: working directory)")
	flags.String(config.FlagName(config.KeyBinariesDir), "", "output directory for artifacts (default: <project-root>/binaries)")
	flags.String(config.FlagName(config.KeyToolchain), "", "toolchain executable (default: "+branding.Toolchain()+")")
	flags.String(config.FlagName(config.KeyOptimize), "", "toolchain optimize mode (default: "+config.DefaultOptimize+")")
	flags.String(config.FlagName(config.KeyMatrixFile), "", "YAML file overriding the built-in build matrix")
	flags.String(config.FlagName(config.KeyMinToolchainVersion), "", "fail before building if the toolchain is older than this version")

	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

func runBuild(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	matrix := builder.DefaultMatrix()
	if cfg.MatrixFile != "" {
		matrix, err = builder.LoadMatrix(cfg.MatrixFile)
		if err != nil {
			return err
		}
	}

	zig := &builder.ZigToolchain{
		Bin:         cfg.Toolchain,
		ProjectRoot: cfg.ProjectRoot,
		Optimize:    cfg.Optimize,
		BaseName:    branding.BaseName(),
		Stdout:      cmd.OutOrStdout(),
		Stderr:      cmd.ErrOrStderr(),
	}

	if cfg.MinToolchainVersion != "" {
		version, err := zig.Version(ctx)
		if err != nil {
			return err
		}
		if err := builder.CheckToolchainVersion(version, cfg.MinToolchainVersion); err != nil {
			return err
		}
	}

	o := &builder.Orchestrator{
		Matrix:    matrix,
		OutputDir: cfg.BinariesDir,
		BaseName:  branding.BaseName(),
		Toolchain: zig,
		Stdout:    cmd.OutOrStdout(),
		Stderr:    cmd.ErrOrStderr(),
	}
	_, err = o.Run(ctx)
	return err
}

// ExecuteBuild runs the build orchestrator.
func ExecuteBuild(info BuildInfo) error {
	return NewBuildCommand(info).Execute()
}
