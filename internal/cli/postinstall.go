package cli

import (
	"fmt"

	"github.com/palette-themify/themify-dist/internal/binaries"
	"github.com/palette-themify/themify-dist/internal/branding"
	"github.com/palette-themify/themify-dist/internal/install"
	"github.com/spf13/cobra"
)

// NewPostinstallCommand returns the install hook command. It never returns an
// error from RunE: a failed hook must not fail the host package install.
func NewPostinstallCommand(info BuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:           branding.BaseName() + "-postinstall",
		Short:         "Make the " + branding.DisplayName() + " binary for this platform executable",
		Version:       info.String(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := binaries.DefaultRoot()
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not locate binaries directory: %v\n", err)
				return nil
			}

			hook := &install.Hook{
				Root:   root,
				Stdout: cmd.OutOrStdout(),
				Stderr: cmd.ErrOrStderr(),
			}
			hook.Run()
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// ExecutePostinstall runs the install hook.
func ExecutePostinstall(info BuildInfo) error {
	return NewPostinstallCommand(info).Execute()
}
