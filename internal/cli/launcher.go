package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/palette-themify/themify-dist/internal/binaries"
	"github.com/palette-themify/themify-dist/internal/branding"
	"github.com/palette-themify/themify-dist/internal/launcher"
	"github.com/palette-themify/themify-dist/internal/platform"
	"github.com/spf13/cobra"
)

// hostDetectTimeout bounds the host lookup on the not-found path.
const hostDetectTimeout = 2 * time.Second

// NewLauncherCommand returns the root command of the themify launcher. Flag
// parsing is disabled so every argument, including --help, reaches the
// wrapped binary untouched.
func NewLauncherCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:                branding.BaseName() + " [args...]",
		Short:              branding.Description(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLauncher(cmd.ErrOrStderr(), args)
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// ExecuteLauncher runs the launcher with args (the process arguments without
// the program name).
func ExecuteLauncher(args []string) error {
	// The wrapped TUI is allowed to start from Explorer on Windows.
	cobra.MousetrapHelpText = ""

	if args == nil {
		args = []string{}
	}
	// Cobra intercepts its hidden completion commands even with flag parsing
	// disabled; those belong to the wrapped binary too.
	if len(args) > 0 && (args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd) {
		return runLauncher(os.Stderr, args)
	}
	cmd := NewLauncherCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func runLauncher(stderr io.Writer, args []string) error {
	root, err := binaries.DefaultRoot()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return &ExitError{Code: launcher.ExitFailure}
	}

	// Stdio stays nil so the child shares the process handles.
	l := &launcher.Launcher{Root: root, Host: describeHost}
	if code := l.Run(args); code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

func describeHost() string {
	ctx, cancel := context.WithTimeout(context.Background(), hostDetectTimeout)
	defer cancel()

	info, err := platform.DetectHost(ctx)
	if err != nil {
		return ""
	}
	return info.String()
}
