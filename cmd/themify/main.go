// Command themify runs the prebuilt themify binary for the current platform,
// forwarding arguments, standard streams and the exit code.
package main

import (
	"os"

	"github.com/palette-themify/themify-dist/internal/cli"
)

func main() {
	os.Exit(cli.ExitCode(cli.ExecuteLauncher(os.Args[1:])))
}
