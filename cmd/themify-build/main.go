// Command themify-build cross-compiles themify for every release target and
// fills the binaries directory.
package main

import (
	"fmt"
	"os"

	"github.com/palette-themify/themify-dist/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := cli.ExecuteBuild(cli.BuildInfo{Version: version, Commit: commit, Date: date}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
