// Command themify-postinstall marks the platform binary executable after the
// package is installed. It always exits 0.
package main

import (
	"github.com/palette-themify/themify-dist/internal/cli"
)

// version, commit, and date are set via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	_ = cli.ExecutePostinstall(cli.BuildInfo{Version: version, Commit: commit, Date: date})
}
