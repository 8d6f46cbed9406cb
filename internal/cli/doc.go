// Package cli defines the Cobra commands behind the three themify binaries:
// the launcher, the post-install hook and the build orchestrator. Each file
// builds one command. Command implementations delegate to internal packages
// for the actual work and only handle flags, configuration and exit codes.
package cli
