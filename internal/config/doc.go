// Package config resolves runtime settings for the build orchestrator and the
// binaries directory override shared by the launcher and the install hook.
// Values come from command-line flags, THEMIFY_* environment variables and an
// optional themify.yaml in the project root, in that order of precedence.
package config
