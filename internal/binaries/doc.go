// Package binaries locates prebuilt artifacts inside the binaries directory
// shipped next to the launcher. The launcher treats a missing artifact as
// fatal; the install hook treats it as "nothing to do".
package binaries
