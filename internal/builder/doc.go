// Package builder cross-compiles the wrapped executable for every entry of a
// build matrix and collects the artifacts into the binaries directory under
// their canonical names.
//
// Entries are built one at a time with the toolchain's output streamed to the
// operator. A failing entry is recorded and the run moves on; the outcome of
// the whole matrix is reported once, as a Summary, at the end.
package builder
