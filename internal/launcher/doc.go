// Package launcher resolves the themify artifact for the running platform and
// delegates the whole process to it: argv is forwarded verbatim, the three
// standard streams are shared with the child, and the child's exit code
// becomes the launcher's own.
package launcher
