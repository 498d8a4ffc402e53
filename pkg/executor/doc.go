// Package executor provides the build execution engine for redo.
//
// The executor runs a resolved dofile as a child process and owns the
// staging file protocol: output is collected in a private file next to the
// target and only an exit status of zero with non-empty output publishes it,
// by renaming it over the target. Every other outcome leaves the target
// exactly as it was.
package executor
