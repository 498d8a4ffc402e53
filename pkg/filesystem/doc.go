// Package filesystem provides filesystem implementations for redo.
//
// This package contains implementations of the types.FS interface backed by
// afero: the real OS filesystem used by the commands and an in-memory
// filesystem used by tests.
package filesystem
