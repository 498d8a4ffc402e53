// Package paths provides centralized path handling for redo.
//
// Every file name redo derives from a target lives here: dofile candidates,
// staging files, prereq ledgers and lock files, together with the locations
// redo itself uses (its installation prefix and its log file). Keeping the
// naming convention in one place is what lets the build and the dependency
// recorder agree on file names without calling each other.
package paths
