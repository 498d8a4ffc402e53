// Package core implements the redo operations on top of the resolver,
// executor and datastore packages.
//
// # Execution context
//
// Every operation takes an Env describing the invocation: the target whose
// recipe is running (if any), whether tracing is on, and the environment
// handed down to recipes. Env is built once from the process environment by
// FromEnviron and never read back from os.Getenv afterwards.
//
// # Operations
//
//   - Build resolves a target's dofile and runs it through the staging
//     file protocol (redo).
//   - IfChange records dependencies of the running parent target in its
//     prereq ledger (redo-ifchange).
//   - Deps reads ledgers back for inspection (redo-deps).
//
// Build returns the tagged BuildResult alongside an error; a failed recipe
// is reported both as a BuildFailed result and as a RECIPE_FAILED error so
// callers can map it straight to an exit status.
package core
