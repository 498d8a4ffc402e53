// Package types defines the core types and interfaces used throughout redo.
// This includes the Target and Candidate value types, the tagged BuildResult
// produced by a build, and the FS interface the resolver, executor and
// datastore operate on.
package types
