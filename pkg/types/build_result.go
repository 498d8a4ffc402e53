package types

import (
	"time"
)

// BuildStatus is the outcome of one build invocation
type BuildStatus string

const (
	// BuildCommitted means the recipe succeeded and its output replaced the target
	BuildCommitted BuildStatus = "committed"

	// BuildPhony means the recipe succeeded without output; the target was left as it was
	BuildPhony BuildStatus = "phony"

	// BuildFailed means the recipe exited non-zero or was killed; the target was left as it was
	BuildFailed BuildStatus = "failed"
)

// BuildResult represents the outcome of running a recipe for a target
type BuildResult struct {
	Target Target
	Dofile Dofile
	Status BuildStatus

	// StagingPath is the temporary output file used for this build. It no
	// longer exists when the result is returned.
	StagingPath string

	// Size is the number of bytes the recipe wrote to the staging file
	Size int64

	// ExitCode is the recipe's exit status, or -1 when it was killed by a signal
	ExitCode int

	// Cause explains a failed build
	Cause error

	// Duration is how long the recipe ran
	Duration time.Duration
}

// Succeeded reports whether the build counts as successful
func (r BuildResult) Succeeded() bool {
	return r.Status == BuildCommitted || r.Status == BuildPhony
}
