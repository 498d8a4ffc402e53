package core

import (
	"strings"

	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/paths"
)

// Env is the execution context of one redo invocation
type Env struct {
	// Parent is the target whose recipe invoked us, from REDO_PARENT
	Parent string

	// Verbose is set by a non-empty REDO_VERBOSE
	Verbose bool

	// Verbosity is the log verbosity REDO_VERBOSE implies
	Verbosity int

	// Environ is the environment recipes inherit
	Environ []string
}

// FromEnviron builds the execution context from a process environment in
// os.Environ form.
func FromEnviron(environ []string) Env {
	env := Env{Environ: environ}
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		switch name {
		case paths.EnvParent:
			env.Parent = value
		case paths.EnvVerbose:
			env.Verbose = value != ""
			env.Verbosity = logging.VerbosityFromEnv(value)
		}
	}
	return env
}

// HasParent reports whether the invocation runs under a parent recipe
func (e Env) HasParent() bool {
	return e.Parent != ""
}

// Trace reports whether recipes get REDO_DOFILE_TRACE=1
func (e Env) Trace() bool {
	return e.Verbose
}
