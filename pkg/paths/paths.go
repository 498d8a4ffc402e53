package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/types"
)

// Environment variable names
const (
	// EnvParent names the target whose recipe is currently running
	EnvParent = "REDO_PARENT"

	// EnvVerbose enables diagnostic tracing when set to any value
	EnvVerbose = "REDO_VERBOSE"

	// EnvDofileTrace is exported to recipes when tracing is enabled
	EnvDofileTrace = "REDO_DOFILE_TRACE"

	// EnvConfig points at an explicit configuration file
	EnvConfig = "REDO_CONFIG"

	// EnvPath is the command search path handed to recipes
	EnvPath = "PATH"
)

// File naming conventions. These are shared by redo and redo-ifchange and
// by every recipe that cooperates with them, so they are not configurable
// except for the ledger suffix.
const (
	// DofileSuffix is appended to a target or default name to form a dofile name
	DofileSuffix = ".do"

	// DefaultDofileBase is the base name of the generic fallback dofiles
	DefaultDofileBase = "default"

	// StagingInfix separates the target name from the random staging suffix
	StagingInfix = ".tmp."

	// DefaultLedgerSuffix is appended to a parent target to name its ledger
	DefaultLedgerSuffix = ".prereq"

	// LockSuffix names the optional per-target lock file
	LockSuffix = ".lock"

	// DefaultRecipePath is the command search path recipes get after the
	// redo installation directory
	DefaultRecipePath = "/usr/bin"

	// DefaultMaxPath bounds every path redo derives, matching PATH_MAX on Linux
	DefaultMaxPath = 4096

	// RedoDirName is the directory name for redo-specific state
	RedoDirName = "redo"

	// LogFileName is the name of the log file
	LogFileName = "redo.log"
)

// stagingRandomLen is the length of the random part reserved for staging names
const stagingRandomLen = 6

// CheckLength fails with ErrTargetTooLong when name does not fit a path
// buffer of max bytes, terminator included.
func CheckLength(name string, max int) error {
	if max > 0 && len(name) >= max {
		return errors.Newf(errors.ErrTargetTooLong, "path too long (%d bytes, limit %d): %.64s...", len(name), max-1, name)
	}
	return nil
}

// CheckTarget validates that every name derived from target stays within max.
func CheckTarget(target types.Target, max int) error {
	if err := CheckLength(target.Path, max); err != nil {
		return err
	}
	if err := CheckLength(target.Path+DofileSuffix, max); err != nil {
		return err
	}
	return CheckLength(target.Path+StagingInfix+strings.Repeat("X", stagingRandomLen), max)
}

// DofileCandidates returns the dofile paths for target in resolution order:
// <target>.do, default<ext>.do (only when the target has an extension) and
// default.do. The generic candidates are looked up in workDir, or the
// process working directory when workDir is empty, never next to the target.
func DofileCandidates(target types.Target, workDir string) []types.Candidate {
	candidates := []types.Candidate{
		{Kind: types.CandidateSpecific, Path: inDir(workDir, target.Path+DofileSuffix)},
	}
	if target.Ext != "" {
		candidates = append(candidates, types.Candidate{
			Kind: types.CandidateExtension,
			Path: inDir(workDir, DefaultDofileBase+target.Ext+DofileSuffix),
		})
	}
	return append(candidates, types.Candidate{
		Kind: types.CandidateDefault,
		Path: inDir(workDir, DefaultDofileBase+DofileSuffix),
	})
}

// StagingPattern returns the CreateTemp pattern for target's staging file.
// The file is created in target.Dir so publishing it is a same-filesystem rename.
func StagingPattern(target types.Target) string {
	return target.Base + StagingInfix + "*"
}

// LedgerPath returns the prereq ledger of parent
func LedgerPath(parent, suffix string) string {
	if suffix == "" {
		suffix = DefaultLedgerSuffix
	}
	return parent + suffix
}

// LockPath returns the lock file guarding builds of target
func LockPath(target types.Target) string {
	return target.Path + LockSuffix
}

// InDir resolves a relative path against workDir. Absolute paths and an
// empty workDir leave path unchanged.
func InDir(workDir, path string) string {
	return inDir(workDir, path)
}

func inDir(workDir, path string) string {
	if workDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(workDir, path)
}

// ExecPrefix returns the directory holding the running redo executable
func ExecPrefix() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to locate redo executable")
	}
	return filepath.Dir(exe), nil
}

// RecipeSearchPath builds the PATH value handed to recipes
func RecipeSearchPath(execPrefix, recipePath string) string {
	switch {
	case execPrefix == "":
		return recipePath
	case recipePath == "":
		return execPrefix
	default:
		return execPrefix + string(os.PathListSeparator) + recipePath
	}
}

// LogFilePath returns the path to the log file
// It respects XDG_STATE_HOME through adrg/xdg, otherwise ~/.local/state/redo/
func LogFilePath() string {
	return filepath.Join(xdg.StateHome, RedoDirName, LogFileName)
}
