package executor

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/filesystem"
	"github.com/arthur-debert/redo/pkg/lock"
	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/paths"
	"github.com/arthur-debert/redo/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the executor
type Options struct {
	// FS is used for the staging file; it must be the OS filesystem in
	// production since the recipe process writes to the staging path
	FS types.FS

	// WorkDir is the directory recipes run in and relative targets are
	// resolved against; empty means the process working directory
	WorkDir string

	// Env is the environment recipes inherit; nil means os.Environ()
	Env []string

	// SearchPath replaces PATH for recipes
	SearchPath string

	// Trace exports REDO_DOFILE_TRACE=1 to recipes
	Trace bool

	// LockTargets serialises builds of the same target through <target>.lock
	LockTargets bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger defaults to the "executor" component logger
	Logger *zerolog.Logger
}

// Executor runs recipes and publishes their output
type Executor struct {
	fs          types.FS
	workDir     string
	env         []string
	searchPath  string
	trace       bool
	lockTargets bool
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	logger      zerolog.Logger
}

// New creates a new executor instance
func New(opts Options) *Executor {
	logger := logging.GetLogger("executor")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	env := opts.Env
	if env == nil {
		env = os.Environ()
	}

	e := &Executor{
		fs:          fs,
		workDir:     opts.WorkDir,
		env:         env,
		searchPath:  opts.SearchPath,
		trace:       opts.Trace,
		lockTargets: opts.LockTargets,
		stdin:       opts.Stdin,
		stdout:      opts.Stdout,
		stderr:      opts.Stderr,
		logger:      logger,
	}
	if e.stdin == nil {
		e.stdin = os.Stdin
	}
	if e.stdout == nil {
		e.stdout = os.Stdout
	}
	if e.stderr == nil {
		e.stderr = os.Stderr
	}
	return e
}

// Build runs dofile for its target. A recipe that fails yields a result with
// Status BuildFailed and a nil error; the error return is reserved for
// filesystem failures around the staging file, which abort the build.
func (e *Executor) Build(ctx context.Context, dofile types.Dofile) (types.BuildResult, error) {
	target := dofile.Target
	result := types.BuildResult{Target: target, Dofile: dofile, ExitCode: -1}

	if e.lockTargets {
		l, err := lock.Acquire(paths.InDir(e.workDir, paths.LockPath(target)))
		if err != nil {
			return result, err
		}
		defer func() {
			if err := l.Release(); err != nil {
				e.logger.Warn().Err(err).Str("lock", l.Path()).Msg("Failed to release target lock")
			}
		}()
	}

	staging, err := e.fs.CreateTemp(paths.InDir(e.workDir, target.Dir), paths.StagingPattern(target))
	if err != nil {
		return result, errors.Wrap(err, errors.ErrFileCreate, "mkstemp")
	}
	result.StagingPath = staging.Name()

	// Until the staging file has been renamed or removed on purpose, any
	// early return discards it.
	settled := false
	defer func() {
		if !settled {
			_ = staging.Close()
			_ = e.fs.Remove(result.StagingPath)
		}
	}()

	start := time.Now()
	runErr := e.run(ctx, dofile, result.StagingPath)
	result.Duration = time.Since(start)

	if runErr != nil {
		result.Status = types.BuildFailed
		result.ExitCode, result.Cause = e.failure(dofile, runErr)

		_ = staging.Close()
		settled = true
		if err := e.removeStaging(result.StagingPath); err != nil {
			return result, err
		}

		e.logger.Debug().
			Err(result.Cause).
			Str("target", target.Path).
			Int("exit_code", result.ExitCode).
			Dur("duration", result.Duration).
			Msg("Recipe failed, target left untouched")
		return result, nil
	}
	result.ExitCode = 0

	if err := staging.Sync(); err != nil {
		return result, errors.Wrap(err, errors.ErrFileSync, "fsync")
	}
	if err := staging.Close(); err != nil {
		return result, errors.Wrap(err, errors.ErrFileSync, "close")
	}

	// The recipe may have replaced the file at the staging path, so its
	// size is taken from the path rather than the descriptor.
	info, err := e.fs.Stat(result.StagingPath)
	switch {
	case err == nil:
		result.Size = info.Size()
	case os.IsNotExist(err):
		result.Size = 0
	default:
		return result, errors.Wrap(err, errors.ErrFileStat, "fstat")
	}

	settled = true
	if result.Size == 0 {
		result.Status = types.BuildPhony
		if err := e.removeStaging(result.StagingPath); err != nil {
			return result, err
		}
		e.logger.Debug().
			Str("target", target.Path).
			Dur("duration", result.Duration).
			Msg("Recipe produced no output, target unchanged")
		return result, nil
	}

	targetPath := paths.InDir(e.workDir, target.Path)
	if err := e.fs.Rename(result.StagingPath, targetPath); err != nil {
		_ = e.fs.Remove(result.StagingPath)
		return result, errors.Wrap(err, errors.ErrFileRename, "rename")
	}
	result.Status = types.BuildCommitted

	e.logger.Debug().
		Str("target", target.Path).
		Int64("size", result.Size).
		Dur("duration", result.Duration).
		Msg("Target committed")
	return result, nil
}

// run starts the recipe and waits for it
func (e *Executor) run(ctx context.Context, dofile types.Dofile, stagingPath string) error {
	target := dofile.Target

	args := []string{target.Path, target.Stem(), stagingPath}
	cmd := exec.CommandContext(ctx, dofile.Path, args...)
	// Dofiles are executed by path relative to Dir, never looked up in PATH
	cmd.Path = dofile.Path
	cmd.Err = nil
	cmd.Dir = e.workDir
	cmd.Env = mergeEnv(e.env, e.childEnv(target))
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	logging.LogCommand(e.logger, dofile.Path, args)
	return cmd.Run()
}

// childEnv returns the variables redo sets for a recipe
func (e *Executor) childEnv(target types.Target) map[string]string {
	env := map[string]string{
		paths.EnvPath:   e.searchPath,
		paths.EnvParent: target.Path,
	}
	if e.trace {
		env[paths.EnvDofileTrace] = "1"
	}
	return env
}

// failure turns the error from running a recipe into an exit code and cause
func (e *Executor) failure(dofile types.Dofile, runErr error) (int, error) {
	var exitErr *exec.ExitError
	if stderrors.As(runErr, &exitErr) {
		code := exitErr.ExitCode()
		if code < 0 {
			return code, errors.Wrapf(runErr, errors.ErrRecipeFailed, "dofile %s terminated abnormally", dofile.Path).
				WithDetail("dofile", dofile.Path)
		}
		return code, errors.Newf(errors.ErrRecipeFailed, "dofile %s exited with status %d", dofile.Path, code).
			WithDetail("dofile", dofile.Path).
			WithDetail("exit_code", code)
	}
	return -1, errors.Wrapf(runErr, errors.ErrRecipeStart, "exec dofile: %s", dofile.Path).
		WithDetail("dofile", dofile.Path)
}

// removeStaging deletes the staging file. A recipe is free to delete its own
// output file, so a missing file is not an error.
func (e *Executor) removeStaging(path string) error {
	if err := e.fs.Remove(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, errors.ErrFileRemove, "remove")
	}
	return nil
}
