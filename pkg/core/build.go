package core

import (
	"context"
	"io"

	"github.com/arthur-debert/redo/pkg/config"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/executor"
	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/paths"
	"github.com/arthur-debert/redo/pkg/resolver"
	"github.com/arthur-debert/redo/pkg/types"
)

// BuildOptions contains options for building a target
type BuildOptions struct {
	Target string
	Env    Env

	// Config defaults to config.Default()
	Config *config.Config

	// WorkDir anchors relative paths; empty means the process working directory
	WorkDir string

	// FS defaults to the OS filesystem
	FS types.FS

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Build resolves the dofile for opts.Target and runs it. A recipe that
// exits non-zero, is killed, or cannot be started yields a BuildFailed
// result together with its cause as the error.
func Build(ctx context.Context, opts BuildOptions) (types.BuildResult, error) {
	logger := logging.GetLogger("core.build")

	if opts.Target == "" {
		return types.BuildResult{}, errors.New(errors.ErrUsage, "missing target")
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	target := types.NewTarget(opts.Target)
	logger.Debug().
		Str("target", target.Path).
		Str("parent", opts.Env.Parent).
		Str("config", cfg.String()).
		Msg("Starting build")

	dofile, err := resolver.New(resolver.Options{
		FS:      opts.FS,
		WorkDir: opts.WorkDir,
		MaxPath: cfg.Target.MaxPath,
	}).Resolve(target)
	if err != nil {
		return types.BuildResult{Target: target}, err
	}
	logger.Debug().Str("dofile", dofile.Path).Msgf("resolved dofile: %s", dofile.Path)

	searchPath, err := recipeSearchPath(cfg)
	if err != nil {
		return types.BuildResult{Target: target, Dofile: dofile}, err
	}

	result, err := executor.New(executor.Options{
		FS:          opts.FS,
		WorkDir:     opts.WorkDir,
		Env:         opts.Env.Environ,
		SearchPath:  searchPath,
		Trace:       opts.Env.Trace(),
		LockTargets: cfg.Target.Lock,
		Stdin:       opts.Stdin,
		Stdout:      opts.Stdout,
		Stderr:      opts.Stderr,
	}).Build(ctx, dofile)
	if err != nil {
		return result, err
	}

	logger.Info().
		Str("target", target.Path).
		Str("status", string(result.Status)).
		Int("exit_code", result.ExitCode).
		Dur("duration", result.Duration).
		Msg("Build finished")

	if result.Status == types.BuildFailed {
		return result, result.Cause
	}
	return result, nil
}

// recipeSearchPath returns the PATH handed to recipes. Without a configured
// exec prefix it is the directory of the running redo binary.
func recipeSearchPath(cfg *config.Config) (string, error) {
	prefix := cfg.Recipe.ExecPrefix
	if prefix == "" {
		var err error
		if prefix, err = paths.ExecPrefix(); err != nil {
			return "", err
		}
	}
	return paths.RecipeSearchPath(prefix, cfg.Recipe.Path), nil
}
