// Package resolver finds the dofile that builds a target.
//
// Candidates are tried in a fixed order (<target>.do, default<ext>.do,
// default.do). The first one that exists must be executable: an existing but
// non-executable dofile is a misconfiguration and stops resolution instead
// of falling through to a more generic recipe.
package resolver

import (
	"os"

	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/filesystem"
	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/paths"
	"github.com/arthur-debert/redo/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the resolver
type Options struct {
	FS types.FS

	// WorkDir anchors relative targets and the generic default dofiles;
	// empty means the process working directory
	WorkDir string

	// MaxPath bounds target and dofile path lengths; 0 disables the check
	MaxPath int

	// Logger defaults to the "resolver" component logger
	Logger *zerolog.Logger
}

// Resolver maps targets to dofiles
type Resolver struct {
	fs      types.FS
	workDir string
	maxPath int
	logger  zerolog.Logger
}

// New creates a new resolver instance
func New(opts Options) *Resolver {
	logger := logging.GetLogger("resolver")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}

	return &Resolver{
		fs:      fs,
		workDir: opts.WorkDir,
		maxPath: opts.MaxPath,
		logger:  logger,
	}
}

// Resolve returns the dofile for target
func (r *Resolver) Resolve(target types.Target) (types.Dofile, error) {
	if err := paths.CheckTarget(target, r.maxPath); err != nil {
		return types.Dofile{}, err
	}

	for _, cand := range paths.DofileCandidates(target, r.workDir) {
		if err := paths.CheckLength(cand.Path, r.maxPath); err != nil {
			return types.Dofile{}, err
		}

		cand, err := r.probe(cand)
		if err != nil {
			return types.Dofile{}, err
		}

		r.logger.Trace().
			Str("candidate", cand.Path).
			Str("kind", cand.Kind.String()).
			Bool("exists", cand.Exists).
			Bool("executable", cand.Executable).
			Msg("Probed dofile candidate")

		if !cand.Exists {
			continue
		}
		if !cand.Executable {
			return types.Dofile{}, errors.Newf(errors.ErrDofileNotExecutable,
				"dofile exists but is not executable: %s", cand.Path).
				WithDetail("dofile", cand.Path)
		}

		return types.Dofile{Path: cand.Path, Kind: cand.Kind, Target: target}, nil
	}

	return types.Dofile{}, errors.New(errors.ErrNoDofile, "no dofile").
		WithDetail("target", target.Path)
}

// probe fills in what the filesystem knows about a candidate
func (r *Resolver) probe(cand types.Candidate) (types.Candidate, error) {
	info, err := r.fs.Stat(cand.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return cand, nil
		}
		return cand, errors.Wrapf(err, errors.ErrFileStat, "stat %s", cand.Path)
	}

	cand.Exists = true
	cand.Executable = info.Mode().Perm()&0100 != 0
	return cand, nil
}
