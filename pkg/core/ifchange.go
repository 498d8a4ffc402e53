package core

import (
	"github.com/arthur-debert/redo/pkg/config"
	"github.com/arthur-debert/redo/pkg/datastore"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/types"
)

// IfChangeOptions contains options for recording dependencies
type IfChangeOptions struct {
	Children []string
	Env      Env

	// Config defaults to config.Default()
	Config *config.Config

	// WorkDir anchors the ledger path; empty means the process working directory
	WorkDir string

	// FS defaults to the OS filesystem
	FS types.FS
}

// IfChangeResult reports what IfChange did to the parent's ledger
type IfChangeResult struct {
	Parent string
	Ledger string

	// Added lists the children that were not recorded before
	Added []string
}

// IfChange records each child as a dependency of the parent named by
// opts.Env. The parent is checked before the children: without a parent
// nothing is written, whatever the arguments.
func IfChange(opts IfChangeOptions) (IfChangeResult, error) {
	logger := logging.GetLogger("core.ifchange")

	if !opts.Env.HasParent() {
		return IfChangeResult{}, errors.New(errors.ErrNoParent, "no REDO_PARENT")
	}
	if len(opts.Children) == 0 {
		return IfChangeResult{Parent: opts.Env.Parent}, errors.New(errors.ErrUsage, "missing target")
	}

	done := logging.LogOperationStart(logger, "record dependencies")
	defer done()

	store := newStore(opts.Config, opts.WorkDir, opts.FS)
	result := IfChangeResult{
		Parent: opts.Env.Parent,
		Ledger: store.LedgerPath(opts.Env.Parent),
	}

	added, err := store.Record(opts.Env.Parent, opts.Children)
	result.Added = added
	if err != nil {
		return result, err
	}

	logger.Debug().
		Str("parent", result.Parent).
		Str("ledger", result.Ledger).
		Strs("children", opts.Children).
		Strs("added", added).
		Msg("Dependencies recorded")

	// Rebuilding children whose content changed is not implemented; the
	// ledger is only kept up to date.
	return result, nil
}

func newStore(cfg *config.Config, workDir string, fs types.FS) datastore.DataStore {
	if cfg == nil {
		cfg = config.Default()
	}
	return datastore.New(datastore.Options{
		FS:      fs,
		WorkDir: workDir,
		Suffix:  cfg.Ledger.Suffix,
		Lock:    cfg.Ledger.Lock,
		MaxPath: cfg.Target.MaxPath,
	})
}
