package core

import (
	"github.com/arthur-debert/redo/pkg/config"
	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/types"
)

// DepsOptions contains options for reading prereq ledgers
type DepsOptions struct {
	// Parents to inspect; empty means the parent named by Env
	Parents []string
	Env     Env

	// Config defaults to config.Default()
	Config *config.Config

	// WorkDir anchors the ledger paths; empty means the process working directory
	WorkDir string

	// FS defaults to the OS filesystem
	FS types.FS
}

// Ledger is the recorded dependency list of one parent target
type Ledger struct {
	Parent  string   `json:"parent" yaml:"parent"`
	Path    string   `json:"ledger" yaml:"ledger"`
	Entries []string `json:"entries" yaml:"entries"`
}

// Deps reads the prereq ledger of each requested parent. A parent that has
// no ledger is reported with no entries.
func Deps(opts DepsOptions) ([]Ledger, error) {
	parents := opts.Parents
	if len(parents) == 0 {
		if !opts.Env.HasParent() {
			return nil, errors.New(errors.ErrUsage, "missing target")
		}
		parents = []string{opts.Env.Parent}
	}

	store := newStore(opts.Config, opts.WorkDir, opts.FS)
	ledgers := make([]Ledger, 0, len(parents))
	for _, parent := range parents {
		entries, err := store.Entries(parent)
		if err != nil {
			return ledgers, err
		}
		if entries == nil {
			entries = []string{}
		}
		ledgers = append(ledgers, Ledger{
			Parent:  parent,
			Path:    store.LedgerPath(parent),
			Entries: entries,
		})
	}
	return ledgers, nil
}
