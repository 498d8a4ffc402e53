package datastore

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/filesystem"
	"github.com/arthur-debert/redo/pkg/lock"
	"github.com/arthur-debert/redo/pkg/logging"
	"github.com/arthur-debert/redo/pkg/paths"
	"github.com/arthur-debert/redo/pkg/types"
	"github.com/rs/zerolog"
)

// Options contains configuration for the filesystem data store
type Options struct {
	FS types.FS

	// WorkDir anchors relative parent names; empty means the process
	// working directory
	WorkDir string

	// Suffix is appended to a parent name to form its ledger name
	Suffix string

	// Lock takes an exclusive flock on the ledger while it is updated
	Lock bool

	// MaxPath bounds the ledger path; 0 disables the check
	MaxPath int

	// Logger defaults to the "datastore" component logger
	Logger *zerolog.Logger
}

type filesystemDataStore struct {
	fs      types.FS
	workDir string
	suffix  string
	lock    bool
	maxPath int
	logger  zerolog.Logger
}

// New creates a new DataStore instance backed by ledger files.
func New(opts Options) DataStore {
	logger := logging.GetLogger("datastore")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	fs := opts.FS
	if fs == nil {
		fs = filesystem.NewOS()
	}
	suffix := opts.Suffix
	if suffix == "" {
		suffix = paths.DefaultLedgerSuffix
	}
	return &filesystemDataStore{
		fs:      fs,
		workDir: opts.WorkDir,
		suffix:  suffix,
		lock:    opts.Lock,
		maxPath: opts.MaxPath,
		logger:  logger,
	}
}

func (s *filesystemDataStore) LedgerPath(parent string) string {
	return paths.LedgerPath(parent, s.suffix)
}

func (s *filesystemDataStore) Record(parent string, children []string) (added []string, err error) {
	ledger := s.LedgerPath(parent)
	if err := paths.CheckLength(ledger, s.maxPath); err != nil {
		return nil, err
	}

	f, err := s.fs.OpenFile(paths.InDir(s.workDir, ledger), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "open %s", ledger).
			WithDetail("ledger", ledger)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, errors.ErrFileWrite, "close %s", ledger)
		}
	}()

	if s.lock {
		release, held, err := lock.TryExclusive(f)
		if err != nil {
			return nil, err
		}
		if !held {
			s.logger.Debug().Str("ledger", ledger).Msg("Waiting for ledger lock")
			if release, err = lock.Exclusive(f); err != nil {
				return nil, err
			}
		}
		defer func() { _ = release() }()
	}

	for _, child := range children {
		present, err := contains(f, child)
		if err != nil {
			return added, errors.Wrapf(err, errors.ErrFileRead, "read %s", ledger).
				WithDetail("ledger", ledger)
		}
		if present {
			s.logger.Trace().Str("parent", parent).Str("child", child).Msg("Dependency already recorded")
			continue
		}

		if _, err := f.Seek(0, io.SeekEnd); err != nil {
			return added, errors.Wrapf(err, errors.ErrFileWrite, "seek %s", ledger)
		}
		if _, err := io.WriteString(f, child+"\n"); err != nil {
			return added, errors.Wrapf(err, errors.ErrFileWrite, "write %s", ledger).
				WithDetail("ledger", ledger)
		}
		added = append(added, child)
		s.logger.Debug().Str("parent", parent).Str("child", child).Msg("Recorded dependency")
	}

	if err := f.Sync(); err != nil {
		return added, errors.Wrapf(err, errors.ErrFileSync, "fsync %s", ledger)
	}
	return added, nil
}

func (s *filesystemDataStore) Entries(parent string) ([]string, error) {
	ledger := s.LedgerPath(parent)
	data, err := s.fs.ReadFile(paths.InDir(s.workDir, ledger))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "read %s", ledger).
			WithDetail("ledger", ledger)
	}

	var entries []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			entries = append(entries, line)
		}
	}
	return entries, nil
}

// contains scans f from the start for a line beginning with name
func contains(f types.File, name string) (bool, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" && strings.HasPrefix(line, name) {
			return true, nil
		}
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
	}
}
