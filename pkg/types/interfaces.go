package types

import (
	"io"
	"io/fs"
)

// File is an open file handle as returned by FS. Both *os.File and
// afero.File satisfy it.
type File interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	Name() string
	Stat() (fs.FileInfo, error)
	Sync() error
}

// FS is the filesystem interface required for redo operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// CreateTemp creates a new file in dir whose name is pattern with the
	// last "*" replaced by a random string.
	CreateTemp(dir, pattern string) (File, error)

	// Other operations
	Rename(oldpath, newpath string) error
	Remove(name string) error
}
