// Package lock provides advisory file locks used to serialise concurrent
// redo processes working on the same target or the same prereq ledger.
//
// Locks are flock(2) locks: they are released when the holding descriptor is
// closed, including when the process dies, so a crashed build never leaves a
// target locked.
package lock

import (
	"os"

	"github.com/arthur-debert/redo/pkg/errors"
	"golang.org/x/sys/unix"
)

// fder is implemented by files backed by an OS descriptor
type fder interface {
	Fd() uintptr
}

// Exclusive blocks until it holds an exclusive lock on f and returns the
// function releasing it. Files without a descriptor, such as in-memory test
// files, are not locked and get a no-op release.
func Exclusive(f interface{}) (func() error, error) {
	d, ok := f.(fder)
	if !ok {
		return func() error { return nil }, nil
	}
	fd := int(d.Fd())

	if err := flock(fd, unix.LOCK_EX); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileLock, "flock")
	}
	return func() error {
		if err := flock(fd, unix.LOCK_UN); err != nil {
			return errors.Wrap(err, errors.ErrFileLock, "funlock")
		}
		return nil
	}, nil
}

// TryExclusive is like Exclusive but fails immediately with held=false when
// another process holds the lock.
func TryExclusive(f interface{}) (release func() error, held bool, err error) {
	d, ok := f.(fder)
	if !ok {
		return func() error { return nil }, true, nil
	}
	fd := int(d.Fd())

	if err := flock(fd, unix.LOCK_EX|unix.LOCK_NB); err != nil {
		if err == unix.EWOULDBLOCK {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, errors.ErrFileLock, "flock")
	}
	return func() error {
		if err := flock(fd, unix.LOCK_UN); err != nil {
			return errors.Wrap(err, errors.ErrFileLock, "funlock")
		}
		return nil
	}, true, nil
}

// FileLock is an exclusive lock held on a dedicated lock file
type FileLock struct {
	path string
	file *os.File
}

// Acquire opens (creating if needed) the lock file at path and blocks until
// it holds an exclusive lock on it.
func Acquire(path string) (*FileLock, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "open lock %s", path)
	}
	if err := flock(int(f.Fd()), unix.LOCK_EX); err != nil {
		_ = f.Close()
		return nil, errors.Wrapf(err, errors.ErrFileLock, "flock %s", path)
	}
	return &FileLock{path: path, file: f}, nil
}

// Path returns the lock file path
func (l *FileLock) Path() string {
	return l.path
}

// Release drops the lock. The lock file is left in place.
func (l *FileLock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := flock(int(l.file.Fd()), unix.LOCK_UN)
	if cerr := l.file.Close(); err == nil {
		err = cerr
	}
	l.file = nil
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileLock, "release %s", l.path)
	}
	return nil
}

// flock retries on EINTR
func flock(fd int, how int) error {
	for {
		err := unix.Flock(fd, how)
		if err != unix.EINTR {
			return err
		}
	}
}
