package resolver_test

import (
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/arthur-debert/redo/pkg/errors"
	"github.com/arthur-debert/redo/pkg/filesystem"
	"github.com/arthur-debert/redo/pkg/resolver"
	"github.com/arthur-debert/redo/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const workDir = "/proj"

func newResolver(t *testing.T, files map[string]os.FileMode) *resolver.Resolver {
	t.Helper()
	memFS := filesystem.NewMemory()
	for name, mode := range files {
		require.NoError(t, memFS.WriteFile(workDir+"/"+name, []byte("#!/bin/sh\n"), mode))
	}
	return resolver.New(resolver.Options{FS: memFS, WorkDir: workDir, MaxPath: 4096})
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string]os.FileMode
		target   string
		wantPath string
		wantKind types.CandidateKind
	}{
		{
			name:     "target_specific",
			files:    map[string]os.FileMode{"hello.txt.do": 0755, "default.txt.do": 0755, "default.do": 0755},
			target:   "hello.txt",
			wantPath: "/proj/hello.txt.do",
			wantKind: types.CandidateSpecific,
		},
		{
			name:     "extension_default",
			files:    map[string]os.FileMode{"default.o.do": 0755, "default.do": 0755},
			target:   "x.o",
			wantPath: "/proj/default.o.do",
			wantKind: types.CandidateExtension,
		},
		{
			name:     "generic_default",
			files:    map[string]os.FileMode{"default.do": 0700},
			target:   "x.o",
			wantPath: "/proj/default.do",
			wantKind: types.CandidateDefault,
		},
		{
			name:     "no_extension_uses_generic_default",
			files:    map[string]os.FileMode{"default.do": 0755},
			target:   "all",
			wantPath: "/proj/default.do",
			wantKind: types.CandidateDefault,
		},
		{
			name:     "nested_target_specific",
			files:    map[string]os.FileMode{"src/x.o.do": 0755, "default.o.do": 0755},
			target:   "src/x.o",
			wantPath: "/proj/src/x.o.do",
			wantKind: types.CandidateSpecific,
		},
		{
			name:     "nested_target_defaults_from_workdir",
			files:    map[string]os.FileMode{"default.o.do": 0755, "src/default.o.do": 0755},
			target:   "src/x.o",
			wantPath: "/proj/default.o.do",
			wantKind: types.CandidateExtension,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newResolver(t, tt.files)

			dofile, err := r.Resolve(types.NewTarget(tt.target))
			require.NoError(t, err)
			assert.Equal(t, tt.wantPath, dofile.Path)
			assert.Equal(t, tt.wantKind, dofile.Kind)
			assert.Equal(t, tt.target, dofile.Target.Path)
		})
	}
}

func TestResolveNotExecutableDoesNotFallThrough(t *testing.T) {
	r := newResolver(t, map[string]os.FileMode{
		"hello.txt.do": 0644,
		"default.do":   0755,
	})

	_, err := r.Resolve(types.NewTarget("hello.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDofileNotExecutable))
	assert.Contains(t, err.Error(), "/proj/hello.txt.do")
	assert.Equal(t, "/proj/hello.txt.do", errors.GetErrorDetails(err)["dofile"])
}

func TestResolveOwnerExecuteBitRequired(t *testing.T) {
	r := newResolver(t, map[string]os.FileMode{"default.do": 0655})

	_, err := r.Resolve(types.NewTarget("x"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrDofileNotExecutable))
}

func TestResolveNoDofile(t *testing.T) {
	r := newResolver(t, map[string]os.FileMode{"other.do": 0755})

	_, err := r.Resolve(types.NewTarget("hello.txt"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoDofile))
	assert.Equal(t, "no dofile", err.Error())
}

func TestResolveTargetTooLong(t *testing.T) {
	r := newResolver(t, map[string]os.FileMode{"default.do": 0755})

	_, err := r.Resolve(types.NewTarget(strings.Repeat("x", 5000)))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTargetTooLong))
}

// statFS is a types.FS whose Stat is scripted through testify/mock
type statFS struct {
	types.FS
	mock.Mock
}

func (m *statFS) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(fs.FileInfo), args.Error(1)
}

func TestResolveStatErrorIsFatal(t *testing.T) {
	m := &statFS{FS: filesystem.NewMemory()}
	m.On("Stat", "/proj/x.o.do").Return(nil, os.ErrNotExist)
	m.On("Stat", "/proj/default.o.do").Return(nil, &fs.PathError{Op: "stat", Path: "/proj/default.o.do", Err: fs.ErrPermission})

	r := resolver.New(resolver.Options{FS: m, WorkDir: workDir})

	_, err := r.Resolve(types.NewTarget("x.o"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileStat))
	assert.Contains(t, err.Error(), "stat /proj/default.o.do")

	// resolution stopped before default.do
	m.AssertNotCalled(t, "Stat", "/proj/default.do")
	m.AssertExpectations(t)
}
