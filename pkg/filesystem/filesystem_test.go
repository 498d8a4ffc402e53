package filesystem_test

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/redo/pkg/filesystem"
	"github.com/arthur-debert/redo/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func implementations(t *testing.T) map[string]struct {
	fs  types.FS
	dir string
} {
	t.Helper()
	memDir := "/work"
	mem := filesystem.NewMemory()
	require.NoError(t, mem.WriteFile(filepath.Join(memDir, ".keep"), nil, 0644))

	return map[string]struct {
		fs  types.FS
		dir string
	}{
		"os":     {fs: filesystem.NewOS(), dir: t.TempDir()},
		"memory": {fs: mem, dir: memDir},
	}
}

func TestCreateTempUsesPattern(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			f, err := impl.fs.CreateTemp(impl.dir, "out.txt.tmp.*")
			require.NoError(t, err)
			defer f.Close()

			base := filepath.Base(f.Name())
			assert.True(t, strings.HasPrefix(base, "out.txt.tmp."), "got %s", base)
			assert.NotEqual(t, "out.txt.tmp.", base)
			assert.Equal(t, impl.dir, filepath.Dir(f.Name()))

			info, err := f.Stat()
			require.NoError(t, err)
			assert.Zero(t, info.Size())
		})
	}
}

func TestRenameReplacesExisting(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			src := filepath.Join(impl.dir, "staging")
			dst := filepath.Join(impl.dir, "target")
			require.NoError(t, impl.fs.WriteFile(src, []byte("new"), 0644))
			require.NoError(t, impl.fs.WriteFile(dst, []byte("old"), 0644))

			require.NoError(t, impl.fs.Rename(src, dst))

			data, err := impl.fs.ReadFile(dst)
			require.NoError(t, err)
			assert.Equal(t, "new", string(data))

			_, err = impl.fs.Stat(src)
			assert.True(t, os.IsNotExist(err))
		})
	}
}

func TestOpenFileAppendAndRead(t *testing.T) {
	for name, impl := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(impl.dir, "ledger")
			f, err := impl.fs.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
			require.NoError(t, err)

			_, err = io.WriteString(f, "a\n")
			require.NoError(t, err)
			_, err = f.Seek(0, io.SeekStart)
			require.NoError(t, err)

			data, err := io.ReadAll(f)
			require.NoError(t, err)
			assert.Equal(t, "a\n", string(data))
			require.NoError(t, f.Sync())
			require.NoError(t, f.Close())
		})
	}
}

func TestReadFileRejectsDirectory(t *testing.T) {
	fs := filesystem.NewOS()
	_, err := fs.ReadFile(t.TempDir())
	assert.Error(t, err)
}

func TestRemoveMissing(t *testing.T) {
	fs := filesystem.NewOS()
	err := fs.Remove(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, os.IsNotExist(err))
}
