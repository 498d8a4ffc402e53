package types_test

import (
	"testing"

	"github.com/arthur-debert/redo/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNewTarget(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		wantDir  string
		wantBase string
		wantExt  string
		wantStem string
	}{
		{"bare_with_ext", "hello.txt", ".", "hello.txt", ".txt", "hello"},
		{"bare_no_ext", "all", ".", "all", "", "all"},
		{"nested", "src/x.o", "src", "x.o", ".o", "x"},
		{"multiple_dots", "out/pkg.tar.gz", "out", "pkg.tar.gz", ".gz", "pkg.tar"},
		{"dot_in_dir_only", "v1.2/README", "v1.2", "README", "", "README"},
		{"hidden_file", ".profile", ".", ".profile", ".profile", ""},
		{"absolute", "/tmp/build/a.c", "/tmp/build", "a.c", ".c", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := types.NewTarget(tt.path)

			assert.Equal(t, tt.path, target.Path)
			assert.Equal(t, tt.wantDir, target.Dir)
			assert.Equal(t, tt.wantBase, target.Base)
			assert.Equal(t, tt.wantExt, target.Ext)
			assert.Equal(t, tt.wantStem, target.Stem())
			assert.Equal(t, tt.path, target.String())
		})
	}
}

func TestBuildResultSucceeded(t *testing.T) {
	assert.True(t, types.BuildResult{Status: types.BuildCommitted}.Succeeded())
	assert.True(t, types.BuildResult{Status: types.BuildPhony}.Succeeded())
	assert.False(t, types.BuildResult{Status: types.BuildFailed}.Succeeded())
}

func TestCandidateKindString(t *testing.T) {
	assert.Equal(t, "specific", types.CandidateSpecific.String())
	assert.Equal(t, "extension", types.CandidateExtension.String())
	assert.Equal(t, "default", types.CandidateDefault.String())
	assert.Equal(t, "unknown", types.CandidateKind(0).String())
}
