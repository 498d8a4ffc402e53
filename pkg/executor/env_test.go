package executor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEnv(t *testing.T) {
	tests := []struct {
		name      string
		base      []string
		overrides map[string]string
		want      []string
	}{
		{
			name:      "replaces_in_place",
			base:      []string{"HOME=/root", "PATH=/bin", "TERM=xterm"},
			overrides: map[string]string{"PATH": "/opt/redo:/usr/bin"},
			want:      []string{"HOME=/root", "PATH=/opt/redo:/usr/bin", "TERM=xterm"},
		},
		{
			name:      "appends_new_sorted",
			base:      []string{"HOME=/root"},
			overrides: map[string]string{"REDO_PARENT": "out", "PATH": "/usr/bin"},
			want:      []string{"HOME=/root", "PATH=/usr/bin", "REDO_PARENT=out"},
		},
		{
			name:      "drops_duplicate_overridden_entries",
			base:      []string{"REDO_PARENT=old", "X=1", "REDO_PARENT=older"},
			overrides: map[string]string{"REDO_PARENT": "new"},
			want:      []string{"REDO_PARENT=new", "X=1"},
		},
		{
			name:      "keeps_unrelated_duplicates",
			base:      []string{"X=1", "X=2"},
			overrides: nil,
			want:      []string{"X=1", "X=2"},
		},
		{
			name:      "empty_value",
			base:      []string{"REDO_DOFILE_TRACE=1"},
			overrides: map[string]string{"REDO_DOFILE_TRACE": ""},
			want:      []string{"REDO_DOFILE_TRACE="},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mergeEnv(tt.base, tt.overrides))
		})
	}
}
