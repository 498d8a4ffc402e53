package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logPath := filepath.Join(t.TempDir(), "redo", "redo.log")

			SetupLogger(tt.verbosity, logPath)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file was not created")
		})
	}
}

func TestSetupLoggerWithoutFile(t *testing.T) {
	SetupLogger(0, "")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestSetupLoggerUnwritableFile(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	// The parent of the log path is a regular file, so creation fails and
	// logging falls back to the console.
	assert.NotPanics(t, func() {
		SetupLogger(0, filepath.Join(blocker, "redo.log"))
	})
}

func TestVerbosityFromEnv(t *testing.T) {
	assert.Equal(t, 0, VerbosityFromEnv(""))
	assert.Equal(t, 2, VerbosityFromEnv("1"))
	assert.Equal(t, 2, VerbosityFromEnv("yes"))
}
