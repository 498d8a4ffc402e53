package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/redo/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContentRoundTrips(t *testing.T) {
	clearEnv(t)

	cfg := config.Default()
	cfg.Recipe.ExecPrefix = "/opt/redo"
	cfg.Target.Lock = true

	content, err := config.GenerateConfigContent(cfg)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(content, "# redo configuration"))
	assert.Contains(t, content, "[recipe]")
	assert.Contains(t, content, "exec_prefix")
	assert.Contains(t, content, "/opt/redo")
	assert.NotContains(t, content, "Source")

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".redo.toml"), []byte(content), 0644))

	loaded, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)
	assert.Equal(t, cfg.Recipe, loaded.Recipe)
	assert.Equal(t, cfg.Target, loaded.Target)
	assert.Equal(t, cfg.Ledger, loaded.Ledger)
	assert.Equal(t, cfg.Log, loaded.Log)
}

func TestGetDefaultsContent(t *testing.T) {
	content := config.GetDefaultsContent()
	assert.Contains(t, content, "[recipe]")
	assert.Contains(t, content, `suffix = ".prereq"`)
}
