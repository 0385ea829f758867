package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFile_Missing(t *testing.T) {
	cfg, err := loadConfigFile(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadConfigFile_Full(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
defaults:
  engine: Godot
  platforms: Linux,Web
  root_dir: ~/Projects
clean:
  age_days: 30
  exclude:
    - Backups
    - AutoSave
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := loadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Godot", cfg.Defaults.Engine)
	assert.Equal(t, "Linux,Web", cfg.Defaults.Platforms)
	assert.Equal(t, "~/Projects", cfg.Defaults.RootDir)
	assert.Equal(t, 30, cfg.Clean.AgeDays)
	assert.Equal(t, []string{"Backups", "AutoSave"}, cfg.Clean.Exclude)
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("defaults: [not: a: mapping"), 0600))

	_, err := loadConfigFile(path)
	assert.Error(t, err)
}
