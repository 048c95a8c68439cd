package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "86", cfg.Theme.Accent)
	assert.Equal(t, 500, cfg.Console.MaxLine)
	assert.Equal(t, 100, cfg.SideBars.ExplorerRank)
	assert.NotEmpty(t, cfg.Console.Shell)
}

func TestLoad_PartialFileKeepsValuesAndFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "theme:\n  accent: \"99\"\nconsole:\n  shell: /bin/zsh\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "99", cfg.Theme.Accent)
	assert.Equal(t, "/bin/zsh", cfg.Console.Shell)
	assert.Equal(t, "205", cfg.Theme.Highlight, "unset values get defaults")
}

func TestLoad_InvalidYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{}
	cfg.Theme.Accent = "120"
	cfg.Explorer.Dir = "/tmp/project"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "120", loaded.Theme.Accent)
	assert.Equal(t, "/tmp/project", loaded.Explorer.Dir)
}
