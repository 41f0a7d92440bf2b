package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config search path at an empty home directory.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	return home
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, strings.HasSuffix(cfg.DBPath, "skillpilot.db"))
	assert.Empty(t, cfg.CatalogPath)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, 2.0, cfg.DefaultHours)
}

func TestLoadConfig_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".skillpilot", "skillpilot.db"), cfg.DBPath)
	assert.Equal(t, 2.0, cfg.DefaultHours)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDB, "/tmp/sp.db")
	t.Setenv(EnvCatalog, "/etc/skillpilot/catalogs")
	t.Setenv(EnvLogUseCases, "true")
	t.Setenv(EnvDefaultHours, "1.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/sp.db", cfg.DBPath)
	assert.Equal(t, "/etc/skillpilot/catalogs", cfg.CatalogPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, 1.5, cfg.DefaultHours)
}

func TestLoadConfig_InvalidValuesIgnored(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogUseCases, "maybe")
	t.Setenv(EnvDefaultHours, "lots")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, 2.0, cfg.DefaultHours)
}

func TestLoadConfig_OutOfRangeHoursIgnored(t *testing.T) {
	isolate(t)
	for _, v := range []string{"0", "-1", "13"} {
		t.Setenv(EnvDefaultHours, v)
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 2.0, cfg.DefaultHours, v)
	}
}

func TestLoadConfig_TOMLFileInHomeDir(t *testing.T) {
	home := isolate(t)
	writeConfig(t, filepath.Join(home, ".skillpilot"), "config.toml", `
db = "/data/skillpilot.db"
default_hours = 3
log_usecases = true
`)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/data/skillpilot.db", cfg.DBPath)
	assert.Equal(t, 3.0, cfg.DefaultHours)
	assert.True(t, cfg.LogUseCases)
}

func TestLoadConfig_EnvWinsOverFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "skillpilot.yaml", "db: /from/file.db\ncatalog: /from/file.json\n")
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvDB, "/from/env.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.Equal(t, "/from/file.json", cfg.CatalogPath)
}

func TestLoadConfig_ExplicitFileMustExist(t *testing.T) {
	isolate(t)
	t.Setenv(EnvConfig, filepath.Join(t.TempDir(), "missing.toml"))

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	isolate(t)
	path := writeConfig(t, t.TempDir(), "bad.toml", "db = \n")
	t.Setenv(EnvConfig, path)

	_, err := LoadConfig()
	require.Error(t, err)
}
