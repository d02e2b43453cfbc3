package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	return dir
}

func TestPaths(t *testing.T) {
	dir := isolate(t)
	assert.Equal(t, filepath.Join(dir, "config", "cardsmith", "config.toml"), GetConfigFilePath())
	assert.Equal(t, filepath.Join(dir, "data", "cardsmith", "libraries"), GetLibraryRoot())
	assert.Equal(t, filepath.Join(dir, "cache", "cardsmith", "art_cache"), GetCacheDir())
}

func TestXDGFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", "")
	assert.Equal(t, filepath.Join(home, ".cache"), GetXDGCacheHome())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "starter", cfg.DefaultLibrary)
	assert.True(t, cfg.Tint)
	assert.False(t, cfg.StrictArt)
	assert.FileExists(t, GetConfigFilePath())
}

func TestLoadConfigReadsFile(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("default_library = \"mine\"\nstrict_art = true\n"), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, &Config{DefaultLibrary: "mine", StrictArt: true}, cfg)
}

func TestLoadConfigBadFile(t *testing.T) {
	isolate(t)
	path := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("default_library = ["), 0644))

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "error decoding config file")
}

func TestSetDefaultLibrary(t *testing.T) {
	isolate(t)
	require.NoError(t, SetDefaultLibrary("heroes"))

	name, err := GetDefaultLibrary()
	require.NoError(t, err)
	assert.Equal(t, "heroes", name)
}

func TestGetLibraryPath(t *testing.T) {
	dir := isolate(t)
	installed := filepath.Join(GetLibraryRoot(), "heroes")
	require.NoError(t, os.MkdirAll(installed, 0755))

	got, err := GetLibraryPath("heroes")
	require.NoError(t, err)
	assert.Equal(t, installed, got)

	local := filepath.Join(dir, "local")
	require.NoError(t, os.MkdirAll(local, 0755))
	got, err = GetLibraryPath(local)
	require.NoError(t, err)
	assert.Equal(t, local, got)

	_, err = GetLibraryPath("missing")
	assert.ErrorContains(t, err, "library not found: missing")
}
