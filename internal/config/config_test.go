package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "€", cfg.Currency)
	assert.NotEmpty(t, cfg.DataPath)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "data_path: " + filepath.Join(dir, "tracker.json") + "\nlog_level: debug\ncurrency: \"$\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tracker.json"), cfg.DataPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "$", cfg.Currency)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	t.Setenv("BUDGETBOOK_DATA", filepath.Join(dir, "env.json"))
	t.Setenv("BUDGETBOOK_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env.json"), cfg.DataPath)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\tnot yaml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := Default()
	cfg.DataPath = filepath.Join(t.TempDir(), "data.json")
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestValidate_CreatesDataDirectory(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.DataPath = filepath.Join(dir, "nested", "deep", "data.json")
	require.NoError(t, cfg.Validate())

	info, err := os.Stat(filepath.Join(dir, "nested", "deep"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSlogLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		cfg := Config{LogLevel: name}
		level, err := cfg.SlogLevel()
		require.NoError(t, err, name)
		assert.Equal(t, want, level, name)
	}
}
