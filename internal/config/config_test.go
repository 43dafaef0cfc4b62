package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	require.NoError(t, Load(t.TempDir()))

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, ".", GetString("output.dir"))

	cfg, err := Storage()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Type)
	assert.Equal(t, "./extractions", cfg.Memory.OutputDir)
	assert.False(t, cfg.Memory.CompressOutput)
	assert.Equal(t, "./wadsvg.db", cfg.Sqlite.Path)
}

func TestLoadConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	content := `{
		"logLevel": "debug",
		"output": {"dir": "/tmp/out"},
		"storage": {
			"type": "sqlite",
			"sqlite": {"path": "/tmp/maps.db"}
		}
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wadsvg.cfg.json"), []byte(content), 0o644))

	require.NoError(t, Load(dir))

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, "/tmp/out", GetString("output.dir"))

	cfg, err := Storage()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Type)
	assert.Equal(t, "/tmp/maps.db", cfg.Sqlite.Path)
}

func TestLoadMalformedConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wadsvg.cfg.json"), []byte("{not json"), 0o644))

	assert.Error(t, Load(dir))
}
