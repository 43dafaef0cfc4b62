package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadsvg/wadsvg/internal/config"
)

func TestNewBackendMemory(t *testing.T) {
	backend, err := NewBackend(config.StorageConfig{
		Type:   "memory",
		Memory: config.MemoryConfig{OutputDir: t.TempDir()},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, backend)

	_, ok := backend.(Exportable)
	assert.True(t, ok, "memory backend should expose its export path")
}

func TestNewBackendSqlite(t *testing.T) {
	backend, err := NewBackend(config.StorageConfig{
		Type:   "sqlite",
		Sqlite: config.SqliteConfig{Path: filepath.Join(t.TempDir(), "index.db")},
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, backend)
	require.NoError(t, backend.Init())
	require.NoError(t, backend.Close())
}

func TestNewBackendUnknownType(t *testing.T) {
	_, err := NewBackend(config.StorageConfig{Type: "redis"}, nil)
	assert.ErrorContains(t, err, "unknown storage type")
}
