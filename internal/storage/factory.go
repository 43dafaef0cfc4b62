package storage

import (
	"fmt"
	"log/slog"

	"github.com/wadsvg/wadsvg/internal/config"
	"github.com/wadsvg/wadsvg/internal/storage/memory"
	postgresstorage "github.com/wadsvg/wadsvg/internal/storage/postgres"
	sqlitestorage "github.com/wadsvg/wadsvg/internal/storage/sqlite"
)

// NewBackend creates a storage backend based on configuration
func NewBackend(cfg config.StorageConfig, logger *slog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres":
		backend, err := postgresstorage.New(logger)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case "sqlite":
		backend, err := sqlitestorage.New(cfg.Sqlite, logger)
		if err != nil {
			return nil, err
		}
		return backend, nil
	case "memory":
		return memory.New(cfg.Memory, logger), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
