// Package sqlitestorage implements the storage.Backend interface using an
// in-memory SQLite database dumped to disk via VACUUM INTO on close.
// It wraps the gorm backend via composition.
package sqlitestorage

import (
	"fmt"
	"log/slog"

	"github.com/wadsvg/wadsvg/internal/config"
	"github.com/wadsvg/wadsvg/internal/database"
	gormstorage "github.com/wadsvg/wadsvg/internal/storage/gorm"
)

// Backend wraps the gorm backend for SQLite-specific behavior.
type Backend struct {
	*gormstorage.Backend
	dumpPath string
	logger   *slog.Logger
}

// New creates a new SQLite storage backend.
func New(cfg config.SqliteConfig, logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := database.GetSqliteDBStandalone("")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite DB: %w", err)
	}

	return &Backend{
		Backend:  gormstorage.New(db, logger),
		dumpPath: cfg.Path,
		logger:   logger,
	}, nil
}

// Close dumps the in-memory database to disk, then closes the embedded
// gorm backend.
func (b *Backend) Close() error {
	if b.dumpPath != "" {
		if err := database.DumpMemoryDBToDisk(b.DB(), b.dumpPath); err != nil {
			return err
		}
		b.logger.Info("Index written", "path", b.dumpPath)
	}
	return b.Backend.Close()
}

// ExportedFilePath returns the on-disk database path.
func (b *Backend) ExportedFilePath() string {
	return b.dumpPath
}
