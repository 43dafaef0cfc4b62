// Package gormstorage implements the shared gorm-backed storage logic.
// SQLite and Postgres backends wrap it via composition and only add their
// connection-specific concerns.
package gormstorage

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gorm.io/gorm"

	"github.com/wadsvg/wadsvg/internal/model"
)

// Backend writes index records through a gorm connection.
type Backend struct {
	db     *gorm.DB
	logger *slog.Logger

	mu      sync.Mutex
	archive *model.Archive
	maps    int
}

// New creates a gorm backend on an established connection.
func New(db *gorm.DB, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{db: db, logger: logger}
}

// DB exposes the underlying connection for wrapping backends.
func (b *Backend) DB() *gorm.DB {
	return b.db
}

// Init migrates the schema.
func (b *Backend) Init() error {
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// Close closes the underlying connection.
func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return fmt.Errorf("failed to access sql interface: %w", err)
	}
	return sqlDB.Close()
}

// StartArchive creates the archive row and makes it current.
func (b *Backend) StartArchive(a *model.Archive) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	a.IndexedAt = time.Now().UTC()
	if err := b.db.Create(a).Error; err != nil {
		return fmt.Errorf("failed to create archive record: %w", err)
	}

	b.archive = a
	b.maps = 0
	return nil
}

// FinishArchive writes the final map count to the current archive row.
func (b *Backend) FinishArchive() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.archive == nil {
		return fmt.Errorf("no archive in progress")
	}

	err := b.db.Model(b.archive).Update("map_count", b.maps).Error
	if err != nil {
		return fmt.Errorf("failed to finalize archive record: %w", err)
	}

	b.logger.Info("Archive indexed", "path", b.archive.Path, "maps", b.maps)
	b.archive = nil
	return nil
}

// AddMap creates a map row under the current archive.
func (b *Backend) AddMap(m *model.MapRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.archive == nil {
		return fmt.Errorf("no archive in progress")
	}

	m.ArchiveID = b.archive.ID
	if err := b.db.Create(m).Error; err != nil {
		return fmt.Errorf("failed to create map record: %w", err)
	}

	b.maps++
	return nil
}

// AddSector creates a sector row.
func (b *Backend) AddSector(s *model.SectorRecord) error {
	if s.MapID == 0 {
		return fmt.Errorf("sector record has no map")
	}
	if err := b.db.Create(s).Error; err != nil {
		return fmt.Errorf("failed to create sector record: %w", err)
	}
	return nil
}

// AddThing creates a thing row.
func (b *Backend) AddThing(t *model.ThingRecord) error {
	if t.MapID == 0 {
		return fmt.Errorf("thing record has no map")
	}
	if err := b.db.Create(t).Error; err != nil {
		return fmt.Errorf("failed to create thing record: %w", err)
	}
	return nil
}
