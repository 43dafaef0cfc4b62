// Package memory stores index records in memory and exports them to a
// JSON file when the archive is finished.
package memory

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/wadsvg/wadsvg/internal/config"
	"github.com/wadsvg/wadsvg/internal/model"
)

// MapEntry groups a map with its sector and thing records
type MapEntry struct {
	Map     model.MapRecord
	Sectors []model.SectorRecord
	Things  []model.ThingRecord
}

// Backend stores index data in memory and exports to JSON
type Backend struct {
	cfg    config.MemoryConfig
	logger *slog.Logger

	archive *model.Archive
	maps    []*MapEntry
	byID    map[uint]*MapEntry

	idCounter      uint
	lastExportPath string
	mu             sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig, logger *slog.Logger) *Backend {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backend{
		cfg:    cfg,
		logger: logger,
		byID:   make(map[uint]*MapEntry),
	}
}

// Init initializes the backend
func (b *Backend) Init() error {
	return nil
}

// Close cleans up resources
func (b *Backend) Close() error {
	return nil
}

// StartArchive begins indexing a new archive
func (b *Backend) StartArchive(a *model.Archive) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.idCounter++
	a.ID = b.idCounter

	b.archive = a
	b.maps = nil
	b.byID = make(map[uint]*MapEntry)
	return nil
}

// FinishArchive exports the accumulated index to a JSON file
func (b *Backend) FinishArchive() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.archive == nil {
		return fmt.Errorf("no archive in progress")
	}

	b.archive.MapCount = len(b.maps)
	if err := b.exportJSON(); err != nil {
		return err
	}

	b.logger.Info("Archive indexed",
		"path", b.archive.Path,
		"maps", len(b.maps),
		"export", b.lastExportPath)
	b.archive = nil
	return nil
}

// AddMap registers a new map
func (b *Backend) AddMap(m *model.MapRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.archive == nil {
		return fmt.Errorf("no archive in progress")
	}

	b.idCounter++
	m.ID = b.idCounter
	m.ArchiveID = b.archive.ID

	entry := &MapEntry{Map: *m}
	b.maps = append(b.maps, entry)
	b.byID[m.ID] = entry
	return nil
}

// AddSector records a sector boundary under its map
func (b *Backend) AddSector(s *model.SectorRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.byID[s.MapID]
	if !ok {
		return fmt.Errorf("unknown map id %d", s.MapID)
	}

	b.idCounter++
	s.ID = b.idCounter
	entry.Sectors = append(entry.Sectors, *s)
	return nil
}

// AddThing records a placed object under its map
func (b *Backend) AddThing(t *model.ThingRecord) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.byID[t.MapID]
	if !ok {
		return fmt.Errorf("unknown map id %d", t.MapID)
	}

	b.idCounter++
	t.ID = b.idCounter
	entry.Things = append(entry.Things, *t)
	return nil
}

// ExportedFilePath returns the path of the last exported file
func (b *Backend) ExportedFilePath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}
