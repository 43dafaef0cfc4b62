// Package storage defines the Backend interface index results are written
// through, and the factory that picks an implementation from config.
package storage

import "github.com/wadsvg/wadsvg/internal/model"

// Backend is the interface all storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// Archive management (assigns ID to the passed pointer)
	StartArchive(a *model.Archive) error
	FinishArchive() error

	// Record writing (assigns IDs to the passed pointers)
	AddMap(m *model.MapRecord) error
	AddSector(s *model.SectorRecord) error
	AddThing(t *model.ThingRecord) error
}

// Exportable is an optional interface for storage backends that produce a
// file on FinishArchive.
type Exportable interface {
	ExportedFilePath() string
}
