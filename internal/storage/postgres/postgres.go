// Package postgresstorage implements the storage.Backend interface on a
// Postgres database, wrapping the gorm backend via composition. The
// connection is established through the database manager, which falls back
// to SQLite when Postgres is unreachable.
package postgresstorage

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rs/zerolog"

	"github.com/wadsvg/wadsvg/internal/database"
	gormstorage "github.com/wadsvg/wadsvg/internal/storage/gorm"
)

// Backend wraps the gorm backend over a managed Postgres connection.
type Backend struct {
	*gormstorage.Backend
	manager *database.Manager
}

// New connects to Postgres using the viper db.* settings.
func New(logger *slog.Logger) (*Backend, error) {
	if logger == nil {
		logger = slog.Default()
	}

	manager := database.NewManager(zerolog.New(os.Stderr).With().Timestamp().Logger())
	if err := manager.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Backend{
		Backend: gormstorage.New(manager.DB, logger),
		manager: manager,
	}, nil
}
