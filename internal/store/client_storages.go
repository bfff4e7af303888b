package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// Storage driver names accepted in [config.ClientStorage].
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
)

// ClientStorages groups the client-side stores.
type ClientStorages struct {
	// Session holds the session token under [TokenKey].
	Session KeyValueStore
}

// NewClientStorages initialises the client storage layer. For the SQLite
// driver it opens cfg.DB.DSN and runs pending migrations; for the file
// driver it opens cfg.File.Path. An empty driver means SQLite.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case "", DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{Session: NewKVRepository(db, logger)}, nil

	case DriverFile:
		kv, err := NewFileKVStore(cfg.File.Path)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return &ClientStorages{Session: kv}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases every store.
func (s *ClientStorages) Close() error {
	return s.Session.Close()
}
