package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tasklist/internal/config"
	"github.com/MKhiriev/go-tasklist/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// Snapshots keeps the last organization list for offline start. It is
	// nil when the cache is disabled.
	Snapshots OrganizationSnapshotRepository

	db *DB
}

// NewClientStorages initialises the client storage layer. It performs the
// following steps:
//  1. Returns an empty [ClientStorages] when cfg.CacheDSN is empty.
//  2. Opens an SQLite connection to cfg.CacheDSN, creating the file if it
//     does not yet exist.
//  3. Runs pending schema migrations via [DB.Migrate].
//  4. Wires the snapshot repository.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	if cfg.CacheDSN == "" {
		logger.Info().Msg("organization snapshot cache disabled")
		return &ClientStorages{}, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.CacheDSN, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Snapshots: NewOrganizationSnapshotRepository(db, logger),
		db:        db,
	}, nil
}

// Close releases the SQLite connection, if one was opened.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
