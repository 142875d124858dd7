// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/store-last-login/internal/config"
	"github.com/MKhiriev/store-last-login/internal/logger"
)

// Storages groups the repositories handed to the service layer.
type Storages struct {
	Users UserRepository
	Meta  MetaRepository

	closer io.Closer
}

// NewStorages connects to the configured backend, applies migrations and
// builds the repositories. The memory driver needs neither.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	switch cfg.Driver {
	case config.DriverMemory:
		mem := NewMemoryStore(log)
		return &Storages{Users: mem, Meta: mem}, nil
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	log.Info().Msg("migrations applied")

	return NewSQLStorages(db, log), nil
}

// NewSQLStorages builds SQL repositories on an already migrated connection.
func NewSQLStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Users:  NewUserRepository(db, log),
		Meta:   NewMetaRepository(db, log),
		closer: db,
	}
}

// Close releases the underlying connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
