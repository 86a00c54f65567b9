package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ortoo/internal/config"
	"github.com/MKhiriev/ortoo/internal/logger"
	"github.com/MKhiriev/ortoo/migrations"
)

// Storages bundles every persistence collaborator the services consume.
type Storages struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewStorages connects to the configured backend (PostgreSQL when a DSN is
// set, SQLite otherwise), applies the embedded migrations, and constructs the
// repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, dialect, err := connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB, dialect); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, string, error) {
	if cfg.DB.DSN != "" {
		db, err := NewConnectPostgres(ctx, cfg.DB, log)
		return db, migrations.DialectPostgres, err
	}

	db, err := NewConnectSQLite(ctx, cfg.SQLitePath, log)
	return db, migrations.DialectSQLite, err
}
