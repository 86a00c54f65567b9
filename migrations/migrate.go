package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Dialect names accepted by [Migrate]. They double as the names of the
// embedded migration directories.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate applies all embedded migrations for the given dialect to db.
// The migrations are idempotent: goose tracks applied versions in its own
// bookkeeping table and re-running Migrate is a no-op.
func Migrate(db *sql.DB, dialect string) error {
	goose.SetBaseFS(embedMigrations)

	switch dialect {
	case DialectPostgres:
		if err := goose.SetDialect("pgx"); err != nil {
			return fmt.Errorf("migration error setting dialect for db: %w", err)
		}
	case DialectSQLite:
		if err := goose.SetDialect("sqlite3"); err != nil {
			return fmt.Errorf("migration error setting dialect for db: %w", err)
		}
	default:
		return fmt.Errorf("unknown migration dialect: %s", dialect)
	}

	if err := goose.Up(db, dialect); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
