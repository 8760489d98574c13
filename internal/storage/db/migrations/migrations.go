package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/migrate"
	"github.com/uptrace/bun/schema"
)

var Migrations = migrate.NewMigrations()

// Migrate applies every registered migration that has not run yet.
// The caller keeps ownership of sqldb.
func Migrate(ctx context.Context, sqldb *sql.DB, driver string) error {
	dialect, err := dialectFor(driver)
	if err != nil {
		return err
	}

	db := bun.NewDB(sqldb, dialect)
	migrator := migrate.NewMigrator(db, Migrations)

	if err := migrator.Init(ctx); err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	if _, err := migrator.Migrate(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

func dialectFor(driver string) (schema.Dialect, error) {
	switch driver {
	case "postgres":
		return pgdialect.New(), nil
	case "sqlite":
		return sqlitedialect.New(), nil
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}
