package db

import (
	"context"
	"fmt"
	"time"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/config"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/storage/db/migrations"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// InitDB opens the configured database and applies pending migrations.
func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	dsn := cfg.DSN
	if cfg.Driver == DriverSQLite {
		dsn = cfg.Path
	}

	db, err := sqlx.Open(cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := migrations.Migrate(ctx, db.DB, cfg.Driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db migrate: %w", err)
	}

	return db, nil
}
