package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

const createUserStatsSQL = `
CREATE TABLE IF NOT EXISTS user_stats (
	user_id BIGINT PRIMARY KEY,
	username TEXT NOT NULL DEFAULT '',
	last_correct INTEGER NOT NULL DEFAULT 0,
	last_total INTEGER NOT NULL DEFAULT 0,
	total_correct INTEGER NOT NULL DEFAULT 0,
	total_attempts INTEGER NOT NULL DEFAULT 0
)`

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, createUserStatsSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS user_stats`)
			return err
		},
	)
}
