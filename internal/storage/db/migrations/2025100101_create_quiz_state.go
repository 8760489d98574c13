package migrations

import (
	"context"

	"github.com/uptrace/bun"
)

const createQuizStateSQL = `
CREATE TABLE IF NOT EXISTS quiz_state (
	user_id BIGINT PRIMARY KEY,
	question_index INTEGER NOT NULL DEFAULT 0,
	correct_answers INTEGER NOT NULL DEFAULT 0,
	selected_questions TEXT NOT NULL DEFAULT '[]'
)`

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, createQuizStateSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.ExecContext(ctx, `DROP TABLE IF EXISTS quiz_state`)
			return err
		},
	)
}
