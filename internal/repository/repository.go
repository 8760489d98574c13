package repository

import (
	"context"
	"database/sql"
	"errors"
)

var ErrSessionNotFound = errors.New("quiz session not found")

type QueryI interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	Rebind(query string) string
}

type Repository struct {
	*SessionR
	*StatsR
}

func NewRepository(db QueryI) Repository {
	return Repository{
		SessionR: NewSessionRepository(db),
		StatsR:   NewStatsRepository(db),
	}
}
