package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
)

type StatsR struct {
	db QueryI
}

func NewStatsRepository(db QueryI) *StatsR {
	return &StatsR{db: db}
}

// RecordResult stores a finished attempt in one statement: last_* and username
// are overwritten, cumulative counters grow.
func (s *StatsR) RecordResult(ctx context.Context, userID int64, username string, correct, total int) error {
	query := `INSERT INTO user_stats (user_id, username, last_correct, last_total, total_correct, total_attempts)
		VALUES (?, ?, ?, ?, ?, 1)
		ON CONFLICT (user_id)
		DO UPDATE SET
			username = EXCLUDED.username,
			last_correct = EXCLUDED.last_correct,
			last_total = EXCLUDED.last_total,
			total_correct = user_stats.total_correct + EXCLUDED.total_correct,
			total_attempts = user_stats.total_attempts + 1
	`
	_, err := s.db.ExecContext(ctx, s.db.Rebind(query), userID, username, correct, total, correct)
	if err != nil {
		return fmt.Errorf("failed to record result for user %d: %w", userID, err)
	}

	return nil
}

func (s *StatsR) UserStats(ctx context.Context, userID int64) (models.UserStats, bool, error) {
	query := `SELECT user_id, username, last_correct, last_total, total_correct, total_attempts
		FROM user_stats
		WHERE user_id = ?`

	var stats models.UserStats
	err := s.db.GetContext(ctx, &stats, s.db.Rebind(query), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserStats{}, false, nil
		}
		return models.UserStats{}, false, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return stats, true, nil
}

// Leaderboard ranks users by last-attempt accuracy, then by last correct count.
// user_id makes the order total.
func (s *StatsR) Leaderboard(ctx context.Context, limit int) ([]models.UserStats, error) {
	if limit <= 0 {
		return []models.UserStats{}, nil
	}

	query := `SELECT user_id, username, last_correct, last_total, total_correct, total_attempts
		FROM user_stats
		ORDER BY
			CASE
				WHEN last_total > 0 THEN last_correct * 100.0 / last_total
				ELSE 0
			END DESC,
			last_correct DESC,
			user_id ASC
		LIMIT ?`

	rows := make([]models.UserStats, 0, limit)
	err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return rows, nil
}
