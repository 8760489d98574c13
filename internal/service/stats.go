package service

import (
	"context"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"go.uber.org/zap"
)

type StatsS struct {
	repo StatsRI
	log  *zap.Logger
}

func NewStatsService(repo StatsRI, log *zap.Logger) *StatsS {
	return &StatsS{repo: repo, log: log}
}

func (s *StatsS) UserStats(ctx context.Context, userID int64) (models.UserStats, bool, error) {
	stats, found, err := s.repo.UserStats(ctx, userID)
	if err != nil {
		s.log.Warn("failed to get user stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.UserStats{}, false, err
	}
	return stats, found, nil
}

func (s *StatsS) Leaderboard(ctx context.Context, limit int) ([]models.UserStats, error) {
	rows, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		s.log.Warn("failed to get leaderboard", zap.Int("limit", limit), zap.Error(err))
		return nil, err
	}
	return rows, nil
}
