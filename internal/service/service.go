package service

import (
	"go.uber.org/zap"
)

type RepositoryI interface {
	SessionRI
	StatsRI
}

type Service struct {
	*QuizS
	*StatsS
}

func InitServices(bank QuestionBankI, repo RepositoryI, cache QuizCacheI, quizSize int, log *zap.Logger) *Service {
	return &Service{
		QuizS:  NewQuizService(bank, repo, repo, cache, quizSize, log),
		StatsS: NewStatsService(repo, log),
	}
}
