package bot

import (
	"context"
	"testing"

	mock_bot "github.com/Kraff13/icosa-telegram-quiz-bot/internal/bot/mock"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatsT_sendStats(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 123},
		From: &tgbotapi.User{ID: 456},
	}

	tests := []struct {
		name     string
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name: "stats found",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().UserStats(gomock.Any(), int64(456)).Return(models.UserStats{
					UserID: 456, LastCorrect: 3, LastTotal: 10, TotalCorrect: 3, TotalAttempts: 1,
				}, true, nil)
			},
			wantText: "Правильных: 3 из 10",
		},
		{
			name: "no stats yet",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().UserStats(gomock.Any(), int64(456)).Return(models.UserStats{}, false, nil)
			},
			wantText: "У вас пока нет статистики",
		},
		{
			name: "error",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().UserStats(gomock.Any(), int64(456)).Return(models.UserStats{}, false, assert.AnError)
			},
			wantText: "❌ Ошибка получения статистики",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ms := mock_bot.NewMockServiceI(ctrl)
			tt.f(ms)
			mb := &mock_bot.MockBot{}

			NewStatsTAPI(mb, ms, 10).sendStats(context.Background(), zap.NewNop(), message)

			require.Len(t, mb.SentMessages, 1)
			assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, tt.wantText)
		})
	}
}

func TestStatsT_sendLeaderboard(t *testing.T) {
	t.Parallel()

	message := &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 123}}

	tests := []struct {
		name     string
		f        func(*mock_bot.MockServiceI)
		wantText string
	}{
		{
			name: "rows",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Leaderboard(gomock.Any(), 5).Return([]models.UserStats{
					{UserID: 1, Username: "Ann", LastCorrect: 9, LastTotal: 10},
				}, nil)
			},
			wantText: "🥇 1. <b>Ann</b>",
		},
		{
			name: "empty",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Leaderboard(gomock.Any(), 5).Return(nil, nil)
			},
			wantText: "Пока нет данных для лидерборда",
		},
		{
			name: "error",
			f: func(ms *mock_bot.MockServiceI) {
				ms.EXPECT().Leaderboard(gomock.Any(), 5).Return(nil, assert.AnError)
			},
			wantText: "❌ Ошибка получения лидерборда",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			ms := mock_bot.NewMockServiceI(ctrl)
			tt.f(ms)
			mb := &mock_bot.MockBot{}

			NewStatsTAPI(mb, ms, 5).sendLeaderboard(context.Background(), zap.NewNop(), message)

			require.Len(t, mb.SentMessages, 1)
			assert.Contains(t, mb.SentMessages[0].(tgbotapi.MessageConfig).Text, tt.wantText)
		})
	}
}
