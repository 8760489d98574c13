package bot

import (
	"context"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type StatsSI interface {
	UserStats(ctx context.Context, userID int64) (models.UserStats, bool, error)
	Leaderboard(ctx context.Context, limit int) ([]models.UserStats, error)
}

type StatsT struct {
	bot             BotSender
	service         StatsSI
	leaderboardSize int
}

func NewStatsTAPI(bot BotSender, service StatsSI, leaderboardSize int) *StatsT {
	return &StatsT{
		bot:             bot,
		service:         service,
		leaderboardSize: leaderboardSize,
	}
}

func (t *StatsT) sendStats(ctx context.Context, log *zap.Logger, message *tgbotapi.Message) {
	if message.From == nil {
		log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	chatID := message.Chat.ID
	userID := message.From.ID

	stats, found, err := t.service.UserStats(ctx, userID)
	if err != nil {
		log.Error("failed to get user stats", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, log, tgbotapi.NewMessage(chatID, "❌ Ошибка получения статистики"))
		return
	}
	if !found {
		sendMessage(t.bot, log, tgbotapi.NewMessage(chatID,
			"📭 У вас пока нет статистики.\nПройдите квиз хотя бы один раз, чтобы она появилась!"))
		return
	}

	msg := tgbotapi.NewMessage(chatID, service.FormatStats(stats))
	msg.ParseMode = tgbotapi.ModeHTML
	sendMessage(t.bot, log, msg)
}

func (t *StatsT) sendLeaderboard(ctx context.Context, log *zap.Logger, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	rows, err := t.service.Leaderboard(ctx, t.leaderboardSize)
	if err != nil {
		log.Error("failed to get leaderboard", zap.Error(err))
		sendMessage(t.bot, log, tgbotapi.NewMessage(chatID, "❌ Ошибка получения лидерборда"))
		return
	}
	if len(rows) == 0 {
		sendMessage(t.bot, log, tgbotapi.NewMessage(chatID, "📭 Пока нет данных для лидерборда.\nПопробуйте позже!"))
		return
	}

	msg := tgbotapi.NewMessage(chatID, service.FormatLeaderboard(rows))
	msg.ParseMode = tgbotapi.ModeHTML
	sendMessage(t.bot, log, msg)
}
