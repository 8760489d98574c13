package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonQuiz        = "🧠 Начать квиз"
	ButtonStats       = "📊 Моя статистика"
	ButtonLeaderboard = "🏆 Лидерборд"
)

func (t *TelegramAPI) handleCommand(ctx context.Context, log *zap.Logger, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(log, message)
	case "help":
		t.handleHelpCommand(log, message)
	case "quiz":
		t.quiz.startQuiz(ctx, log, message)
	case "stats":
		t.stats.sendStats(ctx, log, message)
	case "leaderboard":
		t.stats.sendLeaderboard(ctx, log, message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Неизвестная команда. Используй /help")
		sendMessage(t.bot, log, msg)
	}
}

func (t *TelegramAPI) handleStartCommand(log *zap.Logger, message *tgbotapi.Message) {
	welcomeText := "👋 Привет! Я — бот-викторина.\n\n" +
		"✨ Что я умею:\n" +
		"• 🧠 Проводить квиз из случайных вопросов\n" +
		"• 📊 Показывать твою статистику\n" +
		"• 🏆 Показывать лучших игроков\n\n" +
		"Нажми «" + ButtonQuiz + "», чтобы начать!"

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ReplyMarkup = generateMenuKeyboard()

	sendMessage(t.bot, log, msg)
}

func generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonQuiz),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonStats),
			tgbotapi.NewKeyboardButton(ButtonLeaderboard),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(log *zap.Logger, message *tgbotapi.Message) {
	helpText := `
📚 Доступные команды:
/start — главное меню
/quiz — начать новый квиз
/stats — моя статистика
/leaderboard — топ игроков
/help — это сообщение

🎯 На каждый вопрос выбери один вариант ответа.
Новый квиз сбрасывает незаконченный.
`

	msg := tgbotapi.NewMessage(message.Chat.ID, helpText)
	sendMessage(t.bot, log, msg)
}

func (t *TelegramAPI) handleMessage(ctx context.Context, log *zap.Logger, message *tgbotapi.Message) {
	switch message.Text {
	case ButtonQuiz:
		t.quiz.startQuiz(ctx, log, message)
	case ButtonStats:
		t.stats.sendStats(ctx, log, message)
	case ButtonLeaderboard:
		t.stats.sendLeaderboard(ctx, log, message)
	default:
		msg := tgbotapi.NewMessage(message.Chat.ID, "Я не понял. Используй кнопки ниже или /help.")
		msg.ReplyMarkup = generateMenuKeyboard()
		sendMessage(t.bot, log, msg)
	}
}

func (t *TelegramAPI) handleCallbackQuery(ctx context.Context, log *zap.Logger, query *tgbotapi.CallbackQuery) {
	token, err := parseAnswerToken(query.Data)
	if err != nil {
		log.Info("rejected callback data", zap.String("data", query.Data), zap.Error(err))
		request(t.bot, log, tgbotapi.NewCallback(query.ID, noticeBadButton))
		return
	}

	t.quiz.processAnswer(ctx, log, query, token)
}
