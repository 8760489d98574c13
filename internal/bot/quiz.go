package bot

import (
	"context"
	"errors"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	noticeFinished   = "Квиз уже завершен!"
	noticeStale      = "Этот вопрос уже неактуален!"
	noticeMapping    = "Ошибка: не найдены данные о вариантах ответов"
	noticeBadButton  = "Неверные данные кнопки!"
	noticeError      = "❌ Ошибка. Попробуй позже."
	textQuizStarting = "🎯 Отлично! Начинаем квиз.\n\nПервый вопрос:"
)

type QuizSI interface {
	StartQuiz(ctx context.Context, userID int64, username string) (models.QuizStep, error)
	Answer(ctx context.Context, intent models.AnswerIntent) (models.QuizStep, error)
}

type QuizT struct {
	bot     BotSender
	service QuizSI
}

func NewQuizTAPI(bot BotSender, service QuizSI) *QuizT {
	return &QuizT{
		bot:     bot,
		service: service,
	}
}

func (t *QuizT) startQuiz(ctx context.Context, log *zap.Logger, message *tgbotapi.Message) {
	if message.From == nil {
		log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}
	chatID := message.Chat.ID
	userID := message.From.ID

	sendMessage(t.bot, log, tgbotapi.NewMessage(chatID, textQuizStarting))

	step, err := t.service.StartQuiz(ctx, userID, displayName(message.From))
	if err != nil {
		log.Error("failed to start quiz", zap.Int64("user_id", userID), zap.Error(err))
		sendMessage(t.bot, log, tgbotapi.NewMessage(chatID, "❌ Не удалось начать квиз. Попробуй позже."))
		return
	}

	t.sendStep(log, chatID, step)
}

func (t *QuizT) processAnswer(ctx context.Context, log *zap.Logger, query *tgbotapi.CallbackQuery, token answerToken) {
	userID := query.From.ID
	chatID := userID
	if query.Message != nil {
		chatID = query.Message.Chat.ID
	}

	step, err := t.service.Answer(ctx, models.AnswerIntent{
		UserID:        userID,
		Username:      displayName(query.From),
		Attempt:       token.attempt,
		QuestionIndex: token.question,
		Position:      token.position,
	})
	if err != nil {
		notice, known := rejectionNotice(err)
		if !known {
			log.Error("failed to process answer", zap.Int64("user_id", userID), zap.Error(err))
		}
		request(t.bot, log, tgbotapi.NewCallback(query.ID, notice))
		if errors.Is(err, service.ErrStaleQuestion) || errors.Is(err, service.ErrNoActiveQuiz) {
			t.removeKeyboard(log, query.Message)
		}
		return
	}

	request(t.bot, log, tgbotapi.NewCallback(query.ID, ""))
	t.removeKeyboard(log, query.Message)

	if step.Feedback != nil {
		msg := tgbotapi.NewMessage(chatID, service.FormatFeedback(*step.Feedback))
		msg.ParseMode = tgbotapi.ModeHTML
		sendMessage(t.bot, log, msg)
	}

	t.sendStep(log, chatID, step)
}

// sendStep shows the next question or the final summary.
func (t *QuizT) sendStep(log *zap.Logger, chatID int64, step models.QuizStep) {
	switch {
	case step.Question != nil:
		msg := tgbotapi.NewMessage(chatID, service.FormatQuestion(*step.Question))
		msg.ParseMode = tgbotapi.ModeHTML
		keyboard := optionsKeyboard(*step.Question)
		msg.ReplyMarkup = &keyboard
		sendMessage(t.bot, log, msg)
	case step.Summary != nil:
		msg := tgbotapi.NewMessage(chatID, service.FormatSummary(*step.Summary))
		msg.ParseMode = tgbotapi.ModeHTML
		msg.ReplyMarkup = generateMenuKeyboard()
		sendMessage(t.bot, log, msg)
	}
}

func (t *QuizT) removeKeyboard(log *zap.Logger, message *tgbotapi.Message) {
	if message == nil {
		return
	}
	edit := tgbotapi.NewEditMessageReplyMarkup(message.Chat.ID, message.MessageID,
		tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}})
	request(t.bot, log, edit)
}

func optionsKeyboard(q models.PresentedQuestion) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(q.Options))
	for pos, option := range q.Options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(option, encodeAnswerToken(q.Attempt, q.Index, pos)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// rejectionNotice maps engine rejections to a short callback notice.
// known is false for unexpected failures.
func rejectionNotice(err error) (notice string, known bool) {
	switch {
	case errors.Is(err, service.ErrNoActiveQuiz):
		return noticeFinished, true
	case errors.Is(err, service.ErrStaleQuestion):
		return noticeStale, true
	case errors.Is(err, service.ErrMappingLost):
		return noticeMapping, true
	case errors.Is(err, service.ErrInvalidOption):
		return noticeBadButton, true
	default:
		return noticeError, false
	}
}
