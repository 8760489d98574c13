package bot

import (
	"context"
	"time"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/config"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ServiceI interface {
	QuizSI
	StatsSI
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// UpdatesSource is the long-poll side of the Telegram API.
type UpdatesSource interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

type TelegramAPI struct {
	source          UpdatesSource
	bot             BotSender
	quiz            *QuizT
	stats           *StatsT
	timeout         time.Duration
	workers         int
	shutdownTimeout time.Duration
	log             *zap.Logger
}

func NewTelegramAPI(cfg *config.Config, service ServiceI, log *zap.Logger) (*TelegramAPI, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = cfg.Env == "development"

	log.Info("authorized on telegram", zap.String("bot", bot.Self.UserName))

	return newTelegramAPI(bot, bot, cfg, service, log), nil
}

func newTelegramAPI(source UpdatesSource, bot BotSender, cfg *config.Config, service ServiceI, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		source:          source,
		bot:             bot,
		quiz:            NewQuizTAPI(bot, service),
		stats:           NewStatsTAPI(bot, service, cfg.Quiz.LeaderboardSize),
		timeout:         cfg.App.Timeout,
		workers:         cfg.App.Workers,
		shutdownTimeout: cfg.App.ShutdownTimeout,
		log:             log,
	}
}

// Start dispatches updates to at most workers concurrent handlers until ctx is
// cancelled or the updates channel closes, then waits for in-flight handlers
// for up to the shutdown timeout.
func (t *TelegramAPI) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := t.source.GetUpdatesChan(u)

	// in-flight handlers outlive the shutdown signal; each is bounded by its own timeout
	base := context.WithoutCancel(ctx)

	var g errgroup.Group
	g.SetLimit(t.workers)

loop:
	for {
		select {
		case <-ctx.Done():
			break loop
		case update, ok := <-updates:
			if !ok {
				break loop
			}
			g.Go(func() error {
				t.handleUpdate(base, update)
				return nil
			})
		}
	}

	t.source.StopReceivingUpdates()
	t.drain(&g)
}

func (t *TelegramAPI) drain(g *errgroup.Group) {
	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	select {
	case <-done:
		t.log.Info("update handlers drained")
	case <-time.After(t.shutdownTimeout):
		t.log.Warn("shutdown timeout exceeded, abandoning in-flight updates",
			zap.Duration("timeout", t.shutdownTimeout))
	}
}

func (t *TelegramAPI) handleUpdate(base context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(base, t.timeout)
	defer cancel()

	log := t.log.With(zap.String("request_id", uuid.NewString()), zap.Int("update_id", update.UpdateID))

	defer func() {
		if r := recover(); r != nil {
			log.Error("update handler panicked", zap.Any("panic", r))
		}
	}()

	switch {
	case update.Message != nil:
		if update.Message.IsCommand() {
			t.handleCommand(ctx, log, update.Message)
		} else {
			t.handleMessage(ctx, log, update.Message)
		}
	case update.CallbackQuery != nil:
		t.handleCallbackQuery(ctx, log, update.CallbackQuery)
	}
}

func sendMessage(bot BotSender, log *zap.Logger, msg tgbotapi.Chattable) {
	sentMsg, err := bot.Send(msg)
	if err != nil {
		log.Warn("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

func request(bot BotSender, log *zap.Logger, c tgbotapi.Chattable) {
	if _, err := bot.Request(c); err != nil {
		log.Warn("telegram request failed", zap.Error(err))
	}
}
