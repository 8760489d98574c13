package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/bot"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/config"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/ops"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/questions"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/repository"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/service"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/storage/cache"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/storage/db"
	quizredis "github.com/Kraff13/icosa-telegram-quiz-bot/internal/storage/redis"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Execute runs the bot until SIGINT or SIGTERM.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "quiz-bot",
		Short:         "Telegram quiz bot",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return run(ctx)
		},
	}
}

func setupLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(ctx context.Context) error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed load config: %w", err)
	}

	logger, err := setupLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("failed init logger: %w", err)
	}
	defer logger.Sync()

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		logger.Error("failed init db", zap.String("driver", cfg.DB.Driver), zap.Error(err))
		return err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close db", zap.Error(err))
		}
	}()

	bank, err := questions.Load(cfg.Quiz.QuestionsPath)
	if err != nil {
		logger.Error("failed load questions", zap.String("path", cfg.Quiz.QuestionsPath), zap.Error(err))
		return err
	}
	logger.Info("question bank loaded", zap.Int("questions", bank.Size()))

	var quizCache service.QuizCacheI = cache.NewCache()
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close redis client", zap.Error(err))
			}
		}()

		if err := client.Ping(ctx).Err(); err != nil {
			logger.Error("failed to reach redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
			return err
		}
		quizCache = quizredis.NewQuizCache(client, cfg.Redis.TTL)
		logger.Info("quiz state kept in redis", zap.String("addr", cfg.Redis.Addr))
	}

	repos := repository.NewRepository(conn)
	services := service.InitServices(bank, repos, quizCache, cfg.Quiz.QuestionsPerQuiz, logger)

	handler, err := bot.NewTelegramAPI(cfg, services, logger)
	if err != nil {
		logger.Error("failed init telegram api", zap.Error(err))
		return err
	}

	if cfg.Ops.Addr != "" {
		server := ops.NewServer(cfg.Ops.Addr, conn, services, cfg.Quiz.LeaderboardSize, logger)
		go func() {
			if err := server.Start(); err != nil {
				logger.Error("ops server stopped", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Warn("failed to shut down ops server", zap.Error(err))
			}
		}()
	}

	logger.Info("bot started")
	handler.Start(ctx)
	logger.Info("bot stopped")

	return nil
}
