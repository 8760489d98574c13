package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/Kraff13/icosa-telegram-quiz-bot/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig   `mapstructure:"app" validate:"required"`
	BotToken string      `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig    `mapstructure:"db" validate:"required"`
	Redis    RedisConfig `mapstructure:"redis"`
	Quiz     QuizConfig  `mapstructure:"quiz" validate:"required"`
	Ops      OpsConfig   `mapstructure:"ops"`
	Env      string      `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout         time.Duration `mapstructure:"timeout" validate:"min=1"`
	Workers         int           `mapstructure:"workers" validate:"min=1,max=256"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"min=1"`
}

type DBConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=postgres sqlite"`
	DSN    string `mapstructure:"dsn" validate:"required_if=Driver postgres"`
	Path   string `mapstructure:"path" validate:"required_if=Driver sqlite"`
	Cfg    DBCfg  `mapstructure:"cfg"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// RedisConfig enables the redis quiz cache when Addr is set.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db" validate:"min=0"`
	TTL      time.Duration `mapstructure:"ttl" validate:"min=0"`
}

type QuizConfig struct {
	QuestionsPerQuiz int    `mapstructure:"questions_per_quiz" validate:"min=1,max=100"`
	QuestionsPath    string `mapstructure:"questions_path"`
	LeaderboardSize  int    `mapstructure:"leaderboard_size" validate:"min=1,max=100"`
}

// OpsConfig enables the HTTP health/leaderboard endpoint when Addr is set.
type OpsConfig struct {
	Addr string `mapstructure:"addr"`
}

var envBindings = map[string]string{
	"bot_token":           "API_TOKEN",
	"env":                 "APP_ENV",
	"db.driver":           "DB_DRIVER",
	"db.dsn":              "DB_DSN",
	"db.path":             "DB_PATH",
	"redis.addr":          "REDIS_ADDR",
	"redis.password":      "REDIS_PASSWORD",
	"ops.addr":            "OPS_ADDR",
	"quiz.questions_path": "QUESTIONS_PATH",
}

func Init() (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()

	v.AutomaticEnv()
	setDefaults(v)

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}

	v.AddConfigPath("configs")
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "production")
	v.SetDefault("app.timeout", 10*time.Second)
	v.SetDefault("app.workers", 16)
	v.SetDefault("app.shutdown_timeout", 5*time.Second)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "quiz_bot.db")
	v.SetDefault("db.cfg.max_open_conns", 1)
	v.SetDefault("db.cfg.max_idle_conns", 1)
	v.SetDefault("redis.ttl", 24*time.Hour)
	v.SetDefault("quiz.questions_per_quiz", 10)
	v.SetDefault("quiz.leaderboard_size", 10)
}
