package ops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	maxLeaderboardLimit = 100
	leaderboardTimeout  = 5 * time.Second
)

type PingerI interface {
	PingContext(ctx context.Context) error
}

type LeaderboardI interface {
	Leaderboard(ctx context.Context, limit int) ([]models.UserStats, error)
}

type LeaderboardEntry struct {
	Rank        int     `json:"rank"`
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	LastCorrect int     `json:"last_correct"`
	LastTotal   int     `json:"last_total"`
	Accuracy    float64 `json:"accuracy"`
}

// Server exposes liveness and the leaderboard over HTTP for operators.
type Server struct {
	srv          *http.Server
	db           PingerI
	board        LeaderboardI
	defaultLimit int
	sf           singleflight.Group
	log          *zap.Logger
}

func NewServer(addr string, db PingerI, board LeaderboardI, defaultLimit int, log *zap.Logger) *Server {
	s := &Server{
		db:           db,
		board:        board,
		defaultLimit: defaultLimit,
		log:          log,
	}
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/leaderboard", s.handleLeaderboard)

	return r
}

// Start blocks until the server is shut down.
func (s *Server) Start() error {
	s.log.Info("ops server listening", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.log.Warn("health check failed", zap.Error(err))
		http.Error(w, "db unavailable", http.StatusServiceUnavailable)
		return
	}
	if _, err := w.Write([]byte("ok")); err != nil {
		s.log.Warn("failed to write health response", zap.Error(err))
	}
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := s.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxLeaderboardLimit {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	// concurrent scrapes of the same page share one query, detached from the request that started it
	v, err, _ := s.sf.Do("leaderboard:"+strconv.Itoa(limit), func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), leaderboardTimeout)
		defer cancel()
		return s.board.Leaderboard(ctx, limit)
	})
	if err != nil {
		s.log.Error("failed to load leaderboard", zap.Error(err))
		http.Error(w, "failed to load leaderboard", http.StatusInternalServerError)
		return
	}

	rows := v.([]models.UserStats)
	entries := make([]LeaderboardEntry, 0, len(rows))
	for i, row := range rows {
		entries = append(entries, LeaderboardEntry{
			Rank:        i + 1,
			UserID:      row.UserID,
			Username:    row.Username,
			LastCorrect: row.LastCorrect,
			LastTotal:   row.LastTotal,
			Accuracy:    service.Accuracy(row.LastCorrect, row.LastTotal),
		})
	}

	s.writeJSON(w, map[string]any{"entries": entries})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("failed to write json response", zap.Error(err))
	}
}
