package repository

import (
	"context"
	"testing"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/config"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteRepo(t *testing.T) (Repository, *sqlx.DB) {
	t.Helper()

	conn, err := db.InitDB(config.DBConfig{
		Driver: db.DriverSQLite,
		Path:   ":memory:",
		Cfg:    config.DBCfg{MaxOpenConns: 1, MaxIdleConns: 1},
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewRepository(conn), conn
}

func TestSQLite_SessionLifecycle(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	got, err := repo.Session(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, models.QuizSession{UserID: 7}, got)

	require.NoError(t, repo.ResetSession(ctx, 7, []int{0, 1, 2}))
	require.NoError(t, repo.IncrementCorrect(ctx, 7))
	require.NoError(t, repo.SetIndex(ctx, 7, 2))

	got, err = repo.Session(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Index)
	assert.Equal(t, 1, got.Correct)

	order, err := repo.QuestionOrder(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, order)

	// a new quiz resets progress regardless of prior values
	require.NoError(t, repo.ResetSession(ctx, 7, []int{0, 1}))
	got, err = repo.Session(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Index)
	assert.Equal(t, 0, got.Correct)

	order, err = repo.QuestionOrder(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, order)
}

func TestSQLite_MissingRowEdgeCases(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	err := repo.IncrementCorrect(ctx, 99)
	require.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, repo.SetIndex(ctx, 99, 4))
	got, err := repo.Session(ctx, 99)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Index)
	assert.Equal(t, 0, got.Correct)

	order, err := repo.QuestionOrder(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestSQLite_RecordResult(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	_, found, err := repo.UserStats(ctx, 1)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.RecordResult(ctx, 1, "Alice", 7, 10))
	stats, found, err := repo.UserStats(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.UserStats{
		UserID: 1, Username: "Alice", LastCorrect: 7, LastTotal: 10, TotalCorrect: 7, TotalAttempts: 1,
	}, stats)

	require.NoError(t, repo.RecordResult(ctx, 1, "Alice B", 4, 10))
	stats, found, err = repo.UserStats(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, models.UserStats{
		UserID: 1, Username: "Alice B", LastCorrect: 4, LastTotal: 10, TotalCorrect: 11, TotalAttempts: 2,
	}, stats)
}

func TestSQLite_Leaderboard(t *testing.T) {
	t.Parallel()

	repo, _ := newSQLiteRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordResult(ctx, 1, "half-small", 1, 2))
	require.NoError(t, repo.RecordResult(ctx, 2, "half-big", 5, 10))
	require.NoError(t, repo.RecordResult(ctx, 3, "perfect", 3, 3))
	require.NoError(t, repo.RecordResult(ctx, 4, "empty", 0, 0))
	require.NoError(t, repo.RecordResult(ctx, 5, "zero", 0, 10))
	require.NoError(t, repo.RecordResult(ctx, 6, "half-big-twin", 5, 10))

	board, err := repo.Leaderboard(ctx, 10)
	require.NoError(t, err)

	ids := make([]int64, 0, len(board))
	for _, row := range board {
		ids = append(ids, row.UserID)
	}
	assert.Equal(t, []int64{3, 2, 6, 1, 4, 5}, ids)

	top, err := repo.Leaderboard(ctx, 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, int64(3), top[0].UserID)
	assert.Equal(t, int64(2), top[1].UserID)

	none, err := repo.Leaderboard(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}
