package service

import (
	"testing"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFormatAccuracy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		correct, total int
		want           string
	}{
		{0, 0, "0%"},
		{3, 10, "30.0%"},
		{10, 10, "100.0%"},
		{1, 3, "33.3%"},
		{2, 3, "66.7%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatAccuracy(tt.correct, tt.total))
	}
}

func TestTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		accuracy float64
		want     string
	}{
		{100, "🏆"},
		{80, "🏆"},
		{79.9, "🥈"},
		{60, "🥈"},
		{40, "🥉"},
		{39.9, "💪"},
		{0, "💪"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Tier(tt.accuracy), "accuracy %v", tt.accuracy)
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	got := FormatSummary(models.QuizSummary{Correct: 3, Total: 10, Accuracy: Accuracy(3, 10)})
	assert.Contains(t, got, "💪 <b>Квиз завершён!</b>")
	assert.Contains(t, got, "Правильных ответов: 3 из 10")
	assert.Contains(t, got, "Точность: 30.0%")

	got = FormatSummary(models.QuizSummary{})
	assert.Contains(t, got, "Точность: 0%")
}

func TestFormatFeedback(t *testing.T) {
	t.Parallel()

	got := FormatFeedback(models.AnswerFeedback{Correct: true, Chosen: "<b>", RightAnswer: "<b>"})
	assert.Equal(t, "👤 <b>Ваш ответ:</b> &lt;b&gt;\n✅ Правильно!", got)

	got = FormatFeedback(models.AnswerFeedback{Chosen: "A & B", RightAnswer: "C"})
	assert.Equal(t, "👤 <b>Ваш ответ:</b> A &amp; B\n❌ Неправильно. Правильный ответ: C", got)
}

func TestFormatStats(t *testing.T) {
	t.Parallel()

	got := FormatStats(models.UserStats{
		UserID:        1,
		LastCorrect:   8,
		LastTotal:     10,
		TotalCorrect:  15,
		TotalAttempts: 2,
	})
	assert.Contains(t, got, "🏆 <b>Последний квиз:</b>")
	assert.Contains(t, got, "Правильных: 8 из 10")
	assert.Contains(t, got, "🎯 <b>Общая статистика:</b>")
	assert.Contains(t, got, "Средняя точность: 75.0%")
	assert.Contains(t, got, "Всего попыток: 2")
}

func TestFormatLeaderboard(t *testing.T) {
	t.Parallel()

	assert.Contains(t, FormatLeaderboard(nil), "Пока нет данных")

	got := FormatLeaderboard([]models.UserStats{
		{UserID: 1, Username: "Ann", LastCorrect: 9, LastTotal: 10},
		{UserID: 2, Username: "<Bob>", LastCorrect: 5, LastTotal: 10},
		{UserID: 3, Username: "Eve", LastCorrect: 0, LastTotal: 0},
		{UserID: 4, Username: "Max", LastCorrect: 0, LastTotal: 10},
	})
	assert.Contains(t, got, "🥇 1. <b>Ann</b>\n   ✅ 9/10 (90.0%)")
	assert.Contains(t, got, "🥈 2. <b>&lt;Bob&gt;</b>")
	assert.Contains(t, got, "🥉 3. <b>Eve</b>\n   ✅ 0/0 (0%)")
	assert.Contains(t, got, "   4. <b>Max</b>")
}
