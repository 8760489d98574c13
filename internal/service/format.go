package service

import (
	"fmt"
	"html"
	"math"
	"strconv"
	"strings"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
)

// Accuracy returns correct/total as a percentage rounded to one decimal, 0 for an empty attempt.
func Accuracy(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)*1000/float64(total)) / 10
}

// AverageAccuracy estimates the accuracy over all attempts assuming each had last_total questions.
func AverageAccuracy(s models.UserStats) float64 {
	return Accuracy(s.TotalCorrect, s.LastTotal*s.TotalAttempts)
}

// FormatAccuracy renders an accuracy as "30.0%", or "0%" for an attempt without questions.
func FormatAccuracy(correct, total int) string {
	if total <= 0 {
		return "0%"
	}
	return strconv.FormatFloat(Accuracy(correct, total), 'f', 1, 64) + "%"
}

func Tier(accuracy float64) string {
	switch {
	case accuracy >= 80:
		return "🏆"
	case accuracy >= 60:
		return "🥈"
	case accuracy >= 40:
		return "🥉"
	default:
		return "💪"
	}
}

func medal(place int) string {
	switch place {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return "  "
	}
}

func FormatQuestion(q models.PresentedQuestion) string {
	return fmt.Sprintf("❓ <b>Вопрос %d из %d:</b>\n\n%s", q.Index+1, q.Total, html.EscapeString(q.Text))
}

func FormatFeedback(f models.AnswerFeedback) string {
	status := "✅ Правильно!"
	if !f.Correct {
		status = "❌ Неправильно. Правильный ответ: " + html.EscapeString(f.RightAnswer)
	}
	return fmt.Sprintf("👤 <b>Ваш ответ:</b> %s\n%s", html.EscapeString(f.Chosen), status)
}

func FormatSummary(s models.QuizSummary) string {
	return fmt.Sprintf(
		"%s <b>Квиз завершён!</b>\n\n"+
			"✅ Правильных ответов: %d из %d\n"+
			"📊 Точность: %s\n\n"+
			"Посмотреть статистику: /stats или кнопка «📊 Моя статистика»\n"+
			"Пройти снова: нажмите «🧠 Начать квиз»",
		Tier(s.Accuracy), s.Correct, s.Total, FormatAccuracy(s.Correct, s.Total),
	)
}

func FormatStats(s models.UserStats) string {
	avg := AverageAccuracy(s)
	avgEmoji := "📊"
	if avg >= 70 {
		avgEmoji = "🎯"
	}

	return fmt.Sprintf(
		"📊 <b>Ваша статистика:</b>\n\n"+
			"%s <b>Последний квиз:</b>\n"+
			"   ✅ Правильных: %d из %d\n"+
			"   📈 Точность: %s\n\n"+
			"%s <b>Общая статистика:</b>\n"+
			"   🎯 Средняя точность: %s\n"+
			"   📊 Всего попыток: %d\n"+
			"   ✅ Всего правильных ответов: %d",
		Tier(Accuracy(s.LastCorrect, s.LastTotal)), s.LastCorrect, s.LastTotal,
		FormatAccuracy(s.LastCorrect, s.LastTotal),
		avgEmoji, FormatAccuracy(s.TotalCorrect, s.LastTotal*s.TotalAttempts),
		s.TotalAttempts, s.TotalCorrect,
	)
}

func FormatLeaderboard(rows []models.UserStats) string {
	if len(rows) == 0 {
		return "📭 Пока нет данных для лидерборда.\nПройдите квиз, чтобы попасть в топ!"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🏆 <b>Топ-%d игроков:</b>\n\n", len(rows))
	for i, row := range rows {
		fmt.Fprintf(&b, "%s %d. <b>%s</b>\n   ✅ %d/%d (%s)\n\n",
			medal(i+1), i+1, html.EscapeString(row.Username),
			row.LastCorrect, row.LastTotal, FormatAccuracy(row.LastCorrect, row.LastTotal))
	}
	b.WriteString("<i>Статистика обновляется после каждого прохождения квиза.</i>")

	return b.String()
}
