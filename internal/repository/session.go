package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
)

type SessionR struct {
	db QueryI
}

func NewSessionRepository(db QueryI) *SessionR {
	return &SessionR{db: db}
}

// ResetSession overwrites any previous session of the user.
func (s *SessionR) ResetSession(ctx context.Context, userID int64, order []int) error {
	encoded, err := json.Marshal(order)
	if err != nil {
		return fmt.Errorf("failed to encode question order: %w", err)
	}

	query := `INSERT INTO quiz_state (user_id, question_index, correct_answers, selected_questions)
		VALUES (?, 0, 0, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET
			question_index = EXCLUDED.question_index,
			correct_answers = EXCLUDED.correct_answers,
			selected_questions = EXCLUDED.selected_questions
	`
	_, err = s.db.ExecContext(ctx, s.db.Rebind(query), userID, string(encoded))
	if err != nil {
		return fmt.Errorf("failed to reset session for user %d: %w", userID, err)
	}

	return nil
}

// Session returns the stored progress, or a zero session when the user has none.
func (s *SessionR) Session(ctx context.Context, userID int64) (models.QuizSession, error) {
	query := `SELECT user_id, question_index, correct_answers
		FROM quiz_state
		WHERE user_id = ?`

	session := models.QuizSession{UserID: userID}
	err := s.db.GetContext(ctx, &session, s.db.Rebind(query), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.QuizSession{UserID: userID}, nil
		}
		return models.QuizSession{}, fmt.Errorf("failed to get session for user %d: %w", userID, err)
	}

	return session, nil
}

// SetIndex moves the question pointer. A missing row is created with zero correct answers.
func (s *SessionR) SetIndex(ctx context.Context, userID int64, index int) error {
	query := `INSERT INTO quiz_state (user_id, question_index)
		VALUES (?, ?)
		ON CONFLICT (user_id)
		DO UPDATE SET question_index = EXCLUDED.question_index
	`
	_, err := s.db.ExecContext(ctx, s.db.Rebind(query), userID, index)
	if err != nil {
		return fmt.Errorf("failed to set question index for user %d: %w", userID, err)
	}

	return nil
}

// IncrementCorrect adds one correct answer. It fails with ErrSessionNotFound
// instead of silently dropping the increment when the user has no session.
func (s *SessionR) IncrementCorrect(ctx context.Context, userID int64) error {
	query := `UPDATE quiz_state
		SET correct_answers = correct_answers + 1
		WHERE user_id = ?`

	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), userID)
	if err != nil {
		return fmt.Errorf("failed to increment correct answers for user %d: %w", userID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (s *SessionR) QuestionOrder(ctx context.Context, userID int64) ([]int, error) {
	query := `SELECT selected_questions FROM quiz_state WHERE user_id = ?`

	var raw string
	err := s.db.GetContext(ctx, &raw, s.db.Rebind(query), userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []int{}, nil
		}
		return nil, fmt.Errorf("failed to get question order for user %d: %w", userID, err)
	}

	order := []int{}
	if raw == "" {
		return order, nil
	}
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return nil, fmt.Errorf("failed to decode question order for user %d: %w", userID, err)
	}

	return order, nil
}
