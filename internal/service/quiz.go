package service

import (
	"context"
	"fmt"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type QuestionBankI interface {
	Sample(n int) []models.Question
}

type SessionRI interface {
	ResetSession(ctx context.Context, userID int64, order []int) error
	Session(ctx context.Context, userID int64) (models.QuizSession, error)
	SetIndex(ctx context.Context, userID int64, index int) error
	IncrementCorrect(ctx context.Context, userID int64) error
	QuestionOrder(ctx context.Context, userID int64) ([]int, error)
}

type StatsRI interface {
	RecordResult(ctx context.Context, userID int64, username string, correct, total int) error
	UserStats(ctx context.Context, userID int64) (models.UserStats, bool, error)
	Leaderboard(ctx context.Context, limit int) ([]models.UserStats, error)
}

// QuizCacheI holds the state of running quizzes that is not kept in SQL:
// the sampled questions and the option order of presented questions.
type QuizCacheI interface {
	SetDeck(ctx context.Context, userID int64, deck models.Deck) error
	Deck(ctx context.Context, userID int64) (models.Deck, bool, error)
	SetMapping(ctx context.Context, userID int64, index int, mapping models.ShuffleMapping) error
	Mapping(ctx context.Context, userID int64, index int) (models.ShuffleMapping, bool, error)
	DropQuiz(ctx context.Context, userID int64) error
}

// QuizS runs the quiz state machine: start, present, answer, finish.
type QuizS struct {
	bank       QuestionBankI
	sessions   SessionRI
	stats      StatsRI
	cache      QuizCacheI
	size       int
	perm       permFunc
	newAttempt func() string
	locks      *userLocks
	log        *zap.Logger
}

func NewQuizService(bank QuestionBankI, sessions SessionRI, stats StatsRI, cache QuizCacheI, size int, log *zap.Logger) *QuizS {
	return &QuizS{
		bank:       bank,
		sessions:   sessions,
		stats:      stats,
		cache:      cache,
		size:       size,
		perm:       randomPerm,
		newAttempt: randomAttempt,
		locks:      newUserLocks(),
		log:        log,
	}
}

// randomAttempt returns 8 hex characters, short enough for callback data.
func randomAttempt() string {
	return uuid.NewString()[:8]
}

// StartQuiz begins a new attempt, discarding any previous one, and returns the first question.
func (q *QuizS) StartQuiz(ctx context.Context, userID int64, username string) (models.QuizStep, error) {
	unlock := q.locks.lock(userID)
	defer unlock()

	deck := models.Deck{
		Attempt:   q.newAttempt(),
		Questions: q.bank.Sample(q.size),
	}
	order := make([]int, len(deck.Questions))
	for i := range order {
		order[i] = i
	}

	if err := q.sessions.ResetSession(ctx, userID, order); err != nil {
		return models.QuizStep{}, err
	}
	if err := q.cache.DropQuiz(ctx, userID); err != nil {
		return models.QuizStep{}, fmt.Errorf("failed to drop previous quiz: %w", err)
	}
	if err := q.cache.SetDeck(ctx, userID, deck); err != nil {
		return models.QuizStep{}, fmt.Errorf("failed to cache questions: %w", err)
	}

	q.log.Debug("quiz started",
		zap.Int64("user_id", userID),
		zap.String("attempt", deck.Attempt),
		zap.Int("questions", len(deck.Questions)),
	)

	return q.present(ctx, userID, username, deck)
}

// Answer checks the chosen option of the current question and moves the session forward.
// Rejected answers leave the session untouched.
func (q *QuizS) Answer(ctx context.Context, intent models.AnswerIntent) (models.QuizStep, error) {
	unlock := q.locks.lock(intent.UserID)
	defer unlock()

	userID := intent.UserID

	deck, ok, err := q.cache.Deck(ctx, userID)
	if err != nil {
		return models.QuizStep{}, fmt.Errorf("failed to load questions: %w", err)
	}
	if !ok {
		return models.QuizStep{}, ErrNoActiveQuiz
	}
	if intent.Attempt != deck.Attempt {
		return models.QuizStep{}, ErrStaleQuestion
	}

	session, err := q.sessions.Session(ctx, userID)
	if err != nil {
		return models.QuizStep{}, err
	}
	if session.Index >= len(deck.Questions) {
		// every question is answered but the previous finish failed; complete it now
		q.log.Info("completing unfinished quiz", zap.Int64("user_id", userID))
		summary, err := q.finish(ctx, userID, intent.Username)
		if err != nil {
			return models.QuizStep{}, err
		}
		return models.QuizStep{Summary: &summary}, nil
	}
	if intent.QuestionIndex != session.Index {
		return models.QuizStep{}, ErrStaleQuestion
	}

	mapping, ok, err := q.cache.Mapping(ctx, userID, session.Index)
	if err != nil {
		return models.QuizStep{}, fmt.Errorf("failed to load shuffle mapping: %w", err)
	}
	if !ok {
		return models.QuizStep{}, ErrMappingLost
	}
	if intent.Position < 0 || intent.Position >= len(mapping.OriginalIndices) {
		return models.QuizStep{}, ErrInvalidOption
	}

	question := deck.Questions[session.Index]
	isCorrect := intent.Position == mapping.CorrectPosition
	if isCorrect {
		if err := q.sessions.IncrementCorrect(ctx, userID); err != nil {
			return models.QuizStep{}, err
		}
	}

	feedback := models.AnswerFeedback{
		Correct:     isCorrect,
		Chosen:      question.Options[mapping.OriginalIndices[intent.Position]],
		RightAnswer: question.Options[mapping.OriginalIndices[mapping.CorrectPosition]],
	}

	next := session.Index + 1
	if err := q.sessions.SetIndex(ctx, userID, next); err != nil {
		return models.QuizStep{}, err
	}

	step, err := q.present(ctx, userID, intent.Username, deck)
	if err != nil {
		return models.QuizStep{}, err
	}
	step.Feedback = &feedback

	return step, nil
}

// present shows the current question or finishes the quiz when none is left.
func (q *QuizS) present(ctx context.Context, userID int64, username string, deck models.Deck) (models.QuizStep, error) {
	session, err := q.sessions.Session(ctx, userID)
	if err != nil {
		return models.QuizStep{}, err
	}

	if session.Index >= len(deck.Questions) {
		summary, err := q.finish(ctx, userID, username)
		if err != nil {
			return models.QuizStep{}, err
		}
		return models.QuizStep{Summary: &summary}, nil
	}

	question := deck.Questions[session.Index]
	mapping, options := shuffleOptions(question, q.perm)
	if err := q.cache.SetMapping(ctx, userID, session.Index, mapping); err != nil {
		return models.QuizStep{}, fmt.Errorf("failed to cache shuffle mapping: %w", err)
	}

	return models.QuizStep{
		Question: &models.PresentedQuestion{
			Attempt: deck.Attempt,
			Index:   session.Index,
			Total:   len(deck.Questions),
			Text:    question.Text,
			Options: options,
		},
	}, nil
}

// finish records the attempt and forgets the deck. The deck is dropped only after
// the result is stored, so a failed finish can be completed by the next tap.
func (q *QuizS) finish(ctx context.Context, userID int64, username string) (models.QuizSummary, error) {
	session, err := q.sessions.Session(ctx, userID)
	if err != nil {
		return models.QuizSummary{}, err
	}
	order, err := q.sessions.QuestionOrder(ctx, userID)
	if err != nil {
		return models.QuizSummary{}, err
	}
	total := len(order)

	if err := q.stats.RecordResult(ctx, userID, username, session.Correct, total); err != nil {
		return models.QuizSummary{}, err
	}

	if err := q.cache.DropQuiz(ctx, userID); err != nil {
		q.log.Warn("failed to drop finished quiz", zap.Int64("user_id", userID), zap.Error(err))
	}

	q.log.Info("quiz finished",
		zap.Int64("user_id", userID),
		zap.Int("correct", session.Correct),
		zap.Int("total", total),
	)

	return models.QuizSummary{
		Correct:  session.Correct,
		Total:    total,
		Accuracy: Accuracy(session.Correct, total),
	}, nil
}
