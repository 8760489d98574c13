package service

import "errors"

var (
	// ErrNoActiveQuiz is returned when an answer arrives for a user without a running quiz.
	ErrNoActiveQuiz = errors.New("no active quiz")
	// ErrStaleQuestion is returned for answers to a question other than the current one,
	// including buttons left over from an earlier attempt.
	ErrStaleQuestion = errors.New("answer refers to a stale question")
	// ErrMappingLost is returned when the option order of the current question is unknown.
	ErrMappingLost = errors.New("shuffle mapping not found")
	// ErrInvalidOption is returned when the chosen position does not exist.
	ErrInvalidOption = errors.New("invalid option position")
)
