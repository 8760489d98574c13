package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadToken = errors.New("malformed callback token")

// maxAttemptLen keeps the token well inside the 64 byte callback data limit.
const maxAttemptLen = 16

// answerToken is the callback payload of an option button: q{question}_a{position}_{attempt}.
type answerToken struct {
	question int
	position int
	attempt  string
}

func encodeAnswerToken(attempt string, question, position int) string {
	return fmt.Sprintf("q%d_a%d_%s", question, position, attempt)
}

func parseAnswerToken(data string) (answerToken, error) {
	rest, ok := strings.CutPrefix(data, "q")
	if !ok {
		return answerToken{}, errBadToken
	}

	q, rest, ok := strings.Cut(rest, "_a")
	if !ok {
		return answerToken{}, errBadToken
	}
	a, attempt, ok := strings.Cut(rest, "_")
	if !ok {
		return answerToken{}, errBadToken
	}

	question, err := parseIndex(q)
	if err != nil {
		return answerToken{}, err
	}
	position, err := parseIndex(a)
	if err != nil {
		return answerToken{}, err
	}
	if !isAttempt(attempt) {
		return answerToken{}, errBadToken
	}

	return answerToken{question: question, position: position, attempt: attempt}, nil
}

// parseIndex accepts only non-empty runs of ASCII digits.
func parseIndex(s string) (int, error) {
	if s == "" {
		return 0, errBadToken
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, errBadToken
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errBadToken, err)
	}
	return n, nil
}

// isAttempt accepts a short run of lowercase hex digits.
func isAttempt(s string) bool {
	if s == "" || len(s) > maxAttemptLen {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return false
		}
	}
	return true
}
