package service

import (
	"math/rand/v2"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
)

// permFunc returns a permutation of [0, n).
type permFunc func(n int) []int

func randomPerm(n int) []int {
	return rand.Perm(n)
}

// shuffleOptions permutes the options of q and remembers where the correct one went.
func shuffleOptions(q models.Question, perm permFunc) (models.ShuffleMapping, []string) {
	order := perm(len(q.Options))

	mapping := models.ShuffleMapping{OriginalIndices: order}
	options := make([]string, len(order))
	for pos, orig := range order {
		options[pos] = q.Options[orig]
		if orig == q.Correct {
			mapping.CorrectPosition = pos
		}
	}

	return mapping, options
}
