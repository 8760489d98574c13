package redis

import (
	"context"
	"testing"
	"time"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T, ttl time.Duration) (*QuizCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewQuizCache(client, ttl), mr
}

func TestQuizCache_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, mr := newTestCache(t, time.Hour)

	_, ok, err := c.Deck(ctx, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	deck := models.Deck{
		Attempt: "0f3a9c21",
		Questions: []models.Question{
			{ID: 3, Text: "Столица Австралии?", Options: []string{"Сидней", "Канберра"}, Correct: 1},
			{ID: 8, Text: "2 + 2?", Options: []string{"3", "4", "5"}, Correct: 1},
		},
	}
	require.NoError(t, c.SetDeck(ctx, 42, deck))

	mapping := models.ShuffleMapping{OriginalIndices: []int{2, 0, 1}, CorrectPosition: 2}
	require.NoError(t, c.SetMapping(ctx, 42, 1, mapping))

	gotDeck, ok, err := c.Deck(ctx, 42)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, deck, gotDeck)

	gotMapping, ok, err := c.Mapping(ctx, 42, 1)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, mapping, gotMapping)

	_, ok, err = c.Mapping(ctx, 42, 0)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.True(t, mr.Exists("quiz:42:deck"))
	assert.True(t, mr.Exists("quiz:42:mappings"))
	assert.Greater(t, mr.TTL("quiz:42:mappings"), time.Duration(0))

	require.NoError(t, c.DropQuiz(ctx, 42))
	assert.False(t, mr.Exists("quiz:42:deck"))
	assert.False(t, mr.Exists("quiz:42:mappings"))
}

func TestQuizCache_Expires(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, c.SetDeck(ctx, 1, models.Deck{Questions: []models.Question{{ID: 1, Text: "q", Options: []string{"a", "b"}}}}))
	mr.FastForward(2 * time.Minute)

	_, ok, err := c.Deck(ctx, 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestQuizCache_CorruptedPayload(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	c, mr := newTestCache(t, time.Minute)

	require.NoError(t, mr.Set("quiz:5:deck", "{not json"))
	_, _, err := c.Deck(ctx, 5)
	require.Error(t, err)

	mr.HSet("quiz:5:mappings", "0", "[")
	_, _, err = c.Mapping(ctx, 5, 0)
	require.Error(t, err)
}
