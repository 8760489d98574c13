package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/redis/go-redis/v9"
)

// QuizCache keeps running quizzes in redis so an answer can still be checked
// after the bot restarts.
//
//	quiz:{userID}:deck      JSON deck: attempt tag and the sampled questions
//	quiz:{userID}:mappings  hash {questionIndex} -> JSON shuffle mapping
//
// Both keys expire after ttl of inactivity.
type QuizCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewQuizCache(client *redis.Client, ttl time.Duration) *QuizCache {
	return &QuizCache{client: client, ttl: ttl}
}

func (c *QuizCache) SetDeck(ctx context.Context, userID int64, deck models.Deck) error {
	data, err := json.Marshal(deck)
	if err != nil {
		return fmt.Errorf("encode deck: %w", err)
	}
	if err := c.client.Set(ctx, deckKey(userID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("store deck: %w", err)
	}
	return nil
}

func (c *QuizCache) Deck(ctx context.Context, userID int64) (models.Deck, bool, error) {
	data, err := c.client.Get(ctx, deckKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Deck{}, false, nil
	}
	if err != nil {
		return models.Deck{}, false, fmt.Errorf("load deck: %w", err)
	}

	var deck models.Deck
	if err := json.Unmarshal(data, &deck); err != nil {
		return models.Deck{}, false, fmt.Errorf("decode deck: %w", err)
	}
	return deck, true, nil
}

func (c *QuizCache) SetMapping(ctx context.Context, userID int64, index int, mapping models.ShuffleMapping) error {
	data, err := json.Marshal(mapping)
	if err != nil {
		return fmt.Errorf("encode mapping: %w", err)
	}

	key := mappingsKey(userID)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, strconv.Itoa(index), data)
	if c.ttl > 0 {
		pipe.Expire(ctx, key, c.ttl)
		pipe.Expire(ctx, deckKey(userID), c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store mapping: %w", err)
	}
	return nil
}

func (c *QuizCache) Mapping(ctx context.Context, userID int64, index int) (models.ShuffleMapping, bool, error) {
	data, err := c.client.HGet(ctx, mappingsKey(userID), strconv.Itoa(index)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.ShuffleMapping{}, false, nil
	}
	if err != nil {
		return models.ShuffleMapping{}, false, fmt.Errorf("load mapping: %w", err)
	}

	var mapping models.ShuffleMapping
	if err := json.Unmarshal(data, &mapping); err != nil {
		return models.ShuffleMapping{}, false, fmt.Errorf("decode mapping: %w", err)
	}
	return mapping, true, nil
}

func (c *QuizCache) DropQuiz(ctx context.Context, userID int64) error {
	if err := c.client.Del(ctx, deckKey(userID), mappingsKey(userID)).Err(); err != nil {
		return fmt.Errorf("drop quiz: %w", err)
	}
	return nil
}

func deckKey(userID int64) string {
	return "quiz:" + strconv.FormatInt(userID, 10) + ":deck"
}

func mappingsKey(userID int64) string {
	return "quiz:" + strconv.FormatInt(userID, 10) + ":mappings"
}
