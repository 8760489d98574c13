package cache

import (
	"context"
	"sync"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
)

// Cache keeps the sampled questions and shuffle mappings of running quizzes
// in process memory. Everything is lost on restart.
type Cache struct {
	mu       sync.Mutex
	decks    map[int64]models.Deck
	mappings map[int64]map[int]models.ShuffleMapping
}

func NewCache() *Cache {
	return &Cache{
		decks:    make(map[int64]models.Deck),
		mappings: make(map[int64]map[int]models.ShuffleMapping),
	}
}

func (c *Cache) SetDeck(_ context.Context, userID int64, deck models.Deck) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.decks[userID] = deck
	return nil
}

func (c *Cache) Deck(_ context.Context, userID int64) (models.Deck, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	deck, exists := c.decks[userID]
	return deck, exists, nil
}

func (c *Cache) SetMapping(_ context.Context, userID int64, index int, mapping models.ShuffleMapping) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	byIndex, ok := c.mappings[userID]
	if !ok {
		byIndex = make(map[int]models.ShuffleMapping)
		c.mappings[userID] = byIndex
	}
	byIndex[index] = mapping
	return nil
}

func (c *Cache) Mapping(_ context.Context, userID int64, index int) (models.ShuffleMapping, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mapping, exists := c.mappings[userID][index]
	return mapping, exists, nil
}

// DropQuiz forgets the deck and every mapping of the user.
func (c *Cache) DropQuiz(_ context.Context, userID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.decks, userID)
	delete(c.mappings, userID)
	return nil
}
