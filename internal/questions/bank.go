package questions

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestions []byte

var ErrEmptyBank = errors.New("question bank is empty")

// Bank is the static question set. It is never mutated after construction.
type Bank struct {
	mu        sync.Mutex
	rnd       *rand.Rand
	questions []models.Question
}

// Load reads the bank from path, or from the embedded set when path is empty.
func Load(path string) (*Bank, error) {
	data := defaultQuestions
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read questions file: %w", err)
		}
		data = raw
	}

	return Parse(data)
}

func Parse(data []byte) (*Bank, error) {
	var questions []models.Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("failed to parse questions: %w", err)
	}

	return NewBank(questions)
}

func NewBank(questions []models.Question) (*Bank, error) {
	if len(questions) == 0 {
		return nil, ErrEmptyBank
	}

	bank := make([]models.Question, len(questions))
	for i, q := range questions {
		if err := validate(q); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
		q.ID = i
		q.Options = append([]string(nil), q.Options...)
		bank[i] = q
	}

	seed := uint64(time.Now().UnixNano())
	return &Bank{
		rnd:       rand.New(rand.NewPCG(seed, seed>>1)),
		questions: bank,
	}, nil
}

func (b *Bank) Size() int {
	return len(b.questions)
}

// Sample returns n distinct questions chosen uniformly at random.
// n is clamped to the bank size; n <= 0 yields an empty slice.
func (b *Bank) Sample(n int) []models.Question {
	if n <= 0 {
		return []models.Question{}
	}
	n = min(n, len(b.questions))

	b.mu.Lock()
	picks := b.rnd.Perm(len(b.questions))[:n]
	b.mu.Unlock()

	sample := make([]models.Question, 0, n)
	for _, ix := range picks {
		sample = append(sample, b.questions[ix])
	}

	return sample
}

func validate(q models.Question) error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("empty question text")
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("need at least 2 options, got %d", len(q.Options))
	}
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return errors.New("empty option text")
		}
	}
	if q.Correct < 0 || q.Correct >= len(q.Options) {
		return fmt.Errorf("correct option %d out of range", q.Correct)
	}

	return nil
}
