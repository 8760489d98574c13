package questions

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Kraff13/icosa-telegram-quiz-bot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testQuestions(n int) []models.Question {
	qs := make([]models.Question, 0, n)
	for i := range n {
		qs = append(qs, models.Question{
			Text:    "question",
			Options: []string{"a", "b", "c"},
			Correct: i % 3,
		})
	}
	return qs
}

func TestLoad_Embedded(t *testing.T) {
	t.Parallel()

	bank, err := Load("")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, bank.Size(), 10)
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "questions.yaml")
	data := []byte(`
- question: "2 + 2?"
  options: ["3", "4"]
  correct_option: 1
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	bank, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, bank.Size())

	got := bank.Sample(1)
	require.Len(t, got, 1)
	assert.Equal(t, "2 + 2?", got[0].Text)
	assert.Equal(t, 1, got[0].Correct)
	assert.Equal(t, 0, got[0].ID)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestNewBank_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		questions []models.Question
		wantErr   bool
	}{
		{
			name:      "valid",
			questions: testQuestions(3),
		},
		{
			name:    "empty bank",
			wantErr: true,
		},
		{
			name:      "one option",
			questions: []models.Question{{Text: "q", Options: []string{"a"}}},
			wantErr:   true,
		},
		{
			name:      "correct out of range",
			questions: []models.Question{{Text: "q", Options: []string{"a", "b"}, Correct: 2}},
			wantErr:   true,
		},
		{
			name:      "negative correct",
			questions: []models.Question{{Text: "q", Options: []string{"a", "b"}, Correct: -1}},
			wantErr:   true,
		},
		{
			name:      "blank text",
			questions: []models.Question{{Text: "  ", Options: []string{"a", "b"}}},
			wantErr:   true,
		},
		{
			name:      "blank option",
			questions: []models.Question{{Text: "q", Options: []string{"a", ""}}},
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := NewBank(tt.questions)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestBank_Sample(t *testing.T) {
	t.Parallel()

	bank, err := NewBank(testQuestions(15))
	require.NoError(t, err)

	tests := []struct {
		name string
		n    int
		want int
	}{
		{name: "subset", n: 10, want: 10},
		{name: "single", n: 1, want: 1},
		{name: "whole bank", n: 15, want: 15},
		{name: "clamped", n: 40, want: 15},
		{name: "zero", n: 0, want: 0},
		{name: "negative", n: -3, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := bank.Sample(tt.n)
			require.Len(t, got, tt.want)

			seen := make(map[int]bool, len(got))
			for _, q := range got {
				assert.False(t, seen[q.ID], "question %d sampled twice", q.ID)
				seen[q.ID] = true
				assert.GreaterOrEqual(t, q.ID, 0)
				assert.Less(t, q.ID, bank.Size())
			}
		})
	}
}

func TestBank_SampleConcurrent(t *testing.T) {
	t.Parallel()

	bank, err := NewBank(testQuestions(20))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Len(t, bank.Sample(10), 10)
		}()
	}
	wg.Wait()
}
