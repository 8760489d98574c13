package models

// Question is one entry of the static question bank. ID is its position in the bank.
type Question struct {
	ID      int      `json:"id" yaml:"-"`
	Text    string   `json:"question" yaml:"question"`
	Options []string `json:"options" yaml:"options"`
	Correct int      `json:"correct_option" yaml:"correct_option"`
}

// QuizSession is the persisted progress of a user's current attempt.
type QuizSession struct {
	UserID  int64 `db:"user_id"`
	Index   int   `db:"question_index"`
	Correct int   `db:"correct_answers"`
	Order   []int `db:"-"`
}

// ShuffleMapping records how the options of a presented question were permuted.
// OriginalIndices[position] is the option index in the bank question.
type ShuffleMapping struct {
	OriginalIndices []int `json:"original_indices"`
	CorrectPosition int   `json:"correct_position"`
}

// Deck is the sampled question set of one attempt. Attempt is a short random
// tag carried by the option buttons so taps from an earlier attempt are rejected.
type Deck struct {
	Attempt   string     `json:"attempt"`
	Questions []Question `json:"questions"`
}

type PresentedQuestion struct {
	Attempt string
	Index   int
	Total   int
	Text    string
	Options []string
}

type AnswerIntent struct {
	UserID        int64
	Username      string
	Attempt       string
	QuestionIndex int
	Position      int
}

type AnswerFeedback struct {
	Correct     bool
	Chosen      string
	RightAnswer string
}

type QuizSummary struct {
	Correct  int
	Total    int
	Accuracy float64
}

// QuizStep is what the engine hands back to the transport after an intent.
// Any combination of fields may be set: feedback for the answered question,
// then either the next question or the final summary.
type QuizStep struct {
	Feedback *AnswerFeedback
	Question *PresentedQuestion
	Summary  *QuizSummary
}
