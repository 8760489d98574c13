package models

type UserStats struct {
	UserID        int64  `db:"user_id" json:"user_id"`
	Username      string `db:"username" json:"username"`
	LastCorrect   int    `db:"last_correct" json:"last_correct"`
	LastTotal     int    `db:"last_total" json:"last_total"`
	TotalCorrect  int    `db:"total_correct" json:"total_correct"`
	TotalAttempts int    `db:"total_attempts" json:"total_attempts"`
}
