package models

import (
	"time"
)

// WrongQuestion links a user to a question answered incorrectly, based on
// the 'wrong_questions' table. Rows are append-only; repeated misses of the
// same question create additional rows.
type WrongQuestion struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	QuestionID int64     `json:"questionId" db:"question_id"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// StudyRecord holds the per-day answered-question count for a user, based
// on the 'study_records' table. At most one row exists per (user, date).
type StudyRecord struct {
	ID     int64     `json:"id" db:"id"`
	UserID int64     `json:"userId" db:"user_id"`
	Date   time.Time `json:"date" db:"date"`
	Count  int       `json:"count" db:"count"`
}
