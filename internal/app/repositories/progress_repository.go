package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"studyhub/internal/app/models"
)

// IProgressRepository defines the interface for wrong-answer log and
// per-day activity operations
type IProgressRepository interface {
	RecordSubmission(ctx context.Context, userID, questionID int64, wrong bool, day time.Time) error
	ListStudyRecords(ctx context.Context, userID int64) ([]models.StudyRecord, error)
	ListWrongQuestions(ctx context.Context, userID int64) ([]models.Question, error)
	CountActiveUsers(ctx context.Context, day time.Time) (int64, error)
}

// ProgressRepository handles wrong_questions and study_records operations
type ProgressRepository struct {
	db *pgxpool.Pool
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *pgxpool.Pool) *ProgressRepository {
	return &ProgressRepository{
		db: db,
	}
}

// RecordSubmission applies the side effects of grading one submission in a
// single transaction: a wrong answer appends a wrong_questions row, and the
// day's study_records count is created or incremented. The upsert relies on
// the unique (user_id, date) constraint so concurrent submissions cannot
// lose updates.
func (r *ProgressRepository) RecordSubmission(ctx context.Context, userID, questionID int64, wrong bool, day time.Time) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if wrong {
		_, err = tx.Exec(ctx, `
			INSERT INTO wrong_questions (user_id, question_id, created_at)
			VALUES ($1, $2, $3)`,
			userID, questionID, day)
		if err != nil {
			return fmt.Errorf("error recording wrong answer: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO study_records (user_id, date, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (user_id, date)
		DO UPDATE SET count = study_records.count + 1`,
		userID, day)
	if err != nil {
		return fmt.Errorf("error updating study record: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListStudyRecords retrieves all study records for a user
func (r *ProgressRepository) ListStudyRecords(ctx context.Context, userID int64) ([]models.StudyRecord, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, date, count
		FROM study_records
		WHERE user_id = $1
		ORDER BY date`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing study records: %w", err)
	}
	defer rows.Close()

	records := make([]models.StudyRecord, 0)
	for rows.Next() {
		var record models.StudyRecord
		if err := rows.Scan(&record.ID, &record.UserID, &record.Date, &record.Count); err != nil {
			return nil, fmt.Errorf("error scanning study record: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing study records: %w", err)
	}

	return records, nil
}

// ListWrongQuestions retrieves the questions a user answered incorrectly by
// joining through the wrong-answer log. The join is not distinct, so a
// question missed twice appears twice.
func (r *ProgressRepository) ListWrongQuestions(ctx context.Context, userID int64) ([]models.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT q.id, q.subject, q.content, q.options, q.answer
		FROM questions q
		JOIN wrong_questions w ON w.question_id = q.id
		WHERE w.user_id = $1
		ORDER BY w.id`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("error listing wrong questions: %w", err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.Subject, &question.Content, &question.Options, &question.Answer); err != nil {
			return nil, fmt.Errorf("error scanning wrong question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing wrong questions: %w", err)
	}

	return questions, nil
}

// CountActiveUsers counts the users with a study record on the given day
func (r *ProgressRepository) CountActiveUsers(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(DISTINCT user_id) FROM study_records WHERE date = $1`,
		day).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting active users: %w", err)
	}
	return count, nil
}
