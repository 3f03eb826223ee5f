package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"studyhub/internal/app/models"
	"studyhub/internal/pkg/apperrors"
)

// IQuestionRepository defines the interface for question bank operations
type IQuestionRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Question, error)
	ListBySubject(ctx context.Context, subject string) ([]models.Question, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, questions []models.Question) error
}

// QuestionRepository handles question database operations
type QuestionRepository struct {
	db *pgxpool.Pool
}

// NewQuestionRepository creates a new QuestionRepository
func NewQuestionRepository(db *pgxpool.Pool) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	question := &models.Question{}
	err := r.db.QueryRow(ctx, `
		SELECT id, subject, content, options, answer
		FROM questions
		WHERE id = $1`,
		id).Scan(&question.ID, &question.Subject, &question.Content, &question.Options, &question.Answer)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("error fetching question: %w", err)
	}

	return question, nil
}

// ListBySubject retrieves all questions whose subject matches exactly.
// The answer column is included; hiding it is a known non-goal.
func (r *QuestionRepository) ListBySubject(ctx context.Context, subject string) ([]models.Question, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, subject, content, options, answer
		FROM questions
		WHERE subject = $1
		ORDER BY id`,
		subject)
	if err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0)
	for rows.Next() {
		var question models.Question
		if err := rows.Scan(&question.ID, &question.Subject, &question.Content, &question.Options, &question.Answer); err != nil {
			return nil, fmt.Errorf("error scanning question: %w", err)
		}
		questions = append(questions, question)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing questions: %w", err)
	}

	return questions, nil
}

// Count returns the number of questions in the bank
func (r *QuestionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting questions: %w", err)
	}
	return count, nil
}

// CreateBatch inserts the given questions in one transaction
func (r *QuestionRepository) CreateBatch(ctx context.Context, questions []models.Question) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, question := range questions {
		_, err := tx.Exec(ctx, `
			INSERT INTO questions (subject, content, options, answer)
			VALUES ($1, $2, $3, $4)`,
			question.Subject, question.Content, question.Options, question.Answer)
		if err != nil {
			return fmt.Errorf("error inserting question: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
