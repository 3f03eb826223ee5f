package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"studyhub/internal/app/models"
)

// ICourseRepository defines the interface for course catalog operations
type ICourseRepository interface {
	ListBySubject(ctx context.Context, subject string) ([]models.Course, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, courses []models.Course) error
}

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// ListBySubject retrieves all courses whose subject matches exactly.
// An unknown subject yields an empty slice, not an error.
func (r *CourseRepository) ListBySubject(ctx context.Context, subject string) ([]models.Course, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, subject, video_url
		FROM courses
		WHERE subject = $1
		ORDER BY id`,
		subject)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	courses := make([]models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Title, &course.Subject, &course.VideoURL); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}

	return courses, nil
}

// Count returns the number of catalog rows
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting courses: %w", err)
	}
	return count, nil
}

// CreateBatch inserts the given courses in one transaction
func (r *CourseRepository) CreateBatch(ctx context.Context, courses []models.Course) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, course := range courses {
		_, err := tx.Exec(ctx, `
			INSERT INTO courses (title, subject, video_url)
			VALUES ($1, $2, $3)`,
			course.Title, course.Subject, course.VideoURL)
		if err != nil {
			return fmt.Errorf("error inserting course %q: %w", course.Title, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
