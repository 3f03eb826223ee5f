package services

import (
	"context"

	"studyhub/internal/app/models"
	"studyhub/internal/app/repositories"
)

// ContentService serves the read-only course catalog and question bank
type ContentService struct {
	courseRepo   repositories.ICourseRepository
	questionRepo repositories.IQuestionRepository
}

// NewContentService creates a new ContentService
func NewContentService(courseRepo repositories.ICourseRepository, questionRepo repositories.IQuestionRepository) *ContentService {
	return &ContentService{
		courseRepo:   courseRepo,
		questionRepo: questionRepo,
	}
}

// ListCourses returns the courses for an exact subject match
func (s *ContentService) ListCourses(ctx context.Context, subject string) ([]models.Course, error) {
	return s.courseRepo.ListBySubject(ctx, subject)
}

// ListQuestions returns the questions for an exact subject match
func (s *ContentService) ListQuestions(ctx context.Context, subject string) ([]models.Question, error) {
	return s.questionRepo.ListBySubject(ctx, subject)
}
