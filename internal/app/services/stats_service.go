package services

import (
	"context"
	"time"

	"studyhub/internal/app/models"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/app/repositories"
)

// StatsService aggregates platform-wide numbers for administrators
type StatsService struct {
	userRepo     repositories.IUserRepository
	questionRepo repositories.IQuestionRepository
	progressRepo repositories.IProgressRepository
	now          func() time.Time
}

// NewStatsService creates a new StatsService
func NewStatsService(userRepo repositories.IUserRepository, questionRepo repositories.IQuestionRepository, progressRepo repositories.IProgressRepository) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

// SystemStats reports the student count, question bank size and the number
// of users active today.
func (s *StatsService) SystemStats(ctx context.Context) (*dto.SystemStats, error) {
	students, err := s.userRepo.CountByRole(ctx, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	questions, err := s.questionRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	active, err := s.progressRepo.CountActiveUsers(ctx, dateOnly(s.now()))
	if err != nil {
		return nil, err
	}

	return &dto.SystemStats{
		TotalStudents:  students,
		TotalQuestions: questions,
		DailyActive:    active,
	}, nil
}
