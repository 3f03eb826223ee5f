package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"studyhub/internal/app/models"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/app/repositories"
	"studyhub/internal/pkg/auth"
)

// ProfileService handles profile updates and per-user statistics
type ProfileService struct {
	userRepo     repositories.IUserRepository
	progressRepo repositories.IProgressRepository
	logger       zerolog.Logger
}

// NewProfileService creates a new ProfileService
func NewProfileService(userRepo repositories.IUserRepository, progressRepo repositories.IProgressRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{
		userRepo:     userRepo,
		progressRepo: progressRepo,
		logger:       logger,
	}
}

// UpdateProfile overwrites grade and avatar with whatever the request
// carries; a missing field clears the stored value, the same as an explicit
// null. The password is re-hashed only when a non-empty value is supplied.
func (s *ProfileService) UpdateProfile(ctx context.Context, user *models.User, req *dto.UpdateProfileRequest) (*dto.UpdateProfileResponse, error) {
	var hashed string
	if req.Password != "" {
		var err error
		hashed, err = auth.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %w", err)
		}
	}

	if err := s.userRepo.UpdateProfile(ctx, user.ID, req.Grade, req.Avatar, hashed); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("Profile updated")

	return &dto.UpdateProfileResponse{
		Message:  "profile updated",
		Grade:    req.Grade,
		Username: user.Username,
		Avatar:   req.Avatar,
	}, nil
}

// Heatmap returns the per-day activity counts for a user keyed by calendar
// date.
func (s *ProfileService) Heatmap(ctx context.Context, userID int64) (map[string]int, error) {
	records, err := s.progressRepo.ListStudyRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	heatmap := make(map[string]int, len(records))
	for _, record := range records {
		heatmap[record.Date.Format("2006-01-02")] = record.Count
	}
	return heatmap, nil
}

// Mistakes returns the questions a user answered incorrectly, one entry per
// wrong attempt.
func (s *ProfileService) Mistakes(ctx context.Context, userID int64) ([]models.Question, error) {
	return s.progressRepo.ListWrongQuestions(ctx, userID)
}
