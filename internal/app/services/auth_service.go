package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"studyhub/internal/app/models"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/app/repositories"
	"studyhub/internal/pkg/apperrors"
	"studyhub/internal/pkg/auth"
)

// AuthService handles registration, login and token resolution
type AuthService struct {
	userRepo   repositories.IUserRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.IUserRepository, jwtService *auth.JWTService, logger zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new student account. The username must be unused,
// compared case-sensitively.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	exists, err := s.userRepo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error checking username: %w", err)
	}
	if exists {
		return nil, apperrors.ErrUsernameAlreadyExists
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username: req.Username,
		Password: hashed,
		Role:     models.RoleStudent,
		Grade:    req.Grade,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Int64("userID", user.ID).Msg("User registered")

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		Grade:    user.Grade,
	}, nil
}

// Login verifies the credentials and issues a bearer token. Unknown
// username and wrong password produce the same generic error.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	s.logger.Info().Str("username", user.Username).Msg("User logged in")

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        string(user.Role),
		Username:    user.Username,
		Grade:       user.Grade,
		Avatar:      user.Avatar,
	}, nil
}

// Resolve maps a validated token's subject back to a user record. It fails
// if the user no longer exists.
func (s *AuthService) Resolve(ctx context.Context, claims *auth.Claims) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, claims.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}
