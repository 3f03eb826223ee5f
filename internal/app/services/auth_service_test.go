package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/pkg/apperrors"
	"studyhub/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *fakeUserRepo, *auth.JWTService) {
	userRepo := newFakeUserRepo()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: 24 * time.Hour,
		TokenIssuer:    "studyhub-test",
	})
	return NewAuthService(userRepo, jwtService, zerolog.Nop()), userRepo, jwtService
}

func TestAuthService_Register(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	grade := "初二"
	resp, err := service.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123", Grade: &grade})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.Equal(t, "student", resp.Role)
	require.NotNil(t, resp.Grade)
	assert.Equal(t, "初二", *resp.Grade)
	assert.NotZero(t, resp.ID)

	// The stored digest is not the plaintext and verifies
	stored, err := userRepo.GetByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "pw123", stored.Password)
	assert.True(t, auth.CheckPassword(stored.Password, "pw123"))
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	service, userRepo, _ := newTestAuthService()
	ctx := context.Background()

	first, err := service.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	_, err = service.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "other"})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)

	// First account is unaffected and still verifies its password
	stored, err := userRepo.GetByID(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, auth.CheckPassword(stored.Password, "pw123"))
}

func TestAuthService_Login(t *testing.T) {
	service, _, jwtService := newTestAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	resp, err := service.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.Equal(t, "student", resp.Role)
	assert.Equal(t, "alice", resp.Username)

	// The issued token resolves back to the same user
	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)

	user, err := service.Resolve(ctx, claims)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Login_GenericFailure(t *testing.T) {
	service, _, _ := newTestAuthService()
	ctx := context.Background()

	_, err := service.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	// Wrong password and unknown username yield the same error
	_, wrongPassword := service.Login(ctx, &dto.LoginRequest{Username: "alice", Password: "nope"})
	_, unknownUser := service.Login(ctx, &dto.LoginRequest{Username: "bob", Password: "pw123"})

	assert.ErrorIs(t, wrongPassword, apperrors.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownUser)
}

func TestAuthService_Resolve_DeletedUser(t *testing.T) {
	service, userRepo, jwtService := newTestAuthService()
	ctx := context.Background()

	resp, err := service.Register(ctx, &dto.RegisterRequest{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(resp.ID, "alice", "student")
	require.NoError(t, err)
	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)

	delete(userRepo.users, resp.ID)

	_, err = service.Resolve(ctx, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}
