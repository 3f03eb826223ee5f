package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"studyhub/internal/app/models"
	"studyhub/internal/app/models/dto"
	"studyhub/internal/app/repositories"
	"studyhub/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserKey   = "currentUser"
	ContextUserIDKey = "userID"
	ContextRoleKey   = "role"
)

// AuthMiddleware gates protected routes behind bearer-token authentication
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   repositories.IUserRepository
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo repositories.IUserRepository) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
	}
}

// JWTAuth validates the Authorization header and resolves the token back to
// a user record. A token whose subject no longer exists is rejected the same
// way as an invalid one.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header missing")
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			abortUnauthorized(c, "Invalid token format")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Authentication failed")
				errorDetail = errorDetail.WithDetails("Token has expired")
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
				return
			}
			abortUnauthorized(c, "Invalid token")
			return
		}

		user, err := m.userRepo.GetByUsername(c.Request.Context(), claims.Username)
		if err != nil {
			abortUnauthorized(c, "User no longer exists")
			return
		}

		c.Set(ContextUserKey, user)
		c.Set(ContextUserIDKey, user.ID)
		c.Set(ContextRoleKey, string(user.Role))

		c.Next()
	}
}

// RoleRequired allows only callers holding the given role. It must run
// after JWTAuth.
func (m *AuthMiddleware) RoleRequired(requiredRole models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleKey)
		if !exists {
			abortUnauthorized(c, "User role not found")
			return
		}

		roleStr, ok := role.(string)
		if !ok || roleStr != string(requiredRole) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied")
			errorDetail = errorDetail.WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by JWTAuth
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortUnauthorized(c *gin.Context, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
	errorDetail = errorDetail.WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
}
