package dto

// RegisterRequest represents a user registration request
type RegisterRequest struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	Grade    *string `json:"grade"`
}

// UserResponse represents a created or fetched user, digest excluded
type UserResponse struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Role     string  `json:"role"`
	Grade    *string `json:"grade"`
	Avatar   *string `json:"avatar,omitempty"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type" example:"bearer"`
	Role        string  `json:"role"`
	Username    string  `json:"username"`
	Grade       *string `json:"grade"`
	Avatar      *string `json:"avatar"`
}
