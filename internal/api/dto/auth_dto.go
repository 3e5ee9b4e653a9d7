package dto

import (
	"time"

	"github.com/spec-kit/board-service/internal/domain"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

// SigninRequest payload for login.
type SigninRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// NewAuthResponse maps an issued token and its user to the wire shape.
func NewAuthResponse(token string, expiresAt time.Time, user *domain.User) AuthResponse {
	return AuthResponse{
		Token:     token,
		Username:  user.Username,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}
}
