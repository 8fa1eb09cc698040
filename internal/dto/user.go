package dto

import (
	"github.com/SscSPs/money_tracker/internal/core/domain"
)

// RegisterRequest defines the data needed to sign up with a password.
type RegisterRequest struct {
	Username string `json:"username" binding:"required,notblank,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Name     string `json:"name" binding:"required,notblank,max=100"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleIDTokenRequest carries an ID token obtained by the client from Google Sign-In.
type GoogleIDTokenRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt int64         `json:"expiresAt"` // unix seconds
	User      *UserResponse `json:"user,omitempty"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID   string  `json:"userID"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
}

// ToUserResponse converts a domain.User.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Email:    user.Email,
	}
}
