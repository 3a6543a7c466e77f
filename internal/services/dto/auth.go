package dto

import (
	"time"

	"github.com/trapham24065/api-contact-book/internal/models"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,max=150"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// UserSummary is returned after registration.
type UserSummary struct {
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterResult carries the created user and the plaintext API key. The key
// is shown exactly once and never retrievable later.
type RegisterResult struct {
	User   UserSummary `json:"user"`
	ApiKey string      `json:"api_key"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserInfo is the user block of the login response.
type UserInfo struct {
	UserID uint              `json:"user_id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   models.UserRole   `json:"role"`
	Status models.UserStatus `json:"status"`
}

// LoginResponse follows the token response contract: expires_in is the
// issuer TTL converted from minutes to seconds.
type LoginResponse struct {
	Status    string   `json:"status"`
	Message   string   `json:"message"`
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int      `json:"expires_in"`
	User      UserInfo `json:"user"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,strongpassword,nefield=CurrentPassword"`
}
