package dto

import "github.com/trapham24065/api-contact-book/internal/models"

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,max=150"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Role       *int   `json:"role" validate:"required,oneof=0 1"`
	DailyQuota *int   `json:"daily_quota" validate:"omitempty,min=0"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name" validate:"omitempty,max=150"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Status     *string `json:"status" validate:"omitempty,oneof=active inactive suspended"`
	Role       *int    `json:"role" validate:"omitempty,oneof=0 1"`
	DailyQuota *int    `json:"daily_quota" validate:"omitempty,min=0"`
}

type ListUsersQuery struct {
	Role   *models.UserRole
	Status models.UserStatus
	Sort   string
	Page   int
	Limit  int
}

// ListResult is the shared pagination envelope.
type ListResult[T any] struct {
	Items []T   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}
