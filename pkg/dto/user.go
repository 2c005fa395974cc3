package dto

import (
	"time"

	"github.com/google/uuid"
)

// UserCreate represents the data needed to create a new user.
type UserCreate struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=72"`
	Names    string `json:"names,omitempty" validate:"max=255"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin agent viewer"`
}

// UserUpdate represents the data that can be updated for a user.
type UserUpdate struct {
	Names    *string `json:"names,omitempty" validate:"omitempty,max=255"`
	Role     *string `json:"role,omitempty" validate:"omitempty,oneof=admin agent viewer"`
	Active   *bool   `json:"active,omitempty"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

// UserDelete carries the password confirmation required for self deletion.
type UserDelete struct {
	Password string `json:"password"`
}

// UserRead represents a read-optimized view of a user.
type UserRead struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Names     string    `json:"names,omitempty"`
	Role      string    `json:"role"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginInput is the body of POST /auth/login.
type LoginInput struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required,max=72"`
}

// Page is a page of results.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// Paging bounds shared by the list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// NormalizePage clamps page to at least 1 and size to (0, MaxPageSize].
func NormalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return page, size
}
