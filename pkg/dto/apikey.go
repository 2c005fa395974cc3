package dto

import (
	"time"

	"github.com/google/uuid"
)

// APIKeyCreate is the input for issuing a key.
type APIKeyCreate struct {
	Name        string     `json:"name" validate:"required,max=100"`
	Permissions []string   `json:"permissions" validate:"required,min=1,dive,required"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// APIKeyRead is the public view of a key. The secret is never included.
type APIKeyRead struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Prefix      string     `json:"prefix"`
	Permissions []string   `json:"permissions"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	RevokedAt   *time.Time `json:"revoked_at,omitempty"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// APIKeyIssued is returned once, on issuance.
type APIKeyIssued struct {
	APIKeyRead
	Key string `json:"key"`
}
