package dto

import (
	"time"

	"github.com/google/uuid"
)

// AccountCreate is the input for a new merchant account.
type AccountCreate struct {
	Name          string `json:"name" validate:"required,max=100"`
	Holder        string `json:"holder" validate:"max=150"`
	Bank          string `json:"bank" validate:"max=100"`
	CBU           string `json:"cbu" validate:"max=32"`
	Alias         string `json:"alias" validate:"max=20"`
	Provider      string `json:"provider" validate:"omitempty,oneof=bank mercadopago"`
	MPAccessToken string `json:"mp_access_token" validate:"max=255"`
	MPPublicKey   string `json:"mp_public_key" validate:"max=255"`
	MPCollectorID string `json:"mp_collector_id" validate:"max=64"`
	Priority      int    `json:"priority" validate:"gte=0"`
	Active        bool   `json:"active"`
}

// AccountUpdate carries the fields to change. Nil means unchanged.
type AccountUpdate struct {
	Name          *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Holder        *string `json:"holder,omitempty" validate:"omitempty,max=150"`
	Bank          *string `json:"bank,omitempty" validate:"omitempty,max=100"`
	CBU           *string `json:"cbu,omitempty" validate:"omitempty,max=32"`
	Alias         *string `json:"alias,omitempty" validate:"omitempty,max=20"`
	MPAccessToken *string `json:"mp_access_token,omitempty" validate:"omitempty,max=255"`
	MPPublicKey   *string `json:"mp_public_key,omitempty" validate:"omitempty,max=255"`
	MPCollectorID *string `json:"mp_collector_id,omitempty" validate:"omitempty,max=64"`
	Priority      *int    `json:"priority,omitempty" validate:"omitempty,gte=0"`
}

// AccountFilter narrows List.
type AccountFilter struct {
	Active   *bool
	Provider string
}

// AccountRead is the public view of an account. The access token is masked.
type AccountRead struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Holder        string    `json:"holder,omitempty"`
	Bank          string    `json:"bank,omitempty"`
	CBU           string    `json:"cbu,omitempty"`
	Alias         string    `json:"alias,omitempty"`
	Provider      string    `json:"provider"`
	MPAccessToken string    `json:"mp_access_token,omitempty"`
	MPPublicKey   string    `json:"mp_public_key,omitempty"`
	MPCollectorID string    `json:"mp_collector_id,omitempty"`
	Priority      int       `json:"priority"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
