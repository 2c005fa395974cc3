package apikey

import (
	"context"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/google/uuid"
)

// Repository stores issued API keys.
type Repository interface {
	Create(ctx context.Context, key *apikey.APIKey) error
	Get(ctx context.Context, id uuid.UUID) (*apikey.APIKey, error)
	GetByPrefix(ctx context.Context, prefix string) (*apikey.APIKey, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*apikey.APIKey, error)
	Revoke(ctx context.Context, id uuid.UUID, at time.Time) error
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}
