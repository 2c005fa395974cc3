package account

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores merchant accounts.
type Repository interface {
	Create(ctx context.Context, a *account.Account) error
	Update(ctx context.Context, a *account.Account) error
	Get(ctx context.Context, id uuid.UUID) (*account.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter dto.AccountFilter) ([]*account.Account, error)
	// ListActiveMercadoPago returns active MercadoPago accounts with a token,
	// ordered by priority (lowest first) then age.
	ListActiveMercadoPago(ctx context.Context) ([]*account.Account, error)
}
