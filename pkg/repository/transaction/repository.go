package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores deposits and withdrawals.
type Repository interface {
	Create(ctx context.Context, t *transaction.Transaction) error
	Update(ctx context.Context, t *transaction.Transaction) error
	Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	// GetForUpdate reads the row with a lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error)
	GetByGatewayPaymentID(ctx context.Context, paymentID string) (*transaction.Transaction, error)
	// ListPendingDeposits returns pending deposits created in [from, to],
	// oldest first.
	ListPendingDeposits(ctx context.Context, from, to time.Time) ([]*transaction.Transaction, error)
	List(ctx context.Context, filter dto.TransactionFilter) ([]*transaction.Transaction, int64, error)
	// ExpirePendingDeposits expires pending deposits created before cutoff.
	ExpirePendingDeposits(ctx context.Context, cutoff, at time.Time) (int64, error)
}

// IPNRepository stores gateway notifications.
type IPNRepository interface {
	Create(ctx context.Context, e *transaction.IPNEvent) error
	Update(ctx context.Context, e *transaction.IPNEvent) error
	Get(ctx context.Context, id uuid.UUID) (*transaction.IPNEvent, error)
	GetByResource(ctx context.Context, gateway, topic, resourceID string) (*transaction.IPNEvent, error)
	// ListRetryable returns unmatched or failed events below the attempt limit.
	ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*transaction.IPNEvent, error)
	List(ctx context.Context, filter dto.IPNEventFilter) ([]*transaction.IPNEvent, int64, error)
}
