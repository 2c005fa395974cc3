package cache

import (
	"context"
	"time"

	"github.com/amirasaad/backoffice/pkg/provider"
)

// PaymentCache stores gateway payments that reached a final status.
// Get returns nil, nil on a miss.
type PaymentCache interface {
	Get(ctx context.Context, key string) (*provider.Payment, error)
	Set(ctx context.Context, key string, payment *provider.Payment, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
