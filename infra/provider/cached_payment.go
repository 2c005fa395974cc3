package provider

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/cache"
	"github.com/amirasaad/backoffice/pkg/provider"
)

// CachedGateway caches GetPayment results that can no longer change.
// Searches always go to the gateway.
type CachedGateway struct {
	next   provider.PaymentGateway
	cache  cache.PaymentCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGateway wraps next with cache.
func NewCachedGateway(
	next provider.PaymentGateway,
	cache cache.PaymentCache,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedGateway {
	return &CachedGateway{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *CachedGateway) Name() string {
	return c.next.Name()
}

// GetPayment returns the cached payment for this token, or fetches it.
func (c *CachedGateway) GetPayment(
	ctx context.Context,
	accessToken, paymentID string,
) (*provider.Payment, error) {
	key := c.key(accessToken, paymentID)
	if p, err := c.cache.Get(ctx, key); err == nil && p != nil {
		c.logger.Debug("Cache hit for GetPayment", "paymentID", paymentID)
		return p, nil
	} else if err != nil {
		c.logger.Error("Error getting from cache", "key", key, "error", err)
	}

	p, err := c.next.GetPayment(ctx, accessToken, paymentID)
	if err != nil {
		return nil, err
	}
	if isFinal(p.Status) {
		if err := c.cache.Set(ctx, key, p, c.ttl); err != nil {
			c.logger.Error("Error setting cache for GetPayment", "key", key, "error", err)
		}
	}
	return p, nil
}

func (c *CachedGateway) SearchPayments(
	ctx context.Context,
	accessToken string,
	criteria provider.SearchCriteria,
) ([]provider.Payment, error) {
	return c.next.SearchPayments(ctx, accessToken, criteria)
}

// key scopes entries by token so a payment cached for one merchant is not
// served to another that cannot see it.
func (c *CachedGateway) key(accessToken, paymentID string) string {
	sum := sha256.Sum256([]byte(accessToken))
	return c.next.Name() + ":" + hex.EncodeToString(sum[:6]) + ":" + paymentID
}

func isFinal(status provider.PaymentStatus) bool {
	switch status {
	case provider.PaymentApproved, provider.PaymentRejected, provider.PaymentCancelled,
		provider.PaymentRefunded, provider.PaymentChargeBack:
		return true
	}
	return false
}

var _ provider.PaymentGateway = (*CachedGateway)(nil)
