package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/cache"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/redis/go-redis/v9"
)

// RedisPaymentCache implements PaymentCache using Redis.
type RedisPaymentCache struct {
	client redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// NewRedisPaymentCache creates a new RedisPaymentCache on an existing client.
func NewRedisPaymentCache(client redis.UniversalClient, prefix string, logger *slog.Logger) *RedisPaymentCache {
	return &RedisPaymentCache{client: client, prefix: prefix, logger: logger}
}

func (r *RedisPaymentCache) key(key string) string {
	return r.prefix + key
}

func (r *RedisPaymentCache) Get(ctx context.Context, key string) (*provider.Payment, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis cache miss", "key", key)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis cache get error", "key", key, "error", err)
		return nil, err
	}
	var payment provider.Payment
	if err := json.Unmarshal(val, &payment); err != nil {
		r.logger.Error("Redis cache unmarshal error", "key", key, "error", err)
		return nil, err
	}
	r.logger.Debug("Redis cache hit", "key", key)
	return &payment, nil
}

func (r *RedisPaymentCache) Set(ctx context.Context, key string, payment *provider.Payment, ttl time.Duration) error {
	data, err := json.Marshal(payment)
	if err != nil {
		r.logger.Error("Redis cache marshal error", "key", key, "error", err)
		return err
	}
	if err := r.client.Set(ctx, r.key(key), data, ttl).Err(); err != nil {
		r.logger.Error("Redis cache set error", "key", key, "error", err)
		return err
	}
	r.logger.Debug("Redis cache set", "key", key, "ttl", ttl)
	return nil
}

func (r *RedisPaymentCache) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		r.logger.Error("Redis cache delete error", "key", key, "error", err)
		return err
	}
	return nil
}

var _ cache.PaymentCache = (*RedisPaymentCache)(nil)
