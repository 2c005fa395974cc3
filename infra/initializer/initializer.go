package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/infra"
	infra_cache "github.com/amirasaad/backoffice/infra/cache"
	infra_eventbus "github.com/amirasaad/backoffice/infra/eventbus"
	infra_provider "github.com/amirasaad/backoffice/infra/provider"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/cache"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/eventbus"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies builds the logger, database, cache, event bus and
// provider clients. The returned cleanup releases the connections.
func InitializeDependencies(cfg *config.App) (
	deps *app.Deps,
	cleanup func(),
	err error,
) {
	deps = &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger
	var closers []func()
	cleanup = func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, cleanup, err
	}
	if sqlDB, err := db.DB(); err == nil {
		closers = append(closers, func() { _ = sqlDB.Close() })
	}
	if cfg.DB.AutoMigrate {
		if err := infra.Migrate(db, "up", logger); err != nil {
			return nil, cleanup, fmt.Errorf("auto migrate: %w", err)
		}
	}

	// Initialize unit of work
	deps.Uow = infra.NewUoW(db)

	// Redis is optional; without it the cache stays in memory.
	client, err := newRedisClient(cfg.Redis)
	if err != nil {
		logger.Warn("Redis unavailable; falling back to in-memory cache", "error", err)
		client = nil
	}
	if client != nil {
		closers = append(closers, func() { _ = client.Close() })
	}

	// Initialize event bus
	deps.EventBus, deps.Runner, err = initEventBus(cfg, client, logger)
	if err != nil {
		return nil, cleanup, fmt.Errorf("failed to create event bus: %w", err)
	}

	deps.Gateway = initGateway(cfg, client, logger)

	if zd := infra_provider.NewZendesk(cfg.Zendesk, logger); zd != nil {
		deps.Zendesk = zd
	} else {
		logger.Info("Zendesk integration disabled")
	}
	return deps, cleanup, nil
}

func newRedisClient(cfg *config.Redis) (redis.UniversalClient, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, nil
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = cfg.PoolSize
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// initEventBus selects the bus driver. An empty driver means memory.
func initEventBus(
	cfg *config.App,
	client redis.UniversalClient,
	logger *slog.Logger,
) (eventbus.Bus, eventbus.Runner, error) {
	busCfg := cfg.EventBus
	if busCfg == nil {
		busCfg = &config.EventBus{}
	}
	switch strings.ToLower(strings.TrimSpace(busCfg.Driver)) {
	case "", "memory":
		logger.Info("Using in-memory event bus")
		return infra_eventbus.NewWithMemory(logger), nil, nil
	case "redis":
		if client == nil {
			return nil, nil, errors.New("redis event bus requires a reachable REDIS_URL")
		}
		stream := "backoffice.events"
		if cfg.Redis != nil && cfg.Redis.Stream != "" {
			stream = cfg.Redis.Stream
		}
		bus, err := infra_eventbus.NewWithRedis(client, stream, consumerGroup(busCfg), logger)
		if err != nil {
			return nil, nil, err
		}
		return bus, bus, nil
	case "kafka":
		bus, err := infra_eventbus.NewWithKafka(infra_eventbus.KafkaEventBusConfig{
			Brokers:      busCfg.KafkaBrokers,
			Topic:        busCfg.KafkaTopic,
			GroupID:      consumerGroup(busCfg),
			SASLUsername: busCfg.SASLUsername,
			SASLPassword: busCfg.SASLPassword,
		}, logger)
		if err != nil {
			return nil, nil, err
		}
		return bus, bus, nil
	default:
		return nil, nil, fmt.Errorf("unsupported event bus driver %q", busCfg.Driver)
	}
}

// consumerGroup is unique per instance so every process sees every event.
func consumerGroup(cfg *config.EventBus) string {
	id := cfg.InstanceID
	if id == "" {
		id, _ = os.Hostname()
	}
	if id == "" {
		id = "local"
	}
	return "backoffice-" + id
}

func initGateway(cfg *config.App, client redis.UniversalClient, logger *slog.Logger) provider.PaymentGateway {
	if cfg.MercadoPago != nil && cfg.MercadoPago.Sandbox {
		logger.Warn("Using the sandbox payment gateway")
		return infra_provider.NewSandboxGateway()
	}
	mp := infra_provider.NewMercadoPago(cfg.MercadoPago, logger)
	var store cache.PaymentCache
	if client != nil {
		prefix := "backoffice:"
		if cfg.Redis != nil {
			prefix = cfg.Redis.KeyPrefix
		}
		store = infra_cache.NewRedisPaymentCache(client, prefix+"payments:", logger)
	} else {
		store = infra_cache.NewMemoryCache()
	}
	ttl := 10 * time.Minute
	if cfg.MercadoPago != nil && cfg.MercadoPago.PaymentCacheTTL > 0 {
		ttl = cfg.MercadoPago.PaymentCacheTTL
	}
	return infra_provider.NewCachedGateway(mp, store, ttl, logger)
}
