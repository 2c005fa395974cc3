package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/eventbus"
	"github.com/redis/go-redis/v9"
)

// streamMaxLen caps the stream so it does not grow unbounded.
const streamMaxLen = 10000

// RedisEventBus publishes events on a Redis stream. Every instance reads
// through its own consumer group so each process sees every event.
type RedisEventBus struct {
	client   redis.UniversalClient
	stream   string
	group    string
	consumer string
	handlers *handlerSet
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithRedis creates a Redis stream backed bus. group should be unique per
// instance for fan-out semantics.
func NewWithRedis(client redis.UniversalClient, stream, group string, logger *slog.Logger) (*RedisEventBus, error) {
	if client == nil || stream == "" || group == "" {
		return nil, fmt.Errorf("redis event bus: client, stream, and group are required")
	}
	logger = logger.With("bus", "redis", "stream", stream, "group", group)
	return &RedisEventBus{
		client:   client,
		stream:   stream,
		group:    group,
		consumer: group + "-consumer",
		handlers: newHandlerSet(logger),
		logger:   logger,
	}, nil
}

// Register registers a handler. Handlers added after Start still receive events.
func (b *RedisEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.handlers.add(eventType, handler)
}

// Emit publishes an event to the Redis stream.
func (b *RedisEventBus) Emit(ctx context.Context, event events.Event) error {
	b.logger.Debug("emitting event", "type", event.Type())
	envBytes, err := encode(event)
	if err != nil {
		b.logger.Error("failed to marshal event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: %w", err)
	}
	err = b.client.XAdd(ctx, &redis.XAddArgs{
		Stream: b.stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]any{"event": string(envBytes)},
	}).Err()
	if err != nil {
		b.logger.Error("failed to emit event", "error", err, "type", event.Type())
		return fmt.Errorf("redis event bus: emit failed: %w", err)
	}
	return nil
}

// Start creates the consumer group and begins reading in the background.
func (b *RedisEventBus) Start(ctx context.Context) error {
	// "$" skips history: a fresh instance only needs events from now on.
	err := b.client.XGroupCreateMkStream(ctx, b.stream, b.group, "$").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("redis event bus: create group: %w", err)
	}
	ctx, b.cancel = context.WithCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consume(ctx)
	}()
	b.logger.Info("redis event bus started")
	return nil
}

func (b *RedisEventBus) consume(ctx context.Context) {
	for ctx.Err() == nil {
		res, err := b.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    b.group,
			Consumer: b.consumer,
			Streams:  []string{b.stream, ">"},
			Count:    16,
			Block:    5 * time.Second,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) || ctx.Err() != nil {
				continue
			}
			b.logger.Error("error reading from stream", "error", err)
			time.Sleep(time.Second)
			continue
		}
		for _, stream := range res {
			for _, msg := range stream.Messages {
				b.handle(ctx, msg)
			}
		}
	}
}

func (b *RedisEventBus) handle(ctx context.Context, msg redis.XMessage) {
	defer func() {
		if err := b.client.XAck(ctx, b.stream, b.group, msg.ID).Err(); err != nil {
			b.logger.Error("failed to acknowledge message", "error", err, "msg_id", msg.ID)
		}
	}()
	raw, ok := msg.Values["event"].(string)
	if !ok {
		return
	}
	evt, err := decode([]byte(raw))
	if err != nil {
		b.logger.Error("dropping undecodable event", "error", err, "msg_id", msg.ID)
		return
	}
	if !b.handlers.dispatch(ctx, evt) {
		b.pushToDLQ(ctx, msg.Values)
	}
}

// pushToDLQ keeps the raw event for inspection.
func (b *RedisEventBus) pushToDLQ(ctx context.Context, values map[string]any) {
	dlqStream := b.stream + "-DLQ"
	if err := b.client.XAdd(ctx, &redis.XAddArgs{Stream: dlqStream, Values: values}).Err(); err != nil {
		b.logger.Error("failed to push to DLQ", "error", err, "stream", dlqStream)
		return
	}
	b.logger.Warn("event pushed to DLQ", "stream", dlqStream)
}

// Close stops the consumer.
func (b *RedisEventBus) Close() error {
	if b.cancel != nil {
		b.cancel()
	}
	b.wg.Wait()
	return nil
}

var (
	_ eventbus.Bus    = (*RedisEventBus)(nil)
	_ eventbus.Runner = (*RedisEventBus)(nil)
)
