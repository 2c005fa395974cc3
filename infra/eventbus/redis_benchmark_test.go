//go:build redis
// +build redis

package eventbus

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Run with: REDIS_URL=redis://localhost:6379/0 go test -tags redis -bench . ./infra/eventbus

func setupRedisBusForBenchmark(b *testing.B) *RedisEventBus {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		b.Skip("REDIS_URL not set")
	}
	opts, err := redis.ParseURL(url)
	if err != nil {
		b.Fatalf("Failed to parse REDIS_URL: %v", err)
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		b.Skipf("Redis unreachable: %v", err)
	}
	stream := "bench.events." + uuid.NewString()[:8]
	bus, err := NewWithRedis(client, stream, "bench", slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		b.Fatalf("Failed to create Redis event bus: %v", err)
	}
	b.Cleanup(func() {
		_ = client.Del(context.Background(), stream).Err()
		_ = client.Close()
	})
	return bus
}

func benchmarkEvent() *events.TransactionEvent {
	return &events.TransactionEvent{
		EventType:     events.TransactionReconciled,
		TransactionID: uuid.New(),
		Amount:        "100.00",
		Currency:      "ARS",
		At:            time.Now().UTC(),
	}
}

func BenchmarkRedisEmit(b *testing.B) {
	bus := setupRedisBusForBenchmark(b)
	ctx := context.Background()
	event := benchmarkEvent()

	for b.Loop() {
		_ = bus.Emit(ctx, event)
	}
}

func BenchmarkRedisEmitParallel(b *testing.B) {
	bus := setupRedisBusForBenchmark(b)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		event := benchmarkEvent()
		for pb.Next() {
			_ = bus.Emit(ctx, event)
		}
	})
}
