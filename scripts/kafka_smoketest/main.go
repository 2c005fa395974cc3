package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/infra/eventbus"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// RunSmokeTest sends a domain event through the Kafka event bus and waits
// for it to come back, to verify a local cluster before switching the
// server to EVENT_BUS_DRIVER=kafka.
func RunSmokeTest() error {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	brokers := config.EnvList("BROKERS", "localhost:9093,localhost:9092")
	if len(brokers) == 0 {
		return errors.New("BROKERS is empty")
	}
	topic := config.EnvOr("TOPIC", "backoffice.events.smoketest")

	ctx, cancel := context.WithTimeout(context.Background(), config.EnvDuration("TIMEOUT", 30*time.Second))
	defer cancel()

	// Create the topic if it doesn't exist
	{
		dialer := &kafka.Dialer{Timeout: 5 * time.Second}
		conn, err := dialer.DialContext(ctx, "tcp", brokers[0])
		if err != nil {
			logger.Error("dial failed", "error", err)
			return err
		}
		defer func() { _ = conn.Close() }()
		err = conn.CreateTopics(kafka.TopicConfig{
			Topic:             topic,
			NumPartitions:     1,
			ReplicationFactor: 1,
		})
		if err != nil && !strings.Contains(strings.ToLower(err.Error()), "already exists") {
			logger.Error("create topic failed", "topic", topic, "error", err)
			return err
		}
		logger.Info("topic ready", "topic", topic)
	}

	bus, err := eventbus.NewWithKafka(eventbus.KafkaEventBusConfig{
		Brokers:      strings.Join(brokers, ","),
		Topic:        topic,
		GroupID:      "backoffice-smoketest-" + uuid.NewString()[:8],
		SASLUsername: os.Getenv("KAFKA_SASL_USERNAME"),
		SASLPassword: os.Getenv("KAFKA_SASL_PASSWORD"),
	}, logger)
	if err != nil {
		return err
	}
	defer func() { _ = bus.Close() }()

	sent := &events.TransactionEvent{
		EventType:     events.TransactionReconciled,
		TransactionID: uuid.New(),
		Kind:          "deposit",
		Status:        "approved",
		Amount:        "1.00",
		Currency:      "BRL",
		At:            time.Now().UTC(),
	}
	received := make(chan *events.TransactionEvent, 1)
	bus.Register(events.TransactionReconciled, func(_ context.Context, e events.Event) error {
		if te, ok := e.(*events.TransactionEvent); ok && te.TransactionID == sent.TransactionID {
			select {
			case received <- te:
			default:
			}
		}
		return nil
	})
	if err := bus.Start(ctx); err != nil {
		return err
	}
	// the reader starts at the latest offset, so keep emitting until the
	// group has joined and one copy comes back
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()
	for done := false; !done; {
		if err := bus.Emit(ctx, sent); err != nil {
			logger.Error("emit failed", "error", err)
			return err
		}
		logger.Info("produced", "transactionID", sent.TransactionID)
		select {
		case te := <-received:
			logger.Info("consumed", "transactionID", te.TransactionID, "amount", te.Amount)
			done = true
		case <-ticker.C:
		case <-ctx.Done():
			logger.Error("event did not come back", "error", ctx.Err())
			return errors.New("kafka smoke test timed out")
		}
	}
	logger.Info("kafka smoke test passed")
	return nil
}

// main runs the smoke test and exits non-zero on failure.
func main() {
	if err := RunSmokeTest(); err != nil {
		os.Exit(1)
	}
}
