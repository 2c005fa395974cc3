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
	"github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

// KafkaEventBusConfig holds configuration for the Kafka event bus.
type KafkaEventBusConfig struct {
	Brokers      string
	Topic        string
	GroupID      string
	SASLUsername string
	SASLPassword string
}

// KafkaEventBus publishes every event on one topic. Each instance consumes
// with its own group id so all instances see every event.
type KafkaEventBus struct {
	brokers  []string
	topic    string
	writer   *kafka.Writer
	reader   *kafka.Reader
	dialer   *kafka.Dialer
	groupID  string
	handlers *handlerSet
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWithKafka creates a new Kafka-backed event bus.
func NewWithKafka(cfg KafkaEventBusConfig, logger *slog.Logger) (*KafkaEventBus, error) {
	brokers := parseBrokers(cfg.Brokers)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("kafka event bus: brokers are required")
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, fmt.Errorf("kafka event bus: topic is required")
	}
	if cfg.GroupID == "" {
		return nil, fmt.Errorf("kafka event bus: group id is required")
	}
	dialer, transport, err := newKafkaDialer(cfg)
	if err != nil {
		return nil, err
	}
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  cfg.Topic,
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
	}
	if transport != nil {
		writer.Transport = transport
	}
	logger = logger.With("bus", "kafka", "topic", cfg.Topic, "group_id", cfg.GroupID)
	return &KafkaEventBus{
		brokers:  brokers,
		topic:    cfg.Topic,
		writer:   writer,
		dialer:   dialer,
		groupID:  cfg.GroupID,
		handlers: newHandlerSet(logger),
		logger:   logger,
	}, nil
}

// Register registers an event handler for a specific event type.
func (b *KafkaEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.handlers.add(eventType, handler)
}

// Emit publishes an event to Kafka.
func (b *KafkaEventBus) Emit(ctx context.Context, event events.Event) error {
	envBytes, err := encode(event)
	if err != nil {
		return fmt.Errorf("kafka event bus: %w", err)
	}
	msg := kafka.Message{
		Key:   []byte(event.Type()),
		Value: envBytes,
		Time:  time.Now(),
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka event bus: publish failed: %w", err)
	}
	return nil
}

// Start connects the consumer group reader.
func (b *KafkaEventBus) Start(ctx context.Context) error {
	conn, err := b.dialer.DialContext(ctx, "tcp", b.brokers[0])
	if err != nil {
		return fmt.Errorf("kafka event bus: connection failed: %w", err)
	}
	_ = conn.Close()

	b.reader = kafka.NewReader(kafka.ReaderConfig{
		Brokers:     b.brokers,
		GroupID:     b.groupID,
		Topic:       b.topic,
		StartOffset: kafka.LastOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     time.Second,
		Dialer:      b.dialer,
	})
	ctx, b.cancel = context.WithCancel(ctx)
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.consumeLoop(ctx)
	}()
	b.logger.Info("kafka event bus started", "brokers", b.brokers)
	return nil
}

func (b *KafkaEventBus) consumeLoop(ctx context.Context) {
	for {
		msg, err := b.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return
			}
			b.logger.Error("kafka consume error", "error", err)
			time.Sleep(500 * time.Millisecond)
			continue
		}
		evt, err := decode(msg.Value)
		if err != nil {
			b.logger.Error("dropping undecodable event", "error", err, "offset", msg.Offset)
		} else {
			b.handlers.dispatch(ctx, evt)
		}
		if err := b.reader.CommitMessages(ctx, msg); err != nil {
			b.logger.Error("kafka commit error", "error", err, "partition", msg.Partition, "offset", msg.Offset)
		}
	}
}

// Close stops the consumer and flushes the writer.
func (b *KafkaEventBus) Close() error {
	if b.cancel != nil {
		b.cancel()
	}
	if b.reader != nil {
		_ = b.reader.Close()
	}
	b.wg.Wait()
	return b.writer.Close()
}

func newKafkaDialer(cfg KafkaEventBusConfig) (*kafka.Dialer, *kafka.Transport, error) {
	dialer := &kafka.Dialer{Timeout: 5 * time.Second}
	username := strings.TrimSpace(cfg.SASLUsername)
	password := strings.TrimSpace(cfg.SASLPassword)
	if username == "" && password == "" {
		return dialer, nil, nil
	}
	if username == "" || password == "" {
		return nil, nil, fmt.Errorf("kafka event bus: sasl username and password are required")
	}
	mechanism := plain.Mechanism{Username: username, Password: password}
	dialer.SASLMechanism = mechanism
	return dialer, &kafka.Transport{SASL: mechanism}, nil
}

func parseBrokers(brokers string) []string {
	parts := strings.Split(brokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

var (
	_ eventbus.Bus    = (*KafkaEventBus)(nil)
	_ eventbus.Runner = (*KafkaEventBus)(nil)
)
