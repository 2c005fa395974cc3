package eventbus

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMemoryEventBus_Dispatch(t *testing.T) {
	bus := NewWithMemory(testLogger())
	var got []uuid.UUID
	bus.Register(events.AccountActivated, func(_ context.Context, e events.Event) error {
		got = append(got, e.(*events.AccountEvent).AccountID)
		return nil
	})

	id := uuid.New()
	require.NoError(t, bus.Emit(context.Background(), &events.AccountEvent{EventType: events.AccountActivated, AccountID: id}))
	require.NoError(t, bus.Emit(context.Background(), &events.AccountEvent{EventType: events.AccountDeactivated, AccountID: uuid.New()}))

	assert.Equal(t, []uuid.UUID{id}, got)
	assert.Len(t, bus.Published(), 2)
	bus.ClearPublished()
	assert.Empty(t, bus.Published())
}

func TestMemoryEventBus_HandlerFailuresAreIsolated(t *testing.T) {
	bus := NewWithMemory(testLogger())
	calls := 0
	bus.Register(events.MessageCreated, func(context.Context, events.Event) error {
		panic("boom")
	})
	bus.Register(events.MessageCreated, func(context.Context, events.Event) error {
		return errors.New("handler failed")
	})
	bus.Register(events.MessageCreated, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	err := bus.Emit(context.Background(), &events.ConversationEvent{EventType: events.MessageCreated})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestEnvelopeRoundTrip(t *testing.T) {
	in := &events.TransactionEvent{EventType: events.TransactionReconciled, TransactionID: uuid.New(), Amount: "100.00"}
	raw, err := encode(in)
	require.NoError(t, err)

	out, err := decode(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)

	_, err = decode([]byte(`{"type":"nope","payload":{}}`))
	assert.Error(t, err)
}

func TestHandlerSet_DispatchReportsFailure(t *testing.T) {
	h := newHandlerSet(testLogger())
	h.add(events.AccountActivated, func(context.Context, events.Event) error { return errors.New("x") })
	assert.False(t, h.dispatch(context.Background(), &events.AccountEvent{EventType: events.AccountActivated}))
	assert.True(t, h.dispatch(context.Background(), &events.AccountEvent{EventType: events.AccountDeactivated}))
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, parseBrokers(" a:9092, ,b:9092 "))
	_, err := NewWithKafka(KafkaEventBusConfig{Brokers: ""}, testLogger())
	assert.Error(t, err)
	_, _, err = newKafkaDialer(KafkaEventBusConfig{SASLUsername: "u"})
	assert.Error(t, err)
}
