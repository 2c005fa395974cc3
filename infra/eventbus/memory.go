package eventbus

import (
	"context"
	"log/slog"
	"sync"

	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/eventbus"
)

// publishedLimit bounds the history kept for Published.
const publishedLimit = 1024

// MemoryEventBus dispatches events synchronously inside the process.
type MemoryEventBus struct {
	handlers  *handlerSet
	mu        sync.RWMutex
	published []events.Event
}

// NewWithMemory creates a new in-memory event bus.
func NewWithMemory(logger *slog.Logger) *MemoryEventBus {
	return &MemoryEventBus{
		handlers:  newHandlerSet(logger.With("bus", "memory")),
		published: make([]events.Event, 0),
	}
}

// Register registers a handler for a specific event type.
func (b *MemoryEventBus) Register(eventType string, handler eventbus.HandlerFunc) {
	b.handlers.add(eventType, handler)
}

// Emit dispatches the event to all registered handlers for its type.
// Handler errors are logged, never returned to the emitter.
func (b *MemoryEventBus) Emit(ctx context.Context, event events.Event) error {
	b.mu.Lock()
	if len(b.published) >= publishedLimit {
		b.published = append(b.published[:0], b.published[len(b.published)-publishedLimit/2:]...)
	}
	b.published = append(b.published, event)
	b.mu.Unlock()

	b.handlers.dispatch(ctx, event)
	return nil
}

// Published returns the events emitted so far. This is useful for testing.
func (b *MemoryEventBus) Published() []events.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]events.Event(nil), b.published...)
}

// ClearPublished clears the list of published events.
func (b *MemoryEventBus) ClearPublished() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.published = b.published[:0]
}

var _ eventbus.Bus = (*MemoryEventBus)(nil)
