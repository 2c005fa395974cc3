package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/eventbus"
)

type envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func encode(event events.Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal failed: %w", err)
	}
	envBytes, err := json.Marshal(envelope{Type: event.Type(), Payload: data})
	if err != nil {
		return nil, fmt.Errorf("envelope marshal failed: %w", err)
	}
	return envBytes, nil
}

func decode(raw []byte) (events.Event, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("unmarshal envelope: %w", err)
	}
	constructor, ok := events.EventTypes[env.Type]
	if !ok {
		return nil, fmt.Errorf("unknown event type %q", env.Type)
	}
	evt := constructor()
	if err := json.Unmarshal(env.Payload, evt); err != nil {
		return nil, fmt.Errorf("unmarshal payload for %s: %w", env.Type, err)
	}
	return evt, nil
}

// handlerSet is the handler registry shared by every driver.
type handlerSet struct {
	mu       sync.RWMutex
	handlers map[string][]eventbus.HandlerFunc
	logger   *slog.Logger
}

func newHandlerSet(logger *slog.Logger) *handlerSet {
	return &handlerSet{handlers: make(map[string][]eventbus.HandlerFunc), logger: logger}
}

func (h *handlerSet) add(eventType string, handler eventbus.HandlerFunc) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.handlers[eventType] = append(h.handlers[eventType], handler)
}

// dispatch runs every handler for the event and reports whether all succeeded.
// A panicking handler counts as a failure.
func (h *handlerSet) dispatch(ctx context.Context, evt events.Event) bool {
	h.mu.RLock()
	handlers := append([]eventbus.HandlerFunc(nil), h.handlers[evt.Type()]...)
	h.mu.RUnlock()

	ok := true
	for _, handler := range handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					h.logger.Error("panic recovered in event handler", "type", evt.Type(), "panic", r)
					ok = false
				}
			}()
			if err := handler(ctx, evt); err != nil {
				h.logger.Error("failed to process event", "type", evt.Type(), "error", err)
				ok = false
			}
		}()
	}
	return ok
}
