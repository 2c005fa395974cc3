package eventbus

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/domain/events"
)

// HandlerFunc processes one event.
type HandlerFunc func(ctx context.Context, event events.Event) error

// Bus defines the contract for publishing and subscribing to domain events.
type Bus interface {
	Emit(ctx context.Context, event events.Event) error
	Register(eventType string, handler HandlerFunc)
}

// Runner is implemented by buses that consume from an external broker and
// must be started after every handler is registered.
type Runner interface {
	Start(ctx context.Context) error
	Close() error
}
