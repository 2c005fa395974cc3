package realtime

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/eventbus"
)

// Relay registers bus handlers that forward conversation, message and
// reconciliation events to the hub. With a cross-instance bus every
// instance relays every event to its own clients.
func Relay(bus eventbus.Bus, hub *Hub) {
	for _, eventType := range events.ConversationEventTypes {
		bus.Register(eventType, func(_ context.Context, e events.Event) error {
			ce, ok := e.(*events.ConversationEvent)
			if !ok {
				return nil
			}
			hub.Broadcast(Message{Channel: DashboardChannel, Event: ce.Type(), Data: ce})
			hub.Broadcast(Message{Channel: ConversationChannel(ce.ConversationID), Event: ce.Type(), Data: ce})
			return nil
		})
	}
	bus.Register(events.TransactionReconciled, func(_ context.Context, e events.Event) error {
		hub.Broadcast(Message{Channel: DashboardChannel, Event: e.Type(), Data: e})
		return nil
	})
}
