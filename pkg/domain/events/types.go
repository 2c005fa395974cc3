// Package events defines the domain events published on the event bus.
package events

// Event is anything that can travel on the bus.
type Event interface {
	Type() string
}

// Event type names. They double as topic suffixes and websocket event names.
const (
	AccountActivated      = "account.activated"
	AccountDeactivated    = "account.deactivated"
	ConversationCreated   = "conversation.created"
	ConversationUpdated   = "conversation.updated"
	ConversationClosed    = "conversation.closed"
	ConversationDeleted   = "conversation.deleted"
	MessageCreated        = "message.created"
	TransactionReconciled = "transaction.reconciled"
)

// EventTypes maps a type name to a zero value used to decode payloads
// coming from an external bus.
var EventTypes = map[string]func() Event{
	AccountActivated:      func() Event { return &AccountEvent{EventType: AccountActivated} },
	AccountDeactivated:    func() Event { return &AccountEvent{EventType: AccountDeactivated} },
	ConversationCreated:   func() Event { return &ConversationEvent{EventType: ConversationCreated} },
	ConversationUpdated:   func() Event { return &ConversationEvent{EventType: ConversationUpdated} },
	ConversationClosed:    func() Event { return &ConversationEvent{EventType: ConversationClosed} },
	ConversationDeleted:   func() Event { return &ConversationEvent{EventType: ConversationDeleted} },
	MessageCreated:        func() Event { return &ConversationEvent{EventType: MessageCreated} },
	TransactionReconciled: func() Event { return &TransactionEvent{EventType: TransactionReconciled} },
}

// ConversationEventTypes are the events relayed to dashboards.
var ConversationEventTypes = []string{
	ConversationCreated,
	ConversationUpdated,
	ConversationClosed,
	ConversationDeleted,
	MessageCreated,
}
