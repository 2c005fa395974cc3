package events

import (
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/google/uuid"
)

// AccountEvent signals that an account's MercadoPago credentials became
// usable or stopped being usable.
type AccountEvent struct {
	EventType string    `json:"type"`
	AccountID uuid.UUID `json:"account_id"`
	Provider  string    `json:"provider"`
	Active    bool      `json:"active"`
	At        time.Time `json:"at"`
}

func (e *AccountEvent) Type() string { return e.EventType }

// NewAccountActivated builds an account.activated event.
func NewAccountActivated(a *account.Account) *AccountEvent {
	return &AccountEvent{
		EventType: AccountActivated,
		AccountID: a.ID,
		Provider:  string(a.Provider),
		Active:    true,
		At:        time.Now().UTC(),
	}
}

// NewAccountDeactivated builds an account.deactivated event.
func NewAccountDeactivated(a *account.Account) *AccountEvent {
	return &AccountEvent{
		EventType: AccountDeactivated,
		AccountID: a.ID,
		Provider:  string(a.Provider),
		At:        time.Now().UTC(),
	}
}

// MessagePayload is the message part of a message.created event.
type MessagePayload struct {
	ID         uuid.UUID  `json:"id"`
	AuthorKind string     `json:"author_kind"`
	AuthorID   *uuid.UUID `json:"author_id,omitempty"`
	AuthorName string     `json:"author_name,omitempty"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
}

// ConversationEvent carries a conversation snapshot and, for
// message.created, the new message.
type ConversationEvent struct {
	EventType       string          `json:"type"`
	ConversationID  uuid.UUID       `json:"conversation_id"`
	Subject         string          `json:"subject"`
	Status          string          `json:"status"`
	AssigneeID      *uuid.UUID      `json:"assignee_id,omitempty"`
	ZendeskTicketID *int64          `json:"zendesk_ticket_id,omitempty"`
	UnreadCount     int             `json:"unread_count"`
	Message         *MessagePayload `json:"message,omitempty"`
	At              time.Time       `json:"at"`
}

func (e *ConversationEvent) Type() string { return e.EventType }

// NewConversationEvent snapshots c under eventType.
func NewConversationEvent(eventType string, c *conversation.Conversation) *ConversationEvent {
	return &ConversationEvent{
		EventType:       eventType,
		ConversationID:  c.ID,
		Subject:         c.Subject,
		Status:          string(c.Status),
		AssigneeID:      c.AssigneeID,
		ZendeskTicketID: c.ZendeskTicketID,
		UnreadCount:     c.UnreadCount,
		At:              time.Now().UTC(),
	}
}

// NewMessageCreated builds a message.created event.
func NewMessageCreated(c *conversation.Conversation, m *conversation.Message) *ConversationEvent {
	e := NewConversationEvent(MessageCreated, c)
	e.Message = &MessagePayload{
		ID:         m.ID,
		AuthorKind: string(m.AuthorKind),
		AuthorID:   m.AuthorID,
		AuthorName: m.AuthorName,
		Body:       m.Body,
		CreatedAt:  m.CreatedAt,
	}
	return e
}

// TransactionEvent announces a reconciled deposit.
type TransactionEvent struct {
	EventType        string     `json:"type"`
	TransactionID    uuid.UUID  `json:"transaction_id"`
	Kind             string     `json:"kind"`
	Status           string     `json:"status"`
	Amount           string     `json:"amount"`
	Currency         string     `json:"currency"`
	AccountID        *uuid.UUID `json:"account_id,omitempty"`
	GatewayPaymentID string     `json:"gateway_payment_id,omitempty"`
	MatchMethod      string     `json:"match_method,omitempty"`
	At               time.Time  `json:"at"`
}

func (e *TransactionEvent) Type() string { return e.EventType }

// NewTransactionReconciled builds a transaction.reconciled event.
func NewTransactionReconciled(t *transaction.Transaction) *TransactionEvent {
	return &TransactionEvent{
		EventType:        TransactionReconciled,
		TransactionID:    t.ID,
		Kind:             string(t.Kind),
		Status:           string(t.Status),
		Amount:           t.Amount.StringFixed(2),
		Currency:         t.Currency,
		AccountID:        t.AccountID,
		GatewayPaymentID: t.GatewayPaymentID,
		MatchMethod:      string(t.MatchMethod),
		At:               time.Now().UTC(),
	}
}
