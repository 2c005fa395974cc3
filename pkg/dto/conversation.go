package dto

import (
	"time"

	"github.com/google/uuid"
)

// ConversationCreate opens a conversation, optionally with a first message
// and a Zendesk ticket.
type ConversationCreate struct {
	Subject       string `json:"subject" validate:"required,max=200"`
	CustomerName  string `json:"customer_name" validate:"max=150"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	Message       string `json:"message" validate:"max=5000"`
	OpenTicket    bool   `json:"open_ticket"`
}

// ConversationUpdate changes status and/or subject.
type ConversationUpdate struct {
	Subject *string `json:"subject,omitempty" validate:"omitempty,max=200"`
	Status  *string `json:"status,omitempty" validate:"omitempty,oneof=open pending solved closed"`
}

// ConversationAssign hands a conversation to an agent.
type ConversationAssign struct {
	AgentID uuid.UUID `json:"agent_id" validate:"required"`
}

// ConversationFilter narrows List.
type ConversationFilter struct {
	Status     string
	AssigneeID *uuid.UUID
	Page       int
	PageSize   int
}

// MessageCreate is a new chat message.
type MessageCreate struct {
	Body string `json:"body" validate:"required,max=5000"`
}

// ConversationRead is the public view of a conversation.
type ConversationRead struct {
	ID              uuid.UUID  `json:"id"`
	Subject         string     `json:"subject"`
	CustomerName    string     `json:"customer_name,omitempty"`
	CustomerEmail   string     `json:"customer_email,omitempty"`
	Status          string     `json:"status"`
	AssigneeID      *uuid.UUID `json:"assignee_id,omitempty"`
	ZendeskTicketID *int64     `json:"zendesk_ticket_id,omitempty"`
	LastMessageAt   *time.Time `json:"last_message_at,omitempty"`
	UnreadCount     int        `json:"unread_count"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// MessageRead is the public view of a message.
type MessageRead struct {
	ID               uuid.UUID  `json:"id"`
	ConversationID   uuid.UUID  `json:"conversation_id"`
	AuthorKind       string     `json:"author_kind"`
	AuthorID         *uuid.UUID `json:"author_id,omitempty"`
	AuthorName       string     `json:"author_name,omitempty"`
	Body             string     `json:"body"`
	ZendeskCommentID *int64     `json:"zendesk_comment_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ZendeskTicketUpdate is what the Zendesk webhook reports for a ticket.
type ZendeskTicketUpdate struct {
	TicketID    int64  `json:"ticket_id" validate:"required"`
	Status      string `json:"status"`
	CommentID   *int64 `json:"comment_id,omitempty"`
	CommentBody string `json:"comment_body"`
	AuthorName  string `json:"author_name"`
	AuthorRole  string `json:"author_role"`
	Public      bool   `json:"public"`
}
