// Package conversation models support chats that are mirrored to Zendesk tickets.
package conversation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/google/uuid"
)

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationClosed   = fmt.Errorf("conversation is closed: %w", domain.ErrInvalidState)
	ErrEmptyMessage         = errors.New("message body cannot be empty")
	ErrInvalidStatus        = errors.New("invalid conversation status")
	ErrInvalidAuthor        = errors.New("invalid author kind")
)

// Status follows the Zendesk ticket lifecycle, collapsed to four states.
type Status string

const (
	StatusOpen    Status = "open"
	StatusPending Status = "pending"
	StatusSolved  Status = "solved"
	StatusClosed  Status = "closed"
)

// ParseStatus validates a status name.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case StatusOpen, StatusPending, StatusSolved, StatusClosed:
		return st, nil
	}
	return "", ErrInvalidStatus
}

// FromZendeskStatus maps a ticket status to a conversation status.
func FromZendeskStatus(s string) (Status, bool) {
	switch strings.ToLower(s) {
	case "new", "open":
		return StatusOpen, true
	case "pending", "hold":
		return StatusPending, true
	case "solved":
		return StatusSolved, true
	case "closed":
		return StatusClosed, true
	}
	return "", false
}

// ZendeskStatus maps a conversation status to the ticket status Zendesk accepts on update.
func (s Status) ZendeskStatus() string {
	return string(s)
}

// AuthorKind identifies who wrote a message.
type AuthorKind string

const (
	AuthorCustomer AuthorKind = "customer"
	AuthorAgent    AuthorKind = "agent"
	AuthorSystem   AuthorKind = "system"
)

// Conversation is a support thread with a customer.
type Conversation struct {
	ID              uuid.UUID
	Subject         string
	CustomerName    string
	CustomerEmail   string
	Status          Status
	AssigneeID      *uuid.UUID
	ZendeskTicketID *int64
	LastMessageAt   *time.Time
	UnreadCount     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// New opens a conversation.
func New(subject, customerName, customerEmail string) (*Conversation, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, errors.New("subject cannot be empty")
	}
	now := time.Now().UTC()
	return &Conversation{
		ID:            uuid.New(),
		Subject:       subject,
		CustomerName:  strings.TrimSpace(customerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(customerEmail)),
		Status:        StatusOpen,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// IsClosed reports whether the conversation reached its terminal state.
func (c *Conversation) IsClosed() bool {
	return c.Status == StatusClosed
}

// SetStatus moves the conversation to status. Closed is terminal.
func (c *Conversation) SetStatus(status Status, at time.Time) error {
	if c.IsClosed() && status != StatusClosed {
		return ErrConversationClosed
	}
	c.Status = status
	c.UpdatedAt = at
	return nil
}

// Assign hands the conversation to an agent.
func (c *Conversation) Assign(agentID uuid.UUID, at time.Time) error {
	if c.IsClosed() {
		return ErrConversationClosed
	}
	c.AssigneeID = &agentID
	c.UpdatedAt = at
	return nil
}

// Touch records a new message.
func (c *Conversation) Touch(author AuthorKind, at time.Time) {
	c.LastMessageAt = &at
	c.UpdatedAt = at
	if author == AuthorCustomer {
		c.UnreadCount++
	}
	// a customer replying to a solved ticket reopens it
	if author == AuthorCustomer && c.Status == StatusSolved {
		c.Status = StatusOpen
	}
}

// MarkRead clears the unread counter.
func (c *Conversation) MarkRead(at time.Time) {
	c.UnreadCount = 0
	c.UpdatedAt = at
}

// Message is one entry in a conversation.
type Message struct {
	ID               uuid.UUID
	ConversationID   uuid.UUID
	AuthorKind       AuthorKind
	AuthorID         *uuid.UUID
	AuthorName       string
	Body             string
	ZendeskCommentID *int64
	CreatedAt        time.Time
}

// NewMessage validates and builds a message.
func NewMessage(conversationID uuid.UUID, kind AuthorKind, authorID *uuid.UUID, authorName, body string) (*Message, error) {
	switch kind {
	case AuthorCustomer, AuthorAgent, AuthorSystem:
	default:
		return nil, ErrInvalidAuthor
	}
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, ErrEmptyMessage
	}
	return &Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		AuthorKind:     kind,
		AuthorID:       authorID,
		AuthorName:     strings.TrimSpace(authorName),
		Body:           body,
		CreatedAt:      time.Now().UTC(),
	}, nil
}
