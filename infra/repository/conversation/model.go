package conversation

import (
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/google/uuid"
)

// Conversation represents a support conversation record in the database.
type Conversation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Subject         string     `gorm:"size:200;not null"`
	CustomerName    string     `gorm:"size:150"`
	CustomerEmail   string     `gorm:"size:255"`
	Status          string     `gorm:"size:16;not null;index"`
	AssigneeID      *uuid.UUID `gorm:"type:uuid;index"`
	ZendeskTicketID *int64     `gorm:"uniqueIndex"`
	LastMessageAt   *time.Time
	UnreadCount     int `gorm:"not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for the Conversation model.
func (Conversation) TableName() string {
	return "conversations"
}

// Message represents a conversation message record in the database.
type Message struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ConversationID   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AuthorKind       string     `gorm:"size:16;not null"`
	AuthorID         *uuid.UUID `gorm:"type:uuid"`
	AuthorName       string     `gorm:"size:150"`
	Body             string     `gorm:"type:text;not null"`
	ZendeskCommentID *int64     `gorm:"uniqueIndex"`
	CreatedAt        time.Time
}

// TableName specifies the table name for the Message model.
func (Message) TableName() string {
	return "messages"
}

func toModel(c *conversation.Conversation) *Conversation {
	return &Conversation{
		ID:              c.ID,
		Subject:         c.Subject,
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		Status:          string(c.Status),
		AssigneeID:      c.AssigneeID,
		ZendeskTicketID: c.ZendeskTicketID,
		LastMessageAt:   c.LastMessageAt,
		UnreadCount:     c.UnreadCount,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func toDomain(m *Conversation) *conversation.Conversation {
	return &conversation.Conversation{
		ID:              m.ID,
		Subject:         m.Subject,
		CustomerName:    m.CustomerName,
		CustomerEmail:   m.CustomerEmail,
		Status:          conversation.Status(m.Status),
		AssigneeID:      m.AssigneeID,
		ZendeskTicketID: m.ZendeskTicketID,
		LastMessageAt:   m.LastMessageAt,
		UnreadCount:     m.UnreadCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func messageToModel(m *conversation.Message) *Message {
	return &Message{
		ID:               m.ID,
		ConversationID:   m.ConversationID,
		AuthorKind:       string(m.AuthorKind),
		AuthorID:         m.AuthorID,
		AuthorName:       m.AuthorName,
		Body:             m.Body,
		ZendeskCommentID: m.ZendeskCommentID,
		CreatedAt:        m.CreatedAt,
	}
}

func messageToDomain(m *Message) *conversation.Message {
	return &conversation.Message{
		ID:               m.ID,
		ConversationID:   m.ConversationID,
		AuthorKind:       conversation.AuthorKind(m.AuthorKind),
		AuthorID:         m.AuthorID,
		AuthorName:       m.AuthorName,
		Body:             m.Body,
		ZendeskCommentID: m.ZendeskCommentID,
		CreatedAt:        m.CreatedAt,
	}
}
