package conversation

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/google/uuid"
)

// Repository stores conversations.
type Repository interface {
	Create(ctx context.Context, c *conversation.Conversation) error
	Update(ctx context.Context, c *conversation.Conversation) error
	Get(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error)
	GetByZendeskTicketID(ctx context.Context, ticketID int64) (*conversation.Conversation, error)
	// Delete removes the conversation and its messages.
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter dto.ConversationFilter) ([]*conversation.Conversation, int64, error)
}

// MessageRepository stores conversation messages.
type MessageRepository interface {
	Create(ctx context.Context, m *conversation.Message) error
	ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*conversation.Message, error)
	ExistsByZendeskCommentID(ctx context.Context, commentID int64) (bool, error)
}
