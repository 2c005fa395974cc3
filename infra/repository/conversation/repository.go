package conversation

import (
	"context"

	"github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository/conversation"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type conversationRepository struct {
	db *gorm.DB
}

// New creates a gorm-backed conversation repository.
func New(db *gorm.DB) repo.Repository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(ctx context.Context, c *conversation.Conversation) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(c)).Error
	})
}

func (r *conversationRepository) Update(ctx context.Context, c *conversation.Conversation) error {
	res := r.db.WithContext(ctx).Model(&Conversation{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"subject":           c.Subject,
			"status":            string(c.Status),
			"assignee_id":       c.AssigneeID,
			"zendesk_ticket_id": c.ZendeskTicketID,
			"last_message_at":   c.LastMessageAt,
			"unread_count":      c.UnreadCount,
			"updated_at":        c.UpdatedAt,
		})
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *conversationRepository) Get(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	var m Conversation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return toDomain(&m), nil
}

func (r *conversationRepository) GetByZendeskTicketID(ctx context.Context, ticketID int64) (*conversation.Conversation, error) {
	var m Conversation
	if err := r.db.WithContext(ctx).Where("zendesk_ticket_id = ?", ticketID).First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return toDomain(&m), nil
}

func (r *conversationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Message{}, "conversation_id = ?", id).Error; err != nil {
			return repository.MapGormErrorToDomain(err)
		}
		res := tx.Delete(&Conversation{}, "id = ?", id)
		if res.Error != nil {
			return repository.MapGormErrorToDomain(res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (r *conversationRepository) List(ctx context.Context, filter dto.ConversationFilter) ([]*conversation.Conversation, int64, error) {
	q := r.db.WithContext(ctx).Model(&Conversation{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *filter.AssigneeID)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []Conversation
	if err := q.Order("COALESCE(last_message_at, created_at) DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}
	out := make([]*conversation.Conversation, 0, len(models))
	for i := range models {
		out = append(out, toDomain(&models[i]))
	}
	return out, total, nil
}

var _ repo.Repository = (*conversationRepository)(nil)

type messageRepository struct {
	db *gorm.DB
}

// NewMessages creates a gorm-backed message repository.
func NewMessages(db *gorm.DB) repo.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *conversation.Message) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(messageToModel(m)).Error
	})
}

func (r *messageRepository) ListByConversation(ctx context.Context, conversationID uuid.UUID) ([]*conversation.Message, error) {
	var models []Message
	if err := r.db.WithContext(ctx).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]*conversation.Message, 0, len(models))
	for i := range models {
		out = append(out, messageToDomain(&models[i]))
	}
	return out, nil
}

func (r *messageRepository) ExistsByZendeskCommentID(ctx context.Context, commentID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&Message{}).
		Where("zendesk_comment_id = ?", commentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

var _ repo.MessageRepository = (*messageRepository)(nil)
