// Package conversation implements the support chat: conversations and
// messages stored locally, mirrored to Zendesk tickets when linked, and
// announced on the event bus for the realtime relay.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/eventbus"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/amirasaad/backoffice/pkg/repository"
	convrepo "github.com/amirasaad/backoffice/pkg/repository/conversation"
	userrepo "github.com/amirasaad/backoffice/pkg/repository/user"
	"github.com/google/uuid"
)

// ErrNotAgent is returned when a conversation is assigned to a viewer.
var ErrNotAgent = fmt.Errorf("assignee must be an agent or admin: %w", domain.ErrValidation)

// Author identifies who wrote a message.
type Author struct {
	Kind conversation.AuthorKind
	ID   *uuid.UUID
	Name string
}

// Service provides conversation operations.
type Service struct {
	uow     repository.UnitOfWork
	zendesk provider.Zendesk
	bus     eventbus.Bus
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Service. zendesk and bus may be nil; conversations are then
// kept local only and nothing is broadcast.
func New(
	uow repository.UnitOfWork,
	zendesk provider.Zendesk,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:     uow,
		zendesk: zendesk,
		bus:     bus,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a conversation. A non-empty in.Message becomes the first
// customer message. With in.OpenTicket the conversation is linked to a new
// Zendesk ticket; a Zendesk failure leaves the conversation unlinked.
func (s *Service) Create(
	ctx context.Context,
	in dto.ConversationCreate,
) (c *conversation.Conversation, err error) {
	log := s.logger.With("subject", in.Subject)
	log.Debug("Create called")
	c, err = conversation.New(in.Subject, in.CustomerName, in.CustomerEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	var first *conversation.Message
	if strings.TrimSpace(in.Message) != "" {
		first, err = conversation.NewMessage(c.ID, conversation.AuthorCustomer, nil, c.CustomerName, in.Message)
		if err != nil {
			return nil, err
		}
		c.Touch(conversation.AuthorCustomer, first.CreatedAt)
	}
	if in.OpenTicket {
		s.openTicket(ctx, c, first)
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := repository.Repo[convrepo.Repository](uow)
		if err != nil {
			return err
		}
		if err := convs.Create(ctx, c); err != nil {
			return err
		}
		if first == nil {
			return nil
		}
		msgs, err := repository.Repo[convrepo.MessageRepository](uow)
		if err != nil {
			return err
		}
		return msgs.Create(ctx, first)
	})
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	log.Info("Conversation created", "conversationID", c.ID, "ticketID", c.ZendeskTicketID)
	s.emit(ctx, events.NewConversationEvent(events.ConversationCreated, c))
	if first != nil {
		s.emit(ctx, events.NewMessageCreated(c, first))
	}
	return c, nil
}

func (s *Service) openTicket(ctx context.Context, c *conversation.Conversation, first *conversation.Message) {
	if s.zendesk == nil {
		s.logger.Warn("ticket requested but zendesk is not configured", "conversationID", c.ID)
		return
	}
	comment := c.Subject
	if first != nil {
		comment = first.Body
	}
	ticket, err := s.zendesk.CreateTicket(ctx, dto.TicketCreate{
		Subject:        c.Subject,
		Comment:        comment,
		RequesterName:  c.CustomerName,
		RequesterEmail: c.CustomerEmail,
	})
	if err != nil {
		s.logger.Warn("failed to open zendesk ticket", "conversationID", c.ID, "error", err)
		return
	}
	id := ticket.ID
	c.ZendeskTicketID = &id
}

// Get returns one conversation.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	repo, err := repository.Repo[convrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	c, err := repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, conversation.ErrConversationNotFound
	}
	return c, err
}

// List returns one page of conversations, most recently active first.
func (s *Service) List(
	ctx context.Context,
	filter dto.ConversationFilter,
) ([]*conversation.Conversation, int64, error) {
	if filter.Status != "" {
		status, err := conversation.ParseStatus(filter.Status)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		filter.Status = string(status)
	}
	filter.Page, filter.PageSize = dto.NormalizePage(filter.Page, filter.PageSize)
	repo, err := repository.Repo[convrepo.Repository](s.uow)
	if err != nil {
		return nil, 0, err
	}
	return repo.List(ctx, filter)
}

// Update changes the subject and/or status.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	in dto.ConversationUpdate,
) (*conversation.Conversation, error) {
	var status conversation.Status
	if in.Status != nil {
		st, err := conversation.ParseStatus(*in.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		status = st
	}
	var statusChanged bool
	c, err := s.mutate(ctx, id, "Update", func(c *conversation.Conversation, now time.Time) error {
		if in.Subject != nil {
			subject := strings.TrimSpace(*in.Subject)
			if subject == "" {
				return fmt.Errorf("subject cannot be empty: %w", domain.ErrValidation)
			}
			if c.IsClosed() {
				return conversation.ErrConversationClosed
			}
			c.Subject = subject
			c.UpdatedAt = now
		}
		if status != "" && status != c.Status {
			statusChanged = true
			return c.SetStatus(status, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if statusChanged {
		s.syncStatus(ctx, c)
	}
	s.emitState(ctx, c)
	return c, nil
}

// Assign hands the conversation to an agent or admin.
func (s *Service) Assign(
	ctx context.Context,
	id uuid.UUID,
	in dto.ConversationAssign,
) (*conversation.Conversation, error) {
	users, err := repository.Repo[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	agent, err := users.Get(ctx, in.AgentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, err
	}
	if !agent.Active || !user.HasAnyRole(agent.Role, user.RoleAgent, user.RoleAdmin) {
		return nil, ErrNotAgent
	}
	c, err := s.mutate(ctx, id, "Assign", func(c *conversation.Conversation, now time.Time) error {
		return c.Assign(agent.ID, now)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, events.NewConversationEvent(events.ConversationUpdated, c))
	return c, nil
}

// Close closes the conversation. Closing is terminal and idempotent.
func (s *Service) Close(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	var changed bool
	c, err := s.mutate(ctx, id, "Close", func(c *conversation.Conversation, now time.Time) error {
		changed = !c.IsClosed()
		return c.SetStatus(conversation.StatusClosed, now)
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.syncStatus(ctx, c)
		s.emit(ctx, events.NewConversationEvent(events.ConversationClosed, c))
	}
	return c, nil
}

// Delete removes the conversation and its messages. The Zendesk ticket, if
// any, is left alone.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("conversationID", id)
	log.Debug("Delete called")
	var c *conversation.Conversation
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[convrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = conversation.ErrConversationNotFound
		}
		log.Error("Delete failed", "error", err)
		return err
	}
	log.Info("Conversation deleted")
	s.emit(ctx, events.NewConversationEvent(events.ConversationDeleted, c))
	return nil
}

// AddMessage appends a message. Agent messages on a linked conversation are
// posted to the ticket as public comments first so the webhook echo of the
// same comment is recognized as a duplicate. If Zendesk rejects the comment
// nothing is stored.
func (s *Service) AddMessage(
	ctx context.Context,
	id uuid.UUID,
	author Author,
	in dto.MessageCreate,
) (*conversation.Message, error) {
	log := s.logger.With("conversationID", id, "author", author.Kind)
	log.Debug("AddMessage called")
	m, err := conversation.NewMessage(id, author.Kind, author.ID, author.Name, in.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.IsClosed() {
		return nil, conversation.ErrConversationClosed
	}
	if author.Kind == conversation.AuthorAgent {
		if m.ZendeskCommentID, err = s.mirrorComment(ctx, current, m); err != nil {
			log.Error("AddMessage failed to mirror to zendesk", "error", err)
			return nil, err
		}
	}
	c, err := s.appendMessage(ctx, m)
	if err != nil {
		log.Error("AddMessage failed", "error", err)
		return nil, err
	}
	log.Info("Message added", "messageID", m.ID)
	s.emit(ctx, events.NewMessageCreated(c, m))
	return m, nil
}

func (s *Service) mirrorComment(
	ctx context.Context,
	c *conversation.Conversation,
	m *conversation.Message,
) (*int64, error) {
	if s.zendesk == nil || c.ZendeskTicketID == nil {
		return nil, nil
	}
	comment, err := s.zendesk.AddComment(ctx, *c.ZendeskTicketID, dto.CommentCreate{Body: m.Body, Public: true})
	if err != nil {
		return nil, fmt.Errorf("%w: mirror to zendesk ticket %d: %w", domain.ErrUnavailable, *c.ZendeskTicketID, err)
	}
	id := comment.ID
	return &id, nil
}

// appendMessage stores m and bumps the conversation's activity counters.
func (s *Service) appendMessage(ctx context.Context, m *conversation.Message) (c *conversation.Conversation, err error) {
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := repository.Repo[convrepo.Repository](uow)
		if err != nil {
			return err
		}
		msgs, err := repository.Repo[convrepo.MessageRepository](uow)
		if err != nil {
			return err
		}
		c, err = convs.Get(ctx, m.ConversationID)
		if err != nil {
			return err
		}
		if c.IsClosed() {
			return conversation.ErrConversationClosed
		}
		if err := msgs.Create(ctx, m); err != nil {
			return err
		}
		c.Touch(m.AuthorKind, m.CreatedAt)
		return convs.Update(ctx, c)
	})
	if errors.Is(err, domain.ErrNotFound) {
		err = conversation.ErrConversationNotFound
	}
	return c, err
}

// ListMessages returns the conversation's messages, oldest first.
func (s *Service) ListMessages(ctx context.Context, id uuid.UUID) ([]*conversation.Message, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	repo, err := repository.Repo[convrepo.MessageRepository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.ListByConversation(ctx, id)
}

// MarkRead resets the unread counter.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*conversation.Conversation, error) {
	c, err := s.mutate(ctx, id, "MarkRead", func(c *conversation.Conversation, now time.Time) error {
		c.MarkRead(now)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, events.NewConversationEvent(events.ConversationUpdated, c))
	return c, nil
}

// ApplyZendeskUpdate applies a ticket change reported by the Zendesk
// webhook: a status change and/or a new public comment. Comments already
// stored are skipped, as are status changes that would reopen a closed
// conversation.
func (s *Service) ApplyZendeskUpdate(
	ctx context.Context,
	in dto.ZendeskTicketUpdate,
) (*conversation.Conversation, error) {
	log := s.logger.With("ticketID", in.TicketID)
	log.Debug("ApplyZendeskUpdate called")
	convs, err := repository.Repo[convrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	c, err := convs.GetByZendeskTicketID(ctx, in.TicketID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, conversation.ErrConversationNotFound
		}
		return nil, err
	}

	if status, ok := conversation.FromZendeskStatus(in.Status); ok && status != c.Status {
		if c.IsClosed() {
			log.Info("ignoring status change on closed conversation", "status", status)
		} else {
			c, err = s.mutate(ctx, c.ID, "ApplyZendeskUpdate", func(c *conversation.Conversation, now time.Time) error {
				return c.SetStatus(status, now)
			})
			if err != nil {
				return nil, err
			}
			s.emitState(ctx, c)
		}
	}

	if in.CommentID == nil || strings.TrimSpace(in.CommentBody) == "" || !in.Public {
		return c, nil
	}
	msgs, err := repository.Repo[convrepo.MessageRepository](s.uow)
	if err != nil {
		return nil, err
	}
	seen, err := msgs.ExistsByZendeskCommentID(ctx, *in.CommentID)
	if err != nil {
		return nil, err
	}
	if seen {
		log.Debug("comment already stored", "commentID", *in.CommentID)
		return c, nil
	}
	m, err := conversation.NewMessage(c.ID, authorKind(in.AuthorRole), nil, in.AuthorName, in.CommentBody)
	if err != nil {
		return nil, err
	}
	commentID := *in.CommentID
	m.ZendeskCommentID = &commentID
	if c.IsClosed() {
		log.Info("dropping comment on closed conversation", "commentID", commentID)
		return c, nil
	}
	c, err = s.appendMessage(ctx, m)
	if err != nil {
		log.Error("ApplyZendeskUpdate failed", "error", err)
		return nil, err
	}
	log.Info("Zendesk comment stored", "messageID", m.ID, "commentID", commentID)
	s.emit(ctx, events.NewMessageCreated(c, m))
	return c, nil
}

func authorKind(zendeskRole string) conversation.AuthorKind {
	switch strings.ToLower(zendeskRole) {
	case "agent", "admin":
		return conversation.AuthorAgent
	case "end-user", "end_user", "":
		return conversation.AuthorCustomer
	}
	return conversation.AuthorSystem
}

// mutate loads, changes and saves a conversation in one transaction.
func (s *Service) mutate(
	ctx context.Context,
	id uuid.UUID,
	op string,
	apply func(*conversation.Conversation, time.Time) error,
) (c *conversation.Conversation, err error) {
	log := s.logger.With("conversationID", id)
	log.Debug(op + " called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[convrepo.Repository](uow)
		if err != nil {
			return err
		}
		c, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(c, s.now()); err != nil {
			return err
		}
		return repo.Update(ctx, c)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = conversation.ErrConversationNotFound
		}
		log.Error(op+" failed", "error", err)
		return nil, err
	}
	log.Info(op+" succeeded", "status", c.Status)
	return c, nil
}

// syncStatus pushes the local status to the linked ticket.
func (s *Service) syncStatus(ctx context.Context, c *conversation.Conversation) {
	if s.zendesk == nil || c.ZendeskTicketID == nil {
		return
	}
	status := c.Status.ZendeskStatus()
	if _, err := s.zendesk.UpdateTicket(ctx, *c.ZendeskTicketID, dto.TicketUpdate{Status: &status}); err != nil {
		s.logger.Warn("failed to sync ticket status",
			"conversationID", c.ID, "ticketID", *c.ZendeskTicketID, "error", err)
	}
}

func (s *Service) emitState(ctx context.Context, c *conversation.Conversation) {
	if c.IsClosed() {
		s.emit(ctx, events.NewConversationEvent(events.ConversationClosed, c))
		return
	}
	s.emit(ctx, events.NewConversationEvent(events.ConversationUpdated, c))
}

func (s *Service) emit(ctx context.Context, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Warn("failed to emit conversation event", "type", evt.Type(), "error", err)
	}
}

// ToRead converts a conversation to its public view.
func ToRead(c *conversation.Conversation) dto.ConversationRead {
	return dto.ConversationRead{
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

// ToMessageRead converts a message to its public view.
func ToMessageRead(m *conversation.Message) dto.MessageRead {
	return dto.MessageRead{
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
