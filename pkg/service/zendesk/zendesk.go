// Package zendesk exposes the Zendesk Support API to backoffice agents.
package zendesk

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/provider"
)

const (
	defaultPerPage = 25
	maxPerPage     = 100
)

// ErrNotConfigured is returned by every call when no Zendesk client is wired.
var ErrNotConfigured = fmt.Errorf("zendesk is not configured: %w", domain.ErrUnavailable)

// Service proxies tickets, users and agents.
type Service struct {
	client provider.Zendesk
	logger *slog.Logger
}

// New creates a Service. client may be nil.
func New(client provider.Zendesk, logger *slog.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Enabled reports whether a client is wired.
func (s *Service) Enabled() bool {
	return s.client != nil
}

func (s *Service) ready() error {
	if s.client == nil {
		return ErrNotConfigured
	}
	return nil
}

func (s *Service) ListTickets(ctx context.Context, q dto.TicketQuery) (*dto.TicketPage, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PerPage < 1 {
		q.PerPage = defaultPerPage
	}
	if q.PerPage > maxPerPage {
		q.PerPage = maxPerPage
	}
	q.Status = strings.ToLower(strings.TrimSpace(q.Status))
	return s.client.ListTickets(ctx, q)
}

func (s *Service) GetTicket(ctx context.Context, id int64) (*dto.Ticket, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.client.GetTicket(ctx, id)
}

func (s *Service) CreateTicket(ctx context.Context, in dto.TicketCreate) (*dto.Ticket, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	t, err := s.client.CreateTicket(ctx, in)
	if err != nil {
		s.logger.Error("CreateTicket failed", "subject", in.Subject, "error", err)
		return nil, err
	}
	s.logger.Info("Ticket created", "ticketID", t.ID)
	return t, nil
}

func (s *Service) UpdateTicket(ctx context.Context, id int64, in dto.TicketUpdate) (*dto.Ticket, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if in.Status == nil && in.Priority == nil && in.AssigneeID == nil {
		return nil, fmt.Errorf("nothing to update: %w", domain.ErrValidation)
	}
	t, err := s.client.UpdateTicket(ctx, id, in)
	if err != nil {
		s.logger.Error("UpdateTicket failed", "ticketID", id, "error", err)
		return nil, err
	}
	return t, nil
}

func (s *Service) AddComment(ctx context.Context, ticketID int64, in dto.CommentCreate) (*dto.TicketComment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.Body) == "" {
		return nil, fmt.Errorf("comment body cannot be empty: %w", domain.ErrValidation)
	}
	return s.client.AddComment(ctx, ticketID, in)
}

func (s *Service) ListComments(ctx context.Context, ticketID int64) ([]dto.TicketComment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.client.ListComments(ctx, ticketID)
}

func (s *Service) ListAgents(ctx context.Context) ([]dto.Agent, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.client.ListAgents(ctx)
}

func (s *Service) SearchUsers(ctx context.Context, query string) ([]dto.ZendeskUser, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query is required: %w", domain.ErrValidation)
	}
	return s.client.SearchUsers(ctx, query)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*dto.ZendeskUser, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.client.GetUser(ctx, id)
}

func (s *Service) CreateUser(ctx context.Context, in dto.ZendeskUserCreate) (*dto.ZendeskUser, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	u, err := s.client.CreateUser(ctx, in)
	if err != nil {
		s.logger.Error("CreateUser failed", "error", err)
		return nil, err
	}
	s.logger.Info("Zendesk user created", "zendeskUserID", u.ID)
	return u, nil
}

// GetChat returns a ticket as a chat: its comments in chronological order,
// each flagged with whether an agent wrote it.
func (s *Service) GetChat(ctx context.Context, ticketID int64) (*dto.Chat, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	ticket, err := s.client.GetTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	comments, err := s.client.ListComments(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	agents, err := s.client.ListAgents(ctx)
	if err != nil {
		// the chat is still readable without author roles
		s.logger.Warn("failed to list agents for chat", "ticketID", ticketID, "error", err)
	}
	isAgent := make(map[int64]bool, len(agents))
	for _, a := range agents {
		isAgent[a.ID] = true
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	chat := &dto.Chat{
		TicketID: ticket.ID,
		Subject:  ticket.Subject,
		Status:   ticket.Status,
		Messages: make([]dto.ChatMessage, 0, len(comments)),
	}
	for _, c := range comments {
		chat.Messages = append(chat.Messages, dto.ChatMessage{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			FromAgent: isAgent[c.AuthorID],
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return chat, nil
}
