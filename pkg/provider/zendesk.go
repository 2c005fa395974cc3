package provider

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/dto"
)

// Zendesk is the subset of the Zendesk Support API the backoffice proxies.
type Zendesk interface {
	ListTickets(ctx context.Context, query dto.TicketQuery) (*dto.TicketPage, error)
	GetTicket(ctx context.Context, id int64) (*dto.Ticket, error)
	CreateTicket(ctx context.Context, in dto.TicketCreate) (*dto.Ticket, error)
	UpdateTicket(ctx context.Context, id int64, in dto.TicketUpdate) (*dto.Ticket, error)
	AddComment(ctx context.Context, ticketID int64, in dto.CommentCreate) (*dto.TicketComment, error)
	ListComments(ctx context.Context, ticketID int64) ([]dto.TicketComment, error)
	ListAgents(ctx context.Context) ([]dto.Agent, error)
	SearchUsers(ctx context.Context, query string) ([]dto.ZendeskUser, error)
	GetUser(ctx context.Context, id int64) (*dto.ZendeskUser, error)
	CreateUser(ctx context.Context, in dto.ZendeskUserCreate) (*dto.ZendeskUser, error)
}
