package provider

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/provider"
)

// ZendeskClient talks to the Zendesk Support API v2 with an API token.
type ZendeskClient struct {
	api   *apiClient
	email string
	token string
}

// NewZendesk creates a client, or returns nil when cfg is incomplete.
func NewZendesk(cfg *config.Zendesk, logger *slog.Logger) *ZendeskClient {
	if cfg == nil || !cfg.Enabled() {
		return nil
	}
	return &ZendeskClient{
		api:   newAPIClient("zendesk", cfg.URL(), cfg.HTTPTimeout, logger),
		email: cfg.Email,
		token: cfg.ApiToken,
	}
}

func (z *ZendeskClient) auth(r *http.Request) {
	r.SetBasicAuth(z.email+"/token", z.token)
}

func (z *ZendeskClient) call(ctx context.Context, op, method, path string, query url.Values, body, out any) error {
	return z.api.do(ctx, request{
		op:     op,
		method: method,
		path:   path,
		query:  query,
		body:   body,
		auth:   z.auth,
	}, out)
}

func ticketPath(id int64) string {
	return "/api/v2/tickets/" + strconv.FormatInt(id, 10) + ".json"
}

// ListTickets lists tickets, newest first. A status filter goes through the
// search endpoint since the ticket listing cannot filter.
func (z *ZendeskClient) ListTickets(ctx context.Context, q dto.TicketQuery) (*dto.TicketPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("per_page", strconv.Itoa(q.PerPage))
	params.Set("sort_by", "created_at")
	params.Set("sort_order", "desc")
	var res struct {
		Tickets  []dto.Ticket `json:"tickets"`
		Results  []dto.Ticket `json:"results"`
		Count    int          `json:"count"`
		NextPage *string      `json:"next_page"`
	}
	path := "/api/v2/tickets.json"
	if q.Status != "" {
		path = "/api/v2/search.json"
		params.Set("query", "type:ticket status:"+q.Status)
	}
	if err := z.call(ctx, "list_tickets", http.MethodGet, path, params, nil, &res); err != nil {
		return nil, err
	}
	tickets := res.Tickets
	if q.Status != "" {
		tickets = res.Results
	}
	if tickets == nil {
		tickets = []dto.Ticket{}
	}
	return &dto.TicketPage{Tickets: tickets, Count: res.Count, NextPage: res.NextPage != nil}, nil
}

func (z *ZendeskClient) GetTicket(ctx context.Context, id int64) (*dto.Ticket, error) {
	var res struct {
		Ticket dto.Ticket `json:"ticket"`
	}
	if err := z.call(ctx, "get_ticket", http.MethodGet, ticketPath(id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.Ticket, nil
}

type zdComment struct {
	Body     string `json:"body"`
	Public   bool   `json:"public"`
	AuthorID *int64 `json:"author_id,omitempty"`
}

type zdRequester struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

func (z *ZendeskClient) CreateTicket(ctx context.Context, in dto.TicketCreate) (*dto.Ticket, error) {
	ticket := map[string]any{
		"subject": in.Subject,
		"comment": zdComment{Body: in.Comment, Public: true},
	}
	if in.RequesterEmail != "" {
		ticket["requester"] = zdRequester{Name: in.RequesterName, Email: in.RequesterEmail}
	}
	if in.Priority != "" {
		ticket["priority"] = in.Priority
	}
	if len(in.Tags) > 0 {
		ticket["tags"] = in.Tags
	}
	var res struct {
		Ticket dto.Ticket `json:"ticket"`
	}
	body := map[string]any{"ticket": ticket}
	if err := z.call(ctx, "create_ticket", http.MethodPost, "/api/v2/tickets.json", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.Ticket, nil
}

func (z *ZendeskClient) UpdateTicket(ctx context.Context, id int64, in dto.TicketUpdate) (*dto.Ticket, error) {
	ticket := map[string]any{}
	if in.Status != nil {
		ticket["status"] = *in.Status
	}
	if in.Priority != nil {
		ticket["priority"] = *in.Priority
	}
	if in.AssigneeID != nil {
		ticket["assignee_id"] = *in.AssigneeID
	}
	var res struct {
		Ticket dto.Ticket `json:"ticket"`
	}
	body := map[string]any{"ticket": ticket}
	if err := z.call(ctx, "update_ticket", http.MethodPut, ticketPath(id), nil, body, &res); err != nil {
		return nil, err
	}
	return &res.Ticket, nil
}

// AddComment adds a comment by updating the ticket and reads the new
// comment back from the audit.
func (z *ZendeskClient) AddComment(ctx context.Context, ticketID int64, in dto.CommentCreate) (*dto.TicketComment, error) {
	body := map[string]any{
		"ticket": map[string]any{
			"comment": zdComment{Body: in.Body, Public: in.Public, AuthorID: in.AuthorID},
		},
	}
	var res struct {
		Audit struct {
			AuthorID  int64     `json:"author_id"`
			CreatedAt time.Time `json:"created_at"`
			Events    []struct {
				ID       int64  `json:"id"`
				Type     string `json:"type"`
				Body     string `json:"body"`
				Public   bool   `json:"public"`
				AuthorID int64  `json:"author_id"`
			} `json:"events"`
		} `json:"audit"`
	}
	if err := z.call(ctx, "add_comment", http.MethodPut, ticketPath(ticketID), nil, body, &res); err != nil {
		return nil, err
	}
	comment := &dto.TicketComment{
		Body:      in.Body,
		Public:    in.Public,
		AuthorID:  res.Audit.AuthorID,
		CreatedAt: res.Audit.CreatedAt,
	}
	for _, e := range res.Audit.Events {
		if e.Type == "Comment" {
			comment.ID = e.ID
			comment.Body = e.Body
			comment.Public = e.Public
			comment.AuthorID = e.AuthorID
			break
		}
	}
	return comment, nil
}

func (z *ZendeskClient) ListComments(ctx context.Context, ticketID int64) ([]dto.TicketComment, error) {
	var res struct {
		Comments []dto.TicketComment `json:"comments"`
	}
	path := "/api/v2/tickets/" + strconv.FormatInt(ticketID, 10) + "/comments.json"
	if err := z.call(ctx, "list_comments", http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Comments, nil
}

func (z *ZendeskClient) ListAgents(ctx context.Context) ([]dto.Agent, error) {
	q := url.Values{}
	q.Add("role[]", "agent")
	q.Add("role[]", "admin")
	var res struct {
		Users []dto.Agent `json:"users"`
	}
	if err := z.call(ctx, "list_agents", http.MethodGet, "/api/v2/users.json", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}

func (z *ZendeskClient) SearchUsers(ctx context.Context, query string) ([]dto.ZendeskUser, error) {
	var res struct {
		Users []dto.ZendeskUser `json:"users"`
	}
	q := url.Values{"query": {query}}
	if err := z.call(ctx, "search_users", http.MethodGet, "/api/v2/users/search.json", q, nil, &res); err != nil {
		return nil, err
	}
	return res.Users, nil
}

func (z *ZendeskClient) GetUser(ctx context.Context, id int64) (*dto.ZendeskUser, error) {
	var res struct {
		User dto.ZendeskUser `json:"user"`
	}
	path := "/api/v2/users/" + strconv.FormatInt(id, 10) + ".json"
	if err := z.call(ctx, "get_user", http.MethodGet, path, nil, nil, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

func (z *ZendeskClient) CreateUser(ctx context.Context, in dto.ZendeskUserCreate) (*dto.ZendeskUser, error) {
	user := map[string]any{
		"name":  in.Name,
		"email": in.Email,
		"role":  "end-user",
	}
	if in.Phone != "" {
		user["phone"] = in.Phone
	}
	var res struct {
		User dto.ZendeskUser `json:"user"`
	}
	body := map[string]any{"user": user}
	if err := z.call(ctx, "create_user", http.MethodPost, "/api/v2/users.json", nil, body, &res); err != nil {
		return nil, err
	}
	return &res.User, nil
}

var _ provider.Zendesk = (*ZendeskClient)(nil)
