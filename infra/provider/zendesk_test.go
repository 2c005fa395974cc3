package provider

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestZendesk(t *testing.T, h http.HandlerFunc) *ZendeskClient {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "support@example.com/token", user)
		assert.Equal(t, "zd-token", pass)
		w.Header().Set("Content-Type", "application/json")
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	z := NewZendesk(&config.Zendesk{
		BaseURL:     srv.URL,
		Email:       "support@example.com",
		ApiToken:    "zd-token",
		HTTPTimeout: time.Second,
	}, discardLogger())
	require.NotNil(t, z)
	return z
}

func TestNewZendesk_Disabled(t *testing.T) {
	assert.Nil(t, NewZendesk(&config.Zendesk{Subdomain: "acme"}, discardLogger()))
	assert.Nil(t, NewZendesk(nil, discardLogger()))
}

func TestZendesk_ListTickets(t *testing.T) {
	z := newTestZendesk(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/tickets.json", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "25", r.URL.Query().Get("per_page"))
		_, _ = io.WriteString(w, `{"tickets":[{"id":1,"subject":"Help","status":"open"}],"count":26,"next_page":"https://x/api/v2/tickets.json?page=3"}`)
	})

	page, err := z.ListTickets(context.Background(), dto.TicketQuery{Page: 2, PerPage: 25})
	require.NoError(t, err)
	require.Len(t, page.Tickets, 1)
	assert.Equal(t, "Help", page.Tickets[0].Subject)
	assert.Equal(t, 26, page.Count)
	assert.True(t, page.NextPage)
}

func TestZendesk_ListTicketsByStatus(t *testing.T) {
	z := newTestZendesk(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v2/search.json", r.URL.Path)
		assert.Equal(t, "type:ticket status:pending", r.URL.Query().Get("query"))
		_, _ = io.WriteString(w, `{"results":[{"id":5,"status":"pending"}],"count":1,"next_page":null}`)
	})

	page, err := z.ListTickets(context.Background(), dto.TicketQuery{Status: "pending", Page: 1, PerPage: 25})
	require.NoError(t, err)
	require.Len(t, page.Tickets, 1)
	assert.Equal(t, int64(5), page.Tickets[0].ID)
	assert.False(t, page.NextPage)
}

func TestZendesk_CreateTicket(t *testing.T) {
	z := newTestZendesk(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body struct {
			Ticket struct {
				Subject   string `json:"subject"`
				Comment   struct{ Body string }
				Requester struct{ Email string }
			} `json:"ticket"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Deposit missing", body.Ticket.Subject)
		assert.Equal(t, "I sent 100", body.Ticket.Comment.Body)
		assert.Equal(t, "c@example.com", body.Ticket.Requester.Email)
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"ticket":{"id":77,"subject":"Deposit missing","status":"new"}}`)
	})

	ticket, err := z.CreateTicket(context.Background(), dto.TicketCreate{
		Subject:        "Deposit missing",
		Comment:        "I sent 100",
		RequesterEmail: "c@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(77), ticket.ID)
}

func TestZendesk_AddComment(t *testing.T) {
	z := newTestZendesk(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v2/tickets/77.json", r.URL.Path)
		_, _ = io.WriteString(w, `{"ticket":{"id":77},"audit":{"author_id":9,"created_at":"2024-03-01T10:00:00Z","events":[
			{"id":1,"type":"Change"},
			{"id":555,"type":"Comment","body":"On it","public":true,"author_id":9}]}}`)
	})

	c, err := z.AddComment(context.Background(), 77, dto.CommentCreate{Body: "On it", Public: true})
	require.NoError(t, err)
	assert.Equal(t, int64(555), c.ID)
	assert.Equal(t, int64(9), c.AuthorID)
	assert.True(t, c.Public)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestZendesk_ListAgents(t *testing.T) {
	z := newTestZendesk(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, []string{"agent", "admin"}, r.URL.Query()["role[]"])
		_, _ = io.WriteString(w, `{"users":[{"id":9,"name":"Ana","role":"agent"}]}`)
	})

	agents, err := z.ListAgents(context.Background())
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "Ana", agents[0].Name)
}

func TestZendesk_CreateUser(t *testing.T) {
	z := newTestZendesk(t, func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			User map[string]string `json:"user"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "end-user", body.User["role"])
		_, _ = io.WriteString(w, `{"user":{"id":3,"name":"Carla","email":"c@example.com","role":"end-user"}}`)
	})

	u, err := z.CreateUser(context.Background(), dto.ZendeskUserCreate{Name: "Carla", Email: "c@example.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
}

func TestZendesk_NotFound(t *testing.T) {
	z := newTestZendesk(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":"RecordNotFound","description":"Not found"}`)
	})

	_, err := z.GetTicket(context.Background(), 1)
	assert.Equal(t, http.StatusNotFound, provider.StatusCode(err))
}
