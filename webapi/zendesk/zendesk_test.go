package zendesk_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ZendeskRoutesTestSuite struct {
	suite.Suite
	env *testutils.Env
}

func TestZendeskRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(ZendeskRoutesTestSuite))
}

func (s *ZendeskRoutesTestSuite) SetupTest() {
	s.env = testutils.NewEnv(s.T(), testutils.WithZendesk())
}

func (s *ZendeskRoutesTestSuite) TestListTickets_Staff() {
	s.env.Zendesk.EXPECT().ListTickets(mock.Anything, dto.TicketQuery{Status: "open", Page: 2, PerPage: 25}).
		Return(&dto.TicketPage{Tickets: []dto.Ticket{{ID: 77, Subject: "Transferencia", Status: "open"}}, Count: 26}, nil).
		Times(2)

	for _, role := range []user.Role{user.RoleAgent, user.RoleAdmin} {
		token, _ := s.env.Token(role)
		resp, out := s.env.Do(testutils.Request{
			Method: http.MethodGet, Path: "/zendesk/tickets?status=OPEN&page=2&per_page=25", Token: token,
		})
		s.Equal(fiber.StatusOK, resp.StatusCode, role)
		data, ok := out.Data.(map[string]any)
		s.Require().True(ok)
		s.InDelta(26, data["count"], 0)
	}
}

func (s *ZendeskRoutesTestSuite) TestViewersAreForbidden() {
	token, _ := s.env.Token(user.RoleViewer)
	for _, path := range []string{"/zendesk/tickets", "/zendesk/tickets/77", "/zendesk/agents"} {
		resp := s.env.MakeRequest(http.MethodGet, path, "", token)
		s.Equal(fiber.StatusForbidden, resp.StatusCode, path)
	}
	s.env.Zendesk.AssertNotCalled(s.T(), "ListTickets", mock.Anything, mock.Anything)
}

func (s *ZendeskRoutesTestSuite) TestGetTicket() {
	token, _ := s.env.Token(user.RoleAgent)
	s.env.Zendesk.EXPECT().GetTicket(mock.Anything, int64(77)).Return(&dto.Ticket{ID: 77, Status: "pending"}, nil).Once()

	resp := s.env.MakeRequest(http.MethodGet, "/zendesk/tickets/77", "", token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	for _, path := range []string{"/zendesk/tickets/0", "/zendesk/tickets/abc"} {
		resp := s.env.MakeRequest(http.MethodGet, path, "", token)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestZendeskRoutes_NotConfigured(t *testing.T) {
	env := testutils.NewEnv(t)
	token, _ := env.Token(user.RoleAgent)

	resp := env.MakeRequest(http.MethodGet, "/zendesk/tickets", "", token)
	if resp.StatusCode != fiber.StatusServiceUnavailable {
		t.Fatalf("status = %d, want %d", resp.StatusCode, fiber.StatusServiceUnavailable)
	}
}
