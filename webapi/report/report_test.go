package report_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportTestSuite struct {
	suite.Suite
	env   *testutils.Env
	token string
}

func TestReportTestSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}

func (s *ReportTestSuite) SetupTest() {
	s.env = testutils.NewEnv(s.T())
	s.token, _ = s.env.Token(user.RoleViewer)
}

func (s *ReportTestSuite) TestRangeLimit() {
	// 2024 is a leap year, so this range is exactly 366 days
	s.env.Reports.EXPECT().TransactionsPerDay(mock.Anything, mock.MatchedBy(func(r dto.DateRange) bool {
		return r.From.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) &&
			r.To.Equal(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	})).Return(nil, nil).Once()
	resp := s.env.MakeRequest(http.MethodGet, "/reports/transactions?from=2024-01-01&to=2025-01-01", "", s.token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	for _, path := range []string{
		"/reports/transactions?from=2024-01-01&to=2025-01-02",
		"/reports/tickets?from=2023-01-01&to=2025-01-01",
		"/reports/dashboard?from=2020-01-01T00:00:00Z&to=2024-01-01T00:00:00Z",
	} {
		resp := s.env.MakeRequest(http.MethodGet, path, "", s.token)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, path)
	}
	s.env.Reports.AssertNotCalled(s.T(), "ConversationsByStatus", mock.Anything, mock.Anything)
}

func (s *ReportTestSuite) TestInvalidRange() {
	for _, path := range []string{
		"/reports/messages?from=2024-02-01&to=2024-01-01",
		"/reports/messages?from=2024-01-01&to=2024-01-01",
		"/reports/messages?from=yesterday",
		"/reports/messages?to=01/02/2024",
	} {
		resp := s.env.MakeRequest(http.MethodGet, path, "", s.token)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, path)
	}
}

func (s *ReportTestSuite) TestDefaultRange() {
	s.env.Reports.EXPECT().MessagesPerDay(mock.Anything, mock.MatchedBy(func(r dto.DateRange) bool {
		return r.To.Sub(r.From) == 30*24*time.Hour
	})).Return([]dto.DailyAuthorCount{}, nil).Once()

	resp, out := s.env.Do(testutils.Request{Method: http.MethodGet, Path: "/reports/messages", Token: s.token})
	s.Equal(fiber.StatusOK, resp.StatusCode)
	s.Equal("Message report", out.Message)
}

func (s *ReportTestSuite) TestUndatedReports() {
	s.env.Reports.EXPECT().AgentWorkload(mock.Anything).Return([]dto.AgentWorkload{}, nil).Once()
	s.env.Reports.EXPECT().UsersByRole(mock.Anything).Return([]dto.RoleCount{}, nil).Once()

	for _, path := range []string{"/reports/agents", "/reports/users"} {
		resp := s.env.MakeRequest(http.MethodGet, path, "", s.token)
		s.Equal(fiber.StatusOK, resp.StatusCode, path)
	}
}

func (s *ReportTestSuite) TestRequiresJWT() {
	resp := s.env.MakeRequest(http.MethodGet, "/reports/agents", "", "")
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}
