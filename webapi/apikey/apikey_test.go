package apikey_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/middleware"
	"github.com/amirasaad/backoffice/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type APIKeyRoutesTestSuite struct {
	suite.Suite
	env *testutils.Env
}

func TestAPIKeyRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(APIKeyRoutesTestSuite))
}

func (s *APIKeyRoutesTestSuite) SetupTest() {
	s.env = testutils.NewEnv(s.T())
}

func (s *APIKeyRoutesTestSuite) TestIssueKey() {
	token, admin := s.env.Token(user.RoleAdmin)
	var stored *apikey.APIKey
	s.env.Keys.EXPECT().Create(mock.Anything, mock.MatchedBy(func(k *apikey.APIKey) bool {
		return k.OwnerID == admin.ID && k.Name == "erp"
	})).RunAndReturn(func(_ context.Context, k *apikey.APIKey) error {
		stored = k
		return nil
	}).Once()

	resp, out := s.env.Do(testutils.Request{
		Method: http.MethodPost,
		Path:   "/apikeys",
		Body:   `{"name":"erp","permissions":["transactions:read","transactions:write"]}`,
		Token:  token,
	})
	s.Equal(fiber.StatusCreated, resp.StatusCode)
	data, ok := out.Data.(map[string]any)
	s.Require().True(ok)
	raw, _ := data["key"].(string)
	s.NotEmpty(raw)
	s.Require().NotNil(stored)
	s.True(stored.Matches(raw), "returned secret must match the stored hash")
	s.NotContains(data, "key_hash")
}

func (s *APIKeyRoutesTestSuite) TestIssueKey_Invalid() {
	token, _ := s.env.Token(user.RoleAdmin)
	for _, body := range []string{
		`{"name":"erp","permissions":["payments:delete"]}`,
		`{"name":"erp","permissions":[]}`,
		`{"permissions":["transactions:read"]}`,
		`{"name":"erp","permissions":["transactions:read"],"expires_at":"2001-01-01T00:00:00Z"}`,
	} {
		resp := s.env.MakeRequest(http.MethodPost, "/apikeys", body, token)
		s.Equal(fiber.StatusBadRequest, resp.StatusCode, body)
	}
	s.env.Keys.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *APIKeyRoutesTestSuite) TestListKeys() {
	token, admin := s.env.Token(user.RoleAdmin)
	key, _, err := apikey.New(admin.ID, "erp", []string{apikey.PermTransactionsRead}, nil)
	s.Require().NoError(err)
	s.env.Keys.EXPECT().ListByOwner(mock.Anything, admin.ID).Return([]*apikey.APIKey{key}, nil).Once()

	resp, out := s.env.Do(testutils.Request{Method: http.MethodGet, Path: "/apikeys", Token: token})
	s.Equal(fiber.StatusOK, resp.StatusCode)
	list, ok := out.Data.([]any)
	s.Require().True(ok)
	s.Len(list, 1)

	other := uuid.New()
	s.env.Keys.EXPECT().ListByOwner(mock.Anything, other).Return(nil, nil).Once()
	resp = s.env.MakeRequest(http.MethodGet, "/apikeys?owner="+other.String(), "", token)
	s.Equal(fiber.StatusOK, resp.StatusCode)

	resp = s.env.MakeRequest(http.MethodGet, "/apikeys?owner=nobody", "", token)
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *APIKeyRoutesTestSuite) TestRevokeKey() {
	token, _ := s.env.Token(user.RoleAdmin)
	id := uuid.New()
	s.env.Keys.EXPECT().Revoke(mock.Anything, id, mock.Anything).Return(nil).Once()
	resp := s.env.MakeRequest(http.MethodDelete, "/apikeys/"+id.String(), "", token)
	s.Equal(fiber.StatusNoContent, resp.StatusCode)

	missing := uuid.New()
	s.env.Keys.EXPECT().Revoke(mock.Anything, missing, mock.Anything).Return(domain.ErrNotFound).Once()
	resp = s.env.MakeRequest(http.MethodDelete, "/apikeys/"+missing.String(), "", token)
	s.Equal(fiber.StatusNotFound, resp.StatusCode)
}

func (s *APIKeyRoutesTestSuite) TestAdminOnly() {
	id := uuid.New()
	// keys cannot mint keys, even with every permission
	rawKey, _ := s.env.APIKey(apikey.Wildcard)
	for _, role := range []user.Role{user.RoleViewer, user.RoleAgent} {
		token, _ := s.env.Token(role)
		for _, req := range []testutils.Request{
			{Method: http.MethodPost, Path: "/apikeys", Body: `{"name":"erp","permissions":["*"]}`},
			{Method: http.MethodGet, Path: "/apikeys"},
			{Method: http.MethodDelete, Path: "/apikeys/" + id.String()},
		} {
			req.Token = token
			resp, _ := s.env.Do(req)
			s.Equal(fiber.StatusForbidden, resp.StatusCode, "%s %s as %s", req.Method, req.Path, role)

			req.Token = ""
			req.Headers = map[string]string{middleware.APIKeyHeader: rawKey}
			resp, _ = s.env.Do(req)
			s.Equal(fiber.StatusBadRequest, resp.StatusCode, "%s %s with API key", req.Method, req.Path)
		}
	}
}
