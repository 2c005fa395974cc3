package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("get: %w", domain.ErrNotFound), fiber.StatusNotFound},
		{"account not found", account.ErrAccountNotFound, fiber.StatusNotFound},
		{"conversation not found", conversation.ErrConversationNotFound, fiber.StatusNotFound},
		{"ipn event not found", transaction.ErrIPNEventNotFound, fiber.StatusNotFound},
		{"exists", domain.ErrAlreadyExists, fiber.StatusConflict},
		{"not pending", transaction.ErrNotPending, fiber.StatusConflict},
		{"closed", conversation.ErrConversationClosed, fiber.StatusConflict},
		{"reconciled", transaction.ErrAlreadyReconciled, fiber.StatusConflict},
		{"unauthorized", user.ErrUserUnauthorized, fiber.StatusUnauthorized},
		{"revoked key", apikey.ErrKeyRevoked, fiber.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, fiber.StatusForbidden},
		{"permission", apikey.ErrPermissionDenied, fiber.StatusForbidden},
		{"validation", fmt.Errorf("x: %w", domain.ErrValidation), fiber.StatusBadRequest},
		{"cbu", account.ErrInvalidCBU, fiber.StatusBadRequest},
		{"amount", transaction.ErrInvalidAmount, fiber.StatusBadRequest},
		{"unavailable", domain.ErrUnavailable, fiber.StatusServiceUnavailable},
		{"upstream 404", &provider.APIError{Provider: "zendesk", StatusCode: 404}, fiber.StatusNotFound},
		{"upstream 500", &provider.APIError{Provider: "zendesk", StatusCode: 500}, fiber.StatusBadGateway},
		{"fiber error", fiber.ErrMethodNotAllowed, fiber.StatusMethodNotAllowed},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}

func decodeProblem(t *testing.T, resp *http.Response) ProblemDetails {
	t.Helper()
	defer resp.Body.Close() //nolint:errcheck
	var pd ProblemDetails
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pd))
	return pd
}

func TestProblemDetailsJSON(t *testing.T) {
	app := fiber.New()
	app.Get("/derived", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Not found", account.ErrAccountNotFound)
	})
	app.Get("/explicit", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Bad", nil, "custom detail", fiber.StatusTeapot)
	})
	app.Get("/internal", func(c *fiber.Ctx) error {
		return ProblemDetailsJSON(c, "Internal Server Error", errors.New("db password leaked"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/derived", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "application/problem+json", resp.Header.Get(fiber.HeaderContentType))
	pd := decodeProblem(t, resp)
	assert.Equal(t, "account not found", pd.Detail)
	assert.Equal(t, "/derived", pd.Instance)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/explicit", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "custom detail", decodeProblem(t, resp).Detail)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/internal", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.NotContains(t, decodeProblem(t, resp).Detail, "password")
}

type bindInput struct {
	Name  string `json:"name" validate:"required,max=5"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/", func(c *fiber.Ctx) error {
		in, err := BindAndValidate[bindInput](c)
		if in == nil {
			return err
		}
		return SuccessResponseJSON(c, fiber.StatusOK, "ok", in)
	})
	post := func(body string) *http.Response {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp
	}

	resp := post(`{"name":"ok"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = post(`{"name":"too-long-name"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	pd := decodeProblem(t, resp)
	assert.Equal(t, "Validation failed", pd.Title)
	assert.Equal(t, map[string]any{"Name": "max"}, pd.Errors)

	resp = post(`{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", decodeProblem(t, resp).Title)
}

func TestQueryHelpers(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		page, size := Paging(c)
		from, err := QueryTime(c, "from")
		if err != nil {
			return ProblemDetailsJSON(c, "Invalid from", err, fiber.StatusBadRequest)
		}
		active, err := QueryBool(c, "active")
		if err != nil {
			return ProblemDetailsJSON(c, "Invalid active", err, fiber.StatusBadRequest)
		}
		id, err := QueryUUID(c, "account")
		if err != nil {
			return ProblemDetailsJSON(c, "Invalid account", err, fiber.StatusBadRequest)
		}
		return c.JSON(fiber.Map{
			"page": page, "size": size,
			"from": from != nil, "active": active != nil && *active, "account": id != nil,
		})
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet,
		"/?page=2&page_size=50&from=2024-03-01&active=true&account=8f14e45f-ceea-467f-a0e6-6b2b6a0b7f6e", nil))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, map[string]any{
		"page": float64(2), "size": float64(50), "from": true, "active": true, "account": true,
	}, got)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/?from=yesterday", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
