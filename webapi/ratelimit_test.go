package webapi_test

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	infra_eventbus "github.com/amirasaad/backoffice/infra/eventbus"
	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	cfg.RateLimit = &config.RateLimit{MaxRequests: 5, Window: time.Second}
	application := app.New(&app.Deps{
		Uow:      mocks.NewMockUnitOfWork(t),
		EventBus: infra_eventbus.NewWithMemory(logger),
		Gateway:  mocks.NewMockPaymentGateway(t),
		Logger:   logger,
	}, cfg)
	fiberApp := webapi.SetupApp(application)

	request := func(path, forwardedFor string) int {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		if forwardedFor != "" {
			req.Header.Set("X-Forwarded-For", forwardedFor)
		}
		resp, err := fiberApp.Test(req)
		require.NoError(t, err)
		defer resp.Body.Close() //nolint: errcheck
		return resp.StatusCode
	}

	// Unauthenticated /auth/me answers 400 until the limiter kicks in.
	for i := 0; i < 5; i++ {
		assert.Equal(t, fiber.StatusBadRequest, request("/auth/me", "10.0.0.1, 10.0.0.2"), "request %d", i+1)
	}
	assert.Equal(t, fiber.StatusTooManyRequests, request("/auth/me", "10.0.0.1"))

	// Other clients and the health check are unaffected.
	assert.Equal(t, fiber.StatusBadRequest, request("/auth/me", "10.0.0.9"))
	assert.Equal(t, fiber.StatusOK, request("/", "10.0.0.1"))

	time.Sleep(1100 * time.Millisecond)
	assert.Equal(t, fiber.StatusBadRequest, request("/auth/me", "10.0.0.1"))
}
