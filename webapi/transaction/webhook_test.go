package transaction

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/repository"
	txrepo "github.com/amirasaad/backoffice/pkg/repository/transaction"
	transactionsvc "github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseNotification(t *testing.T) {
	cases := []struct {
		name     string
		target   string
		body     string
		topic    string
		resource string
		wantErr  bool
	}{
		{
			name:     "body with string id",
			target:   "/",
			body:     `{"type":"payment","action":"payment.created","data":{"id":"123"}}`,
			topic:    "payment",
			resource: "123",
		},
		{
			name:     "body with numeric id",
			target:   "/",
			body:     `{"type":"payment","data":{"id":98765}}`,
			topic:    "payment",
			resource: "98765",
		},
		{
			name:     "legacy resource url",
			target:   "/",
			body:     `{"topic":"merchant_order","resource":"https://api.mercadolibre.com/merchant_orders/555"}`,
			topic:    "merchant_order",
			resource: "555",
		},
		{
			name:     "query parameters only",
			target:   "/?topic=payment&id=42",
			topic:    "payment",
			resource: "42",
		},
		{
			name:     "query data.id fills body without id",
			target:   "/?data.id=77",
			body:     `{"type":"payment"}`,
			topic:    "payment",
			resource: "77",
		},
		{name: "missing id", target: "/", body: `{"type":"payment"}`, wantErr: true},
		{name: "missing topic", target: "/?id=1", wantErr: true},
		{name: "malformed body", target: "/", body: `{"type":`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Post("/", func(c *fiber.Ctx) error {
				n, err := parseNotification(c)
				if tc.wantErr {
					assert.ErrorIs(t, err, transaction.ErrInvalidNotification)
					return c.SendStatus(fiber.StatusBadRequest)
				}
				require.NoError(t, err)
				assert.Equal(t, tc.topic, n.Topic)
				assert.Equal(t, tc.resource, n.ResourceID)
				assert.Equal(t, tc.body, n.Payload)
				return c.SendStatus(fiber.StatusOK)
			})
			req := httptest.NewRequest(fiber.MethodPost, tc.target, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req)
			require.NoError(t, err)
			if tc.wantErr {
				assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			} else {
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			}
		})
	}
}

func newWebhookApp(t *testing.T, secret string) (*fiber.App, *mocks.MockIPNRepository) {
	t.Helper()
	ipns := mocks.NewMockIPNRepository(t)
	gateway := mocks.NewMockPaymentGateway(t)
	gateway.EXPECT().Name().Return("mercadopago").Maybe()
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().GetRepository(repository.TypeOf[txrepo.IPNRepository]()).Return(ipns, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	svc := transactionsvc.New(uow, gateway, nil, &config.Reconcile{}, slog.Default())
	app := fiber.New()
	app.Post("/webhooks/mercadopago", MercadoPagoWebhook(svc, &config.MercadoPago{WebhookSecret: secret}))
	return app, ipns
}

func sign(secret, dataID, requestID, ts string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(transactionsvc.SignatureManifest(dataID, requestID, ts)))
	return "ts=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

func postWebhook(t *testing.T, app *fiber.App, target, body string, headers map[string]string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(raw)
}

func TestMercadoPagoWebhook_InvalidSignature(t *testing.T) {
	app, _ := newWebhookApp(t, "s3cret")
	body := `{"type":"payment","data":{"id":"123"}}`

	status, _ := postWebhook(t, app, "/webhooks/mercadopago", body, nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = postWebhook(t, app, "/webhooks/mercadopago", body, map[string]string{
		"x-signature":  sign("other", "123", "req-1", "1700000000"),
		"x-request-id": "req-1",
	})
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestMercadoPagoWebhook_MissingID(t *testing.T) {
	app, _ := newWebhookApp(t, "")
	status, body := postWebhook(t, app, "/webhooks/mercadopago", `{"type":"payment"}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body, "Invalid notification")
}

func TestMercadoPagoWebhook_InvalidAccountHint(t *testing.T) {
	app, _ := newWebhookApp(t, "")
	status, _ := postWebhook(t, app, "/webhooks/mercadopago?account=nope", `{"type":"payment","data":{"id":"1"}}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMercadoPagoWebhook_SignedNonPaymentTopicIgnored(t *testing.T) {
	app, ipns := newWebhookApp(t, "s3cret")
	ipns.EXPECT().GetByResource(mock.Anything, "mercadopago", "merchant_order", "555").
		Return(nil, domain.ErrNotFound).Once()
	ipns.EXPECT().Create(mock.Anything, mock.AnythingOfType("*transaction.IPNEvent")).Return(nil).Once()
	ipns.EXPECT().Update(mock.Anything, mock.MatchedBy(func(e *transaction.IPNEvent) bool {
		return e.Status == transaction.IPNIgnored
	})).Return(nil).Once()

	status, body := postWebhook(t, app, "/webhooks/mercadopago?topic=merchant_order&id=555", "", map[string]string{
		"x-signature":  sign("s3cret", "555", "req-2", "1700000000"),
		"x-request-id": "req-2",
	})
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"ignored"`)
	assert.NotContains(t, body, `"transaction"`)
}
