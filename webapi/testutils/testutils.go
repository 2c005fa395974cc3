// Package testutils builds the fully routed application on top of mocks so
// handler tests exercise the same middleware chain as production.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	infra_eventbus "github.com/amirasaad/backoffice/infra/eventbus"
	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/app"
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/amirasaad/backoffice/pkg/repository"
	accountrepo "github.com/amirasaad/backoffice/pkg/repository/account"
	keyrepo "github.com/amirasaad/backoffice/pkg/repository/apikey"
	convrepo "github.com/amirasaad/backoffice/pkg/repository/conversation"
	reportrepo "github.com/amirasaad/backoffice/pkg/repository/report"
	txrepo "github.com/amirasaad/backoffice/pkg/repository/transaction"
	userrepo "github.com/amirasaad/backoffice/pkg/repository/user"
	"github.com/amirasaad/backoffice/pkg/service/auth"
	"github.com/amirasaad/backoffice/webapi"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ZendeskWebhookSecret is the shared secret the test config expects.
const ZendeskWebhookSecret = "zd-secret"

// Env is a routed app plus the mocks behind it.
type Env struct {
	t   *testing.T
	App *fiber.App
	Cfg *config.App

	Users         *mocks.MockUserRepository
	Keys          *mocks.MockAPIKeyRepository
	Accounts      *mocks.MockAccountRepository
	Transactions  *mocks.MockTransactionRepository
	IPN           *mocks.MockIPNRepository
	Conversations *mocks.MockConversationRepository
	Messages      *mocks.MockMessageRepository
	Reports       *mocks.MockReportRepository
	Gateway       *mocks.MockPaymentGateway
	// Zendesk is nil unless WithZendesk was passed.
	Zendesk *mocks.MockZendesk
}

type options struct {
	zendesk bool
}

// Option tweaks NewEnv.
type Option func(*options)

// WithZendesk wires a Zendesk mock so the integration counts as configured.
func WithZendesk() Option {
	return func(o *options) { o.zendesk = true }
}

// Config returns the configuration the test app runs with.
func Config() *config.App {
	return &config.App{
		Env:         "test",
		Auth:        &config.Auth{Jwt: &config.Jwt{Secret: "webapi-secret", Expiry: time.Hour}},
		RateLimit:   &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		MercadoPago: &config.MercadoPago{},
		Reconcile:   &config.Reconcile{Window: 24 * time.Hour},
		Zendesk:     &config.Zendesk{WebhookSecret: ZendeskWebhookSecret},
		Realtime:    &config.Realtime{Heartbeat: time.Second, OutboundBuffer: 4},
	}
}

// NewEnv builds the application with every repository mocked.
func NewEnv(t *testing.T, opts ...Option) *Env {
	t.Helper()
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	e := &Env{
		t:             t,
		Cfg:           Config(),
		Users:         mocks.NewMockUserRepository(t),
		Keys:          mocks.NewMockAPIKeyRepository(t),
		Accounts:      mocks.NewMockAccountRepository(t),
		Transactions:  mocks.NewMockTransactionRepository(t),
		IPN:           mocks.NewMockIPNRepository(t),
		Conversations: mocks.NewMockConversationRepository(t),
		Messages:      mocks.NewMockMessageRepository(t),
		Reports:       mocks.NewMockReportRepository(t),
		Gateway:       mocks.NewMockPaymentGateway(t),
	}
	e.Gateway.EXPECT().Name().Return("mercadopago").Maybe()

	uow := mocks.NewMockUnitOfWork(t)
	expectRepo := func(typ reflect.Type, repo any) {
		uow.EXPECT().GetRepository(typ).Return(repo, nil).Maybe()
	}
	expectRepo(repository.TypeOf[userrepo.Repository](), e.Users)
	expectRepo(repository.TypeOf[keyrepo.Repository](), e.Keys)
	expectRepo(repository.TypeOf[accountrepo.Repository](), e.Accounts)
	expectRepo(repository.TypeOf[txrepo.Repository](), e.Transactions)
	expectRepo(repository.TypeOf[txrepo.IPNRepository](), e.IPN)
	expectRepo(repository.TypeOf[convrepo.Repository](), e.Conversations)
	expectRepo(repository.TypeOf[convrepo.MessageRepository](), e.Messages)
	expectRepo(repository.TypeOf[reportrepo.Repository](), e.Reports)
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error { return fn(uow) },
	).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &app.Deps{
		Uow:      uow,
		EventBus: infra_eventbus.NewWithMemory(logger),
		Gateway:  e.Gateway,
		Logger:   logger,
	}
	if o.zendesk {
		e.Zendesk = mocks.NewMockZendesk(t)
		deps.Zendesk = provider.Zendesk(e.Zendesk)
	}
	e.App = webapi.SetupApp(app.New(deps, e.Cfg))
	return e
}

// Token signs a JWT for a fresh user with role, the way login does.
func (e *Env) Token(role user.Role) (string, *user.User) {
	e.t.Helper()
	u, err := user.New("op-"+string(role), string(role)+"@example.com", "password123", role)
	require.NoError(e.t, err)
	strategy := auth.NewJWTStrategy(nil, e.Cfg.Auth.Jwt, slog.New(slog.NewTextHandler(io.Discard, nil)))
	token, err := strategy.GenerateToken(context.Background(), u)
	require.NoError(e.t, err)
	return token, u
}

// APIKey issues a key with perms that the mocked repository will resolve.
func (e *Env) APIKey(perms ...string) (string, *apikey.APIKey) {
	e.t.Helper()
	key, raw, err := apikey.New(uuid.New(), "integration", perms, nil)
	require.NoError(e.t, err)
	e.Keys.EXPECT().GetByPrefix(mock.Anything, key.KeyPrefix).Return(key, nil).Maybe()
	e.Keys.EXPECT().TouchLastUsed(mock.Anything, key.ID, mock.Anything).Return(nil).Maybe()
	return raw, key
}

// Request describes one call against the app.
type Request struct {
	Method  string
	Path    string
	Body    string
	Token   string
	Headers map[string]string
}

// Do runs req and decodes the response envelope. Problem documents decode
// into an empty Response; the status code is what handler tests assert on.
func (e *Env) Do(req Request) (*http.Response, common.Response) {
	e.t.Helper()
	var body io.Reader
	if req.Body != "" {
		body = bytes.NewBufferString(req.Body)
	}
	r := httptest.NewRequest(req.Method, req.Path, body)
	if req.Body != "" {
		r.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		r.Header.Set("Authorization", "Bearer "+req.Token)
	}
	for k, v := range req.Headers {
		r.Header.Set(k, v)
	}
	resp, err := e.App.Test(r, -1)
	require.NoError(e.t, err)
	defer resp.Body.Close() //nolint: errcheck
	var out common.Response
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

// MakeRequest is Do for the common bearer-token case.
func (e *Env) MakeRequest(method, path, body, token string) *http.Response {
	e.t.Helper()
	resp, _ := e.Do(Request{Method: method, Path: path, Body: body, Token: token})
	return resp
}
