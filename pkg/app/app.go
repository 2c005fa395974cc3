package app

import (
	"log/slog"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/eventbus"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/amirasaad/backoffice/pkg/realtime"
	"github.com/amirasaad/backoffice/pkg/repository"
	"github.com/amirasaad/backoffice/pkg/service/account"
	"github.com/amirasaad/backoffice/pkg/service/apikey"
	"github.com/amirasaad/backoffice/pkg/service/auth"
	"github.com/amirasaad/backoffice/pkg/service/conversation"
	"github.com/amirasaad/backoffice/pkg/service/report"
	"github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/amirasaad/backoffice/pkg/service/user"
	"github.com/amirasaad/backoffice/pkg/service/zendesk"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	// Runner is set when EventBus consumes from an external broker.
	Runner  eventbus.Runner
	Gateway provider.PaymentGateway
	// Zendesk is nil when the integration is not configured.
	Zendesk provider.Zendesk
	Logger  *slog.Logger
}

type App struct {
	Deps                *Deps
	Config              *config.App
	Hub                 *realtime.Hub
	AuthService         *auth.Service
	UserService         *user.Service
	APIKeyService       *apikey.Service
	AccountService      *account.Service
	TransactionService  *transaction.Service
	ConversationService *conversation.Service
	ZendeskService      *zendesk.Service
	ReportService       *report.Service
}

func New(deps *Deps, cfg *config.App) *App {
	app := &App{
		Deps:   deps,
		Config: cfg,
	}
	buffer := 0
	if cfg.Realtime != nil {
		buffer = cfg.Realtime.OutboundBuffer
	}
	app.Hub = realtime.NewHub(buffer, deps.Logger)

	app.AuthService = auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	app.UserService = user.New(deps.Uow, deps.Logger)
	app.APIKeyService = apikey.New(deps.Uow, deps.Logger)
	app.AccountService = account.New(deps.EventBus, deps.Uow, deps.Logger)
	app.TransactionService = transaction.New(deps.Uow, deps.Gateway, deps.EventBus, cfg.Reconcile, deps.Logger)
	app.ConversationService = conversation.New(deps.Uow, deps.Zendesk, deps.EventBus, deps.Logger)
	app.ZendeskService = zendesk.New(deps.Zendesk, deps.Logger)
	app.ReportService = report.New(deps.Uow, deps.Logger)

	app.setupEventBus()
	return app
}
