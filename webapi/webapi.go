// Package webapi mounts the HTTP API. Each resource lives in its own
// sub-package:
//   - auth, user, apikey: operators and machine credentials
//   - account, transaction: merchant accounts and MercadoPago reconciliation
//   - conversation, realtime: support chat and its websocket feed
//   - zendesk, report: Zendesk proxy and read-only aggregates
package webapi

import (
	"errors"
	"strings"

	_ "github.com/amirasaad/backoffice/docs"
	"github.com/amirasaad/backoffice/pkg/app"
	accountweb "github.com/amirasaad/backoffice/webapi/account"
	apikeyweb "github.com/amirasaad/backoffice/webapi/apikey"
	authweb "github.com/amirasaad/backoffice/webapi/auth"
	"github.com/amirasaad/backoffice/webapi/common"
	conversationweb "github.com/amirasaad/backoffice/webapi/conversation"
	realtimeweb "github.com/amirasaad/backoffice/webapi/realtime"
	reportweb "github.com/amirasaad/backoffice/webapi/report"
	transactionweb "github.com/amirasaad/backoffice/webapi/transaction"
	userweb "github.com/amirasaad/backoffice/webapi/user"
	zendeskweb "github.com/amirasaad/backoffice/webapi/zendesk"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(app *app.App) *fiber.App {
	cfg := app.Config

	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health and metrics stay outside the limiter so liveness checks never get 429.
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"zendesk":  app.ZendeskService.Enabled(),
			"ws_peers": app.Hub.ClientCount(),
		})
	})
	fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		PersistAuthorization: true,
	}))

	if cfg.RateLimit != nil && cfg.RateLimit.MaxRequests > 0 {
		fiberApp.Use(limiter.New(limiter.Config{
			Max:          cfg.RateLimit.MaxRequests,
			Expiration:   cfg.RateLimit.Window,
			KeyGenerator: clientIP,
			// Websocket connections are long lived and authenticated.
			Next: func(c *fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/ws/")
			},
			LimitReached: func(c *fiber.Ctx) error {
				return common.ProblemDetailsJSON(
					c,
					"Too Many Requests",
					errors.New("rate limit exceeded"),
					fiber.StatusTooManyRequests,
				)
			},
		}))
	}

	authweb.Routes(fiberApp, app.AuthService, app.UserService, cfg)
	userweb.Routes(fiberApp, app.UserService, cfg)
	apikeyweb.Routes(fiberApp, app.APIKeyService, cfg)
	accountweb.Routes(fiberApp, app.AccountService, cfg)
	transactionweb.Routes(fiberApp, app.TransactionService, app.APIKeyService, cfg)
	conversationweb.Routes(fiberApp, app.ConversationService, cfg)
	zendeskweb.Routes(fiberApp, app.ZendeskService, cfg)
	reportweb.Routes(fiberApp, app.ReportService, cfg)
	realtimeweb.Routes(fiberApp, app.Hub, cfg, app.Deps.Logger)
	return fiberApp
}

// clientIP keys the limiter on the first X-Forwarded-For hop, then
// X-Real-IP, then the socket address.
func clientIP(c *fiber.Ctx) string {
	if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
		if first, _, found := strings.Cut(forwardedFor, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP := c.Get("X-Real-IP"); realIP != "" {
		return realIP
	}
	return c.IP()
}
