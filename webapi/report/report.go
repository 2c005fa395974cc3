package report

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/middleware"
	reportsvc "github.com/amirasaad/backoffice/pkg/service/report"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app fiber.Router, reportSvc *reportsvc.Service, cfg *config.App) {
	group := app.Group("/reports", middleware.JwtProtected(cfg.Auth.Jwt))
	group.Get("/tickets", ranged(reportSvc, "Ticket report", reportSvc.Tickets))
	group.Get("/messages", ranged(reportSvc, "Message report", reportSvc.Messages))
	group.Get("/agents", Agents(reportSvc))
	group.Get("/users", Users(reportSvc))
	group.Get("/transactions", ranged(reportSvc, "Transaction report", reportSvc.Transactions))
	group.Get("/reconciliation", ranged(reportSvc, "Reconciliation report", reportSvc.Reconciliation))
	group.Get("/dashboard", ranged(reportSvc, "Dashboard", reportSvc.Dashboard))
}

// ranged adapts a date-ranged report to a handler reading ?from and ?to
// (RFC 3339 or YYYY-MM-DD). Missing bounds default to the last 30 days.
func ranged[T any](
	reportSvc *reportsvc.Service,
	title string,
	run func(ctx context.Context, r dto.DateRange) (T, error),
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, err := common.QueryTime(c, "from")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid from", err, fiber.StatusBadRequest)
		}
		to, err := common.QueryTime(c, "to")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid to", err, fiber.StatusBadRequest)
		}
		r, err := reportSvc.Range(from, to)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid date range", err)
		}
		out, err := run(c.UserContext(), r)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't build report", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, title, out)
	}
}

// Agents returns open conversations per agent.
// @Summary Agent workload
// @Tags reports
// @Produce json
// @Success 200 {object} common.Response
// @Router /reports/agents [get]
// @Security Bearer
func Agents(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := reportSvc.Agents(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't build report", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Agent workload", out)
	}
}

// Users returns user counts by role.
// @Summary Users by role
// @Tags reports
// @Produce json
// @Success 200 {object} common.Response
// @Router /reports/users [get]
// @Security Bearer
func Users(reportSvc *reportsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		out, err := reportSvc.Users(c.UserContext())
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't build report", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Users by role", out)
	}
}
