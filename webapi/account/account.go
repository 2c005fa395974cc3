package account

import (
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/middleware"
	accountsvc "github.com/amirasaad/backoffice/pkg/service/account"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func Routes(app fiber.Router, accountSvc *accountsvc.Service, cfg *config.App) {
	group := app.Group("/accounts", middleware.JwtProtected(cfg.Auth.Jwt))
	admin := middleware.RequireRole(user.RoleAdmin)
	group.Post("/", admin, CreateAccount(accountSvc))
	group.Get("/", ListAccounts(accountSvc))
	group.Get("/:id", GetAccount(accountSvc))
	group.Put("/:id", admin, UpdateAccount(accountSvc))
	group.Delete("/:id", admin, DeleteAccount(accountSvc))
	group.Post("/:id/activate", admin, SetActive(accountSvc, true))
	group.Post("/:id/deactivate", admin, SetActive(accountSvc, false))
}

// CreateAccount registers a merchant account.
// @Summary Create account
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body dto.AccountCreate true "Account data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /accounts [post]
// @Security Bearer
func CreateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.AccountCreate](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.Create(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", accountsvc.ToRead(a))
	}
}

// ListAccounts lists accounts, optionally by ?active and ?provider.
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param active query bool false "Active only"
// @Param provider query string false "bank or mercadopago"
// @Success 200 {object} common.Response
// @Router /accounts [get]
// @Security Bearer
func ListAccounts(accountSvc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		active, err := common.QueryBool(c, "active")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid active filter", err, fiber.StatusBadRequest)
		}
		accounts, err := accountSvc.List(c.UserContext(), dto.AccountFilter{
			Active:   active,
			Provider: c.Query("provider"),
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list accounts", err)
		}
		out := make([]dto.AccountRead, 0, len(accounts))
		for _, a := range accounts {
			out = append(out, accountsvc.ToRead(a))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts", out)
	}
}

// GetAccount returns one account.
// @Summary Get account
// @Tags accounts
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /accounts/{id} [get]
// @Security Bearer
func GetAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		a, err := accountSvc.Get(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Account not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account found", accountsvc.ToRead(a))
	})
}

// UpdateAccount changes account fields.
// @Summary Update account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Param request body dto.AccountUpdate true "Fields to change"
// @Success 200 {object} common.Response
// @Router /accounts/{id} [put]
// @Security Bearer
func UpdateAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		input, err := common.BindAndValidate[dto.AccountUpdate](c)
		if input == nil {
			return err
		}
		a, err := accountSvc.Update(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account updated", accountsvc.ToRead(a))
	})
}

// DeleteAccount removes an account.
// @Summary Delete account
// @Tags accounts
// @Param id path string true "Account ID"
// @Success 204
// @Router /accounts/{id} [delete]
// @Security Bearer
func DeleteAccount(accountSvc *accountsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		if err := accountSvc.Delete(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't delete account", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})
}

// SetActive activates or deactivates an account.
func SetActive(accountSvc *accountsvc.Service, active bool) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		op, msg := accountSvc.Deactivate, "Account deactivated"
		if active {
			op, msg = accountSvc.Activate, "Account activated"
		}
		a, err := op(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't change account status", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, msg, accountsvc.ToRead(a))
	})
}

func withID(h func(*fiber.Ctx, uuid.UUID) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account ID", err, "Account ID must be a valid UUID", fiber.StatusBadRequest)
		}
		return h(c, id)
	}
}
