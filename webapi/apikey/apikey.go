package apikey

import (
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/middleware"
	apikeysvc "github.com/amirasaad/backoffice/pkg/service/apikey"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

func Routes(app fiber.Router, keySvc *apikeysvc.Service, cfg *config.App) {
	group := app.Group("/apikeys",
		middleware.JwtProtected(cfg.Auth.Jwt),
		middleware.RequireRole(user.RoleAdmin),
	)
	group.Post("/", IssueKey(keySvc))
	group.Get("/", ListKeys(keySvc))
	group.Delete("/:id", RevokeKey(keySvc))
}

// IssueKey creates a key owned by the caller. The secret is only returned here.
// @Summary Issue API key
// @Tags apikeys
// @Accept json
// @Produce json
// @Param request body dto.APIKeyCreate true "Key"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /apikeys [post]
// @Security Bearer
func IssueKey(keySvc *apikeysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.APIKeyCreate](c)
		if input == nil {
			return err
		}
		p, _ := middleware.GetPrincipal(c)
		key, raw, err := keySvc.Issue(c.UserContext(), p.UserID, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't issue API key", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "API key issued", dto.APIKeyIssued{
			APIKeyRead: apikeysvc.ToRead(key),
			Key:        raw,
		})
	}
}

// ListKeys lists the keys of ?owner, defaulting to the caller.
// @Summary List API keys
// @Tags apikeys
// @Produce json
// @Param owner query string false "Owner user ID"
// @Success 200 {object} common.Response
// @Router /apikeys [get]
// @Security Bearer
func ListKeys(keySvc *apikeysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, _ := middleware.GetPrincipal(c)
		owner := p.UserID
		if q, err := common.QueryUUID(c, "owner"); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid owner", err, fiber.StatusBadRequest)
		} else if q != nil {
			owner = *q
		}
		keys, err := keySvc.List(c.UserContext(), owner)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list API keys", err)
		}
		out := make([]dto.APIKeyRead, 0, len(keys))
		for _, k := range keys {
			out = append(out, apikeysvc.ToRead(k))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "API keys", out)
	}
}

// RevokeKey revokes a key.
// @Summary Revoke API key
// @Tags apikeys
// @Param id path string true "Key ID"
// @Success 204
// @Failure 404 {object} common.ProblemDetails
// @Router /apikeys/{id} [delete]
// @Security Bearer
func RevokeKey(keySvc *apikeysvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid API key ID", err, "API key ID must be a valid UUID", fiber.StatusBadRequest)
		}
		if err := keySvc.Revoke(c.UserContext(), id); err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't revoke API key", err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
