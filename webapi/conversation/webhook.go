package conversation

import (
	"crypto/subtle"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/dto"
	conversationsvc "github.com/amirasaad/backoffice/pkg/service/conversation"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// WebhookSecretHeader carries the shared secret configured on the Zendesk trigger.
const WebhookSecretHeader = "X-Webhook-Secret"

// ZendeskWebhook applies ticket updates pushed by a Zendesk trigger.
// @Summary Zendesk ticket webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Param request body dto.ZendeskTicketUpdate true "Ticket update"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /webhooks/zendesk [post]
func ZendeskWebhook(convSvc *conversationsvc.Service, cfg *config.Zendesk) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg == nil || cfg.WebhookSecret == "" {
			return common.ProblemDetailsJSON(c, "Zendesk webhook disabled", nil, fiber.StatusNotFound)
		}
		got := c.Get(WebhookSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(cfg.WebhookSecret)) != 1 {
			return common.ProblemDetailsJSON(c, "Invalid webhook secret", nil, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[dto.ZendeskTicketUpdate](c)
		if input == nil {
			return err
		}
		conversation, err := convSvc.ApplyZendeskUpdate(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't apply ticket update", err)
		}
		var data any
		if conversation != nil {
			data = conversationsvc.ToRead(conversation)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Ticket update applied", data)
	}
}
