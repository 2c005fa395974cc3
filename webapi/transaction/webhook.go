package transaction

import (
	"encoding/json"
	"errors"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	transactionsvc "github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
)

// mpWebhook is the JSON body MercadoPago posts.
type mpWebhook struct {
	Type   string `json:"type"`
	Topic  string `json:"topic"`
	Action string `json:"action"`
	Data   struct {
		ID json.RawMessage `json:"id"`
	} `json:"data"`
	Resource string `json:"resource"`
}

// MercadoPagoWebhook receives payment notifications. It accepts the JSON
// body and the legacy ?topic=payment&id=... form. An ?account=<uuid>
// parameter hints which account's token to try first.
// @Summary MercadoPago IPN webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /webhooks/mercadopago [post]
func MercadoPagoWebhook(txSvc *transactionsvc.Service, cfg *config.MercadoPago) fiber.Handler {
	return func(c *fiber.Ctx) error {
		n, err := parseNotification(c)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid notification", err, fiber.StatusBadRequest)
		}
		if cfg != nil && cfg.WebhookSecret != "" {
			dataID := c.Query("data.id")
			if dataID == "" {
				dataID = n.ResourceID
			}
			if !transactionsvc.VerifySignature(cfg.WebhookSecret, c.Get("x-signature"), c.Get("x-request-id"), dataID) {
				return common.ProblemDetailsJSON(c, "Invalid signature", nil, fiber.StatusUnauthorized)
			}
		}
		if n.AccountID, err = common.QueryUUID(c, "account"); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account hint", err, fiber.StatusBadRequest)
		}
		res, err := txSvc.HandleIPN(c.UserContext(), n)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't process notification", err)
		}
		out := fiber.Map{"event": transactionsvc.ToIPNRead(res.Event)}
		if res.Transaction != nil {
			out["transaction"] = transactionsvc.ToRead(res.Transaction)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notification received", out)
	}
}

func parseNotification(c *fiber.Ctx) (dto.Notification, error) {
	n := dto.Notification{Payload: string(c.Body())}
	if len(c.Body()) > 0 {
		var body mpWebhook
		if err := json.Unmarshal(c.Body(), &body); err != nil {
			return n, errors.Join(transaction.ErrInvalidNotification, err)
		}
		n.Topic = body.Type
		if n.Topic == "" {
			n.Topic = body.Topic
		}
		n.ResourceID = rawID(body.Data.ID)
		if n.ResourceID == "" && body.Resource != "" {
			n.ResourceID = lastSegment(body.Resource)
		}
	}
	if n.Topic == "" {
		n.Topic = firstNonEmpty(c.Query("type"), c.Query("topic"))
	}
	if n.ResourceID == "" {
		n.ResourceID = firstNonEmpty(c.Query("data.id"), c.Query("id"))
	}
	if n.Topic == "" || n.ResourceID == "" {
		return n, transaction.ErrInvalidNotification
	}
	return n, nil
}

// rawID accepts a JSON string or number.
func rawID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func lastSegment(resource string) string {
	for i := len(resource) - 1; i >= 0; i-- {
		if resource[i] == '/' {
			return resource[i+1:]
		}
	}
	return resource
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
