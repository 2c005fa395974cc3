package transaction

import (
	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/middleware"
	transactionsvc "github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/amirasaad/backoffice/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// API key permissions for the transaction routes.
const (
	PermRead  = "transactions:read"
	PermWrite = "transactions:write"
)

func Routes(
	app fiber.Router,
	txSvc *transactionsvc.Service,
	keys middleware.KeyAuthenticator,
	cfg *config.App,
) {
	app.Post("/webhooks/mercadopago", MercadoPagoWebhook(txSvc, cfg.MercadoPago))

	read := middleware.Authenticated(cfg.Auth.Jwt, keys, PermRead)
	write := middleware.Authenticated(cfg.Auth.Jwt, keys, PermWrite)
	admin := []fiber.Handler{
		middleware.JwtProtected(cfg.Auth.Jwt),
		middleware.RequireRole(user.RoleAdmin),
	}

	app.Post("/transactions/deposits", write, CreateDeposit(txSvc))
	app.Post("/transactions/withdrawals", write, CreateWithdrawal(txSvc))
	app.Get("/transactions", read, ListTransactions(txSvc))
	app.Get("/transactions/:id", read, GetTransaction(txSvc))
	app.Post("/transactions/:id/approve", append(admin, Approve(txSvc))...)
	app.Post("/transactions/:id/reject", append(admin, Reject(txSvc))...)
	app.Post("/transactions/:id/match", append(admin, ManualMatch(txSvc))...)
	app.Get("/ipn-events", append(admin, ListIPNEvents(txSvc))...)
}

// CreateDeposit records a customer's deposit claim and tries to reconcile it.
// @Summary Declare a deposit
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.DepositCreate true "Deposit claim"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /transactions/deposits [post]
// @Security Bearer
func CreateDeposit(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.DepositCreate](c)
		if input == nil {
			return err
		}
		t, err := txSvc.CreateDeposit(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Deposit created", transactionsvc.ToRead(t))
	}
}

// CreateWithdrawal records a payout request.
// @Summary Request a withdrawal
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.WithdrawalCreate true "Withdrawal"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Router /transactions/withdrawals [post]
// @Security Bearer
func CreateWithdrawal(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[dto.WithdrawalCreate](c)
		if input == nil {
			return err
		}
		t, err := txSvc.CreateWithdrawal(c.UserContext(), *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create withdrawal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Withdrawal created", transactionsvc.ToRead(t))
	}
}

// ListTransactions returns one page of transactions.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param kind query string false "deposit or withdrawal"
// @Param status query string false "pending, completed, rejected or expired"
// @Param account query string false "Account ID"
// @Param from query string false "From (RFC 3339 or YYYY-MM-DD)"
// @Param to query string false "To (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} common.Response
// @Router /transactions [get]
// @Security Bearer
func ListTransactions(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := dto.TransactionFilter{
			Kind:   c.Query("kind"),
			Status: c.Query("status"),
		}
		var err error
		if filter.AccountID, err = common.QueryUUID(c, "account"); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid account", err, fiber.StatusBadRequest)
		}
		if filter.From, err = common.QueryTime(c, "from"); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid from", err, fiber.StatusBadRequest)
		}
		if filter.To, err = common.QueryTime(c, "to"); err != nil {
			return common.ProblemDetailsJSON(c, "Invalid to", err, fiber.StatusBadRequest)
		}
		filter.Page, filter.PageSize = dto.NormalizePage(common.Paging(c))
		txs, total, err := txSvc.List(c.UserContext(), filter)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		items := make([]dto.TransactionRead, 0, len(txs))
		for _, t := range txs {
			items = append(items, transactionsvc.ToRead(t))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions", dto.Page[dto.TransactionRead]{
			Items:    items,
			Page:     filter.Page,
			PageSize: filter.PageSize,
			Total:    total,
		})
	}
}

// GetTransaction returns one transaction.
// @Summary Get transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 404 {object} common.ProblemDetails
// @Router /transactions/{id} [get]
// @Security Bearer
func GetTransaction(txSvc *transactionsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		t, err := txSvc.Get(c.UserContext(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Transaction not found", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction found", transactionsvc.ToRead(t))
	})
}

// Approve completes a pending withdrawal.
// @Summary Approve withdrawal
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.WithdrawalApprove false "External reference"
// @Success 200 {object} common.Response
// @Failure 409 {object} common.ProblemDetails
// @Router /transactions/{id}/approve [post]
// @Security Bearer
func Approve(txSvc *transactionsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		var input dto.WithdrawalApprove
		if len(c.Body()) > 0 {
			in, err := common.BindAndValidate[dto.WithdrawalApprove](c)
			if in == nil {
				return err
			}
			input = *in
		}
		t, err := txSvc.ApproveWithdrawal(c.UserContext(), id, input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't approve withdrawal", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal approved", transactionsvc.ToRead(t))
	})
}

// Reject rejects a pending transaction.
// @Summary Reject transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.TransactionReject true "Reason"
// @Success 200 {object} common.Response
// @Failure 409 {object} common.ProblemDetails
// @Router /transactions/{id}/reject [post]
// @Security Bearer
func Reject(txSvc *transactionsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		input, err := common.BindAndValidate[dto.TransactionReject](c)
		if input == nil {
			return err
		}
		t, err := txSvc.Reject(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't reject transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction rejected", transactionsvc.ToRead(t))
	})
}

// ManualMatch ties a pending deposit to a gateway payment.
// @Summary Match deposit manually
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Deposit ID"
// @Param request body dto.ManualMatch true "Payment"
// @Success 200 {object} common.Response
// @Failure 409 {object} common.ProblemDetails
// @Router /transactions/{id}/match [post]
// @Security Bearer
func ManualMatch(txSvc *transactionsvc.Service) fiber.Handler {
	return withID(func(c *fiber.Ctx, id uuid.UUID) error {
		input, err := common.BindAndValidate[dto.ManualMatch](c)
		if input == nil {
			return err
		}
		t, err := txSvc.ManualMatch(c.UserContext(), id, *input)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't match deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit matched", transactionsvc.ToRead(t))
	})
}

// ListIPNEvents returns stored gateway notifications.
// @Summary List IPN events
// @Tags transactions
// @Produce json
// @Param status query string false "received, matched, unmatched, ignored or failed"
// @Success 200 {object} common.Response
// @Router /ipn-events [get]
// @Security Bearer
func ListIPNEvents(txSvc *transactionsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, size := dto.NormalizePage(common.Paging(c))
		evts, total, err := txSvc.ListIPNEvents(c.UserContext(), dto.IPNEventFilter{
			Status:   c.Query("status"),
			Page:     page,
			PageSize: size,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list IPN events", err)
		}
		items := make([]dto.IPNEventRead, 0, len(evts))
		for _, e := range evts {
			items = append(items, transactionsvc.ToIPNRead(e))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "IPN events", dto.Page[dto.IPNEventRead]{
			Items:    items,
			Page:     page,
			PageSize: size,
			Total:    total,
		})
	}
}

func withID(h func(*fiber.Ctx, uuid.UUID) error) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := common.ParseID(c, "id")
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", err, "Transaction ID must be a valid UUID", fiber.StatusBadRequest)
		}
		return h(c, id)
	}
}
