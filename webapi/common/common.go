// Package common holds the response envelope, RFC 9457 problem details and
// request helpers shared by every route package.
package common

import (
	"errors"
	"strconv"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/amirasaad/backoffice/pkg/domain/conversation"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

var validate = validator.New()

// SuccessResponseJSON writes a Response envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an application/problem+json response.
// Extra arguments may be a string (detail), an int (status), or anything else
// (placed under errors). Without an explicit status it is derived from err,
// or 400 when err is nil.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, opts ...any) error {
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Instance: c.OriginalURL(),
	}
	for _, opt := range opts {
		switch v := opt.(type) {
		case int:
			pd.Status = v
		case string:
			pd.Detail = v
		default:
			pd.Errors = v
		}
	}
	if pd.Status == 0 {
		if err == nil {
			pd.Status = fiber.StatusBadRequest
		} else {
			pd.Status = ErrorToStatusCode(err)
		}
	}
	if pd.Detail == "" && err != nil {
		if pd.Status >= fiber.StatusInternalServerError && pd.Status != fiber.StatusServiceUnavailable {
			pd.Detail = "An unexpected error occurred"
		} else {
			pd.Detail = err.Error()
		}
	}
	var verrs validator.ValidationErrors
	if pd.Errors == nil && errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = fe.Tag()
		}
		pd.Errors = fields
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(pd.Status).JSON(pd)
}

// ErrorToStatusCode maps domain errors to appropriate HTTP status codes.
func ErrorToStatusCode(err error) int {
	var fe *fiber.Error
	var verrs validator.ValidationErrors
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &verrs):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, account.ErrAccountNotFound),
		errors.Is(err, transaction.ErrTransactionNotFound),
		errors.Is(err, transaction.ErrIPNEventNotFound),
		errors.Is(err, conversation.ErrConversationNotFound),
		errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, apikey.ErrKeyNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, transaction.ErrAlreadyReconciled):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, user.ErrUserUnauthorized),
		errors.Is(err, apikey.ErrKeyMalformed),
		errors.Is(err, apikey.ErrKeyRevoked),
		errors.Is(err, apikey.ErrKeyExpired):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden),
		errors.Is(err, apikey.ErrPermissionDenied):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, user.ErrPasswordTooLong),
		errors.Is(err, apikey.ErrInvalidPermission),
		errors.Is(err, account.ErrInvalidCBU),
		errors.Is(err, account.ErrInvalidAlias),
		errors.Is(err, account.ErrMissingCredentials),
		errors.Is(err, account.ErrInvalidProvider),
		errors.Is(err, account.ErrMissingDestination),
		errors.Is(err, transaction.ErrInvalidAmount),
		errors.Is(err, transaction.ErrMissingDestination),
		errors.Is(err, transaction.ErrInvalidNotification),
		errors.Is(err, conversation.ErrEmptyMessage),
		errors.Is(err, conversation.ErrInvalidStatus),
		errors.Is(err, conversation.ErrInvalidAuthor):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnavailable):
		return fiber.StatusServiceUnavailable
	}
	if code := provider.StatusCode(err); code != 0 {
		if code == fiber.StatusNotFound {
			return fiber.StatusNotFound
		}
		return fiber.StatusBadGateway
	}
	return fiber.StatusInternalServerError
}

// BindAndValidate parses the request body and validates it using go-playground/validator.
// Returns a pointer to the struct (populated), or writes an error response and returns nil.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		return nil, ProblemDetailsJSON(c, "Invalid request body", err, fiber.StatusBadRequest)
	}
	if err := validate.Struct(input); err != nil {
		return nil, ProblemDetailsJSON(c, "Validation failed", err, fiber.StatusBadRequest)
	}
	return &input, nil
}

// ParseID reads a uuid path parameter.
func ParseID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// Paging reads page and page_size query parameters. Values are clamped by
// the services.
func Paging(c *fiber.Ctx) (page, pageSize int) {
	return c.QueryInt("page", 1), c.QueryInt("page_size", 0)
}

// QueryUUID reads an optional uuid query parameter.
func QueryUUID(c *fiber.Ctx, name string) (*uuid.UUID, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// QueryTime reads an optional RFC 3339 or YYYY-MM-DD query parameter.
func QueryTime(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// QueryBool reads an optional boolean query parameter.
func QueryBool(c *fiber.Ctx, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
