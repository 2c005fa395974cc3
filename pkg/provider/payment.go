package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the gateway-side status of a payment.
type PaymentStatus string

const (
	PaymentApproved   PaymentStatus = "approved"
	PaymentPending    PaymentStatus = "pending"
	PaymentInProcess  PaymentStatus = "in_process"
	PaymentRejected   PaymentStatus = "rejected"
	PaymentCancelled  PaymentStatus = "cancelled"
	PaymentRefunded   PaymentStatus = "refunded"
	PaymentChargeBack PaymentStatus = "charged_back"
)

// Payment is a gateway payment normalized for reconciliation.
type Payment struct {
	ID                      string
	Status                  PaymentStatus
	StatusDetail            string
	Amount                  decimal.Decimal
	Currency                string
	DateCreated             time.Time
	DateApproved            *time.Time
	PayerEmail              string
	PayerIdentification     string
	PayerIdentificationType string
	// PayerAccount is the CBU/CVU the money came from when the gateway reports it.
	PayerAccount      string
	PayerName         string
	ExternalReference string
	CollectorID       string
}

// Approved reports whether the money was credited.
func (p *Payment) Approved() bool {
	return p.Status == PaymentApproved
}

// SearchCriteria narrows a payment search.
type SearchCriteria struct {
	Begin  time.Time
	End    time.Time
	Status PaymentStatus
	Amount *decimal.Decimal
	Limit  int
}

// PaymentGateway queries a payment provider on behalf of a merchant account.
// Every call takes the merchant access token since one process serves many accounts.
type PaymentGateway interface {
	Name() string
	GetPayment(ctx context.Context, accessToken, paymentID string) (*Payment, error)
	SearchPayments(ctx context.Context, accessToken string, criteria SearchCriteria) ([]Payment, error)
}

// APIError is a non-2xx answer from an external API.
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// StatusCode extracts the HTTP status of an APIError, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsCredentialError reports whether err means the token cannot see the
// resource, so another merchant token should be tried.
func IsCredentialError(err error) bool {
	switch StatusCode(err) {
	case http.StatusUnauthorized, http.StatusForbidden, http.StatusNotFound:
		return true
	}
	return false
}
