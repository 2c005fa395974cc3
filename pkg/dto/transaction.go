package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepositCreate is a customer's claim of a transfer.
type DepositCreate struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency" validate:"omitempty,len=3"`
	AccountID       *uuid.UUID      `json:"account_id,omitempty"`
	PayerIdentifier string          `json:"payer_identifier" validate:"max=32"`
	PayerName       string          `json:"payer_name" validate:"max=150"`
}

// WithdrawalCreate is a payout request.
type WithdrawalCreate struct {
	Amount      decimal.Decimal `json:"amount"`
	Currency    string          `json:"currency" validate:"omitempty,len=3"`
	AccountID   *uuid.UUID      `json:"account_id,omitempty"`
	Destination string          `json:"destination" validate:"required,max=32"`
	Holder      string          `json:"holder" validate:"max=150"`
}

// WithdrawalApprove completes a withdrawal.
type WithdrawalApprove struct {
	ExternalReference string `json:"external_reference" validate:"max=100"`
}

// TransactionReject rejects a pending transaction.
type TransactionReject struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// ManualMatch ties a pending deposit to a gateway payment.
type ManualMatch struct {
	PaymentID string     `json:"payment_id" validate:"required,max=64"`
	AccountID *uuid.UUID `json:"account_id,omitempty"`
}

// TransactionFilter narrows List.
type TransactionFilter struct {
	Kind      string
	Status    string
	AccountID *uuid.UUID
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

// TransactionRead is the public view of a transaction.
type TransactionRead struct {
	ID                uuid.UUID  `json:"id"`
	Kind              string     `json:"kind"`
	Status            string     `json:"status"`
	Amount            string     `json:"amount"`
	Currency          string     `json:"currency"`
	AccountID         *uuid.UUID `json:"account_id,omitempty"`
	PayerIdentifier   string     `json:"payer_identifier,omitempty"`
	PayerName         string     `json:"payer_name,omitempty"`
	ExternalReference string     `json:"external_reference,omitempty"`
	Destination       string     `json:"destination,omitempty"`
	GatewayPaymentID  string     `json:"gateway_payment_id,omitempty"`
	MatchMethod       string     `json:"match_method,omitempty"`
	Notes             string     `json:"notes,omitempty"`
	MatchedAt         *time.Time `json:"matched_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Notification is a gateway webhook reduced to what reconciliation needs.
type Notification struct {
	Topic      string
	ResourceID string
	AccountID  *uuid.UUID
	Payload    string
}

// IPNEventFilter narrows the IPN event listing.
type IPNEventFilter struct {
	Status   string
	Page     int
	PageSize int
}

// IPNEventRead is the public view of a stored notification.
type IPNEventRead struct {
	ID            uuid.UUID  `json:"id"`
	Gateway       string     `json:"gateway"`
	Topic         string     `json:"topic"`
	ResourceID    string     `json:"resource_id"`
	AccountID     *uuid.UUID `json:"account_id,omitempty"`
	Status        string     `json:"status"`
	Attempts      int        `json:"attempts"`
	LastError     string     `json:"last_error,omitempty"`
	TransactionID *uuid.UUID `json:"transaction_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// SweepResult summarizes one reconciliation sweep.
type SweepResult struct {
	Retried int `json:"retried"`
	Matched int `json:"matched"`
	Expired int `json:"expired"`
}
