// Package transaction models customer deposits and withdrawals and the
// payment notifications used to reconcile them.
package transaction

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when a claim does not name one.
const DefaultCurrency = "ARS"

var (
	// ErrTransactionNotFound is returned when a transaction id is unknown.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrInvalidAmount is returned for zero or negative amounts.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrNotPending is returned when a settled transaction is asked to change state.
	ErrNotPending = fmt.Errorf("transaction is not pending: %w", domain.ErrInvalidState)
	// ErrWrongKind is returned when an operation does not apply to the transaction kind.
	ErrWrongKind = fmt.Errorf("operation not allowed for transaction kind: %w", domain.ErrInvalidState)
	// ErrAlreadyReconciled is returned when a gateway payment is already tied to a transaction.
	ErrAlreadyReconciled = errors.New("payment already reconciled")
	// ErrMissingDestination is returned for withdrawals without CBU or alias.
	ErrMissingDestination = errors.New("withdrawal destination required")
)

// Kind distinguishes money coming in from money going out.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// Status is the lifecycle state of a transaction.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
	StatusExpired   Status = "expired"
)

// MatchMethod records how a deposit was reconciled.
type MatchMethod string

const (
	MatchNone       MatchMethod = ""
	MatchIdentifier MatchMethod = "identifier"
	MatchAmount     MatchMethod = "amount"
	MatchManual     MatchMethod = "manual"
)

// Transaction is a deposit claim or a withdrawal request.
type Transaction struct {
	ID                uuid.UUID
	Kind              Kind
	Status            Status
	Amount            decimal.Decimal
	Currency          string
	AccountID         *uuid.UUID
	PayerIdentifier   string
	PayerName         string
	ExternalReference string
	Destination       string
	GatewayPaymentID  string
	MatchMethod       MatchMethod
	Notes             string
	MatchedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func newTransaction(kind Kind, amount decimal.Decimal, currency string) (*Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	now := time.Now().UTC()
	return &Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Status:    StatusPending,
		Amount:    amount.Round(2),
		Currency:  currency,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewDeposit records a customer's claim that they transferred amount.
func NewDeposit(amount decimal.Decimal, currency string, accountID *uuid.UUID, payerIdentifier, payerName string) (*Transaction, error) {
	t, err := newTransaction(KindDeposit, amount, currency)
	if err != nil {
		return nil, err
	}
	t.AccountID = accountID
	t.PayerIdentifier = strings.TrimSpace(payerIdentifier)
	t.PayerName = strings.TrimSpace(payerName)
	return t, nil
}

// NewWithdrawal records a payout request to a CBU or alias.
func NewWithdrawal(amount decimal.Decimal, currency string, accountID *uuid.UUID, destination, payerName string) (*Transaction, error) {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return nil, ErrMissingDestination
	}
	t, err := newTransaction(KindWithdrawal, amount, currency)
	if err != nil {
		return nil, err
	}
	t.AccountID = accountID
	t.Destination = destination
	t.PayerName = strings.TrimSpace(payerName)
	return t, nil
}

// IsPending reports whether the transaction can still change state.
func (t *Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// Reconcile completes a deposit against a gateway payment.
func (t *Transaction) Reconcile(paymentID string, method MatchMethod, accountID *uuid.UUID, at time.Time) error {
	if t.Kind != KindDeposit {
		return ErrWrongKind
	}
	if !t.IsPending() {
		return ErrNotPending
	}
	t.Status = StatusCompleted
	t.GatewayPaymentID = paymentID
	t.MatchMethod = method
	if t.AccountID == nil && accountID != nil {
		id := *accountID
		t.AccountID = &id
	}
	t.MatchedAt = &at
	t.UpdatedAt = at
	return nil
}

// Approve completes a withdrawal once the payout was sent.
func (t *Transaction) Approve(externalReference string, at time.Time) error {
	if t.Kind != KindWithdrawal {
		return ErrWrongKind
	}
	if !t.IsPending() {
		return ErrNotPending
	}
	t.Status = StatusCompleted
	if externalReference != "" {
		t.ExternalReference = externalReference
	}
	t.UpdatedAt = at
	return nil
}

// Reject marks a pending transaction as rejected with reason.
func (t *Transaction) Reject(reason string, at time.Time) error {
	if !t.IsPending() {
		return ErrNotPending
	}
	t.Status = StatusRejected
	t.Notes = strings.TrimSpace(reason)
	t.UpdatedAt = at
	return nil
}

// Expire closes a deposit nobody could reconcile.
func (t *Transaction) Expire(at time.Time) error {
	if !t.IsPending() {
		return ErrNotPending
	}
	t.Status = StatusExpired
	t.UpdatedAt = at
	return nil
}

// ParseKind validates a kind filter. Empty is allowed.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case "", KindDeposit, KindWithdrawal:
		return k, nil
	}
	return "", fmt.Errorf("unknown kind %q: %w", s, domain.ErrValidation)
}

// ParseStatus validates a status filter. Empty is allowed.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(s)); st {
	case "", StatusPending, StatusCompleted, StatusRejected, StatusExpired:
		return st, nil
	}
	return "", fmt.Errorf("unknown status %q: %w", s, domain.ErrValidation)
}
