package transaction

import (
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction represents a persisted deposit or withdrawal.
type Transaction struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind              string          `gorm:"size:16;not null"`
	Status            string          `gorm:"size:16;not null"`
	Amount            decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Currency          string          `gorm:"size:3;not null"`
	AccountID         *uuid.UUID      `gorm:"type:uuid"`
	PayerIdentifier   string          `gorm:"size:32"`
	PayerName         string          `gorm:"size:150"`
	ExternalReference string          `gorm:"size:100"`
	Destination       string          `gorm:"size:32"`
	GatewayPaymentID  *string         `gorm:"size:64;uniqueIndex"`
	MatchMethod       string          `gorm:"size:16"`
	Notes             string          `gorm:"type:text"`
	MatchedAt         *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for the Transaction model.
func (Transaction) TableName() string {
	return "transactions"
}

// IPNEvent represents a stored gateway notification.
type IPNEvent struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Gateway       string     `gorm:"size:32;not null"`
	Topic         string     `gorm:"size:64;not null"`
	ResourceID    string     `gorm:"size:64;not null"`
	AccountID     *uuid.UUID `gorm:"type:uuid"`
	Payload       string     `gorm:"type:text"`
	Status        string     `gorm:"size:16;not null"`
	Attempts      int        `gorm:"not null"`
	LastError     string     `gorm:"type:text"`
	TransactionID *uuid.UUID `gorm:"type:uuid"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the IPNEvent model.
func (IPNEvent) TableName() string {
	return "ipn_events"
}

func toModel(t *transaction.Transaction) *Transaction {
	m := &Transaction{
		ID:                t.ID,
		Kind:              string(t.Kind),
		Status:            string(t.Status),
		Amount:            t.Amount,
		Currency:          t.Currency,
		AccountID:         t.AccountID,
		PayerIdentifier:   t.PayerIdentifier,
		PayerName:         t.PayerName,
		ExternalReference: t.ExternalReference,
		Destination:       t.Destination,
		MatchMethod:       string(t.MatchMethod),
		Notes:             t.Notes,
		MatchedAt:         t.MatchedAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
	if t.GatewayPaymentID != "" {
		id := t.GatewayPaymentID
		m.GatewayPaymentID = &id
	}
	return m
}

func toDomain(m *Transaction) *transaction.Transaction {
	t := &transaction.Transaction{
		ID:                m.ID,
		Kind:              transaction.Kind(m.Kind),
		Status:            transaction.Status(m.Status),
		Amount:            m.Amount,
		Currency:          m.Currency,
		AccountID:         m.AccountID,
		PayerIdentifier:   m.PayerIdentifier,
		PayerName:         m.PayerName,
		ExternalReference: m.ExternalReference,
		Destination:       m.Destination,
		MatchMethod:       transaction.MatchMethod(m.MatchMethod),
		Notes:             m.Notes,
		MatchedAt:         m.MatchedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.GatewayPaymentID != nil {
		t.GatewayPaymentID = *m.GatewayPaymentID
	}
	return t
}

func ipnToModel(e *transaction.IPNEvent) *IPNEvent {
	return &IPNEvent{
		ID:            e.ID,
		Gateway:       e.Gateway,
		Topic:         e.Topic,
		ResourceID:    e.ResourceID,
		AccountID:     e.AccountID,
		Payload:       e.Payload,
		Status:        string(e.Status),
		Attempts:      e.Attempts,
		LastError:     e.LastError,
		TransactionID: e.TransactionID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func ipnToDomain(m *IPNEvent) *transaction.IPNEvent {
	return &transaction.IPNEvent{
		ID:            m.ID,
		Gateway:       m.Gateway,
		Topic:         m.Topic,
		ResourceID:    m.ResourceID,
		AccountID:     m.AccountID,
		Payload:       m.Payload,
		Status:        transaction.IPNStatus(m.Status),
		Attempts:      m.Attempts,
		LastError:     m.LastError,
		TransactionID: m.TransactionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
