package transaction

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxAttempts bounds how many times the sweep retries an IPN event.
const MaxAttempts = 10

// TopicPayment is the only IPN topic that can reconcile a deposit.
const TopicPayment = "payment"

var (
	// ErrIPNEventNotFound is returned when an IPN event id is unknown.
	ErrIPNEventNotFound = errors.New("ipn event not found")
	// ErrInvalidNotification is returned when a webhook carries no resource id.
	ErrInvalidNotification = errors.New("invalid payment notification")
)

// IPNStatus tracks what happened to a notification.
type IPNStatus string

const (
	IPNReceived  IPNStatus = "received"
	IPNMatched   IPNStatus = "matched"
	IPNUnmatched IPNStatus = "unmatched"
	IPNIgnored   IPNStatus = "ignored"
	IPNFailed    IPNStatus = "failed"
)

// IPNEvent is a stored gateway notification.
type IPNEvent struct {
	ID            uuid.UUID
	Gateway       string
	Topic         string
	ResourceID    string
	AccountID     *uuid.UUID
	Payload       string
	Status        IPNStatus
	Attempts      int
	LastError     string
	TransactionID *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewIPNEvent records a notification as received.
func NewIPNEvent(gateway, topic, resourceID string, accountID *uuid.UUID, payload string) (*IPNEvent, error) {
	resourceID = strings.TrimSpace(resourceID)
	if resourceID == "" {
		return nil, ErrInvalidNotification
	}
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		topic = TopicPayment
	}
	now := time.Now().UTC()
	return &IPNEvent{
		ID:         uuid.New(),
		Gateway:    gateway,
		Topic:      topic,
		ResourceID: resourceID,
		AccountID:  accountID,
		Payload:    payload,
		Status:     IPNReceived,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsPayment reports whether the notification is about a payment.
func (e *IPNEvent) IsPayment() bool {
	// merchant_order and similar topics are not reconciled
	return e.Topic == TopicPayment || strings.HasPrefix(e.Topic, TopicPayment+".")
}

// Retryable reports whether the sweep should process the event again.
func (e *IPNEvent) Retryable() bool {
	return (e.Status == IPNUnmatched || e.Status == IPNFailed) && e.Attempts < MaxAttempts
}

// Settled reports whether the event reached a final status.
func (e *IPNEvent) Settled() bool {
	return e.Status == IPNMatched || e.Status == IPNIgnored
}

// MarkMatched ties the event to the reconciled transaction.
func (e *IPNEvent) MarkMatched(txID uuid.UUID, at time.Time) {
	e.Status = IPNMatched
	e.TransactionID = &txID
	e.LastError = ""
	e.UpdatedAt = at
}

// MarkIgnored records that the event needs no reconciliation.
func (e *IPNEvent) MarkIgnored(reason string, at time.Time) {
	e.Status = IPNIgnored
	e.LastError = reason
	e.UpdatedAt = at
}

// MarkUnmatched records a processing attempt that found no deposit.
func (e *IPNEvent) MarkUnmatched(reason string, at time.Time) {
	e.Status = IPNUnmatched
	e.LastError = reason
	e.UpdatedAt = at
}

// MarkFailed records a processing attempt that errored.
func (e *IPNEvent) MarkFailed(err error, at time.Time) {
	e.Status = IPNFailed
	if err != nil {
		e.LastError = err.Error()
	}
	e.UpdatedAt = at
}
