// Package transaction records deposit claims and withdrawals and reconciles
// deposits against payments reported by the gateway.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/eventbus"
	"github.com/amirasaad/backoffice/pkg/metrics"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/amirasaad/backoffice/pkg/repository"
	txrepo "github.com/amirasaad/backoffice/pkg/repository/transaction"
	"github.com/google/uuid"
)

var (
	// ErrNoCredentials is returned when no active account can query the gateway.
	ErrNoCredentials = fmt.Errorf("no active mercadopago account: %w", domain.ErrUnavailable)
	// ErrPaymentNotFound is returned when no credential can see a payment.
	ErrPaymentNotFound = fmt.Errorf("payment not visible to any account: %w", domain.ErrNotFound)
	// ErrPaymentNotApproved is returned when a manual match targets an unapproved payment.
	ErrPaymentNotApproved = fmt.Errorf("payment is not approved: %w", domain.ErrInvalidState)
	// ErrAmountMismatch is returned when a manual match pairs different amounts.
	ErrAmountMismatch = fmt.Errorf("payment amount does not match deposit: %w", domain.ErrValidation)
)

// Service implements deposits, withdrawals and reconciliation.
type Service struct {
	uow     repository.UnitOfWork
	gateway provider.PaymentGateway
	creds   *CredentialStore
	matcher Matcher
	bus     eventbus.Bus
	cfg     config.Reconcile
	logger  *slog.Logger
	now     func() time.Time
}

// New creates a Service. bus may be nil.
func New(
	uow repository.UnitOfWork,
	gateway provider.PaymentGateway,
	bus eventbus.Bus,
	cfg *config.Reconcile,
	logger *slog.Logger,
) *Service {
	c := config.Reconcile{}
	if cfg != nil {
		c = *cfg
	}
	if c.ExpireAfter <= 0 {
		c.ExpireAfter = 72 * time.Hour
	}
	if c.SearchLookback <= 0 {
		c.SearchLookback = 48 * time.Hour
	}
	if c.BatchSize <= 0 {
		c.BatchSize = 100
	}
	return &Service{
		uow:     uow,
		gateway: gateway,
		creds:   NewCredentialStore(uow, c.CacheTTL, logger),
		matcher: NewMatcher(c.Window),
		bus:     bus,
		cfg:     c,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Credentials exposes the credential cache.
func (s *Service) Credentials() *CredentialStore {
	return s.creds
}

// HandleAccountEvent drops cached credentials when an account changes.
func (s *Service) HandleAccountEvent(ctx context.Context, evt events.Event) error {
	s.logger.Debug("account event received", "type", evt.Type())
	s.creds.Invalidate()
	return nil
}

// Get returns one transaction.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	repo, err := repository.Repo[txrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	t, err := repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, transaction.ErrTransactionNotFound
	}
	return t, err
}

// List returns one page of transactions, newest first.
func (s *Service) List(
	ctx context.Context,
	filter dto.TransactionFilter,
) ([]*transaction.Transaction, int64, error) {
	kind, err := transaction.ParseKind(filter.Kind)
	if err != nil {
		return nil, 0, err
	}
	status, err := transaction.ParseStatus(filter.Status)
	if err != nil {
		return nil, 0, err
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, 0, fmt.Errorf("to before from: %w", domain.ErrValidation)
	}
	filter.Kind, filter.Status = string(kind), string(status)
	filter.Page, filter.PageSize = dto.NormalizePage(filter.Page, filter.PageSize)
	repo, err := repository.Repo[txrepo.Repository](s.uow)
	if err != nil {
		return nil, 0, err
	}
	return repo.List(ctx, filter)
}

// ListIPNEvents returns one page of stored notifications, newest first.
func (s *Service) ListIPNEvents(
	ctx context.Context,
	filter dto.IPNEventFilter,
) ([]*transaction.IPNEvent, int64, error) {
	filter.Page, filter.PageSize = dto.NormalizePage(filter.Page, filter.PageSize)
	repo, err := repository.Repo[txrepo.IPNRepository](s.uow)
	if err != nil {
		return nil, 0, err
	}
	return repo.List(ctx, filter)
}

// ManualMatch ties a pending deposit to a gateway payment chosen by an operator.
func (s *Service) ManualMatch(
	ctx context.Context,
	depositID uuid.UUID,
	in dto.ManualMatch,
) (*transaction.Transaction, error) {
	log := s.logger.With("depositID", depositID, "paymentID", in.PaymentID)
	log.Debug("ManualMatch called")
	deposit, err := s.Get(ctx, depositID)
	if err != nil {
		return nil, err
	}
	if deposit.Kind != transaction.KindDeposit {
		return nil, transaction.ErrWrongKind
	}
	if !deposit.IsPending() {
		return nil, transaction.ErrNotPending
	}
	if err := s.ensureUnreconciled(ctx, in.PaymentID); err != nil {
		return nil, err
	}
	hint := in.AccountID
	if hint == nil {
		hint = deposit.AccountID
	}
	payment, accountID, err := s.fetchPayment(ctx, in.PaymentID, hint)
	if err != nil {
		log.Error("ManualMatch failed", "error", err)
		return nil, err
	}
	if !payment.Approved() {
		return nil, ErrPaymentNotApproved
	}
	if !payment.Amount.Round(2).Equal(deposit.Amount.Round(2)) {
		return nil, ErrAmountMismatch
	}
	event, err := s.findEvent(ctx, in.PaymentID)
	if err != nil {
		return nil, err
	}
	t, err := s.commitMatch(ctx, depositID, payment.ID, transaction.MatchManual, accountID, event)
	if err != nil {
		log.Error("ManualMatch failed", "error", err)
		return nil, err
	}
	metrics.ReconcileOutcomes.WithLabelValues("manual", string(transaction.MatchManual)).Inc()
	log.Info("Deposit matched manually")
	return t, nil
}

func (s *Service) findEvent(ctx context.Context, paymentID string) (*transaction.IPNEvent, error) {
	repo, err := repository.Repo[txrepo.IPNRepository](s.uow)
	if err != nil {
		return nil, err
	}
	e, err := repo.GetByResource(ctx, s.gateway.Name(), transaction.TopicPayment, paymentID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	return e, err
}

// ensureUnreconciled fails with ErrAlreadyReconciled when paymentID settles a transaction.
func (s *Service) ensureUnreconciled(ctx context.Context, paymentID string) error {
	repo, err := repository.Repo[txrepo.Repository](s.uow)
	if err != nil {
		return err
	}
	_, err = repo.GetByGatewayPaymentID(ctx, paymentID)
	switch {
	case err == nil:
		return transaction.ErrAlreadyReconciled
	case errors.Is(err, domain.ErrNotFound):
		return nil
	default:
		return err
	}
}

// fetchPayment looks paymentID up with every credential, hint first. A
// credential that cannot see the payment passes to the next one; any other
// error stops the search. It returns the account that found the payment.
func (s *Service) fetchPayment(
	ctx context.Context,
	paymentID string,
	hint *uuid.UUID,
) (*provider.Payment, *uuid.UUID, error) {
	creds, err := s.creds.Ordered(ctx, hint)
	if err != nil {
		return nil, nil, err
	}
	if len(creds) == 0 {
		return nil, nil, ErrNoCredentials
	}
	var lastErr error
	for _, cred := range creds {
		payment, err := s.gateway.GetPayment(ctx, cred.AccessToken, paymentID)
		if err == nil {
			id := cred.AccountID
			return payment, &id, nil
		}
		if !provider.IsCredentialError(err) {
			return nil, nil, err
		}
		s.logger.Debug("credential cannot see payment",
			"paymentID", paymentID, "accountID", cred.AccountID, "status", provider.StatusCode(err))
		lastErr = err
	}
	return nil, nil, fmt.Errorf("%w: %w", ErrPaymentNotFound, lastErr)
}

// commitMatch completes the deposit and settles event, when given, in one
// transaction. The deposit row is locked so concurrent matches cannot both win.
func (s *Service) commitMatch(
	ctx context.Context,
	depositID uuid.UUID,
	paymentID string,
	method transaction.MatchMethod,
	accountID *uuid.UUID,
	event *transaction.IPNEvent,
) (t *transaction.Transaction, err error) {
	now := s.now()
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		txs, err := repository.Repo[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err = txs.GetForUpdate(ctx, depositID)
		if err != nil {
			return err
		}
		if err := t.Reconcile(paymentID, method, accountID, now); err != nil {
			return err
		}
		if err := txs.Update(ctx, t); err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				return transaction.ErrAlreadyReconciled
			}
			return err
		}
		if event == nil {
			return nil
		}
		ipns, err := repository.Repo[txrepo.IPNRepository](uow)
		if err != nil {
			return err
		}
		event.MarkMatched(t.ID, now)
		return ipns.Update(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	s.emit(ctx, events.NewTransactionReconciled(t))
	return t, nil
}

func (s *Service) emit(ctx context.Context, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Warn("failed to emit transaction event", "type", evt.Type(), "error", err)
	}
}

// ToRead converts a transaction to its public view.
func ToRead(t *transaction.Transaction) dto.TransactionRead {
	return dto.TransactionRead{
		ID:                t.ID,
		Kind:              string(t.Kind),
		Status:            string(t.Status),
		Amount:            t.Amount.StringFixed(2),
		Currency:          t.Currency,
		AccountID:         t.AccountID,
		PayerIdentifier:   t.PayerIdentifier,
		PayerName:         t.PayerName,
		ExternalReference: t.ExternalReference,
		Destination:       t.Destination,
		GatewayPaymentID:  t.GatewayPaymentID,
		MatchMethod:       string(t.MatchMethod),
		Notes:             t.Notes,
		MatchedAt:         t.MatchedAt,
		CreatedAt:         t.CreatedAt,
		UpdatedAt:         t.UpdatedAt,
	}
}

// ToIPNRead converts an IPN event to its public view.
func ToIPNRead(e *transaction.IPNEvent) dto.IPNEventRead {
	return dto.IPNEventRead{
		ID:            e.ID,
		Gateway:       e.Gateway,
		Topic:         e.Topic,
		ResourceID:    e.ResourceID,
		AccountID:     e.AccountID,
		Status:        string(e.Status),
		Attempts:      e.Attempts,
		LastError:     e.LastError,
		TransactionID: e.TransactionID,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
