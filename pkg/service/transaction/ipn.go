package transaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/metrics"
	"github.com/amirasaad/backoffice/pkg/repository"
	txrepo "github.com/amirasaad/backoffice/pkg/repository/transaction"
)

// IPNResult reports what happened to a notification.
type IPNResult struct {
	Event       *transaction.IPNEvent
	Transaction *transaction.Transaction
}

// HandleIPN stores a gateway notification and tries to reconcile it.
//
// Storage is idempotent on the resource id. A notification for a payment
// that is already matched returns the stored result. Processing failures are
// recorded on the event for the sweep to retry; only storage failures are
// returned as errors.
func (s *Service) HandleIPN(ctx context.Context, n dto.Notification) (*IPNResult, error) {
	log := s.logger.With("topic", n.Topic, "resourceID", n.ResourceID)
	log.Debug("HandleIPN called")
	metrics.IPNReceived.WithLabelValues(s.gateway.Name(), n.Topic).Inc()

	event, err := s.storeEvent(ctx, n)
	if err != nil {
		log.Error("HandleIPN failed to store event", "error", err)
		return nil, err
	}
	if event.Status == transaction.IPNMatched {
		log.Info("IPN already matched", "eventID", event.ID)
		t, err := s.transactionFor(ctx, event)
		if err != nil {
			return nil, err
		}
		return &IPNResult{Event: event, Transaction: t}, nil
	}
	if !event.IsPayment() {
		event.MarkIgnored("topic "+event.Topic+" is not reconciled", s.now())
		if err := s.saveEvent(ctx, event); err != nil {
			return nil, err
		}
		metrics.ReconcileOutcomes.WithLabelValues("ipn", "ignored").Inc()
		log.Info("IPN ignored", "eventID", event.ID)
		return &IPNResult{Event: event}, nil
	}
	t, err := s.processEvent(ctx, event)
	if err != nil {
		return nil, err
	}
	log.Info("IPN processed", "eventID", event.ID, "status", event.Status)
	return &IPNResult{Event: event, Transaction: t}, nil
}

// storeEvent creates the event or returns the stored one for the same resource.
func (s *Service) storeEvent(ctx context.Context, n dto.Notification) (*transaction.IPNEvent, error) {
	fresh, err := transaction.NewIPNEvent(s.gateway.Name(), n.Topic, n.ResourceID, n.AccountID, n.Payload)
	if err != nil {
		return nil, err
	}
	var event *transaction.IPNEvent
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[txrepo.IPNRepository](uow)
		if err != nil {
			return err
		}
		existing, err := repo.GetByResource(ctx, fresh.Gateway, fresh.Topic, fresh.ResourceID)
		switch {
		case err == nil:
			event = existing
			if event.AccountID == nil && fresh.AccountID != nil {
				event.AccountID = fresh.AccountID
			}
			event.Payload = fresh.Payload
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return err
		}
		event = fresh
		return repo.Create(ctx, fresh)
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		// lost a race with a concurrent delivery of the same notification
		repo, rerr := repository.Repo[txrepo.IPNRepository](s.uow)
		if rerr != nil {
			return nil, rerr
		}
		return repo.GetByResource(ctx, fresh.Gateway, fresh.Topic, fresh.ResourceID)
	}
	return event, err
}

// processEvent runs one reconciliation attempt for a payment event and
// persists its outcome on the event.
func (s *Service) processEvent(
	ctx context.Context,
	event *transaction.IPNEvent,
) (*transaction.Transaction, error) {
	log := s.logger.With("eventID", event.ID, "paymentID", event.ResourceID)
	event.Attempts++
	now := s.now()

	txs, err := repository.Repo[txrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	existing, err := txs.GetByGatewayPaymentID(ctx, event.ResourceID)
	switch {
	case err == nil:
		event.MarkMatched(existing.ID, now)
		return existing, s.saveEvent(ctx, event)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, s.fail(ctx, event, err)
	}

	payment, accountID, err := s.fetchPayment(ctx, event.ResourceID, event.AccountID)
	if err != nil {
		log.Warn("payment lookup failed", "error", err)
		return nil, s.fail(ctx, event, err)
	}
	if event.AccountID == nil {
		event.AccountID = accountID
	}
	if !payment.Approved() {
		// a later notification for the same payment reprocesses the event
		event.MarkIgnored(fmt.Sprintf("payment status %s", payment.Status), now)
		metrics.ReconcileOutcomes.WithLabelValues("ipn", "ignored").Inc()
		return nil, s.saveEvent(ctx, event)
	}

	deposits, err := txs.ListPendingDeposits(ctx,
		payment.DateCreated.Add(-s.matcher.Window),
		payment.DateCreated.Add(s.matcher.Window),
	)
	if err != nil {
		return nil, s.fail(ctx, event, err)
	}
	m := s.matcher.Match(payment, accountID, deposits)
	metrics.ReconcileOutcomes.WithLabelValues("ipn", string(m.Outcome)).Inc()
	if m.Deposit == nil {
		log.Info("no deposit matched", "outcome", m.Outcome, "candidates", m.Candidates)
		event.MarkUnmatched(fmt.Sprintf("%s: %d candidates", m.Outcome, m.Candidates), now)
		return nil, s.saveEvent(ctx, event)
	}

	t, err := s.commitMatch(ctx, m.Deposit.ID, payment.ID, m.Method, accountID, event)
	if err != nil {
		if errors.Is(err, transaction.ErrNotPending) || errors.Is(err, transaction.ErrAlreadyReconciled) {
			event.MarkUnmatched(err.Error(), now)
			return nil, s.saveEvent(ctx, event)
		}
		return nil, s.fail(ctx, event, err)
	}
	log.Info("deposit reconciled", "transactionID", t.ID, "method", m.Method)
	return t, nil
}

// fail records err on the event. The error is only returned when the event
// itself cannot be saved.
func (s *Service) fail(ctx context.Context, event *transaction.IPNEvent, err error) error {
	event.MarkFailed(err, s.now())
	metrics.ReconcileOutcomes.WithLabelValues("ipn", "failed").Inc()
	return s.saveEvent(ctx, event)
}

func (s *Service) saveEvent(ctx context.Context, event *transaction.IPNEvent) error {
	return s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[txrepo.IPNRepository](uow)
		if err != nil {
			return err
		}
		return repo.Update(ctx, event)
	})
}

func (s *Service) transactionFor(
	ctx context.Context,
	event *transaction.IPNEvent,
) (*transaction.Transaction, error) {
	if event.TransactionID == nil {
		return nil, nil
	}
	return s.Get(ctx, *event.TransactionID)
}

// retryEvent is processEvent for the sweep, which reads events outside HandleIPN.
func (s *Service) retryEvent(ctx context.Context, event *transaction.IPNEvent) (bool, error) {
	if !event.IsPayment() {
		event.MarkIgnored("topic "+event.Topic+" is not reconciled", s.now())
		return false, s.saveEvent(ctx, event)
	}
	t, err := s.processEvent(ctx, event)
	return t != nil && err == nil, err
}
