package transaction

import (
	"context"
	"errors"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/metrics"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/amirasaad/backoffice/pkg/repository"
	accountrepo "github.com/amirasaad/backoffice/pkg/repository/account"
	txrepo "github.com/amirasaad/backoffice/pkg/repository/transaction"
)

const searchLimit = 50

// CreateDeposit records a customer's transfer claim and immediately tries
// to find the matching payment on the gateway. Reconciliation failures do
// not fail the claim; the deposit stays pending for the IPN flow.
func (s *Service) CreateDeposit(
	ctx context.Context,
	in dto.DepositCreate,
) (*transaction.Transaction, error) {
	log := s.logger.With("amount", in.Amount.String(), "accountID", in.AccountID)
	log.Debug("CreateDeposit called")
	t, err := transaction.NewDeposit(in.Amount, in.Currency, in.AccountID, in.PayerIdentifier, in.PayerName)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		if t.AccountID != nil {
			accounts, err := repository.Repo[accountrepo.Repository](uow)
			if err != nil {
				return err
			}
			if _, err := accounts.Get(ctx, *t.AccountID); err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return account.ErrAccountNotFound
				}
				return err
			}
		}
		txs, err := repository.Repo[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		return txs.Create(ctx, t)
	})
	if err != nil {
		log.Error("CreateDeposit failed", "error", err)
		return nil, err
	}
	log.Info("Deposit created", "transactionID", t.ID)

	if matched, err := s.reconcileDeposit(ctx, t); err != nil {
		log.Warn("immediate reconciliation failed", "transactionID", t.ID, "error", err)
	} else if matched != nil {
		return matched, nil
	}
	return t, nil
}

// reconcileDeposit searches recent approved payments of the deposit's amount
// and matches them against this deposit only.
func (s *Service) reconcileDeposit(
	ctx context.Context,
	deposit *transaction.Transaction,
) (*transaction.Transaction, error) {
	var creds []Credential
	if deposit.AccountID != nil {
		cred, ok, err := s.creds.Get(ctx, *deposit.AccountID)
		if err != nil || !ok {
			// not a MercadoPago account, nothing to search
			return nil, err
		}
		creds = []Credential{cred}
	} else {
		all, err := s.creds.All(ctx)
		if err != nil {
			return nil, err
		}
		creds = all
	}
	amount := deposit.Amount
	criteria := provider.SearchCriteria{
		Begin:  deposit.CreatedAt.Add(-s.cfg.SearchLookback),
		End:    s.now(),
		Status: provider.PaymentApproved,
		Amount: &amount,
		Limit:  searchLimit,
	}
	var lastErr error
	for _, cred := range creds {
		payments, err := s.gateway.SearchPayments(ctx, cred.AccessToken, criteria)
		if err != nil {
			lastErr = err
			continue
		}
		for i := range payments {
			p := &payments[i]
			if !p.Approved() {
				continue
			}
			if err := s.ensureUnreconciled(ctx, p.ID); err != nil {
				if errors.Is(err, transaction.ErrAlreadyReconciled) {
					continue
				}
				return nil, err
			}
			accountID := cred.AccountID
			m := s.matcher.Match(p, &accountID, []*transaction.Transaction{deposit})
			if m.Deposit == nil {
				continue
			}
			event, err := s.findEvent(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			t, err := s.commitMatch(ctx, deposit.ID, p.ID, m.Method, &accountID, event)
			if err != nil {
				return nil, err
			}
			metrics.ReconcileOutcomes.WithLabelValues("deposit", string(m.Outcome)).Inc()
			return t, nil
		}
	}
	metrics.ReconcileOutcomes.WithLabelValues("deposit", string(OutcomeUnmatched)).Inc()
	return nil, lastErr
}
