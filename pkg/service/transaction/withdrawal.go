package transaction

import (
	"context"
	"errors"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	txrepo "github.com/amirasaad/backoffice/pkg/repository/transaction"
	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/google/uuid"
)

// CreateWithdrawal records a pending payout to a CBU or alias.
func (s *Service) CreateWithdrawal(
	ctx context.Context,
	in dto.WithdrawalCreate,
) (*transaction.Transaction, error) {
	log := s.logger.With("amount", in.Amount.String())
	log.Debug("CreateWithdrawal called")
	if err := validateDestination(in.Destination); err != nil {
		return nil, err
	}
	t, err := transaction.NewWithdrawal(in.Amount, in.Currency, in.AccountID, in.Destination, in.Holder)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Create(ctx, t)
	})
	if err != nil {
		log.Error("CreateWithdrawal failed", "error", err)
		return nil, err
	}
	log.Info("Withdrawal created", "transactionID", t.ID)
	return t, nil
}

func validateDestination(dest string) error {
	digits := utils.OnlyDigits(dest)
	if digits != "" && digits == dest {
		return account.ValidateCBU(dest)
	}
	if dest == "" {
		return transaction.ErrMissingDestination
	}
	return account.ValidateAlias(dest)
}

// ApproveWithdrawal completes a pending withdrawal.
func (s *Service) ApproveWithdrawal(
	ctx context.Context,
	id uuid.UUID,
	in dto.WithdrawalApprove,
) (*transaction.Transaction, error) {
	return s.transition(ctx, id, "ApproveWithdrawal", func(t *transaction.Transaction) error {
		return t.Approve(in.ExternalReference, s.now())
	})
}

// Reject rejects any pending transaction.
func (s *Service) Reject(
	ctx context.Context,
	id uuid.UUID,
	in dto.TransactionReject,
) (*transaction.Transaction, error) {
	return s.transition(ctx, id, "Reject", func(t *transaction.Transaction) error {
		return t.Reject(in.Reason, s.now())
	})
}

func (s *Service) transition(
	ctx context.Context,
	id uuid.UUID,
	op string,
	apply func(*transaction.Transaction) error,
) (t *transaction.Transaction, err error) {
	log := s.logger.With("transactionID", id)
	log.Debug(op + " called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[txrepo.Repository](uow)
		if err != nil {
			return err
		}
		t, err = repo.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := apply(t); err != nil {
			return err
		}
		return repo.Update(ctx, t)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = transaction.ErrTransactionNotFound
		}
		log.Error(op+" failed", "error", err)
		return nil, err
	}
	log.Info(op+" succeeded", "status", t.Status)
	return t, nil
}
