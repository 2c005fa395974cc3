package transaction

import (
	"context"
	"time"

	"github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type transactionRepository struct {
	db *gorm.DB
}

// New creates a gorm-backed transaction repository.
func New(db *gorm.DB) repo.Repository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(t)).Error
	})
}

// Update writes the mutable fields of t. Kind, amount and creation time never change.
func (r *transactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	m := toModel(t)
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{
			"status":             m.Status,
			"account_id":         m.AccountID,
			"external_reference": m.ExternalReference,
			"gateway_payment_id": m.GatewayPaymentID,
			"match_method":       m.MatchMethod,
			"notes":              m.Notes,
			"matched_at":         m.MatchedAt,
			"updated_at":         m.UpdatedAt,
		})
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) Get(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id))
}

func (r *transactionRepository) GetForUpdate(ctx context.Context, id uuid.UUID) (*transaction.Transaction, error) {
	return r.first(r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id))
}

func (r *transactionRepository) GetByGatewayPaymentID(ctx context.Context, paymentID string) (*transaction.Transaction, error) {
	return r.first(r.db.WithContext(ctx).Where("gateway_payment_id = ?", paymentID))
}

func (r *transactionRepository) first(q *gorm.DB) (*transaction.Transaction, error) {
	var m Transaction
	if err := q.First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return toDomain(&m), nil
}

func (r *transactionRepository) ListPendingDeposits(ctx context.Context, from, to time.Time) ([]*transaction.Transaction, error) {
	var models []Transaction
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND status = ? AND created_at BETWEEN ? AND ?",
			string(transaction.KindDeposit), string(transaction.StatusPending), from, to).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	return toDomainList(models), nil
}

func (r *transactionRepository) List(ctx context.Context, filter dto.TransactionFilter) ([]*transaction.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&Transaction{})
	if filter.Kind != "" {
		q = q.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.AccountID != nil {
		q = q.Where("account_id = ?", *filter.AccountID)
	}
	if filter.From != nil {
		q = q.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("created_at < ?", *filter.To)
	}

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []Transaction
	if err := q.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}
	return toDomainList(models), total, nil
}

func (r *transactionRepository) ExpirePendingDeposits(ctx context.Context, cutoff, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Transaction{}).
		Where("kind = ? AND status = ? AND created_at < ?",
			string(transaction.KindDeposit), string(transaction.StatusPending), cutoff).
		Updates(map[string]any{
			"status":     string(transaction.StatusExpired),
			"updated_at": at,
		})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func toDomainList(models []Transaction) []*transaction.Transaction {
	out := make([]*transaction.Transaction, 0, len(models))
	for i := range models {
		out = append(out, toDomain(&models[i]))
	}
	return out
}

var _ repo.Repository = (*transactionRepository)(nil)
