package transaction

import (
	"context"

	"github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository/transaction"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ipnRepository struct {
	db *gorm.DB
}

// NewIPN creates a gorm-backed IPN event repository.
func NewIPN(db *gorm.DB) repo.IPNRepository {
	return &ipnRepository{db: db}
}

func (r *ipnRepository) Create(ctx context.Context, e *transaction.IPNEvent) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(ipnToModel(e)).Error
	})
}

func (r *ipnRepository) Update(ctx context.Context, e *transaction.IPNEvent) error {
	res := r.db.WithContext(ctx).Model(&IPNEvent{}).
		Where("id = ?", e.ID).
		Updates(map[string]any{
			"account_id":     e.AccountID,
			"status":         string(e.Status),
			"attempts":       e.Attempts,
			"last_error":     e.LastError,
			"payload":        e.Payload,
			"transaction_id": e.TransactionID,
			"updated_at":     e.UpdatedAt,
		})
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ipnRepository) Get(ctx context.Context, id uuid.UUID) (*transaction.IPNEvent, error) {
	var m IPNEvent
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return ipnToDomain(&m), nil
}

func (r *ipnRepository) GetByResource(ctx context.Context, gateway, topic, resourceID string) (*transaction.IPNEvent, error) {
	var m IPNEvent
	if err := r.db.WithContext(ctx).
		Where("gateway = ? AND topic = ? AND resource_id = ?", gateway, topic, resourceID).
		First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return ipnToDomain(&m), nil
}

func (r *ipnRepository) ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*transaction.IPNEvent, error) {
	var models []IPNEvent
	if err := r.db.WithContext(ctx).
		Where("status IN ? AND attempts < ?",
			[]string{string(transaction.IPNUnmatched), string(transaction.IPNFailed)}, maxAttempts).
		Order("created_at ASC").
		Limit(limit).
		Find(&models).Error; err != nil {
		return nil, err
	}
	return ipnToDomainList(models), nil
}

func (r *ipnRepository) List(ctx context.Context, filter dto.IPNEventFilter) ([]*transaction.IPNEvent, int64, error) {
	q := r.db.WithContext(ctx).Model(&IPNEvent{})
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var models []IPNEvent
	if err := q.Order("created_at DESC").
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&models).Error; err != nil {
		return nil, 0, err
	}
	return ipnToDomainList(models), total, nil
}

func ipnToDomainList(models []IPNEvent) []*transaction.IPNEvent {
	out := make([]*transaction.IPNEvent, 0, len(models))
	for i := range models {
		out = append(out, ipnToDomain(&models[i]))
	}
	return out
}

var _ repo.IPNRepository = (*ipnRepository)(nil)
