package account

import (
	"context"
	"time"

	"github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/dto"
	repo "github.com/amirasaad/backoffice/pkg/repository/account"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type accountRepository struct {
	db *gorm.DB
}

// New creates a gorm-backed account repository.
func New(db *gorm.DB) repo.Repository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *account.Account) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(a)).Error
	})
}

func (r *accountRepository) Update(ctx context.Context, a *account.Account) error {
	a.UpdatedAt = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&Account{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"name":            a.Name,
			"holder":          a.Holder,
			"bank":            a.Bank,
			"cbu":             a.CBU,
			"alias":           a.Alias,
			"provider":        string(a.Provider),
			"mp_access_token": a.MPAccessToken,
			"mp_public_key":   a.MPPublicKey,
			"mp_collector_id": a.MPCollectorID,
			"priority":        a.Priority,
			"active":          a.Active,
			"updated_at":      a.UpdatedAt,
		})
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	var m Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return toDomain(&m), nil
}

func (r *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&Account{}, "id = ?", id)
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *accountRepository) List(ctx context.Context, filter dto.AccountFilter) ([]*account.Account, error) {
	q := r.db.WithContext(ctx).Model(&Account{})
	if filter.Active != nil {
		q = q.Where("active = ?", *filter.Active)
	}
	if filter.Provider != "" {
		q = q.Where("provider = ?", filter.Provider)
	}
	return r.find(q.Order("priority ASC, created_at ASC"))
}

func (r *accountRepository) ListActiveMercadoPago(ctx context.Context) ([]*account.Account, error) {
	q := r.db.WithContext(ctx).
		Where("active = ? AND provider = ? AND mp_access_token <> ''", true, string(account.ProviderMercadoPago)).
		Order("priority ASC, created_at ASC")
	return r.find(q)
}

func (r *accountRepository) find(q *gorm.DB) ([]*account.Account, error) {
	var models []Account
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	accounts := make([]*account.Account, 0, len(models))
	for i := range models {
		accounts = append(accounts, toDomain(&models[i]))
	}
	return accounts, nil
}

var _ repo.Repository = (*accountRepository)(nil)
