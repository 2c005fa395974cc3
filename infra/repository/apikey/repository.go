package apikey

import (
	"context"
	"time"

	"github.com/amirasaad/backoffice/infra/repository"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	repo "github.com/amirasaad/backoffice/pkg/repository/apikey"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type apiKeyRepository struct {
	db *gorm.DB
}

// New creates a gorm-backed API key repository.
func New(db *gorm.DB) repo.Repository {
	return &apiKeyRepository{db: db}
}

func (r *apiKeyRepository) Create(ctx context.Context, key *apikey.APIKey) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Create(toModel(key)).Error
	})
}

func (r *apiKeyRepository) Get(ctx context.Context, id uuid.UUID) (*apikey.APIKey, error) {
	var m APIKey
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return toDomain(&m), nil
}

func (r *apiKeyRepository) GetByPrefix(ctx context.Context, prefix string) (*apikey.APIKey, error) {
	var m APIKey
	if err := r.db.WithContext(ctx).Where("key_prefix = ?", prefix).First(&m).Error; err != nil {
		return nil, repository.MapGormErrorToDomain(err)
	}
	return toDomain(&m), nil
}

func (r *apiKeyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*apikey.APIKey, error) {
	var models []APIKey
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, err
	}
	keys := make([]*apikey.APIKey, 0, len(models))
	for i := range models {
		keys = append(keys, toDomain(&models[i]))
	}
	return keys, nil
}

// Revoke is idempotent: an already revoked key keeps its original revocation time.
func (r *apiKeyRepository) Revoke(ctx context.Context, id uuid.UUID, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&APIKey{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", at)
	if res.Error != nil {
		return repository.MapGormErrorToDomain(res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	var count int64
	if err := r.db.WithContext(ctx).Model(&APIKey{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *apiKeyRepository) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return repository.WrapError(func() error {
		return r.db.WithContext(ctx).Model(&APIKey{}).
			Where("id = ?", id).
			Update("last_used_at", at).Error
	})
}

var _ repo.Repository = (*apiKeyRepository)(nil)
