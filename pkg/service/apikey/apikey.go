// Package apikey issues and verifies machine credentials.
package apikey

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	keyrepo "github.com/amirasaad/backoffice/pkg/repository/apikey"
	"github.com/google/uuid"
)

// Service manages API keys.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Service.
func New(uow repository.UnitOfWork, logger *slog.Logger) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Issue creates a key for ownerID. The returned raw key is not recoverable later.
func (s *Service) Issue(
	ctx context.Context,
	ownerID uuid.UUID,
	in dto.APIKeyCreate,
) (*apikey.APIKey, string, error) {
	log := s.logger.With("ownerID", ownerID, "name", in.Name)
	log.Debug("Issue called")
	if in.ExpiresAt != nil && !in.ExpiresAt.After(s.now()) {
		return nil, "", fmt.Errorf("expires_at must be in the future: %w", domain.ErrValidation)
	}
	key, raw, err := apikey.New(ownerID, in.Name, in.Permissions, in.ExpiresAt)
	if err != nil {
		log.Error("Issue failed", "error", err)
		return nil, "", err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[keyrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Create(ctx, key)
	})
	if err != nil {
		log.Error("Issue failed", "error", err)
		return nil, "", err
	}
	log.Info("API key issued", "keyID", key.ID, "prefix", key.KeyPrefix)
	return key, raw, nil
}

// List returns the keys owned by ownerID, newest first.
func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*apikey.APIKey, error) {
	repo, err := repository.Repo[keyrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.ListByOwner(ctx, ownerID)
}

// Revoke disables a key. Revoking twice is not an error.
func (s *Service) Revoke(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("keyID", id)
	log.Debug("Revoke called")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[keyrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Revoke(ctx, id, s.now())
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = apikey.ErrKeyNotFound
		}
		log.Error("Revoke failed", "error", err)
		return err
	}
	log.Info("API key revoked")
	return nil
}

// Authenticate resolves a raw key to a usable APIKey and records its use.
func (s *Service) Authenticate(ctx context.Context, raw string) (*apikey.APIKey, error) {
	prefix, err := apikey.ParsePrefix(raw)
	if err != nil {
		return nil, err
	}
	log := s.logger.With("prefix", prefix)
	repo, err := repository.Repo[keyrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	key, err := repo.GetByPrefix(ctx, prefix)
	if errors.Is(err, domain.ErrNotFound) {
		log.Info("API key rejected: unknown prefix")
		return nil, apikey.ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	if !key.Matches(raw) {
		log.Info("API key rejected: hash mismatch")
		return nil, apikey.ErrKeyNotFound
	}
	now := s.now()
	if err := key.Usable(now); err != nil {
		log.Info("API key rejected", "reason", err)
		return nil, err
	}
	if err := repo.TouchLastUsed(ctx, key.ID, now); err != nil {
		// usage tracking must not lock clients out
		log.Warn("failed to record API key use", "error", err)
	} else {
		key.LastUsedAt = &now
	}
	return key, nil
}

// HasPermission returns apikey.ErrPermissionDenied unless key grants perm.
func (s *Service) HasPermission(key *apikey.APIKey, perm string) error {
	if key == nil || !key.HasPermission(perm) {
		return apikey.ErrPermissionDenied
	}
	return nil
}

// ToRead converts a key to its public view.
func ToRead(k *apikey.APIKey) dto.APIKeyRead {
	return dto.APIKeyRead{
		ID:          k.ID,
		Name:        k.Name,
		Prefix:      k.KeyPrefix,
		Permissions: k.Permissions,
		ExpiresAt:   k.ExpiresAt,
		RevokedAt:   k.RevokedAt,
		LastUsedAt:  k.LastUsedAt,
		CreatedAt:   k.CreatedAt,
	}
}
