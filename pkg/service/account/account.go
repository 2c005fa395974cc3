// Package account manages the merchant accounts deposits are paid into.
//
// Changes that make MercadoPago credentials usable or unusable are announced
// on the event bus so that credential caches elsewhere can reload.
package account

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/eventbus"
	"github.com/amirasaad/backoffice/pkg/repository"
	accountrepo "github.com/amirasaad/backoffice/pkg/repository/account"
	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/google/uuid"
)

// Service provides merchant account operations.
type Service struct {
	bus    eventbus.Bus
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a Service.
func New(
	bus eventbus.Bus,
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{bus: bus, uow: uow, logger: logger}
}

// Create stores a new account.
func (s *Service) Create(
	ctx context.Context,
	in dto.AccountCreate,
) (a *account.Account, err error) {
	log := s.logger.With("name", in.Name)
	log.Debug("Create called")
	provider, err := account.ParseProvider(in.Provider)
	if err != nil {
		return nil, err
	}
	a, err = account.New(in.Name, in.Holder, in.Bank, in.CBU, in.Alias, provider)
	if err != nil {
		return nil, err
	}
	a.MPAccessToken = strings.TrimSpace(in.MPAccessToken)
	a.MPPublicKey = strings.TrimSpace(in.MPPublicKey)
	a.MPCollectorID = strings.TrimSpace(in.MPCollectorID)
	a.Priority = in.Priority
	a.Active = in.Active
	if err = a.Validate(); err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		return repo.Create(ctx, a)
	})
	if err != nil {
		log.Error("Create failed", "error", err)
		return nil, err
	}
	log.Info("Account created", "accountID", a.ID, "provider", a.Provider)
	if a.Active && a.UsesMercadoPago() {
		s.emit(ctx, events.NewAccountActivated(a))
	}
	return a, nil
}

// Get returns one account.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	repo, err := repository.Repo[accountrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	a, err := repo.Get(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, account.ErrAccountNotFound
	}
	return a, err
}

// List returns accounts matching filter in fallback order.
func (s *Service) List(ctx context.Context, filter dto.AccountFilter) ([]*account.Account, error) {
	if filter.Provider != "" {
		p, err := account.ParseProvider(filter.Provider)
		if err != nil {
			return nil, err
		}
		filter.Provider = string(p)
	}
	repo, err := repository.Repo[accountrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.List(ctx, filter)
}

// Update applies the non-nil fields of in.
func (s *Service) Update(
	ctx context.Context,
	id uuid.UUID,
	in dto.AccountUpdate,
) (a *account.Account, err error) {
	log := s.logger.With("accountID", id)
	log.Debug("Update called")
	var credentialsChanged bool
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		token, priority := a.MPAccessToken, a.Priority
		applyUpdate(a, in)
		// the credential list is ordered by priority, so a reorder counts too
		credentialsChanged = a.MPAccessToken != token || a.Priority != priority
		if err := a.Validate(); err != nil {
			return err
		}
		a.UpdatedAt = time.Now().UTC()
		return repo.Update(ctx, a)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = account.ErrAccountNotFound
		}
		log.Error("Update failed", "error", err)
		return nil, err
	}
	log.Info("Account updated", "credentialsChanged", credentialsChanged)
	if a.Active && a.Provider == account.ProviderMercadoPago && credentialsChanged {
		s.emit(ctx, events.NewAccountActivated(a))
	}
	return a, nil
}

func applyUpdate(a *account.Account, in dto.AccountUpdate) {
	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Holder != nil {
		a.Holder = strings.TrimSpace(*in.Holder)
	}
	if in.Bank != nil {
		a.Bank = strings.TrimSpace(*in.Bank)
	}
	if in.CBU != nil {
		a.CBU = utils.OnlyDigits(*in.CBU)
	}
	if in.Alias != nil {
		a.Alias = strings.TrimSpace(*in.Alias)
	}
	if in.MPAccessToken != nil {
		a.MPAccessToken = strings.TrimSpace(*in.MPAccessToken)
	}
	if in.MPPublicKey != nil {
		a.MPPublicKey = strings.TrimSpace(*in.MPPublicKey)
	}
	if in.MPCollectorID != nil {
		a.MPCollectorID = strings.TrimSpace(*in.MPCollectorID)
	}
	if in.Priority != nil {
		a.Priority = *in.Priority
	}
}

// Delete removes an account.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	log := s.logger.With("accountID", id)
	log.Debug("Delete called")
	var a *account.Account
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		return repo.Delete(ctx, id)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = account.ErrAccountNotFound
		}
		log.Error("Delete failed", "error", err)
		return err
	}
	log.Info("Account deleted")
	s.emit(ctx, events.NewAccountDeactivated(a))
	return nil
}

// Activate enables an account. MercadoPago accounts need an access token.
func (s *Service) Activate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.setActive(ctx, id, true)
}

// Deactivate disables an account.
func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return s.setActive(ctx, id, false)
}

func (s *Service) setActive(
	ctx context.Context,
	id uuid.UUID,
	active bool,
) (a *account.Account, err error) {
	log := s.logger.With("accountID", id, "active", active)
	log.Debug("setActive called")
	var changed bool
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[accountrepo.Repository](uow)
		if err != nil {
			return err
		}
		a, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if a.Active == active {
			return nil
		}
		a.Active = active
		if err := a.Validate(); err != nil {
			return err
		}
		a.UpdatedAt = time.Now().UTC()
		changed = true
		return repo.Update(ctx, a)
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			err = account.ErrAccountNotFound
		}
		log.Error("setActive failed", "error", err)
		return nil, err
	}
	if !changed {
		return a, nil
	}
	log.Info("Account state changed")
	if active && a.UsesMercadoPago() {
		s.emit(ctx, events.NewAccountActivated(a))
	} else if !active {
		s.emit(ctx, events.NewAccountDeactivated(a))
	}
	return a, nil
}

// emit publishes after commit. Failures are logged since the change is durable.
func (s *Service) emit(ctx context.Context, evt events.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Emit(ctx, evt); err != nil {
		s.logger.Warn("failed to emit account event", "type", evt.Type(), "error", err)
	}
}

// ToRead converts an account to its public view with the token masked.
func ToRead(a *account.Account) dto.AccountRead {
	return dto.AccountRead{
		ID:            a.ID,
		Name:          a.Name,
		Holder:        a.Holder,
		Bank:          a.Bank,
		CBU:           a.CBU,
		Alias:         a.Alias,
		Provider:      string(a.Provider),
		MPAccessToken: a.MaskedToken(),
		MPPublicKey:   a.MPPublicKey,
		MPCollectorID: a.MPCollectorID,
		Priority:      a.Priority,
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}
