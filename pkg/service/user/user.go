// Package user provides business logic for backoffice operator management.
package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	userrepo "github.com/amirasaad/backoffice/pkg/repository/user"
	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/google/uuid"
)

// Service provides business logic for user operations including creation, updates, and deletion.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a new Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{
		uow:    uow,
		logger: logger,
	}
}

// CreateUser creates a new user. Username and email must be unused.
func (s *Service) CreateUser(
	ctx context.Context,
	in dto.UserCreate,
) (u *user.User, err error) {
	log := s.logger.With("username", in.Username)
	log.Debug("CreateUser called")
	role, err := user.ParseRole(in.Role)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		if taken, err := repo.ExistsByUsername(ctx, in.Username); err != nil {
			return err
		} else if taken {
			return fmt.Errorf("username %q: %w", in.Username, domain.ErrAlreadyExists)
		}
		if taken, err := repo.ExistsByEmail(ctx, strings.ToLower(in.Email)); err != nil {
			return err
		} else if taken {
			return fmt.Errorf("email %q: %w", in.Email, domain.ErrAlreadyExists)
		}
		u, err = user.New(in.Username, in.Email, in.Password, role)
		if err != nil {
			return err
		}
		u.Names = strings.TrimSpace(in.Names)
		return repo.Create(ctx, u)
	})
	if err != nil {
		log.Error("CreateUser failed", "error", err)
		return nil, err
	}
	log.Info("User created", "userID", u.ID, "role", u.Role)
	return u, nil
}

// GetUser retrieves a user by ID.
func (s *Service) GetUser(
	ctx context.Context,
	id uuid.UUID,
) (*user.User, error) {
	repo, err := repository.Repo[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	u, err := repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetUserByUsername retrieves a user by username.
func (s *Service) GetUserByUsername(
	ctx context.Context,
	username string,
) (*user.User, error) {
	repo, err := repository.Repo[userrepo.Repository](s.uow)
	if err != nil {
		return nil, err
	}
	return repo.GetByUsername(ctx, username)
}

// ListUsers returns one page of users and the total count.
func (s *Service) ListUsers(
	ctx context.Context,
	page, pageSize int,
) ([]*user.User, int64, error) {
	repo, err := repository.Repo[userrepo.Repository](s.uow)
	if err != nil {
		return nil, 0, err
	}
	return repo.List(ctx, page, pageSize)
}

// UpdateUser applies the non-nil fields of update.
func (s *Service) UpdateUser(
	ctx context.Context,
	id uuid.UUID,
	update dto.UserUpdate,
) (u *user.User, err error) {
	log := s.logger.With("userID", id)
	log.Debug("UpdateUser called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		u, err = repo.Get(ctx, id)
		if err != nil {
			return err
		}
		if update.Names != nil {
			u.Names = strings.TrimSpace(*update.Names)
		}
		if update.Role != nil {
			role, err := user.ParseRole(*update.Role)
			if err != nil {
				return err
			}
			u.Role = role
		}
		if update.Active != nil {
			u.Active = *update.Active
		}
		if update.Password != nil {
			if err := u.SetPassword(*update.Password); err != nil {
				return err
			}
		}
		u.UpdatedAt = time.Now().UTC()
		return repo.Update(ctx, u)
	})
	if err != nil {
		log.Error("UpdateUser failed", "error", err)
		return nil, err
	}
	log.Info("User updated")
	return u, nil
}

// DeleteUser removes targetID on behalf of actorID. Deleting yourself
// requires your password; deleting someone else requires the admin role.
func (s *Service) DeleteUser(
	ctx context.Context,
	actorID uuid.UUID,
	targetID uuid.UUID,
	password string,
) error {
	log := s.logger.With("actorID", actorID, "targetID", targetID)
	log.Debug("DeleteUser called")
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := repository.Repo[userrepo.Repository](uow)
		if err != nil {
			return err
		}
		actor, err := repo.Get(ctx, actorID)
		if err != nil {
			return err
		}
		if actorID == targetID {
			if !utils.CheckPasswordHash(password, actor.Password) {
				return user.ErrUserUnauthorized
			}
		} else if !actor.IsAdmin() {
			return domain.ErrForbidden
		}
		return repo.Delete(ctx, targetID)
	})
	if err != nil {
		log.Error("DeleteUser failed", "error", err)
		return err
	}
	log.Info("User deleted")
	return nil
}

// ValidUser reports whether identity (email or username) and password
// belong to an active user.
func (s *Service) ValidUser(
	ctx context.Context,
	identity string,
	password string,
) (bool, error) {
	repo, err := repository.Repo[userrepo.Repository](s.uow)
	if err != nil {
		return false, err
	}
	var u *user.User
	if utils.IsEmail(identity) {
		u, err = repo.GetByEmail(ctx, strings.ToLower(identity))
	} else {
		u, err = repo.GetByUsername(ctx, identity)
	}
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return u.Active && utils.CheckPasswordHash(password, u.Password), nil
}
