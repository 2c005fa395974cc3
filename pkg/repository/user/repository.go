package user

import (
	"context"

	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access operations.
// Lookups that find nothing return domain.ErrNotFound.
type Repository interface {
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, u *user.User) error
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByUsername(ctx context.Context, username string) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns one page of users ordered by creation and the total count.
	List(ctx context.Context, page, pageSize int) ([]*user.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
