package user_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	userrepo "github.com/amirasaad/backoffice/pkg/repository/user"
	usersvc "github.com/amirasaad/backoffice/pkg/service/user"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Helper to create a service with mocks
func newUserServiceWithMocks(t *testing.T) (*usersvc.Service, *mocks.MockUserRepository, *mocks.MockUnitOfWork) {
	userRepo := mocks.NewMockUserRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().GetRepository(repository.TypeOf[userrepo.Repository]()).Return(userRepo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	return usersvc.New(uow, slog.Default()), userRepo, uow
}

func TestCreateUser_Success(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	userRepo.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(false, nil).Once()
	userRepo.EXPECT().ExistsByEmail(mock.Anything, "alice@example.com").Return(false, nil).Once()
	userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(u *user.User) bool {
		return u.Username == "alice" && u.Role == user.RoleAgent && u.Names == "Alice"
	})).Return(nil).Once()

	u, err := svc.CreateUser(context.Background(), dto.UserCreate{
		Username: "alice",
		Email:    "Alice@example.com",
		Password: "password",
		Names:    " Alice ",
		Role:     "agent",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.NotEqual(t, "password", u.Password)
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	userRepo.EXPECT().ExistsByUsername(mock.Anything, "alice").Return(true, nil).Once()

	u, err := svc.CreateUser(context.Background(), dto.UserCreate{
		Username: "alice", Email: "alice@example.com", Password: "password",
	})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Nil(t, u)
}

func TestCreateUser_InvalidRole(t *testing.T) {
	t.Parallel()
	svc, _, _ := newUserServiceWithMocks(t)

	_, err := svc.CreateUser(context.Background(), dto.UserCreate{
		Username: "alice", Email: "alice@example.com", Password: "password", Role: "root",
	})
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestUpdateUser(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	existing, err := user.New("bob", "bob@example.com", "password", user.RoleViewer)
	require.NoError(t, err)
	oldHash := existing.Password

	userRepo.EXPECT().Get(mock.Anything, existing.ID).Return(existing, nil).Once()
	userRepo.EXPECT().Update(mock.Anything, existing).Return(nil).Once()

	role := "admin"
	active := false
	pw := "new-password"
	u, err := svc.UpdateUser(context.Background(), existing.ID, dto.UserUpdate{
		Role: &role, Active: &active, Password: &pw,
	})
	require.NoError(t, err)
	assert.Equal(t, user.RoleAdmin, u.Role)
	assert.False(t, u.Active)
	assert.NotEqual(t, oldHash, u.Password)
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("self delete with correct password", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceWithMocks(t)
		self, _ := user.New("carol", "carol@example.com", "password", user.RoleAgent)
		userRepo.EXPECT().Get(mock.Anything, self.ID).Return(self, nil).Once()
		userRepo.EXPECT().Delete(mock.Anything, self.ID).Return(nil).Once()

		require.NoError(t, svc.DeleteUser(context.Background(), self.ID, self.ID, "password"))
	})

	t.Run("self delete with wrong password", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceWithMocks(t)
		self, _ := user.New("carol", "carol@example.com", "password", user.RoleAgent)
		userRepo.EXPECT().Get(mock.Anything, self.ID).Return(self, nil).Once()

		err := svc.DeleteUser(context.Background(), self.ID, self.ID, "nope")
		assert.ErrorIs(t, err, user.ErrUserUnauthorized)
	})

	t.Run("non-admin deleting someone else", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceWithMocks(t)
		agent, _ := user.New("dave", "dave@example.com", "password", user.RoleAgent)
		userRepo.EXPECT().Get(mock.Anything, agent.ID).Return(agent, nil).Once()

		err := svc.DeleteUser(context.Background(), agent.ID, uuid.New(), "")
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin deleting someone else", func(t *testing.T) {
		svc, userRepo, _ := newUserServiceWithMocks(t)
		admin, _ := user.New("root", "root@example.com", "password", user.RoleAdmin)
		target := uuid.New()
		userRepo.EXPECT().Get(mock.Anything, admin.ID).Return(admin, nil).Once()
		userRepo.EXPECT().Delete(mock.Anything, target).Return(nil).Once()

		require.NoError(t, svc.DeleteUser(context.Background(), admin.ID, target, ""))
	})
}

func TestValidUser(t *testing.T) {
	t.Parallel()
	svc, userRepo, _ := newUserServiceWithMocks(t)
	u, _ := user.New("erin", "erin@example.com", "password", user.RoleViewer)

	userRepo.EXPECT().GetByEmail(mock.Anything, "erin@example.com").Return(u, nil).Once()
	ok, err := svc.ValidUser(context.Background(), "erin@example.com", "password")
	require.NoError(t, err)
	assert.True(t, ok)

	userRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrNotFound).Once()
	ok, err = svc.ValidUser(context.Background(), "ghost", "password")
	require.NoError(t, err)
	assert.False(t, ok)

	userRepo.EXPECT().GetByUsername(mock.Anything, "broken").Return(nil, errors.New("db down")).Once()
	_, err = svc.ValidUser(context.Background(), "broken", "password")
	assert.Error(t, err)
}
