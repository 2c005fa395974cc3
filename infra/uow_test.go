package infra

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/backoffice/pkg/domain/user"
	"github.com/amirasaad/backoffice/pkg/repository"
	accountrepo "github.com/amirasaad/backoffice/pkg/repository/account"
	userrepo "github.com/amirasaad/backoffice/pkg/repository/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockUoW(t *testing.T) (*UoW, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return NewUoW(db), mock
}

func TestUoW_GetRepository(t *testing.T) {
	uow, _ := newMockUoW(t)

	users, err := repository.Repo[userrepo.Repository](uow)
	require.NoError(t, err)
	assert.NotNil(t, users)

	accounts, err := repository.Repo[accountrepo.Repository](uow)
	require.NoError(t, err)
	assert.NotNil(t, accounts)

	_, err = uow.GetRepository(repository.TypeOf[error]())
	assert.Error(t, err)
}

func TestUoW_DoCommits(t *testing.T) {
	uow, mock := newMockUoW(t)
	u, err := user.New("alice", "alice@example.com", "password", user.RoleAdmin)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "users" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err = uow.Do(context.Background(), func(tx repository.UnitOfWork) error {
		users, err := repository.Repo[userrepo.Repository](tx)
		if err != nil {
			return err
		}
		return users.Create(context.Background(), u)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUoW_DoRollsBackOnError(t *testing.T) {
	uow, mock := newMockUoW(t)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Do(context.Background(), func(repository.UnitOfWork) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}
