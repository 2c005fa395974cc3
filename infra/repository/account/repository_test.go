package account

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

var accountColumns = []string{
	"id", "name", "holder", "bank", "cbu", "alias", "provider",
	"mp_access_token", "mp_public_key", "mp_collector_id",
	"priority", "active", "created_at", "updated_at",
}

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	a, err := account.New("Main", "ACME SA", "Galicia", "2850590940090418135201", "", account.ProviderBank)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "accounts" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(id.String(), "MP", "ACME", "", "", "acme.mp", "mercadopago", "APP_USR-1", "", "123", 1, true, now, now))

	a, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, account.ProviderMercadoPago, a.Provider)
	assert.Equal(t, "APP_USR-1", a.MPAccessToken)
	assert.Equal(t, 1, a.Priority)
}

func TestAccountRepository_GetNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "accounts"`).WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAccountRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()
	active := true

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE active = \$1 AND provider = \$2 ORDER BY priority ASC, created_at ASC`).
		WithArgs(true, "bank").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(uuid.NewString(), "A", "", "", "2850590940090418135201", "", "bank", "", "", "", 0, true, now, now))

	accounts, err := repo.List(context.Background(), dto.AccountFilter{Active: &active, Provider: "bank"})
	require.NoError(t, err)
	assert.Len(t, accounts, 1)
}

func TestAccountRepository_ListActiveMercadoPago(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()
	first, second := uuid.New(), uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE active = \$1 AND provider = \$2 AND mp_access_token <> ''`).
		WithArgs(true, "mercadopago").
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(first.String(), "A", "", "", "", "acme.one", "mercadopago", "tok-1", "", "", 0, true, now, now).
			AddRow(second.String(), "B", "", "", "", "acme.two", "mercadopago", "tok-2", "", "", 1, true, now, now))

	accounts, err := repo.ListActiveMercadoPago(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, first, accounts[0].ID)
	assert.Equal(t, second, accounts[1].ID)
}

func TestAccountRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "accounts" WHERE id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))
}
