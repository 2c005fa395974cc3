package apikey

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/apikey"
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

func TestAPIKeyRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	key, _, err := apikey.New(uuid.New(), "ci", []string{apikey.PermReportsRead}, nil)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "api_keys" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAPIKeyRepository_GetByPrefix(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	owner := uuid.New()
	now := time.Now().UTC()

	cols := []string{"id", "owner_id", "name", "key_prefix", "key_hash", "permissions", "expires_at", "revoked_at", "last_used_at", "created_at"}
	mock.ExpectQuery(`SELECT \* FROM "api_keys" WHERE key_prefix = \$1`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(id.String(), owner.String(), "ci", "abcd1234", "hash", "transactions:read,reports:read", nil, nil, nil, now))

	key, err := repo.GetByPrefix(context.Background(), "abcd1234")
	require.NoError(t, err)
	assert.Equal(t, id, key.ID)
	assert.Equal(t, []string{"transactions:read", "reports:read"}, key.Permissions)
	assert.Nil(t, key.RevokedAt)
}

func TestAPIKeyRepository_GetByPrefixNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "api_keys" WHERE key_prefix = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetByPrefix(context.Background(), "missing0")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAPIKeyRepository_Revoke(t *testing.T) {
	t.Run("revokes active key", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := New(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "api_keys" SET "revoked_at"=\$1 WHERE id = \$2 AND revoked_at IS NULL`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		assert.NoError(t, repo.Revoke(context.Background(), uuid.New(), time.Now()))
	})

	t.Run("already revoked is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := New(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "api_keys"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "api_keys" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		assert.NoError(t, repo.Revoke(context.Background(), uuid.New(), time.Now()))
	})

	t.Run("unknown key", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := New(db)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE "api_keys"`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()
		mock.ExpectQuery(`SELECT count\(\*\) FROM "api_keys"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		assert.ErrorIs(t, repo.Revoke(context.Background(), uuid.New(), time.Now()), domain.ErrNotFound)
	})
}
