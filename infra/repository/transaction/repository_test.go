package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
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

var transactionColumns = []string{
	"id", "kind", "status", "amount", "currency", "account_id", "payer_identifier",
	"payer_name", "external_reference", "destination", "gateway_payment_id",
	"match_method", "notes", "matched_at", "created_at", "updated_at",
}

func TestTransactionRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	tx, err := transaction.NewDeposit(decimal.NewFromInt(1500), "", nil, "20123456786", "Juan")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Create(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_GetForUpdate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1 (.+) FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(id.String(), "deposit", "pending", "1500.00", "ARS", nil, "20123456786", "Juan", "", "", nil, "", "", nil, now, now))

	tx, err := repo.GetForUpdate(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1500).Equal(tx.Amount))
	assert.Equal(t, transaction.KindDeposit, tx.Kind)
	assert.Empty(t, tx.GatewayPaymentID)
}

func TestTransactionRepository_GetByGatewayPaymentIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE gateway_payment_id = \$1`).
		WillReturnRows(sqlmock.NewRows(transactionColumns))

	_, err := repo.GetByGatewayPaymentID(context.Background(), "123")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransactionRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	tx, err := transaction.NewDeposit(decimal.NewFromInt(10), "", nil, "", "")
	require.NoError(t, err)
	require.NoError(t, tx.Reconcile("999", transaction.MatchAmount, nil, time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET (.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), tx))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	now := time.Now().UTC()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE kind = \$1 AND status = \$2`).
		WithArgs("withdrawal", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE kind = \$1 AND status = \$2 ORDER BY created_at DESC`).
		WillReturnRows(sqlmock.NewRows(transactionColumns).
			AddRow(uuid.NewString(), "withdrawal", "pending", "200.50", "ARS", nil, "", "Ana", "", "ana.alias", nil, "", "", nil, now, now))

	txs, total, err := repo.List(context.Background(), dto.TransactionFilter{
		Kind: "withdrawal", Status: "pending", Page: 1, PageSize: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, txs, 1)
	assert.Equal(t, "ana.alias", txs[0].Destination)
}

func TestTransactionRepository_ExpirePendingDeposits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET (.+) WHERE kind = \$(\d) AND status = \$(\d) AND created_at < \$(\d)`).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	n, err := repo.ExpirePendingDeposits(context.Background(), time.Now().Add(-72*time.Hour), time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestIPNRepository_GetByResource(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIPN(db)
	id := uuid.New()
	now := time.Now().UTC()

	cols := []string{"id", "gateway", "topic", "resource_id", "account_id", "payload", "status", "attempts", "last_error", "transaction_id", "created_at", "updated_at"}
	mock.ExpectQuery(`SELECT \* FROM "ipn_events" WHERE gateway = \$1 AND topic = \$2 AND resource_id = \$3`).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(id.String(), "mercadopago", "payment", "123", nil, "{}", "unmatched", 2, "no match", nil, now, now))

	e, err := repo.GetByResource(context.Background(), "mercadopago", "payment", "123")
	require.NoError(t, err)
	assert.Equal(t, transaction.IPNUnmatched, e.Status)
	assert.Equal(t, 2, e.Attempts)
}

func TestIPNRepository_ListRetryable(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIPN(db)

	mock.ExpectQuery(`SELECT \* FROM "ipn_events" WHERE status IN \(\$1,\$2\) AND attempts < \$3 ORDER BY created_at ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	events, err := repo.ListRetryable(context.Background(), transaction.MaxAttempts, 50)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestIPNRepository_CreateDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIPN(db)
	e, err := transaction.NewIPNEvent("mercadopago", "payment", "123", nil, "{}")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "ipn_events"`).WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Create(context.Background(), e), domain.ErrAlreadyExists)
}

func TestIPNRepository_UpdateKeepsLatestPayload(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIPN(db)
	e, err := transaction.NewIPNEvent("mercadopago", "payment", "123", nil, "{}")
	require.NoError(t, err)
	e.Payload = `{"data":{"id":"123"},"type":"payment"}`

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "ipn_events" SET (.+)"payload"=(.+) WHERE id = (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Update(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_UpdateClaimedPayment(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	tx, err := transaction.NewDeposit(decimal.NewFromInt(500), "", nil, "", "")
	require.NoError(t, err)
	require.NoError(t, tx.Reconcile("999", transaction.MatchAmount, nil, time.Now()))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "transactions" SET (.+)"gateway_payment_id"=(.+) WHERE id = (.+)`).
		WillReturnError(gorm.ErrDuplicatedKey)
	mock.ExpectRollback()

	err = repo.Update(context.Background(), tx)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionRepository_CreateOnUnknownAccount(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	accountID := uuid.New()
	tx, err := transaction.NewDeposit(decimal.NewFromInt(500), "", &accountID, "", "")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "transactions"`).WillReturnError(gorm.ErrForeignKeyViolated)
	mock.ExpectRollback()

	err = repo.Create(context.Background(), tx)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}
