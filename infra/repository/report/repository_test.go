package report

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
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

func lastWeek() dto.DateRange {
	to := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	return dto.DateRange{From: to.AddDate(0, 0, -7), To: to}
}

func TestReportRepository_ConversationsByStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	rng := lastWeek()

	mock.ExpectQuery(`SELECT status, COUNT\(\*\) AS count FROM "conversations" WHERE created_at >= \$1 AND created_at < \$2 GROUP BY "status"`).
		WithArgs(rng.From, rng.To).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow("open", 4).
			AddRow("solved", 2))

	out, err := repo.ConversationsByStatus(context.Background(), rng)
	require.NoError(t, err)
	assert.Equal(t, []dto.StatusCount{{Status: "open", Count: 4}, {Status: "solved", Count: 2}}, out)
}

func TestReportRepository_TransactionsPerDay(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT to_char\(created_at AT TIME ZONE 'UTC', 'YYYY-MM-DD'\) AS day, kind, COUNT\(\*\) AS count, COALESCE\(SUM\(amount\), 0\) AS total FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"day", "kind", "count", "total"}).
			AddRow("2026-03-01", "deposit", 3, "4500.50"))

	out, err := repo.TransactionsPerDay(context.Background(), lastWeek())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "2026-03-01", out[0].Day)
	assert.True(t, decimal.RequireFromString("4500.50").Equal(out[0].Total))
}

func TestReportRepository_AgentWorkload(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	agent := uuid.New()

	mock.ExpectQuery(`SELECT c.assignee_id AS agent_id, u.username, COUNT\(\*\) AS open FROM conversations AS c JOIN users u`).
		WithArgs("open", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"agent_id", "username", "open"}).AddRow(agent.String(), "ana", 5))

	out, err := repo.AgentWorkload(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, agent, out[0].AgentID)
	assert.Equal(t, int64(5), out[0].Open)
}

func TestReportRepository_PendingDeposits(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions" WHERE kind = \$1 AND status = \$2`).
		WithArgs("deposit", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	n, err := repo.PendingDeposits(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
}
