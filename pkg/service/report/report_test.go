package report

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	reportrepo "github.com/amirasaad/backoffice/pkg/repository/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *mocks.MockReportRepository) {
	t.Helper()
	repo := mocks.NewMockReportRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().GetRepository(repository.TypeOf[reportrepo.Repository]()).Return(repo, nil).Maybe()
	svc := New(uow, slog.Default())
	svc.now = func() time.Time { return time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC) }
	return svc, repo
}

func TestRange(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t)

	r, err := svc.Range(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), r.To)
	assert.Equal(t, DefaultSpan, r.To.Sub(r.From))

	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Range(&from, &to)
	assert.ErrorIs(t, err, ErrRangeTooLong)

	_, err = svc.Range(&to, &from)
	assert.ErrorIs(t, err, domain.ErrValidation)

	from = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	r, err = svc.Range(&from, nil)
	require.NoError(t, err)
	assert.Equal(t, from, r.From)
}

func TestReconciliation(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	r := dto.DateRange{From: time.Now().Add(-time.Hour), To: time.Now()}
	repo.EXPECT().IPNEventsByStatus(mock.Anything, r).
		Return([]dto.StatusCount{{Status: "matched", Count: 8}, {Status: "unmatched", Count: 2}}, nil).Once()
	repo.EXPECT().MatchMethods(mock.Anything, r).
		Return([]dto.MethodCount{{Method: "identifier", Count: 6}, {Method: "amount", Count: 2}}, nil).Once()
	repo.EXPECT().PendingDeposits(mock.Anything).Return(3, nil).Once()

	got, err := svc.Reconciliation(context.Background(), r)
	require.NoError(t, err)
	assert.Len(t, got.Events, 2)
	assert.Equal(t, int64(3), got.Pending)
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	r, err := svc.Range(nil, nil)
	require.NoError(t, err)

	repo.EXPECT().ConversationsByStatus(mock.Anything, r).Return([]dto.StatusCount{{Status: "open", Count: 4}}, nil).Once()
	repo.EXPECT().ConversationsPerDay(mock.Anything, r).Return([]dto.DailyCount{{Day: "2026-03-15", Count: 4}}, nil).Once()
	repo.EXPECT().MessagesPerDay(mock.Anything, r).Return(nil, nil).Once()
	repo.EXPECT().AgentWorkload(mock.Anything).Return(nil, nil).Once()
	repo.EXPECT().UsersByRole(mock.Anything).Return([]dto.RoleCount{{Role: "admin", Active: 1, Total: 1}}, nil).Once()
	repo.EXPECT().TransactionsPerDay(mock.Anything, r).Return([]dto.DailyAmount{
		{Day: "2026-03-15", Kind: "deposit", Count: 2, Total: decimal.NewFromInt(1500)},
	}, nil).Once()
	repo.EXPECT().IPNEventsByStatus(mock.Anything, r).Return(nil, nil).Once()
	repo.EXPECT().MatchMethods(mock.Anything, r).Return(nil, nil).Once()
	repo.EXPECT().PendingDeposits(mock.Anything).Return(0, nil).Once()

	d, err := svc.Dashboard(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, int64(4), d.Tickets.ByStatus[0].Count)
	assert.Len(t, d.Users, 1)
	assert.True(t, d.Transactions[0].Total.Equal(decimal.NewFromInt(1500)))
	assert.NotNil(t, d.Reconciliation)
}

func TestDashboard_PropagatesErrors(t *testing.T) {
	t.Parallel()
	svc, repo := newService(t)
	r, err := svc.Range(nil, nil)
	require.NoError(t, err)
	boom := errors.New("query failed")

	repo.EXPECT().ConversationsByStatus(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().ConversationsPerDay(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().MessagesPerDay(mock.Anything, mock.Anything).Return(nil, boom).Once()
	repo.EXPECT().AgentWorkload(mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().UsersByRole(mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().TransactionsPerDay(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().IPNEventsByStatus(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().MatchMethods(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
	repo.EXPECT().PendingDeposits(mock.Anything).Return(0, nil).Maybe()

	_, err = svc.Dashboard(context.Background(), r)
	assert.ErrorIs(t, err, boom)
}
