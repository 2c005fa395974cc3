package transaction_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	txsvc "github.com/amirasaad/backoffice/pkg/service/transaction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func failedEvent(t *testing.T, topic, resourceID string) *transaction.IPNEvent {
	t.Helper()
	e, err := transaction.NewIPNEvent(gatewayName, topic, resourceID, nil, "")
	require.NoError(t, err)
	e.MarkFailed(errors.New("timeout"), time.Now())
	e.Attempts = 1
	return e
}

func TestSweep(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.withAccounts(mpAccount("token-a", 0))
	d := pendingDeposit(t, "700", "")
	retry := failedEvent(t, "payment", "11")
	stale := failedEvent(t, "payment", "12")
	other := failedEvent(t, "chargebacks", "13")

	f.ipns.EXPECT().ListRetryable(mock.Anything, transaction.MaxAttempts, 10).
		Return([]*transaction.IPNEvent{retry, stale, other}, nil).Once()

	// retry matches the pending deposit
	f.txs.EXPECT().GetByGatewayPaymentID(mock.Anything, "11").Return(nil, domain.ErrNotFound).Once()
	f.gateway.EXPECT().GetPayment(mock.Anything, "token-a", "11").Return(approvedPayment("11", "700", ""), nil).Once()
	f.txs.EXPECT().ListPendingDeposits(mock.Anything, mock.Anything, mock.Anything).
		Return([]*transaction.Transaction{d}, nil).Once()
	f.txs.EXPECT().GetForUpdate(mock.Anything, d.ID).Return(d, nil).Once()
	f.txs.EXPECT().Update(mock.Anything, d).Return(nil).Once()
	f.ipns.EXPECT().Update(mock.Anything, retry).Return(nil).Once()
	f.bus.EXPECT().Emit(mock.Anything, reconciledEvent()).Return(nil).Once()

	// stale still cannot be fetched
	f.txs.EXPECT().GetByGatewayPaymentID(mock.Anything, "12").Return(nil, domain.ErrNotFound).Once()
	f.gateway.EXPECT().GetPayment(mock.Anything, "token-a", "12").Return(nil, notFound()).Once()
	f.ipns.EXPECT().Update(mock.Anything, stale).Return(nil).Once()

	f.ipns.EXPECT().Update(mock.Anything, other).Return(nil).Once()

	f.txs.EXPECT().ExpirePendingDeposits(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, cutoff, at time.Time) (int64, error) {
			assert.Equal(t, 72*time.Hour, at.Sub(cutoff))
			return 4, nil
		}).Once()

	res, err := f.svc.Sweep(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Retried)
	assert.Equal(t, 1, res.Matched)
	assert.Equal(t, 4, res.Expired)
	assert.Equal(t, transaction.IPNMatched, retry.Status)
	assert.Equal(t, 2, retry.Attempts)
	assert.Equal(t, transaction.IPNFailed, stale.Status)
	assert.Equal(t, transaction.IPNIgnored, other.Status)
}

func TestSweep_ListError(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	boom := errors.New("db down")
	f.ipns.EXPECT().ListRetryable(mock.Anything, mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := f.svc.Sweep(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestNewScheduler(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	s, err := txsvc.NewScheduler(f.svc, "", slog.Default())
	require.NoError(t, err)
	s.Start()
	<-s.Stop().Done()

	_, err = txsvc.NewScheduler(f.svc, "every now and then", slog.Default())
	assert.Error(t, err)
}
