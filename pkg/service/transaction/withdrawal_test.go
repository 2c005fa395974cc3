package transaction_test

import (
	"context"
	"testing"

	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateWithdrawal(t *testing.T) {
	t.Parallel()

	t.Run("to CBU", func(t *testing.T) {
		f := newFixture(t)
		f.txs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		got, err := f.svc.CreateWithdrawal(context.Background(), dto.WithdrawalCreate{
			Amount:      decimal.NewFromInt(5000),
			Destination: "2850590940090418135201",
			Holder:      "Juan Perez",
		})
		require.NoError(t, err)
		assert.Equal(t, transaction.KindWithdrawal, got.Kind)
		assert.Equal(t, transaction.StatusPending, got.Status)
		assert.Equal(t, "Juan Perez", got.PayerName)
	})

	t.Run("to alias", func(t *testing.T) {
		f := newFixture(t)
		f.txs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

		got, err := f.svc.CreateWithdrawal(context.Background(), dto.WithdrawalCreate{
			Amount:      decimal.NewFromInt(10),
			Destination: "casa.perro.mate",
		})
		require.NoError(t, err)
		assert.Equal(t, "casa.perro.mate", got.Destination)
	})

	t.Run("invalid CBU", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateWithdrawal(context.Background(), dto.WithdrawalCreate{
			Amount:      decimal.NewFromInt(10),
			Destination: "2850590940090418135202",
		})
		assert.ErrorIs(t, err, account.ErrInvalidCBU)
	})

	t.Run("invalid alias", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateWithdrawal(context.Background(), dto.WithdrawalCreate{
			Amount:      decimal.NewFromInt(10),
			Destination: "no spaces!",
		})
		assert.ErrorIs(t, err, account.ErrInvalidAlias)
	})

	t.Run("missing destination", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.CreateWithdrawal(context.Background(), dto.WithdrawalCreate{
			Amount: decimal.NewFromInt(10),
		})
		assert.ErrorIs(t, err, transaction.ErrMissingDestination)
	})
}

func newWithdrawal(t *testing.T) *transaction.Transaction {
	t.Helper()
	w, err := transaction.NewWithdrawal(decimal.NewFromInt(100), "", nil, "casa.perro.mate", "")
	require.NoError(t, err)
	return w
}

func TestApproveWithdrawal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	w := newWithdrawal(t)
	f.txs.EXPECT().GetForUpdate(mock.Anything, w.ID).Return(w, nil).Once()
	f.txs.EXPECT().Update(mock.Anything, w).Return(nil).Once()

	got, err := f.svc.ApproveWithdrawal(context.Background(), w.ID, dto.WithdrawalApprove{ExternalReference: "TRX-1"})
	require.NoError(t, err)
	assert.Equal(t, transaction.StatusCompleted, got.Status)
	assert.Equal(t, "TRX-1", got.ExternalReference)
}

func TestApproveWithdrawal_RejectsDeposits(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	d := pendingDeposit(t, "100", "")
	f.txs.EXPECT().GetForUpdate(mock.Anything, d.ID).Return(d, nil).Once()

	_, err := f.svc.ApproveWithdrawal(context.Background(), d.ID, dto.WithdrawalApprove{})
	assert.ErrorIs(t, err, transaction.ErrWrongKind)
}

func TestReject(t *testing.T) {
	t.Parallel()

	t.Run("pending deposit", func(t *testing.T) {
		f := newFixture(t)
		d := pendingDeposit(t, "100", "")
		f.txs.EXPECT().GetForUpdate(mock.Anything, d.ID).Return(d, nil).Once()
		f.txs.EXPECT().Update(mock.Anything, d).Return(nil).Once()

		got, err := f.svc.Reject(context.Background(), d.ID, dto.TransactionReject{Reason: " duplicate claim "})
		require.NoError(t, err)
		assert.Equal(t, transaction.StatusRejected, got.Status)
		assert.Equal(t, "duplicate claim", got.Notes)
	})

	t.Run("already completed", func(t *testing.T) {
		f := newFixture(t)
		w := newWithdrawal(t)
		w.Status = transaction.StatusCompleted
		f.txs.EXPECT().GetForUpdate(mock.Anything, w.ID).Return(w, nil).Once()

		_, err := f.svc.Reject(context.Background(), w.ID, dto.TransactionReject{Reason: "late"})
		assert.ErrorIs(t, err, domain.ErrInvalidState)
	})

	t.Run("unknown", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.txs.EXPECT().GetForUpdate(mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

		_, err := f.svc.Reject(context.Background(), id, dto.TransactionReject{Reason: "x"})
		assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
	})
}
