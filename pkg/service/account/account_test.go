package account_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/backoffice/internal/fixtures/mocks"
	"github.com/amirasaad/backoffice/pkg/domain"
	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/amirasaad/backoffice/pkg/domain/events"
	"github.com/amirasaad/backoffice/pkg/dto"
	"github.com/amirasaad/backoffice/pkg/repository"
	accountrepo "github.com/amirasaad/backoffice/pkg/repository/account"
	accountsvc "github.com/amirasaad/backoffice/pkg/service/account"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validCBU = "2850590940090418135201"

func newService(t *testing.T) (*accountsvc.Service, *mocks.MockAccountRepository, *mocks.MockBus) {
	t.Helper()
	repo := mocks.NewMockAccountRepository(t)
	bus := mocks.NewMockBus(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().GetRepository(repository.TypeOf[accountrepo.Repository]()).Return(repo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	return accountsvc.New(bus, uow, slog.Default()), repo, bus
}

func eventOfType(eventType string) any {
	return mock.MatchedBy(func(e events.Event) bool { return e.Type() == eventType })
}

func mpAccount(t *testing.T, active bool) *account.Account {
	t.Helper()
	a, err := account.New("MP", "ACME SA", "", validCBU, "", account.ProviderMercadoPago)
	require.NoError(t, err)
	a.MPAccessToken = "APP_USR-123456789"
	a.Active = active
	return a
}

func TestCreate_ActiveMercadoPagoEmitsActivated(t *testing.T) {
	t.Parallel()
	svc, repo, bus := newService(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	bus.EXPECT().Emit(mock.Anything, eventOfType(events.AccountActivated)).Return(nil).Once()

	a, err := svc.Create(context.Background(), dto.AccountCreate{
		Name:          "MP wallet",
		CBU:           validCBU,
		Provider:      "mercadopago",
		MPAccessToken: " APP_USR-123456789 ",
		Priority:      1,
		Active:        true,
	})
	require.NoError(t, err)
	assert.Equal(t, "APP_USR-123456789", a.MPAccessToken)
	assert.Equal(t, 1, a.Priority)
}

func TestCreate_BankAccountDoesNotEmit(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()

	_, err := svc.Create(context.Background(), dto.AccountCreate{
		Name: "Bank", Alias: "acme.pagos", Active: true,
	})
	require.NoError(t, err)
}

func TestCreate_ActiveMercadoPagoWithoutToken(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), dto.AccountCreate{
		Name: "MP", Alias: "acme.pagos", Provider: "mercadopago", Active: true,
	})
	assert.ErrorIs(t, err, account.ErrMissingCredentials)
}

func TestCreate_InvalidCBU(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), dto.AccountCreate{Name: "Bank", CBU: "123"})
	assert.ErrorIs(t, err, account.ErrInvalidCBU)
}

func TestGet_NotFound(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	id := uuid.New()
	repo.EXPECT().Get(mock.Anything, id).Return(nil, domain.ErrNotFound).Once()

	_, err := svc.Get(context.Background(), id)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestUpdate_TokenChangeOnActiveAccountEmits(t *testing.T) {
	t.Parallel()
	svc, repo, bus := newService(t)
	a := mpAccount(t, true)
	token := "APP_USR-987654321"
	repo.EXPECT().Get(mock.Anything, a.ID).Return(a, nil).Once()
	repo.EXPECT().Update(mock.Anything, a).Return(nil).Once()
	bus.EXPECT().Emit(mock.Anything, eventOfType(events.AccountActivated)).Return(nil).Once()

	got, err := svc.Update(context.Background(), a.ID, dto.AccountUpdate{MPAccessToken: &token})
	require.NoError(t, err)
	assert.Equal(t, token, got.MPAccessToken)
}

func TestUpdate_PriorityChangeOnActiveAccountEmits(t *testing.T) {
	t.Parallel()
	svc, repo, bus := newService(t)
	a := mpAccount(t, true)
	priority := a.Priority + 5
	repo.EXPECT().Get(mock.Anything, a.ID).Return(a, nil).Once()
	repo.EXPECT().Update(mock.Anything, a).Return(nil).Once()
	bus.EXPECT().Emit(mock.Anything, eventOfType(events.AccountActivated)).Return(nil).Once()

	got, err := svc.Update(context.Background(), a.ID, dto.AccountUpdate{Priority: &priority})
	require.NoError(t, err)
	assert.Equal(t, priority, got.Priority)
}

func TestUpdate_NameOnlyDoesNotEmit(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	a := mpAccount(t, true)
	name := "Renamed"
	repo.EXPECT().Get(mock.Anything, a.ID).Return(a, nil).Once()
	repo.EXPECT().Update(mock.Anything, a).Return(nil).Once()

	got, err := svc.Update(context.Background(), a.ID, dto.AccountUpdate{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestActivateAndDeactivate(t *testing.T) {
	t.Parallel()
	svc, repo, bus := newService(t)
	a := mpAccount(t, false)
	repo.EXPECT().Get(mock.Anything, a.ID).Return(a, nil).Times(3)
	repo.EXPECT().Update(mock.Anything, a).Return(nil).Twice()
	bus.EXPECT().Emit(mock.Anything, eventOfType(events.AccountActivated)).Return(nil).Once()
	bus.EXPECT().Emit(mock.Anything, eventOfType(events.AccountDeactivated)).Return(nil).Once()

	got, err := svc.Activate(context.Background(), a.ID)
	require.NoError(t, err)
	assert.True(t, got.Active)

	// no-op, nothing emitted
	_, err = svc.Activate(context.Background(), a.ID)
	require.NoError(t, err)

	got, err = svc.Deactivate(context.Background(), a.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestDelete_EmitsDeactivated(t *testing.T) {
	t.Parallel()
	svc, repo, bus := newService(t)
	a := mpAccount(t, true)
	repo.EXPECT().Get(mock.Anything, a.ID).Return(a, nil).Once()
	repo.EXPECT().Delete(mock.Anything, a.ID).Return(nil).Once()
	bus.EXPECT().Emit(mock.Anything, eventOfType(events.AccountDeactivated)).Return(nil).Once()

	require.NoError(t, svc.Delete(context.Background(), a.ID))
}

func TestList_RejectsUnknownProvider(t *testing.T) {
	t.Parallel()
	svc, _, _ := newService(t)

	_, err := svc.List(context.Background(), dto.AccountFilter{Provider: "paypal"})
	assert.ErrorIs(t, err, account.ErrInvalidProvider)
}

func TestToRead_MasksToken(t *testing.T) {
	t.Parallel()
	read := accountsvc.ToRead(mpAccount(t, true))
	assert.Equal(t, "AP****6789", read.MPAccessToken)
}
