package provider

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxGateway_TokenScoping(t *testing.T) {
	gw := NewSandboxGateway()
	id := gw.Seed("token-a", provider.Payment{Amount: decimal.RequireFromString("150.00")}, 0)

	p, err := gw.GetPayment(context.Background(), "token-a", id)
	require.NoError(t, err)
	assert.Equal(t, provider.PaymentApproved, p.Status)
	assert.True(t, p.Amount.Equal(decimal.RequireFromString("150")))

	_, err = gw.GetPayment(context.Background(), "token-b", id)
	require.Error(t, err)
	assert.True(t, provider.IsCredentialError(err))
}

func TestSandboxGateway_DelayedApproval(t *testing.T) {
	gw := NewSandboxGateway()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	gw.now = func() time.Time { return now }
	id := gw.Seed("token", provider.Payment{}, time.Minute)

	p, err := gw.GetPayment(context.Background(), "token", id)
	require.NoError(t, err)
	assert.Equal(t, provider.PaymentPending, p.Status)
	assert.Nil(t, p.DateApproved)

	now = now.Add(2 * time.Minute)
	p, err = gw.GetPayment(context.Background(), "token", id)
	require.NoError(t, err)
	assert.Equal(t, provider.PaymentApproved, p.Status)
	require.NotNil(t, p.DateApproved)
}

func TestSandboxGateway_SearchPayments(t *testing.T) {
	gw := NewSandboxGateway()
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	hundred := decimal.NewFromInt(100)
	gw.Seed("token", provider.Payment{Amount: hundred, DateCreated: base}, 0)
	gw.Seed("token", provider.Payment{Amount: hundred, DateCreated: base.Add(time.Hour)}, 0)
	gw.Seed("token", provider.Payment{Amount: decimal.NewFromInt(50), DateCreated: base.Add(2 * time.Hour)}, 0)
	gw.Seed("token", provider.Payment{Amount: hundred, Status: provider.PaymentRejected, DateCreated: base}, 0)
	gw.Seed("other", provider.Payment{Amount: hundred, DateCreated: base}, 0)

	got, err := gw.SearchPayments(context.Background(), "token", provider.SearchCriteria{
		Begin:  base.Add(-time.Minute),
		End:    base.Add(3 * time.Hour),
		Status: provider.PaymentApproved,
		Amount: &hundred,
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].DateCreated.After(got[1].DateCreated))

	got, err = gw.SearchPayments(context.Background(), "token", provider.SearchCriteria{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
