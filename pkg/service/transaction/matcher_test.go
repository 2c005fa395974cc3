package transaction

import (
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func deposit(t *testing.T, amount string, payerID string, createdAt time.Time) *transaction.Transaction {
	t.Helper()
	d, err := transaction.NewDeposit(decimal.RequireFromString(amount), "", nil, payerID, "")
	require.NoError(t, err)
	d.CreatedAt = createdAt
	return d
}

func payment(amount, payerID string) *provider.Payment {
	return &provider.Payment{
		ID:                  "123",
		Status:              provider.PaymentApproved,
		Amount:              decimal.RequireFromString(amount),
		DateCreated:         base,
		PayerIdentification: payerID,
	}
}

func TestMatcher_IdentifierMatch(t *testing.T) {
	m := NewMatcher(0)
	target := deposit(t, "1500.00", "30-12345678-9", base.Add(-time.Hour))
	other := deposit(t, "1500.00", "", base.Add(-2*time.Hour))

	// CUIT on the deposit, DNI on the payment
	got := m.Match(payment("1500", "12345678"), nil, []*transaction.Transaction{other, target})

	assert.Same(t, target, got.Deposit)
	assert.Equal(t, transaction.MatchIdentifier, got.Method)
	assert.Equal(t, 2, got.Candidates)
}

func TestMatcher_EarliestIdentifierWins(t *testing.T) {
	m := NewMatcher(time.Hour * 24)
	late := deposit(t, "100", "12345678", base.Add(-time.Hour))
	early := deposit(t, "100", "012345678", base.Add(-3*time.Hour))

	got := m.Match(payment("100", "12.345.678"), nil, []*transaction.Transaction{late, early})

	assert.Same(t, early, got.Deposit)
	assert.Equal(t, OutcomeIdentifier, got.Outcome)
}

func TestMatcher_PayerAccountMatchesCBU(t *testing.T) {
	m := NewMatcher(0)
	cbu := "2850590940090418135201"
	d := deposit(t, "100", cbu, base)
	p := payment("100", "")
	p.PayerAccount = cbu

	got := m.Match(p, nil, []*transaction.Transaction{d})

	assert.Same(t, d, got.Deposit)
	assert.Equal(t, transaction.MatchIdentifier, got.Method)
}

func TestMatcher_AmountOnly(t *testing.T) {
	m := NewMatcher(0)
	undeclared := deposit(t, "250.50", "", base.Add(time.Hour))
	someoneElse := deposit(t, "250.50", "99999999", base)

	got := m.Match(payment("250.5", "12345678"), nil, []*transaction.Transaction{undeclared, someoneElse})

	assert.Same(t, undeclared, got.Deposit)
	assert.Equal(t, transaction.MatchAmount, got.Method)
}

func TestMatcher_NoMatch(t *testing.T) {
	accountA, accountB := uuid.New(), uuid.New()
	onB := deposit(t, "100", "", base)
	onB.AccountID = &accountB
	withdrawal, err := transaction.NewWithdrawal(decimal.NewFromInt(100), "", nil, "acme.pagos", "")
	require.NoError(t, err)
	withdrawal.CreatedAt = base
	settled := deposit(t, "100", "", base)
	settled.Status = transaction.StatusCompleted

	tests := []struct {
		name      string
		deposits  []*transaction.Transaction
		accountID *uuid.UUID
		outcome   Outcome
	}{
		{"no candidates", nil, nil, OutcomeUnmatched},
		{"different amount", []*transaction.Transaction{deposit(t, "100.01", "", base)}, nil, OutcomeUnmatched},
		{"outside window", []*transaction.Transaction{deposit(t, "100", "", base.Add(-25*time.Hour))}, nil, OutcomeUnmatched},
		{"after window", []*transaction.Transaction{deposit(t, "100", "", base.Add(25*time.Hour))}, nil, OutcomeUnmatched},
		{"other account", []*transaction.Transaction{onB}, &accountA, OutcomeUnmatched},
		{"not a deposit", []*transaction.Transaction{withdrawal}, nil, OutcomeUnmatched},
		{"not pending", []*transaction.Transaction{settled}, nil, OutcomeUnmatched},
		{"identifier mismatch", []*transaction.Transaction{deposit(t, "100", "87654321", base)}, nil, OutcomeUnmatched},
		{"identifier without digits", []*transaction.Transaction{deposit(t, "100", "juan.perez", base)}, nil, OutcomeUnmatched},
		{
			"two undeclared",
			[]*transaction.Transaction{deposit(t, "100", "", base), deposit(t, "100", "", base.Add(time.Minute))},
			nil,
			OutcomeAmbiguous,
		},
	}
	m := NewMatcher(24 * time.Hour)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.Match(payment("100", "12345678"), tt.accountID, tt.deposits)
			assert.Nil(t, got.Deposit)
			assert.Equal(t, tt.outcome, got.Outcome)
		})
	}
}

func TestMatcher_SameAccountIsKept(t *testing.T) {
	accountID := uuid.New()
	d := deposit(t, "100", "", base)
	d.AccountID = &accountID

	got := NewMatcher(0).Match(payment("100", ""), &accountID, []*transaction.Transaction{d})

	assert.Same(t, d, got.Deposit)
}

func TestMatcher_DeclaredNonNumericIdentifierIsNotAmountMatched(t *testing.T) {
	declared := deposit(t, "500", "juan.perez", base)
	blank := deposit(t, "500", "   ", base.Add(time.Minute))

	got := NewMatcher(0).Match(payment("500", "20123456789"), nil, []*transaction.Transaction{declared, blank})

	assert.Same(t, blank, got.Deposit)
	assert.Equal(t, OutcomeAmount, got.Outcome)
	assert.Equal(t, 2, got.Candidates)
}
