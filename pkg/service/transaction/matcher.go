package transaction

import (
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/transaction"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/google/uuid"
)

// DefaultWindow is how far apart a payment and a deposit claim may be.
const DefaultWindow = 24 * time.Hour

// Outcome names what the matcher decided.
type Outcome string

const (
	OutcomeIdentifier Outcome = "identifier"
	OutcomeAmount     Outcome = "amount"
	OutcomeAmbiguous  Outcome = "ambiguous"
	OutcomeUnmatched  Outcome = "unmatched"
)

// Match is the result of matching one payment.
type Match struct {
	Deposit    *transaction.Transaction
	Method     transaction.MatchMethod
	Outcome    Outcome
	Candidates int
}

// Matcher pairs gateway payments with pending deposit claims. It has no
// side effects.
type Matcher struct {
	Window time.Duration
}

// NewMatcher returns a Matcher, defaulting a non-positive window to DefaultWindow.
func NewMatcher(window time.Duration) Matcher {
	if window <= 0 {
		window = DefaultWindow
	}
	return Matcher{Window: window}
}

// Match picks the deposit that payment settles. accountID is the account
// whose credentials found the payment and may be nil when unknown.
//
// Candidates are pending deposits of the same amount inside the window and,
// when the deposit names an account, on that account. A payer identifier
// match wins, the earliest claim breaking ties. Without one, a single
// candidate that declared no identifier is matched by amount alone.
func (m Matcher) Match(
	payment *provider.Payment,
	accountID *uuid.UUID,
	deposits []*transaction.Transaction,
) Match {
	candidates := m.candidates(payment, accountID, deposits)
	if len(candidates) == 0 {
		return Match{Outcome: OutcomeUnmatched}
	}

	paymentForms := append(
		transaction.IdentifierForms(payment.PayerIdentification),
		transaction.IdentifierForms(payment.PayerAccount)...,
	)
	var (
		byIdentifier *transaction.Transaction
		undeclared   []*transaction.Transaction
	)
	for _, d := range candidates {
		if strings.TrimSpace(d.PayerIdentifier) == "" {
			undeclared = append(undeclared, d)
			continue
		}
		// a declared identifier with no digits can never match a payer
		if !transaction.IdentifiersMatch(paymentForms, transaction.IdentifierForms(d.PayerIdentifier)) {
			continue
		}
		if byIdentifier == nil || d.CreatedAt.Before(byIdentifier.CreatedAt) {
			byIdentifier = d
		}
	}

	switch {
	case byIdentifier != nil:
		return Match{
			Deposit:    byIdentifier,
			Method:     transaction.MatchIdentifier,
			Outcome:    OutcomeIdentifier,
			Candidates: len(candidates),
		}
	case len(undeclared) == 1:
		return Match{
			Deposit:    undeclared[0],
			Method:     transaction.MatchAmount,
			Outcome:    OutcomeAmount,
			Candidates: len(candidates),
		}
	case len(undeclared) > 1:
		return Match{Outcome: OutcomeAmbiguous, Candidates: len(candidates)}
	default:
		return Match{Outcome: OutcomeUnmatched, Candidates: len(candidates)}
	}
}

func (m Matcher) candidates(
	payment *provider.Payment,
	accountID *uuid.UUID,
	deposits []*transaction.Transaction,
) []*transaction.Transaction {
	amount := payment.Amount.Round(2)
	out := make([]*transaction.Transaction, 0, len(deposits))
	for _, d := range deposits {
		if d.Kind != transaction.KindDeposit || !d.IsPending() {
			continue
		}
		if !d.Amount.Round(2).Equal(amount) {
			continue
		}
		if d.AccountID != nil && accountID != nil && *d.AccountID != *accountID {
			continue
		}
		if absDuration(payment.DateCreated.Sub(d.CreatedAt)) > m.Window {
			continue
		}
		out = append(out, d)
	}
	return out
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
