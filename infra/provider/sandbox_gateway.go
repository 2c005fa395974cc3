package provider

import (
	"context"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/amirasaad/backoffice/pkg/provider"
)

// SandboxGateway is an in-memory payment gateway for local development and
// demos. Payments are seeded per access token; a token only sees its own
// payments, so the credential fallback behaves as it does against the
// real gateway.
//
// Usage:
//   - Seed adds a payment. With approveAfter > 0 the payment starts pending
//     and turns approved after the delay, the way an async transfer would.
//   - GetPayment/SearchPayments answer like the MercadoPago API would.
//
// This is NOT for production use.
type SandboxGateway struct {
	mu       sync.Mutex
	seq      int64
	payments map[string]*sandboxPayment
	now      func() time.Time
}

type sandboxPayment struct {
	token      string
	payment    provider.Payment
	approvesAt time.Time
}

// NewSandboxGateway creates an empty sandbox.
func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{
		seq:      1000000,
		payments: make(map[string]*sandboxPayment),
		now:      time.Now,
	}
}

func (s *SandboxGateway) Name() string { return "mercadopago" }

// Seed stores p under accessToken and returns its id. An empty p.ID gets
// a sequential numeric id.
func (s *SandboxGateway) Seed(accessToken string, p provider.Payment, approveAfter time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		s.seq++
		p.ID = strconv.FormatInt(s.seq, 10)
	}
	if p.DateCreated.IsZero() {
		p.DateCreated = s.now().UTC()
	}
	sp := &sandboxPayment{token: accessToken, payment: p}
	if approveAfter > 0 {
		sp.payment.Status = provider.PaymentPending
		sp.approvesAt = p.DateCreated.Add(approveAfter)
	} else if p.Status == "" {
		sp.payment.Status = provider.PaymentApproved
	}
	s.payments[p.ID] = sp
	return p.ID
}

// current applies a due approval and returns a copy of the payment.
func (s *SandboxGateway) current(sp *sandboxPayment) provider.Payment {
	if !sp.approvesAt.IsZero() && !s.now().Before(sp.approvesAt) {
		sp.payment.Status = provider.PaymentApproved
		approved := sp.approvesAt
		sp.payment.DateApproved = &approved
		sp.approvesAt = time.Time{}
	}
	return sp.payment
}

func (s *SandboxGateway) GetPayment(ctx context.Context, accessToken, paymentID string) (*provider.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sp, ok := s.payments[paymentID]
	if !ok || sp.token != accessToken {
		return nil, &provider.APIError{Provider: s.Name(), StatusCode: http.StatusNotFound, Message: "Payment not found"}
	}
	p := s.current(sp)
	return &p, nil
}

func (s *SandboxGateway) SearchPayments(
	ctx context.Context,
	accessToken string,
	criteria provider.SearchCriteria,
) ([]provider.Payment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []provider.Payment
	for _, sp := range s.payments {
		if sp.token != accessToken {
			continue
		}
		p := s.current(sp)
		switch {
		case !criteria.Begin.IsZero() && p.DateCreated.Before(criteria.Begin):
			continue
		case !criteria.End.IsZero() && p.DateCreated.After(criteria.End):
			continue
		case criteria.Status != "" && p.Status != criteria.Status:
			continue
		case criteria.Amount != nil && !p.Amount.Equal(*criteria.Amount):
			continue
		}
		out = append(out, p)
	}
	// newest first, like the real search with sort=date_created desc
	sort.Slice(out, func(i, j int) bool { return out[i].DateCreated.After(out[j].DateCreated) })
	if criteria.Limit > 0 && len(out) > criteria.Limit {
		out = out[:criteria.Limit]
	}
	return out, nil
}

var _ provider.PaymentGateway = (*SandboxGateway)(nil)
