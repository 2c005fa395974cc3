package provider

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/config"
	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/shopspring/decimal"
)

// MercadoPagoName is the gateway name stored on IPN events.
const MercadoPagoName = "mercadopago"

// MercadoPago reads payments from the MercadoPago REST API. It is shared by
// every merchant account; the access token is passed on each call.
type MercadoPago struct {
	api *apiClient
}

// NewMercadoPago creates a MercadoPago client from config.
func NewMercadoPago(cfg *config.MercadoPago, logger *slog.Logger) *MercadoPago {
	return &MercadoPago{
		api: newAPIClient(MercadoPagoName, cfg.ApiUrl, cfg.HTTPTimeout, logger),
	}
}

// Name implements provider.PaymentGateway.
func (m *MercadoPago) Name() string {
	return MercadoPagoName
}

// GetPayment implements provider.PaymentGateway.
func (m *MercadoPago) GetPayment(
	ctx context.Context,
	accessToken, paymentID string,
) (*provider.Payment, error) {
	var p mpPayment
	err := m.api.do(ctx, request{
		op:     "get_payment",
		method: http.MethodGet,
		path:   "/v1/payments/" + url.PathEscape(paymentID),
		auth:   bearer(accessToken),
	}, &p)
	if err != nil {
		return nil, err
	}
	return p.toPayment(), nil
}

// SearchPayments implements provider.PaymentGateway. Results are newest first.
func (m *MercadoPago) SearchPayments(
	ctx context.Context,
	accessToken string,
	criteria provider.SearchCriteria,
) ([]provider.Payment, error) {
	q := url.Values{}
	q.Set("sort", "date_created")
	q.Set("criteria", "desc")
	if !criteria.Begin.IsZero() || !criteria.End.IsZero() {
		q.Set("range", "date_created")
		q.Set("begin_date", mpTime(criteria.Begin))
		end := criteria.End
		if end.IsZero() {
			end = time.Now()
		}
		q.Set("end_date", mpTime(end))
	}
	if criteria.Status != "" {
		q.Set("status", string(criteria.Status))
	}
	if criteria.Amount != nil {
		q.Set("transaction_amount", criteria.Amount.StringFixed(2))
	}
	if criteria.Limit > 0 {
		q.Set("limit", strconv.Itoa(criteria.Limit))
	}
	var res struct {
		Results []mpPayment `json:"results"`
	}
	err := m.api.do(ctx, request{
		op:     "search_payments",
		method: http.MethodGet,
		path:   "/v1/payments/search",
		query:  q,
		auth:   bearer(accessToken),
	}, &res)
	if err != nil {
		return nil, err
	}
	payments := make([]provider.Payment, 0, len(res.Results))
	for i := range res.Results {
		payments = append(payments, *res.Results[i].toPayment())
	}
	return payments, nil
}

func bearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func mpTime(t time.Time) string {
	if t.IsZero() {
		return "NOW-30DAYS"
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

type mpPayment struct {
	ID                int64           `json:"id"`
	Status            string          `json:"status"`
	StatusDetail      string          `json:"status_detail"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	CurrencyID        string          `json:"currency_id"`
	DateCreated       time.Time       `json:"date_created"`
	DateApproved      *time.Time      `json:"date_approved"`
	ExternalReference string          `json:"external_reference"`
	CollectorID       flexString      `json:"collector_id"`
	Payer             struct {
		Email          string `json:"email"`
		FirstName      string `json:"first_name"`
		LastName       string `json:"last_name"`
		Identification struct {
			Type   string `json:"type"`
			Number string `json:"number"`
		} `json:"identification"`
	} `json:"payer"`
	PointOfInteraction struct {
		TransactionData struct {
			BankInfo struct {
				Payer struct {
					AccountID flexString `json:"account_id"`
					LongName  string     `json:"long_name"`
				} `json:"payer"`
			} `json:"bank_info"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}

func (p *mpPayment) toPayment() *provider.Payment {
	bankPayer := p.PointOfInteraction.TransactionData.BankInfo.Payer
	name := strings.TrimSpace(p.Payer.FirstName + " " + p.Payer.LastName)
	if name == "" {
		name = bankPayer.LongName
	}
	return &provider.Payment{
		ID:                      strconv.FormatInt(p.ID, 10),
		Status:                  provider.PaymentStatus(p.Status),
		StatusDetail:            p.StatusDetail,
		Amount:                  p.TransactionAmount,
		Currency:                p.CurrencyID,
		DateCreated:             p.DateCreated.UTC(),
		DateApproved:            p.DateApproved,
		PayerEmail:              p.Payer.Email,
		PayerIdentification:     p.Payer.Identification.Number,
		PayerIdentificationType: p.Payer.Identification.Type,
		PayerAccount:            string(bankPayer.AccountID),
		PayerName:               name,
		ExternalReference:       p.ExternalReference,
		CollectorID:             string(p.CollectorID),
	}
}

// flexString accepts a JSON string, number or null. MercadoPago is not
// consistent about ids.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

var _ provider.PaymentGateway = (*MercadoPago)(nil)
