// Package account models the merchant payment accounts that receive customer
// transfers: plain bank accounts identified by CBU/alias and MercadoPago wallets
// whose credentials are used to query the gateway.
package account

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/utils"
	"github.com/google/uuid"
)

var (
	// ErrAccountNotFound is returned when an account id is unknown.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidCBU is returned for CBUs that are not 22 digits or fail the check digits.
	ErrInvalidCBU = errors.New("invalid CBU")
	// ErrInvalidAlias is returned for aliases outside 6-20 chars of [a-zA-Z0-9.-].
	ErrInvalidAlias = errors.New("invalid alias")
	// ErrMissingCredentials is returned when a MercadoPago account has no access token.
	ErrMissingCredentials = errors.New("missing mercadopago credentials")
	// ErrInvalidProvider is returned for unknown providers.
	ErrInvalidProvider = errors.New("invalid provider")
	// ErrMissingDestination is returned when neither CBU nor alias is given.
	ErrMissingDestination = errors.New("cbu or alias required")
)

// Provider is where the account lives.
type Provider string

const (
	ProviderBank        Provider = "bank"
	ProviderMercadoPago Provider = "mercadopago"
)

// ParseProvider validates a provider name. Empty defaults to bank.
func ParseProvider(s string) (Provider, error) {
	switch p := Provider(strings.ToLower(strings.TrimSpace(s))); p {
	case ProviderBank, ProviderMercadoPago:
		return p, nil
	case "":
		return ProviderBank, nil
	default:
		return "", ErrInvalidProvider
	}
}

// Account is a merchant account customers transfer money to.
type Account struct {
	ID            uuid.UUID
	Name          string
	Holder        string
	Bank          string
	CBU           string
	Alias         string
	Provider      Provider
	MPAccessToken string
	MPPublicKey   string
	MPCollectorID string
	Priority      int
	Active        bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// New builds an account and validates it.
func New(name, holder, bank, cbu, alias string, provider Provider) (*Account, error) {
	now := time.Now().UTC()
	a := &Account{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(name),
		Holder:    strings.TrimSpace(holder),
		Bank:      strings.TrimSpace(bank),
		CBU:       utils.OnlyDigits(cbu),
		Alias:     strings.TrimSpace(alias),
		Provider:  provider,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks field formats. MercadoPago credentials are only required
// when the account is active.
func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.New("account name cannot be empty")
	}
	if a.Provider != ProviderBank && a.Provider != ProviderMercadoPago {
		return ErrInvalidProvider
	}
	if a.CBU == "" && a.Alias == "" {
		return ErrMissingDestination
	}
	if a.CBU != "" {
		if err := ValidateCBU(a.CBU); err != nil {
			return err
		}
	}
	if a.Alias != "" {
		if err := ValidateAlias(a.Alias); err != nil {
			return err
		}
	}
	if a.Active && a.Provider == ProviderMercadoPago && a.MPAccessToken == "" {
		return ErrMissingCredentials
	}
	return nil
}

// UsesMercadoPago reports whether the account can be used to query the gateway.
func (a *Account) UsesMercadoPago() bool {
	return a.Provider == ProviderMercadoPago && a.MPAccessToken != ""
}

// MaskedToken returns the access token safe for display.
func (a *Account) MaskedToken() string {
	if a.MPAccessToken == "" {
		return ""
	}
	return utils.Mask(a.MPAccessToken)
}

var (
	cbuBlock1Weights = []int{7, 1, 3, 9, 7, 1, 3}
	cbuBlock2Weights = []int{3, 9, 7, 1, 3, 9, 7, 1, 3, 9, 7, 1, 3}
	aliasPattern     = regexp.MustCompile(`^[a-zA-Z0-9.\-]{6,20}$`)
)

// ValidateCBU verifies length and both check digits of a CBU.
func ValidateCBU(cbu string) error {
	if len(cbu) != 22 || utils.OnlyDigits(cbu) != cbu {
		return ErrInvalidCBU
	}
	if !cbuBlockValid(cbu[:8], cbuBlock1Weights) || !cbuBlockValid(cbu[8:], cbuBlock2Weights) {
		return ErrInvalidCBU
	}
	return nil
}

func cbuBlockValid(block string, weights []int) bool {
	sum := 0
	for i, w := range weights {
		sum += int(block[i]-'0') * w
	}
	check := (10 - sum%10) % 10
	return int(block[len(weights)]-'0') == check
}

// ValidateAlias checks the alias format used by Argentine banks.
func ValidateAlias(alias string) error {
	if !aliasPattern.MatchString(alias) {
		return ErrInvalidAlias
	}
	return nil
}
