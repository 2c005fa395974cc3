package account

import (
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/account"
	"github.com/google/uuid"
)

// Account represents a merchant account record in the database.
type Account struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"size:100;not null"`
	Holder        string    `gorm:"size:150"`
	Bank          string    `gorm:"size:100"`
	CBU           string    `gorm:"column:cbu;size:22"`
	Alias         string    `gorm:"size:20"`
	Provider      string    `gorm:"size:16;not null"`
	MPAccessToken string    `gorm:"column:mp_access_token;size:255"`
	MPPublicKey   string    `gorm:"column:mp_public_key;size:255"`
	MPCollectorID string    `gorm:"column:mp_collector_id;size:64"`
	Priority      int       `gorm:"not null"`
	Active        bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the table name for the Account model.
func (Account) TableName() string {
	return "accounts"
}

func toModel(a *account.Account) *Account {
	return &Account{
		ID:            a.ID,
		Name:          a.Name,
		Holder:        a.Holder,
		Bank:          a.Bank,
		CBU:           a.CBU,
		Alias:         a.Alias,
		Provider:      string(a.Provider),
		MPAccessToken: a.MPAccessToken,
		MPPublicKey:   a.MPPublicKey,
		MPCollectorID: a.MPCollectorID,
		Priority:      a.Priority,
		Active:        a.Active,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func toDomain(m *Account) *account.Account {
	return &account.Account{
		ID:            m.ID,
		Name:          m.Name,
		Holder:        m.Holder,
		Bank:          m.Bank,
		CBU:           m.CBU,
		Alias:         m.Alias,
		Provider:      account.Provider(m.Provider),
		MPAccessToken: m.MPAccessToken,
		MPPublicKey:   m.MPPublicKey,
		MPCollectorID: m.MPCollectorID,
		Priority:      m.Priority,
		Active:        m.Active,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
