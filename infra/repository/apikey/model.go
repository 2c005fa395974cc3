package apikey

import (
	"strings"
	"time"

	"github.com/amirasaad/backoffice/pkg/domain/apikey"
	"github.com/google/uuid"
)

// APIKey is the persisted form of an issued key. Permissions are stored
// comma separated.
type APIKey struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name        string    `gorm:"size:100;not null"`
	KeyPrefix   string    `gorm:"size:16;uniqueIndex;not null"`
	KeyHash     string    `gorm:"size:64;not null"`
	Permissions string    `gorm:"type:text;not null"`
	ExpiresAt   *time.Time
	RevokedAt   *time.Time
	LastUsedAt  *time.Time
	CreatedAt   time.Time
}

// TableName specifies the table name for the APIKey model.
func (APIKey) TableName() string {
	return "api_keys"
}

func toModel(k *apikey.APIKey) *APIKey {
	return &APIKey{
		ID:          k.ID,
		OwnerID:     k.OwnerID,
		Name:        k.Name,
		KeyPrefix:   k.KeyPrefix,
		KeyHash:     k.KeyHash,
		Permissions: strings.Join(k.Permissions, ","),
		ExpiresAt:   k.ExpiresAt,
		RevokedAt:   k.RevokedAt,
		LastUsedAt:  k.LastUsedAt,
		CreatedAt:   k.CreatedAt,
	}
}

func toDomain(m *APIKey) *apikey.APIKey {
	var perms []string
	if m.Permissions != "" {
		perms = strings.Split(m.Permissions, ",")
	}
	return &apikey.APIKey{
		ID:          m.ID,
		OwnerID:     m.OwnerID,
		Name:        m.Name,
		KeyPrefix:   m.KeyPrefix,
		KeyHash:     m.KeyHash,
		Permissions: perms,
		ExpiresAt:   m.ExpiresAt,
		RevokedAt:   m.RevokedAt,
		LastUsedAt:  m.LastUsedAt,
		CreatedAt:   m.CreatedAt,
	}
}
