// Package apikey models machine credentials for backoffice integrations.
//
// A raw key looks like "bo_<prefix>_<secret>". Only the prefix (for lookup)
// and the SHA-256 of the whole key are persisted.
package apikey

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// KeyPrefix marks every key issued by this service.
	KeyPrefix = "bo"
	// Wildcard grants every permission.
	Wildcard = "*"

	prefixBytes = 4
	secretBytes = 32
)

var (
	ErrKeyNotFound       = errors.New("api key not found")
	ErrKeyMalformed      = errors.New("api key malformed")
	ErrKeyRevoked        = errors.New("api key revoked")
	ErrKeyExpired        = errors.New("api key expired")
	ErrInvalidPermission = errors.New("invalid permission")
	ErrPermissionDenied  = errors.New("permission denied")
)

var permissionPattern = regexp.MustCompile(`^(\*|[a-z_]+:(\*|[a-z_]+))$`)

// Permissions known to the HTTP layer.
const (
	PermTransactionsRead  = "transactions:read"
	PermTransactionsWrite = "transactions:write"
	PermAccountsRead      = "accounts:read"
	PermConversationsRead = "conversations:read"
	PermReportsRead       = "reports:read"
)

// APIKey is an issued machine credential.
type APIKey struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	KeyPrefix   string
	KeyHash     string
	Permissions []string
	ExpiresAt   *time.Time
	RevokedAt   *time.Time
	LastUsedAt  *time.Time
	CreatedAt   time.Time
}

// New issues a key for owner and returns it together with the raw secret,
// which is never stored.
func New(ownerID uuid.UUID, name string, permissions []string, expiresAt *time.Time) (*APIKey, string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, "", errors.New("api key name cannot be empty")
	}
	if len(permissions) == 0 {
		return nil, "", ErrInvalidPermission
	}
	for _, p := range permissions {
		if !ValidPermission(p) {
			return nil, "", ErrInvalidPermission
		}
	}
	raw, prefix, err := generate()
	if err != nil {
		return nil, "", err
	}
	return &APIKey{
		ID:          uuid.New(),
		OwnerID:     ownerID,
		Name:        name,
		KeyPrefix:   prefix,
		KeyHash:     Hash(raw),
		Permissions: permissions,
		ExpiresAt:   expiresAt,
		CreatedAt:   time.Now().UTC(),
	}, raw, nil
}

func generate() (raw, prefix string, err error) {
	p := make([]byte, prefixBytes)
	if _, err = rand.Read(p); err != nil {
		return "", "", err
	}
	s := make([]byte, secretBytes)
	if _, err = rand.Read(s); err != nil {
		return "", "", err
	}
	prefix = hex.EncodeToString(p)
	return KeyPrefix + "_" + prefix + "_" + hex.EncodeToString(s), prefix, nil
}

// Hash returns the hex SHA-256 of a raw key.
func Hash(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// ParsePrefix extracts the lookup prefix from a raw key.
func ParsePrefix(raw string) (string, error) {
	parts := strings.Split(raw, "_")
	if len(parts) != 3 || parts[0] != KeyPrefix {
		return "", ErrKeyMalformed
	}
	if len(parts[1]) != prefixBytes*2 || len(parts[2]) != secretBytes*2 {
		return "", ErrKeyMalformed
	}
	return parts[1], nil
}

// Matches compares raw against the stored hash in constant time.
func (k *APIKey) Matches(raw string) bool {
	return subtle.ConstantTimeCompare([]byte(Hash(raw)), []byte(k.KeyHash)) == 1
}

// Usable returns nil when the key is neither revoked nor expired at now.
func (k *APIKey) Usable(now time.Time) error {
	if k.RevokedAt != nil {
		return ErrKeyRevoked
	}
	if k.ExpiresAt != nil && !now.Before(*k.ExpiresAt) {
		return ErrKeyExpired
	}
	return nil
}

// HasPermission reports whether the key grants perm ("resource:action").
func (k *APIKey) HasPermission(perm string) bool {
	resource, _, _ := strings.Cut(perm, ":")
	for _, p := range k.Permissions {
		switch {
		case p == Wildcard, p == perm:
			return true
		case strings.HasSuffix(p, ":*") && strings.TrimSuffix(p, ":*") == resource:
			return true
		}
	}
	return false
}

// Revoke marks the key unusable.
func (k *APIKey) Revoke(at time.Time) {
	if k.RevokedAt == nil {
		k.RevokedAt = &at
	}
}

// ValidPermission checks the "resource:action" grammar.
func ValidPermission(p string) bool {
	return permissionPattern.MatchString(p)
}
