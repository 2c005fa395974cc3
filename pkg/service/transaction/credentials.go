package transaction

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/backoffice/pkg/metrics"
	"github.com/amirasaad/backoffice/pkg/repository"
	accountrepo "github.com/amirasaad/backoffice/pkg/repository/account"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// Credential is a merchant access token usable against the gateway.
type Credential struct {
	AccountID   uuid.UUID
	Name        string
	AccessToken string
	Priority    int
}

// CredentialStore keeps active MercadoPago credentials in memory. It loads
// lazily on first use, after ttl, or after Invalidate. Concurrent reloads
// share one database query.
type CredentialStore struct {
	uow    repository.UnitOfWork
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time

	group singleflight.Group

	mu         sync.RWMutex
	creds      []Credential
	loadedAt   time.Time
	loaded     bool
	generation uint64
}

// NewCredentialStore creates an empty store. A zero ttl only reloads on Invalidate.
func NewCredentialStore(uow repository.UnitOfWork, ttl time.Duration, logger *slog.Logger) *CredentialStore {
	return &CredentialStore{
		uow:    uow,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// All returns every credential in priority order.
func (c *CredentialStore) All(ctx context.Context) ([]Credential, error) {
	c.mu.RLock()
	if c.fresh() {
		out := append([]Credential(nil), c.creds...)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("credentials", func() (any, error) {
		return c.load(ctx)
	})
	if err != nil {
		return nil, err
	}
	return append([]Credential(nil), v.([]Credential)...), nil
}

// Ordered returns every credential with hint, when present, moved to the front.
func (c *CredentialStore) Ordered(ctx context.Context, hint *uuid.UUID) ([]Credential, error) {
	all, err := c.All(ctx)
	if err != nil || hint == nil {
		return all, err
	}
	for i, cred := range all {
		if cred.AccountID == *hint {
			out := make([]Credential, 0, len(all))
			out = append(out, cred)
			out = append(out, all[:i]...)
			return append(out, all[i+1:]...), nil
		}
	}
	return all, nil
}

// Get returns the credential of one account.
func (c *CredentialStore) Get(ctx context.Context, accountID uuid.UUID) (Credential, bool, error) {
	all, err := c.All(ctx)
	if err != nil {
		return Credential{}, false, err
	}
	for _, cred := range all {
		if cred.AccountID == accountID {
			return cred, true, nil
		}
	}
	return Credential{}, false, nil
}

// Invalidate forces the next read to reload.
func (c *CredentialStore) Invalidate() {
	c.mu.Lock()
	c.loaded = false
	c.generation++
	c.mu.Unlock()
	c.logger.Debug("credential cache invalidated")
}

// fresh must be called with mu held.
func (c *CredentialStore) fresh() bool {
	if !c.loaded {
		return false
	}
	return c.ttl <= 0 || c.now().Sub(c.loadedAt) < c.ttl
}

func (c *CredentialStore) load(ctx context.Context) ([]Credential, error) {
	c.mu.RLock()
	gen := c.generation
	c.mu.RUnlock()

	repo, err := repository.Repo[accountrepo.Repository](c.uow)
	if err != nil {
		return nil, err
	}
	accounts, err := repo.ListActiveMercadoPago(ctx)
	if err != nil {
		c.logger.Error("failed to load credentials", "error", err)
		return nil, err
	}
	creds := make([]Credential, 0, len(accounts))
	for _, a := range accounts {
		creds = append(creds, Credential{
			AccountID:   a.ID,
			Name:        a.Name,
			AccessToken: a.MPAccessToken,
			Priority:    a.Priority,
		})
	}
	metrics.CredentialReloads.Inc()

	c.mu.Lock()
	// an Invalidate during the query means the result may already be stale
	if gen == c.generation {
		c.creds = creds
		c.loadedAt = c.now()
		c.loaded = true
	}
	c.mu.Unlock()
	c.logger.Info("credential cache loaded", "accounts", len(creds))
	return creds, nil
}
