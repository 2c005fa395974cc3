package cache

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/backoffice/pkg/provider"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache()
	now := time.Now()
	c.now = func() time.Time { return now }

	miss, err := c.Get(ctx, "mp:1")
	require.NoError(t, err)
	assert.Nil(t, miss)

	p := &provider.Payment{ID: "1", Status: provider.PaymentApproved, Amount: decimal.NewFromInt(10)}
	require.NoError(t, c.Set(ctx, "mp:1", p, time.Minute))

	got, err := c.Get(ctx, "mp:1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "1", got.ID)

	got.ID = "mutated"
	again, _ := c.Get(ctx, "mp:1")
	assert.Equal(t, "1", again.ID)

	now = now.Add(2 * time.Minute)
	expired, err := c.Get(ctx, "mp:1")
	require.NoError(t, err)
	assert.Nil(t, expired)

	require.NoError(t, c.Set(ctx, "mp:2", p, time.Hour))
	require.NoError(t, c.Delete(ctx, "mp:2"))
	gone, _ := c.Get(ctx, "mp:2")
	assert.Nil(t, gone)
}
