package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

var vaultAddr = models.MustParseAddress("0xaa00000000000000000000000000000000000001")

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	_, ok := c.GetSummary(vaultAddr)
	assert.False(t, ok)

	c.SetSummary(models.VaultSummary{Address: vaultAddr, Name: "Balanced"})
	got, ok := c.GetSummary(vaultAddr)
	assert.True(t, ok)
	assert.Equal(t, "Balanced", got.Name)
}

func TestMemoryCache_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewMemoryCache(30 * time.Second)
	c.now = func() time.Time { return now }

	c.SetSummary(models.VaultSummary{Address: vaultAddr})
	now = now.Add(30 * time.Second)
	_, ok := c.GetSummary(vaultAddr)
	assert.True(t, ok)

	now = now.Add(time.Second)
	_, ok = c.GetSummary(vaultAddr)
	assert.False(t, ok)
}

func TestMemoryCache_InvalidateAndClear(t *testing.T) {
	other := models.MustParseAddress("0xbb00000000000000000000000000000000000002")
	c := NewMemoryCache(time.Minute)
	c.SetSummary(models.VaultSummary{Address: vaultAddr})
	c.SetSummary(models.VaultSummary{Address: other})

	c.Invalidate(vaultAddr)
	_, ok := c.GetSummary(vaultAddr)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestMemoryCache_ZeroTTLDisables(t *testing.T) {
	c := NewMemoryCache(0)
	c.SetSummary(models.VaultSummary{Address: vaultAddr})
	assert.Equal(t, 0, c.Len())
}
