package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/mollybeach/honeyvaiult/internal/cache"
	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/events"
	"github.com/mollybeach/honeyvaiult/internal/models"
)

var (
	owner = models.MustParseAddress("0x1000000000000000000000000000000000000001")
	alice = models.MustParseAddress("0x2000000000000000000000000000000000000002")
	bob   = models.MustParseAddress("0x3000000000000000000000000000000000000003")
)

type testEnv struct {
	ledger *chain.Chain
	bus    *events.Bus
	cache  *cache.MemoryCache
	vaults *VaultService
	tokens *TokenService
	seed   *SeedResult
}

// newTestEnv builds a ledger with the embedded demo deployment seeded
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	bus := events.NewBus()
	t.Cleanup(bus.Close)

	ledger, err := chain.New(owner, bus)
	require.NoError(t, err)

	env := &testEnv{
		ledger: ledger,
		bus:    bus,
		cache:  cache.NewMemoryCache(time.Minute),
	}
	env.vaults = NewVaultService(ledger, env.cache, bus)
	env.tokens = NewTokenService(ledger)

	seed, err := LoadSeedFile("")
	require.NoError(t, err)
	env.seed, err = NewSeeder(ledger, env.vaults).Run(context.Background(), seed)
	require.NoError(t, err)
	return env
}

func (e *testEnv) demoVault() models.Address {
	return e.seed.Vaults[0]
}

// fund mints base asset to holder and approves the vault for the same amount
func (e *testEnv) fund(t *testing.T, holder, vaultAddr models.Address, amount int64) {
	t.Helper()
	ctx := context.Background()
	_, err := e.tokens.Mint(ctx, holder, e.seed.BaseAsset, holder, decimal.NewFromInt(amount))
	require.NoError(t, err)
	_, err = e.tokens.Approve(ctx, holder, e.seed.BaseAsset, vaultAddr, decimal.NewFromInt(amount))
	require.NoError(t, err)
}
