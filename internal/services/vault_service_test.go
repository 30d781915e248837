package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/token"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

func TestVaultService_DemoVault(t *testing.T) {
	env := newTestEnv(t)
	ctx, wc := NewWarningContext(context.Background())

	summary, err := env.vaults.GetVault(ctx, env.demoVault())
	require.NoError(t, err)

	assert.Equal(t, "Balanced Diversified Vault", summary.Name)
	assert.Equal(t, "BAL-VAULT", summary.Symbol)
	assert.Equal(t, owner, summary.Owner)
	assert.Equal(t, env.seed.BaseAsset, summary.BaseAsset)
	assert.Equal(t, uint64(1095*24*60*60), summary.Info.TargetDuration)
	assert.Equal(t, 3, summary.Info.AssetCount)
	assert.Equal(t, []models.Allocation{
		{Asset: env.seed.RWATokens["bond"], WeightBps: 4000},
		{Asset: env.seed.RWATokens["real-estate"], WeightBps: 4000},
		{Asset: env.seed.RWATokens["startup"], WeightBps: 2000},
	}, summary.Allocations)
	assert.Equal(t, "0", summary.TotalAssetsFormatted)
	assert.Empty(t, wc.List())

	factory, err := env.vaults.Factory(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, factory.VaultCount)
	assert.Equal(t, owner, factory.Owner)
}

func TestVaultService_CreateVault(t *testing.T) {
	env := newTestEnv(t)
	ctx, wc := NewWarningContext(context.Background())

	unknown := models.MustParseAddress("0x9999999999999999999999999999999999999999")
	resp, err := env.vaults.CreateVault(ctx, alice, models.VaultConfig{
		BaseAsset: env.seed.BaseAsset,
		Name:      "Bond Only",
		Symbol:    "BOND-V",
		Strategy:  "conservative",
		RiskTier:  2,
		Assets:    []models.Address{env.seed.RWATokens["bond"], unknown},
		Weights:   []models.BasisPoints{9000, 1000},
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Vault)
	assert.Equal(t, alice, resp.Vault.Owner)
	names := make([]string, len(resp.Events))
	for i, e := range resp.Events {
		names[i] = e.Name
	}
	assert.Equal(t, []string{"OwnershipTransferred", "OwnershipTransferred", "VaultCreated"}, names)

	warnings := wc.List()
	require.Len(t, warnings, 1)
	assert.Equal(t, models.WarnUnknownAllocationAsset, warnings[0].Code)

	list, err := env.vaults.ListVaults(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, env.demoVault(), list[0].Address)
	assert.Equal(t, resp.Vault.Address, list[1].Address)
}

func TestVaultService_CreateVault_ValidationError(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.vaults.CreateVault(context.Background(), alice, models.VaultConfig{
		BaseAsset: env.seed.BaseAsset,
		Assets:    []models.Address{env.seed.RWATokens["bond"]},
		Weights:   []models.BasisPoints{9999},
	})
	assert.ErrorIs(t, err, vault.ErrWeightSumInvalid)

	factory, err := env.vaults.Factory(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, factory.VaultCount)
}

func TestVaultService_AllocationDriftWarning(t *testing.T) {
	env := newTestEnv(t)
	bond := env.seed.RWATokens["bond"]

	ctx, wc := NewWarningContext(context.Background())
	resp, err := env.vaults.UpdateAllocation(ctx, owner, env.demoVault(), bond, 3000)
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "AllocationUpdated", resp.Events[0].Name)
	assert.Equal(t, vault.AllocationUpdated{Vault: env.demoVault(), Asset: bond, OldWeight: 4000, NewWeight: 3000}, resp.Events[0].Payload)
	require.Len(t, wc.List(), 1)
	assert.True(t, wc.Has(models.WarnWeightSumDrift))

	// the cached summary was invalidated by the commit
	summary, err := env.vaults.GetVault(context.Background(), env.demoVault())
	require.NoError(t, err)
	assert.Equal(t, models.BasisPoints(9000), summary.TotalWeightBps)

	_, err = env.vaults.AddAsset(context.Background(), owner, env.demoVault(), models.MustParseAddress("0x9999999999999999999999999999999999999999"), 1000)
	require.NoError(t, err)

	ctx, wc = NewWarningContext(context.Background())
	allocs, err := env.vaults.GetAllocations(ctx, env.demoVault())
	require.NoError(t, err)
	assert.Len(t, allocs.Assets, 4)
	assert.Empty(t, wc.List(), "weights are back at 10000")
}

func TestVaultService_MutationErrors(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	bond := env.seed.RWATokens["bond"]

	_, err := env.vaults.AddAsset(ctx, alice, env.demoVault(), bond, 100)
	assert.ErrorIs(t, err, vault.ErrUnauthorized)

	_, err = env.vaults.AddAsset(ctx, owner, env.demoVault(), bond, 100)
	assert.ErrorIs(t, err, vault.ErrDuplicateAsset)

	_, err = env.vaults.RemoveAsset(ctx, owner, env.demoVault(), alice)
	assert.ErrorIs(t, err, vault.ErrAssetNotFound)

	_, err = env.vaults.RemoveAsset(ctx, owner, alice, bond)
	assert.ErrorIs(t, err, vault.ErrVaultNotFound)

	_, err = env.vaults.GetVault(ctx, alice)
	assert.ErrorIs(t, err, vault.ErrVaultNotFound)
}

func TestVaultService_Deposit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	v := env.demoVault()

	env.fund(t, alice, v, 1000)
	env.fund(t, bob, v, 500)

	first, err := env.vaults.Deposit(ctx, alice, v, decimal.NewFromInt(1000), nil)
	require.NoError(t, err)
	assert.Equal(t, "1000", first.Shares.String())
	assert.Equal(t, alice, first.Receiver)

	second, err := env.vaults.Deposit(ctx, bob, v, decimal.NewFromInt(500), nil)
	require.NoError(t, err)
	assert.Equal(t, "500", second.Shares.String())
	assert.Equal(t, "1500", second.TotalAssets.String())

	summary, err := env.vaults.GetVault(ctx, v)
	require.NoError(t, err)
	assert.Equal(t, "1500", summary.TotalAssets.String())
	assert.Equal(t, "0.0015", summary.TotalAssetsFormatted)

	shares, err := env.vaults.Shares(ctx, v, bob)
	require.NoError(t, err)
	assert.Equal(t, "500", shares.Shares.String())
	assert.Equal(t, "500", shares.AssetsValue.String())

	preview, err := env.vaults.PreviewDeposit(ctx, v, decimal.NewFromInt(300))
	require.NoError(t, err)
	assert.Equal(t, "300", preview.Shares.String())

	positions, err := env.vaults.Positions(ctx, alice)
	require.NoError(t, err)
	require.Len(t, positions, 1)
	assert.Equal(t, v, positions[0].Vault)
	assert.Equal(t, "1000", positions[0].Shares.String())

	positions, err = env.vaults.Positions(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, positions)
}

func TestVaultService_DepositWithoutApproval(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	v := env.demoVault()

	_, err := env.tokens.Mint(ctx, alice, env.seed.BaseAsset, alice, decimal.NewFromInt(1000))
	require.NoError(t, err)

	_, err = env.vaults.Deposit(ctx, alice, v, decimal.NewFromInt(1000), nil)
	assert.ErrorIs(t, err, token.ErrInsufficientAllowance)

	summary, err := env.vaults.GetVault(ctx, v)
	require.NoError(t, err)
	assert.True(t, summary.TotalAssets.IsZero())

	evts, err := env.vaults.Events(ctx, v, 0)
	require.NoError(t, err)
	for _, e := range evts {
		assert.NotEqual(t, "Deposit", e.Name)
	}
}

func TestVaultService_Ownership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	v := env.demoVault()

	_, err := env.vaults.TransferVaultOwnership(ctx, alice, v, alice)
	assert.ErrorIs(t, err, vault.ErrUnauthorized)

	resp, err := env.vaults.TransferVaultOwnership(ctx, owner, v, alice)
	require.NoError(t, err)
	assert.Equal(t, alice, resp.Vault.Owner)

	_, err = env.vaults.TransferFactoryOwnership(ctx, owner, bob)
	require.NoError(t, err)
	factory, err := env.vaults.Factory(ctx)
	require.NoError(t, err)
	assert.Equal(t, bob, factory.Owner)
}

func TestVaultService_Events(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	v := env.demoVault()

	_, err := env.vaults.RemoveAsset(ctx, owner, v, env.seed.RWATokens["startup"])
	require.NoError(t, err)

	evts, err := env.vaults.Events(ctx, v, 0)
	require.NoError(t, err)
	names := make([]string, len(evts))
	for i, e := range evts {
		names[i] = e.Name
	}
	// VaultCreated is emitted by the factory, not the vault
	assert.Equal(t, []string{"OwnershipTransferred", "AssetRemoved"}, names)

	_, err = env.vaults.Events(ctx, alice, 0)
	assert.ErrorIs(t, err, vault.ErrVaultNotFound)
}
