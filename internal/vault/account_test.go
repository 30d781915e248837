package vault

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/token"
	"github.com/mollybeach/honeyvaiult/internal/util"
)

func TestDeposit_FirstDepositIsOneToOne(t *testing.T) {
	v, ledger, rec := newTestVault(t)
	ledger.On("TransferFrom", usdc, v.Address(), bob, v.Address(), matchAmount(1000)).Return(nil)

	shares, err := v.Deposit(bob, amount(1000), bob)
	require.NoError(t, err)

	assert.Equal(t, "1000", shares.String())
	assert.Equal(t, "1000", v.TotalAssets().String())
	assert.Equal(t, "1000", v.TotalSupply().String())
	assert.Equal(t, "1000", v.BalanceOf(bob).String())
	ledger.AssertExpectations(t)

	require.Len(t, rec.events, 1)
	dep := rec.events[0].(Deposit)
	assert.Equal(t, bob, dep.Sender)
	assert.Equal(t, bob, dep.Owner)
	assert.Equal(t, "1000", dep.Assets.String())
	assert.Equal(t, "1000", dep.Shares.String())
}

func TestDeposit_Sequential(t *testing.T) {
	v, ledger, _ := newTestVault(t)
	ledger.On("TransferFrom", usdc, v.Address(), mock.Anything, v.Address(), mock.Anything).Return(nil)

	_, err := v.Deposit(alice, amount(1000), alice)
	require.NoError(t, err)
	shares, err := v.Deposit(bob, amount(500), bob)
	require.NoError(t, err)

	assert.Equal(t, "500", shares.String())
	assert.Equal(t, "1500", v.TotalAssets().String())
	assert.True(t, v.BalanceOf(alice).IsPositive())
	assert.True(t, v.BalanceOf(bob).IsPositive())
	assert.Equal(t, []models.Address{alice, bob}, v.Holders())
}

func TestDeposit_ReceiverDiffersFromSender(t *testing.T) {
	v, ledger, rec := newTestVault(t)
	ledger.On("TransferFrom", usdc, v.Address(), alice, v.Address(), matchAmount(42)).Return(nil)

	_, err := v.Deposit(alice, amount(42), bob)
	require.NoError(t, err)
	assert.True(t, v.BalanceOf(alice).IsZero())
	assert.Equal(t, "42", v.BalanceOf(bob).String())

	dep := rec.events[0].(Deposit)
	assert.Equal(t, alice, dep.Sender)
	assert.Equal(t, bob, dep.Owner)
}

func TestDeposit_ProportionalRoundsDown(t *testing.T) {
	v, _, _ := newTestVault(t)
	// shares can diverge from assets only through accounting not modeled by
	// deposits; set the counters directly to exercise the rounding
	v.totalAssets = amount(3)
	v.totalSupply = amount(2)

	assert.Equal(t, "6", v.ConvertToShares(amount(10)).String())
	assert.Equal(t, "0", v.ConvertToShares(amount(1)).String())
	assert.Equal(t, "1", v.ConvertToAssets(amount(1)).String())

	preview, err := v.PreviewDeposit(amount(10))
	require.NoError(t, err)
	assert.Equal(t, "6", preview.String())
}

func TestDeposit_DependencyErrorsPropagate(t *testing.T) {
	for _, depErr := range []error{token.ErrInsufficientAllowance, token.ErrInsufficientBalance} {
		t.Run(depErr.Error(), func(t *testing.T) {
			v, ledger, rec := newTestVault(t)
			ledger.On("TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
				Return(fmt.Errorf("%w: details", depErr))

			shares, err := v.Deposit(bob, amount(1000), bob)
			assert.ErrorIs(t, err, depErr)
			assert.Equal(t, KindDependency, KindOf(err))
			assert.True(t, shares.IsZero())
			assert.True(t, v.TotalAssets().IsZero())
			assert.True(t, v.TotalSupply().IsZero())
			assert.True(t, v.BalanceOf(bob).IsZero())
			assert.Empty(t, rec.events)
		})
	}
}

func TestDeposit_InvalidInput(t *testing.T) {
	v, ledger, _ := newTestVault(t)

	_, err := v.Deposit(bob, amount(-1), bob)
	assert.ErrorIs(t, err, util.ErrInvalidAmount)

	_, err = v.Deposit(bob, amount(1000).Div(amount(3)), bob)
	assert.ErrorIs(t, err, util.ErrInvalidAmount)

	_, err = v.Deposit(bob, amount(10), models.ZeroAddress)
	assert.ErrorIs(t, err, ErrInvalidReceiver)
	assert.Equal(t, KindValidation, KindOf(err))

	ledger.AssertNotCalled(t, "TransferFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeposit_WithTokenLedger(t *testing.T) {
	tokens := token.NewRegistry()
	base, err := tokens.Deploy(models.TokenInfo{Address: usdc, Kind: models.TokenKindBase, Name: "Mock USDC", Symbol: "USDC", Decimals: 6})
	require.NoError(t, err)

	f, err := NewFactory(factoryAddr, factoryOwner, tokens, nil)
	require.NoError(t, err)
	v, err := f.CreateVault(alice, singleAssetConfig())
	require.NoError(t, err)

	require.NoError(t, base.Mint(bob, amount(1500)))

	_, err = v.Deposit(bob, amount(1000), bob)
	assert.ErrorIs(t, err, token.ErrInsufficientAllowance)

	require.NoError(t, base.Approve(bob, v.Address(), amount(5000)))
	_, err = v.Deposit(bob, amount(2000), bob)
	assert.ErrorIs(t, err, token.ErrInsufficientBalance)

	_, err = v.Deposit(bob, amount(1000), bob)
	require.NoError(t, err)
	_, err = v.Deposit(bob, amount(500), bob)
	require.NoError(t, err)

	assert.Equal(t, "1500", v.TotalAssets().String())
	assert.Equal(t, "1500", base.BalanceOf(v.Address()).String())
	assert.True(t, base.BalanceOf(bob).IsZero())
	assert.Equal(t, "3500", base.Allowance(bob, v.Address()).String())
}

func TestVaultOwnership(t *testing.T) {
	v, _, rec := newTestVault(t)

	assert.ErrorIs(t, v.TransferOwnership(bob, bob), ErrUnauthorized)
	assert.ErrorIs(t, v.TransferOwnership(alice, models.ZeroAddress), ErrInvalidOwner)

	require.NoError(t, v.TransferOwnership(alice, bob))
	assert.Equal(t, bob, v.Owner())
	assert.Equal(t, OwnershipTransferred{Source: v.Address(), PreviousOwner: alice, NewOwner: bob}, rec.events[0])

	assert.ErrorIs(t, v.AddAsset(alice, startup, 100), ErrUnauthorized)
	assert.NoError(t, v.AddAsset(bob, startup, 100))
}

func TestSummary(t *testing.T) {
	v, _, _ := newTestVault(t)
	s := v.Summary()
	assert.Equal(t, v.Address(), s.Address)
	assert.Equal(t, "BAL-VAULT", s.Symbol)
	assert.Equal(t, alice, s.Owner)
	assert.Equal(t, usdc, s.BaseAsset)
	assert.Equal(t, []models.Allocation{{Asset: bond, WeightBps: 10000}}, s.Allocations)
	assert.Equal(t, models.BasisPoints(10000), s.TotalWeightBps)
	assert.True(t, s.TotalAssets.IsZero())
}
