package vault

import (
	"bytes"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/util"
)

// BaseLedger moves base-asset tokens on behalf of a vault
type BaseLedger interface {
	TransferFrom(token, spender, from, to models.Address, amount decimal.Decimal) error
}

// Account is one vault: the share ledger plus its allocation table.
// It is not safe for concurrent use; the chain serializes access.
type Account struct {
	*ownable
	*AssetRegistry

	address        models.Address
	factory        models.Address
	baseAsset      models.Address
	name           string
	symbol         string
	strategy       string
	riskTier       uint8
	targetDuration uint64
	createdAt      time.Time

	ledger      BaseLedger
	emit        Emitter
	totalAssets decimal.Decimal
	totalSupply decimal.Decimal
	shares      map[models.Address]decimal.Decimal
}

func newAccount(addr, factory, owner models.Address, cfg models.VaultConfig, ledger BaseLedger, emit Emitter, now time.Time) *Account {
	auth := &ownable{self: addr, owner: owner, emit: emit}
	return &Account{
		ownable:        auth,
		AssetRegistry:  newAssetRegistry(addr, auth, emit),
		address:        addr,
		factory:        factory,
		baseAsset:      cfg.BaseAsset,
		name:           cfg.Name,
		symbol:         cfg.Symbol,
		strategy:       cfg.Strategy,
		riskTier:       cfg.RiskTier,
		targetDuration: cfg.TargetDuration,
		createdAt:      now,
		ledger:         ledger,
		emit:           emit,
		totalAssets:    decimal.Zero,
		totalSupply:    decimal.Zero,
		shares:         make(map[models.Address]decimal.Decimal),
	}
}

func (a *Account) Address() models.Address   { return a.address }
func (a *Account) Factory() models.Address   { return a.factory }
func (a *Account) BaseAsset() models.Address { return a.baseAsset }
func (a *Account) Name() string              { return a.name }
func (a *Account) Symbol() string            { return a.symbol }
func (a *Account) CreatedAt() time.Time      { return a.createdAt }

// Deposit pulls amount of the base asset from caller and mints shares to receiver.
// The caller must have approved the vault for at least amount.
func (a *Account) Deposit(caller models.Address, amount decimal.Decimal, receiver models.Address) (decimal.Decimal, error) {
	if err := util.CheckAmount(amount); err != nil {
		return decimal.Zero, err
	}
	if receiver.IsZero() {
		return decimal.Zero, ErrInvalidReceiver
	}

	shares := a.ConvertToShares(amount)

	if err := a.ledger.TransferFrom(a.baseAsset, a.address, caller, a.address, amount); err != nil {
		return decimal.Zero, err
	}

	a.shares[receiver] = a.shares[receiver].Add(shares)
	a.totalAssets = a.totalAssets.Add(amount)
	a.totalSupply = a.totalSupply.Add(shares)

	a.emit.Emit(Deposit{Vault: a.address, Sender: caller, Owner: receiver, Assets: amount, Shares: shares})
	return shares, nil
}

// PreviewDeposit returns the shares Deposit would mint for amount right now
func (a *Account) PreviewDeposit(amount decimal.Decimal) (decimal.Decimal, error) {
	if err := util.CheckAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return a.ConvertToShares(amount), nil
}

// ConvertToShares is 1:1 while no shares exist, otherwise
// floor(amount * totalSupply / totalAssets).
func (a *Account) ConvertToShares(amount decimal.Decimal) decimal.Decimal {
	if a.totalSupply.IsZero() || a.totalAssets.IsZero() {
		return amount
	}
	q, _ := amount.Mul(a.totalSupply).QuoRem(a.totalAssets, 0)
	return q
}

// ConvertToAssets is the inverse rounding down: floor(shares * totalAssets / totalSupply)
func (a *Account) ConvertToAssets(shares decimal.Decimal) decimal.Decimal {
	if a.totalSupply.IsZero() {
		return shares
	}
	q, _ := shares.Mul(a.totalAssets).QuoRem(a.totalSupply, 0)
	return q
}

// TotalAssets is the sum of all deposited base units
func (a *Account) TotalAssets() decimal.Decimal { return a.totalAssets }

func (a *Account) TotalSupply() decimal.Decimal { return a.totalSupply }

// BalanceOf returns the share balance of holder
func (a *Account) BalanceOf(holder models.Address) decimal.Decimal {
	return a.shares[holder]
}

// Holders returns every address with a non-zero share balance, sorted
func (a *Account) Holders() []models.Address {
	holders := make([]models.Address, 0, len(a.shares))
	for h, s := range a.shares {
		if s.IsPositive() {
			holders = append(holders, h)
		}
	}
	slices.SortFunc(holders, func(x, y models.Address) int {
		return bytes.Compare(x[:], y[:])
	})
	return holders
}

func (a *Account) GetVaultInfo() models.VaultInfo {
	return models.VaultInfo{
		Strategy:       a.strategy,
		RiskTier:       a.riskTier,
		TargetDuration: a.targetDuration,
		AssetCount:     a.GetAssetCount(),
	}
}

// Summary snapshots the vault into its read model
func (a *Account) Summary() models.VaultSummary {
	return models.VaultSummary{
		Address:        a.address,
		Name:           a.name,
		Symbol:         a.symbol,
		Owner:          a.Owner(),
		BaseAsset:      a.baseAsset,
		Info:           a.GetVaultInfo(),
		TotalAssets:    a.totalAssets,
		TotalSupply:    a.totalSupply,
		Allocations:    a.Rows(),
		TotalWeightBps: a.TotalWeight(),
		CreatedAt:      a.createdAt,
	}
}
