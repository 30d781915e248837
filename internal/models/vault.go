package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BasisPoints is a weight in 1/100 of a percent
type BasisPoints uint32

// MaxBasisPoints is 100%
const MaxBasisPoints BasisPoints = 10000

// VaultConfig is the creation-time description of a vault.
// Assets and Weights are parallel slices.
type VaultConfig struct {
	BaseAsset      Address       `json:"base_asset"`
	Name           string        `json:"name"`
	Symbol         string        `json:"symbol"`
	Strategy       string        `json:"strategy"`
	RiskTier       uint8         `json:"risk_tier"`
	TargetDuration uint64        `json:"target_duration"` // seconds, 0 = no fixed term
	Assets         []Address     `json:"assets"`
	Weights        []BasisPoints `json:"weights"`
}

// Allocation is one row of a vault's allocation table
type Allocation struct {
	Asset     Address     `json:"asset"`
	WeightBps BasisPoints `json:"weight_bps"`
}

// Allocations is the parallel-slice view returned by getAllocations
type Allocations struct {
	Assets  []Address     `json:"assets"`
	Weights []BasisPoints `json:"weights"`
}

// VaultInfo mirrors getVaultInfo: strategy, risk, duration and asset count
type VaultInfo struct {
	Strategy       string `json:"strategy"`
	RiskTier       uint8  `json:"risk_tier"`
	TargetDuration uint64 `json:"target_duration"`
	AssetCount     int    `json:"asset_count"`
}

// VaultSummary is the read model served for a single vault
type VaultSummary struct {
	Address              Address         `json:"address"`
	Name                 string          `json:"name"`
	Symbol               string          `json:"symbol"`
	Owner                Address         `json:"owner"`
	BaseAsset            Address         `json:"base_asset"`
	Info                 VaultInfo       `json:"info"`
	TotalAssets          decimal.Decimal `json:"total_assets"`
	TotalAssetsFormatted string          `json:"total_assets_formatted,omitempty"`
	TotalSupply          decimal.Decimal `json:"total_supply"`
	Allocations          []Allocation    `json:"allocations"`
	TotalWeightBps       BasisPoints     `json:"total_weight_bps"`
	CreatedAt            time.Time       `json:"created_at"`
}

// Position is a holder's share balance in one vault
type Position struct {
	Vault       Address         `json:"vault"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Shares      decimal.Decimal `json:"shares"`
	AssetsValue decimal.Decimal `json:"assets_value"`
}
