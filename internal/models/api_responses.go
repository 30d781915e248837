package models

import (
	"github.com/shopspring/decimal"
)

// CreateVaultRequest represents the request body for creating a vault
type CreateVaultRequest struct {
	BaseAsset      Address       `json:"base_asset"`
	Name           string        `json:"name" binding:"required"`
	Symbol         string        `json:"symbol" binding:"required"`
	Strategy       string        `json:"strategy"`
	RiskTier       uint8         `json:"risk_tier"`
	TargetDuration uint64        `json:"target_duration"`
	Assets         []Address     `json:"assets"`
	Weights        []BasisPoints `json:"weights"`
}

// Config converts the request into a vault configuration
func (r CreateVaultRequest) Config() VaultConfig {
	return VaultConfig{
		BaseAsset:      r.BaseAsset,
		Name:           r.Name,
		Symbol:         r.Symbol,
		Strategy:       r.Strategy,
		RiskTier:       r.RiskTier,
		TargetDuration: r.TargetDuration,
		Assets:         r.Assets,
		Weights:        r.Weights,
	}
}

// AddAssetRequest represents the request body for adding an asset to a vault
type AddAssetRequest struct {
	Asset     Address     `json:"asset"`
	WeightBps BasisPoints `json:"weight_bps"`
}

// UpdateAllocationRequest represents the request body for changing an asset's weight
type UpdateAllocationRequest struct {
	WeightBps BasisPoints `json:"weight_bps"`
}

// DepositRequest represents the request body for a deposit.
// Amount is in base units; Receiver defaults to the caller.
type DepositRequest struct {
	Amount   string   `json:"amount" binding:"required"`
	Receiver *Address `json:"receiver"`
}

// TransferOwnershipRequest represents the request body for an ownership transfer
type TransferOwnershipRequest struct {
	NewOwner Address `json:"new_owner"`
}

// MintRequest represents a faucet mint. Amount is in base units; To defaults to the caller.
type MintRequest struct {
	To     *Address `json:"to"`
	Amount string   `json:"amount" binding:"required"`
}

// ApproveRequest represents an ERC-20 approve call
type ApproveRequest struct {
	Spender Address `json:"spender"`
	Amount  string  `json:"amount" binding:"required"`
}

// RegisterAssetRequest represents the request body for deploying an RWA token
type RegisterAssetRequest struct {
	Name           string       `json:"name" binding:"required"`
	Symbol         string       `json:"symbol" binding:"required"`
	AssetType      AssetType    `json:"asset_type" binding:"required"`
	Maturity       MaturityDate `json:"maturity"`
	AnnualYieldBps BasisPoints  `json:"annual_yield_bps"`
	RiskTier       uint8        `json:"risk_tier"`
	Decimals       *int32       `json:"decimals"`
	InitialSupply  string       `json:"initial_supply"` // whole tokens, like the deploy script
}

// FactoryResponse describes the vault factory
type FactoryResponse struct {
	Address     Address `json:"address"`
	Owner       Address `json:"owner"`
	VaultCount  int     `json:"vault_count"`
	BlockNumber uint64  `json:"block_number"`
}

// VaultResponse wraps a vault summary with any non-fatal warnings
type VaultResponse struct {
	VaultSummary
	Warnings []Warning `json:"warnings,omitempty"`
}

// VaultListResponse lists vault summaries with any non-fatal warnings
type VaultListResponse struct {
	Vaults   []VaultSummary `json:"vaults"`
	Warnings []Warning      `json:"warnings,omitempty"`
}

// AllocationsResponse wraps getAllocations with any non-fatal warnings
type AllocationsResponse struct {
	Allocations
	Warnings []Warning `json:"warnings,omitempty"`
}

// TxResponse is returned by every mutating vault call
type TxResponse struct {
	Block    uint64        `json:"block"`
	Events   []EventDTO    `json:"events"`
	Vault    *VaultSummary `json:"vault,omitempty"`
	Warnings []Warning     `json:"warnings,omitempty"`
}

// EventDTO is an event as returned in a transaction response
type EventDTO struct {
	Name    string      `json:"name"`
	Payload interface{} `json:"payload"`
}

// DepositResponse represents the result of a deposit
type DepositResponse struct {
	Block       uint64          `json:"block"`
	Vault       Address         `json:"vault"`
	Sender      Address         `json:"sender"`
	Receiver    Address         `json:"receiver"`
	Assets      decimal.Decimal `json:"assets"`
	Shares      decimal.Decimal `json:"shares"`
	TotalAssets decimal.Decimal `json:"total_assets"`
	TotalSupply decimal.Decimal `json:"total_supply"`
}

// PreviewDepositResponse represents the shares a deposit would mint
type PreviewDepositResponse struct {
	Vault  Address         `json:"vault"`
	Assets decimal.Decimal `json:"assets"`
	Shares decimal.Decimal `json:"shares"`
}

// SharesResponse is a holder's share balance and its value in base units
type SharesResponse struct {
	Vault       Address         `json:"vault"`
	Holder      Address         `json:"holder"`
	Shares      decimal.Decimal `json:"shares"`
	AssetsValue decimal.Decimal `json:"assets_value"`
}

// RecommendedAsset is one line of a recommended vault's basket
type RecommendedAsset struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Provider    string `json:"provider"`
	Country     string `json:"country"`
	Rating      string `json:"rating"`
	Description string `json:"description"`
}

// RecommendedVault is a static vault suggestion shown on the dashboard
type RecommendedVault struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     string             `json:"description"`
	APR             float64            `json:"apr"`
	MatchPercentage int                `json:"match_percentage"`
	IsNew           bool               `json:"is_new,omitempty"`
	Assets          []RecommendedAsset `json:"assets"`
	RiskTier        uint8              `json:"risk_tier"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
