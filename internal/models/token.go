package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TokenKind separates the deposit denomination from tokenized real-world assets
type TokenKind string

const (
	TokenKindBase TokenKind = "base"
	TokenKindRWA  TokenKind = "rwa"
)

// AssetType is the category label carried by an RWA token
type AssetType string

const (
	AssetTypeCorporateBond  AssetType = "corporate-bond"
	AssetTypeRealEstate     AssetType = "real-estate"
	AssetTypeStartupFund    AssetType = "startup-fund"
	AssetTypeRevenueSharing AssetType = "revenue-sharing"
	AssetTypeCreditPool     AssetType = "credit-risk-pool"
)

// TokenInfo describes a fungible token deployed on the ledger
type TokenInfo struct {
	Address     Address         `json:"address"`
	Kind        TokenKind       `json:"kind"`
	Name        string          `json:"name"`
	Symbol      string          `json:"symbol"`
	Decimals    int32           `json:"decimals"`
	TotalSupply decimal.Decimal `json:"total_supply"`
	Issuer      Address         `json:"issuer"`
	RWA         *RWAMetadata    `json:"rwa,omitempty"`
}

// RWAMetadata is the product data an RWA token exposes alongside its balances.
// A nil Maturity means the product has no fixed term.
type RWAMetadata struct {
	AssetType      AssetType   `json:"asset_type"`
	Maturity       *time.Time  `json:"maturity,omitempty"`
	AnnualYieldBps BasisPoints `json:"annual_yield_bps"`
	RiskTier       uint8       `json:"risk_tier"`
}

// TokenBalance answers balance and allowance queries
type TokenBalance struct {
	Token     Address          `json:"token"`
	Holder    Address          `json:"holder"`
	Balance   decimal.Decimal  `json:"balance"`
	Formatted string           `json:"formatted"`
	Spender   *Address         `json:"spender,omitempty"`
	Allowance *decimal.Decimal `json:"allowance,omitempty"`
}
