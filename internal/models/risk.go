package models

import "time"

// RiskSignature is the simulated risk profile of an RWA token. Scores are on a
// 0-100 scale; a lower CounterpartyRisk is better.
type RiskSignature struct {
	Asset            Address   `json:"asset_address"`
	AssetType        AssetType `json:"asset_type"`
	RiskTier         uint8     `json:"risk_tier"`
	AnnualYield      float64   `json:"annual_yield"` // percent
	MaturityDays     int64     `json:"maturity_days"`
	CreditScore      float64   `json:"credit_score"`
	Volatility       float64   `json:"volatility"` // annualized
	LiquidityScore   float64   `json:"liquidity_score"`
	CounterpartyRisk float64   `json:"counterparty_risk"`
	Duration         float64   `json:"duration"` // years
	SimulatedAt      time.Time `json:"simulated_at"`
}
