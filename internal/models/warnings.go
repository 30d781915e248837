package models

// WarningCode categorizes warnings by subsystem.
// W1xxx = tokens, W3xxx = allocation validation.
type WarningCode string

const (
	WarnUnknownAllocationAsset WarningCode = "W1001" // allocation references an address that is not a deployed RWA token
	WarnWeightSumDrift         WarningCode = "W3001" // allocation weights no longer sum to 10000 bps
)

// Warning represents a non-fatal issue encountered during processing.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
