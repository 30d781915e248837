package vault

import (
	"github.com/shopspring/decimal"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

// Event is a notification emitted by a contract after a successful call
type Event interface {
	// EventName is the event signature name, e.g. "VaultCreated"
	EventName() string
	// Contract is the address of the emitting contract
	Contract() models.Address
}

// Emitter receives events in emission order
type Emitter interface {
	Emit(Event)
}

// EmitterFunc adapts a function into an Emitter
type EmitterFunc func(Event)

func (f EmitterFunc) Emit(e Event) { f(e) }

type discard struct{}

func (discard) Emit(Event) {}

// VaultCreated is emitted by the factory
type VaultCreated struct {
	Factory  models.Address `json:"factory"`
	Vault    models.Address `json:"vault"`
	Creator  models.Address `json:"creator"`
	Strategy string         `json:"strategy"`
	RiskTier uint8          `json:"risk_tier"`
}

func (e VaultCreated) EventName() string        { return "VaultCreated" }
func (e VaultCreated) Contract() models.Address { return e.Factory }

// AllocationUpdated is emitted when an asset's weight changes
type AllocationUpdated struct {
	Vault     models.Address     `json:"vault"`
	Asset     models.Address     `json:"asset"`
	OldWeight models.BasisPoints `json:"old_weight"`
	NewWeight models.BasisPoints `json:"new_weight"`
}

func (e AllocationUpdated) EventName() string        { return "AllocationUpdated" }
func (e AllocationUpdated) Contract() models.Address { return e.Vault }

// AssetRemoved is emitted when an asset leaves the allocation table
type AssetRemoved struct {
	Vault models.Address `json:"vault"`
	Asset models.Address `json:"asset"`
}

func (e AssetRemoved) EventName() string        { return "AssetRemoved" }
func (e AssetRemoved) Contract() models.Address { return e.Vault }

// Deposit follows the ERC-4626 event: sender paid assets, owner received shares
type Deposit struct {
	Vault  models.Address  `json:"vault"`
	Sender models.Address  `json:"sender"`
	Owner  models.Address  `json:"owner"`
	Assets decimal.Decimal `json:"assets"`
	Shares decimal.Decimal `json:"shares"`
}

func (e Deposit) EventName() string        { return "Deposit" }
func (e Deposit) Contract() models.Address { return e.Vault }

// OwnershipTransferred is emitted by the factory and by vaults
type OwnershipTransferred struct {
	Source        models.Address `json:"contract"`
	PreviousOwner models.Address `json:"previous_owner"`
	NewOwner      models.Address `json:"new_owner"`
}

func (e OwnershipTransferred) EventName() string        { return "OwnershipTransferred" }
func (e OwnershipTransferred) Contract() models.Address { return e.Source }
