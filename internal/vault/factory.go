package vault

import (
	"fmt"
	"time"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

// Factory validates vault configurations, deploys vaults and keeps the
// directory of every vault it created.
type Factory struct {
	*ownable

	address models.Address
	ledger  BaseLedger
	emit    Emitter
	now     func() time.Time

	nonce  uint64
	vaults []models.Address
	byAddr map[models.Address]*Account
}

// NewFactory deploys a factory at address, owned by owner.
// A nil emitter discards events.
func NewFactory(address, owner models.Address, ledger BaseLedger, emit Emitter) (*Factory, error) {
	if address.IsZero() {
		return nil, fmt.Errorf("%w: factory address is the null address", models.ErrInvalidAddress)
	}
	if owner.IsZero() {
		return nil, ErrInvalidOwner
	}
	if emit == nil {
		emit = discard{}
	}
	f := &Factory{
		ownable: &ownable{self: address, emit: emit},
		address: address,
		ledger:  ledger,
		emit:    emit,
		now:     time.Now,
		byAddr:  make(map[models.Address]*Account),
	}
	f.setOwner(owner)
	return f, nil
}

func (f *Factory) Address() models.Address { return f.address }

// CreateVault validates cfg, deploys the vault, seeds its allocations in
// input order and registers it. Nothing is registered when any step fails.
func (f *Factory) CreateVault(creator models.Address, cfg models.VaultConfig) (*Account, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	addr := models.CreateAddress(f.address, f.nonce+1)
	factoryOwner := f.Owner()
	v := newAccount(addr, f.address, factoryOwner, cfg, f.ledger, f.emit, f.now())
	for i, asset := range cfg.Assets {
		if err := v.addAsset(asset, cfg.Weights[i]); err != nil {
			return nil, err
		}
	}

	f.nonce++
	f.vaults = append(f.vaults, addr)
	f.byAddr[addr] = v

	f.emit.Emit(OwnershipTransferred{Source: addr, PreviousOwner: models.ZeroAddress, NewOwner: factoryOwner})
	if creator != factoryOwner {
		v.setOwner(creator)
	}
	f.emit.Emit(VaultCreated{Factory: f.address, Vault: addr, Creator: creator, Strategy: cfg.Strategy, RiskTier: cfg.RiskTier})
	return v, nil
}

// validateConfig runs the creation checks in their fixed order; the first failure wins
func validateConfig(cfg models.VaultConfig) error {
	if cfg.BaseAsset.IsZero() {
		return ErrInvalidBaseAsset
	}
	if len(cfg.Assets) != len(cfg.Weights) {
		return ErrMismatchedArrays
	}
	if len(cfg.Assets) == 0 {
		return ErrNoAssetsProvided
	}
	var sum uint64
	for _, w := range cfg.Weights {
		sum += uint64(w)
	}
	if sum != uint64(models.MaxBasisPoints) {
		return ErrWeightSumInvalid
	}
	return nil
}

func (f *Factory) IsVault(addr models.Address) bool {
	_, ok := f.byAddr[addr]
	return ok
}

func (f *Factory) GetVaultCount() int {
	return len(f.vaults)
}

// GetAllVaults returns vault addresses in creation order
func (f *Factory) GetAllVaults() []models.Address {
	result := make([]models.Address, len(f.vaults))
	copy(result, f.vaults)
	return result
}

// Vault looks up a vault created by this factory
func (f *Factory) Vault(addr models.Address) (*Account, error) {
	v, ok := f.byAddr[addr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVaultNotFound, addr)
	}
	return v, nil
}

// Vaults returns every vault in creation order
func (f *Factory) Vaults() []*Account {
	result := make([]*Account, len(f.vaults))
	for i, addr := range f.vaults {
		result[i] = f.byAddr[addr]
	}
	return result
}
