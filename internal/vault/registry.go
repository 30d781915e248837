package vault

import (
	"github.com/mollybeach/honeyvaiult/internal/models"
)

// AssetRegistry is the allocation table of one vault. Rows keep insertion
// order; the weight sum is not re-validated after mutation.
type AssetRegistry struct {
	vault   models.Address
	auth    *ownable
	emit    Emitter
	assets  []models.Address
	weights map[models.Address]models.BasisPoints
}

func newAssetRegistry(vault models.Address, auth *ownable, emit Emitter) *AssetRegistry {
	return &AssetRegistry{
		vault:   vault,
		auth:    auth,
		emit:    emit,
		weights: make(map[models.Address]models.BasisPoints),
	}
}

// AddAsset appends asset with the given weight. Owner only.
func (r *AssetRegistry) AddAsset(caller, asset models.Address, weight models.BasisPoints) error {
	if err := r.auth.checkOwner(caller); err != nil {
		return err
	}
	return r.addAsset(asset, weight)
}

func (r *AssetRegistry) addAsset(asset models.Address, weight models.BasisPoints) error {
	if err := r.checkAdd(asset, weight); err != nil {
		return err
	}
	r.assets = append(r.assets, asset)
	r.weights[asset] = weight
	return nil
}

func (r *AssetRegistry) checkAdd(asset models.Address, weight models.BasisPoints) error {
	if asset.IsZero() {
		return ErrInvalidAsset
	}
	if err := checkWeight(weight); err != nil {
		return err
	}
	if _, exists := r.weights[asset]; exists {
		return ErrDuplicateAsset
	}
	return nil
}

// UpdateAllocation replaces the weight of an existing asset in place. Owner only.
func (r *AssetRegistry) UpdateAllocation(caller, asset models.Address, weight models.BasisPoints) error {
	if err := r.auth.checkOwner(caller); err != nil {
		return err
	}
	old, exists := r.weights[asset]
	if !exists {
		return ErrAssetNotFound
	}
	if err := checkWeight(weight); err != nil {
		return err
	}
	r.weights[asset] = weight
	r.emit.Emit(AllocationUpdated{Vault: r.vault, Asset: asset, OldWeight: old, NewWeight: weight})
	return nil
}

// RemoveAsset drops asset from the table, preserving the order of the rest. Owner only.
func (r *AssetRegistry) RemoveAsset(caller, asset models.Address) error {
	if err := r.auth.checkOwner(caller); err != nil {
		return err
	}
	if _, exists := r.weights[asset]; !exists {
		return ErrAssetNotFound
	}
	for i, a := range r.assets {
		if a == asset {
			r.assets = append(r.assets[:i:i], r.assets[i+1:]...)
			break
		}
	}
	delete(r.weights, asset)
	r.emit.Emit(AssetRemoved{Vault: r.vault, Asset: asset})
	return nil
}

// GetAllocations returns the parallel asset and weight slices in insertion order
func (r *AssetRegistry) GetAllocations() models.Allocations {
	result := models.Allocations{
		Assets:  make([]models.Address, len(r.assets)),
		Weights: make([]models.BasisPoints, len(r.assets)),
	}
	for i, a := range r.assets {
		result.Assets[i] = a
		result.Weights[i] = r.weights[a]
	}
	return result
}

// Rows returns the allocation table as (asset, weight) pairs
func (r *AssetRegistry) Rows() []models.Allocation {
	rows := make([]models.Allocation, len(r.assets))
	for i, a := range r.assets {
		rows[i] = models.Allocation{Asset: a, WeightBps: r.weights[a]}
	}
	return rows
}

func (r *AssetRegistry) IsSupportedAsset(asset models.Address) bool {
	_, ok := r.weights[asset]
	return ok
}

func (r *AssetRegistry) GetAssetCount() int {
	return len(r.assets)
}

// WeightOf returns the weight of asset and whether it is present
func (r *AssetRegistry) WeightOf(asset models.Address) (models.BasisPoints, bool) {
	w, ok := r.weights[asset]
	return w, ok
}

// TotalWeight sums the current weights; it may drift from 10000 after edits
func (r *AssetRegistry) TotalWeight() models.BasisPoints {
	var total models.BasisPoints
	for _, w := range r.weights {
		total += w
	}
	return total
}

func checkWeight(weight models.BasisPoints) error {
	if weight == 0 {
		return ErrZeroWeight
	}
	if weight > models.MaxBasisPoints {
		return ErrWeightOutOfRange
	}
	return nil
}
