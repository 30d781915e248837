package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/mollybeach/honeyvaiult/internal/cache"
	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/events"
	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/util"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

// summaryWorkers bounds the goroutines used to build vault lists
const summaryWorkers = 8

// VaultService handles factory and vault operations against the ledger
type VaultService struct {
	ledger *chain.Chain
	cache  *cache.MemoryCache
	bus    *events.Bus
}

// NewVaultService creates a new VaultService. bus may be nil.
func NewVaultService(ledger *chain.Chain, memCache *cache.MemoryCache, bus *events.Bus) *VaultService {
	return &VaultService{
		ledger: ledger,
		cache:  memCache,
		bus:    bus,
	}
}

// Factory describes the vault factory
func (s *VaultService) Factory(ctx context.Context) (*models.FactoryResponse, error) {
	var resp models.FactoryResponse
	err := s.ledger.Call(func(st *chain.State) error {
		resp = models.FactoryResponse{
			Address:    st.Factory.Address(),
			Owner:      st.Factory.Owner(),
			VaultCount: st.Factory.GetVaultCount(),
		}
		return nil
	})
	resp.BlockNumber = s.ledger.BlockNumber()
	return &resp, err
}

// TransferFactoryOwnership hands the factory to newOwner
func (s *VaultService) TransferFactoryOwnership(ctx context.Context, caller, newOwner models.Address) (*models.TxResponse, error) {
	receipt, err := s.ledger.Transact(func(st *chain.State) error {
		return st.Factory.TransferOwnership(caller, newOwner)
	})
	if err != nil {
		return nil, err
	}
	return s.committed(receipt, nil), nil
}

// CreateVault validates cfg and deploys a vault owned per the factory ownership policy
func (s *VaultService) CreateVault(ctx context.Context, caller models.Address, cfg models.VaultConfig) (*models.TxResponse, error) {
	var summary models.VaultSummary
	receipt, err := s.ledger.Transact(func(st *chain.State) error {
		v, err := st.Factory.CreateVault(caller, cfg)
		if err != nil {
			return err
		}
		summary = s.summarize(st, v)
		warnUnknownAssets(ctx, st, cfg.Assets...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"vault":    summary.Address.String(),
		"creator":  caller.String(),
		"owner":    summary.Owner.String(),
		"strategy": cfg.Strategy,
	}).Info("vault created")
	return s.committed(receipt, &summary), nil
}

// GetVault returns the summary of one vault, served from cache when fresh
func (s *VaultService) GetVault(ctx context.Context, addr models.Address) (*models.VaultSummary, error) {
	defer TrackTime("GetVault", time.Now())

	summary, err := s.cachedSummary(addr)
	if err != nil {
		return nil, err
	}
	checkWeightSum(ctx, summary)
	return &summary, nil
}

// ListVaults returns every vault summary in creation order
func (s *VaultService) ListVaults(ctx context.Context) ([]models.VaultSummary, error) {
	defer TrackTime("ListVaults", time.Now())

	var addrs []models.Address
	if err := s.ledger.Call(func(st *chain.State) error {
		addrs = st.Factory.GetAllVaults()
		return nil
	}); err != nil {
		return nil, err
	}

	summaries := make([]models.VaultSummary, len(addrs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryWorkers)
	for i, addr := range addrs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := s.cachedSummary(addr)
			if err != nil {
				return fmt.Errorf("failed to summarize vault %s: %w", addr, err)
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, summary := range summaries {
		checkWeightSum(ctx, summary)
	}
	return summaries, nil
}

// GetAllocations returns the parallel asset and weight slices of a vault
func (s *VaultService) GetAllocations(ctx context.Context, addr models.Address) (*models.Allocations, error) {
	var allocs models.Allocations
	err := s.ledger.Call(func(st *chain.State) error {
		v, err := st.Factory.Vault(addr)
		if err != nil {
			return err
		}
		allocs = v.GetAllocations()
		checkWeightSum(ctx, models.VaultSummary{Address: addr, TotalWeightBps: v.TotalWeight()})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &allocs, nil
}

// AddAsset appends an asset to a vault's allocation table
func (s *VaultService) AddAsset(ctx context.Context, caller, addr, asset models.Address, weight models.BasisPoints) (*models.TxResponse, error) {
	return s.mutateVault(ctx, addr, func(st *chain.State, v *vault.Account) error {
		if err := v.AddAsset(caller, asset, weight); err != nil {
			return err
		}
		warnUnknownAssets(ctx, st, asset)
		return nil
	})
}

// UpdateAllocation changes the weight of an asset already in the table
func (s *VaultService) UpdateAllocation(ctx context.Context, caller, addr, asset models.Address, weight models.BasisPoints) (*models.TxResponse, error) {
	return s.mutateVault(ctx, addr, func(_ *chain.State, v *vault.Account) error {
		return v.UpdateAllocation(caller, asset, weight)
	})
}

// RemoveAsset removes an asset from a vault's allocation table
func (s *VaultService) RemoveAsset(ctx context.Context, caller, addr, asset models.Address) (*models.TxResponse, error) {
	return s.mutateVault(ctx, addr, func(_ *chain.State, v *vault.Account) error {
		return v.RemoveAsset(caller, asset)
	})
}

// TransferVaultOwnership hands a vault to newOwner
func (s *VaultService) TransferVaultOwnership(ctx context.Context, caller, addr, newOwner models.Address) (*models.TxResponse, error) {
	return s.mutateVault(ctx, addr, func(_ *chain.State, v *vault.Account) error {
		return v.TransferOwnership(caller, newOwner)
	})
}

func (s *VaultService) mutateVault(ctx context.Context, addr models.Address, fn func(*chain.State, *vault.Account) error) (*models.TxResponse, error) {
	var summary models.VaultSummary
	receipt, err := s.ledger.Transact(func(st *chain.State) error {
		v, err := st.Factory.Vault(addr)
		if err != nil {
			return err
		}
		if err := fn(st, v); err != nil {
			return err
		}
		summary = s.summarize(st, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	checkWeightSum(ctx, summary)
	return s.committed(receipt, &summary), nil
}

// Deposit pulls amount of the base asset from caller and mints shares to
// receiver, which defaults to the caller.
func (s *VaultService) Deposit(ctx context.Context, caller, addr models.Address, amount decimal.Decimal, receiver *models.Address) (*models.DepositResponse, error) {
	to := caller
	if receiver != nil {
		to = *receiver
	}

	resp := &models.DepositResponse{Vault: addr, Sender: caller, Receiver: to, Assets: amount}
	receipt, err := s.ledger.Transact(func(st *chain.State) error {
		v, err := st.Factory.Vault(addr)
		if err != nil {
			return err
		}
		shares, err := v.Deposit(caller, amount, to)
		if err != nil {
			return err
		}
		resp.Shares = shares
		resp.TotalAssets = v.TotalAssets()
		resp.TotalSupply = v.TotalSupply()
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.committed(receipt, nil)
	resp.Block = receipt.Block

	log.WithFields(log.Fields{
		"vault":  addr.String(),
		"sender": caller.String(),
		"assets": amount.String(),
		"shares": resp.Shares.String(),
	}).Info("deposit")
	return resp, nil
}

// PreviewDeposit returns the shares a deposit of amount would mint now
func (s *VaultService) PreviewDeposit(ctx context.Context, addr models.Address, amount decimal.Decimal) (*models.PreviewDepositResponse, error) {
	resp := &models.PreviewDepositResponse{Vault: addr, Assets: amount}
	err := s.ledger.Call(func(st *chain.State) error {
		v, err := st.Factory.Vault(addr)
		if err != nil {
			return err
		}
		resp.Shares, err = v.PreviewDeposit(amount)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Shares returns a holder's share balance and its value in base units
func (s *VaultService) Shares(ctx context.Context, addr, holder models.Address) (*models.SharesResponse, error) {
	resp := &models.SharesResponse{Vault: addr, Holder: holder}
	err := s.ledger.Call(func(st *chain.State) error {
		v, err := st.Factory.Vault(addr)
		if err != nil {
			return err
		}
		resp.Shares = v.BalanceOf(holder)
		resp.AssetsValue = v.ConvertToAssets(resp.Shares)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// Positions returns every vault where holder owns shares
func (s *VaultService) Positions(ctx context.Context, holder models.Address) ([]models.Position, error) {
	defer TrackTime("Positions", time.Now())

	positions := make([]models.Position, 0)
	err := s.ledger.Call(func(st *chain.State) error {
		for _, v := range st.Factory.Vaults() {
			shares := v.BalanceOf(holder)
			if !shares.IsPositive() {
				continue
			}
			positions = append(positions, models.Position{
				Vault:       v.Address(),
				Name:        v.Name(),
				Symbol:      v.Symbol(),
				Shares:      shares,
				AssetsValue: v.ConvertToAssets(shares),
			})
		}
		return nil
	})
	return positions, err
}

// Events returns the recorded events of a vault in emission order
func (s *VaultService) Events(ctx context.Context, addr models.Address, limit int) ([]events.Record, error) {
	if err := s.ledger.Call(func(st *chain.State) error {
		_, err := st.Factory.Vault(addr)
		return err
	}); err != nil {
		return nil, err
	}
	if s.bus == nil {
		return []events.Record{}, nil
	}
	return s.bus.Records(events.Filter{Contract: addr, Limit: limit}), nil
}

func (s *VaultService) cachedSummary(addr models.Address) (models.VaultSummary, error) {
	if summary, ok := s.cache.GetSummary(addr); ok {
		return summary, nil
	}
	var summary models.VaultSummary
	err := s.ledger.Call(func(st *chain.State) error {
		v, err := st.Factory.Vault(addr)
		if err != nil {
			return err
		}
		summary = s.summarize(st, v)
		// set while the read lock is held so it cannot overwrite a newer commit
		s.cache.SetSummary(summary)
		return nil
	})
	if err != nil {
		return models.VaultSummary{}, err
	}
	return summary, nil
}

func (s *VaultService) summarize(st *chain.State, v *vault.Account) models.VaultSummary {
	summary := v.Summary()
	if base, err := st.Tokens.Get(v.BaseAsset()); err == nil {
		summary.TotalAssetsFormatted = util.FormatUnits(summary.TotalAssets, base.Decimals())
	}
	return summary
}

// committed invalidates cached summaries touched by the receipt and
// converts it to a response
func (s *VaultService) committed(receipt *chain.Receipt, summary *models.VaultSummary) *models.TxResponse {
	resp := &models.TxResponse{
		Block:  receipt.Block,
		Events: make([]models.EventDTO, 0, len(receipt.Events)),
		Vault:  summary,
	}
	for _, e := range receipt.Events {
		s.cache.Invalidate(e.Contract())
		resp.Events = append(resp.Events, models.EventDTO{Name: e.EventName(), Payload: e})
	}
	return resp
}

func checkWeightSum(ctx context.Context, summary models.VaultSummary) {
	if summary.TotalWeightBps == models.MaxBasisPoints {
		return
	}
	Warnf(ctx, models.WarnWeightSumDrift, "vault %s allocation weights sum to %d bps, not %d",
		summary.Address, summary.TotalWeightBps, models.MaxBasisPoints)
}

func warnUnknownAssets(ctx context.Context, st *chain.State, assets ...models.Address) {
	for _, asset := range assets {
		t, err := st.Tokens.Get(asset)
		if err == nil && t.Info().Kind == models.TokenKindRWA {
			continue
		}
		Warnf(ctx, models.WarnUnknownAllocationAsset, "asset %s is not a deployed RWA token", asset)
	}
}
