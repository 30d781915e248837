package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

var ErrVaultNotFound = errors.New("vault snapshot not found")

// VaultRepository stores point-in-time snapshots of vault state
type VaultRepository struct {
	pool *pgxpool.Pool
}

// NewVaultRepository creates a new VaultRepository
func NewVaultRepository(pool *pgxpool.Pool) *VaultRepository {
	return &VaultRepository{pool: pool}
}

// BeginTx starts a new transaction
func (r *VaultRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return r.pool.Begin(ctx)
}

// SaveSnapshot replaces the stored snapshot of a vault, allocations included
func (r *VaultRepository) SaveSnapshot(ctx context.Context, s *models.VaultSummary) error {
	tx, err := r.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO vault (address, name, symbol, owner, base_asset, strategy, risk_tier, target_duration,
			total_assets, total_supply, created, updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10::numeric, $11, NOW())
		ON CONFLICT (address) DO UPDATE SET
			owner = EXCLUDED.owner,
			total_assets = EXCLUDED.total_assets,
			total_supply = EXCLUDED.total_supply,
			updated = NOW()
	`
	_, err = tx.Exec(ctx, query,
		s.Address, s.Name, s.Symbol, s.Owner, s.BaseAsset, s.Info.Strategy, int16(s.Info.RiskTier),
		int64(s.Info.TargetDuration), s.TotalAssets.String(), s.TotalSupply.String(), s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert vault: %w", err)
	}

	if err := r.replaceAllocations(ctx, tx, s.Address, s.Allocations); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *VaultRepository) replaceAllocations(ctx context.Context, tx pgx.Tx, vault models.Address, allocs []models.Allocation) error {
	if _, err := tx.Exec(ctx, `DELETE FROM vault_allocation WHERE vault = $1`, vault); err != nil {
		return fmt.Errorf("failed to delete allocations: %w", err)
	}
	query := `
		INSERT INTO vault_allocation (vault, position, asset, weight_bps)
		VALUES ($1, $2, $3, $4)
	`
	for i, a := range allocs {
		if _, err := tx.Exec(ctx, query, vault, i, a.Asset, int32(a.WeightBps)); err != nil {
			return fmt.Errorf("failed to insert allocation: %w", err)
		}
	}
	return nil
}

// GetByAddress retrieves the latest snapshot of a vault
func (r *VaultRepository) GetByAddress(ctx context.Context, addr models.Address) (*models.VaultSummary, error) {
	query := `
		SELECT address, name, symbol, owner, base_asset, strategy, risk_tier, target_duration,
			total_assets::text, total_supply::text, created
		FROM vault
		WHERE address = $1
	`
	s := &models.VaultSummary{}
	var riskTier int16
	var duration int64
	var totalAssets, totalSupply string
	err := r.pool.QueryRow(ctx, query, addr).Scan(
		&s.Address, &s.Name, &s.Symbol, &s.Owner, &s.BaseAsset, &s.Info.Strategy, &riskTier, &duration,
		&totalAssets, &totalSupply, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrVaultNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get vault: %w", err)
	}
	s.Info.RiskTier = uint8(riskTier)
	s.Info.TargetDuration = uint64(duration)
	if s.TotalAssets, err = decimal.NewFromString(totalAssets); err != nil {
		return nil, fmt.Errorf("failed to parse total_assets: %w", err)
	}
	if s.TotalSupply, err = decimal.NewFromString(totalSupply); err != nil {
		return nil, fmt.Errorf("failed to parse total_supply: %w", err)
	}

	s.Allocations, err = r.GetAllocations(ctx, addr)
	if err != nil {
		return nil, err
	}
	s.Info.AssetCount = len(s.Allocations)
	for _, a := range s.Allocations {
		s.TotalWeightBps += a.WeightBps
	}
	return s, nil
}

// GetAllocations retrieves a vault's stored allocation rows in table order
func (r *VaultRepository) GetAllocations(ctx context.Context, addr models.Address) ([]models.Allocation, error) {
	query := `
		SELECT asset, weight_bps
		FROM vault_allocation
		WHERE vault = $1
		ORDER BY position
	`
	rows, err := r.pool.Query(ctx, query, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to query allocations: %w", err)
	}
	defer rows.Close()

	allocs := make([]models.Allocation, 0)
	for rows.Next() {
		var a models.Allocation
		var weight int32
		if err := rows.Scan(&a.Asset, &weight); err != nil {
			return nil, fmt.Errorf("failed to scan allocation: %w", err)
		}
		a.WeightBps = models.BasisPoints(weight)
		allocs = append(allocs, a)
	}
	return allocs, rows.Err()
}

// Delete removes a vault snapshot and its allocations
func (r *VaultRepository) Delete(ctx context.Context, addr models.Address) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM vault WHERE address = $1`, addr)
	if err != nil {
		return fmt.Errorf("failed to delete vault: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrVaultNotFound
	}
	return nil
}
