package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS vault_event (
		id          UUID PRIMARY KEY,
		seq         BIGINT NOT NULL,
		name        TEXT NOT NULL,
		contract    TEXT NOT NULL,
		payload     JSONB NOT NULL,
		emitted_at  TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS vault_event_contract_idx ON vault_event (contract, emitted_at)`,
	`CREATE TABLE IF NOT EXISTS vault (
		address          TEXT PRIMARY KEY,
		name             TEXT NOT NULL,
		symbol           TEXT NOT NULL,
		owner            TEXT NOT NULL,
		base_asset       TEXT NOT NULL,
		strategy         TEXT NOT NULL,
		risk_tier        SMALLINT NOT NULL,
		target_duration  BIGINT NOT NULL,
		total_assets     NUMERIC(78, 0) NOT NULL,
		total_supply     NUMERIC(78, 0) NOT NULL,
		created          TIMESTAMPTZ NOT NULL,
		updated          TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vault_allocation (
		vault       TEXT NOT NULL REFERENCES vault (address) ON DELETE CASCADE,
		position    INT NOT NULL,
		asset       TEXT NOT NULL,
		weight_bps  INT NOT NULL,
		PRIMARY KEY (vault, asset)
	)`,
}

// EnsureSchema creates the audit tables when they do not exist
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
