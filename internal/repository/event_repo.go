package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

// EventRepository handles the persisted event audit log
type EventRepository struct {
	pool *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(pool *pgxpool.Pool) *EventRepository {
	return &EventRepository{pool: pool}
}

// Insert appends an event. Re-inserting the same ID is a no-op.
func (r *EventRepository) Insert(ctx context.Context, e *models.EventLogEntry) error {
	query := `
		INSERT INTO vault_event (id, seq, name, contract, payload, emitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := r.pool.Exec(ctx, query, e.ID, int64(e.Seq), e.Name, e.Contract, []byte(e.Payload), e.At)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

// ListByContract retrieves the events emitted by a contract, oldest first.
// A limit of zero returns every event.
func (r *EventRepository) ListByContract(ctx context.Context, contract models.Address, limit int) ([]models.EventLogEntry, error) {
	var maxRows *int
	if limit > 0 {
		maxRows = &limit
	}
	query := `
		SELECT id, seq, name, contract, payload, emitted_at
		FROM vault_event
		WHERE contract = $1
		ORDER BY emitted_at, seq
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, contract, maxRows)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	entries := make([]models.EventLogEntry, 0)
	for rows.Next() {
		var e models.EventLogEntry
		var seq int64
		var payload []byte
		if err := rows.Scan(&e.ID, &seq, &e.Name, &e.Contract, &payload, &e.At); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		e.Seq = uint64(seq)
		e.Payload = payload
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DeleteByContract removes the events of a contract
func (r *EventRepository) DeleteByContract(ctx context.Context, contract models.Address) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM vault_event WHERE contract = $1`, contract)
	return err
}
