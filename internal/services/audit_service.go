package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/events"
	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/repository"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

// auditTimeout bounds each audit write
const auditTimeout = 5 * time.Second

// EventStore persists event log entries
type EventStore interface {
	Insert(ctx context.Context, e *models.EventLogEntry) error
	ListByContract(ctx context.Context, contract models.Address, limit int) ([]models.EventLogEntry, error)
}

// SnapshotStore persists vault snapshots
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, s *models.VaultSummary) error
	GetByAddress(ctx context.Context, addr models.Address) (*models.VaultSummary, error)
}

// AuditService writes committed events and the vault snapshots they touch to
// durable storage. Failures are logged; the ledger call has already committed.
type AuditService struct {
	ledger    *chain.Chain
	events    EventStore
	snapshots SnapshotStore
}

// NewAuditService creates a new AuditService
func NewAuditService(ledger *chain.Chain, eventStore EventStore, snapshotStore SnapshotStore) *AuditService {
	return &AuditService{
		ledger:    ledger,
		events:    eventStore,
		snapshots: snapshotStore,
	}
}

// Handle is an events.Handler; subscribe it to the bus
func (s *AuditService) Handle(rec events.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), auditTimeout)
	defer cancel()

	payload, err := rec.PayloadJSON()
	if err != nil {
		log.WithError(err).WithField("event", rec.Name).Error("failed to encode event payload")
		return
	}
	entry := &models.EventLogEntry{
		ID:       rec.ID,
		Seq:      rec.Seq,
		Name:     rec.Name,
		Contract: rec.Contract,
		Payload:  payload,
		At:       rec.At,
	}
	if err := s.events.Insert(ctx, entry); err != nil {
		log.WithError(err).WithFields(log.Fields{"event": rec.Name, "seq": rec.Seq}).Error("failed to persist event")
	}

	summary, ok := s.vaultSummary(rec.Contract)
	if !ok {
		return
	}
	if err := s.snapshots.SaveSnapshot(ctx, &summary); err != nil {
		log.WithError(err).WithField("vault", rec.Contract.String()).Error("failed to persist vault snapshot")
	}
}

func (s *AuditService) vaultSummary(addr models.Address) (models.VaultSummary, bool) {
	var summary models.VaultSummary
	found := false
	_ = s.ledger.Call(func(st *chain.State) error {
		v, err := st.Factory.Vault(addr)
		if err != nil {
			return nil
		}
		summary = v.Summary()
		found = true
		return nil
	})
	return summary, found
}

// History returns the persisted events of a contract across restarts, oldest
// first. A nil service reports ErrAuditDisabled.
func (s *AuditService) History(ctx context.Context, contract models.Address, limit int) ([]models.EventLogEntry, error) {
	if s == nil {
		return nil, ErrAuditDisabled
	}
	defer TrackTime("History", time.Now())
	return s.events.ListByContract(ctx, contract, limit)
}

// Snapshot returns the last persisted summary of a vault
func (s *AuditService) Snapshot(ctx context.Context, addr models.Address) (*models.VaultSummary, error) {
	if s == nil {
		return nil, ErrAuditDisabled
	}
	summary, err := s.snapshots.GetByAddress(ctx, addr)
	if errors.Is(err, repository.ErrVaultNotFound) {
		return nil, fmt.Errorf("%w: no snapshot for %s", vault.ErrVaultNotFound, addr)
	}
	return summary, err
}
