package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mollybeach/honeyvaiult/internal/cache"
	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/events"
	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/repository"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

type MockEventStore struct {
	mock.Mock
}

func (m *MockEventStore) Insert(ctx context.Context, e *models.EventLogEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventStore) ListByContract(ctx context.Context, contract models.Address, limit int) ([]models.EventLogEntry, error) {
	args := m.Called(ctx, contract, limit)
	entries, _ := args.Get(0).([]models.EventLogEntry)
	return entries, args.Error(1)
}

type MockSnapshotStore struct {
	mock.Mock
}

func (m *MockSnapshotStore) SaveSnapshot(ctx context.Context, s *models.VaultSummary) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSnapshotStore) GetByAddress(ctx context.Context, addr models.Address) (*models.VaultSummary, error) {
	args := m.Called(ctx, addr)
	summary, _ := args.Get(0).(*models.VaultSummary)
	return summary, args.Error(1)
}

// newAuditEnv wires an audit service to a fresh bus before any vault exists
func newAuditEnv(t *testing.T, eventStore EventStore, snapshotStore SnapshotStore) (*chain.Chain, *events.Bus, *SeedResult) {
	t.Helper()
	bus := events.NewBus()
	ledger, err := chain.New(owner, bus)
	require.NoError(t, err)
	bus.Subscribe(NewAuditService(ledger, eventStore, snapshotStore).Handle)

	seed, err := LoadSeedFile("")
	require.NoError(t, err)
	result, err := NewSeeder(ledger, NewVaultService(ledger, cache.NewMemoryCache(0), bus)).Run(context.Background(), seed)
	require.NoError(t, err)
	return ledger, bus, result
}

func isEvent(name string) interface{} {
	return mock.MatchedBy(func(e *models.EventLogEntry) bool { return e.Name == name })
}

func TestAuditService_PersistsEventsAndSnapshots(t *testing.T) {
	eventStore := new(MockEventStore)
	snapshotStore := new(MockSnapshotStore)
	eventStore.On("Insert", mock.Anything, mock.Anything).Return(nil)
	snapshotStore.On("SaveSnapshot", mock.Anything, mock.Anything).Return(nil)

	ledger, bus, seed := newAuditEnv(t, eventStore, snapshotStore)
	vaultAddr := seed.Vaults[0]

	svc := NewVaultService(ledger, cache.NewMemoryCache(0), bus)
	tokens := NewTokenService(ledger)
	_, err := tokens.Mint(context.Background(), alice, seed.BaseAsset, alice, decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = tokens.Approve(context.Background(), alice, seed.BaseAsset, vaultAddr, decimal.NewFromInt(100))
	require.NoError(t, err)
	_, err = svc.Deposit(context.Background(), alice, vaultAddr, decimal.NewFromInt(100), nil)
	require.NoError(t, err)

	bus.Close()

	eventStore.AssertCalled(t, "Insert", mock.Anything, isEvent("VaultCreated"))
	eventStore.AssertCalled(t, "Insert", mock.Anything, mock.MatchedBy(func(e *models.EventLogEntry) bool {
		return e.Name == "Deposit" && e.Contract == vaultAddr && len(e.Payload) > 0 && e.Seq > 0
	}))
	snapshotStore.AssertCalled(t, "SaveSnapshot", mock.Anything, mock.MatchedBy(func(s *models.VaultSummary) bool {
		return s.Address == vaultAddr && s.TotalAssets.Equal(decimal.NewFromInt(100))
	}))

	// factory events carry no vault snapshot
	for _, call := range snapshotStore.Calls {
		assert.Equal(t, vaultAddr, call.Arguments.Get(1).(*models.VaultSummary).Address)
	}
}

func TestAuditService_StoreFailureDoesNotStopSnapshots(t *testing.T) {
	eventStore := new(MockEventStore)
	snapshotStore := new(MockSnapshotStore)
	eventStore.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))
	snapshotStore.On("SaveSnapshot", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, bus, seed := newAuditEnv(t, eventStore, snapshotStore)
	bus.Close()

	eventStore.AssertCalled(t, "Insert", mock.Anything, isEvent("VaultCreated"))
	snapshotStore.AssertCalled(t, "SaveSnapshot", mock.Anything, mock.MatchedBy(func(s *models.VaultSummary) bool {
		return s.Address == seed.Vaults[0]
	}))
}

func TestAuditService_History(t *testing.T) {
	ctx := context.Background()
	eventStore := new(MockEventStore)
	snapshotStore := new(MockSnapshotStore)
	svc := NewAuditService(nil, eventStore, snapshotStore)

	vaultAddr := models.CreateAddress(owner, 1)
	stored := []models.EventLogEntry{{Seq: 7, Name: "Deposit", Contract: vaultAddr}}
	eventStore.On("ListByContract", mock.Anything, vaultAddr, 5).Return(stored, nil)

	got, err := svc.History(ctx, vaultAddr, 5)
	require.NoError(t, err)
	assert.Equal(t, stored, got)
	eventStore.AssertExpectations(t)

	var disabled *AuditService
	_, err = disabled.History(ctx, vaultAddr, 5)
	assert.ErrorIs(t, err, ErrAuditDisabled)
	_, err = disabled.Snapshot(ctx, vaultAddr)
	assert.ErrorIs(t, err, ErrAuditDisabled)
}

func TestAuditService_Snapshot(t *testing.T) {
	ctx := context.Background()
	snapshotStore := new(MockSnapshotStore)
	svc := NewAuditService(nil, new(MockEventStore), snapshotStore)

	known := models.CreateAddress(owner, 1)
	unknown := models.CreateAddress(owner, 2)
	snapshotStore.On("GetByAddress", mock.Anything, known).Return(&models.VaultSummary{Address: known, Name: "Saved"}, nil)
	snapshotStore.On("GetByAddress", mock.Anything, unknown).Return(nil, repository.ErrVaultNotFound)

	summary, err := svc.Snapshot(ctx, known)
	require.NoError(t, err)
	assert.Equal(t, "Saved", summary.Name)

	_, err = svc.Snapshot(ctx, unknown)
	assert.ErrorIs(t, err, vault.ErrVaultNotFound)
	assert.Equal(t, vault.KindNotFound, vault.KindOf(err))
}
