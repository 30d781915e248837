package vault

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mollybeach/honeyvaiult/internal/models"
)

// MockLedger is a mock implementation of BaseLedger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) TransferFrom(token, spender, from, to models.Address, amount decimal.Decimal) error {
	args := m.Called(token, spender, from, to, amount)
	return args.Error(0)
}

// recorder collects emitted events in order
type recorder struct {
	events []Event
}

func (r *recorder) Emit(e Event) { r.events = append(r.events, e) }

func (r *recorder) names() []string {
	names := make([]string, len(r.events))
	for i, e := range r.events {
		names[i] = e.EventName()
	}
	return names
}

func (r *recorder) reset() { r.events = nil }

var (
	factoryAddr  = models.MustParseAddress("0x00000000000000000000000000000000000000fa")
	factoryOwner = models.MustParseAddress("0x1000000000000000000000000000000000000001")
	alice        = models.MustParseAddress("0x2000000000000000000000000000000000000002")
	bob          = models.MustParseAddress("0x3000000000000000000000000000000000000003")
	usdc         = models.MustParseAddress("0xa000000000000000000000000000000000000001")
	bond         = models.MustParseAddress("0xb000000000000000000000000000000000000001")
	realEstate   = models.MustParseAddress("0xb000000000000000000000000000000000000002")
	startup      = models.MustParseAddress("0xb000000000000000000000000000000000000003")
)

func amount(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func matchAmount(n int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.NewFromInt(n)) })
}

func balancedConfig() models.VaultConfig {
	return models.VaultConfig{
		BaseAsset:      usdc,
		Name:           "Balanced Diversified Vault",
		Symbol:         "BAL-VAULT",
		Strategy:       "balanced-diversified",
		RiskTier:       3,
		TargetDuration: 3 * 365 * 24 * 60 * 60,
		Assets:         []models.Address{bond, realEstate, startup},
		Weights:        []models.BasisPoints{4000, 4000, 2000},
	}
}

func singleAssetConfig() models.VaultConfig {
	cfg := balancedConfig()
	cfg.Assets = []models.Address{bond}
	cfg.Weights = []models.BasisPoints{10000}
	return cfg
}

func newTestFactory(t *testing.T) (*Factory, *MockLedger, *recorder) {
	t.Helper()
	ledger := new(MockLedger)
	rec := &recorder{}
	f, err := NewFactory(factoryAddr, factoryOwner, ledger, rec)
	require.NoError(t, err)
	rec.reset()
	return f, ledger, rec
}

// newTestVault creates a single-asset vault owned by alice
func newTestVault(t *testing.T) (*Account, *MockLedger, *recorder) {
	t.Helper()
	f, ledger, rec := newTestFactory(t)
	v, err := f.CreateVault(alice, singleAssetConfig())
	require.NoError(t, err)
	rec.reset()
	return v, ledger, rec
}
