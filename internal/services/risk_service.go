package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/util"
)

// Per asset type model inputs. Unlisted types use the default* values.
var (
	baseVolatility = map[models.AssetType]float64{
		models.AssetTypeCorporateBond:  0.05,
		models.AssetTypeRealEstate:     0.12,
		models.AssetTypeStartupFund:    0.35,
		models.AssetTypeRevenueSharing: 0.20,
		models.AssetTypeCreditPool:     0.15,
	}
	baseLiquidity = map[models.AssetType]float64{
		models.AssetTypeCorporateBond:  70,
		models.AssetTypeRealEstate:     40,
		models.AssetTypeStartupFund:    20,
		models.AssetTypeRevenueSharing: 50,
		models.AssetTypeCreditPool:     60,
	}
	baseCounterpartyRisk = map[models.AssetType]float64{
		models.AssetTypeCorporateBond:  15,
		models.AssetTypeRealEstate:     25,
		models.AssetTypeStartupFund:    60,
		models.AssetTypeRevenueSharing: 35,
		models.AssetTypeCreditPool:     30,
	}
)

const (
	defaultVolatility       = 0.15
	defaultLiquidity        = 50
	defaultCounterpartyRisk = 40
)

// RiskService simulates risk signatures for RWA tokens and keeps the latest
// signature per asset
type RiskService struct {
	ledger *chain.Chain
	now    func() time.Time

	mu         sync.RWMutex
	signatures map[models.Address]models.RiskSignature
	order      []models.Address
}

// NewRiskService creates a new RiskService
func NewRiskService(ledger *chain.Chain) *RiskService {
	return &RiskService{
		ledger:     ledger,
		now:        time.Now,
		signatures: make(map[models.Address]models.RiskSignature),
	}
}

// Simulate computes and stores the risk signature of an RWA token
func (s *RiskService) Simulate(ctx context.Context, asset models.Address) (*models.RiskSignature, error) {
	var meta models.RWAMetadata
	err := s.ledger.Call(func(st *chain.State) error {
		t, err := st.Tokens.Get(asset)
		if err != nil {
			return err
		}
		info := t.Info()
		if info.Kind != models.TokenKindRWA || info.RWA == nil {
			return fmt.Errorf("%w: %s is not an RWA token", ErrInvalidRequest, asset)
		}
		meta = *info.RWA
		return nil
	})
	if err != nil {
		return nil, err
	}

	sig := SimulateRisk(asset, meta, s.now())
	s.store(sig)
	return &sig, nil
}

// SimulateAll refreshes the signature of every RWA token in the catalog
func (s *RiskService) SimulateAll(ctx context.Context) ([]models.RiskSignature, error) {
	defer TrackTime("SimulateAll", time.Now())

	var assets []models.TokenInfo
	if err := s.ledger.Call(func(st *chain.State) error {
		assets = st.Tokens.ListRWA()
		return nil
	}); err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]models.RiskSignature, 0, len(assets))
	for _, a := range assets {
		sig := SimulateRisk(a.Address, *a.RWA, now)
		s.store(sig)
		out = append(out, sig)
	}
	log.WithField("assets", len(out)).Debug("risk signatures simulated")
	return out, nil
}

// Signature returns the stored signature of asset
func (s *RiskService) Signature(asset models.Address) (*models.RiskSignature, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sig, ok := s.signatures[asset]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoRiskSignature, asset)
	}
	return &sig, nil
}

// Signatures returns every stored signature in first-simulated order
func (s *RiskService) Signatures() []models.RiskSignature {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RiskSignature, 0, len(s.order))
	for _, addr := range s.order {
		out = append(out, s.signatures[addr])
	}
	return out
}

func (s *RiskService) store(sig models.RiskSignature) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.signatures[sig.Asset]; !seen {
		s.order = append(s.order, sig.Asset)
	}
	s.signatures[sig.Asset] = sig
}

// SimulateRisk derives the risk signature of an RWA product as of now.
// Maturities in the past count as no remaining term.
func SimulateRisk(asset models.Address, meta models.RWAMetadata, now time.Time) models.RiskSignature {
	var days int64
	var duration float64
	if meta.Maturity != nil {
		days = max(0, (meta.Maturity.Unix()-now.Unix())/util.SecondsPerDay)
		duration = float64(days) / 365.0
	}

	tier := float64(meta.RiskTier)
	yieldPct := float64(meta.AnnualYieldBps) / 100.0

	baseCredit := 100 - tier*15
	credit := clamp(baseCredit+math.Min(10, yieldPct*0.5), 0, 100)

	return models.RiskSignature{
		Asset:            asset,
		AssetType:        meta.AssetType,
		RiskTier:         meta.RiskTier,
		AnnualYield:      yieldPct,
		MaturityDays:     days,
		CreditScore:      credit,
		Volatility:       volatility(meta.AssetType, tier, yieldPct),
		LiquidityScore:   liquidity(meta.AssetType, days, tier),
		CounterpartyRisk: counterpartyRisk(meta.AssetType, tier, credit),
		Duration:         duration,
		SimulatedAt:      now.UTC(),
	}
}

func volatility(assetType models.AssetType, tier, yieldPct float64) float64 {
	base, ok := baseVolatility[assetType]
	if !ok {
		base = defaultVolatility
	}
	v := base * (1.0 + (tier-1)*0.3)
	if yieldPct > 10 {
		v *= 1.2
	}
	return math.Min(1.0, v)
}

func liquidity(assetType models.AssetType, maturityDays int64, tier float64) float64 {
	base, ok := baseLiquidity[assetType]
	if !ok {
		base = defaultLiquidity
	}
	var bonus float64
	switch {
	case maturityDays <= 0:
	case maturityDays < 90:
		bonus = 20
	case maturityDays < 365:
		bonus = 10
	default:
		bonus = -10
	}
	return clamp(base+bonus+(6-tier)*5, 0, 100)
}

func counterpartyRisk(assetType models.AssetType, tier, credit float64) float64 {
	base, ok := baseCounterpartyRisk[assetType]
	if !ok {
		base = defaultCounterpartyRisk
	}
	return clamp(base+(tier-1)*10+(100-credit)/2, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
