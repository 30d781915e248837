package services

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/util"
)

//go:embed seed/demo.yaml
var defaultSeed []byte

// SeedFile describes a demo deployment
type SeedFile struct {
	BaseAsset SeedToken   `yaml:"base_asset"`
	RWATokens []SeedToken `yaml:"rwa_tokens"`
	Vaults    []SeedVault `yaml:"vaults"`
}

// SeedToken is a token to deploy. Base assets ignore the RWA fields.
type SeedToken struct {
	Key            string           `yaml:"key"`
	Name           string           `yaml:"name"`
	Symbol         string           `yaml:"symbol"`
	Decimals       int32            `yaml:"decimals"`
	AssetType      models.AssetType `yaml:"asset_type"`
	MaturityDays   int              `yaml:"maturity_days"`
	AnnualYieldBps uint32           `yaml:"annual_yield_bps"`
	RiskTier       uint8            `yaml:"risk_tier"`
	InitialSupply  string           `yaml:"initial_supply"`
}

// SeedVault is a vault to create from the seeded tokens
type SeedVault struct {
	Name               string           `yaml:"name"`
	Symbol             string           `yaml:"symbol"`
	Strategy           string           `yaml:"strategy"`
	RiskTier           uint8            `yaml:"risk_tier"`
	TargetDurationDays uint64           `yaml:"target_duration_days"`
	Allocations        []SeedAllocation `yaml:"allocations"`
}

// SeedAllocation references a token by its key
type SeedAllocation struct {
	Token     string `yaml:"token"`
	WeightBps uint32 `yaml:"weight_bps"`
}

// SeedResult lists what a seed run deployed
type SeedResult struct {
	BaseAsset models.Address            `json:"base_asset"`
	RWATokens map[string]models.Address `json:"rwa_tokens"`
	Vaults    []models.Address          `json:"vaults"`
}

// LoadSeedFile reads a seed file, or the embedded demo deployment when path is empty
func LoadSeedFile(path string) (*SeedFile, error) {
	data := defaultSeed
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
	}
	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return &seed, nil
}

// Seeder deploys a seed file from the factory owner
type Seeder struct {
	ledger *chain.Chain
	vaults *VaultService
	now    func() time.Time
}

// NewSeeder creates a new Seeder
func NewSeeder(ledger *chain.Chain, vaults *VaultService) *Seeder {
	return &Seeder{ledger: ledger, vaults: vaults, now: time.Now}
}

// Run deploys the base asset, the RWA tokens and the vaults in seed order
func (s *Seeder) Run(ctx context.Context, seed *SeedFile) (*SeedResult, error) {
	defer TrackTime("Seed", time.Now())

	var deployer models.Address
	if err := s.ledger.Call(func(st *chain.State) error {
		deployer = st.Factory.Owner()
		return nil
	}); err != nil {
		return nil, err
	}

	supplies, err := seed.supplies()
	if err != nil {
		return nil, err
	}

	result := &SeedResult{RWATokens: make(map[string]models.Address)}
	_, err = s.ledger.Transact(func(st *chain.State) error {
		base, err := st.DeployToken(deployer, models.TokenInfo{
			Kind:     models.TokenKindBase,
			Name:     seed.BaseAsset.Name,
			Symbol:   seed.BaseAsset.Symbol,
			Decimals: seed.BaseAsset.Decimals,
		})
		if err != nil {
			return fmt.Errorf("failed to deploy %s: %w", seed.BaseAsset.Symbol, err)
		}
		result.BaseAsset = base.Address()

		for i, tok := range seed.RWATokens {
			addr, err := s.deployRWA(st, deployer, tok, supplies[i])
			if err != nil {
				return err
			}
			result.RWATokens[tok.Key] = addr
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, sv := range seed.Vaults {
		cfg := models.VaultConfig{
			BaseAsset:      result.BaseAsset,
			Name:           sv.Name,
			Symbol:         sv.Symbol,
			Strategy:       sv.Strategy,
			RiskTier:       sv.RiskTier,
			TargetDuration: util.DaysToSeconds(sv.TargetDurationDays),
		}
		for _, a := range sv.Allocations {
			addr, ok := result.RWATokens[a.Token]
			if !ok {
				return nil, fmt.Errorf("%w: vault %q references unknown token %q", ErrInvalidRequest, sv.Name, a.Token)
			}
			cfg.Assets = append(cfg.Assets, addr)
			cfg.Weights = append(cfg.Weights, models.BasisPoints(a.WeightBps))
		}
		resp, err := s.vaults.CreateVault(ctx, deployer, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create vault %q: %w", sv.Name, err)
		}
		result.Vaults = append(result.Vaults, resp.Vault.Address)
	}

	log.WithFields(log.Fields{
		"base_asset": result.BaseAsset.String(),
		"rwa_tokens": len(result.RWATokens),
		"vaults":     len(result.Vaults),
	}).Info("demo deployment seeded")
	return result, nil
}

func (s *Seeder) deployRWA(st *chain.State, deployer models.Address, tok SeedToken, supply decimal.Decimal) (models.Address, error) {
	t, err := st.DeployToken(deployer, models.TokenInfo{
		Kind:     models.TokenKindRWA,
		Name:     tok.Name,
		Symbol:   tok.Symbol,
		Decimals: tok.Decimals,
		RWA: &models.RWAMetadata{
			AssetType:      tok.AssetType,
			Maturity:       util.MaturityAfter(s.now(), tok.MaturityDays),
			AnnualYieldBps: models.BasisPoints(tok.AnnualYieldBps),
			RiskTier:       tok.RiskTier,
		},
	})
	if err != nil {
		return models.ZeroAddress, fmt.Errorf("failed to deploy %s: %w", tok.Symbol, err)
	}
	if supply.IsPositive() {
		if err := t.Mint(deployer, supply); err != nil {
			return models.ZeroAddress, err
		}
	}
	return t.Address(), nil
}

// supplies checks every token of the seed and parses the RWA initial
// supplies, so a bad entry fails before anything is deployed
func (seed *SeedFile) supplies() ([]decimal.Decimal, error) {
	if err := util.CheckDecimals(seed.BaseAsset.Decimals); err != nil {
		return nil, fmt.Errorf("%w: base asset %s: %v", ErrInvalidRequest, seed.BaseAsset.Symbol, err)
	}
	keys := make(map[string]bool, len(seed.RWATokens))
	out := make([]decimal.Decimal, len(seed.RWATokens))
	for i, tok := range seed.RWATokens {
		if keys[tok.Key] {
			return nil, fmt.Errorf("%w: duplicate token key %q", ErrInvalidRequest, tok.Key)
		}
		keys[tok.Key] = true
		if err := validateRiskTier(tok.RiskTier); err != nil {
			return nil, fmt.Errorf("token %s: %w", tok.Symbol, err)
		}
		if err := util.CheckDecimals(tok.Decimals); err != nil {
			return nil, fmt.Errorf("%w: token %s: %v", ErrInvalidRequest, tok.Symbol, err)
		}
		if tok.InitialSupply == "" {
			continue
		}
		supply, err := util.ParseUnits(tok.InitialSupply, tok.Decimals)
		if err != nil {
			return nil, fmt.Errorf("invalid initial supply for %s: %w", tok.Symbol, err)
		}
		out[i] = supply
	}
	return out, nil
}
