package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/util"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

// DefaultRWADecimals matches the 18-decimal RWA tokens of the demo deployment
const DefaultRWADecimals int32 = 18

// TokenService handles token faucet, approvals and the RWA asset catalog
type TokenService struct {
	ledger *chain.Chain
}

// NewTokenService creates a new TokenService
func NewTokenService(ledger *chain.Chain) *TokenService {
	return &TokenService{ledger: ledger}
}

// ListTokens returns deployed tokens in deployment order, optionally filtered by kind
func (s *TokenService) ListTokens(ctx context.Context, kind models.TokenKind) ([]models.TokenInfo, error) {
	var tokens []models.TokenInfo
	err := s.ledger.Call(func(st *chain.State) error {
		tokens = st.Tokens.List(kind)
		return nil
	})
	return tokens, err
}

// ListAssets returns the RWA catalog sorted by risk tier
func (s *TokenService) ListAssets(ctx context.Context) ([]models.TokenInfo, error) {
	defer TrackTime("ListAssets", time.Now())

	var tokens []models.TokenInfo
	err := s.ledger.Call(func(st *chain.State) error {
		tokens = st.Tokens.ListRWA()
		return nil
	})
	return tokens, err
}

// Mint creates amount base units of token for to. Base-asset tokens are an
// open faucet; RWA tokens may only be minted by their issuer.
func (s *TokenService) Mint(ctx context.Context, caller, tokenAddr, to models.Address, amount decimal.Decimal) (*models.TokenBalance, error) {
	var balance models.TokenBalance
	_, err := s.ledger.Transact(func(st *chain.State) error {
		t, err := st.Tokens.Get(tokenAddr)
		if err != nil {
			return err
		}
		info := t.Info()
		if info.Kind == models.TokenKindRWA && caller != info.Issuer {
			return vault.ErrUnauthorized
		}
		if err := t.Mint(to, amount); err != nil {
			return err
		}
		balance = tokenBalance(tokenAddr, to, t.BalanceOf(to), t.Decimals())
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"token":  tokenAddr.String(),
		"to":     to.String(),
		"amount": amount.String(),
	}).Info("tokens minted")
	return &balance, nil
}

// Approve sets the allowance of spender over caller's tokens
func (s *TokenService) Approve(ctx context.Context, caller, tokenAddr, spender models.Address, amount decimal.Decimal) (*models.TokenBalance, error) {
	var balance models.TokenBalance
	_, err := s.ledger.Transact(func(st *chain.State) error {
		t, err := st.Tokens.Get(tokenAddr)
		if err != nil {
			return err
		}
		if err := t.Approve(caller, spender, amount); err != nil {
			return err
		}
		balance = tokenBalance(tokenAddr, caller, t.BalanceOf(caller), t.Decimals())
		allowance := t.Allowance(caller, spender)
		balance.Spender = &spender
		balance.Allowance = &allowance
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// Balance returns holder's balance of token and, when spender is set, the allowance
func (s *TokenService) Balance(ctx context.Context, tokenAddr, holder models.Address, spender *models.Address) (*models.TokenBalance, error) {
	var balance models.TokenBalance
	err := s.ledger.Call(func(st *chain.State) error {
		t, err := st.Tokens.Get(tokenAddr)
		if err != nil {
			return err
		}
		balance = tokenBalance(tokenAddr, holder, t.BalanceOf(holder), t.Decimals())
		if spender != nil {
			allowance := t.Allowance(holder, *spender)
			balance.Spender = spender
			balance.Allowance = &allowance
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &balance, nil
}

// RegisterAsset deploys an RWA token from the factory owner and mints the
// initial supply to them
func (s *TokenService) RegisterAsset(ctx context.Context, caller models.Address, req *models.RegisterAssetRequest) (*models.TokenInfo, error) {
	if err := validateRiskTier(req.RiskTier); err != nil {
		return nil, err
	}
	decimals := DefaultRWADecimals
	if req.Decimals != nil {
		decimals = *req.Decimals
	}
	if err := util.CheckDecimals(decimals); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}
	supply := decimal.Zero
	if strings.TrimSpace(req.InitialSupply) != "" {
		var err error
		if supply, err = util.ParseUnits(req.InitialSupply, decimals); err != nil {
			return nil, err
		}
	}

	var info models.TokenInfo
	_, err := s.ledger.Transact(func(st *chain.State) error {
		if caller != st.Factory.Owner() {
			return vault.ErrUnauthorized
		}
		t, err := st.DeployToken(caller, models.TokenInfo{
			Kind:     models.TokenKindRWA,
			Name:     req.Name,
			Symbol:   req.Symbol,
			Decimals: decimals,
			RWA: &models.RWAMetadata{
				AssetType:      req.AssetType,
				Maturity:       req.Maturity.Ptr(),
				AnnualYieldBps: req.AnnualYieldBps,
				RiskTier:       req.RiskTier,
			},
		})
		if err != nil {
			return err
		}
		if supply.IsPositive() {
			if err := t.Mint(caller, supply); err != nil {
				return err
			}
		}
		info = t.Info()
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"token":  info.Address.String(),
		"symbol": info.Symbol,
		"type":   info.RWA.AssetType,
	}).Info("RWA token registered")
	return &info, nil
}

func validateRiskTier(tier uint8) error {
	if tier < 1 || tier > 5 {
		return fmt.Errorf("%w: risk tier %d must be between 1 and 5", ErrInvalidRequest, tier)
	}
	return nil
}

func tokenBalance(tokenAddr, holder models.Address, amount decimal.Decimal, decimals int32) models.TokenBalance {
	return models.TokenBalance{
		Token:     tokenAddr,
		Holder:    holder,
		Balance:   amount,
		Formatted: util.FormatUnits(amount, decimals),
	}
}
