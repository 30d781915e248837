package token

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/util"
)

// Registry holds every token deployed on the ledger, keyed by address
type Registry struct {
	tokens map[models.Address]*Token
	order  []models.Address
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[models.Address]*Token)}
}

// Deploy registers a new token. Its address must be unused.
func (r *Registry) Deploy(info models.TokenInfo) (*Token, error) {
	if info.Address.IsZero() {
		return nil, fmt.Errorf("%w: token address is the null address", models.ErrInvalidAddress)
	}
	if err := util.CheckDecimals(info.Decimals); err != nil {
		return nil, err
	}
	if _, exists := r.tokens[info.Address]; exists {
		return nil, fmt.Errorf("token %s already deployed", info.Address)
	}
	t := New(info)
	r.tokens[info.Address] = t
	r.order = append(r.order, info.Address)
	return t, nil
}

// Get looks a token up by address
func (r *Registry) Get(addr models.Address) (*Token, error) {
	t, ok := r.tokens[addr]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, addr)
	}
	return t, nil
}

// List returns all tokens in deployment order, optionally filtered by kind
func (r *Registry) List(kind models.TokenKind) []models.TokenInfo {
	result := make([]models.TokenInfo, 0, len(r.order))
	for _, addr := range r.order {
		info := r.tokens[addr].Info()
		if kind != "" && info.Kind != kind {
			continue
		}
		result = append(result, info)
	}
	return result
}

// ListRWA returns the RWA tokens sorted by risk tier, then symbol
func (r *Registry) ListRWA() []models.TokenInfo {
	result := r.List(models.TokenKindRWA)
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].RWA.RiskTier != result[j].RWA.RiskTier {
			return result[i].RWA.RiskTier < result[j].RWA.RiskTier
		}
		return result[i].Symbol < result[j].Symbol
	})
	return result
}

// TransferFrom pulls amount of token from `from` to `to` on behalf of spender
func (r *Registry) TransferFrom(token, spender, from, to models.Address, amount decimal.Decimal) error {
	t, err := r.Get(token)
	if err != nil {
		return err
	}
	return t.TransferFrom(spender, from, to, amount)
}
