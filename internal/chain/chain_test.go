package chain

import (
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

var (
	owner = models.MustParseAddress("0x1000000000000000000000000000000000000001")
	user  = models.MustParseAddress("0x2000000000000000000000000000000000000002")
)

type sink struct {
	mu     sync.Mutex
	events []vault.Event
}

func (s *sink) Emit(e vault.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

func (s *sink) names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.events))
	for i, e := range s.events {
		names[i] = e.EventName()
	}
	return names
}

func newTestChain(t *testing.T) (*Chain, *sink) {
	t.Helper()
	out := &sink{}
	c, err := New(owner, out)
	require.NoError(t, err)
	return c, out
}

func TestNew_DeploysFactory(t *testing.T) {
	c, out := newTestChain(t)

	err := c.Call(func(s *State) error {
		assert.Equal(t, models.CreateAddress(owner, 0), s.Factory.Address())
		assert.Equal(t, owner, s.Factory.Owner())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), c.BlockNumber())
	assert.Equal(t, []string{"OwnershipTransferred"}, out.names())
}

func TestNew_RejectsNullOwner(t *testing.T) {
	_, err := New(models.ZeroAddress, nil)
	assert.ErrorIs(t, err, vault.ErrInvalidOwner)
}

func TestDeployToken_AddressSequence(t *testing.T) {
	c, _ := newTestChain(t)

	var first, second models.Address
	_, err := c.Transact(func(s *State) error {
		tok, err := s.DeployToken(owner, models.TokenInfo{Kind: models.TokenKindBase, Symbol: "USDC", Decimals: 6})
		if err != nil {
			return err
		}
		first = tok.Address()
		tok, err = s.DeployToken(owner, models.TokenInfo{Kind: models.TokenKindRWA, Symbol: "BOND", Decimals: 18, RWA: &models.RWAMetadata{RiskTier: 2}})
		if err != nil {
			return err
		}
		second = tok.Address()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, models.CreateAddress(owner, 1), first)
	assert.Equal(t, models.CreateAddress(owner, 2), second)

	err = c.Call(func(s *State) error {
		tok, err := s.Tokens.Get(first)
		require.NoError(t, err)
		assert.Equal(t, owner, tok.Info().Issuer)
		return nil
	})
	require.NoError(t, err)
}

func TestTransact_FailureDropsEvents(t *testing.T) {
	c, out := newTestChain(t)
	before := c.BlockNumber()
	boom := errors.New("boom")

	receipt, err := c.Transact(func(s *State) error {
		if err := s.Factory.TransferOwnership(owner, user); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, receipt)
	assert.Equal(t, before, c.BlockNumber())
	assert.Equal(t, []string{"OwnershipTransferred"}, out.names(), "only the deployment event was delivered")
}

func TestTransact_DepositFlow(t *testing.T) {
	c, out := newTestChain(t)

	var usdc models.Address
	_, err := c.Transact(func(s *State) error {
		tok, err := s.DeployToken(owner, models.TokenInfo{Kind: models.TokenKindBase, Symbol: "USDC", Decimals: 6})
		if err != nil {
			return err
		}
		usdc = tok.Address()
		return tok.Mint(user, decimal.NewFromInt(1000))
	})
	require.NoError(t, err)

	var v *vault.Account
	receipt, err := c.Transact(func(s *State) error {
		var err error
		v, err = s.Factory.CreateVault(user, models.VaultConfig{
			BaseAsset: usdc,
			Strategy:  "single",
			Assets:    []models.Address{models.MustParseAddress("0xb000000000000000000000000000000000000001")},
			Weights:   []models.BasisPoints{10000},
		})
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"OwnershipTransferred", "OwnershipTransferred", "VaultCreated"}, eventNames(receipt.Events))

	receipt, err = c.Transact(func(s *State) error {
		tok, err := s.Tokens.Get(usdc)
		if err != nil {
			return err
		}
		if err := tok.Approve(user, v.Address(), decimal.NewFromInt(1000)); err != nil {
			return err
		}
		_, err = v.Deposit(user, decimal.NewFromInt(1000), user)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Deposit"}, eventNames(receipt.Events))
	assert.Contains(t, out.names(), "Deposit")

	err = c.Call(func(s *State) error {
		assert.Equal(t, "1000", v.TotalAssets().String())
		return nil
	})
	require.NoError(t, err)
}

func TestTransact_Serialized(t *testing.T) {
	c, _ := newTestChain(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = c.Transact(func(s *State) error {
				_, err := s.DeployToken(user, models.TokenInfo{Kind: models.TokenKindBase, Symbol: "T"})
				return err
			})
		}()
	}
	wg.Wait()

	err := c.Call(func(s *State) error {
		assert.Len(t, s.Tokens.List(""), 50)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(51), c.BlockNumber())
}

func eventNames(events []vault.Event) []string {
	names := make([]string, len(events))
	for i, e := range events {
		names[i] = e.EventName()
	}
	return names
}
