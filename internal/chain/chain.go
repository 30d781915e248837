package chain

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/token"
	"github.com/mollybeach/honeyvaiult/internal/vault"
)

// Receipt describes a committed transaction
type Receipt struct {
	Block  uint64
	At     time.Time
	Events []vault.Event
}

// State is the ledger as seen from inside Transact or Call.
// It must not be retained after the callback returns.
type State struct {
	Tokens  *token.Registry
	Factory *vault.Factory

	c *Chain
}

// DeployToken deploys a token from deployer at the next address in
// deployer's nonce sequence. Any address already set on info is replaced.
func (s *State) DeployToken(deployer models.Address, info models.TokenInfo) (*token.Token, error) {
	info.Address = s.c.nextAddress(deployer)
	if info.Issuer.IsZero() {
		info.Issuer = deployer
	}
	t, err := s.Tokens.Deploy(info)
	if err != nil {
		return nil, err
	}
	s.c.nonces[deployer]++
	return t, nil
}

// Chain is the serialized ledger: every mutating call runs to completion
// under one lock and readers see the last committed state.
type Chain struct {
	mu      sync.RWMutex
	state   State
	nonces  map[models.Address]uint64
	block   uint64
	pending []vault.Event
	sink    vault.Emitter
	now     func() time.Time
}

// New creates a ledger and deploys the vault factory from factoryOwner.
// Committed events are forwarded to sink in emission order; sink may be nil.
func New(factoryOwner models.Address, sink vault.Emitter) (*Chain, error) {
	c := &Chain{
		nonces: make(map[models.Address]uint64),
		sink:   sink,
		now:    time.Now,
	}
	c.state = State{Tokens: token.NewRegistry(), c: c}

	_, err := c.Transact(func(s *State) error {
		addr := c.nextAddress(factoryOwner)
		f, err := vault.NewFactory(addr, factoryOwner, s.Tokens, vault.EmitterFunc(c.record))
		if err != nil {
			return err
		}
		c.nonces[factoryOwner]++
		s.Factory = f
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to deploy factory: %w", err)
	}
	return c, nil
}

func (c *Chain) nextAddress(deployer models.Address) models.Address {
	return models.CreateAddress(deployer, c.nonces[deployer])
}

func (c *Chain) record(e vault.Event) {
	c.pending = append(c.pending, e)
}

// Transact runs fn under the write lock. Events emitted by fn are delivered
// only when fn returns nil. State is not rolled back when fn fails, so fn must
// validate its inputs before the first mutation; core calls already do.
func (c *Chain) Transact(fn func(s *State) error) (*Receipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pending = c.pending[:0]
	if err := fn(&c.state); err != nil {
		c.pending = c.pending[:0]
		return nil, err
	}

	c.block++
	receipt := &Receipt{
		Block:  c.block,
		At:     c.now(),
		Events: append([]vault.Event(nil), c.pending...),
	}
	c.pending = c.pending[:0]

	if c.sink != nil {
		for _, e := range receipt.Events {
			c.sink.Emit(e)
		}
	}
	log.WithFields(log.Fields{"block": receipt.Block, "events": len(receipt.Events)}).Debug("transaction committed")
	return receipt, nil
}

// Call runs a read-only fn under the read lock
func (c *Chain) Call(fn func(s *State) error) error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fn(&c.state)
}

// BlockNumber returns the number of committed transactions
func (c *Chain) BlockNumber() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.block
}
