package token

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/util"
)

var (
	ErrInsufficientAllowance = errors.New("ERC20InsufficientAllowance")
	ErrInsufficientBalance   = errors.New("ERC20InsufficientBalance")
	ErrInvalidReceiver       = errors.New("ERC20InvalidReceiver")
	ErrInvalidSender         = errors.New("ERC20InvalidSender")
	ErrInvalidSpender        = errors.New("ERC20InvalidSpender")
	ErrUnknownToken          = errors.New("token not found")
)

// Token is a fungible token with balances and allowances.
// It is not safe for concurrent use; the chain serializes access.
type Token struct {
	info       models.TokenInfo
	balances   map[models.Address]decimal.Decimal
	allowances map[models.Address]map[models.Address]decimal.Decimal
}

// New creates a token with zero supply
func New(info models.TokenInfo) *Token {
	info.TotalSupply = decimal.Zero
	return &Token{
		info:       info,
		balances:   make(map[models.Address]decimal.Decimal),
		allowances: make(map[models.Address]map[models.Address]decimal.Decimal),
	}
}

// Info returns a copy of the token metadata with the current supply
func (t *Token) Info() models.TokenInfo {
	info := t.info
	if info.RWA != nil {
		rwa := *info.RWA
		info.RWA = &rwa
	}
	return info
}

func (t *Token) Address() models.Address { return t.info.Address }

func (t *Token) Decimals() int32 { return t.info.Decimals }

// BalanceOf returns the holder's balance, zero when unknown
func (t *Token) BalanceOf(holder models.Address) decimal.Decimal {
	return t.balances[holder]
}

// Allowance returns how much spender may pull from owner
func (t *Token) Allowance(owner, spender models.Address) decimal.Decimal {
	return t.allowances[owner][spender]
}

// Mint creates amount new tokens for to
func (t *Token) Mint(to models.Address, amount decimal.Decimal) error {
	if to.IsZero() {
		return ErrInvalidReceiver
	}
	if err := util.CheckAmount(amount); err != nil {
		return err
	}
	supply := t.info.TotalSupply.Add(amount)
	if supply.GreaterThan(util.MaxAmount) {
		return fmt.Errorf("%w: total supply would exceed 2^256-1", util.ErrInvalidAmount)
	}
	t.balances[to] = t.balances[to].Add(amount)
	t.info.TotalSupply = supply
	return nil
}

// Approve sets (not increments) the allowance of spender over owner's tokens
func (t *Token) Approve(owner, spender models.Address, amount decimal.Decimal) error {
	if owner.IsZero() {
		return ErrInvalidSender
	}
	if spender.IsZero() {
		return ErrInvalidSpender
	}
	if err := util.CheckAmount(amount); err != nil {
		return err
	}
	if t.allowances[owner] == nil {
		t.allowances[owner] = make(map[models.Address]decimal.Decimal)
	}
	t.allowances[owner][spender] = amount
	return nil
}

// Transfer moves amount from `from` to `to`
func (t *Token) Transfer(from, to models.Address, amount decimal.Decimal) error {
	if err := t.checkTransfer(from, to, amount); err != nil {
		return err
	}
	t.move(from, to, amount)
	return nil
}

// TransferFrom moves amount from `from` to `to` on behalf of spender,
// consuming allowance. The allowance is checked before the balance.
func (t *Token) TransferFrom(spender, from, to models.Address, amount decimal.Decimal) error {
	if err := util.CheckAmount(amount); err != nil {
		return err
	}
	allowed := t.Allowance(from, spender)
	if allowed.LessThan(amount) {
		return fmt.Errorf("%w: spender %s has %s, needs %s", ErrInsufficientAllowance, spender, allowed, amount)
	}
	if err := t.checkTransfer(from, to, amount); err != nil {
		return err
	}
	if !amount.IsZero() {
		t.allowances[from][spender] = allowed.Sub(amount)
	}
	t.move(from, to, amount)
	return nil
}

func (t *Token) checkTransfer(from, to models.Address, amount decimal.Decimal) error {
	if from.IsZero() {
		return ErrInvalidSender
	}
	if to.IsZero() {
		return ErrInvalidReceiver
	}
	if err := util.CheckAmount(amount); err != nil {
		return err
	}
	balance := t.balances[from]
	if balance.LessThan(amount) {
		return fmt.Errorf("%w: %s has %s, needs %s", ErrInsufficientBalance, from, balance, amount)
	}
	return nil
}

func (t *Token) move(from, to models.Address, amount decimal.Decimal) {
	t.balances[from] = t.balances[from].Sub(amount)
	t.balances[to] = t.balances[to].Add(amount)
}
