package util

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("amount must be a non-negative integer")

// MaxAmountDigits is the length of the largest uint256, 2^256-1
const MaxAmountDigits = 78

// MaxDecimals bounds token precision accepted by ParseUnits and FormatUnits
const MaxDecimals = 36

// MaxAmount is 2^256-1, the largest balance, allowance or supply a token can hold
var MaxAmount = decimal.NewFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)), 0)

var (
	integerPattern = regexp.MustCompile(`^[0-9]+$`)
	unitsPattern   = regexp.MustCompile(`^[0-9]+(\.[0-9]+)?$`)
)

// ParseAmount parses a base-unit integer amount such as "1000000". Only plain
// digits are accepted: no sign, exponent or decimal point, and nothing above
// MaxAmount.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if len(s) > MaxAmountDigits || !integerPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, truncate(s))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if err := CheckAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// CheckAmount reports whether d can be used as a token amount
func CheckAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: %s is negative", ErrInvalidAmount, d)
	}
	if d.IsZero() {
		return nil
	}
	// Exponent bounds first: comparing or rendering a far-off exponent expands the full digit string.
	exp := d.Exponent()
	if exp < -(MaxAmountDigits + MaxDecimals) {
		return fmt.Errorf("%w: too many fractional digits", ErrInvalidAmount)
	}
	if exp > MaxAmountDigits || d.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: exceeds 2^256-1", ErrInvalidAmount)
	}
	if !d.Equal(d.Truncate(0)) {
		return fmt.Errorf("%w: %s has a fractional part", ErrInvalidAmount, d)
	}
	return nil
}

// CheckDecimals reports whether decimals is a supported token precision
func CheckDecimals(decimals int32) error {
	if decimals < 0 || decimals > MaxDecimals {
		return fmt.Errorf("decimals must be between 0 and %d, got %d", MaxDecimals, decimals)
	}
	return nil
}

// ParseUnits converts a human amount ("1000.5") into base units for a token
// with the given decimals, like ethers.parseUnits. Excess precision is an error.
func ParseUnits(s string, decimals int32) (decimal.Decimal, error) {
	if err := CheckDecimals(decimals); err != nil {
		return decimal.Zero, err
	}
	s = strings.TrimSpace(s)
	if len(s) > MaxAmountDigits+1 || !unitsPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, truncate(s))
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	units := d.Shift(decimals)
	if err := CheckAmount(units); err != nil {
		return decimal.Zero, err
	}
	return units, nil
}

// FormatUnits renders base units as a human amount with trailing zeros removed
func FormatUnits(amount decimal.Decimal, decimals int32) string {
	return amount.Shift(-decimals).String()
}

func truncate(s string) string {
	if len(s) > 24 {
		return s[:24] + "..."
	}
	return s
}
