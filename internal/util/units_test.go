package util

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "1000", want: "1000"},
		{name: "zero", input: "0", want: "0"},
		{name: "large", input: "1000000000000000000000000", want: "1000000000000000000000000"},
		{name: "padded", input: "  42 ", want: "42"},
		{name: "negative", input: "-1", wantErr: true},
		{name: "fractional", input: "1.5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "exponent", input: "1e3", wantErr: true},
		{name: "huge exponent", input: "1e10000000", wantErr: true},
		{name: "plus sign", input: "+5", wantErr: true},
		{name: "trailing dot", input: "5.", wantErr: true},
		{name: "max uint256", input: "115792089237316195423570985008687907853269984665640564039457584007913129639935", want: "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
		{name: "max uint256 plus one", input: "115792089237316195423570985008687907853269984665640564039457584007913129639936", wantErr: true},
		{name: "79 digits", input: "1" + strings.Repeat("0", 78), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAmount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseUnits(t *testing.T) {
	got, err := ParseUnits("1000", 6)
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(1_000_000_000)))

	got, err = ParseUnits("1.25", 18)
	require.NoError(t, err)
	assert.Equal(t, "1250000000000000000", got.String())

	_, err = ParseUnits("0.0000001", 6)
	assert.ErrorIs(t, err, ErrInvalidAmount)

	for _, bad := range []string{"1e3", "-1", "1.", ".5", "1e-3"} {
		_, err = ParseUnits(bad, 6)
		assert.ErrorIs(t, err, ErrInvalidAmount, bad)
	}

	_, err = ParseUnits("1"+strings.Repeat("0", 70), 18)
	assert.ErrorIs(t, err, ErrInvalidAmount, "shifted value exceeds 2^256-1")
}

func TestParseUnits_Decimals(t *testing.T) {
	got, err := ParseUnits("7", 0)
	require.NoError(t, err)
	assert.Equal(t, "7", got.String())

	got, err = ParseUnits("1", MaxDecimals)
	require.NoError(t, err)
	assert.Equal(t, "1"+strings.Repeat("0", MaxDecimals), got.String())

	for _, d := range []int32{-1, -18, MaxDecimals + 1, 1 << 30} {
		_, err := ParseUnits("1", d)
		assert.Error(t, err, "decimals %d", d)
	}
}

func TestCheckAmount(t *testing.T) {
	assert.NoError(t, CheckAmount(decimal.Zero))
	assert.NoError(t, CheckAmount(MaxAmount))
	assert.NoError(t, CheckAmount(decimal.New(15, 3)), "15000 written with an exponent is still an integer")

	assert.ErrorIs(t, CheckAmount(MaxAmount.Add(decimal.NewFromInt(1))), ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount(decimal.New(1, 10000000)), ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount(decimal.New(1, -10000000)), ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount(decimal.NewFromInt(-1)), ErrInvalidAmount)
	assert.ErrorIs(t, CheckAmount(decimal.RequireFromString("2.5")), ErrInvalidAmount)
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "1000", FormatUnits(decimal.NewFromInt(1_000_000_000), 6))
	assert.Equal(t, "1.5", FormatUnits(decimal.RequireFromString("1500000000000000000"), 18))
	assert.Equal(t, "0", FormatUnits(decimal.Zero, 6))
}
