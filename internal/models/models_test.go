package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	a, err := ParseAddress("  0xAbCdEf0000000000000000000000000000000001 ")
	require.NoError(t, err)
	assert.Equal(t, "0xabcdef0000000000000000000000000000000001", a.String())
	assert.Equal(t, "0xabcd…0001", a.Short())
	assert.False(t, a.IsZero())

	for _, bad := range []string{
		"",
		"abcdef0000000000000000000000000000000001",
		"0x1234",
		"0xzz00000000000000000000000000000000000001",
		"0xabcdef00000000000000000000000000000000011",
	} {
		_, err := ParseAddress(bad)
		assert.ErrorIs(t, err, ErrInvalidAddress, bad)
	}
}

func TestAddress_JSON(t *testing.T) {
	type wrapper struct {
		Owner Address  `json:"owner"`
		To    *Address `json:"to"`
	}
	in := wrapper{Owner: MustParseAddress("0x2000000000000000000000000000000000000002")}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"0x2000000000000000000000000000000000000002","to":null}`, string(raw))

	var out wrapper
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`{"owner":"0x12"}`), &out))
	assert.Error(t, json.Unmarshal([]byte(`{"owner":42}`), &out))
}

func TestAddress_Scan(t *testing.T) {
	want := MustParseAddress("0x2000000000000000000000000000000000000002")

	var a Address
	require.NoError(t, a.Scan(want.String()))
	assert.Equal(t, want, a)

	require.NoError(t, a.Scan([]byte(want.String())))
	assert.Equal(t, want, a)

	require.NoError(t, a.Scan(nil))
	assert.True(t, a.IsZero())

	assert.Error(t, a.Scan(42))

	v, err := want.Value()
	require.NoError(t, err)
	assert.Equal(t, want.String(), v)
}

func TestCreateAddress(t *testing.T) {
	deployer := MustParseAddress("0x1000000000000000000000000000000000000001")

	first := CreateAddress(deployer, 0)
	assert.Equal(t, first, CreateAddress(deployer, 0), "deterministic")
	assert.NotEqual(t, first, CreateAddress(deployer, 1))
	assert.NotEqual(t, first, CreateAddress(MustParseAddress("0x1000000000000000000000000000000000000002"), 0))
	assert.False(t, first.IsZero())
}

func TestMaturityDate(t *testing.T) {
	var req struct {
		Maturity MaturityDate `json:"maturity"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"maturity":"2027-03-15"}`), &req))
	assert.Equal(t, time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC), req.Maturity.Time)
	require.NotNil(t, req.Maturity.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`{"maturity":"2027-03-15T12:30:00Z"}`), &req))
	assert.Equal(t, 12, req.Maturity.Hour())

	require.NoError(t, json.Unmarshal([]byte(`{"maturity":null}`), &req))
	assert.True(t, req.Maturity.IsZero())
	assert.Nil(t, req.Maturity.Ptr())

	require.NoError(t, json.Unmarshal([]byte(`{"maturity":""}`), &req))
	assert.True(t, req.Maturity.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`{"maturity":"15/03/2027"}`), &req))

	raw, err := json.Marshal(MaturityDate{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))
}

func TestCreateVaultRequest_Config(t *testing.T) {
	asset := MustParseAddress("0xaa00000000000000000000000000000000000001")
	req := CreateVaultRequest{
		Name:           "Vault",
		Symbol:         "V",
		Strategy:       "balanced",
		RiskTier:       3,
		TargetDuration: 86400,
		Assets:         []Address{asset},
		Weights:        []BasisPoints{MaxBasisPoints},
	}
	cfg := req.Config()
	assert.Equal(t, req.Name, cfg.Name)
	assert.Equal(t, uint64(86400), cfg.TargetDuration)
	assert.Equal(t, []Address{asset}, cfg.Assets)
	assert.Equal(t, []BasisPoints{MaxBasisPoints}, cfg.Weights)
}
