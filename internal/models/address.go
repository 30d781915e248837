package models

import (
	"database/sql/driver"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/sha3"
)

// AddressLength is the number of bytes in an account or contract address
const AddressLength = 20

var ErrInvalidAddress = errors.New("invalid address")

// Address identifies an account, token or contract on the ledger.
// The zero value is the null address.
type Address [AddressLength]byte

// ZeroAddress is the null identifier
var ZeroAddress = Address{}

// ParseAddress parses a 0x-prefixed, 40 hex digit address (case-insensitive)
func ParseAddress(s string) (Address, error) {
	var a Address
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return a, fmt.Errorf("%w: %q is missing 0x prefix", ErrInvalidAddress, s)
	}
	raw := s[2:]
	if len(raw) != AddressLength*2 {
		return a, fmt.Errorf("%w: %q must have %d hex digits", ErrInvalidAddress, s, AddressLength*2)
	}
	if _, err := hex.Decode(a[:], []byte(raw)); err != nil {
		return Address{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	return a, nil
}

// MustParseAddress is ParseAddress for constants; it panics on bad input
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsZero reports whether a is the null address
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// String renders the address as lowercase 0x-prefixed hex
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Short renders the address as 0x1234…abcd for log lines
func (a Address) Short() string {
	s := a.String()
	return s[:6] + "…" + s[len(s)-4:]
}

func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Address) UnmarshalText(b []byte) error {
	parsed, err := ParseAddress(string(b))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON is implemented explicitly so map keys and values share one format
func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Address) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return a.UnmarshalText([]byte(s))
}

// Value stores the address as its hex string
func (a Address) Value() (driver.Value, error) {
	return a.String(), nil
}

// Scan reads an address stored as a hex string
func (a *Address) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return a.UnmarshalText([]byte(v))
	case []byte:
		return a.UnmarshalText(v)
	case nil:
		*a = ZeroAddress
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidAddress, src)
	}
}

// CreateAddress derives the address of a contract deployed by deployer at the
// given nonce: the last 20 bytes of keccak256(deployer || nonce).
func CreateAddress(deployer Address, nonce uint64) Address {
	var buf [AddressLength + 8]byte
	copy(buf[:AddressLength], deployer[:])
	binary.BigEndian.PutUint64(buf[AddressLength:], nonce)

	h := sha3.NewLegacyKeccak256()
	h.Write(buf[:])
	sum := h.Sum(nil)

	var a Address
	copy(a[:], sum[len(sum)-AddressLength:])
	return a
}
