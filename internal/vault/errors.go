package vault

import (
	"errors"

	"github.com/mollybeach/honeyvaiult/internal/models"
	"github.com/mollybeach/honeyvaiult/internal/token"
	"github.com/mollybeach/honeyvaiult/internal/util"
)

// Factory validation, in check order
var (
	ErrInvalidBaseAsset = errors.New("Invalid base asset")
	ErrMismatchedArrays = errors.New("Mismatched arrays")
	ErrNoAssetsProvided = errors.New("No assets provided")
	ErrWeightSumInvalid = errors.New("Weights must sum to 10000")
)

// Registry and account errors
var (
	ErrInvalidAsset     = errors.New("Invalid asset")
	ErrZeroWeight       = errors.New("Weight must be > 0")
	ErrWeightOutOfRange = errors.New("Weight must be <= 10000")
	ErrDuplicateAsset   = errors.New("Asset already added")
	ErrAssetNotFound    = errors.New("Asset not found")
	ErrUnauthorized     = errors.New("OwnableUnauthorizedAccount")
	ErrInvalidOwner     = errors.New("OwnableInvalidOwner")
	ErrInvalidReceiver  = errors.New("ERC4626InvalidReceiver")
	ErrVaultNotFound    = errors.New("vault not found")
)

// Kind is the error taxonomy exposed to callers
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindAuthorization
	KindState
	KindNotFound
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuthorization:
		return "authorization"
	case KindState:
		return "state"
	case KindNotFound:
		return "not_found"
	case KindDependency:
		return "dependency"
	default:
		return "unknown"
	}
}

var kinds = []struct {
	err  error
	kind Kind
}{
	{ErrInvalidBaseAsset, KindValidation},
	{ErrMismatchedArrays, KindValidation},
	{ErrNoAssetsProvided, KindValidation},
	{ErrWeightSumInvalid, KindValidation},
	{ErrInvalidAsset, KindValidation},
	{ErrZeroWeight, KindValidation},
	{ErrWeightOutOfRange, KindValidation},
	{ErrInvalidOwner, KindValidation},
	{ErrInvalidReceiver, KindValidation},
	{util.ErrInvalidAmount, KindValidation},
	{models.ErrInvalidAddress, KindValidation},
	{ErrUnauthorized, KindAuthorization},
	{ErrDuplicateAsset, KindState},
	{ErrAssetNotFound, KindNotFound},
	{ErrVaultNotFound, KindNotFound},
	{token.ErrUnknownToken, KindDependency},
	{token.ErrInsufficientAllowance, KindDependency},
	{token.ErrInsufficientBalance, KindDependency},
	{token.ErrInvalidReceiver, KindDependency},
	{token.ErrInvalidSender, KindDependency},
	{token.ErrInvalidSpender, KindDependency},
}

// KindOf classifies err. Wrapped errors are matched with errors.Is.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindUnknown
}
