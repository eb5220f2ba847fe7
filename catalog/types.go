// Package catalog maintains the supported token list served by the
// swap backend. The list is fetched over HTTP, cached in memory and
// queried by symbol and chain during route resolution.
package catalog

import (
	"github.com/shopspring/decimal"
)

// Token is one entry of the supported token list. AssetID is the
// backend asset identifier (e.g. "nep141:wrap.near"), Blockchain is
// the lowercase chain name the token settles on.
type Token struct {
	Symbol          string
	Name            string
	Decimals        int32
	AssetID         string
	ContractAddress string
	Blockchain      string
}

// AtomicAmount converts a human readable amount to the token's
// smallest unit. The result is truncated toward zero so the caller
// never spends more than requested.
func (t Token) AtomicAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.Shift(t.Decimals).Truncate(0)
}

// FromAtomic converts an amount in the token's smallest unit back to
// its human readable form.
func (t Token) FromAtomic(atomic decimal.Decimal) decimal.Decimal {
	return atomic.Shift(-t.Decimals)
}

// IsNative reports whether the token has no contract of its own on
// its chain.
func (t Token) IsNative() bool {
	return t.ContractAddress == ""
}
