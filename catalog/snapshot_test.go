package catalog_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/zeebo/assert"

	"github.com/neptune-labs/neptune-intents-hub/catalog"
)

var fixtureTokens = []catalog.Token{
	{Symbol: "USDC", Name: "USD Coin", Decimals: 6, AssetID: "nep141:eth-usdc.omft.near", ContractAddress: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48", Blockchain: "eth"},
	{Symbol: "NEAR", Name: "NEAR", Decimals: 24, AssetID: "nep141:wrap.near", Blockchain: "near"},
	{Symbol: "USDC", Name: "USD Coin", Decimals: 6, AssetID: "nep141:usdc.omft.near", ContractAddress: "usdc.omft.near", Blockchain: "near"},
	{Symbol: "USDC", Name: "USD Coin", Decimals: 6, AssetID: "nep141:base-usdc.omft.near", ContractAddress: "0x833589fcd6edb6e08f4c7c32d4f71b54bda02913", Blockchain: "base"},
	{Symbol: "SOL", Name: "Solana", Decimals: 9, AssetID: "nep141:sol.omft.near", Blockchain: "solana"},
}

func TestSnapshotOrder(t *testing.T) {
	snap := catalog.NewSnapshot(fixtureTokens)
	tokens := snap.Tokens()

	assert.Equal(t, 5, snap.Len())
	// NEAR chain entries lead, then other chains alphabetically.
	assert.Equal(t, "near", tokens[0].Blockchain)
	assert.Equal(t, "near", tokens[1].Blockchain)
	assert.Equal(t, "base", tokens[2].Blockchain)
	assert.Equal(t, "eth", tokens[3].Blockchain)
	assert.Equal(t, "solana", tokens[4].Blockchain)
}

func TestResolveWithChain(t *testing.T) {
	snap := catalog.NewSnapshot(fixtureTokens)

	tok, ok := snap.Resolve("usdc", "base")
	assert.True(t, ok)
	assert.Equal(t, "base", tok.Blockchain)

	tok, ok = snap.Resolve("USDC", "ETH")
	assert.True(t, ok)
	assert.Equal(t, "eth", tok.Blockchain)

	_, ok = snap.Resolve("USDC", "tron")
	assert.False(t, ok)

	_, ok = snap.Resolve("DOGE", "")
	assert.False(t, ok)
}

func TestResolvePrefersNearListing(t *testing.T) {
	snap := catalog.NewSnapshot(fixtureTokens)

	tok, ok := snap.Resolve("usdc", "")
	assert.True(t, ok)
	assert.Equal(t, "near", tok.Blockchain)

	tok, ok = snap.Resolve("sol", "")
	assert.True(t, ok)
	assert.Equal(t, "solana", tok.Blockchain)
}

func TestSymbolsAndChainsFor(t *testing.T) {
	snap := catalog.NewSnapshot(fixtureTokens)

	symbols := snap.Symbols()
	assert.Equal(t, 3, len(symbols))

	chains := snap.ChainsFor("USDC")
	assert.Equal(t, 3, len(chains))
	assert.Equal(t, "near", chains[0])

	assert.Equal(t, 0, len(snap.ChainsFor("DOGE")))
}

func TestAtomicAmount(t *testing.T) {
	usdc := catalog.Token{Symbol: "USDC", Decimals: 6}
	near := catalog.Token{Symbol: "NEAR", Decimals: 24}

	atomic := usdc.AtomicAmount(decimal.RequireFromString("1.5"))
	assert.Equal(t, "1500000", atomic.String())

	// amounts below one atomic unit truncate to zero
	atomic = usdc.AtomicAmount(decimal.RequireFromString("0.0000001"))
	assert.Equal(t, "0", atomic.String())

	atomic = near.AtomicAmount(decimal.RequireFromString("2.25"))
	assert.Equal(t, "2250000000000000000000000", atomic.String())
}

func TestFromAtomicRoundTrip(t *testing.T) {
	near := catalog.Token{Symbol: "NEAR", Decimals: 24}

	amount := decimal.RequireFromString("0.000000000000000000000001")
	atomic := near.AtomicAmount(amount)
	assert.Equal(t, "1", atomic.String())
	assert.True(t, near.FromAtomic(atomic).Equal(amount))
}
