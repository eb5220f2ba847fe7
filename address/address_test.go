package address_test

import (
	"strings"
	"testing"

	"github.com/zeebo/assert"

	"github.com/neptune-labs/neptune-intents-hub/address"
)

const (
	evmAddr    = "0x52908400098527886E0F7030069857D2E4169EE7"
	nearAddr   = "alice.near"
	solAddr    = "7EYnhQoR9YM3N7UoaKRoA44Uy8JeaZV3qyouov87awMs"
	tronAddr   = "TJRabPrwbZy45sbavfcjinPJC18kjpRTv8"
	tonRaw     = "0:ca6e321c7cce9ecedf0a8ca2492ec8592494aa5fb5ce0387dff96ef6af982a3e"
	cosmosAddr = "cosmos1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnrk363e"
	implicitID = "98793cd91a3f870fb126f66285808c7e094afcfc4eda8a970f6648cdf0dbd6de"
)

func TestIsNear(t *testing.T) {
	assert.True(t, address.IsNear("alice.near"))
	assert.True(t, address.IsNear("alice.testnet"))
	assert.True(t, address.IsNear("sub.alice.near"))
	assert.True(t, address.IsNear("my-wallet_01.near"))
	assert.True(t, address.IsNear(implicitID))
	assert.True(t, address.IsNear("app.alice"))

	assert.False(t, address.IsNear(""))
	assert.False(t, address.IsNear("a.near"))
	assert.False(t, address.IsNear(evmAddr))
	assert.False(t, address.IsNear("plainword"))
}

func TestIsEVM(t *testing.T) {
	assert.True(t, address.IsEVM(evmAddr))
	assert.True(t, address.IsEVM(strings.ToLower(evmAddr)))
	assert.True(t, address.IsEVM(" "+evmAddr+" "))

	assert.False(t, address.IsEVM("0x123"))
	assert.False(t, address.IsEVM(evmAddr+"00"))
	assert.False(t, address.IsEVM(strings.TrimPrefix(evmAddr, "0x")))
}

func TestIsSolana(t *testing.T) {
	assert.True(t, address.IsSolana(solAddr))

	// base58 excludes 0, O, I and l
	assert.False(t, address.IsSolana(strings.Replace(solAddr, "7", "0", 1)))
	assert.False(t, address.IsSolana("short"))
}

func TestIsTron(t *testing.T) {
	assert.True(t, address.IsTron(tronAddr))
	assert.False(t, address.IsTron(solAddr))
	assert.False(t, address.IsTron("T123"))
	// valid shape, corrupted checksum
	assert.False(t, address.IsTron("TJRabPrwbZy45sbavfcjinPJC18kjpRTv9"))
}

func TestIsTon(t *testing.T) {
	assert.True(t, address.IsTon(tonRaw))
	assert.True(t, address.IsTon("-1:ca6e321c7cce9ecedf0a8ca2492ec8592494aa5fb5ce0387dff96ef6af982a3e"))
	assert.True(t, address.IsTon("EQ"+strings.Repeat("A", 46)))
	assert.True(t, address.IsTon("UQ"+strings.Repeat("b", 48)))

	assert.False(t, address.IsTon("EQ"+strings.Repeat("A", 30)))
	assert.False(t, address.IsTon("0:deadbeef"))
}

func TestIsCosmos(t *testing.T) {
	assert.True(t, address.IsCosmos(cosmosAddr))

	// corrupted checksum
	assert.False(t, address.IsCosmos("cosmos1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnrk363q"))
	assert.False(t, address.IsCosmos(solAddr))
	assert.False(t, address.IsCosmos(nearAddr))
}

func TestValidForChain(t *testing.T) {
	assert.True(t, address.ValidForChain(nearAddr, "near"))
	assert.True(t, address.ValidForChain(nearAddr, "aurora"))
	assert.True(t, address.ValidForChain(evmAddr, "base"))
	assert.True(t, address.ValidForChain(evmAddr, "Ethereum"))
	assert.True(t, address.ValidForChain(solAddr, "sol"))
	assert.True(t, address.ValidForChain(tronAddr, "trx"))
	assert.True(t, address.ValidForChain(tonRaw, "ton"))
	assert.True(t, address.ValidForChain(cosmosAddr, "cosmos"))

	assert.False(t, address.ValidForChain(evmAddr, "near"))
	assert.False(t, address.ValidForChain(nearAddr, "eth"))
	assert.False(t, address.ValidForChain(solAddr, "tron"))
}

func TestValidForChainUnknownChainIsPermissive(t *testing.T) {
	assert.True(t, address.ValidForChain("rDsbeomae4FXwgQTJp9Rs64Qg9vDiTCdBv", "xrp"))
	assert.False(t, address.ValidForChain("abc", "xrp"))
	assert.False(t, address.ValidForChain("", "xrp"))
}

func TestChainFor(t *testing.T) {
	assert.Equal(t, "near", address.ChainFor(nearAddr))
	assert.Equal(t, "near", address.ChainFor(implicitID))
	assert.Equal(t, "evm", address.ChainFor(evmAddr))
	assert.Equal(t, "tron", address.ChainFor(tronAddr))
	assert.Equal(t, "ton", address.ChainFor(tonRaw))
	assert.Equal(t, "cosmos", address.ChainFor(cosmosAddr))
	assert.Equal(t, "solana", address.ChainFor(solAddr))
	assert.Equal(t, "", address.ChainFor("???"))
}

func TestFormatHint(t *testing.T) {
	assert.Equal(t, "NEAR address (e.g., alice.near or 64-char hex)", address.FormatHint("near"))
	assert.Equal(t, "EVM address starting with 0x (42 characters)", address.FormatHint("arbitrum"))
	assert.Equal(t, "xrp wallet address", address.FormatHint("xrp"))
}
