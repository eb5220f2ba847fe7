// Package chains holds the static chain registry: which networks the
// hub understands, how their aliases fold to canonical names, which
// virtual machine family they belong to and what signing flow a wallet
// frontend needs for them.
package chains

import (
	"strings"

	"github.com/neptune-labs/neptune-intents-hub/huberr"
)

// Family classifies a chain by the transaction format its wallets sign.
type Family string

const (
	FamilyNear    Family = "near"
	FamilyEVM     Family = "evm"
	FamilyGeneric Family = "generic"
)

// evmChainIDs maps every accepted EVM chain alias to its numeric
// chain id. Aliases are lowercase, lookups go through Normalize.
var evmChainIDs = map[string]int64{
	// major L1s
	"eth":       1,
	"ethereum":  1,
	"bnb":       56,
	"bsc":       56,
	"polygon":   137,
	"pol":       137,
	"avalanche": 43114,
	"avax":      43114,
	"fantom":    250,
	"gnosis":    100,
	"cronos":    25,
	"kava":      2222,
	// L2s and rollups
	"arbitrum": 42161,
	"arb":      42161,
	"base":     8453,
	"optimism": 10,
	"op":       10,
	"linea":    59144,
	"scroll":   534352,
	"zksync":   324,
	"mantle":   5000,
	"manta":    169,
	"blast":    81457,
	"taiko":    167000,
	"metis":    1088,
	"mode":     34443,
	"lisk":     1135,
	"sonic":    146,
	"zora":     7777777,
	"ink":      57073,
	"soneium":  1868,
	"unichain": 130,
	"apechain": 2741,
	"ape":      2741,
	// others
	"aurora":    1313161554,
	"xlayer":    196,
	"opbnb":     204,
	"berachain": 80094,
	"bera":      80094,
	"sei":       1329,
	"chiliz":    88888,
	"moonbeam":  1284,
	"ronin":     2020,
	"monad":     143,
	"ebichain":  98881,
	"adi":       36900,
}

// nonEVMChains folds aliases of non-EVM networks to their canonical
// name. These networks carry their own wallet types and signing flows.
var nonEVMChains = map[string]string{
	"near":     "near",
	"solana":   "solana",
	"sol":      "solana",
	"ton":      "ton",
	"tron":     "tron",
	"trx":      "tron",
	"stellar":  "stellar",
	"xlm":      "stellar",
	"cosmos":   "cosmos",
	"atom":     "cosmos",
	"btc":      "btc",
	"bitcoin":  "btc",
	"doge":     "doge",
	"xrp":      "xrp",
	"ada":      "ada",
	"cardano":  "cardano",
	"aptos":    "aptos",
	"apt":      "aptos",
	"sui":      "sui",
	"litecoin": "litecoin",
	"ltc":      "litecoin",
	"zcash":    "zcash",
	"zec":      "zcash",
}

// Normalize lowercases and trims a chain name so alias lookups are
// case and whitespace insensitive.
func Normalize(chain string) string {
	return strings.ToLower(strings.TrimSpace(chain))
}

// Canonical resolves an alias to the canonical chain name. EVM chains
// keep their normalized alias, unknown chains pass through unchanged.
func Canonical(chain string) string {
	n := Normalize(chain)
	if canon, ok := nonEVMChains[n]; ok {
		return canon
	}
	return n
}

// IsEVM reports whether the chain settles on an EVM network.
// Aurora counts as EVM even though it runs on top of NEAR.
func IsEVM(chain string) bool {
	_, ok := evmChainIDs[Normalize(chain)]
	return ok
}

// IsKnown reports whether the chain appears in either registry table.
func IsKnown(chain string) bool {
	n := Normalize(chain)
	if _, ok := evmChainIDs[n]; ok {
		return true
	}
	_, ok := nonEVMChains[n]
	return ok
}

// FamilyOf classifies a chain. Unrecognized chains fall into the
// generic family so new networks flow through without a registry
// change.
func FamilyOf(chain string) Family {
	n := Normalize(chain)
	if n == "near" {
		return FamilyNear
	}
	if _, ok := evmChainIDs[n]; ok {
		return FamilyEVM
	}
	return FamilyGeneric
}

// EVMChainID returns the numeric chain id for an EVM chain alias.
func EVMChainID(chain string) (int64, error) {
	id, ok := evmChainIDs[Normalize(chain)]
	if !ok {
		return 0, huberr.Newf(huberr.CodeUnknownEvmChain, "chain %q is not a known EVM chain", chain)
	}
	return id, nil
}

// SignAction returns the wallet action hint for the source chain. The
// frontend wallet adapter uses it to route to the correct signing flow.
func SignAction(sourceChain string) string {
	n := Normalize(sourceChain)
	switch {
	case n == "near":
		return "SIGN_TRANSACTION"
	case IsEVM(n):
		return "SIGN_EVM_TRANSACTION"
	case n == "solana" || n == "sol":
		return "SIGN_SOLANA_TRANSACTION"
	case n == "ton":
		return "SIGN_TON_TRANSACTION"
	case n == "tron" || n == "trx":
		return "SIGN_TRON_TRANSACTION"
	case n == "cosmos" || n == "atom":
		return "SIGN_COSMOS_TRANSACTION"
	case n == "btc" || n == "bitcoin":
		return "SIGN_BTC_TRANSACTION"
	default:
		return "SIGN_GENERIC_TRANSACTION"
	}
}
