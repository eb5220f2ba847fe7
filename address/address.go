// Package address validates wallet address formats for the networks
// the hub routes to. Validation is purely syntactic, no chain state
// is consulted.
package address

import (
	"os"
	"regexp"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/btcsuite/btcutil/bech32"
	"github.com/rs/zerolog"

	"github.com/neptune-labs/neptune-intents-hub/chains"
)

var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// SetLogger overrides the package logger.
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}

var (
	nearImplicitRe   = regexp.MustCompile(`^[a-f0-9]{64}$`)
	nearNamedRe      = regexp.MustCompile(`^[a-z0-9_-]{2,}(\.[a-z0-9_-]{2,})*\.?(near|testnet)$`)
	nearSubaccountRe = regexp.MustCompile(`^[a-z0-9_-]{2,}(\.[a-z0-9_-]{2,})+$`)
	evmRe            = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	solanaRe         = regexp.MustCompile(`^[1-9A-HJ-NP-Za-km-z]{32,44}$`)
	tronRe           = regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`)
	tonRawRe         = regexp.MustCompile(`^-?[0-9]+:[a-fA-F0-9]{64}$`)
	tonFriendlyRe    = regexp.MustCompile(`^(EQ|UQ)[A-Za-z0-9_-]{46,48}$`)
)

// IsNear accepts implicit accounts (64 hex chars), named accounts
// ending in .near or .testnet and dotted subaccounts without a TLD.
func IsNear(addr string) bool {
	a := strings.ToLower(strings.TrimSpace(addr))
	if a == "" {
		return false
	}
	return nearImplicitRe.MatchString(a) ||
		nearNamedRe.MatchString(a) ||
		nearSubaccountRe.MatchString(a)
}

// IsEVM accepts 0x followed by 40 hex characters. No checksum pass,
// mixed case addresses are accepted either way.
func IsEVM(addr string) bool {
	return evmRe.MatchString(strings.TrimSpace(addr))
}

// IsSolana accepts base58 strings of 32 to 44 characters.
func IsSolana(addr string) bool {
	return solanaRe.MatchString(strings.TrimSpace(addr))
}

// tronVersionByte prefixes mainnet Tron addresses, it is what makes
// them render with a leading T in base58.
const tronVersionByte = 0x41

// IsTron accepts base58check strings of 34 characters starting with
// T. The embedded checksum is verified, so a single mistyped
// character is rejected.
func IsTron(addr string) bool {
	a := strings.TrimSpace(addr)
	if !tronRe.MatchString(a) {
		return false
	}
	payload, version, err := base58.CheckDecode(a)
	return err == nil && version == tronVersionByte && len(payload) == 20
}

// IsTon accepts the raw workchain:hash form and the user friendly
// EQ/UQ base64url form.
func IsTon(addr string) bool {
	a := strings.TrimSpace(addr)
	return tonRawRe.MatchString(a) || tonFriendlyRe.MatchString(a)
}

// IsCosmos accepts bech32 addresses with a valid checksum and a
// non-empty human readable prefix, e.g. cosmos1...
func IsCosmos(addr string) bool {
	hrp, _, err := bech32.Decode(strings.TrimSpace(addr))
	return err == nil && hrp != ""
}

// ValidForChain checks an address against the format rules of the
// given chain. Aurora uses NEAR account addresses. Chains without a
// format rule accept any address longer than five characters, with a
// warning logged so operators can see unvalidated traffic.
func ValidForChain(addr, chain string) bool {
	n := chains.Normalize(chain)
	switch {
	case n == "near" || n == "aurora":
		return IsNear(addr)
	case chains.IsEVM(n):
		return IsEVM(addr)
	case n == "solana" || n == "sol":
		return IsSolana(addr)
	case n == "tron" || n == "trx":
		return IsTron(addr)
	case n == "ton":
		return IsTon(addr)
	case n == "cosmos" || n == "atom":
		return IsCosmos(addr)
	}
	ok := len(strings.TrimSpace(addr)) > 5
	if ok {
		Logger.Warn().Str("chain", chain).Msg("no address format rule for chain, accepting unvalidated address")
	}
	return ok
}

// ChainFor guesses the network family from the address shape alone.
// NEAR wins ties with base58 formats because named accounts overlap.
// Returns the empty string when nothing matches.
func ChainFor(addr string) string {
	switch {
	case IsNear(addr):
		return "near"
	case IsEVM(addr):
		return "evm"
	case IsTron(addr):
		return "tron"
	case IsTon(addr):
		return "ton"
	case IsCosmos(addr):
		return "cosmos"
	case IsSolana(addr):
		return "solana"
	}
	return ""
}

// FormatHint describes the expected address format for a chain.
// Meant for error messages shown to end users.
func FormatHint(chain string) string {
	switch chains.Normalize(chain) {
	case "near", "aurora":
		return "NEAR address (e.g., alice.near or 64-char hex)"
	case "solana", "sol":
		return "Solana address (32-44 base58 characters)"
	case "tron", "trx":
		return "Tron address starting with T (34 characters)"
	case "ton":
		return "TON address (EQ/UQ prefix or raw format)"
	case "cosmos", "atom":
		return "Cosmos bech32 address (e.g., cosmos1...)"
	}
	if chains.IsEVM(chain) {
		return "EVM address starting with 0x (42 characters)"
	}
	return chain + " wallet address"
}
