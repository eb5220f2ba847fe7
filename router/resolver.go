package router

import (
	"strings"

	"github.com/neptune-labs/neptune-intents-hub/address"
	"github.com/neptune-labs/neptune-intents-hub/catalog"
	"github.com/neptune-labs/neptune-intents-hub/chains"
	"github.com/neptune-labs/neptune-intents-hub/huberr"
)

// Resolve turns a raw route request into a pinned route. It checks
// wallet connectivity on the source side, resolves both tokens
// against the catalog and picks recipient and refund addresses.
func Resolve(snap catalog.Snapshot, req RouteRequest) (RouteContext, error) {
	if strings.TrimSpace(req.AccountID) == "" {
		return RouteContext{}, huberr.New(huberr.CodeSourceWalletRequired,
			"wallet not connected, connect a wallet before requesting a quote")
	}

	userChains := normalizeChains(req.ConnectedChains)
	addrMap := normalizeAddrMap(req.WalletAddresses)

	// a connected EVM wallet works on every EVM chain
	hasEVM := false
	for _, c := range userChains {
		if chains.IsEVM(c) {
			hasEVM = true
			break
		}
	}

	sourceToken, ok := resolveWithHint(snap, req.TokenIn, req.SourceChain)
	if !ok {
		return RouteContext{}, huberr.Newf(huberr.CodeTokenNotFound,
			"token %q not found in supported list", strings.ToUpper(req.TokenIn))
	}

	sourceChain := chains.Normalize(req.SourceChain)
	if sourceChain == "" {
		sourceChain = strings.ToLower(sourceToken.Blockchain)
	}

	if !chainConnected(sourceChain, userChains, hasEVM) {
		return RouteContext{}, huberr.Newf(huberr.CodeSourceWalletRequired,
			"%s exists on: %s, but your connected wallets are: %s",
			strings.ToUpper(req.TokenIn),
			strings.Join(snap.ChainsFor(req.TokenIn), ", "),
			strings.Join(userChains, ", "))
	}

	// re-pin the source token to the effective chain so the right
	// asset id is quoted
	if pinned, ok := snap.Resolve(req.TokenIn, sourceChain); ok {
		sourceToken = pinned
	}

	destToken, ok := resolveWithHint(snap, req.TokenOut, req.DestinationChain)
	if !ok {
		return RouteContext{}, huberr.Newf(huberr.CodeTokenNotFound,
			"token %q not found in supported list", strings.ToUpper(req.TokenOut))
	}
	destChain := strings.ToLower(destToken.Blockchain)

	// an explicit 0x address with a non-EVM destination token means
	// the destination chain was never specified
	if req.DestinationAddress != "" {
		looksEVM := strings.HasPrefix(req.DestinationAddress, "0x") && len(req.DestinationAddress) == 42
		if looksEVM && !chains.IsEVM(destChain) {
			return RouteContext{}, huberr.Newf(huberr.CodeChainAddressMismatch,
				"address %s is an EVM address but %s resolved to chain %s, specify the destination chain",
				req.DestinationAddress, strings.ToUpper(req.TokenOut), destChain)
		}
	}

	crossChain := destChain != sourceChain

	rc := RouteContext{
		SourceToken: sourceToken,
		DestToken:   destToken,
		SourceChain: sourceChain,
		DestChain:   destChain,
		CrossChain:  crossChain,
	}

	recipient, autoFilled, err := resolveRecipient(req, rc, addrMap)
	if err != nil {
		return RouteContext{}, err
	}
	rc.Recipient = recipient
	rc.AutoFilled = autoFilled
	rc.RefundTo = walletFor(sourceChain, addrMap, req.AccountID)

	return rc, nil
}

func resolveRecipient(req RouteRequest, rc RouteContext, addrMap map[string]string) (string, bool, error) {
	if req.DestinationAddress != "" {
		if rc.CrossChain && !address.ValidForChain(req.DestinationAddress, rc.DestChain) {
			return "", false, huberr.Newf(huberr.CodeInvalidDestinationAddr,
				"address %q does not match the expected format for %s, expected: %s",
				req.DestinationAddress, strings.ToUpper(rc.DestChain), address.FormatHint(rc.DestChain))
		}
		return req.DestinationAddress, false, nil
	}

	if rc.CrossChain {
		key := rc.DestChain
		if chains.IsEVM(rc.DestChain) {
			key = "eth"
		}
		if addr, ok := addrMap[key]; ok {
			return addr, true, nil
		}
		if addr, ok := addrMap[rc.DestChain]; ok {
			return addr, true, nil
		}
		return "", false, huberr.Newf(huberr.CodeDestinationAddrRequired,
			"no %s wallet connected, provide a %s address (%s)",
			strings.ToUpper(rc.DestChain), strings.ToUpper(rc.DestChain), address.FormatHint(rc.DestChain))
	}

	return walletFor(rc.SourceChain, addrMap, req.AccountID), false, nil
}

// walletFor picks the user's wallet for a chain, with the primary
// account as fallback. EVM chains share the eth wallet.
func walletFor(chain string, addrMap map[string]string, accountID string) string {
	key := chain
	if chain != "near" && chains.IsEVM(chain) {
		key = "eth"
	}
	if addr, ok := addrMap[key]; ok {
		return addr
	}
	if addr, ok := addrMap[chain]; ok {
		return addr
	}
	return accountID
}

func resolveWithHint(snap catalog.Snapshot, symbol, chainHint string) (catalog.Token, bool) {
	if chainHint != "" {
		if tok, ok := snap.Resolve(symbol, chainHint); ok {
			return tok, true
		}
	}
	return snap.Resolve(symbol, "")
}

func chainConnected(chain string, userChains []string, hasEVM bool) bool {
	if hasEVM && chains.IsEVM(chain) {
		return true
	}
	for _, c := range userChains {
		if c == chain {
			return true
		}
	}
	return false
}

func normalizeChains(connected []string) []string {
	var out []string
	for _, c := range connected {
		if n := chains.Normalize(c); n != "" {
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		out = []string{"near"}
	}
	return out
}

func normalizeAddrMap(addrs map[string]string) map[string]string {
	out := make(map[string]string, len(addrs))
	for chain, addr := range addrs {
		chain = chains.Normalize(chain)
		addr = strings.TrimSpace(addr)
		if chain != "" && addr != "" {
			out[chain] = addr
		}
	}
	return out
}
