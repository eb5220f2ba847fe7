package catalog

import (
	"sort"
	"strings"

	"github.com/neptune-labs/neptune-intents-hub/chains"
)

// Snapshot is an immutable view of the token list at one point in
// time. Entries are ordered NEAR and Aurora first, then by chain and
// symbol.
type Snapshot struct {
	tokens []Token
}

// NewSnapshot sorts the tokens into display order and wraps them.
func NewSnapshot(tokens []Token) Snapshot {
	sorted := make([]Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sortKey(sorted[i]), sortKey(sorted[j])
		if a.tier != b.tier {
			return a.tier < b.tier
		}
		if a.chain != b.chain {
			return a.chain < b.chain
		}
		return a.symbol < b.symbol
	})
	return Snapshot{tokens: sorted}
}

type tokenKey struct {
	tier   int
	chain  string
	symbol string
}

func sortKey(t Token) tokenKey {
	chain := strings.ToLower(t.Blockchain)
	tier := 1
	if chain == "near" || chain == "aurora" {
		tier = 0
	}
	return tokenKey{tier: tier, chain: chain, symbol: strings.ToUpper(t.Symbol)}
}

// Len returns the number of tokens in the snapshot.
func (s Snapshot) Len() int {
	return len(s.tokens)
}

// Tokens returns the ordered token list. The returned slice must not
// be mutated.
func (s Snapshot) Tokens() []Token {
	return s.tokens
}

// Resolve finds a token by symbol, case insensitively. With a chain
// given, both symbol and chain must match. Without one, a NEAR or
// Aurora listing is preferred over listings on other chains.
func (s Snapshot) Resolve(symbol, chain string) (Token, bool) {
	symbolUpper := strings.ToUpper(strings.TrimSpace(symbol))
	if chain != "" {
		chainLower := chains.Normalize(chain)
		for _, t := range s.tokens {
			if strings.ToUpper(t.Symbol) == symbolUpper && strings.ToLower(t.Blockchain) == chainLower {
				return t, true
			}
		}
		return Token{}, false
	}

	var first *Token
	for i := range s.tokens {
		t := &s.tokens[i]
		if strings.ToUpper(t.Symbol) != symbolUpper {
			continue
		}
		if first == nil {
			first = t
		}
		switch strings.ToLower(t.Blockchain) {
		case "near", "aurora":
			return *t, true
		}
	}
	if first != nil {
		return *first, true
	}
	return Token{}, false
}

// Symbols returns the distinct symbols in snapshot order.
func (s Snapshot) Symbols() []string {
	seen := make(map[string]struct{}, len(s.tokens))
	out := make([]string, 0, len(s.tokens))
	for _, t := range s.tokens {
		key := strings.ToUpper(t.Symbol)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t.Symbol)
	}
	return out
}

// ChainsFor lists the chains a symbol is available on, in snapshot
// order.
func (s Snapshot) ChainsFor(symbol string) []string {
	symbolUpper := strings.ToUpper(strings.TrimSpace(symbol))
	seen := make(map[string]struct{})
	var out []string
	for _, t := range s.tokens {
		if strings.ToUpper(t.Symbol) != symbolUpper {
			continue
		}
		chain := strings.ToLower(t.Blockchain)
		if _, ok := seen[chain]; ok {
			continue
		}
		seen[chain] = struct{}{}
		out = append(out, chain)
	}
	return out
}
