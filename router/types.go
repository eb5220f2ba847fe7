// Package router resolves swap requests into firm quotes and signable
// deposit plans. It ties the token catalog, the quoting service, the
// transaction builders and the safety checks together.
package router

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/neptune-labs/neptune-intents-hub/catalog"
)

// RouteRequest describes a swap a user wants quoted. ConnectedChains
// lists chains the user has wallets on, WalletAddresses maps chain
// names to those wallet addresses. DestinationAddress and the chain
// hints are optional.
type RouteRequest struct {
	SessionID          string
	TokenIn            string
	TokenOut           string
	Amount             decimal.Decimal
	AccountID          string
	ConnectedChains    []string
	WalletAddresses    map[string]string
	DestinationAddress string
	DestinationChain   string
	SourceChain        string
}

// RouteContext is a fully resolved route: both tokens pinned to their
// chains, the recipient and refund addresses chosen.
type RouteContext struct {
	SourceToken catalog.Token
	DestToken   catalog.Token
	SourceChain string
	DestChain   string
	Recipient   string
	RefundTo    string
	CrossChain  bool
	// AutoFilled is set when the recipient came from a connected
	// wallet rather than an explicit address.
	AutoFilled bool
}

// SwapQuote is a firm quote held for confirmation. Amounts are human
// readable, AmountInAtomic keeps the exact value sent upstream.
type SwapQuote struct {
	ID             string          `json:"id"`
	TokenIn        string          `json:"tokenIn"`
	TokenOut       string          `json:"tokenOut"`
	AmountIn       decimal.Decimal `json:"amountIn"`
	AmountInAtomic decimal.Decimal `json:"-"`
	AmountOut      decimal.Decimal `json:"amountOut"`
	MinAmountOut   decimal.Decimal `json:"minAmountOut"`
	Rate           decimal.Decimal `json:"rate"`
	DepositAddress string          `json:"depositAddress"`
	Recipient      string          `json:"recipient"`
	SourceChain    string          `json:"sourceChain"`
	DestChain      string          `json:"destChain"`
	CrossChain     bool            `json:"crossChain"`
	AutoFilled     bool            `json:"autoFilled"`
	AccountID      string          `json:"-"`
	SourceToken    catalog.Token   `json:"-"`
	CreatedAt      time.Time       `json:"createdAt"`
}
