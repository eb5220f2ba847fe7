// Package quote talks to the swap quoting service: it requests firm
// quotes with deposit addresses and notifies the service of sent
// deposits.
package quote

// Swap type accepted by the quoting service.
const SwapTypeExactInput = "EXACT_INPUT"

// Deposit, refund and recipient placement values.
const (
	PlacementOriginChain      = "ORIGIN_CHAIN"
	PlacementIntents          = "INTENTS"
	PlacementDestinationChain = "DESTINATION_CHAIN"
)

// DefaultSlippageTolerance is expressed in basis points.
const DefaultSlippageTolerance = 10

// Request is the body of POST /v0/quote. Amount is the origin asset
// amount in atomic units, Deadline is RFC3339 in UTC.
type Request struct {
	SwapType           string `json:"swapType"`
	OriginAsset        string `json:"originAsset"`
	DestinationAsset   string `json:"destinationAsset"`
	Amount             string `json:"amount"`
	DepositType        string `json:"depositType"`
	RefundType         string `json:"refundType"`
	Recipient          string `json:"recipient"`
	RecipientType      string `json:"recipientType"`
	RefundTo           string `json:"refundTo"`
	SlippageTolerance  int    `json:"slippageTolerance"`
	Dry                bool   `json:"dry"`
	Deadline           string `json:"deadline"`
	QuoteWaitingTimeMs int    `json:"quoteWaitingTimeMs"`
}

// Body carries the quote fields the hub consumes. Amounts stay in
// atomic units as decimal strings.
type Body struct {
	AmountIn       string `json:"amountIn"`
	AmountOut      string `json:"amountOut"`
	DepositAddress string `json:"depositAddress"`
	Deadline       string `json:"deadline"`
	TimeEstimate   int    `json:"timeEstimate"`
}

// response is the raw wire shape. The service nests the quote under
// "quote" on success and reports failures through "message".
type response struct {
	Quote   *Body  `json:"quote"`
	Message string `json:"message"`

	// flat fallback for responses without the quote envelope
	Body
}

// DepositNotice is the body of POST /v0/deposit/submit.
type DepositNotice struct {
	TxHash            string `json:"txHash"`
	DepositAddress    string `json:"depositAddress"`
	NearSenderAccount string `json:"nearSenderAccount,omitempty"`
}
