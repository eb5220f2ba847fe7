// Package txbuilder constructs unsigned deposit transactions that a
// wallet frontend signs to fund a quoted swap. Each virtual machine
// family has its own builder and payload shape.
package txbuilder

import (
	"github.com/shopspring/decimal"

	"github.com/neptune-labs/neptune-intents-hub/catalog"
)

// Input is everything a builder needs to produce a deposit payload.
// Amount is in human readable units, conversion to atomic units
// happens against the token's decimals.
type Input struct {
	SourceChain    string
	Sender         string
	Token          catalog.Token
	DepositAddress string
	Amount         decimal.Decimal
}

// NearArgs are the function call arguments used by the NEAR deposit
// flow. Fields not used by a given method are left empty.
type NearArgs struct {
	ReceiverID string `json:"receiver_id,omitempty"`
	Amount     string `json:"amount,omitempty"`
	Msg        string `json:"msg,omitempty"`
	TokenID    string `json:"token_id,omitempty"`
}

// NearFunctionCall mirrors the wallet selector FunctionCall params.
// Gas and Deposit are decimal strings in yoctoNEAR and gas units.
type NearFunctionCall struct {
	MethodName string   `json:"methodName"`
	Args       NearArgs `json:"args"`
	Gas        string   `json:"gas"`
	Deposit    string   `json:"deposit"`
}

// NearAction is one action inside a NEAR transaction.
type NearAction struct {
	Type   string           `json:"type"`
	Params NearFunctionCall `json:"params"`
}

// NearTransaction is one transaction of the NEAR deposit flow.
type NearTransaction struct {
	ReceiverID string       `json:"receiverId"`
	Actions    []NearAction `json:"actions"`
}

// EvmCall is an EVM transaction request. Value is in wei as a decimal
// string. Data carries the ABI encoded calldata for token transfers
// and is empty for native transfers. From is omitted when the sender
// is not an EVM address, the wallet fills it in.
type EvmCall struct {
	ChainID int64  `json:"chainId"`
	To      string `json:"to"`
	Value   string `json:"value"`
	Data    string `json:"data,omitempty"`
	From    string `json:"from,omitempty"`
}

// GenericTransfer describes a plain value transfer on chains without
// a dedicated builder. The frontend wallet adapter interprets it.
type GenericTransfer struct {
	Chain  string `json:"chain"`
	Type   string `json:"type"`
	To     string `json:"to"`
	From   string `json:"from,omitempty"`
	Amount string `json:"amount"`
	Token  string `json:"token"`
}

// Payload is the union of the family specific payload shapes.
// Exactly one member is set.
type Payload struct {
	Near    []NearTransaction `json:"near,omitempty"`
	Evm     *EvmCall          `json:"evm,omitempty"`
	Generic *GenericTransfer  `json:"generic,omitempty"`
}
