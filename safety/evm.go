package safety

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/neptune-labs/neptune-intents-hub/address"
	"github.com/neptune-labs/neptune-intents-hub/txbuilder"
)

const erc20TransferSelector = "0xa9059cbb"

func checkEvm(call *txbuilder.EvmCall, depositAddress string, amount decimal.Decimal) Result {
	var r Result

	if call.ChainID <= 0 {
		r.errorf("invalid chainId: %d", call.ChainID)
	}
	if !address.IsEVM(call.To) {
		r.errorf("invalid 'to' address: %q, must be a valid 0x address", call.To)
	}
	if call.From != "" && !address.IsEVM(call.From) {
		r.errorf("invalid 'from' address: %q, not a valid EVM address", call.From)
	}

	value, err := decimal.NewFromString(call.Value)
	if err != nil {
		r.errorf("invalid value field: %q", call.Value)
	} else if value.IsNegative() {
		r.errorf("negative value: %s", call.Value)
	}

	if strings.HasPrefix(call.Data, erc20TransferSelector) {
		checkErc20Data(&r, call, depositAddress)
	}

	if call.Data == "" || call.Data == "0x" {
		if call.To != "" && depositAddress != "" && !strings.EqualFold(call.To, depositAddress) {
			r.errorf("native transfer 'to' address %s does not match expected deposit address %s", call.To, depositAddress)
		}
		if err == nil && value.IsZero() {
			r.errorf("native transfer with zero value, no tokens would be sent")
		}
	}

	if !amount.IsPositive() {
		r.errorf("amount must be positive, got: %s", amount)
	}

	return r.finish("evm")
}

// checkErc20Data cross checks the recipient encoded in an ERC-20
// transfer call against the quote's deposit address. The recipient
// sits in the last 40 hex chars of the 32 byte address word.
func checkErc20Data(r *Result, call *txbuilder.EvmCall, depositAddress string) {
	data := call.Data
	if len(data) < 74 {
		r.errorf("erc20 transfer data truncated: %d chars", len(data))
		return
	}

	encoded := "0x" + data[34:74]
	if depositAddress != "" && !strings.EqualFold(encoded, depositAddress) {
		r.errorf("erc20 recipient %s does not match expected deposit address %s", encoded, depositAddress)
	}

	// for token transfers 'to' is the contract, the recipient lives in
	// the calldata
	if strings.EqualFold(call.To, depositAddress) {
		r.warnf("erc20 'to' field equals the deposit address, expected the token contract address")
	}
}
