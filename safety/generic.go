package safety

import (
	"github.com/shopspring/decimal"

	"github.com/neptune-labs/neptune-intents-hub/txbuilder"
)

func checkGeneric(transfer *txbuilder.GenericTransfer, amount decimal.Decimal) Result {
	var r Result

	if transfer.To == "" {
		r.errorf("missing 'to' (deposit) address")
	}
	if transfer.Chain == "" {
		r.errorf("missing 'chain' identifier")
	}
	if !amount.IsPositive() {
		r.errorf("amount must be positive, got: %s", amount)
	}

	return r.finish("generic")
}
