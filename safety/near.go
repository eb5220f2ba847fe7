package safety

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/neptune-labs/neptune-intents-hub/txbuilder"
)

var nearReceiverRe = regexp.MustCompile(`^[a-z0-9._-]+$`)

func checkNear(txs []txbuilder.NearTransaction, depositAddress string, amount decimal.Decimal) Result {
	var r Result

	if len(txs) == 0 {
		r.errorf("empty transaction list, no transactions to sign")
		return r.finish("near")
	}

	for i, tx := range txs {
		if tx.ReceiverID == "" {
			r.errorf("tx[%d]: missing receiverId", i)
		} else if !nearReceiverRe.MatchString(tx.ReceiverID) {
			r.errorf("tx[%d]: invalid receiverId: %q", i, tx.ReceiverID)
		}

		if len(tx.Actions) == 0 {
			r.errorf("tx[%d]: no actions in transaction", i)
		}

		for j, action := range tx.Actions {
			switch action.Type {
			case "FunctionCall":
				params := action.Params
				if params.MethodName == "" {
					r.errorf("tx[%d].action[%d]: FunctionCall with no methodName", i, j)
				}
				if params.Gas == "" || params.Gas == "0" {
					r.warnf("tx[%d].action[%d]: zero gas attached to %s", i, j, params.MethodName)
				}
				if params.MethodName == "ft_transfer_call" && depositAddress != "" {
					receiver := params.Args.ReceiverID
					if receiver != "" && receiver != depositAddress &&
						!strings.Contains(params.Args.Msg, depositAddress) {
						r.warnf("tx[%d].action[%d]: ft_transfer_call receiver %q, verify this is the correct intents contract", i, j, receiver)
					}
				}
			case "Transfer":
			default:
				r.warnf("tx[%d].action[%d]: unusual action type: %q", i, j, action.Type)
			}
		}
	}

	if !amount.IsPositive() {
		r.errorf("amount must be positive, got: %s", amount)
	}

	return r.finish("near")
}
