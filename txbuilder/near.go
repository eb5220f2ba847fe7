package txbuilder

import (
	"strings"
)

// NEAR deposit flow contracts and gas budgets.
const (
	intentsContract = "intents.near"
	wrapContract    = "wrap.near"

	gasNearDeposit    = "10000000000000"  // 10 TGas
	gasFtTransferCall = "50000000000000"  // 50 TGas
	gasMtTransfer     = "100000000000000" // 100 TGas

	// NEP-141 transfers attach one yoctoNEAR
	oneYocto = "1"

	wrapAssetID = "nep141:wrap.near"
)

// NearBuilder produces the two transaction NEAR deposit flow: first
// move the source token into intents.near, then mt_transfer it to the
// quote's deposit address.
type NearBuilder struct{}

func (NearBuilder) Build(in Input) (Payload, error) {
	atomic := in.Token.AtomicAmount(in.Amount).String()
	native := strings.ToUpper(in.Token.Symbol) == "NEAR"

	var txs []NearTransaction

	if native {
		// wrap first, then deposit the wNEAR into intents.near
		txs = append(txs, NearTransaction{
			ReceiverID: wrapContract,
			Actions: []NearAction{
				{
					Type: "FunctionCall",
					Params: NearFunctionCall{
						MethodName: "near_deposit",
						Gas:        gasNearDeposit,
						Deposit:    atomic,
					},
				},
				{
					Type: "FunctionCall",
					Params: NearFunctionCall{
						MethodName: "ft_transfer_call",
						Args: NearArgs{
							ReceiverID: intentsContract,
							Amount:     atomic,
							Msg:        in.Sender,
						},
						Gas:     gasFtTransferCall,
						Deposit: oneYocto,
					},
				},
			},
		})
	} else {
		txs = append(txs, NearTransaction{
			ReceiverID: tokenContract(in),
			Actions: []NearAction{
				{
					Type: "FunctionCall",
					Params: NearFunctionCall{
						MethodName: "ft_transfer_call",
						Args: NearArgs{
							ReceiverID: intentsContract,
							Amount:     atomic,
							Msg:        in.Sender,
						},
						Gas:     gasFtTransferCall,
						Deposit: oneYocto,
					},
				},
			},
		})
	}

	tokenID := in.Token.AssetID
	if native {
		tokenID = wrapAssetID
	}
	txs = append(txs, NearTransaction{
		ReceiverID: intentsContract,
		Actions: []NearAction{
			{
				Type: "FunctionCall",
				Params: NearFunctionCall{
					MethodName: "mt_transfer",
					Args: NearArgs{
						TokenID:    tokenID,
						ReceiverID: in.DepositAddress,
						Amount:     atomic,
					},
					Gas:     gasMtTransfer,
					Deposit: oneYocto,
				},
			},
		},
	})

	return Payload{Near: txs}, nil
}

// tokenContract resolves the NEP-141 contract the deposit goes
// through, falling back to the asset id when the catalog entry has no
// contract address.
func tokenContract(in Input) string {
	if in.Token.ContractAddress != "" {
		return in.Token.ContractAddress
	}
	if rest, ok := strings.CutPrefix(in.Token.AssetID, "nep141:"); ok {
		return rest
	}
	return strings.ToLower(in.Token.Symbol) + ".near"
}
