package txbuilder

import (
	"strings"

	"github.com/neptune-labs/neptune-intents-hub/chains"
)

// GenericBuilder covers chains without a dedicated builder (Solana,
// Tron, TON, Cosmos and others). It emits a plain transfer the wallet
// adapter translates into the chain's native transaction.
type GenericBuilder struct{}

func (GenericBuilder) Build(in Input) (Payload, error) {
	return Payload{Generic: &GenericTransfer{
		Chain:  chains.Canonical(in.SourceChain),
		Type:   "native_transfer",
		To:     in.DepositAddress,
		From:   in.Sender,
		Amount: in.Amount.String(),
		Token:  strings.ToUpper(in.Token.Symbol),
	}}, nil
}
