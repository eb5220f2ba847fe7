package txbuilder

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/neptune-labs/neptune-intents-hub/chains"
	"github.com/neptune-labs/neptune-intents-hub/huberr"
)

const erc20TransferABI = `[{"constant":false,"inputs":[{"name":"_to","type":"address"},{"name":"_value","type":"uint256"}],"name":"transfer","outputs":[{"name":"","type":"bool"}],"payable":false,"stateMutability":"nonpayable","type":"function"}]`

var erc20ABI abi.ABI

func init() {
	parsed, err := abi.JSON(strings.NewReader(erc20TransferABI))
	if err != nil {
		panic(fmt.Sprintf("parse erc20 transfer abi: %v", err))
	}
	erc20ABI = parsed
}

// EvmBuilder produces a single EVM transaction request. Tokens with a
// contract address become ERC-20 transfer calls to the contract,
// native assets become plain value transfers to the deposit address.
type EvmBuilder struct{}

func (EvmBuilder) Build(in Input) (Payload, error) {
	chainID, err := chains.EVMChainID(in.SourceChain)
	if err != nil {
		return Payload{}, err
	}

	atomic := in.Token.AtomicAmount(in.Amount)

	from := in.Sender
	if from != "" && !strings.HasPrefix(from, "0x") {
		Logger.Warn().Str("from", from).Msg("sender is not an EVM address, omitting from field")
		from = ""
	}

	if !in.Token.IsNative() {
		if !common.IsHexAddress(in.DepositAddress) {
			return Payload{}, huberr.Newf(huberr.CodeSafetyCheckFailed,
				"deposit address %q is not a valid EVM address", in.DepositAddress)
		}
		data, err := erc20ABI.Pack("transfer", common.HexToAddress(in.DepositAddress), atomic.BigInt())
		if err != nil {
			return Payload{}, fmt.Errorf("encode erc20 transfer: %w", err)
		}
		return Payload{Evm: &EvmCall{
			ChainID: chainID,
			To:      in.Token.ContractAddress,
			Value:   "0",
			Data:    "0x" + common.Bytes2Hex(data),
			From:    from,
		}}, nil
	}

	return Payload{Evm: &EvmCall{
		ChainID: chainID,
		To:      in.DepositAddress,
		Value:   atomic.String(),
		From:    from,
	}}, nil
}
