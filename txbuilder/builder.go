package txbuilder

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/neptune-labs/neptune-intents-hub/chains"
)

var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// SetLogger overrides the package logger.
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}

// Builder produces an unsigned deposit payload for one VM family.
type Builder interface {
	Build(in Input) (Payload, error)
}

// ForChain selects the builder for the source chain's family.
// Chains without a dedicated builder get the generic transfer
// builder.
func ForChain(sourceChain string) Builder {
	switch chains.FamilyOf(sourceChain) {
	case chains.FamilyNear:
		return NearBuilder{}
	case chains.FamilyEVM:
		return EvmBuilder{}
	default:
		return GenericBuilder{}
	}
}
