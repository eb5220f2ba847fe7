// Package safety runs pre-sign checks over deposit payloads so a
// malformed transaction is rejected before it ever reaches a wallet.
package safety

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/neptune-labs/neptune-intents-hub/txbuilder"
)

var Logger zerolog.Logger

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

// SetLogger overrides the package logger.
func SetLogger(logger zerolog.Logger) {
	Logger = logger
}

// Result reports the outcome of a validation pass. Warnings do not
// block signing, errors do.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func (r *Result) errorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warnf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func (r *Result) finish(kind string) Result {
	r.Valid = len(r.Errors) == 0
	if r.Valid {
		Logger.Debug().Str("kind", kind).Strs("warnings", r.Warnings).Msg("payload validated")
	} else {
		Logger.Error().Str("kind", kind).Strs("errors", r.Errors).Msg("payload validation failed")
	}
	return *r
}

// Check validates a deposit payload against the deposit address and
// amount of the quote it was built from.
func Check(payload txbuilder.Payload, depositAddress string, amount decimal.Decimal) Result {
	switch {
	case payload.Near != nil:
		return checkNear(payload.Near, depositAddress, amount)
	case payload.Evm != nil:
		return checkEvm(payload.Evm, depositAddress, amount)
	case payload.Generic != nil:
		return checkGeneric(payload.Generic, amount)
	}
	r := Result{Errors: []string{"empty payload, nothing to sign"}}
	return r.finish("empty")
}

// Summary joins the errors of a failed result into one message.
func (r Result) Summary() string {
	return strings.Join(r.Errors, "; ")
}
