// Package huberr carries the error taxonomy shared by the routing,
// quoting and transaction construction layers. Every failure that can
// surface to a caller is tagged with a Code so transports can map it
// to a status without string matching.
package huberr

import (
	stderrors "errors"
	"fmt"
)

// Code identifies a failure class.
type Code string

const (
	CodeUnknown                 Code = "UNKNOWN"
	CodeTokenNotFound           Code = "TOKEN_NOT_FOUND"
	CodeSourceWalletRequired    Code = "SOURCE_WALLET_NOT_CONNECTED"
	CodeInvalidDestinationAddr  Code = "INVALID_DESTINATION_ADDRESS_FORMAT"
	CodeDestinationAddrRequired Code = "DESTINATION_ADDRESS_REQUIRED"
	CodeChainAddressMismatch    Code = "CHAIN_ADDRESS_MISMATCH"
	CodeMissingRecipient        Code = "MISSING_RECIPIENT"
	CodeQuoteUnavailable        Code = "QUOTE_SERVICE_UNAVAILABLE"
	CodeNoDepositAddress        Code = "NO_DEPOSIT_ADDRESS"
	CodeUnknownEvmChain         Code = "UNKNOWN_EVM_CHAIN"
	CodeSafetyCheckFailed       Code = "TRANSACTION_SAFETY_CHECK_FAILED"
	CodeNoPendingQuote          Code = "NO_PENDING_QUOTE"
	CodeCatalogUnavailable      Code = "CATALOG_UNAVAILABLE"
)

// Error is the hub wide error type. The zero value is not useful,
// construct instances through New or Wrap.
type Error struct {
	code    Code
	message string
	cause   error
}

// New builds an error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Newf builds an error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return &Error{code: code, message: fmt.Sprintf(format, args...)}
}

// Wrap attaches a code and message to an underlying cause.
func Wrap(code Code, cause error, message string) *Error {
	return &Error{code: code, message: message, cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches on the code so errors.Is works against sentinel instances.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.code == t.code
}

// Code returns the failure class.
func (e *Error) Code() Code {
	if e == nil {
		return CodeUnknown
	}
	return e.code
}

// Message returns the human readable message without the code prefix.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// CodeOf extracts the Code from any error chain. Errors that do not
// carry a hub code come back as CodeUnknown.
func CodeOf(err error) Code {
	var target *Error
	if stderrors.As(err, &target) {
		return target.Code()
	}
	return CodeUnknown
}

// HasCode reports whether the chain carries the given code.
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}
