package huberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/zeebo/assert"

	"github.com/neptune-labs/neptune-intents-hub/huberr"
)

func TestCodeOf(t *testing.T) {
	err := huberr.New(huberr.CodeTokenNotFound, "token FOO not found")
	assert.Equal(t, huberr.CodeTokenNotFound, huberr.CodeOf(err))

	wrapped := fmt.Errorf("quoting swap: %w", err)
	assert.Equal(t, huberr.CodeTokenNotFound, huberr.CodeOf(wrapped))

	assert.Equal(t, huberr.CodeUnknown, huberr.CodeOf(errors.New("plain")))
	assert.Equal(t, huberr.CodeUnknown, huberr.CodeOf(nil))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := huberr.Wrap(huberr.CodeQuoteUnavailable, cause, "quote request failed")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, huberr.CodeQuoteUnavailable, huberr.CodeOf(err))
	assert.Equal(t, "quote request failed", err.Message())
}

func TestIsMatchesOnCode(t *testing.T) {
	a := huberr.New(huberr.CodeNoDepositAddress, "quote returned no deposit address")
	b := huberr.New(huberr.CodeNoDepositAddress, "different text")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, huberr.New(huberr.CodeMissingRecipient, "x")))
}

func TestHasCode(t *testing.T) {
	err := huberr.Newf(huberr.CodeUnknownEvmChain, "chain %q is not an EVM chain", "sol")
	assert.True(t, huberr.HasCode(err, huberr.CodeUnknownEvmChain))
	assert.False(t, huberr.HasCode(err, huberr.CodeTokenNotFound))
}
