package router_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zeebo/assert"

	"github.com/neptune-labs/neptune-intents-hub/catalog"
	"github.com/neptune-labs/neptune-intents-hub/huberr"
	"github.com/neptune-labs/neptune-intents-hub/quote"
	"github.com/neptune-labs/neptune-intents-hub/router"
)

type fakeCatalog struct {
	snap catalog.Snapshot
	err  error
}

func (f fakeCatalog) Tokens(context.Context) (catalog.Snapshot, error) {
	return f.snap, f.err
}

type fakeQuotes struct {
	lastRequest quote.Request
	body        quote.Body
	err         error
	notices     []quote.DepositNotice
	noticeErr   error
}

func (f *fakeQuotes) GetQuote(_ context.Context, req quote.Request) (quote.Body, error) {
	f.lastRequest = req
	if f.err != nil {
		return quote.Body{}, f.err
	}
	return f.body, nil
}

func (f *fakeQuotes) SubmitDeposit(_ context.Context, notice quote.DepositNotice) error {
	f.notices = append(f.notices, notice)
	return f.noticeErr
}

func newService(quotes *fakeQuotes) *router.Service {
	return router.NewService(fakeCatalog{snap: snap}, quotes, time.Minute)
}

func TestQuoteSwapCrossChain(t *testing.T) {
	quotes := &fakeQuotes{body: quote.Body{
		AmountOut:      "5123456",
		DepositAddress: "dep.near",
	}}
	svc := newService(quotes)

	req := baseRequest()
	req.DestinationChain = "base"
	req.DestinationAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

	q, err := svc.QuoteSwap(context.Background(), req)
	assert.NoError(t, err)

	sent := quotes.lastRequest
	assert.Equal(t, quote.SwapTypeExactInput, sent.SwapType)
	assert.Equal(t, "nep141:wrap.near", sent.OriginAsset)
	assert.Equal(t, "nep141:base-usdc.omft.near", sent.DestinationAsset)
	assert.Equal(t, "2500000000000000000000000", sent.Amount)
	// NEAR sourced deposits route through the intents ledger
	assert.Equal(t, quote.PlacementIntents, sent.DepositType)
	assert.Equal(t, quote.PlacementIntents, sent.RefundType)
	assert.Equal(t, quote.PlacementDestinationChain, sent.RecipientType)
	assert.Equal(t, "alice.near", sent.RefundTo)
	assert.Equal(t, quote.DefaultSlippageTolerance, sent.SlippageTolerance)
	assert.False(t, sent.Dry)

	assert.Equal(t, "dep.near", q.DepositAddress)
	// 5123456 atomic USDC at 6 decimals
	assert.Equal(t, "5.123456", q.AmountOut.String())
	assert.True(t, q.MinAmountOut.Equal(q.AmountOut.Mul(decimal.RequireFromString("0.99"))))
	assert.True(t, q.CrossChain)
	assert.True(t, q.ID != "")
}

func TestQuoteSwapEvmSourceUsesOriginChain(t *testing.T) {
	quotes := &fakeQuotes{body: quote.Body{AmountOut: "1", DepositAddress: "0x52908400098527886E0F7030069857D2E4169EE7"}}
	svc := newService(quotes)

	req := baseRequest()
	req.TokenIn = "USDC"
	req.TokenOut = "NEAR"
	req.SourceChain = "base"
	req.ConnectedChains = []string{"near", "eth"}
	req.WalletAddresses = map[string]string{
		"near": "alice.near",
		"eth":  "0x00000000219ab540356cBB839Cbe05303d7705Fa",
	}

	_, err := svc.QuoteSwap(context.Background(), req)
	assert.NoError(t, err)
	assert.Equal(t, quote.PlacementOriginChain, quotes.lastRequest.DepositType)
	assert.Equal(t, quote.PlacementOriginChain, quotes.lastRequest.RefundType)
	assert.Equal(t, "0x00000000219ab540356cBB839Cbe05303d7705Fa", quotes.lastRequest.RefundTo)
}

func TestQuoteSwapPropagatesQuoteError(t *testing.T) {
	quotes := &fakeQuotes{err: huberr.New(huberr.CodeQuoteUnavailable, "down")}
	svc := newService(quotes)

	req := baseRequest()
	req.DestinationChain = "base"
	req.DestinationAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

	_, err := svc.QuoteSwap(context.Background(), req)
	assert.Error(t, err)
	assert.Equal(t, huberr.CodeQuoteUnavailable, huberr.CodeOf(err))
}

func TestConfirmSwapBuildsNearPlan(t *testing.T) {
	quotes := &fakeQuotes{body: quote.Body{
		AmountOut:      "5123456",
		DepositAddress: "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
	}}
	svc := newService(quotes)

	req := baseRequest()
	req.DestinationChain = "base"
	req.DestinationAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

	_, err := svc.QuoteSwap(context.Background(), req)
	assert.NoError(t, err)

	plan, err := svc.ConfirmSwap(context.Background(), "s1")
	assert.NoError(t, err)
	assert.Equal(t, "SIGN_TRANSACTION", plan.SignAction)
	assert.True(t, plan.Safety.Valid)
	assert.Equal(t, 2, len(plan.Payload.Near))
	assert.Equal(t, "wrap.near", plan.Payload.Near[0].ReceiverID)
	assert.Equal(t, "intents.near", plan.Payload.Near[1].ReceiverID)

	mt := plan.Payload.Near[1].Actions[0].Params
	assert.Equal(t, "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef", mt.Args.ReceiverID)
}

func TestConfirmSwapEvmPlan(t *testing.T) {
	quotes := &fakeQuotes{body: quote.Body{
		AmountOut:      "1000000000000000000000000",
		DepositAddress: "0x52908400098527886E0F7030069857D2E4169EE7",
	}}
	svc := newService(quotes)

	req := baseRequest()
	req.SessionID = "evm-session"
	req.TokenIn = "USDC"
	req.TokenOut = "NEAR"
	req.SourceChain = "base"
	req.AccountID = "0x00000000219ab540356cBB839Cbe05303d7705Fa"
	req.ConnectedChains = []string{"near", "eth"}
	req.WalletAddresses = map[string]string{
		"near": "alice.near",
		"eth":  "0x00000000219ab540356cBB839Cbe05303d7705Fa",
	}

	_, err := svc.QuoteSwap(context.Background(), req)
	assert.NoError(t, err)

	plan, err := svc.ConfirmSwap(context.Background(), "evm-session")
	assert.NoError(t, err)
	assert.Equal(t, "SIGN_EVM_TRANSACTION", plan.SignAction)
	assert.NotNil(t, plan.Payload.Evm)
	assert.Equal(t, int64(8453), plan.Payload.Evm.ChainID)
}

func TestConfirmSwapNoPendingQuote(t *testing.T) {
	svc := newService(&fakeQuotes{})
	_, err := svc.ConfirmSwap(context.Background(), "missing")
	assert.Error(t, err)
	assert.Equal(t, huberr.CodeNoPendingQuote, huberr.CodeOf(err))
}

func TestSessionsAreIsolated(t *testing.T) {
	quotes := &fakeQuotes{body: quote.Body{AmountOut: "1000000", DepositAddress: "dep.near"}}
	svc := newService(quotes)

	reqA := baseRequest()
	reqA.SessionID = "session-a"
	reqA.TokenOut = "USDC"
	reqA.DestinationChain = "near"
	_, err := svc.QuoteSwap(context.Background(), reqA)
	assert.NoError(t, err)

	_, err = svc.ConfirmSwap(context.Background(), "session-b")
	assert.Error(t, err)
	assert.Equal(t, huberr.CodeNoPendingQuote, huberr.CodeOf(err))

	_, err = svc.ConfirmSwap(context.Background(), "session-a")
	assert.NoError(t, err)
}

func TestNotifyDeposit(t *testing.T) {
	quotes := &fakeQuotes{body: quote.Body{AmountOut: "1000000", DepositAddress: "dep.near"}}
	svc := newService(quotes)

	req := baseRequest()
	req.TokenOut = "USDC"
	req.DestinationChain = "near"
	_, err := svc.QuoteSwap(context.Background(), req)
	assert.NoError(t, err)

	err = svc.NotifyDeposit(context.Background(), "s1", "8x1hash")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(quotes.notices))
	assert.Equal(t, "8x1hash", quotes.notices[0].TxHash)
	assert.Equal(t, "dep.near", quotes.notices[0].DepositAddress)
	// NEAR sourced swaps attach the sender account
	assert.Equal(t, "alice.near", quotes.notices[0].NearSenderAccount)

	// reporting the deposit releases the session
	err = svc.NotifyDeposit(context.Background(), "s1", "8x1hash")
	assert.Error(t, err)
	assert.Equal(t, huberr.CodeNoPendingQuote, huberr.CodeOf(err))

	err = svc.NotifyDeposit(context.Background(), "unknown", "0xhash")
	assert.Error(t, err)
	assert.Equal(t, huberr.CodeNoPendingQuote, huberr.CodeOf(err))
}

func TestNotifyDepositBestEffort(t *testing.T) {
	quotes := &fakeQuotes{
		body:      quote.Body{AmountOut: "1000000", DepositAddress: "dep.near"},
		noticeErr: huberr.New(huberr.CodeQuoteUnavailable, "submission endpoint down"),
	}
	svc := newService(quotes)

	req := baseRequest()
	req.TokenOut = "USDC"
	req.DestinationChain = "near"
	_, err := svc.QuoteSwap(context.Background(), req)
	assert.NoError(t, err)

	// upstream submission failures are logged, not surfaced
	err = svc.NotifyDeposit(context.Background(), "s1", "8x1hash")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(quotes.notices))
}
